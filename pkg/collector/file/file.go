// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package file

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"unicode/utf8"
)

// Option configures a Parser.
type Option func(*Parser)

// Parser splits text into lines and key/value pairs.
type Parser struct {
	delimiter       string
	maxSize         int
	skipComments    bool
	commentPrefix   string
	inlineComments  bool
	kvDelimiter     string
	vDefault        string
	vTrimChars      string
	skipEmptyValues bool
}

// Pair is one key/value entry in source order.
type Pair struct {
	Key   string
	Value string
}

// WithDelimiter sets the entry delimiter. Default is newline.
func WithDelimiter(delim string) Option {
	return func(p *Parser) {
		p.delimiter = delim
	}
}

// WithMaxSize sets the maximum file size in bytes. Default is 1MB.
func WithMaxSize(size int) Option {
	return func(p *Parser) {
		p.maxSize = size
	}
}

// WithSkipComments sets whether lines starting with the comment prefix are
// dropped. Default is true.
func WithSkipComments(skip bool) Option {
	return func(p *Parser) {
		p.skipComments = skip
	}
}

// WithCommentPrefix sets the comment marker. Default is "#".
func WithCommentPrefix(prefix string) Option {
	return func(p *Parser) {
		p.commentPrefix = prefix
	}
}

// WithInlineComments strips everything after the comment prefix on each line.
// Default is false.
func WithInlineComments(strip bool) Option {
	return func(p *Parser) {
		p.inlineComments = strip
	}
}

// WithKVDelimiter sets the key/value separator. Default is "=".
func WithKVDelimiter(kvDelim string) Option {
	return func(p *Parser) {
		p.kvDelimiter = kvDelim
	}
}

// WithVDefault sets the value used for lines without a separator.
func WithVDefault(vDefault string) Option {
	return func(p *Parser) {
		p.vDefault = vDefault
	}
}

// WithVTrimChars sets characters trimmed from both ends of values.
func WithVTrimChars(trimChars string) Option {
	return func(p *Parser) {
		p.vTrimChars = trimChars
	}
}

// WithSkipEmptyValues drops pairs whose value is empty, including key-only
// lines when no default value is set. Default is false.
func WithSkipEmptyValues(skip bool) Option {
	return func(p *Parser) {
		p.skipEmptyValues = skip
	}
}

// NewParser creates a parser with the provided options.
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		delimiter:     "\n",
		maxSize:       1 << 20,
		skipComments:  true,
		commentPrefix: "#",
		kvDelimiter:   "=",
	}

	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Lines splits content into trimmed, non-empty entries.
func (p *Parser) Lines(content string) []string {
	parts := strings.Split(content, p.delimiter)

	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if p.inlineComments && p.commentPrefix != "" {
			if i := strings.Index(part, p.commentPrefix); i >= 0 {
				part = part[:i]
			}
		}

		clean := strings.TrimSpace(part)
		if clean == "" {
			continue
		}

		if p.skipComments && p.commentPrefix != "" && strings.HasPrefix(clean, p.commentPrefix) {
			continue
		}

		result = append(result, clean)
	}

	return result
}

// Pairs splits content into key/value pairs in source order.
// Duplicate keys are preserved; callers decide which occurrence wins.
func (p *Parser) Pairs(content string) []Pair {
	lines := p.Lines(content)

	result := make([]Pair, 0, len(lines))
	for _, line := range lines {
		kv := strings.SplitN(line, p.kvDelimiter, 2)

		key := strings.TrimSpace(kv[0])
		if key == "" {
			slog.Debug("skipping line without key", slog.String("line", line))
			continue
		}

		if len(kv) != 2 {
			if p.skipEmptyValues && p.vDefault == "" {
				slog.Debug("skipping key-only line", slog.String("key", key))
				continue
			}
			result = append(result, Pair{Key: key, Value: p.vDefault})
			continue
		}

		value := strings.TrimSpace(kv[1])
		if p.vTrimChars != "" {
			value = strings.Trim(value, p.vTrimChars)
		}

		if p.skipEmptyValues && value == "" {
			slog.Debug("skipping entry with empty value", slog.String("key", key))
			continue
		}

		result = append(result, Pair{Key: key, Value: value})
	}

	return result
}

// Map splits content into a map. Later duplicates win.
func (p *Parser) Map(content string) map[string]string {
	pairs := p.Pairs(content)
	result := make(map[string]string, len(pairs))
	for _, kv := range pairs {
		result[kv.Key] = kv.Value
	}
	return result
}

// GetLines reads the file at path and returns its entries.
func (p *Parser) GetLines(path string) ([]string, error) {
	content, err := p.read(path)
	if err != nil {
		return nil, err
	}
	return p.Lines(content), nil
}

// GetMap reads the file at path and returns its key/value pairs.
func (p *Parser) GetMap(path string) (map[string]string, error) {
	content, err := p.read(path)
	if err != nil {
		return nil, err
	}
	return p.Map(content), nil
}

func (p *Parser) read(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("file path cannot be empty")
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read file %q: %w", path, err)
	}

	if len(b) > p.maxSize {
		return "", fmt.Errorf("file %q exceeds maximum size of %d bytes", path, p.maxSize)
	}

	if !utf8.Valid(b) {
		return "", fmt.Errorf("content of file %q is not valid UTF-8", path)
	}

	return string(b), nil
}

// ReadValue returns the trimmed content of a single-value file such as a
// sysfs attribute.
func ReadValue(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read file %q: %w", path, err)
	}
	return strings.TrimSpace(string(b)), nil
}

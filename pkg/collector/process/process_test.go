package process

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"

	gprocess "github.com/shirou/gopsutil/v3/process"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProvider_Collect(t *testing.T) {
	p := &Provider{
		List: func(context.Context) ([]Info, error) {
			return []Info{
				{PID: 42, Name: "sshd", Cmdline: []string{"/usr/sbin/sshd", "-D"}, Status: []string{gprocess.Sleep}},
				{PID: 1, Name: "systemd", Cmdline: []string{"/sbin/init"}, Status: []string{gprocess.Sleep}},
				{PID: 77, Name: "paused", Status: []string{gprocess.Stop}},
				{PID: 2, Name: "kthreadd", Status: []string{gprocess.Sleep}},
			}, nil
		},
	}

	procs, err := p.Collect(context.Background())
	require.NoError(t, err)
	require.Len(t, procs, 3)

	assert.Equal(t, int32(1), procs[0].PID)
	assert.Equal(t, "kthreadd", procs[1].Name)
	assert.NotNil(t, procs[1].Cmdline)
	assert.Empty(t, procs[1].Cmdline)
	assert.Equal(t, []string{"/usr/sbin/sshd", "-D"}, procs[2].Cmdline)

	for _, pr := range procs {
		assert.NotEqual(t, "paused", pr.Name)
	}
}

func TestProvider_Error(t *testing.T) {
	p := &Provider{
		List: func(context.Context) ([]Info, error) {
			return nil, errors.New("proc not mounted")
		},
	}
	procs, err := p.Collect(context.Background())
	assert.Error(t, err)
	assert.Nil(t, procs)
}

func TestProvider_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	procs, err := NewProvider().Collect(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, procs)
}

type fakeProc struct {
	name       string
	cmdline    []string
	status     []string
	nameErr    error
	cmdlineErr error
	statErr    error
}

func (f fakeProc) NameWithContext(context.Context) (string, error) {
	return f.name, f.nameErr
}

func (f fakeProc) CmdlineSliceWithContext(context.Context) ([]string, error) {
	return f.cmdline, f.cmdlineErr
}

func (f fakeProc) StatusWithContext(context.Context) ([]string, error) {
	return f.status, f.statErr
}

func debugEntries(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var e map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &e))
		out = append(out, e)
	}
	return out
}

func TestDescribe(t *testing.T) {
	denied := errors.New("permission denied")

	tests := []struct {
		name     string
		proc     fakeProc
		wantOK   bool
		wantMsgs []string
	}{
		{
			name:   "all fields readable",
			proc:   fakeProc{name: "sshd", cmdline: []string{"sshd", "-D"}, status: []string{gprocess.Sleep}},
			wantOK: true,
		},
		{
			name:     "name unreadable",
			proc:     fakeProc{nameErr: errors.New("no such process")},
			wantMsgs: []string{"skipping unreadable process"},
		},
		{
			name:     "command line unreadable",
			proc:     fakeProc{name: "kworker/0:1", cmdlineErr: denied, status: []string{gprocess.Idle}},
			wantOK:   true,
			wantMsgs: []string{"process command line unavailable"},
		},
		{
			name:     "status and command line unreadable",
			proc:     fakeProc{name: "agent", cmdlineErr: denied, statErr: denied},
			wantOK:   true,
			wantMsgs: []string{"process command line unavailable", "process status unavailable, stopped filter skipped"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

			info, ok := describe(context.Background(), logger, 99, tt.proc)
			assert.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, int32(99), info.PID)
				assert.Equal(t, tt.proc.name, info.Name)
			}

			entries := debugEntries(t, &buf)
			require.Len(t, entries, len(tt.wantMsgs))
			for i, e := range entries {
				assert.Equal(t, "DEBUG", e["level"])
				assert.Equal(t, tt.wantMsgs[i], e["msg"])
				assert.EqualValues(t, 99, e["pid"])
			}
		})
	}
}

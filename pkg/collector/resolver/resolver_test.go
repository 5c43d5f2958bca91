package resolver

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProvider_Collect(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resolv.conf")
	content := `# generated
nameserver 10.0.0.2
nameserver 1.1.1.1
search corp.example.com example.com
options ndots:2 timeout:3 attempts:4
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	rc, err := (&Provider{Path: path}).Collect(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"10.0.0.2", "1.1.1.1"}, rc.Nameservers)
	assert.Equal(t, []string{"corp.example.com", "example.com"}, rc.Search)
	assert.Equal(t, "53", rc.Port)
	assert.Equal(t, 2, rc.Ndots)
	assert.Equal(t, 3, rc.Timeout)
	assert.Equal(t, 4, rc.Attempts)
}

func TestProvider_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resolv.conf")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	rc, err := (&Provider{Path: path}).Collect(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, rc.Nameservers)
	assert.NotNil(t, rc.Search)
}

func TestProvider_Missing(t *testing.T) {
	rc, err := (&Provider{Path: filepath.Join(t.TempDir(), "missing")}).Collect(context.Background())
	assert.Error(t, err)
	assert.Nil(t, rc)
}

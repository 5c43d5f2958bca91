package inventory

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConnections(t *testing.T) {
	c := NewConnections()
	assert.NotNil(t, c.Listening)
	assert.NotNil(t, c.Established)
	assert.NotNil(t, c.Closed)
	assert.Equal(t, 0, c.Total())

	c.Listening = append(c.Listening, Connection{LocalIP: "0.0.0.0", LocalPort: 22, Status: "LISTEN"})
	c.Closed = append(c.Closed, Connection{LocalIP: "10.0.0.1", LocalPort: 5000, Status: "CLOSE_WAIT"})
	assert.Equal(t, 2, c.Total())

	var nilConns *Connections
	assert.Equal(t, 0, nilConns.Total())
}

func TestStrPtr(t *testing.T) {
	assert.Nil(t, StrPtr(""))
	require.NotNil(t, StrPtr("8086"))
	assert.Equal(t, "8086", *StrPtr("8086"))
}

func TestDevice_NullFieldsSerialize(t *testing.T) {
	d := Device{VendorID: StrPtr("8086")}
	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.JSONEq(t, `{"vendor_id":"8086","device_id":null,"vendor_name":null,"device_name":null}`, string(data))
}

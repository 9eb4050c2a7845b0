package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_Set(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		wantHost string
		wantPort int
		wantErr  bool
	}{
		{name: "port only", input: ":8080", wantHost: "", wantPort: 8080},
		{name: "localhost", input: "localhost:9000", wantHost: "localhost", wantPort: 9000},
		{name: "ip address", input: "127.0.0.1:8090", wantHost: "127.0.0.1", wantPort: 8090},
		{name: "missing port", input: "localhost", wantErr: true},
		{name: "non-numeric port", input: "localhost:http", wantErr: true},
		{name: "zero port", input: "localhost:0", wantErr: true},
		{name: "bad host", input: "not-an-ip:8080", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tc.input)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantHost, addr.Host)
			assert.Equal(t, tc.wantPort, addr.Port)
			assert.Equal(t, tc.input, addr.String())
		})
	}
}

func TestNetAddress_StringZeroValue(t *testing.T) {
	var addr NetAddress
	assert.Equal(t, "", addr.String())
}

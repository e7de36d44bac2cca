package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const testKey = "48acf19375e8a27309fe5394728abc2eb6d5a0a4feb6b6c53207ca1c256a6739"

func TestSignConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     SignConfig
		wantErr string
	}{
		{name: "valid", cfg: SignConfig{PrivateKey: testKey}},
		{name: "valid prefixed", cfg: SignConfig{PrivateKey: "0x" + testKey, BatchConfig: BatchConfig{Hashes: []string{"0x01"}}}},
		{name: "missing key", cfg: SignConfig{}, wantErr: "privateKey is required"},
		{name: "short key", cfg: SignConfig{PrivateKey: testKey[:10]}, wantErr: "64 hex chars"},
		{
			name:    "hashes and file",
			cfg:     SignConfig{PrivateKey: testKey, BatchConfig: BatchConfig{Hashes: []string{"0x01"}, HashesFile: "hashes.txt"}},
			wantErr: "hashesFile cannot be combined with hashes",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.wantErr)
			require.NotContains(t, err.Error(), testKey[:10])
		})
	}
}

func TestRecoverConfig_Validate(t *testing.T) {
	require.NoError(t, (&RecoverConfig{Signature: "0x00"}).Validate())

	err := (&RecoverConfig{}).Validate()
	require.Error(t, err)
	require.Contains(t, err.Error(), "signature is required")
}

func TestParseHashList(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []string
		wantErr bool
	}{
		{name: "json", input: `["0x01", "0x02"]`, want: []string{"0x01", "0x02"}},
		{name: "json empty", input: ` [] `, want: []string{}},
		{name: "lines", input: "0x01\n\n# comment\n  0x02  \n", want: []string{"0x01", "0x02"}},
		{name: "empty", input: "", want: []string{}},
		{name: "bad json", input: `["0x01",`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHashList([]byte(tt.input))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestBatchConfig_LoadHashes(t *testing.T) {
	inline := &BatchConfig{Hashes: []string{"0xaa"}}
	got, err := inline.LoadHashes()
	require.NoError(t, err)
	require.Equal(t, []string{"0xaa"}, got)

	path := filepath.Join(t.TempDir(), "hashes.txt")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join([]string{"0xbb", "0xcc"}, "\n")), 0o600))

	fromFile := &BatchConfig{HashesFile: path}
	got, err = fromFile.LoadHashes()
	require.NoError(t, err)
	require.Equal(t, []string{"0xbb", "0xcc"}, got)

	missing := &BatchConfig{HashesFile: filepath.Join(t.TempDir(), "missing.txt")}
	_, err = missing.LoadHashes()
	require.ErrorContains(t, err, "failed to read hashes file")
}

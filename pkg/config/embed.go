package config

import (
	_ "embed"
)

//go:embed embedded/default.toml
var defaultConfig []byte

// DefaultConfigBytes returns the embedded starter configuration that
// genconfig writes for new users. Its force-dry-run default is the
// misuse-resistance rail described in the automove docs.
func DefaultConfigBytes() []byte {
	return defaultConfig
}

type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errNotImplemented
}

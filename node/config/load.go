package config

import (
	"bytes"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/kelseyhightower/envconfig"
	"golang.org/x/xerrors"
)

// EnvPrefix is the prefix of environment variables overriding config fields,
// e.g. LOTUS_ESCROW_API_LISTENADDRESS.
const EnvPrefix = "LOTUS_ESCROW"

// FromFile loads config from a specified file overriding defaults specified in
// the def parameter. If file does not exist or is empty defaults are assumed.
func FromFile(path string, def interface{}) (interface{}, error) {
	file, err := os.Open(path)
	switch {
	case os.IsNotExist(err):
		return FromEnv(def)
	case err != nil:
		return nil, err
	}

	defer file.Close() //nolint:errcheck // The file is RO
	return FromReader(file, def)
}

// FromReader loads config from a reader instance.
func FromReader(reader io.Reader, def interface{}) (interface{}, error) {
	cfg := def
	_, err := toml.NewDecoder(reader).Decode(cfg)
	if err != nil {
		return nil, err
	}

	return FromEnv(cfg)
}

// FromEnv applies environment overrides to cfg.
func FromEnv(cfg interface{}) (interface{}, error) {
	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, xerrors.Errorf("processing env vars overrides: %s", err)
	}

	return cfg, nil
}

// ConfigComment renders cfg as TOML with every line commented out, the way a
// freshly initialized repo shows the defaults.
func ConfigComment(t interface{}) ([]byte, error) {
	buf := new(bytes.Buffer)
	_, _ = buf.WriteString("# Default config:\n")
	e := toml.NewEncoder(buf)
	if err := e.Encode(t); err != nil {
		return nil, xerrors.Errorf("encoding config: %w", err)
	}
	b := buf.Bytes()
	b = bytes.ReplaceAll(b, []byte("\n"), []byte("\n#"))
	b = bytes.ReplaceAll(b, []byte("#["), []byte("["))
	return b, nil
}

// ConfigUpdate renders cfg as TOML.
func ConfigUpdate(cfg interface{}) ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := toml.NewEncoder(buf).Encode(cfg); err != nil {
		return nil, xerrors.Errorf("encoding config: %w", err)
	}
	return buf.Bytes(), nil
}

package config

import (
	_ "embed"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	tkerrors "github.com/arthur-debert/textkit/pkg/errors"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// ConfigFileName is the name of the optional user configuration file
const ConfigFileName = "textkit.toml"

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// Load builds the configuration from defaults, config files and environment.
// Precedence, lowest to highest: embedded defaults, XDG config file,
// working-directory config file, TEXTKIT_* environment variables.
func Load() (*Config, error) {
	k := koanf.New(".")

	// 1. Hard defaults, so a broken embedded file cannot leave width unset
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"width": DefaultWidth,
	}, "."), nil); err != nil {
		return nil, tkerrors.Wrap(err, tkerrors.ErrConfigLoad, "failed to load base defaults")
	}

	// 2. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, tkerrors.Wrap(err, tkerrors.ErrConfigLoad, "failed to load embedded defaults")
	}

	// 3. Config files, lowest precedence first
	for _, path := range configFilePaths() {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, tkerrors.Wrapf(err, tkerrors.ErrConfigParse, "failed to parse config from %s", path)
		}
	}

	// 4. Environment variables: TEXTKIT_WIDTH=100 -> width
	if err := k.Load(env.Provider("TEXTKIT_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "TEXTKIT_"))
	}), nil); err != nil {
		return nil, tkerrors.Wrap(err, tkerrors.ErrConfigLoad, "failed to load environment config")
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, tkerrors.Wrap(err, tkerrors.ErrConfigParse, "failed to unmarshal config")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// configFilePaths returns the candidate config file locations in
// increasing precedence order
func configFilePaths() []string {
	return []string{
		filepath.Join(xdg.ConfigHome, "textkit", ConfigFileName),
		ConfigFileName,
	}
}

// Package config loads the dirkeep configuration file and compiles it
// into the validated rule model.
//
// Loading follows a layered koanf pipeline: embedded defaults, then
// the user's config file (TOML or YAML), then DIRKEEP_* environment
// variables. The result is unmarshalled into the raw Config structs,
// validated, and finally compiled by BuildRuleSet into a
// rules.RuleSet with all paths expanded to absolute form.
package config

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	dkerrors "github.com/arthur-debert/dirkeep/pkg/errors"
	"github.com/arthur-debert/dirkeep/pkg/logging"
)

var errNotImplemented = errors.New("not implemented")

// envPrefix is the prefix for environment variable overrides, e.g.
// DIRKEEP_SETTINGS_COLOR=false.
const envPrefix = "DIRKEEP_"

// baseConfig holds the hard defaults that apply even when the
// embedded starter file is edited out of shape.
var baseConfig = map[string]interface{}{
	"settings.color":       true,
	"settings.use-unicode": true,
	"automove.report-info": "any",
}

// Load reads the configuration from the given file path. An empty
// path loads only the embedded defaults and environment overrides,
// which yields a valid but ruleless configuration.
func Load(path string) (*Config, error) {
	logger := logging.GetLogger("config")

	k := koanf.New(".")

	// 1. Hard defaults, then the embedded starter file
	if err := k.Load(confmap.Provider(baseConfig, "."), nil); err != nil {
		return nil, dkerrors.Wrap(err, dkerrors.ErrConfigLoad, "failed to load base defaults")
	}
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, dkerrors.Wrap(err, dkerrors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. User config file
	if path != "" {
		parser, err := parserFor(path)
		if err != nil {
			return nil, err
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, dkerrors.Wrapf(err, dkerrors.ErrConfigParse,
				"failed to parse config file %s", path)
		}
		logger.Debug().Str("path", path).Msg("Loaded config file")
	}

	// 3. Environment overrides
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "_", ".")
	}), nil); err != nil {
		return nil, dkerrors.Wrap(err, dkerrors.ErrConfigLoad, "failed to load env overrides")
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, dkerrors.Wrap(err, dkerrors.ErrConfigParse, "failed to unmarshal config")
	}

	if path != "" {
		cfg.ConfigDir = filepath.Dir(path)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	logger.Debug().
		Int("dirRules", len(cfg.Dirs)).
		Int("moveRules", len(cfg.AutoMove.Rules)).
		Msg("Configuration loaded")

	return &cfg, nil
}

func parserFor(path string) (koanf.Parser, error) {
	switch ext := filepath.Ext(path); ext {
	case ".toml":
		return toml.Parser(), nil
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	default:
		return nil, dkerrors.Newf(dkerrors.ErrConfigLoad,
			"unsupported config format %q (want .toml or .yaml)", ext)
	}
}

// validate applies struct-level validation to the raw configuration
// before matcher compilation. Anything it rejects is a fatal
// configuration error.
func validate(cfg *Config) error {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			first := verrs[0]
			return dkerrors.Newf(dkerrors.ErrConfigInvalid,
				"invalid configuration: %s fails %q", first.Namespace(), first.Tag())
		}
		return dkerrors.Wrap(err, dkerrors.ErrConfigInvalid, "invalid configuration")
	}
	return nil
}

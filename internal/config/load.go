package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	configName   = "config"
	configType   = "toml"
	configDir    = ".nustudy"
	dataFileName = "nustudy.txt"
	envPrefix    = "NUSTUDY"

	DataPathKey = "data.path"
	LogLevelKey = "log.level"

	configFileMode = 0o600
	configDirMode  = 0o700
)

var ErrConfigExists = errors.New("config file already exists")

// Load reads ~/.nustudy/config.toml when present. Environment variables
// (NUSTUDY_DATA_PATH, NUSTUDY_LOG_LEVEL) and values already Set on v take
// precedence over the file.
func Load(v *viper.Viper) (Config, error) {
	if v == nil {
		v = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("resolve home directory: %w", err)
	}

	v.SetConfigName(configName)
	v.SetConfigType(configType)
	v.AddConfigPath(filepath.Join(homeDir, configDir))
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults := Default(homeDir)
	v.SetDefault(DataPathKey, defaults.Data.Path)
	v.SetDefault(LogLevelKey, defaults.Log.Level)

	if err := v.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := Config{
		Data: DataConfig{Path: expandHome(v.GetString(DataPathKey), homeDir)},
		Log:  LogConfig{Level: strings.ToLower(v.GetString(LogLevelKey))},
	}

	if err := Validate(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks the struct tags on cfg. Required nested sections are only
// enforced with WithRequiredStructEnabled.
func Validate(cfg Config) error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}
	return nil
}

func Default(homeDir string) Config {
	return Config{
		Data: DataConfig{Path: filepath.Join(homeDir, configDir, dataFileName)},
		Log:  LogConfig{Level: "warn"},
	}
}

// FilePath is where Load looks for the config file.
func FilePath(homeDir string) string {
	return filepath.Join(homeDir, configDir, configName+"."+configType)
}

// WriteFile encodes cfg as TOML at path. An existing file is only replaced
// when overwrite is set.
func WriteFile(path string, cfg Config, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w: %s", ErrConfigExists, path)
		}
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config file: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), configDirMode); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	if err := os.WriteFile(path, data, configFileMode); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

func expandHome(path, homeDir string) string {
	if path == "~" {
		return homeDir
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(homeDir, path[2:])
	}
	return path
}

package cli

import (
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/quickprint-soft/gtest-run/internal/config"
	"github.com/quickprint-soft/gtest-run/internal/errors"
)

// Env looks up environment variables for the run.
type Env func(key string) (string, bool)

// Getenv returns the value of key, or "" when unset.
func (e Env) Getenv(key string) string {
	v, _ := e(key)
	return v
}

// newEnv returns the process environment, overlaid by the dotenv file at
// envFile when one is given. Values from the file take precedence.
func newEnv(envFile string) (Env, error) {
	if envFile == "" {
		return Env(lookupEnv), nil
	}
	vars, err := godotenv.Read(envFile)
	if err != nil {
		return nil, errors.Configf("failed to read env file %s: %v", envFile, err)
	}
	return func(key string) (string, bool) {
		if v, ok := vars[key]; ok {
			return v, true
		}
		return lookupEnv(key)
	}, nil
}

// resolveSettings merges built-in defaults, the config file and the flags,
// in increasing order of precedence.
func resolveSettings(opts *flagValues) (config.Settings, Env, error) {
	settings := config.Defaults()

	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return settings, nil, err
	}
	cfg.ApplyTo(&settings)
	opts.applyTo(&settings)

	if err := config.Validate(settings); err != nil {
		return settings, nil, errors.Config(err.Error())
	}

	env, err := newEnv(settings.EnvFile)
	if err != nil {
		return settings, nil, err
	}
	return settings, env, nil
}

// loadConfig loads the explicit config path, which must exist, or the
// optional default file in the working directory.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		cfg, err := config.Load(path)
		if err != nil {
			return nil, errors.Configf("config %s: %v", path, err)
		}
		return cfg, nil
	}

	wd, err := getwd()
	if err != nil {
		return nil, nil
	}
	path = filepath.Join(wd, config.DefaultFileName)
	cfg, err := config.LoadOptional(path)
	if err != nil {
		return nil, errors.Configf("config %s: %v", path, err)
	}
	return cfg, nil
}

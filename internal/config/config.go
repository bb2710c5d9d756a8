// Package config resolves patterncli settings from flags, environment variables,
// an optional YAML config file and a local .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by Load,
// e.g. PATTERNCLI_PROMPT or PATTERNCLI_HISTORY_FILE.
const EnvPrefix = "PATTERNCLI"

// DefaultPrompt is used when no prompt is configured.
const DefaultPrompt = "cli> "

// Setting keys. They double as the names of the cobra flags bound to them.
const (
	KeyConfig          = "config"
	KeyPrompt          = "prompt"
	KeyHistoryFile     = "history-file"
	KeyLogLevel        = "log-level"
	KeyLogFile         = "log-file"
	KeyCompletionsFile = "completions-file"
)

// Config holds the resolved settings.
type Config struct {
	Prompt          string
	HistoryFile     string
	LogLevel        string
	LogFile         string
	CompletionsFile string
}

// Load resolves settings from v. Values bound to flags win over environment
// variables, which win over the config file named by KeyConfig.
func Load(v *viper.Viper) (*Config, error) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	v.SetDefault(KeyPrompt, DefaultPrompt)

	if path := v.GetString(KeyConfig); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	return &Config{
		Prompt:          v.GetString(KeyPrompt),
		HistoryFile:     v.GetString(KeyHistoryFile),
		LogLevel:        v.GetString(KeyLogLevel),
		LogFile:         v.GetString(KeyLogFile),
		CompletionsFile: v.GetString(KeyCompletionsFile),
	}, nil
}

// LoadDotEnv exports the variables of the .env file at path into the process
// environment. Variables already set keep their value. A missing file is not an
// error. Returns the names of the variables that were exported.
func LoadDotEnv(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read .env file %s: %w", path, err)
	}

	envMap, err := godotenv.Unmarshal(string(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse .env file %s: %w", path, err)
	}

	var exported []string
	for key, value := range envMap {
		if _, set := os.LookupEnv(key); set {
			continue
		}
		if err := os.Setenv(key, value); err != nil {
			return exported, fmt.Errorf("failed to set %s: %w", key, err)
		}
		exported = append(exported, key)
	}
	return exported, nil
}

package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/julianstephens/ritmo/internal/constants"
)

// Config holds environment-derived settings that layer under the CLI flags.
type Config struct {
	DBPath string
	Debug  bool
}

// Load reads an optional .env file from the current directory and the config
// directory, then resolves RITMO_DB and RITMO_DEBUG from the environment.
// A missing .env file is not an error.
func Load() Config {
	_ = godotenv.Load()
	if dir, err := ConfigDir(); err == nil {
		_ = godotenv.Load(filepath.Join(dir, ".env"))
	}

	cfg := Config{}
	if v := os.Getenv("RITMO_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("RITMO_DEBUG"); v != "" {
		debug, err := strconv.ParseBool(v)
		cfg.Debug = err == nil && debug
	}
	return cfg
}

// ConfigDir returns the directory holding the default database, logs, and backups.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", constants.AppName), nil
}

// ExpandPath expands a leading ~/ in a path to the user's home directory.
func ExpandPath(path string) string {
	if len(path) >= 2 && path[:2] == "~/" {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}

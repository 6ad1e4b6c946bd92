package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// LoadEnvFile loads environment variables from a .env file.
// If envFile is empty, .env in the current directory is used.
// A missing file is not an error; loaded reports whether anything was read.
func LoadEnvFile(envFile string) (loaded bool, err error) {
	if envFile == "" {
		envFile = ".env"
	}

	if _, err := os.Stat(envFile); errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}

	if err := godotenv.Load(envFile); err != nil {
		return false, err
	}
	return true, nil
}

// Environment returns APP_ENV, defaulting to "development"
func Environment() string {
	if env := os.Getenv("APP_ENV"); env != "" {
		return env
	}
	return "development"
}

package utils

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// GetEnv returns the value of the environment variable key or fallback when unset.
func GetEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

// LoadEnvironment loads .env from the working directory and then from the
// executable's directory. Variables already set are never overridden.
// It returns the files that were loaded.
func LoadEnvironment() []string {
	var loaded []string
	if err := godotenv.Load(); err == nil {
		loaded = append(loaded, ".env")
	}

	execPath, err := os.Executable()
	if err != nil {
		return loaded
	}
	envPath := filepath.Join(filepath.Dir(execPath), ".env")
	if err := godotenv.Load(envPath); err == nil {
		loaded = append(loaded, envPath)
	}
	return loaded
}

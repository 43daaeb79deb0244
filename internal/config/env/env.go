package env

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Dir is where per-environment .env files live, relative to the working directory
var Dir = filepath.Join("internal", "config", "env")

// Candidates returns the .env files to try for the given environment, most specific first
func Candidates(envName string) []string {
	if envName == "" {
		envName = "development"
	}
	return []string{
		filepath.Join(Dir, fmt.Sprintf(".env.%s", envName)),
		".env",
	}
}

// LoadEnv loads the first .env file that exists for the current ENV.
// Variables already present in the process environment are never overridden.
// It returns the file that was loaded, or an empty string when none was found.
func LoadEnv() string {
	for _, path := range Candidates(os.Getenv("ENV")) {
		if err := godotenv.Load(path); err == nil {
			return path
		}
	}
	return ""
}

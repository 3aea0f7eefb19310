package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

const defaultDotEnvFile = ".env"

// loadDotEnv loads a dotenv file into the process environment. Variables
// already present in the environment are never overwritten.
//
// The file is taken from ENV_FILE; when ENV_FILE is unset, ".env" in the
// working directory is loaded if it exists. A missing file named explicitly
// by ENV_FILE is an error.
func loadDotEnv() error {
	path, explicit := os.LookupEnv("ENV_FILE")
	if !explicit || path == "" {
		path = defaultDotEnvFile
		explicit = false
	}

	if err := godotenv.Load(path); err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("error loading dotenv file %q: %w", path, err)
	}

	return nil
}

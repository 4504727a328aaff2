package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// DotEnvPath returns the absolute path to ~/.skillscout/.env.
func DotEnvPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ".env"), nil
}

// GetConfigValue returns the effective value for key, using process
// environment variables first and falling back to ~/.skillscout/.env.
func GetConfigValue(key string) (string, error) {
	if v := os.Getenv(key); v != "" {
		return v, nil
	}
	p, err := DotEnvPath()
	if err != nil {
		return "", err
	}
	env, err := godotenv.Read(p)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("cannot read dotenv file %s: %w", p, err)
	}
	return env[key], nil
}

// EnsureDotEnvTemplate creates ~/.skillscout/.env if it does not already
// exist, with empty keys the user can fill in to enable embeddings.
func EnsureDotEnvTemplate() error {
	p, err := DotEnvPath()
	if err != nil {
		return err
	}

	if _, err := os.Stat(p); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("cannot stat dotenv file %s: %w", p, err)
	}

	body := "" +
		"SKILLSCOUT_EMBEDDINGS_PROVIDER=\n" +
		"SKILLSCOUT_EMBEDDINGS_MODEL=\n" +
		"SKILLSCOUT_EMBEDDINGS_API_KEY=\n"

	if err := os.WriteFile(p, []byte(body), 0o600); err != nil {
		return fmt.Errorf("cannot write dotenv template %s: %w", p, err)
	}
	return nil
}

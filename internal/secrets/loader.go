package secrets

import (
	"fmt"
	"os"
	"strings"
)

// Source describes how to load a secret value.
type Source struct {
	// Name is used in error messages to give more context about the secret.
	Name string
	// Value is an inline secret value provided via configuration or flags.
	Value string
	// File points to a file containing the secret value. When readable it
	// takes precedence over Value.
	File string
	// Env names an environment variable consulted when neither File nor
	// Value yield a secret.
	Env string
}

// Load returns the resolved secret value from the provided source, first
// non-empty wins: File, then Value, then the Env variable. An unreadable
// file does not abort the lookup; its error is surfaced only when no later
// source resolves either. The returned secret is always trimmed.
func Load(src Source) (string, error) {
	name := strings.TrimSpace(src.Name)
	if name == "" {
		name = "secret"
	}

	var fileErr error

	file := strings.TrimSpace(src.File)
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			fileErr = fmt.Errorf("reading %s from file %q: %w", name, file, err)
		} else {
			src.Value = string(data)
		}
		src.File = file
	}

	secret := strings.TrimSpace(src.Value)

	if secret == "" && src.Env != "" {
		secret = strings.TrimSpace(os.Getenv(src.Env))
	}

	if secret == "" {
		if fileErr != nil {
			return "", fileErr
		}
		if file != "" {
			return "", fmt.Errorf("%s file %q is empty", name, file)
		}
		if src.Env != "" {
			return "", fmt.Errorf("%s is not configured (set the %s environment variable)", name, src.Env)
		}
		return "", fmt.Errorf("%s is not configured", name)
	}

	return secret, nil
}

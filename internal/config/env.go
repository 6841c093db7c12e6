// Package config reads runtime settings from the environment.
package config

import "os"

// GetEnv returns the environment variable named by key, or fallback when it
// is unset. An empty-but-set variable is returned as-is.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

const (
	DefaultInput  = "bos.json"
	DefaultOutput = "boss.json"
)

// Config holds the defaults for the CLI and the optional Neo4j target.
type Config struct {
	InputPath     string
	OutputPath    string
	Format        string
	LogLevel      string
	LogFile       string
	Neo4jURI      string
	Neo4jUser     string
	Neo4jPassword string
	Neo4jDatabase string
}

// LoadConfig loads the configuration from environment variables.
func LoadConfig() Config {
	return Config{
		InputPath:     getEnv("BOSS_INPUT", DefaultInput),
		OutputPath:    getEnv("BOSS_OUTPUT", DefaultOutput),
		Format:        getEnv("BOSS_FORMAT", "json"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFile:       os.Getenv("LOG_FILE"),
		Neo4jURI:      os.Getenv("NEO4J_URI"),
		Neo4jUser:     os.Getenv("NEO4J_USER"),
		Neo4jPassword: os.Getenv("NEO4J_PASSWORD"),
		Neo4jDatabase: os.Getenv("NEO4J_DATABASE"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

// LoadEnv loads environment variables from a .env file, searching up the directory tree.
func LoadEnv() error {
	dir, err := os.Getwd()
	if err != nil {
		return err
	}

	for {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			// Found it
			return godotenv.Load(envPath)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break // Reached root
		}
		dir = parent
	}

	// Not found is fine
	return nil
}

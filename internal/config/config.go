package config

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

// Fixed store coordinates. The database and collection names are constants
// of the system; only the endpoint is expected to vary between environments.
const (
	DefaultMongoURI   = "mongodb://localhost:27017"
	DefaultDatabase   = "bookstore"
	DefaultCollection = "books"
)

// Config holds the application configuration
type Config struct {
	Mongo   MongoConfig   `yaml:"mongo"`
	Logging LoggingConfig `yaml:"logging"`
}

// MongoConfig points the store at one collection in one database
type MongoConfig struct {
	URI        string `yaml:"uri"`
	Database   string `yaml:"database"`
	Collection string `yaml:"collection"`
}

// LoadConfig loads configuration from files and environment variables
// Order: defaults -> config.yml -> config.local.yml -> ApplyDefaults -> ApplyEnvOverrides -> Validate
func LoadConfig() *Config {
	// 1. Start with default values (so YAML can override them, including bool fields)
	cfg := &Config{
		Mongo:   DefaultMongoConfig(),
		Logging: DefaultLoggingConfig(),
	}

	// 2. Load config.yml (overrides defaults)
	loadFile("config/config.yml", cfg)

	// 3. Load config.local.yml (overrides config.yml)
	loadFile("config/config.local.yml", cfg)

	// 4. Apply configuration lifecycle: ApplyDefaults fills gaps, ApplyEnvOverrides, Validate
	cfg.Mongo.ApplyDefaults()
	cfg.Mongo.ApplyEnvOverrides()
	cfg.Logging.ApplyDefaults()

	if err := cfg.Mongo.Validate(); err != nil {
		log.Fatalf("Configuration error: %v", err)
	}
	if err := cfg.Logging.Validate(); err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	return cfg
}

func loadFile(filename string, cfg *Config) {
	data, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return // File doesn't exist, skip
		}
		log.Printf("Warning: Error reading %s: %v", filename, err)
		return
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		log.Printf("Warning: Error parsing %s: %v", filename, err)
	}
}

// DefaultMongoConfig returns the local development defaults
func DefaultMongoConfig() MongoConfig {
	return MongoConfig{
		URI:        DefaultMongoURI,
		Database:   DefaultDatabase,
		Collection: DefaultCollection,
	}
}

// ApplyDefaults fills in zero values with defaults.
func (c *MongoConfig) ApplyDefaults() {
	defaults := DefaultMongoConfig()
	if c.URI == "" {
		c.URI = defaults.URI
	}
	if c.Database == "" {
		c.Database = defaults.Database
	}
	if c.Collection == "" {
		c.Collection = defaults.Collection
	}
}

// ApplyEnvOverrides applies environment variable overrides. MONGO_URI
// replaces the endpoint and DB_NAME the database name; the collection
// name is fixed.
func (c *MongoConfig) ApplyEnvOverrides() {
	if val := os.Getenv("MONGO_URI"); val != "" {
		c.URI = val
	}
	if val := os.Getenv("DB_NAME"); val != "" {
		c.Database = val
	}
}

// Validate validates the configuration.
func (c *MongoConfig) Validate() error {
	if c.URI == "" {
		return fmt.Errorf("mongo.uri is required")
	}
	if c.Database == "" {
		return fmt.Errorf("mongo.database is required")
	}
	if c.Collection == "" {
		return fmt.Errorf("mongo.collection is required")
	}
	return nil
}

package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/userstore/internal/flagx"
)

// JsonConfig is the DTO used for reading JSON configuration files. After
// unmarshalling, its fields are copied into the runtime Config.
type JsonConfig struct {
	Backend         string `json:"backend"`
	MongoURI        string `json:"mongo_uri"`
	MongoDatabase   string `json:"mongo_database"`
	MongoCollection string `json:"mongo_collection"`
	DatabaseDSN     string `json:"database_dsn"`
	DefaultRealm    string `json:"default_realm"`
}

// parseJson loads configuration values from the JSON file named by the
// -c or -config command-line flags. When neither flag is set, nothing is
// loaded. Empty JSON fields leave the current Config values in place.
// An unreadable file or invalid JSON panics.
func parseJson(config *Config) {

	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.Backend != "" {
		config.Backend = c.Backend
	}
	if c.MongoURI != "" {
		config.MongoURI = c.MongoURI
	}
	if c.MongoDatabase != "" {
		config.MongoDatabase = c.MongoDatabase
	}
	if c.MongoCollection != "" {
		config.MongoCollection = c.MongoCollection
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.DefaultRealm != "" {
		config.DefaultRealm = c.DefaultRealm
	}
}

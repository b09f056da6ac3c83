package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/userstore/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-b string   storage backend: "mongo" or "postgres"
//	-m string   MongoDB URI (e.g., "mongodb://127.0.0.1:27017")
//	-n string   MongoDB database name
//	-l string   MongoDB collection name
//	-d string   PostgreSQL DSN
//	-r string   default realm
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, so subcommands and their positional arguments pass
// through untouched.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-b", "-m", "-n", "-l", "-d", "-r"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.Backend, "b", config.Backend, "storage backend (mongo|postgres)")
	fs.StringVar(&config.MongoURI, "m", config.MongoURI, "MongoDB URI")
	fs.StringVar(&config.MongoDatabase, "n", config.MongoDatabase, "MongoDB database name")
	fs.StringVar(&config.MongoCollection, "l", config.MongoCollection, "MongoDB collection name")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.DefaultRealm, "r", config.DefaultRealm, "default realm")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}

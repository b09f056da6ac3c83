package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/userstore/internal/cli"
	"github.com/dmitrijs2005/userstore/internal/config"
	"github.com/dmitrijs2005/userstore/internal/logging"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.NewJSON(os.Stderr)

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := app.Run(ctx, os.Args[1:]); err != nil {
		log.Fatalf("%v", err)
	}
}

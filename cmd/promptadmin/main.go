package main

import (
	"context"
	"log"
	"os"

	"promptadmin/internal/buildinfo"
	"promptadmin/internal/cli"
	"promptadmin/internal/config"
	"promptadmin/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.NewTextLogger(os.Stderr, cfg.LogLevel)

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)
}

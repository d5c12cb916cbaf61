package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/insula/internal/buildinfo"
	"github.com/dmitrijs2005/insula/internal/client/cli"
	"github.com/dmitrijs2005/insula/internal/client/client"
	"github.com/dmitrijs2005/insula/internal/client/config"
	"github.com/dmitrijs2005/insula/internal/client/session"
	"github.com/dmitrijs2005/insula/internal/client/storage"
	"github.com/dmitrijs2005/insula/internal/filex"
	"github.com/dmitrijs2005/insula/internal/logging"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	if err := config.LoadDotenv(); err != nil {
		log.Printf("%v", err)
	}
	cfg, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		log.Fatalf("%v", err)
	}

	logger := logging.NewText(os.Stderr, cfg.LogLevel)
	ctx := context.Background()

	db, err := storage.OpenDatabase(ctx, cfg.DatabasePath)
	if err != nil {
		log.Fatalf("error initializing database: %v", err)
	}
	defer db.Close()

	var st storage.Storage = storage.NewSQLite(db)
	if cfg.SealSession {
		km, err := filex.LoadOrCreateKey(cfg.KeyFile)
		if err != nil {
			log.Fatalf("error loading key file: %v", err)
		}
		st = storage.NewSealed(st, km.Secret, km.Salt)
	}

	api := client.NewHTTPClient(cfg.APIBaseURL, cfg.RequestTimeout, logger)
	store := session.New(ctx, api, st, logger, session.WithStorageKey(cfg.StorageKey))

	cli.NewApp(store, os.Stdin, os.Stdout, logger).Run(ctx)
}

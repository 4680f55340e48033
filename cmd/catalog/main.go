package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/talkincode/tinyshop/config"
	"github.com/talkincode/tinyshop/internal/app"
	"github.com/talkincode/tinyshop/internal/catalogapi"
	"github.com/talkincode/tinyshop/internal/webserver"
)

var BuildVersion = "develop"

// releaseApp closes the database pool and flushes the logger
var releaseApp = (*app.Application).Release

// @title TinyShop Catalog API
// @version 1.0
// @description Product catalog CRUD service
// @BasePath /
func main() {
	os.Exit(execute(os.Args[1:], os.Stdout))
}

// execute runs the server and returns the process exit code.
// Deferred cleanup runs before main exits.
func execute(args []string, stdout io.Writer) int {
	fs := flag.NewFlagSet("catalog", flag.ContinueOnError)
	conffile := fs.String("c", "", "config yaml file")
	initdb := fs.Bool("initdb", false, "drop and recreate the catalog tables, then seed them")
	showVer := fs.Bool("v", false, "show version")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *showVer {
		fmt.Fprintln(stdout, BuildVersion)
		return 0
	}

	_ = godotenv.Load()
	cfg := config.LoadConfig(*conffile)

	application := app.NewApplication(cfg)
	application.Init(cfg)
	defer releaseApp(application)

	if *initdb {
		application.InitDb()
		if err := app.SeedCatalog(context.Background(), application); err != nil {
			zap.S().Errorf("seed catalog: %v", err)
			return 1
		}
		zap.S().Info("catalog database initialized")
		return 0
	}

	if err := run(application); err != nil {
		zap.S().Error(err)
		return 1
	}
	return 0
}

func run(application *app.Application) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := webserver.NewServer(application.Config().Web)
	catalogapi.Register(srv, catalogapi.Deps{
		Products: application.ProductContexts(),
		DB:       application.DB(),
	})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(srv.Start)
	g.Go(func() error {
		<-gctx.Done()
		zap.S().Info("shutting down web server")
		return srv.Shutdown(context.Background())
	})
	return g.Wait()
}

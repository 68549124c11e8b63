package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v2"

	"github.com/truethread/storefront/config"
	"github.com/truethread/storefront/internal/app"
	"github.com/truethread/storefront/internal/webapi"
)

var (
	h bool
	x bool
	c = flag.String("c", "storefront.yml", "config file")
)

func init() {
	flag.BoolVar(&h, "h", false, "help usage")
	flag.BoolVar(&x, "x", false, "print default config")
}

func printHelp() {
	if h {
		fmt.Fprintf(os.Stderr, "Usage: storefrontd -c storefront.yml\n")
		flag.PrintDefaults()
		os.Exit(0)
	}
}

func main() {
	flag.Parse()
	printHelp()

	if x {
		bs, _ := yaml.Marshal(config.DefaultAppConfig)
		fmt.Println(string(bs))
		os.Exit(0)
	}

	appConfig, err := config.LoadConfig(*c)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	application := app.NewApplication(appConfig)
	if err := application.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "init error: %v\n", err)
		os.Exit(1)
	}
	defer application.Release()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	application.StartBackgroundJobs(ctx)

	server, err := webapi.NewServer(appConfig, application.Catalog(), application.Maintenance(),
		application.Intake(), application.Blobs())
	if err != nil {
		zap.L().Fatal("web server setup failed", zap.Error(err))
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(server.Start)
	g.Go(func() error {
		<-ctx.Done()
		return server.Shutdown()
	})

	if err := g.Wait(); err != nil {
		zap.L().Error("server stopped", zap.Error(err))
	}
}

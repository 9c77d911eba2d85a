// cmd/mysqldumpgz/main.go
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/JotaJota96/mysqldumpgz/internal/app"
	"github.com/JotaJota96/mysqldumpgz/internal/cli"
	"github.com/JotaJota96/mysqldumpgz/internal/config"
	"github.com/JotaJota96/mysqldumpgz/internal/display"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	printer := display.NewPrinter()

	cfg, err := config.Load(os.Getenv("MYSQLDUMPGZ_CONFIG"))
	if err != nil {
		printer.Errorf("Configuration error: %v", err)
		return config.ExitArgs
	}

	req, err := cli.Parse(cfg, args)
	if err != nil {
		printer.Errorf("%v", err)
		return config.ExitArgs
	}

	application, err := app.New(cfg, printer)
	if err != nil {
		printer.Errorf("%v", err)
		return config.ExitArgs
	}
	defer application.Shutdown()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return application.Run(ctx, req)
}

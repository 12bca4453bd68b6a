package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"appointment-finder/cmd/bootstrap"
	"appointment-finder/internal/handler/cli"
	"appointment-finder/internal/pkg/logging"
	"appointment-finder/internal/usecase"

	"go.uber.org/fx"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		finder    usecase.FinderUseCase
		locations usecase.LocationUseCase
	)

	app := fx.New(
		bootstrap.CoreModule,
		fx.Supply(bootstrap.LogOutput{Writer: os.Stderr, Format: logging.FormatText}),
		fx.Populate(&finder, &locations),
		fx.NopLogger,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Start(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "failed to start:", err)
		return 1
	}
	defer func() { _ = app.Stop(context.Background()) }()

	cli.SetServices(finder, locations)
	if err := cli.Execute(ctx); err != nil {
		return 1
	}
	return 0
}

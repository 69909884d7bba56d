package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	fiberSwagger "github.com/swaggo/fiber-swagger"

	_ "salary-viz-service/docs"
	httpadapter "salary-viz-service/internal/salaries/adapters/http/fiber"
	"salary-viz-service/internal/salaries/core/usecase"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the chart API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := opts.setup()
			if err != nil {
				return err
			}

			a, err := bootstrap(cmd.Context(), cfg, logger)
			if a != nil {
				defer a.Close()
			}
			if err != nil {
				if a == nil || !errors.Is(err, usecase.ErrLoadFailure) {
					return err
				}
				logger.Warn("serving without a dataset; POST /dataset/reload to retry")
			}

			app := newHTTPApp(a)

			// Graceful shutdown
			go func() {
				if err := app.Listen(cfg.Server.Addr); err != nil {
					logger.Error("fiber stopped", logger.Args("error", err.Error()))
				}
			}()

			logger.Info("server started", logger.Args("addr", cfg.Server.Addr))

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

			<-quit

			logger.Info("shutting down...")

			ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
			defer cancel()

			if err := app.ShutdownWithContext(ctx); err != nil {
				logger.Error("fiber shutdown error", logger.Args("error", err.Error()))
			}

			logger.Info("server exiting")
			return nil
		},
	}
}

func newHTTPApp(a *app) *fiber.App {
	app := fiber.New(fiber.Config{AppName: "salary-viz-service"})

	httpadapter.RegisterRoutes(app, httpadapter.Handlers{
		Dataset: httpadapter.NewDatasetHandler(a.datasetUC),
		Filter:  httpadapter.NewFilterHandler(a.filterUC, a.highlightUC),
		Chart:   httpadapter.NewChartHandler(a.chartUC),
	})

	// Swagger
	app.Get("/docs/*", fiberSwagger.WrapHandler)

	return app
}

package cmd

import (
	"context"
	"crypto-analysis/internal/delivery/http"
	"crypto-analysis/internal/repository"
	"crypto-analysis/internal/service"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Run the dashboard HTTP server",
	RunE:  Start,
}

func Start(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	appDep, err := NewAppDependency(ctx, configPath)
	if err != nil {
		return err
	}
	defer appDep.Close()

	repo := repository.NewRepository(appDep.cfg, appDep.cache, appDep.log)
	services := service.NewService(appDep.cfg, appDep.log, repo)
	httpHandler := http.NewHttpAPIHandler(ctx, appDep.echo, appDep.validator, services, appDep.log)

	apiServer := NewHTTPServer(ctx, appDep, httpHandler)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(apiServer.Start)
	g.Go(func() error {
		<-gctx.Done()
		appDep.log.Info("Shutting down gracefully")
		return apiServer.Stop()
	})

	return g.Wait()
}

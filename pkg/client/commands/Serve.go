package commands

import (
	"context"
	"errors"
	"github.com/cenkalti/backoff/v4"
	"github.com/gin-gonic/gin"
	"github.com/simplecontainer/inventory/pkg/api"
	"github.com/simplecontainer/inventory/pkg/client"
	"github.com/simplecontainer/inventory/pkg/command"
	"github.com/simplecontainer/inventory/pkg/contracts/iapi"
	"github.com/simplecontainer/inventory/pkg/contracts/icommand"
	"github.com/simplecontainer/inventory/pkg/logger"
	"go.uber.org/zap"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

const SHUTDOWN_TIMEOUT = 10 * time.Second

func Serve() icommand.Command {
	return command.NewBuilder().
		Parent(ROOT).
		Name("serve").
		Short("Serve the inventory over HTTP").
		DependsOn(Connect, WaitForRuntime).
		Function(func(cli *client.Client, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return Listen(ctx, cli)
		}).
		BuildWithValidation()
}

// WaitForRuntime retries the engine ping with exponential backoff until the
// configured timeout passes.
func WaitForRuntime(cli *client.Client, args []string) error {
	ctx, cancel := cli.Context()
	defer cancel()

	return backoff.Retry(func() error {
		err := cli.Runtime.Ping(ctx)

		if err != nil {
			logger.Log.Info("waiting for the runtime", zap.Error(err))
		}

		return err
	}, backoff.WithContext(backoff.NewExponentialBackOff(), ctx))
}

// Listen serves the API until the context is cancelled, then drains
// in-flight requests.
func Listen(ctx context.Context, cli *client.Client) error {
	if logger.Log.Core().Enabled(zap.DebugLevel) {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	var handler iapi.Api = api.NewApi(cli.Config, cli.Runtime, cli.Registry, cli.Version)

	server := &http.Server{
		Addr:              cli.Config.Listen,
		Handler:           handler.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errs := make(chan error, 1)

	go func() {
		logger.Log.Info("api listening", zap.String("address", cli.Config.Listen))
		errs <- server.ListenAndServe()
	}()

	select {
	case err := <-errs:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}

		return err
	case <-ctx.Done():
		logger.Log.Info("shutting down api")

		shutdown, cancel := context.WithTimeout(context.Background(), SHUTDOWN_TIMEOUT)
		defer cancel()

		return server.Shutdown(shutdown)
	}
}

package client

import (
	"context"
	"github.com/simplecontainer/inventory/pkg/configuration"
	"github.com/simplecontainer/inventory/pkg/contracts/iruntime"
	"github.com/simplecontainer/inventory/pkg/formaters"
	"github.com/simplecontainer/inventory/pkg/helpers"
	"github.com/simplecontainer/inventory/pkg/kinds"
	"github.com/simplecontainer/inventory/pkg/logger"
	"github.com/simplecontainer/inventory/pkg/runtime/docker"
	"github.com/simplecontainer/inventory/pkg/runtime/snapshot"
	"github.com/simplecontainer/inventory/pkg/startup"
	"github.com/simplecontainer/inventory/pkg/static"
	"github.com/simplecontainer/inventory/pkg/version"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"os"
)

func New(v *version.Version) *Client {
	return &Client{
		Config:      configuration.NewConfig(),
		Registry:    kinds.BuildRegistry(),
		Version:     v,
		Out:         os.Stdout,
		Connect:     Connect,
		Confirm:     helpers.Confirm,
		Interactive: helpers.IsTerminal(os.Stdin),
	}
}

// Load resolves the configuration from flags, environment and file, then
// prepares the logger and the output formatter.
func (cli *Client) Load(flags *pflag.FlagSet) error {
	v, err := startup.NewViper(flags)

	if err != nil {
		return err
	}

	path := ""
	if flag := flags.Lookup("config"); flag != nil {
		path = flag.Value.String()
	}

	config, err := startup.Load(v, path)

	if err != nil {
		return err
	}

	log, err := logger.NewLogger(config.LogLevel, []string{"stderr"}, []string{"stderr"})

	if err != nil {
		return err
	}

	logger.Log = log

	cli.Viper = v
	cli.Config = config
	cli.ConfigPath = path
	cli.Formatter = formaters.New(cli.Out, config.Output, cli.Out == os.Stdout && helpers.IsTerminal(os.Stdout))

	logger.Log.Debug("configuration loaded", zap.String("platform", config.Platform()), zap.String("output", config.Output))

	return nil
}

// Engine connects on first use so commands that never touch the engine
// do not require one.
func (cli *Client) Engine() (iruntime.Runtime, error) {
	if cli.Runtime != nil {
		return cli.Runtime, nil
	}

	runtime, err := cli.Connect(cli.Config)

	if err != nil {
		return nil, err
	}

	cli.Runtime = runtime

	return runtime, nil
}

func (cli *Client) Close() {
	if cli.Runtime != nil {
		helpers.LogIfError(cli.Runtime.Close())
		cli.Runtime = nil
	}
}

// Context bounds one runtime call by the configured timeout.
func (cli *Client) Context() (context.Context, context.CancelFunc) {
	timeout, err := cli.Config.Deadline()

	if err != nil {
		return context.WithCancel(context.Background())
	}

	return context.WithTimeout(context.Background(), timeout)
}

func Connect(config *configuration.Configuration) (iruntime.Runtime, error) {
	if config.Platform() == static.PLATFORM_SNAPSHOT {
		snap, err := snapshot.Open(config.Snapshot)

		if err != nil {
			return nil, err
		}

		return snap, nil
	}

	engine, err := docker.New(config)

	if err != nil {
		return nil, err
	}

	return engine, nil
}

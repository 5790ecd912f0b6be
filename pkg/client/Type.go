package client

import (
	"github.com/simplecontainer/inventory/pkg/configuration"
	"github.com/simplecontainer/inventory/pkg/contracts/iruntime"
	"github.com/simplecontainer/inventory/pkg/formaters"
	"github.com/simplecontainer/inventory/pkg/kinds"
	"github.com/simplecontainer/inventory/pkg/version"
	"github.com/spf13/viper"
	"io"
)

type Client struct {
	Config *configuration.Configuration

	// ConfigPath is the file given with --config, empty when none was given.
	ConfigPath string

	Viper     *viper.Viper
	Runtime   iruntime.Runtime
	Registry  *kinds.Registry
	Formatter *formaters.Formatter
	Version   *version.Version
	Out       io.Writer
	Connect   func(config *configuration.Configuration) (iruntime.Runtime, error)
	Confirm   func(message string) (bool, error)

	// Interactive is true when a human can answer confirmation prompts.
	Interactive bool
}

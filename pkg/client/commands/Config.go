package commands

import (
	"fmt"
	"github.com/pkg/errors"
	"github.com/simplecontainer/inventory/pkg/client"
	"github.com/simplecontainer/inventory/pkg/command"
	"github.com/simplecontainer/inventory/pkg/contracts/icommand"
	"github.com/simplecontainer/inventory/pkg/startup"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const CONFIG = "config"

func Config() icommand.Command {
	return command.NewBuilder().
		Parent(ROOT).
		Name(CONFIG).
		Short("Print the effective configuration").
		Function(func(cli *client.Client, args []string) error {
			text, err := yaml.Marshal(cli.Config)

			if err != nil {
				return err
			}

			return cli.Formatter.Object(cli.Config, string(text))
		}).
		BuildWithValidation()
}

// SaveConfig writes the effective configuration to the given path, the
// --config file or the default location, in that order.
func SaveConfig() icommand.Command {
	return command.NewBuilder().
		Parent(CONFIG).
		Name("save [path]").
		Short("Save the effective configuration").
		Args(cobra.MaximumNArgs(1)).
		Function(func(cli *client.Client, args []string) error {
			path := cli.ConfigPath

			if len(args) == 1 {
				path = args[0]
			}

			if path == "" {
				path = startup.DefaultPath()
			}

			if path == "" {
				return errors.New("no configuration path: home directory is unknown")
			}

			if err := startup.Save(cli.Config, path); err != nil {
				return errors.Wrapf(err, "failed to save configuration to %s", path)
			}

			_, err := fmt.Fprintf(cli.Out, "configuration saved to %s\n", path)
			return err
		}).
		BuildWithValidation()
}

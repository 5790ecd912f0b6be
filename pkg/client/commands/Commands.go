package commands

import (
	"fmt"
	"github.com/simplecontainer/inventory/pkg/client"
	"github.com/simplecontainer/inventory/pkg/contracts/icommand"
	"github.com/simplecontainer/inventory/pkg/helpers"
	"github.com/simplecontainer/inventory/pkg/startup"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"os"
)

const ROOT = "smrinv"

func PreloadCommands() []icommand.Command {
	return []icommand.Command{
		Kinds(),
		List(),
		Describe(),
		Delete(),
		Serve(),
		Config(),
		SaveConfig(),
		Version(),
	}
}

func New() *cobra.Command {
	return &cobra.Command{
		Use:           ROOT,
		Short:         "Inventory of container runtime resources",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
}

// Build attaches the commands to the root and wires configuration loading
// ahead of every command.
func Build(cli *client.Client, c *cobra.Command, commands []icommand.Command) *cobra.Command {
	startup.SetFlags(c.PersistentFlags())

	c.SetHelpCommand(&cobra.Command{
		Use:    "help",
		Hidden: true,
	})

	c.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		_ = c.Usage()
		return err
	})

	c.PersistentPreRunE = func(c *cobra.Command, args []string) error {
		return cli.Load(c.Flags())
	}

	c.RunE = func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			return fmt.Errorf("unknown command: %s", args[0])
		}

		return cmd.Usage()
	}

	for _, cmd := range commands {
		cobraCmd := &cobra.Command{
			Use:   cmd.GetName(),
			Short: cmd.GetShort(),
			Args:  cmd.GetArgs(),
			PreRunE: func(c *cobra.Command, args []string) error {
				for _, dep := range cmd.GetDependsOn() {
					if err := dep(cli, args); err != nil {
						return err
					}
				}

				return nil
			},
			RunE: func(c *cobra.Command, args []string) error {
				var err error

				c.LocalNonPersistentFlags().VisitAll(func(flag *pflag.Flag) {
					if err == nil {
						err = cli.Viper.BindPFlag(flag.Name, flag)
					}
				})

				if err != nil {
					return err
				}

				for _, fn := range cmd.GetFunctions() {
					if err = fn(cli, args); err != nil {
						return err
					}
				}

				return nil
			},
		}

		cmd.SetFlags(cobraCmd)

		if cmd.GetParent() == ROOT || cmd.GetParent() == "" {
			c.AddCommand(cobraCmd)
		} else {
			parent := findCommand(c, cmd.GetParent())

			if parent != nil {
				parent.AddCommand(cobraCmd)
			} else {
				fmt.Fprintf(os.Stderr, "warning: parent command '%s' not found for '%s'\n", cmd.GetParent(), cmd.GetName())
			}
		}
	}

	return c
}

func Run(cli *client.Client, c *cobra.Command) {
	Build(cli, c, PreloadCommands())
	c.SetArgs(os.Args[1:])

	err := c.Execute()
	cli.Close()

	if err != nil {
		helpers.PrintAndExit(err, helpers.ExitCode(err))
	}
}

func findCommand(cmd *cobra.Command, name string) *cobra.Command {
	if cmd.Use == name {
		return cmd
	}
	for _, c := range cmd.Commands() {
		if result := findCommand(c, name); result != nil {
			return result
		}
	}
	return nil
}

// Connect is a dependency of every command that talks to the runtime.
func Connect(cli *client.Client, args []string) error {
	_, err := cli.Engine()
	return err
}

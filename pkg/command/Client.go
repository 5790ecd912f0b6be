package command

import (
	"github.com/simplecontainer/inventory/pkg/client"
	"github.com/spf13/cobra"
)

func (command Client) GetParent() string { return command.Parent }

func (command Client) GetName() string {
	return command.Name
}

func (command Client) GetShort() string { return command.Short }

func (command Client) GetArgs() func(*cobra.Command, []string) error {
	return command.Args
}

func (command Client) SetFlags(cmd *cobra.Command) {
	command.Flags(cmd)
}

func (command Client) GetFunctions() []func(*client.Client, []string) error {
	return command.Functions
}

func (command Client) GetDependsOn() []func(*client.Client, []string) error {
	return command.DependsOn
}

package command

import (
	"github.com/simplecontainer/inventory/pkg/client"
	"github.com/spf13/cobra"
)

type Client struct {
	Parent    string
	Name      string
	Short     string
	Args      func(*cobra.Command, []string) error
	Functions []func(*client.Client, []string) error
	DependsOn []func(*client.Client, []string) error
	Flags     func(command *cobra.Command)
}

var (
	EmptyFunction = func(cli *client.Client, args []string) error { return nil }
	EmptyDepend   = []func(*client.Client, []string) error{EmptyFunction}
	EmptyFlag     = func(cmd *cobra.Command) {}
)

package icommand

import (
	"github.com/simplecontainer/inventory/pkg/client"
	"github.com/spf13/cobra"
)

type Command interface {
	GetParent() string
	GetName() string
	GetShort() string
	GetArgs() func(*cobra.Command, []string) error
	SetFlags(cmd *cobra.Command)
	GetFunctions() []func(*client.Client, []string) error
	GetDependsOn() []func(*client.Client, []string) error
}

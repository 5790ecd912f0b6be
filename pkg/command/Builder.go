package command

import (
	"fmt"
	"github.com/simplecontainer/inventory/pkg/client"
	"github.com/simplecontainer/inventory/pkg/contracts/icommand"
	"github.com/spf13/cobra"
)

type Builder struct {
	parent    string
	name      string
	short     string
	flags     func(cmd *cobra.Command)
	args      func(*cobra.Command, []string) error
	functions []func(*client.Client, []string) error
	dependsOn []func(*client.Client, []string) error
}

func NewBuilder() *Builder {
	return &Builder{
		args:      cobra.NoArgs,
		flags:     EmptyFlag,
		dependsOn: EmptyDepend,
	}
}

func (cb *Builder) Parent(parent string) *Builder {
	cb.parent = parent
	return cb
}

func (cb *Builder) Name(name string) *Builder {
	cb.name = name
	return cb
}

func (cb *Builder) Short(short string) *Builder {
	cb.short = short
	return cb
}

func (cb *Builder) Flags(flags func(cmd *cobra.Command)) *Builder {
	cb.flags = flags
	return cb
}

func (cb *Builder) Args(args func(*cobra.Command, []string) error) *Builder {
	cb.args = args
	return cb
}

func (cb *Builder) Function(fn func(*client.Client, []string) error) *Builder {
	cb.functions = append(cb.functions, fn)
	return cb
}

func (cb *Builder) DependsOn(fns ...func(*client.Client, []string) error) *Builder {
	cb.dependsOn = append(cb.dependsOn, fns...)
	return cb
}

func (cb *Builder) Build() icommand.Command {
	return Client{
		Parent:    cb.parent,
		Name:      cb.name,
		Short:     cb.short,
		Args:      cb.args,
		Flags:     cb.flags,
		Functions: cb.functions,
		DependsOn: cb.dependsOn,
	}
}

func (cb *Builder) Validate() error {
	if cb.name == "" {
		return fmt.Errorf("command name is required")
	}
	if cb.parent == "" {
		return fmt.Errorf("command parent is required")
	}
	if len(cb.functions) == 0 {
		return fmt.Errorf("command %s has nothing to run", cb.name)
	}
	return nil
}

func (cb *Builder) BuildWithValidation() icommand.Command {
	if err := cb.Validate(); err != nil {
		panic(err)
	}

	return cb.Build()
}

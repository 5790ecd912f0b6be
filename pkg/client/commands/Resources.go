package commands

import (
	"fmt"
	"github.com/pkg/errors"
	"github.com/simplecontainer/inventory/pkg/client"
	"github.com/simplecontainer/inventory/pkg/command"
	"github.com/simplecontainer/inventory/pkg/contracts/icommand"
	"github.com/simplecontainer/inventory/pkg/contracts/ikinds"
	"github.com/spf13/cobra"
)

func Kinds() icommand.Command {
	return command.NewBuilder().
		Parent(ROOT).
		Name("kinds").
		Short("List supported resource kinds and their aliases").
		Function(func(cli *client.Client, args []string) error {
			kinds := make([]ikinds.Kind, 0)

			for _, name := range cli.Registry.Names() {
				kind, err := cli.Registry.Get(name)

				if err != nil {
					return err
				}

				kinds = append(kinds, kind)
			}

			return cli.Formatter.Kinds(kinds)
		}).
		BuildWithValidation()
}

func List() icommand.Command {
	return command.NewBuilder().
		Parent(ROOT).
		Name("list <kind>").
		Short("List resources of a kind").
		Args(cobra.ExactArgs(1)).
		DependsOn(Connect).
		Function(func(cli *client.Client, args []string) error {
			ctx, cancel := cli.Context()
			defer cancel()

			kind, objects, err := cli.Registry.List(ctx, cli.Runtime, args[0])

			if err != nil {
				return err
			}

			return cli.Formatter.List(kind, objects)
		}).
		BuildWithValidation()
}

func Describe() icommand.Command {
	return command.NewBuilder().
		Parent(ROOT).
		Name("describe <kind> <name>").
		Short("Show the details of a single resource").
		Args(cobra.ExactArgs(2)).
		DependsOn(Connect).
		Function(func(cli *client.Client, args []string) error {
			ctx, cancel := cli.Context()
			defer cancel()

			kind, object, err := cli.Registry.Find(ctx, cli.Runtime, args[0], args[1])

			if err != nil {
				return err
			}

			return cli.Formatter.Describe(kind, object)
		}).
		BuildWithValidation()
}

func Delete() icommand.Command {
	return command.NewBuilder().
		Parent(ROOT).
		Name("delete <kind> <name>").
		Short("Remove a resource from the runtime").
		Args(cobra.ExactArgs(2)).
		Flags(func(cmd *cobra.Command) {
			cmd.Flags().BoolP("yes", "y", false, "Do not ask for confirmation")
		}).
		DependsOn(Connect).
		Function(func(cli *client.Client, args []string) error {
			ctx, cancel := cli.Context()
			defer cancel()

			kind, object, err := cli.Registry.Find(ctx, cli.Runtime, args[0], args[1])

			if err != nil {
				return err
			}

			if !cli.Viper.GetBool("yes") {
				if !cli.Interactive {
					return errors.Errorf("refusing to delete %s %s without --yes", kind.GetKind(), object.GetName())
				}

				confirmed, err := cli.Confirm(fmt.Sprintf("Delete %s %s?", kind.GetKind(), object.GetName()))

				if err != nil {
					return err
				}

				if !confirmed {
					_, err = fmt.Fprintln(cli.Out, "aborted")
					return err
				}
			}

			err = cli.Registry.Delete(ctx, cli.Runtime, kind, object)

			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cli.Out, "%s %s deleted\n", kind.GetKind(), object.GetName())
			return err
		}).
		BuildWithValidation()
}

func Version() icommand.Command {
	return command.NewBuilder().
		Parent(ROOT).
		Name("version").
		Short("Print the version").
		Function(func(cli *client.Client, args []string) error {
			return cli.Formatter.Object(cli.Version, cli.Version.String())
		}).
		BuildWithValidation()
}

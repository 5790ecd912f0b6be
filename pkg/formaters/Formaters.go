package formaters

import (
	"fmt"
	"github.com/fatih/color"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/rodaine/table"
	"github.com/simplecontainer/inventory/pkg/contracts/idescribe"
	"github.com/simplecontainer/inventory/pkg/contracts/ikinds"
	"github.com/simplecontainer/inventory/pkg/static"
	"gopkg.in/yaml.v3"
	"io"
	"strings"
)

const CREATED_COLUMN = "CREATED"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func New(writer io.Writer, output string, colors bool) *Formatter {
	return &Formatter{
		Writer: writer,
		Output: output,
		Color:  colors,
	}
}

// List renders records of one kind using the kind's columns for tables.
func (formatter *Formatter) List(kind ikinds.Kind, objects []idescribe.Describe) error {
	switch formatter.Output {
	case static.OUTPUT_JSON:
		return formatter.writeJSON(objects)
	case static.OUTPUT_YAML:
		return formatter.writeYAML(objects)
	case static.OUTPUT_TABLE, "":
		columns := kind.Columns()
		created := -1

		headers := make([]interface{}, 0, len(columns))

		for i, column := range columns {
			if column == CREATED_COLUMN {
				created = i
			}

			headers = append(headers, column)
		}

		tbl := formatter.table(headers...)

		for _, object := range objects {
			row := kind.Row(object)

			if row == nil {
				continue
			}

			values := make([]interface{}, 0, len(row))

			for i, value := range row {
				if i == created {
					value = RoundAndFormatDuration(value)
				}

				values = append(values, value)
			}

			tbl.AddRow(values...)
		}

		tbl.Print()
		return nil
	default:
		return errors.Errorf("unsupported output %s, valid: %s", formatter.Output, strings.Join(static.OUTPUTS, ", "))
	}
}

// Describe renders the sections of a single object. Structured outputs carry
// the record next to its sections.
func (formatter *Formatter) Describe(kind ikinds.Kind, object idescribe.Describe) error {
	sections := object.Describe()

	switch formatter.Output {
	case static.OUTPUT_JSON:
		return formatter.writeJSON(Document{Kind: kind.GetKind(), Object: object, Sections: sections})
	case static.OUTPUT_YAML:
		return formatter.writeYAML(Document{Kind: kind.GetKind(), Object: object, Sections: sections})
	case static.OUTPUT_TABLE, "":
		for i, section := range sections {
			if i > 0 {
				fmt.Fprintln(formatter.Writer)
			}

			tbl := formatter.table(section.Title, "")

			for _, item := range section.Items {
				tbl.AddRow(item.Label, item.Value)
			}

			tbl.Print()
		}

		return nil
	default:
		return errors.Errorf("unsupported output %s, valid: %s", formatter.Output, strings.Join(static.OUTPUTS, ", "))
	}
}

// Kinds renders the registered kind names with their aliases.
func (formatter *Formatter) Kinds(kinds []ikinds.Kind) error {
	type entry struct {
		Kind    string   `json:"kind" yaml:"kind"`
		Aliases []string `json:"aliases" yaml:"aliases"`
	}

	entries := make([]entry, 0, len(kinds))

	for _, kind := range kinds {
		entries = append(entries, entry{Kind: kind.GetKind(), Aliases: kind.GetAliases()})
	}

	switch formatter.Output {
	case static.OUTPUT_JSON:
		return formatter.writeJSON(entries)
	case static.OUTPUT_YAML:
		return formatter.writeYAML(entries)
	default:
		tbl := formatter.table("KIND", "ALIASES")

		for _, e := range entries {
			tbl.AddRow(e.Kind, strings.Join(e.Aliases, ","))
		}

		tbl.Print()
		return nil
	}
}

// Object writes a structured value for json and yaml, and the text otherwise.
func (formatter *Formatter) Object(value interface{}, text string) error {
	switch formatter.Output {
	case static.OUTPUT_JSON:
		return formatter.writeJSON(value)
	case static.OUTPUT_YAML:
		return formatter.writeYAML(value)
	default:
		_, err := fmt.Fprintln(formatter.Writer, text)
		return err
	}
}

func (formatter *Formatter) table(headers ...interface{}) table.Table {
	tbl := table.New(headers...).WithWriter(formatter.Writer)

	headerFmt := formatter.format(color.New(color.FgGreen, color.Underline))
	columnFmt := formatter.format(color.New(color.FgYellow))

	return tbl.WithHeaderFormatter(headerFmt).WithFirstColumnFormatter(columnFmt)
}

func (formatter *Formatter) format(c *color.Color) table.Formatter {
	if !formatter.Color {
		return fmt.Sprintf
	}

	c.EnableColor()
	return c.SprintfFunc()
}

func (formatter *Formatter) writeJSON(value interface{}) error {
	bytes, err := json.MarshalIndent(value, "", "  ")

	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(formatter.Writer, string(bytes))
	return err
}

func (formatter *Formatter) writeYAML(value interface{}) error {
	encoder := yaml.NewEncoder(formatter.Writer)
	encoder.SetIndent(2)

	if err := encoder.Encode(value); err != nil {
		return err
	}

	return encoder.Close()
}

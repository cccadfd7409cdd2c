package app

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/horizon-catalog/datamodel/horizon"
)

func NewCmdDescribe(out io.Writer) *cobra.Command {
	var recordType string
	cmd := &cobra.Command{
		Use:   "describe",
		Short: "Describe the fields of a record type",
		Long:  "Describe the fields of a record type, or list the record types when no type is given.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if recordType == "" {
				return doListTypes(out)
			}
			return doDescribe(out, recordType)
		},
	}

	cmd.Flags().StringVarP(&recordType, "type", "t", "", "Record type")

	return cmd
}

func newTable(out io.Writer, header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(out)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader(header)
	return table
}

func doListTypes(out io.Writer) error {
	table := newTable(out, "Type", "Extends", "Description")
	for _, rt := range horizon.RecordTypes() {
		d, err := horizon.Lookup(rt)
		if err != nil {
			return err
		}
		table.Append([]string{string(d.Type), string(d.Extends), d.Description})
	}
	table.Render()
	return nil
}

func doDescribe(out io.Writer, name string) error {
	rt, err := recordType(name)
	if err != nil {
		return err
	}
	d, err := horizon.Lookup(rt)
	if err != nil {
		return err
	}
	fields, err := horizon.Fields(rt)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%s: %s\n", d.Type, d.Description)
	table := newTable(out, "Field", "Type", "Cardinality", "Default")
	for _, f := range fields {
		def := ""
		if f.Default != nil {
			def = fmt.Sprint(f.Default)
		}
		table.Append([]string{f.Name, fieldType(f), cardinality(f), def})
	}
	table.Render()
	return nil
}

func fieldType(f horizon.Field) string {
	switch f.Kind {
	case horizon.KindRecord:
		return string(f.Record)
	case horizon.KindEnum:
		if len(f.Enum) > 4 {
			return fmt.Sprintf("enum(%s, ...)", strings.Join(f.Enum[:4], ", "))
		}
		return fmt.Sprintf("enum(%s)", strings.Join(f.Enum, ", "))
	default:
		return f.Kind.String()
	}
}

func cardinality(f horizon.Field) string {
	switch {
	case f.NonEmpty:
		return "1..n"
	case f.List && f.Required:
		return "0..n, required"
	case f.List:
		return "0..n"
	case f.Required:
		return "1"
	default:
		return "0..1"
	}
}

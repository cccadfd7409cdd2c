package app

import (
	"encoding/json"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/horizon-catalog/datamodel/horizon"
	"github.com/horizon-catalog/datamodel/source"
)

func NewCmdTemplate(out io.Writer) *cobra.Command {
	var (
		recordType string
		format     string
	)
	cmd := &cobra.Command{
		Use:   "template",
		Short: "Print a skeleton document of a record type",
		Long: `Print a document of a record type holding every required field.

The document validates as is: strings are empty, enumerations take their
first value, date-times are set to the current time and usgsIdentifier gets a
fresh UUID. Optional fields are left out.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return doTemplate(out, recordType, format, time.Now())
		},
	}

	cmd.Flags().StringVarP(&recordType, "type", "t", string(horizon.RecordTypeDataRelease), "Record type")
	cmd.Flags().StringVar(&format, "format", string(source.FormatJSON), "Document format (json, yaml)")

	return cmd
}

func doTemplate(out io.Writer, name, format string, now time.Time) error {
	rt, err := recordType(name)
	if err != nil {
		return err
	}
	doc, err := horizon.Skeleton(rt, now)
	if err != nil {
		return err
	}
	if _, ok := doc["usgsIdentifier"]; ok {
		doc["usgsIdentifier"] = uuid.New().String()
	}

	var blob []byte
	switch source.Format(format) {
	case source.FormatJSON:
		blob, err = json.MarshalIndent(doc, "", "  ")
		blob = append(blob, '\n')
	case source.FormatYAML:
		blob, err = yaml.Marshal(doc)
	default:
		return errors.Errorf("unknown document format %q", format)
	}
	if err != nil {
		return errors.Wrap(err, "error encoding template")
	}
	_, err = out.Write(blob)
	return err
}

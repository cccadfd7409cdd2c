package app

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/horizon-catalog/datamodel/horizon"
	"github.com/horizon-catalog/datamodel/s3"
	"github.com/horizon-catalog/datamodel/source"
)

type validateOptions struct {
	locations  []string
	recordType string
	output     string
	noLint     bool
}

func NewCmdValidate(logger logrus.FieldLogger, in io.Reader, out io.Writer, config *Config) *cobra.Command {
	opts := &validateOptions{}
	cmd := &cobra.Command{
		Use:   "validate [location...]",
		Short: "Validate metadata documents",
		Long: `Validate metadata documents against a record type.

A location is a path, a file://, http:// or https:// URL, an s3:// URI or "-"
for the standard input. JSON and YAML documents are accepted, optionally
gzip-compressed. The command fails when a document is invalid.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.locations = append(opts.locations, args...)
			ctx, cancel := notifyContext(context.Background())
			defer cancel()
			return doValidate(ctx, logger, in, out, config, opts)
		},
	}

	cmd.Flags().StringArrayVarP(&opts.locations, "file", "f", nil, "Document location (repeatable)")
	cmd.Flags().StringVarP(&opts.recordType, "type", "t", string(horizon.RecordTypeDataRelease), "Record type")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Report format (text, json, logfmt), defaults to validation.output")
	cmd.Flags().BoolVar(&opts.noLint, "no-lint", false, "Skip advisory warnings")

	return cmd
}

// errInvalid is returned when at least one document did not validate.
var errInvalid = errors.New("invalid documents found")

func doValidate(ctx context.Context, logger logrus.FieldLogger, in io.Reader, out io.Writer, config *Config, opts *validateOptions) error {
	if len(opts.locations) == 0 {
		return errors.New("no document given, use --file or pass locations as arguments")
	}
	rt, err := recordType(opts.recordType)
	if err != nil {
		return err
	}
	output := opts.output
	if output == "" {
		output = config.Validation.Output
	}
	if err := validateOutput(output); err != nil {
		return err
	}

	loader, err := newLoader(logger, in, config)
	if err != nil {
		return err
	}
	validator, err := horizon.NewValidator(logger.WithField("component", "validator"), nil)
	if err != nil {
		return errors.Wrap(err, "validator could not be created")
	}

	rep := newReporter(out, output)
	invalid := 0
	for _, location := range opts.locations {
		res, err := validateDocument(ctx, loader, validator, rt, location, config.Validation.Lint && !opts.noLint)
		if err != nil {
			return errors.Wrapf(err, "error validating %s", location)
		}
		if !res.Valid {
			invalid++
		}
		if err := rep.report(res); err != nil {
			return errors.Wrap(err, "error writing report")
		}
	}
	if invalid > 0 {
		return errors.Wrapf(errInvalid, "%d of %d", invalid, len(opts.locations))
	}
	return nil
}

func validateDocument(ctx context.Context, loader *source.Loader, validator *horizon.Validator, rt horizon.RecordType, location string, lint bool) (*result, error) {
	blob, err := loader.Load(ctx, location)
	if err != nil {
		return nil, err
	}
	input, err := source.Decode(location, blob)
	if err != nil {
		return nil, err
	}
	rec, err := horizon.NewRecord(rt)
	if err != nil {
		return nil, err
	}

	res := &result{Location: location, Record: rt, Valid: true}
	if err := validator.Decode(input, rec); err != nil {
		verr, ok := err.(horizon.ValidationError)
		if !ok {
			return nil, err
		}
		res.Valid = false
		res.Errors = verr.Errors
		return res, nil
	}
	if lint {
		res.Warnings = validator.Lint(rec)
	}
	return res, nil
}

func recordType(name string) (horizon.RecordType, error) {
	rt := horizon.RecordType(name)
	if _, err := horizon.Lookup(rt); err != nil {
		names := []string{}
		for _, t := range horizon.RecordTypes() {
			names = append(names, string(t))
		}
		return "", errors.Errorf("unknown record type %q, use one of: %s", name, strings.Join(names, ", "))
	}
	return rt, nil
}

func newLoader(logger logrus.FieldLogger, in io.Reader, config *Config) (*source.Loader, error) {
	sess, err := s3.NewSession(logger, config.AWS.S3Profile, config.AWS.S3Endpoint)
	if err != nil {
		return nil, errors.Wrap(err, "AWS session could not be created")
	}
	return source.New(
		logger.WithField("component", "source"),
		source.WithFs(afero.NewOsFs()),
		source.WithObjectStorage(s3.New(sess)),
		source.WithHTTPClient(&http.Client{}),
		source.WithStdin(in),
		source.WithTimeout(config.Source.Timeout),
	), nil
}

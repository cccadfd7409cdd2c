package app

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/go-logfmt/logfmt"

	"github.com/horizon-catalog/datamodel/horizon"
)

// result is the outcome of validating one document.
type result struct {
	Location string                          `json:"location"`
	Record   horizon.RecordType              `json:"record"`
	Valid    bool                            `json:"valid"`
	Errors   []horizon.ValidationErrorDetail `json:"errors,omitempty"`
	Warnings []horizon.Warning               `json:"warnings,omitempty"`
}

type reporter interface {
	report(res *result) error
}

func newReporter(out io.Writer, output string) reporter {
	switch output {
	case outputJSON:
		return jsonReporter{enc: json.NewEncoder(out)}
	case outputLogfmt:
		return logfmtReporter{enc: logfmt.NewEncoder(out)}
	default:
		return textReporter{out: out}
	}
}

type textReporter struct {
	out io.Writer
}

func (r textReporter) report(res *result) error {
	status := "valid"
	if !res.Valid {
		status = "invalid"
	}
	if _, err := fmt.Fprintf(r.out, "%s: %s %s%s\n", res.Location, status, res.Record, counts(res)); err != nil {
		return err
	}
	for _, d := range res.Errors {
		if _, err := fmt.Fprintf(r.out, "  error   %s [%s]\n", d.Message, d.Reason); err != nil {
			return err
		}
	}
	for _, w := range res.Warnings {
		if _, err := fmt.Fprintf(r.out, "  warning %s [%s]\n", w, w.Rule); err != nil {
			return err
		}
	}
	return nil
}

func counts(res *result) string {
	switch {
	case len(res.Errors) > 0:
		return fmt.Sprintf(" (%d %s)", len(res.Errors), plural(len(res.Errors), "error"))
	case len(res.Warnings) > 0:
		return fmt.Sprintf(" (%d %s)", len(res.Warnings), plural(len(res.Warnings), "warning"))
	default:
		return ""
	}
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}

type jsonReporter struct {
	enc *json.Encoder
}

func (r jsonReporter) report(res *result) error {
	return r.enc.Encode(res)
}

// logfmtReporter writes a record per document followed by a record per issue.
type logfmtReporter struct {
	enc *logfmt.Encoder
}

func (r logfmtReporter) report(res *result) error {
	if err := r.record(
		"location", res.Location,
		"record", string(res.Record),
		"valid", res.Valid,
		"errors", len(res.Errors),
		"warnings", len(res.Warnings),
	); err != nil {
		return err
	}
	for _, d := range res.Errors {
		if err := r.record(
			"location", res.Location,
			"level", "error",
			"path", d.Path,
			"reason", string(d.Reason),
			"msg", d.Message,
		); err != nil {
			return err
		}
	}
	for _, w := range res.Warnings {
		if err := r.record(
			"location", res.Location,
			"level", "warning",
			"path", w.Path,
			"rule", w.Rule,
			"msg", w.Message,
		); err != nil {
			return err
		}
	}
	return nil
}

func (r logfmtReporter) record(keyvals ...interface{}) error {
	if err := r.enc.EncodeKeyvals(keyvals...); err != nil {
		return err
	}
	return r.enc.EndRecord()
}

package horizon

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"sort"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/xeipuuv/gojsonschema"
)

// Reason is the rule violated by a field.
type Reason string

const (
	ReasonMissingRequired   Reason = "missing_required"
	ReasonTypeMismatch      Reason = "type_mismatch"
	ReasonEnumMismatch      Reason = "enum_mismatch"
	ReasonMalformedURI      Reason = "malformed_uri"
	ReasonMalformedDateTime Reason = "malformed_datetime"
)

// ValidationError aggregates every field-level violation found in the input
// of a record type. A record is never built from input that produced one.
type ValidationError struct {
	Record RecordType
	Errors []ValidationErrorDetail
}

type ValidationErrorDetail struct {
	Path    string `json:"path"`
	Reason  Reason `json:"reason"`
	Message string `json:"message"`
}

func (err ValidationError) Error() string {
	return fmt.Sprintf("validation issues: %+v", err.Errors)
}

// Has reports whether a violation with the given path and reason was found.
func (err ValidationError) Has(path string, reason Reason) bool {
	for _, d := range err.Errors {
		if d.Path == path && d.Reason == reason {
			return true
		}
	}
	return false
}

// Validator builds records from unstructured input. It is safe for
// concurrent use once created.
type Validator struct {
	logger  logrus.FieldLogger
	metrics *Metrics
	schemas map[RecordType]*gojsonschema.Schema
}

// NewValidator compiles the schemas of every record type. Both arguments are
// optional.
func NewValidator(logger logrus.FieldLogger, metrics *Metrics) (*Validator, error) {
	if logger == nil {
		l := logrus.New()
		l.Out = ioutil.Discard
		logger = l
	}
	v := &Validator{
		logger:  logger,
		metrics: metrics,
		schemas: make(map[RecordType]*gojsonschema.Schema, len(declarations)),
	}
	for _, rt := range RecordTypes() {
		doc, err := Schema(rt)
		if err != nil {
			return nil, fmt.Errorf("error building schema of %s: %w", rt, err)
		}
		schema, err := gojsonschema.NewSchema(gojsonschema.NewGoLoader(doc))
		if err != nil {
			return nil, fmt.Errorf("error compiling schema of %s: %w", rt, err)
		}
		v.schemas[rt] = schema
	}
	return v, nil
}

// Validate checks the input against the declarations of a record type and
// returns the normalized document, i.e. with defaults applied and values
// coerced. A ValidationError is returned when the input is not valid.
func (v *Validator) Validate(rt RecordType, input interface{}) (map[string]interface{}, error) {
	schema, ok := v.schemas[rt]
	if !ok {
		return nil, fmt.Errorf("unknown record type %q", rt)
	}
	if paths := invalidUTF8(input); len(paths) > 0 {
		verr := ValidationError{Record: rt, Errors: make([]ValidationErrorDetail, len(paths))}
		for i, path := range paths {
			name := path
			if name == "" {
				name = "document"
			}
			verr.Errors[i] = ValidationErrorDetail{
				Path:    path,
				Reason:  ReasonTypeMismatch,
				Message: fmt.Sprintf("%s is not valid UTF-8", name),
			}
		}
		v.observe(rt, verr.Errors)
		return nil, verr
	}
	tree, err := canonicalize(input)
	if err != nil {
		return nil, err
	}
	doc := normalize(rt, tree)

	result, err := schema.Validate(gojsonschema.NewGoLoader(doc))
	if err != nil {
		return nil, fmt.Errorf("error validating %s: %w", rt, err)
	}
	if !result.Valid() {
		verr := ValidationError{Record: rt, Errors: details(result.Errors())}
		v.observe(rt, verr.Errors)
		v.logger.WithFields(logrus.Fields{
			"record":     rt,
			"violations": len(verr.Errors),
		}).Debug("Input rejected")
		return nil, verr
	}
	v.observe(rt, nil)

	obj, ok := doc.(map[string]interface{})
	if !ok {
		// The schema requires an object, this is not expected.
		return nil, fmt.Errorf("unexpected document of type %T", doc)
	}
	return obj, nil
}

// Decode validates the input for the type of rec and decodes it into rec.
func (v *Validator) Decode(input interface{}, rec Record) error {
	if rec == nil {
		return fmt.Errorf("nil record")
	}
	rt := rec.RecordType()
	doc, err := v.Validate(rt, input)
	if err != nil {
		return err
	}
	blob, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("error encoding %s: %w", rt, err)
	}
	if err := json.Unmarshal(blob, rec); err != nil {
		return fmt.Errorf("error decoding %s: %w", rt, err)
	}
	return nil
}

func (v *Validator) observe(rt RecordType, violations []ValidationErrorDetail) {
	if v.metrics == nil {
		return
	}
	v.metrics.observe(rt, violations)
}

var (
	defaultValidator     *Validator
	defaultValidatorErr  error
	defaultValidatorOnce sync.Once
)

// DefaultValidator returns a shared validator without logging or metrics.
func DefaultValidator() (*Validator, error) {
	defaultValidatorOnce.Do(func() {
		defaultValidator, defaultValidatorErr = NewValidator(nil, nil)
	})
	return defaultValidator, defaultValidatorErr
}

// Decode validates the input and decodes it into rec using DefaultValidator.
func Decode(input interface{}, rec Record) error {
	v, err := DefaultValidator()
	if err != nil {
		return err
	}
	return v.Decode(input, rec)
}

// rootContext is the name gojsonschema gives to the document root.
const rootContext = "(root)"

func details(errs []gojsonschema.ResultError) []ValidationErrorDetail {
	out := make([]ValidationErrorDetail, 0, len(errs))
	for _, e := range errs {
		reason, ok := reasonOf(e)
		if !ok {
			continue
		}
		path := strings.TrimPrefix(strings.TrimPrefix(e.Context().String(), rootContext), ".")
		if e.Type() == "required" {
			if prop, ok := e.Details()["property"].(string); ok {
				path = joinPath(path, prop)
			}
		}
		out = append(out, ValidationErrorDetail{
			Path:    path,
			Reason:  reason,
			Message: message(path, reason, e),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Path != out[j].Path {
			return out[i].Path < out[j].Path
		}
		return out[i].Reason < out[j].Reason
	})
	return out
}

// reasonOf maps gojsonschema error types. Combinator errors are dropped
// because their causes are reported on their own.
func reasonOf(e gojsonschema.ResultError) (Reason, bool) {
	switch e.Type() {
	case "required", "array_min_items":
		return ReasonMissingRequired, true
	case "invalid_type":
		return ReasonTypeMismatch, true
	case "enum":
		return ReasonEnumMismatch, true
	case "format":
		if e.Details()["format"] == formatHTTPURL {
			return ReasonMalformedURI, true
		}
		return ReasonMalformedDateTime, true
	case "number_gte", "number_lte":
		return ReasonTypeMismatch, true
	case "number_any_of", "number_one_of", "number_all_of":
		return "", false
	default:
		return ReasonTypeMismatch, true
	}
}

func message(path string, reason Reason, e gojsonschema.ResultError) string {
	name := path
	if name == "" {
		name = "document"
	}
	switch reason {
	case ReasonMissingRequired:
		if e.Type() == "array_min_items" {
			return fmt.Sprintf("%s requires at least one item", name)
		}
		return fmt.Sprintf("%s is required", name)
	case ReasonEnumMismatch:
		return fmt.Sprintf("%s: %v is not a permitted value", name, e.Value())
	case ReasonMalformedURI:
		return fmt.Sprintf("%s: %v is not a valid http or https URL", name, e.Value())
	case ReasonMalformedDateTime:
		return fmt.Sprintf("%s: %v is not a valid ISO-8601 date-time", name, e.Value())
	default:
		if t := e.Type(); t == "number_gte" || t == "number_lte" {
			return fmt.Sprintf("%s: %v does not fit in a 64-bit integer", name, e.Value())
		}
		return fmt.Sprintf("%s: %s", name, e.Description())
	}
}

func joinPath(parent, child string) string {
	if parent == "" {
		return child
	}
	return parent + "." + child
}

package horizon

import (
	"fmt"
	"mime"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Warning is a quality issue found in a valid record. Warnings never turn a
// record invalid.
type Warning struct {
	Path    string `json:"path"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.Path, w.Message)
}

// spdxAlgorithms are the checksum algorithms of the SPDX specification.
var spdxAlgorithms = map[string]struct{}{
	"ADLER32":     {},
	"BLAKE2B-256": {},
	"BLAKE2B-384": {},
	"BLAKE2B-512": {},
	"BLAKE3":      {},
	"MD2":         {},
	"MD4":         {},
	"MD5":         {},
	"MD6":         {},
	"SHA1":        {},
	"SHA224":      {},
	"SHA256":      {},
	"SHA384":      {},
	"SHA512":      {},
	"SHA3-256":    {},
	"SHA3-384":    {},
	"SHA3-512":    {},
}

// embedded holds the names of the struct types embedded by other records;
// they do not show up in JSON paths.
var embedded = map[string]struct{}{
	"CatalogedResource": {},
	"Dataset":           {},
	"Entity":            {},
	"Creator":           {},
}

var validate = newLintValidator()

func newLintValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	mustRegister(v.RegisterValidation("spdx_algorithm", func(fl validator.FieldLevel) bool {
		_, ok := spdxAlgorithms[strings.ToUpper(fl.Field().String())]
		return ok
	}))
	mustRegister(v.RegisterValidation("media_type", func(fl validator.FieldLevel) bool {
		mt, _, err := mime.ParseMediaType(fl.Field().String())
		return err == nil && strings.Contains(mt, "/")
	}))
	v.RegisterStructValidation(periodOfTimeLevel, PeriodOfTime{})
	v.RegisterStructValidation(datasetLevel, Dataset{})
	return v
}

func mustRegister(err error) {
	if err != nil {
		panic(err)
	}
}

func periodOfTimeLevel(sl validator.StructLevel) {
	p := sl.Current().Interface().(PeriodOfTime)
	if p.StartDate == nil || p.EndDate == nil {
		return
	}
	if p.EndDate.Time().Before(p.StartDate.Time()) {
		sl.ReportError(p.EndDate, "endDate", "EndDate", "period_order", "")
	}
}

func datasetLevel(sl validator.StructLevel) {
	d := sl.Current().Interface().(Dataset)
	seen := make(map[int64]struct{}, len(d.Creator))
	for i, c := range d.Creator {
		if _, ok := seen[c.Position]; ok {
			name := fmt.Sprintf("creator[%d].position", i)
			sl.ReportError(c.Position, name, name, "unique_position", "")
			continue
		}
		seen[c.Position] = struct{}{}
	}
}

// Lint reports quality issues of a record, e.g. an uppercase checksum digest
// or coordinates out of range.
func (v *Validator) Lint(rec Record) []Warning {
	return Lint(rec)
}

// Lint reports quality issues of a record.
func Lint(rec Record) []Warning {
	if rec == nil {
		return nil
	}
	err := validate.Struct(rec)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []Warning{{Rule: "invalid", Message: err.Error()}}
	}
	warnings := make([]Warning, 0, len(verrs))
	for _, fe := range verrs {
		path := lintPath(fe.Namespace())
		warnings = append(warnings, Warning{
			Path:    path,
			Rule:    fe.Tag(),
			Message: lintMessage(fe),
		})
	}
	return warnings
}

// lintPath turns "DataRelease.Dataset.creator[0].email" into
// "creator.0.email", the notation used by ValidationErrorDetail.
func lintPath(namespace string) string {
	segments := strings.Split(namespace, ".")
	if len(segments) > 0 {
		segments = segments[1:]
	}
	out := make([]string, 0, len(segments))
	for _, s := range segments {
		if _, ok := embedded[s]; ok {
			continue
		}
		if i := strings.IndexByte(s, '['); i >= 0 && strings.HasSuffix(s, "]") {
			out = append(out, s[:i], s[i+1:len(s)-1])
			continue
		}
		out = append(out, s)
	}
	return strings.Join(out, ".")
}

func lintMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "email":
		return fmt.Sprintf("%v is not a valid email address", fe.Value())
	case "hexadecimal":
		return "checksum value is not hexadecimal"
	case "lowercase":
		return "checksum value should be lowercase"
	case "spdx_algorithm":
		return fmt.Sprintf("%v is not an SPDX checksum algorithm", fe.Value())
	case "latitude":
		return fmt.Sprintf("%v is not a latitude between -90 and 90", fe.Value())
	case "longitude":
		return fmt.Sprintf("%v is not a longitude between -180 and 180", fe.Value())
	case "ltefield":
		return "south bound latitude is greater than north bound latitude"
	case "media_type":
		return fmt.Sprintf("%v is not an IANA media type", fe.Value())
	case "period_order":
		return "end date is before start date"
	case "unique_position":
		return fmt.Sprintf("creator position %v is used more than once", fe.Value())
	case "gte":
		return fmt.Sprintf("%v should be greater than or equal to %s", fe.Value(), fe.Param())
	default:
		return fmt.Sprintf("failed %s check", fe.Tag())
	}
}

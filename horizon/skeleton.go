package horizon

import (
	"time"
)

// Skeleton returns a document of a record type holding every required field.
// Strings are empty, enumerations take their first literal, date-times are
// set to now and non-empty lists hold one skeleton element. The result
// validates as is.
func Skeleton(rt RecordType, now time.Time) (map[string]interface{}, error) {
	fields, err := Fields(rt)
	if err != nil {
		return nil, err
	}
	doc := make(map[string]interface{}, len(fields))
	for _, f := range fields {
		if !f.Required && f.Default == nil {
			continue
		}
		if f.Default != nil {
			doc[f.Name] = f.Default
			continue
		}
		if f.List && !f.NonEmpty {
			doc[f.Name] = []interface{}{}
			continue
		}
		v, err := skeletonValue(f, now)
		if err != nil {
			return nil, err
		}
		if f.List {
			v = []interface{}{v}
		}
		doc[f.Name] = v
	}
	return doc, nil
}

func skeletonValue(f Field, now time.Time) (interface{}, error) {
	switch f.Kind {
	case KindInteger:
		if f.Name == "position" {
			return 1, nil
		}
		return 0, nil
	case KindFloat:
		return 0.0, nil
	case KindBoolean:
		return false, nil
	case KindDateTime:
		return Timestamp(now.UTC()).String(), nil
	case KindURI:
		return "https://example.com/", nil
	case KindEnum:
		return f.Enum[0], nil
	case KindRecord:
		return Skeleton(f.Record, now)
	default:
		return "", nil
	}
}

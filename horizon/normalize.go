package horizon

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"math/big"
	"sort"
	"strconv"
	"unicode/utf8"

	"github.com/spf13/cast"
)

// canonicalize turns the input into a JSON tree made of maps, slices,
// strings, booleans and json.Number.
func canonicalize(input interface{}) (interface{}, error) {
	var blob []byte
	switch v := input.(type) {
	case nil:
		return nil, nil
	case []byte:
		blob = v
	case json.RawMessage:
		blob = v
	case string:
		blob = []byte(v)
	default:
		var err error
		blob, err = json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("error encoding input: %w", err)
		}
	}
	dec := json.NewDecoder(bytes.NewReader(blob))
	dec.UseNumber()
	var tree interface{}
	if err := dec.Decode(&tree); err != nil {
		return nil, fmt.Errorf("error decoding input: %w", err)
	}
	return tree, nil
}

// normalize walks a JSON tree along the declared fields of a record type.
// It applies defaults to absent fields, drops explicit nulls of optional
// fields and coerces strings holding numbers or booleans. Values it cannot
// make sense of are left untouched for the schema to report.
func normalize(rt RecordType, node interface{}) interface{} {
	obj, ok := node.(map[string]interface{})
	if !ok {
		return node
	}
	out := make(map[string]interface{}, len(obj))
	for k, v := range obj {
		out[k] = v
	}
	for _, f := range mustFields(rt) {
		v, present := out[f.Name]
		if !present {
			if f.Default != nil {
				out[f.Name] = f.Default
			}
			continue
		}
		if v == nil {
			if !f.Required && f.Default == nil {
				delete(out, f.Name)
			}
			continue
		}
		if !f.List {
			out[f.Name] = normalizeValue(f, v)
			continue
		}
		items, ok := v.([]interface{})
		if !ok {
			continue
		}
		normalized := make([]interface{}, len(items))
		for i, item := range items {
			normalized[i] = normalizeValue(f, item)
		}
		out[f.Name] = normalized
	}
	return out
}

func normalizeValue(f Field, v interface{}) interface{} {
	switch f.Kind {
	case KindRecord:
		return normalize(f.Record, v)
	case KindString:
		if n, ok := v.(json.Number); ok {
			if s, err := cast.ToStringE(n); err == nil {
				return s
			}
		}
	case KindInteger:
		switch n := v.(type) {
		case string:
			if i, err := cast.ToInt64E(n); err == nil {
				return json.Number(strconv.FormatInt(i, 10))
			}
		case json.Number:
			return integral(n)
		}
	case KindFloat:
		if s, ok := v.(string); ok {
			if fl, err := cast.ToFloat64E(s); err == nil && !math.IsInf(fl, 0) && !math.IsNaN(fl) {
				return json.Number(strconv.FormatFloat(fl, 'g', -1, 64))
			}
		}
	case KindBoolean:
		switch n := v.(type) {
		case string:
			if b, err := cast.ToBoolE(n); err == nil {
				return b
			}
		case json.Number:
			// Only 0 and 1 stand for booleans.
			if fl, err := n.Float64(); err == nil && (fl == 0 || fl == 1) {
				return fl == 1
			}
		}
	}
	return v
}

// integral rewrites integral numbers in exponent or fraction form, e.g. 5.0
// or 1e3, as plain integer literals. Values beyond int64 are kept as they are
// for the schema bounds to reject.
func integral(n json.Number) json.Number {
	if _, err := n.Int64(); err == nil {
		return n
	}
	r, ok := new(big.Rat).SetString(string(n))
	if !ok || !r.IsInt() || !r.Num().IsInt64() {
		return n
	}
	return json.Number(r.Num().String())
}

// invalidUTF8 returns the paths of the strings of the input that are not
// valid UTF-8. Raw JSON input is checked as a whole and reported at the root.
func invalidUTF8(input interface{}) []string {
	switch v := input.(type) {
	case []byte:
		if !utf8.Valid(v) {
			return []string{""}
		}
	case json.RawMessage:
		if !utf8.Valid(v) {
			return []string{""}
		}
	case string:
		if !utf8.ValidString(v) {
			return []string{""}
		}
	default:
		var paths []string
		walkStrings("", v, func(path, s string) {
			if !utf8.ValidString(s) {
				paths = append(paths, path)
			}
		})
		sort.Strings(paths)
		return paths
	}
	return nil
}

func walkStrings(path string, node interface{}, fn func(path, s string)) {
	switch v := node.(type) {
	case string:
		fn(path, v)
	case map[string]interface{}:
		for k, item := range v {
			walkStrings(joinPath(path, k), item, fn)
		}
	case []interface{}:
		for i, item := range v {
			walkStrings(joinPath(path, strconv.Itoa(i)), item, fn)
		}
	case []string:
		for i, item := range v {
			fn(joinPath(path, strconv.Itoa(i)), item)
		}
	}
}

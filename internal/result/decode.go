package result

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

// ErrMalformedRecord is returned when a file cannot be decoded as a run record.
var ErrMalformedRecord = errors.New("malformed run record")

// DecodeRunRecord parses one YAML run-record document. Keys written by the
// harness in symbol form (":model") are accepted alongside plain keys.
// Numeric and boolean fields are coerced; anything unusable becomes zero.
func DecodeRunRecord(data []byte) (*RunRecord, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}
	fields, ok := normalizeKeys(doc).(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: document is not a mapping", ErrMalformedRecord)
	}

	var rec RunRecord
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: coerceScalars,
		Result:     &rec,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(fields); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}
	return &rec, nil
}

func normalizeKeys(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[strings.TrimPrefix(k, ":")] = normalizeKeys(val)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[strings.TrimPrefix(cast.ToString(k), ":")] = normalizeKeys(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = normalizeKeys(val)
		}
		return out
	default:
		return v
	}
}

// coerceScalars is the single place metric values are made well-typed.
var coerceScalars mapstructure.DecodeHookFuncType = func(_ reflect.Type, to reflect.Type, data any) (any, error) {
	switch to.Kind() {
	case reflect.Float32, reflect.Float64:
		return toFloat(data), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return toInt(data), nil
	case reflect.Bool:
		return cast.ToBool(data), nil
	case reflect.String:
		return cast.ToString(data), nil
	case reflect.Struct:
		if _, ok := data.(map[string]any); !ok {
			return map[string]any{}, nil
		}
	}
	return data, nil
}

// toInt truncates toward zero. Values that do not fit an int64 become zero.
func toInt(v any) int64 {
	f := math.Trunc(toFloat(v))
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0
	}
	return int64(f)
}

// toFloat defaults non-numeric and non-finite values to zero. The harness
// writes .nan/.inf when it divides by a zero row or record count.
func toFloat(v any) float64 {
	f := cast.ToFloat64(v)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

package models

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Value is a JSON value kept exactly as the client sent it. The zero Value
// means the field was absent; an explicit null is a set Value holding nil.
// Fields of this type are tagged omitzero so absent values stay absent.
type Value struct {
	raw any
	set bool
}

func ValueOf(v any) Value {
	return Value{raw: v, set: true}
}

func StringValue(s string) Value {
	return ValueOf(s)
}

func NumberValue(f float64) Value {
	return ValueOf(f)
}

func NullValue() Value {
	return ValueOf(nil)
}

func (v Value) IsZero() bool {
	return !v.set
}

func (v Value) Any() any {
	return v.raw
}

func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.raw)
}

func (v *Value) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	v.raw = raw
	v.set = true

	return nil
}

// Equal is strict equality: both absent, both null, or scalars of the same
// kind and value. Arrays and objects are never equal to anything.
func (v Value) Equal(other Value) bool {
	if v.set != other.set {
		return false
	}

	if !v.set {
		return true
	}

	switch a := v.raw.(type) {
	case nil:
		return other.raw == nil
	case string:
		b, ok := other.raw.(string)
		return ok && a == b
	case float64:
		b, ok := other.raw.(float64)
		return ok && a == b
	case bool:
		b, ok := other.raw.(bool)
		return ok && a == b
	default:
		return false
	}
}

// Less orders two values: strings compare lexically, any other pair compares
// as numbers. Absent values and anything without a numeric reading are
// unordered, so Less reports false for them in both directions.
func Less(a, b Value) bool {
	if !a.set || !b.set {
		return false
	}

	pa, pb := primitive(a.raw), primitive(b.raw)

	sa, aIsString := pa.(string)
	sb, bIsString := pb.(string)
	if aIsString && bIsString {
		return sa < sb
	}

	na, nb := number(pa), number(pb)
	if math.IsNaN(na) || math.IsNaN(nb) {
		return false
	}

	return na < nb
}

// primitive reduces arrays and objects to their string form.
func primitive(v any) any {
	switch t := v.(type) {
	case []any:
		parts := make([]string, len(t))
		for i, elem := range t {
			if elem == nil {
				continue
			}
			if s, ok := primitive(elem).(string); ok {
				parts[i] = s
				continue
			}
			parts[i] = formatNumber(number(primitive(elem)), elem)
		}
		return strings.Join(parts, ",")
	case map[string]any:
		return "[object Object]"
	default:
		return v
	}
}

func number(v any) float64 {
	switch t := v.(type) {
	case nil:
		return 0
	case bool:
		if t {
			return 1
		}
		return 0
	case float64:
		return t
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return 0
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return math.NaN()
		}
		return f
	default:
		return math.NaN()
	}
}

func formatNumber(f float64, orig any) string {
	if b, ok := orig.(bool); ok {
		return strconv.FormatBool(b)
	}

	return strconv.FormatFloat(f, 'f', -1, 64)
}

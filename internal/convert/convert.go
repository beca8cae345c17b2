package convert

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrNone reports an absent or placeholder value.
var ErrNone = errors.New("no value")

// placeholders are the strings treated as absent, compared after trimming
// and lowercasing.
var placeholders = map[string]struct{}{
	"":        {},
	"n/a":     {},
	"none":    {},
	"unknown": {},
}

// Error reports a present value that could not be converted.
type Error struct {
	Kind  string // target kind, e.g. "int"
	Value any
	Err   error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cannot convert %#v to %s: %v", e.Value, e.Kind, e.Err)
	}
	return fmt.Sprintf("cannot convert %#v to %s", e.Value, e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }

func fail(kind string, v any, err error) error {
	return &Error{Kind: kind, Value: v, Err: err}
}

// IsNone reports whether v is nil or a placeholder string.
func IsNone(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		_, ok := placeholders[strings.ToLower(strings.TrimSpace(x))]
		return ok
	case json.Number:
		return IsNone(string(x))
	}
	return false
}

// String returns the text form of a scalar value, trimmed.
func String(v any) (string, error) {
	if IsNone(v) {
		return "", ErrNone
	}
	switch x := v.(type) {
	case string:
		return strings.TrimSpace(x), nil
	case json.Number:
		return x.String(), nil
	case bool:
		return strconv.FormatBool(x), nil
	case int:
		return strconv.Itoa(x), nil
	case int64:
		return strconv.FormatInt(x, 10), nil
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), nil
	}
	return "", fail("string", v, nil)
}

// numeric strips whitespace and thousands separators from a number literal.
func numeric(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), ",", "")
}

// Int converts v to an int. Floats convert only when integral.
func Int(v any) (int, error) {
	if IsNone(v) {
		return 0, ErrNone
	}
	switch x := v.(type) {
	case int:
		return x, nil
	case int64:
		return int(x), nil
	case float64:
		if x != math.Trunc(x) || math.IsInf(x, 0) {
			return 0, fail("int", v, nil)
		}
		return int(x), nil
	case json.Number:
		n, err := strconv.Atoi(x.String())
		if err != nil {
			return 0, fail("int", v, err)
		}
		return n, nil
	case string:
		n, err := strconv.Atoi(numeric(x))
		if err != nil {
			return 0, fail("int", v, err)
		}
		return n, nil
	}
	return 0, fail("int", v, nil)
}

// Float converts v to a finite float64.
func Float(v any) (float64, error) {
	if IsNone(v) {
		return 0, ErrNone
	}
	var (
		f   float64
		err error
	)
	switch x := v.(type) {
	case float64:
		f = x
	case int:
		f = float64(x)
	case int64:
		f = float64(x)
	case json.Number:
		f, err = x.Float64()
	case string:
		f, err = strconv.ParseFloat(numeric(x), 64)
	default:
		return 0, fail("float", v, nil)
	}
	if err != nil {
		return 0, fail("float", v, err)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fail("float", v, errors.New("not finite"))
	}
	return f, nil
}

// List splits a delimited string into trimmed, non-empty items. Lists
// pass through with each item converted by String.
func List(v any, sep string) ([]string, error) {
	if IsNone(v) {
		return nil, ErrNone
	}
	var out []string
	switch x := v.(type) {
	case string:
		for _, item := range strings.Split(x, sep) {
			if item = strings.TrimSpace(item); item != "" {
				out = append(out, item)
			}
		}
	case []string:
		for _, item := range x {
			if s, err := String(item); err == nil {
				out = append(out, s)
			}
		}
	case []any:
		for _, item := range x {
			s, err := String(item)
			if errors.Is(err, ErrNone) {
				continue
			}
			if err != nil {
				return nil, fail("list", v, err)
			}
			out = append(out, s)
		}
	default:
		return nil, fail("list", v, nil)
	}
	if len(out) == 0 {
		return nil, ErrNone
	}
	return out, nil
}

// Gravity converts a gravity description to standard units:
// "1 standard" -> 1, "1.56" -> 1.56. When several values are listed
// ("1 standard, 0.9 (surface)") the first one is used.
func Gravity(v any) (float64, error) {
	s, ok := v.(string)
	if !ok || IsNone(v) {
		return Float(v)
	}
	first, _, _ := strings.Cut(s, ",")
	first = strings.ToLower(strings.TrimSpace(first))
	first = strings.TrimSpace(strings.TrimSuffix(first, "standard"))
	if i := strings.IndexByte(first, ' '); i >= 0 {
		first = first[:i]
	}
	f, err := Float(first)
	if err != nil {
		return 0, fail("gravity", v, err)
	}
	return f, nil
}

// Bool converts v to a bool. Strings accept true/false, yes/no and 1/0.
func Bool(v any) (bool, error) {
	if IsNone(v) {
		return false, ErrNone
	}
	switch x := v.(type) {
	case bool:
		return x, nil
	case float64:
		switch x {
		case 0:
			return false, nil
		case 1:
			return true, nil
		}
	case int:
		switch x {
		case 0:
			return false, nil
		case 1:
			return true, nil
		}
	case json.Number:
		return Bool(string(x))
	case string:
		switch strings.ToLower(strings.TrimSpace(x)) {
		case "true", "yes", "y", "1":
			return true, nil
		case "false", "no", "n", "0":
			return false, nil
		}
	}
	return false, fail("bool", v, nil)
}

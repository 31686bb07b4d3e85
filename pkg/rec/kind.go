package rec

import (
	"fmt"
	"strconv"
)

// Kind names used in serialized schemas and error messages.
const (
	KindString  = "string"
	KindInteger = "integer"
	KindFloat   = "float"
	KindBoolean = "boolean"
)

// Kind is the capability surface of one semantic field type. Conversion
// between the text format and typed values is dispatched through the field
// descriptor's Kind, never through runtime type-name matching.
type Kind interface {
	// Name returns the kind's schema name (one of the Kind constants).
	Name() string

	// Parse converts a raw string from the text format into a typed value.
	// The returned error wraps the underlying conversion failure.
	Parse(raw string) (any, error)

	// Format renders a typed value back into its text-format form.
	Format(v any) string

	// Canon validates a caller-supplied comparison value and returns its
	// canonical form (e.g. int widens to int64). Returns ErrTypeMismatch
	// if the value's type does not belong to this kind.
	Canon(v any) (any, error)

	// Zero returns the kind's default value, used for fields absent from
	// a parsed record group.
	Zero() any
}

// The built-in kinds.
var (
	String Kind = stringKind{}
	Int    Kind = intKind{}
	Float  Kind = floatKind{}
	Bool   Kind = boolKind{}
)

// KindFor returns the built-in kind with the given schema name.
// Returns ErrInvalidKind if the name is not recognized.
func KindFor(name string) (Kind, error) {
	switch name {
	case KindString:
		return String, nil
	case KindInteger:
		return Int, nil
	case KindFloat:
		return Float, nil
	case KindBoolean:
		return Bool, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidKind, name)
	}
}

type stringKind struct{}

func (stringKind) Name() string { return KindString }

func (stringKind) Parse(raw string) (any, error) { return raw, nil }

func (stringKind) Format(v any) string { return v.(string) }

func (stringKind) Canon(v any) (any, error) {
	s, ok := v.(string)
	if !ok {
		return nil, fmt.Errorf("%w: %T is not a string", ErrTypeMismatch, v)
	}
	return s, nil
}

func (stringKind) Zero() any { return "" }

type intKind struct{}

func (intKind) Name() string { return KindInteger }

func (intKind) Parse(raw string) (any, error) {
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("parsing %q as integer: %w", raw, err)
	}
	return n, nil
}

func (intKind) Format(v any) string { return strconv.FormatInt(v.(int64), 10) }

func (intKind) Canon(v any) (any, error) {
	switch n := v.(type) {
	case int:
		return int64(n), nil
	case int64:
		return n, nil
	default:
		return nil, fmt.Errorf("%w: %T is not an integer", ErrTypeMismatch, v)
	}
}

func (intKind) Zero() any { return int64(0) }

type floatKind struct{}

func (floatKind) Name() string { return KindFloat }

func (floatKind) Parse(raw string) (any, error) {
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("parsing %q as float: %w", raw, err)
	}
	return f, nil
}

func (floatKind) Format(v any) string {
	return strconv.FormatFloat(v.(float64), 'g', -1, 64)
}

func (floatKind) Canon(v any) (any, error) {
	f, ok := v.(float64)
	if !ok {
		return nil, fmt.Errorf("%w: %T is not a float", ErrTypeMismatch, v)
	}
	return f, nil
}

func (floatKind) Zero() any { return float64(0) }

type boolKind struct{}

func (boolKind) Name() string { return KindBoolean }

func (boolKind) Parse(raw string) (any, error) {
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, fmt.Errorf("parsing %q as boolean: %w", raw, err)
	}
	return b, nil
}

func (boolKind) Format(v any) string { return strconv.FormatBool(v.(bool)) }

func (boolKind) Canon(v any) (any, error) {
	b, ok := v.(bool)
	if !ok {
		return nil, fmt.Errorf("%w: %T is not a boolean", ErrTypeMismatch, v)
	}
	return b, nil
}

func (boolKind) Zero() any { return false }

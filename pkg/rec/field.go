package rec

// Field describes one named, typed field of a record type R: its schema
// name, its Kind, and accessor closures supplied by the caller. The store
// builds its field registry from an explicit descriptor list once at
// construction; nothing is derived per parse.
type Field[R any] struct {
	name   string
	kind   Kind
	assign func(r *R, v any)
	value  func(r *R) any
}

// Name returns the field's schema name as it appears in the text format.
func (f Field[R]) Name() string { return f.name }

// Kind returns the field's semantic type.
func (f Field[R]) Kind() Kind { return f.kind }

// Value returns the field's current typed value on r.
func (f Field[R]) Value(r *R) any { return f.value(r) }

// StringOf declares a string field backed by the pointer acc returns.
func StringOf[R any](name string, acc func(*R) *string) Field[R] {
	return Field[R]{
		name:   name,
		kind:   String,
		assign: func(r *R, v any) { *acc(r) = v.(string) },
		value:  func(r *R) any { return *acc(r) },
	}
}

// IntOf declares an integer field backed by the pointer acc returns.
func IntOf[R any](name string, acc func(*R) *int64) Field[R] {
	return Field[R]{
		name:   name,
		kind:   Int,
		assign: func(r *R, v any) { *acc(r) = v.(int64) },
		value:  func(r *R) any { return *acc(r) },
	}
}

// FloatOf declares a floating-point field backed by the pointer acc returns.
func FloatOf[R any](name string, acc func(*R) *float64) Field[R] {
	return Field[R]{
		name:   name,
		kind:   Float,
		assign: func(r *R, v any) { *acc(r) = v.(float64) },
		value:  func(r *R) any { return *acc(r) },
	}
}

// BoolOf declares a boolean field backed by the pointer acc returns.
func BoolOf[R any](name string, acc func(*R) *bool) Field[R] {
	return Field[R]{
		name:   name,
		kind:   Bool,
		assign: func(r *R, v any) { *acc(r) = v.(bool) },
		value:  func(r *R) any { return *acc(r) },
	}
}

// Values is a slot-indexed record for schemas declared at runtime (the CLI
// builds its record type from configuration this way). Each slot holds the
// canonical value of its field's kind. Compile-time record types with
// typed accessors are preferred where the schema is known.
type Values []any

// Slot declares a field of a Values record stored at index i.
func Slot(name string, kind Kind, i int) Field[Values] {
	return Field[Values]{
		name:   name,
		kind:   kind,
		assign: func(r *Values, v any) { (*r)[i] = v },
		value:  func(r *Values) any { return (*r)[i] },
	}
}

// ZeroValues returns a Values record with every slot set to its kind's
// default, for use with WithZero when building a Values-backed store.
func ZeroValues(kinds []Kind) Values {
	vals := make(Values, len(kinds))
	for i, k := range kinds {
		vals[i] = k.Zero()
	}
	return vals
}

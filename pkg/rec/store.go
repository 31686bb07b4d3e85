package rec

import (
	"bufio"
	"fmt"
	"strings"
)

// Source resolves an external text source by identifier (such as a path).
// Existence checks belong to the Source; a missing source makes ParseFrom
// a no-op.
type Source interface {
	Exists(name string) bool
	ReadAll(name string) (string, error)
}

// Sink receives serialized text for an identifier, overwriting any
// previous content.
type Sink interface {
	Write(name, text string) error
}

// Store is an ordered, insertion-order-preserving collection of records of
// type R. It owns the decode loop from the brace-delimited text format and
// serialization back to it. Insertion order is semantically meaningful:
// first-match and take-N operations depend on it, and it is preserved
// across parse, insert, update, and remove.
//
// A Store is not safe for concurrent use; callers needing shared access
// must serialize it externally.
type Store[R any] struct {
	fields []Field[R]
	index  map[string]int
	bound  map[string]*Bound[R]
	zero   func() R
	source Source
	sink   Sink
	recs   []R
}

// Option configures a Store at construction.
type Option[R any] func(*Store[R])

// WithSource injects the text-source collaborator used by ParseFrom.
func WithSource[R any](src Source) Option[R] {
	return func(s *Store[R]) { s.source = src }
}

// WithSink injects the text-sink collaborator used by WriteTo.
func WithSink[R any](snk Sink) Option[R] {
	return func(s *Store[R]) { s.sink = snk }
}

// WithZero overrides the default-record constructor. The default is the
// zero value of R; slice-backed record types such as Values need their
// slots allocated here.
func WithZero[R any](fn func() R) Option[R] {
	return func(s *Store[R]) { s.zero = fn }
}

// New creates an empty store over the given field descriptors. Field
// names must be non-empty and unique within the record type; violations
// are construction-time errors, not parse-time ones.
func New[R any](fields []Field[R], opts ...Option[R]) (*Store[R], error) {
	s := &Store[R]{
		fields: append([]Field[R](nil), fields...),
		index:  make(map[string]int, len(fields)),
		bound:  make(map[string]*Bound[R], len(fields)),
		zero:   func() R { var z R; return z },
	}
	for i, f := range s.fields {
		if f.name == "" {
			return nil, fmt.Errorf("%w: field %d has no name", ErrInvalidField, i)
		}
		if _, dup := s.index[f.name]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateField, f.name)
		}
		s.index[f.name] = i
		s.bound[f.name] = &Bound[R]{store: s, field: f.name}
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Fields returns the field descriptors in declaration order.
func (s *Store[R]) Fields() []Field[R] {
	return append([]Field[R](nil), s.fields...)
}

// Len returns the number of stored records.
func (s *Store[R]) Len() int { return len(s.recs) }

// Empty reports whether the store holds no records.
func (s *Store[R]) Empty() bool { return len(s.recs) == 0 }

// Records returns the stored records in insertion order. The slice is a
// copy; it is a snapshot, not a live view across subsequent mutations.
func (s *Store[R]) Records() []R {
	return append([]R(nil), s.recs...)
}

// At returns the record at position i in insertion order.
// Returns ErrNotFound if i is out of range.
func (s *Store[R]) At(i int) (R, error) {
	if i < 0 || i >= len(s.recs) {
		var z R
		return z, ErrNotFound
	}
	return s.recs[i], nil
}

// Insert appends one record to the store.
func (s *Store[R]) Insert(r R) {
	s.recs = append(s.recs, r)
}

// InsertValues constructs a record from one positional value per declared
// field, in declaration order, and appends it. Values are canonicalized
// through each field's kind; a count or type mismatch rejects the whole
// insert.
func (s *Store[R]) InsertValues(vals ...any) error {
	if len(vals) != len(s.fields) {
		return fmt.Errorf("%w: got %d, want %d", ErrValueCount, len(vals), len(s.fields))
	}
	r := s.zero()
	for i, f := range s.fields {
		v, err := f.kind.Canon(vals[i])
		if err != nil {
			return fmt.Errorf("field %q: %w", f.name, err)
		}
		f.assign(&r, v)
	}
	s.recs = append(s.recs, r)
	return nil
}

type rawPair struct {
	key string
	val string
}

// Parse decodes text in the brace-delimited format and appends every
// completed record group to the store in the order encountered. It never
// clears existing records. An empty group appends one default-valued
// record; an unterminated trailing group is silently dropped; unknown
// keys and unrecognized lines are ignored. A value that cannot be
// converted to its field's kind stops the call with an error, keeping the
// records appended before the failure.
func (s *Store[R]) Parse(text string) error {
	var (
		pairs []rawPair
		open  bool
	)
	sc := bufio.NewScanner(strings.NewReader(text))
	for sc.Scan() {
		ln := classify(sc.Text())
		switch ln.kind {
		case lineOpen:
			// A new open discards any unterminated buffer.
			pairs = pairs[:0]
			open = true
		case lineClose:
			if !open {
				continue
			}
			r, err := s.mapGroup(pairs)
			if err != nil {
				return err
			}
			s.recs = append(s.recs, r)
			open = false
		case lineField:
			if open {
				pairs = append(pairs, rawPair{ln.key, ln.value})
			}
		}
	}
	return sc.Err()
}

// mapGroup converts one buffered record group into a typed record. Later
// duplicate keys overwrite earlier ones; fields absent from the group keep
// the record's default value.
func (s *Store[R]) mapGroup(pairs []rawPair) (R, error) {
	r := s.zero()
	for _, p := range pairs {
		i, ok := s.index[p.key]
		if !ok {
			continue
		}
		f := s.fields[i]
		v, err := f.kind.Parse(p.val)
		if err != nil {
			return r, fmt.Errorf("field %q: %w", f.name, err)
		}
		f.assign(&r, v)
	}
	return r, nil
}

// ParseFrom resolves an external source through the injected Source and
// parses its text. A missing source leaves the store unchanged and
// returns nil.
func (s *Store[R]) ParseFrom(name string) error {
	if s.source == nil {
		return ErrNoSource
	}
	if !s.source.Exists(name) {
		return nil
	}
	text, err := s.source.ReadAll(name)
	if err != nil {
		return fmt.Errorf("reading %s: %w", name, err)
	}
	return s.Parse(text)
}

// Serialize renders every stored record: one line per declared field in
// declaration order, values quoted, regardless of which fields were
// present on read. Parsing the result into a store with the same fields
// reproduces the records, provided no string value contains quote or
// brace characters.
func (s *Store[R]) Serialize() string {
	var b strings.Builder
	for i := range s.recs {
		b.WriteString("{\n")
		for _, f := range s.fields {
			b.WriteByte('\t')
			b.WriteString(f.name)
			b.WriteString(" \"")
			b.WriteString(f.kind.Format(f.value(&s.recs[i])))
			b.WriteString("\"\n")
		}
		b.WriteString("}\n\n")
	}
	return b.String()
}

// WriteTo hands the serialized store to the injected Sink under the given
// identifier, overwriting previous content.
func (s *Store[R]) WriteTo(name string) error {
	if s.sink == nil {
		return ErrNoSink
	}
	return s.sink.Write(name, s.Serialize())
}

package rec

import "fmt"

// matcher resolves a field name and comparison value into an equality
// predicate. Unknown fields and kind mismatches are rejected here, before
// any record is scanned.
func (s *Store[R]) matcher(field string, v any) (func(*R) bool, error) {
	i, ok := s.index[field]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownField, field)
	}
	f := s.fields[i]
	cv, err := f.kind.Canon(v)
	if err != nil {
		return nil, fmt.Errorf("field %q: %w", field, err)
	}
	return func(r *R) bool { return f.value(r) == cv }, nil
}

// Find returns the first limit records, in store order, whose named field
// equals v. limit == 0 means unbounded. No match yields an empty slice,
// never an error; errors are reserved for unknown fields and type
// mismatches. Results are snapshots, not live views.
func (s *Store[R]) Find(field string, v any, limit int) ([]R, error) {
	match, err := s.matcher(field, v)
	if err != nil {
		return nil, err
	}
	out := []R{}
	for i := range s.recs {
		if match(&s.recs[i]) {
			out = append(out, s.recs[i])
			if limit > 0 && len(out) == limit {
				break
			}
		}
	}
	return out, nil
}

// FindAll returns every record whose named field equals v, in store order.
func (s *Store[R]) FindAll(field string, v any) ([]R, error) {
	return s.Find(field, v, 0)
}

// HasValue reports whether at least one record's named field equals v.
func (s *Store[R]) HasValue(field string, v any) (bool, error) {
	found, err := s.Find(field, v, 1)
	if err != nil {
		return false, err
	}
	return len(found) > 0, nil
}

// Update sets the named field to newV on records whose field equals
// matchV, in store order, affecting at most limit records (0 = unbounded).
// Returns the number of records updated.
func (s *Store[R]) Update(field string, matchV, newV any, limit int) (int, error) {
	match, err := s.matcher(field, matchV)
	if err != nil {
		return 0, err
	}
	return s.updateMatching(match, field, newV, limit)
}

// UpdateAll is Update with no limit.
func (s *Store[R]) UpdateAll(field string, matchV, newV any) (int, error) {
	return s.Update(field, matchV, newV, 0)
}

// UpdateWhere sets the named field to newV on records satisfying pred,
// affecting at most limit records (0 = unbounded).
func (s *Store[R]) UpdateWhere(pred func(R) bool, field string, newV any, limit int) (int, error) {
	return s.updateMatching(func(r *R) bool { return pred(*r) }, field, newV, limit)
}

func (s *Store[R]) updateMatching(match func(*R) bool, field string, newV any, limit int) (int, error) {
	i, ok := s.index[field]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownField, field)
	}
	f := s.fields[i]
	cv, err := f.kind.Canon(newV)
	if err != nil {
		return 0, fmt.Errorf("field %q: %w", field, err)
	}
	updated := 0
	for j := range s.recs {
		if limit > 0 && updated == limit {
			break
		}
		if match(&s.recs[j]) {
			f.assign(&s.recs[j], cv)
			updated++
		}
	}
	return updated, nil
}

// Remove deletes records whose named field equals v, in store order,
// removing at most limit records (0 = unbounded). The relative order of
// surviving records is preserved. Returns the number removed.
func (s *Store[R]) Remove(field string, v any, limit int) (int, error) {
	match, err := s.matcher(field, v)
	if err != nil {
		return 0, err
	}
	return s.removeMatching(match, limit), nil
}

// RemoveAll is Remove with no limit.
func (s *Store[R]) RemoveAll(field string, v any) (int, error) {
	return s.Remove(field, v, 0)
}

// RemoveWhere deletes records satisfying pred, removing at most limit
// records (0 = unbounded).
func (s *Store[R]) RemoveWhere(pred func(R) bool, limit int) int {
	return s.removeMatching(func(r *R) bool { return pred(*r) }, limit)
}

func (s *Store[R]) removeMatching(match func(*R) bool, limit int) int {
	kept := s.recs[:0]
	removed := 0
	for i := range s.recs {
		if (limit == 0 || removed < limit) && match(&s.recs[i]) {
			removed++
			continue
		}
		kept = append(kept, s.recs[i])
	}
	s.recs = kept
	return removed
}

// Bound is a per-field accessor with the field name baked in. Bound
// accessors are built once from the field registry at store construction;
// each call is identical to the corresponding Store method with that
// field name.
type Bound[R any] struct {
	store *Store[R]
	field string
}

// Field returns the bound accessor for the named field.
// Returns ErrUnknownField if the name is not in the record type.
func (s *Store[R]) Field(name string) (*Bound[R], error) {
	b, ok := s.bound[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownField, name)
	}
	return b, nil
}

// Name returns the field this accessor is bound to.
func (b *Bound[R]) Name() string { return b.field }

// Find returns the first record whose bound field equals v.
// The second result is false if no record matches.
func (b *Bound[R]) Find(v any) (R, bool, error) {
	found, err := b.store.Find(b.field, v, 1)
	if err != nil || len(found) == 0 {
		var z R
		return z, false, err
	}
	return found[0], true, nil
}

// FindAll returns every record whose bound field equals v.
func (b *Bound[R]) FindAll(v any) ([]R, error) {
	return b.store.FindAll(b.field, v)
}

// Has reports whether any record's bound field equals v.
func (b *Bound[R]) Has(v any) (bool, error) {
	return b.store.HasValue(b.field, v)
}

// Update sets the bound field to newV on at most limit records whose
// field equals matchV (0 = unbounded).
func (b *Bound[R]) Update(matchV, newV any, limit int) (int, error) {
	return b.store.Update(b.field, matchV, newV, limit)
}

// Remove deletes at most limit records whose bound field equals v
// (0 = unbounded).
func (b *Bound[R]) Remove(v any, limit int) (int, error) {
	return b.store.Remove(b.field, v, limit)
}

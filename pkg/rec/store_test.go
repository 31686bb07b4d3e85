package rec

import (
	"errors"
	"strings"
	"testing"
)

type person struct {
	FirstName string
	LastName  string
}

func personFields() []Field[person] {
	return []Field[person]{
		StringOf("firstName", func(p *person) *string { return &p.FirstName }),
		StringOf("lastName", func(p *person) *string { return &p.LastName }),
	}
}

func newPersonStore(t *testing.T, opts ...Option[person]) *Store[person] {
	t.Helper()
	s, err := New(personFields(), opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

type item struct {
	Name string
	ID   int64
}

func itemFields() []Field[item] {
	return []Field[item]{
		StringOf("name", func(i *item) *string { return &i.Name }),
		IntOf("id", func(i *item) *int64 { return &i.ID }),
	}
}

func newItemStore(t *testing.T) *Store[item] {
	t.Helper()
	s, err := New(itemFields())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

const peopleText = "{\n firstName \"Albert\"\n lastName \"Einstein\"\n}\n\n" +
	"{\n firstName \"John\"\n lastName \"Doe\"\n}\n\n" +
	"{\n firstName \"Albert\"\n lastName \"Einstein\"\n}"

func TestNewRejectsBadFields(t *testing.T) {
	dup := []Field[person]{
		StringOf("name", func(p *person) *string { return &p.FirstName }),
		StringOf("name", func(p *person) *string { return &p.LastName }),
	}
	if _, err := New(dup); !errors.Is(err, ErrDuplicateField) {
		t.Errorf("duplicate names: error = %v, want ErrDuplicateField", err)
	}

	unnamed := []Field[person]{
		StringOf("", func(p *person) *string { return &p.FirstName }),
	}
	if _, err := New(unnamed); !errors.Is(err, ErrInvalidField) {
		t.Errorf("empty name: error = %v, want ErrInvalidField", err)
	}
}

func TestStoreParseOrder(t *testing.T) {
	s := newPersonStore(t)
	if err := s.Parse(peopleText); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if s.Len() != 3 {
		t.Fatalf("Len = %d, want 3", s.Len())
	}
	want := []person{
		{"Albert", "Einstein"},
		{"John", "Doe"},
		{"Albert", "Einstein"},
	}
	for i, w := range want {
		got, err := s.At(i)
		if err != nil {
			t.Fatalf("At(%d): %v", i, err)
		}
		if got != w {
			t.Errorf("At(%d) = %+v, want %+v", i, got, w)
		}
	}
}

func TestStoreParseEdgeCases(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []person
	}{
		{
			name: "empty group appends default record",
			text: "{\n}\n",
			want: []person{{}},
		},
		{
			name: "braces on one line commit nothing in between",
			text: "{}\n",
			want: nil,
		},
		{
			name: "unterminated trailing group dropped",
			text: "{\n firstName \"Albert\"\n}\n{\n firstName \"John\"\n",
			want: []person{{FirstName: "Albert"}},
		},
		{
			name: "reopen discards buffered group",
			text: "{\n firstName \"Albert\"\n{\n firstName \"John\"\n}\n",
			want: []person{{FirstName: "John"}},
		},
		{
			name: "stray close ignored",
			text: "}\n{\n firstName \"Ada\"\n}\n",
			want: []person{{FirstName: "Ada"}},
		},
		{
			name: "unknown keys ignored",
			text: "{\n firstName \"Albert\"\n occupation \"physicist\"\n}\n",
			want: []person{{FirstName: "Albert"}},
		},
		{
			name: "malformed lines ignored",
			text: "{\n firstName \"Albert\"\n ???\n orphan\n}\n",
			want: []person{{FirstName: "Albert"}},
		},
		{
			name: "field lines outside groups ignored",
			text: "firstName \"Ghost\"\n{\n firstName \"Albert\"\n}\n",
			want: []person{{FirstName: "Albert"}},
		},
		{
			name: "duplicate key last write wins",
			text: "{\n firstName \"Albert\"\n firstName \"John\"\n}\n",
			want: []person{{FirstName: "John"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newPersonStore(t)
			if err := s.Parse(tt.text); err != nil {
				t.Fatalf("Parse: %v", err)
			}
			got := s.Records()
			if len(got) != len(tt.want) {
				t.Fatalf("Len = %d, want %d", len(got), len(tt.want))
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("record %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestStoreParseConversionFailure(t *testing.T) {
	s := newItemStore(t)
	text := "{\n name \"widget\"\n id \"100\"\n}\n" +
		"{\n name \"gadget\"\n id \"not-a-number\"\n}\n"
	err := s.Parse(text)
	if err == nil {
		t.Fatal("Parse succeeded, want conversion error")
	}
	if !strings.Contains(err.Error(), `"id"`) {
		t.Errorf("error %q does not name the failing field", err)
	}
	// Records committed before the failure stay in the store.
	if s.Len() != 1 {
		t.Fatalf("Len = %d, want 1", s.Len())
	}
	got, _ := s.At(0)
	if got.Name != "widget" || got.ID != 100 {
		t.Errorf("surviving record = %+v", got)
	}
}

func TestStoreParseAppends(t *testing.T) {
	s := newPersonStore(t)
	if err := s.Parse("{\n firstName \"Albert\"\n}\n"); err != nil {
		t.Fatalf("first Parse: %v", err)
	}
	if err := s.Parse("{\n firstName \"John\"\n}\n"); err != nil {
		t.Fatalf("second Parse: %v", err)
	}
	if s.Len() != 2 {
		t.Fatalf("Len = %d, want 2 (parse must append, not replace)", s.Len())
	}
}

func TestStoreSerializeFormat(t *testing.T) {
	s := newItemStore(t)
	s.Insert(item{Name: "widget", ID: 100})
	want := "{\n\tname \"widget\"\n\tid \"100\"\n}\n\n"
	if got := s.Serialize(); got != want {
		t.Errorf("Serialize() = %q, want %q", got, want)
	}
}

func TestStoreRoundTrip(t *testing.T) {
	src := newItemStore(t)
	src.Insert(item{Name: "widget", ID: 100})
	src.Insert(item{Name: "gadget", ID: 200})
	src.Insert(item{Name: "widget", ID: 100})

	dst := newItemStore(t)
	if err := dst.Parse(src.Serialize()); err != nil {
		t.Fatalf("Parse(Serialize()): %v", err)
	}
	a, b := src.Records(), dst.Records()
	if len(a) != len(b) {
		t.Fatalf("round trip length %d, want %d", len(b), len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("record %d = %+v, want %+v", i, b[i], a[i])
		}
	}
}

func TestStoreInsertValues(t *testing.T) {
	s := newItemStore(t)
	if err := s.InsertValues("widget", 100); err != nil {
		t.Fatalf("InsertValues: %v", err)
	}
	got, _ := s.At(0)
	if got.Name != "widget" || got.ID != 100 {
		t.Errorf("inserted record = %+v", got)
	}

	if err := s.InsertValues("widget"); !errors.Is(err, ErrValueCount) {
		t.Errorf("short insert: error = %v, want ErrValueCount", err)
	}
	if err := s.InsertValues("widget", "100"); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("mistyped insert: error = %v, want ErrTypeMismatch", err)
	}
	if s.Len() != 1 {
		t.Errorf("failed inserts must not append; Len = %d", s.Len())
	}
}

func TestStoreAccessors(t *testing.T) {
	s := newPersonStore(t)
	if !s.Empty() {
		t.Error("new store not Empty")
	}
	if _, err := s.At(0); !errors.Is(err, ErrNotFound) {
		t.Errorf("At on empty store: error = %v, want ErrNotFound", err)
	}
	s.Insert(person{FirstName: "Ada"})
	if s.Empty() || s.Len() != 1 {
		t.Errorf("after Insert: Empty = %v, Len = %d", s.Empty(), s.Len())
	}
	if _, err := s.At(-1); !errors.Is(err, ErrNotFound) {
		t.Errorf("At(-1): error = %v, want ErrNotFound", err)
	}
}

type fakeSource map[string]string

func (f fakeSource) Exists(name string) bool {
	_, ok := f[name]
	return ok
}

func (f fakeSource) ReadAll(name string) (string, error) {
	return f[name], nil
}

type fakeSink map[string]string

func (f fakeSink) Write(name, text string) error {
	f[name] = text
	return nil
}

func TestStoreParseFrom(t *testing.T) {
	src := fakeSource{"people.txt": peopleText}
	s := newPersonStore(t, WithSource[person](src))

	if err := s.ParseFrom("people.txt"); err != nil {
		t.Fatalf("ParseFrom: %v", err)
	}
	if s.Len() != 3 {
		t.Fatalf("Len = %d, want 3", s.Len())
	}

	// Missing source is a no-op, not an error.
	if err := s.ParseFrom("absent.txt"); err != nil {
		t.Fatalf("ParseFrom missing source: %v", err)
	}
	if s.Len() != 3 {
		t.Errorf("missing source changed store; Len = %d", s.Len())
	}
}

func TestStoreParseFromWithoutSource(t *testing.T) {
	s := newPersonStore(t)
	if err := s.ParseFrom("people.txt"); !errors.Is(err, ErrNoSource) {
		t.Errorf("error = %v, want ErrNoSource", err)
	}
}

func TestStoreWriteTo(t *testing.T) {
	sink := fakeSink{}
	s := newPersonStore(t, WithSink[person](sink))
	s.Insert(person{FirstName: "Albert", LastName: "Einstein"})

	if err := s.WriteTo("out.txt"); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	if sink["out.txt"] != s.Serialize() {
		t.Errorf("sink received %q, want %q", sink["out.txt"], s.Serialize())
	}

	bare := newPersonStore(t)
	if err := bare.WriteTo("out.txt"); !errors.Is(err, ErrNoSink) {
		t.Errorf("error = %v, want ErrNoSink", err)
	}
}

func TestValuesStore(t *testing.T) {
	kinds := []Kind{String, Int}
	fields := []Field[Values]{
		Slot("name", String, 0),
		Slot("id", Int, 1),
	}
	s, err := New(fields, WithZero(func() Values { return ZeroValues(kinds) }))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := s.Parse("{\n name \"widget\"\n id \"100\"\n}\n{\n}\n"); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if s.Len() != 2 {
		t.Fatalf("Len = %d, want 2", s.Len())
	}
	first, _ := s.At(0)
	if first[0] != "widget" || first[1] != int64(100) {
		t.Errorf("record 0 = %v", first)
	}
	second, _ := s.At(1)
	if second[0] != "" || second[1] != int64(0) {
		t.Errorf("empty group record = %v, want kind defaults", second)
	}
	found, err := s.FindAll("id", 100)
	if err != nil {
		t.Fatalf("FindAll: %v", err)
	}
	if len(found) != 1 {
		t.Errorf("FindAll(id, 100) = %d records, want 1", len(found))
	}
}

// Schema-driven store construction for the satchel CLI. The record type
// is declared in config.yaml as an ordered list of fields; the CLI builds
// a Values-backed store from it at startup.
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"

	"github.com/dukaforge/satchel/internal/textio"
	"github.com/dukaforge/satchel/pkg/rec"
)

var errNoFields = errors.New("no fields configured; run \"satchel init\" and edit config.yaml")

// fieldSpec is one entry of the fields list in config.yaml.
type fieldSpec struct {
	Name string `mapstructure:"name"`
	Type string `mapstructure:"type"`
}

// buildStore constructs an empty Values-backed store from the configured
// schema, wired to file-backed source and sink collaborators.
func buildStore(v *viper.Viper) (*rec.Store[rec.Values], error) {
	var specs []fieldSpec
	if err := v.UnmarshalKey(cfgKeyFields, &specs); err != nil {
		return nil, fmt.Errorf("parse fields config: %w", err)
	}
	if len(specs) == 0 {
		return nil, errNoFields
	}

	fields := make([]rec.Field[rec.Values], len(specs))
	kinds := make([]rec.Kind, len(specs))
	for i, sp := range specs {
		k, err := rec.KindFor(sp.Type)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", sp.Name, err)
		}
		kinds[i] = k
		fields[i] = rec.Slot(sp.Name, k, i)
	}

	return rec.New(fields,
		rec.WithZero(func() rec.Values { return rec.ZeroValues(kinds) }),
		rec.WithSource[rec.Values](textio.FileSource{}),
		rec.WithSink[rec.Values](textio.FileSink{}),
	)
}

// loadStore builds the store and parses the configured data file into it.
// A missing data file yields an empty store.
func loadStore() (*rec.Store[rec.Values], string, error) {
	store, err := buildStore(cfg)
	if err != nil {
		return nil, "", err
	}
	dataFile := cfg.GetString(cfgKeyDataFile)
	if err := store.ParseFrom(dataFile); err != nil {
		return nil, "", fmt.Errorf("load %s: %w", dataFile, err)
	}
	return store, dataFile, nil
}

// fieldKind returns the kind of the named field in the store's schema.
func fieldKind(store *rec.Store[rec.Values], name string) (rec.Kind, error) {
	for _, f := range store.Fields() {
		if f.Name() == name {
			return f.Kind(), nil
		}
	}
	return nil, fmt.Errorf("%w: %s", rec.ErrUnknownField, name)
}

// parseArg converts a command-line argument into the named field's typed
// value for use as a query or update operand.
func parseArg(store *rec.Store[rec.Values], field, raw string) (any, error) {
	k, err := fieldKind(store, field)
	if err != nil {
		return nil, err
	}
	v, err := k.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("field %q: %w", field, err)
	}
	return v, nil
}

// formatRecord renders one record as space-separated key="value" pairs.
func formatRecord(store *rec.Store[rec.Values], r rec.Values) string {
	out := ""
	for _, f := range store.Fields() {
		if out != "" {
			out += " "
		}
		out += fmt.Sprintf("%s=%q", f.Name(), f.Kind().Format(f.Value(&r)))
	}
	return out
}

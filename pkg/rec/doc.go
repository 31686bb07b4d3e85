// Package rec implements an in-memory, insertion-ordered store of typed
// records backed by a brace-delimited key/value text format. Records are
// declared as an explicit list of field descriptors (name, kind,
// accessor); the store decodes text into records, answers equality
// queries over any field, applies limited or unbounded updates and
// removals, and serializes back to text. File access goes through
// injected Source and Sink collaborators.
package rec

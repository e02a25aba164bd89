package gazetteer

import "fmt"

// DatasetLoadError indicates that the record source was unreachable or its
// contents unusable. The engine stays in the not-loaded state; Init may be
// retried after the underlying problem is fixed.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type DatasetLoadError struct {
	Source string // source name when the source provides one
	Err    error
}

func (e *DatasetLoadError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("gazetteer: loading dataset from %s: %v", e.Source, e.Err)
	}
	return fmt.Sprintf("gazetteer: loading dataset: %v", e.Err)
}

func (e *DatasetLoadError) Unwrap() error { return e.Err }

// InvalidQueryError indicates a malformed pincode query: empty, longer than
// six characters, or containing non-digits. Callers sanitize keystroke-level
// input before calling Search; seeing this error means they did not.
type InvalidQueryError struct {
	Query  string
	Reason string
}

func (e *InvalidQueryError) Error() string {
	return fmt.Sprintf("gazetteer: invalid pincode query %q: %s", e.Query, e.Reason)
}

// InvalidSelectionError indicates that a Coordinator was asked to set a child
// field whose value is not reachable from the current parent selection. This
// points at a caller bug (free-text input instead of values sourced from
// Districts/Cities), not at a data problem.
type InvalidSelectionError struct {
	Field string // "district" or "city"
	Value string
}

func (e *InvalidSelectionError) Error() string {
	return fmt.Sprintf("gazetteer: %s %q is not reachable from the current selection", e.Field, e.Value)
}

package match

import "github.com/pkg/errors"

var (
	// ErrIncompatibleKind is reported for a case whose type can never be held by a value of the
	// match's subject type.
	ErrIncompatibleKind = errors.New("case kind is not reachable from the subject type")

	// ErrNilCallback is reported for a case created with a nil predicate or action.
	ErrNilCallback = errors.New("case callback is nil")
)

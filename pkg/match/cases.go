package match

import (
	"reflect"
	"slices"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/opencost/match/pkg/log"
	"github.com/opencost/match/pkg/util/typeutil"
	"github.com/pkg/errors"
)

// rejected case warnings are deduplicated past this many
const rejectedCaseLogLimit = 10

// Cases is an ordered, immutable sequence of cases compiled for subjects of type T. It can be
// run against any number of subjects, including from multiple goroutines.
type Cases[T any] struct {
	cases []Case
}

// Len returns the number of cases in the sequence.
func (cs *Cases[T]) Len() int {
	if cs == nil {
		return 0
	}
	return len(cs.cases)
}

// At returns the case at index i, in registration order.
func (cs *Cases[T]) At(i int) Case {
	return cs.cases[i]
}

func (cs *Cases[T]) String() string {
	var sb strings.Builder
	sb.WriteString("(cases")
	for _, c := range cs.all() {
		sb.WriteString(" ")
		sb.WriteString(c.String())
	}
	sb.WriteString(")")
	return sb.String()
}

// Run tests each case against subject in order. Cases whose kind the subject does not hold are
// skipped. Run returns after the first applying case signals stop, or once every case has been
// tested. An error from a case callback is returned wrapped with the failing case.
func (cs *Cases[T]) Run(subject T) error {
	value := any(subject)
	trace := log.IsTraceEnabled()

	for i, c := range cs.all() {
		if !c.kind.Holds(value) {
			if trace {
				log.Tracef("match: case %d %s skipped for %s", i, c, typeutil.DynamicTypeOf(value))
			}
			continue
		}

		next, err := c.test(value)
		if err != nil {
			return errors.WithMessagef(err, "match: case %d %s", i, c)
		}

		if !next {
			if trace {
				log.Tracef("match: case %d %s stopped after %d of %d cases", i, c, i+1, len(cs.cases))
			}
			return nil
		}
	}

	return nil
}

func (cs *Cases[T]) all() []Case {
	if cs == nil {
		return nil
	}
	return cs.cases
}

// Builder accumulates cases for subjects of type T. Cases whose kind is not reachable from T or
// which were created from a nil callback are recorded as errors and reported by Build.
type Builder[T any] struct {
	cases []Case
	errs  *multierror.Error
}

// NewBuilder creates an empty Builder for subjects of type T.
func NewBuilder[T any]() *Builder[T] {
	return &Builder[T]{}
}

// Add appends cases in order and returns the builder for chaining.
func (b *Builder[T]) Add(cases ...Case) *Builder[T] {
	static := reflect.TypeFor[T]()

	for _, c := range cases {
		if err := check(static, c); err != nil {
			log.DedupedWarningf(rejectedCaseLogLimit, "match: rejected case: %s", err)
			b.errs = multierror.Append(b.errs, errors.WithMessagef(err, "case %d", len(b.cases)))
		}
		b.cases = append(b.cases, c)
	}

	return b
}

// Len returns the number of cases added so far.
func (b *Builder[T]) Len() int {
	return len(b.cases)
}

// Err returns every registration problem recorded so far, or nil.
func (b *Builder[T]) Err() error {
	return b.errs.ErrorOrNil()
}

// Build returns the cases added so far as an immutable sequence. Cases added to the builder
// afterwards do not affect the returned sequence.
func (b *Builder[T]) Build() (*Cases[T], error) {
	if err := b.Err(); err != nil {
		return nil, err
	}

	return &Cases[T]{cases: slices.Clone(b.cases)}, nil
}

func check(static reflect.Type, c Case) error {
	if err := c.valid(); err != nil {
		return err
	}

	if !c.kind.ReachableFrom(static) {
		return errors.WithMessagef(ErrIncompatibleKind, "%s can never hold %s", typeutil.NameOf(static), c.kind)
	}

	return nil
}

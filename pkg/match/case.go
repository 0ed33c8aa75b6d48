package match

import (
	"fmt"

	"github.com/pkg/errors"
)

// Mode describes how a Case decides whether the match continues after it applies.
type Mode int

const (
	// ModeTest cases continue or stop depending on their predicate's result.
	ModeTest Mode = iota

	// ModeStop cases always stop the match after their action runs.
	ModeStop

	// ModeContinue cases always continue the match after their action runs.
	ModeContinue
)

func (m Mode) String() string {
	switch m {
	case ModeTest:
		return "test"
	case ModeStop:
		return "stop"
	case ModeContinue:
		return "continue"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Case pairs a Kind with the test run when the subject holds that kind. The test's boolean result
// is the continue signal: true moves on to the next case, false stops the match. Cases are
// immutable values and may be shared between matches.
type Case struct {
	kind Kind
	mode Mode
	test func(any) (bool, error)

	// err is set when the case was built from an invalid callback
	err error
}

// InCase creates a case for values of type U. If the subject holds a U, predicate is called
// with it and its result decides whether the match continues.
func InCase[U any](predicate func(U) bool) Case {
	if predicate == nil {
		return nilCallback[U](ModeTest)
	}

	return InCaseErr(func(u U) (bool, error) {
		return predicate(u), nil
	})
}

// InCaseErr is InCase with a predicate that can fail. A returned error stops the match and is
// returned from Run.
func InCaseErr[U any](predicate func(U) (bool, error)) Case {
	if predicate == nil {
		return nilCallback[U](ModeTest)
	}

	return Case{
		kind: KindOf[U](),
		mode: ModeTest,
		test: func(value any) (bool, error) {
			return predicate(value.(U))
		},
	}
}

// Stop creates a case which runs action when the subject holds a U and then ends the match.
func Stop[U any](action func(U)) Case {
	if action == nil {
		return nilCallback[U](ModeStop)
	}

	return InCase(func(u U) bool {
		action(u)
		return false
	}).withMode(ModeStop)
}

// StopErr is Stop with an action that can fail.
func StopErr[U any](action func(U) error) Case {
	if action == nil {
		return nilCallback[U](ModeStop)
	}

	return InCaseErr(func(u U) (bool, error) {
		return false, action(u)
	}).withMode(ModeStop)
}

// Continue creates a case which runs action when the subject holds a U and then moves on to
// the next case.
func Continue[U any](action func(U)) Case {
	if action == nil {
		return nilCallback[U](ModeContinue)
	}

	return InCase(func(u U) bool {
		action(u)
		return true
	}).withMode(ModeContinue)
}

// ContinueErr is Continue with an action that can fail.
func ContinueErr[U any](action func(U) error) Case {
	if action == nil {
		return nilCallback[U](ModeContinue)
	}

	return InCaseErr(func(u U) (bool, error) {
		if err := action(u); err != nil {
			return false, err
		}
		return true, nil
	}).withMode(ModeContinue)
}

// Kind returns the type the case applies to.
func (c Case) Kind() Kind {
	return c.kind
}

// Mode returns how the case continues or stops the match.
func (c Case) Mode() Mode {
	return c.mode
}

func (c Case) String() string {
	return fmt.Sprintf("(%s %s)", c.mode, c.kind)
}

func (c Case) withMode(mode Mode) Case {
	c.mode = mode
	return c
}

// valid returns the reason this case can't be registered, if any.
func (c Case) valid() error {
	if c.err != nil {
		return c.err
	}
	if c.test == nil {
		return errors.WithMessagef(ErrNilCallback, "%s", c)
	}
	return nil
}

func nilCallback[U any](mode Mode) Case {
	c := Case{kind: KindOf[U](), mode: mode}
	c.err = errors.WithMessagef(ErrNilCallback, "%s", c)
	return c
}

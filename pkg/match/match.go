package match

// Match wraps a subject with the cases registered against it.
type Match[T any] struct {
	subject T
	builder *Builder[T]
}

// From wraps subject in a new Match with no cases.
func From[T any](subject T) *Match[T] {
	return &Match[T]{
		subject: subject,
		builder: NewBuilder[T](),
	}
}

// Run is shorthand for From(subject).Case(cases...).Run().
func Run[T any](subject T, cases ...Case) error {
	return From(subject).Case(cases...).Run()
}

// Subject returns the wrapped value.
func (m *Match[T]) Subject() T {
	return m.subject
}

// Case registers cases after those already registered and returns the match for chaining.
func (m *Match[T]) Case(cases ...Case) *Match[T] {
	m.builder.Add(cases...)
	return m
}

// Len returns the number of registered cases.
func (m *Match[T]) Len() int {
	return m.builder.Len()
}

// Err returns the registration problems recorded so far, or nil.
func (m *Match[T]) Err() error {
	return m.builder.Err()
}

// Run tests the registered cases against the subject in order, stopping at the first applying
// case that signals stop. If any registration was rejected, no case runs and the registration
// error is returned. Run may be called repeatedly; each call starts from the first case.
func (m *Match[T]) Run() error {
	cases, err := m.builder.Build()
	if err != nil {
		return err
	}

	return cases.Run(m.subject)
}

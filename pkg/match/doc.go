// Package match provides a small fluent helper for matching a value on its runtime type.
//
// A subject is wrapped with From, cases are registered in order with Case, and Run tests them
// one after another. A case applies only when the subject holds the case's type; applying cases
// run their callback and either continue with the next case or stop the match:
//
//	err := match.From[any](v).
//		Case(
//			match.Continue(func(s fmt.Stringer) { log.Debugf("stringer: %s", s) }),
//			match.Stop(func(n int) { total += n }),
//			match.Stop(func(s string) { names = append(names, s) }),
//		).
//		Run()
//
// A case whose type does not match is skipped and never stops the match. Errors returned from the
// *Err callback variants abort the match and are returned from Run; panics are not recovered.
//
// Skipped and stopping cases are logged at trace level through pkg/log. Tracing is off by default;
// call log.InitLogging with MATCH_LOG_LEVEL=trace (or log.Config().Set("log-level", "trace")).
//
// When the set of types is closed and known up front, a plain type switch is usually clearer. The
// helpers here are for case lists assembled at runtime, or reused across many subjects through
// Builder and Cases.
package match

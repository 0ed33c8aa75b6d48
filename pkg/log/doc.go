// Package log wraps the global zerolog logger. Output defaults to the zerolog defaults until
// InitLogging is called, which reads log-level, log-format and disable-log-color from Config
// (or the MATCH_LOG_LEVEL, MATCH_LOG_FORMAT and MATCH_DISABLE_LOG_COLOR env vars). Setting the
// level to trace enables the per-case lines written by the match package.
package log

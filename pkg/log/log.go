package log

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

const (
	// LogLevelKey is the viper key for the minimum level logged, eg: "info", "debug", "trace"
	LogLevelKey = "log-level"

	// LogFormatKey is the viper key for the output format. Can be either "json" or "pretty"
	LogFormatKey = "log-format"

	// DisableLogColorKey is the viper key used to disable color in "pretty" output
	DisableLogColorKey = "disable-log-color"

	// EnvPrefix is prepended to the env var form of each key, eg: MATCH_LOG_LEVEL
	EnvPrefix = "match"
)

// concurrency-safe counter
var ctr = newCounter()

// settings is private so the embedding program's global viper instance is left untouched
var settings = viper.New()

// Config returns the viper instance logging settings are read from. Embedding programs can Set
// values or bind flags on it before calling InitLogging.
func Config() *viper.Viper {
	return settings
}

// configure registers the logging defaults and env bindings on the logging settings.
func configure(v *viper.Viper) {
	v.SetDefault(LogLevelKey, "info")
	v.SetDefault(LogFormatKey, "pretty")
	v.SetDefault(DisableLogColorKey, false)

	// Setup viper to read from the env, this allows reading settings from the env
	// using the format 'MATCH_LOG_LEVEL'
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
}

// InitLogging configures the global logger from the log-level, log-format and disable-log-color
// settings. Embedding programs that bind their own flags to these keys on Config should call this
// after flags are parsed.
func InitLogging(showLogLevelSetMessage bool) {
	configure(settings)
	zerolog.TimeFieldFormat = time.RFC3339Nano

	if strings.EqualFold(settings.GetString(LogFormatKey), "json") {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339Nano,
			NoColor:    settings.GetBool(DisableLogColorKey),
		})
	}

	levelName := settings.GetString(LogLevelKey)
	level, err := zerolog.ParseLevel(strings.ToLower(levelName))
	if err != nil || level == zerolog.NoLevel {
		log.Warn().Msgf("Unknown log level '%s', defaulting to info", levelName)
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if showLogLevelSetMessage {
		log.Info().Msgf("Log level set to %s", level)
	}
}

// GetLogger returns the global logger used by every function in this package.
func GetLogger() *zerolog.Logger {
	return &log.Logger
}

// SetLogger replaces the global logger.
func SetLogger(l *zerolog.Logger) {
	log.Logger = *l
}

// Errorf logs a formatted message at error level.
func Errorf(format string, a ...interface{}) {
	log.Error().Msgf(format, a...)
}

// DedupedErrorf is Errorf, logged at most logTypeLimit times per format.
func DedupedErrorf(logTypeLimit int, format string, a ...interface{}) {
	deduped(Errorf, logTypeLimit, format, a...)
}

// Warnf logs a formatted message at warn level.
func Warnf(format string, a ...interface{}) {
	log.Warn().Msgf(format, a...)
}

// DedupedWarningf is Warnf, logged at most logTypeLimit times per format.
func DedupedWarningf(logTypeLimit int, format string, a ...interface{}) {
	deduped(Warnf, logTypeLimit, format, a...)
}

// Infof logs a formatted message at info level.
func Infof(format string, a ...interface{}) {
	log.Info().Msgf(format, a...)
}

// DedupedInfof is Infof, logged at most logTypeLimit times per format.
func DedupedInfof(logTypeLimit int, format string, a ...interface{}) {
	deduped(Infof, logTypeLimit, format, a...)
}

// Debugf logs a formatted message at debug level.
func Debugf(format string, a ...interface{}) {
	log.Debug().Msgf(format, a...)
}

// Tracef logs at the most verbose level. Arguments are only formatted when tracing is enabled.
func Tracef(format string, a ...interface{}) {
	log.Trace().Msgf(format, a...)
}

// IsTraceEnabled reports whether trace level events are currently written by the global logger.
func IsTraceEnabled() bool {
	return log.Logger.GetLevel() <= zerolog.TraceLevel && zerolog.GlobalLevel() <= zerolog.TraceLevel
}

// deduped writes the message with logf until the format has been seen logTypeLimit times, and
// announces the suppression alongside the last one.
func deduped(logf func(string, ...interface{}), logTypeLimit int, format string, a ...interface{}) {
	write, last := ctr.observe(format, logTypeLimit)
	if !write {
		return
	}

	logf(format, a...)
	if last {
		Infof("%s logged %d times: suppressing future logs", format, logTypeLimit)
	}
}

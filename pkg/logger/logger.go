package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

var log zerolog.Logger

// Init configures the global logger. Development gets a human-readable
// console writer; everything else logs JSON to stdout.
func Init(environment string) {
	zerolog.TimeFieldFormat = time.RFC3339

	if environment == "development" {
		log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).
			Level(zerolog.DebugLevel).
			With().Timestamp().Logger()
		return
	}

	log = zerolog.New(os.Stdout).
		Level(zerolog.InfoLevel).
		With().Timestamp().Logger()
}

func Debug(msg string, args ...any) {
	emit(log.Debug(), msg, args)
}

func Info(msg string, args ...any) {
	emit(log.Info(), msg, args)
}

func Warn(msg string, args ...any) {
	emit(log.Warn(), msg, args)
}

func Error(msg string, args ...any) {
	emit(log.Error(), msg, args)
}

func Fatal(msg string, args ...any) {
	emit(log.Fatal(), msg, args)
}

// emit attaches args as key/value pairs. A bare error (or any other value
// without a preceding string key) is attached under a fallback key so loose
// call sites like Error("failed to save", err) still log something useful.
func emit(ev *zerolog.Event, msg string, args []any) {
	for i := 0; i < len(args); {
		if key, ok := args[i].(string); ok && i+1 < len(args) {
			ev = ev.Interface(key, args[i+1])
			i += 2
			continue
		}
		if err, ok := args[i].(error); ok {
			ev = ev.Err(err)
		} else {
			ev = ev.Interface("value", args[i])
		}
		i++
	}
	ev.Msg(msg)
}

package logger

import (
	"io"
	"os"
	"time"

	"github.com/lshigami/mockverse/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Init configures the global zerolog logger. It is safe to call before the
// config is loaded; Configure refines it afterwards.
func Init() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()
}

// Configure applies level, output format and the optional rotating file sink.
func Configure(cfg *config.Config) {
	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	log.Logger = zerolog.New(writer(cfg)).With().Timestamp().Caller().Logger()
	log.Debug().Str("level", level.String()).Msg("Logger configured")
}

func writer(cfg *config.Config) io.Writer {
	var console io.Writer = os.Stdout
	if cfg.IsDevelopment() {
		console = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}
	if cfg.Log.File == "" {
		return console
	}

	file := &lumberjack.Logger{
		Filename:   cfg.Log.File,
		MaxSize:    100, // megabytes
		MaxBackups: 5,
		MaxAge:     30, // days
		Compress:   true,
	}
	return zerolog.MultiLevelWriter(console, file)
}

package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Logger interface {
	Debug() *zerolog.Event
	Info() *zerolog.Event
	Warn() *zerolog.Event
	Error() *zerolog.Event
	Fatal() *zerolog.Event
	With() zerolog.Context
}

type AppLogger struct {
	logger zerolog.Logger
}

// ComponentLogger - Logger com contexto de componente fixo
type ComponentLogger struct {
	logger    zerolog.Logger
	component string
}

var (
	globalLogger *AppLogger
)

func Init(level string, pretty bool) {
	logLevel, err := zerolog.ParseLevel(level)
	if err != nil {
		logLevel = zerolog.InfoLevel
	}

	var output io.Writer = os.Stdout
	if pretty {
		output = zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: "15:04:05",
		}
	}

	logger := zerolog.New(output).Level(logLevel).With().Timestamp().Logger()

	globalLogger = &AppLogger{logger: logger}
	log.Logger = logger
}

// InitSimple inicializa o logger sem saída colorida, útil em testes.
func InitSimple(level string) {
	Init(level, false)
}

func Get() Logger {
	if globalLogger == nil {
		Init("info", true)
	}
	return globalLogger
}

// ForComponent cria um ComponentLogger com o componente especificado.
func ForComponent(component string) *ComponentLogger {
	if globalLogger == nil {
		Init("info", true)
	}
	return &ComponentLogger{
		logger:    globalLogger.logger.With().Str("component", component).Logger(),
		component: component,
	}
}

func (l *AppLogger) Debug() *zerolog.Event {
	return l.logger.Debug()
}

func (l *AppLogger) Info() *zerolog.Event {
	return l.logger.Info()
}

func (l *AppLogger) Warn() *zerolog.Event {
	return l.logger.Warn()
}

func (l *AppLogger) Error() *zerolog.Event {
	return l.logger.Error()
}

func (l *AppLogger) Fatal() *zerolog.Event {
	return l.logger.Fatal()
}

func (l *AppLogger) With() zerolog.Context {
	return l.logger.With()
}

func (cl *ComponentLogger) Debug() *zerolog.Event {
	return cl.logger.Debug()
}

func (cl *ComponentLogger) Info() *zerolog.Event {
	return cl.logger.Info()
}

func (cl *ComponentLogger) Warn() *zerolog.Event {
	return cl.logger.Warn()
}

func (cl *ComponentLogger) Error() *zerolog.Event {
	return cl.logger.Error()
}

func (cl *ComponentLogger) Fatal() *zerolog.Event {
	return cl.logger.Fatal()
}

func (cl *ComponentLogger) With() zerolog.Context {
	return cl.logger.With()
}

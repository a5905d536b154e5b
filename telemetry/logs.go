package telemetry

import (
	"io"
	"log"
)

type Logger interface {
	Info(msg string)
	Debug(msg string)
	Error(msg string, err error)
}

type NOPLogger struct {
}

func (n NOPLogger) Info(msg string) {
}
func (n NOPLogger) Debug(msg string) {
}
func (n NOPLogger) Error(msg string, err error) {
}

// WriterLogger writes one line per message to an io.Writer. Debug lines are
// dropped unless Verbose is set.
type WriterLogger struct {
	logger  *log.Logger
	Verbose bool
}

func NewWriterLogger(w io.Writer, verbose bool) *WriterLogger {
	return &WriterLogger{logger: log.New(w, "", 0), Verbose: verbose}
}

func (l *WriterLogger) Info(msg string) {
	l.logger.Printf("info: %s", msg)
}

func (l *WriterLogger) Debug(msg string) {
	if l.Verbose {
		l.logger.Printf("debug: %s", msg)
	}
}

func (l *WriterLogger) Error(msg string, err error) {
	l.logger.Printf("error: %s: %v", msg, err)
}

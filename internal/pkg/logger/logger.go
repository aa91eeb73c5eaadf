package logger

import (
	"fmt"
	"io"
	"log"
	"os"
)

// Logger - уровневый логгер, который получают обработчики и middleware.
type Logger interface {
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}

// StdLogger пишет сообщения через стандартный log с префиксом компонента,
// в том же формате, что и остальной код: "[Component] LEVEL: message".
type StdLogger struct {
	l         *log.Logger
	component string
}

// New создает логгер компонента, пишущий в os.Stdout.
func New(component string) *StdLogger {
	return NewWithWriter(os.Stdout, component)
}

// NewWithWriter создает логгер компонента с произвольным writer (в тестах - io.Discard).
func NewWithWriter(w io.Writer, component string) *StdLogger {
	return &StdLogger{
		l:         log.New(w, "", log.LstdFlags|log.Lmicroseconds),
		component: component,
	}
}

// With возвращает логгер того же вывода для другого компонента.
func (s *StdLogger) With(component string) *StdLogger {
	return &StdLogger{l: s.l, component: component}
}

func (s *StdLogger) Info(format string, args ...interface{}) {
	s.write("INFO", format, args...)
}

func (s *StdLogger) Warn(format string, args ...interface{}) {
	s.write("WARN", format, args...)
}

func (s *StdLogger) Error(format string, args ...interface{}) {
	s.write("ERROR", format, args...)
}

func (s *StdLogger) write(level, format string, args ...interface{}) {
	s.l.Printf("[%s] %s: %s", s.component, level, fmt.Sprintf(format, args...))
}

package batchpipe

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/barelyhuman/go/color"
)

type Logger struct {
	LogPrefix string

	mu    sync.Mutex
	out   io.Writer
	debug bool
}

func NewLogger() *Logger {
	return &Logger{
		LogPrefix: "[batchpipe]",
		out:       os.Stdout,
	}
}

// SetOutput redirects every level to w.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.out = w
}

func (l *Logger) EnableDebug(enabled bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.debug = enabled
}

func (l *Logger) print(cs *color.ColorString) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.out, cs.String())
}

func (l *Logger) Success(msg string) {
	cs := color.ColorString{}
	cs.Gray(l.LogPrefix).Reset(" ").Green("✔").Reset(" ").Green(msg)
	l.print(&cs)
}

func (l *Logger) Info(msg string) {
	cs := color.ColorString{}
	cs.Gray(l.LogPrefix).Reset(" ").Cyan("ℹ").Reset(" ").Cyan(msg)
	l.print(&cs)
}

func (l *Logger) Warning(msg string) {
	cs := color.ColorString{}
	cs.Gray(l.LogPrefix).Reset(" ").Yellow(msg)
	l.print(&cs)
}

func (l *Logger) Error(msg string) {
	cs := color.ColorString{}
	cs.Gray(l.LogPrefix).Reset(" ").Red("✖").Reset(" ").Red(msg)
	l.print(&cs)
}

// Debug is a no-op on a nil Logger or when debug output is off.
func (l *Logger) Debug(msg string) {
	if l == nil {
		return
	}
	l.mu.Lock()
	enabled := l.debug
	l.mu.Unlock()
	if !enabled {
		return
	}
	cs := color.ColorString{}
	cs.Gray(l.LogPrefix).Reset(" ").Dim(msg)
	l.print(&cs)
}

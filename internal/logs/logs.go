// Package logs keeps the most recent log messages for the log panel.
// Storage is a ringbuf.CircularBuffer, so the panel never holds more than
// its capacity and always drops the oldest message first.
package logs

import (
	"fmt"

	"github.com/five82/jade/internal/ringbuf"
)

// Level is the severity of a log message.
type Level int

const (
	Info Level = iota
	Warning
	Error
)

// String returns the level name.
func (l Level) String() string {
	switch l {
	case Info:
		return "Info"
	case Warning:
		return "Warning"
	case Error:
		return "Error"
	default:
		return fmt.Sprintf("Level(%d)", int(l))
	}
}

// Tag returns the prefix shown before a message of this level.
func (l Level) Tag() string {
	return "[" + l.String() + "]: "
}

// Message is an immutable log entry.
type Message struct {
	level Level
	text  string
}

// NewMessage builds a message.
func NewMessage(level Level, text string) Message {
	return Message{level: level, text: text}
}

func (m Message) Level() Level { return m.level }
func (m Message) Text() string { return m.text }

// Line is a display-ready log line. Presentation (colors, bold) is left to
// the renderer.
type Line struct {
	Level Level
	Text  string
}

// String renders the line as plain text, tag included.
func (l Line) String() string {
	return l.Level.Tag() + l.Text
}

// Logs holds the recent messages in chronological order.
type Logs struct {
	buf *ringbuf.CircularBuffer[Message]
}

// New wraps buf. A nil buf gets ringbuf.DefaultCapacity.
func New(buf *ringbuf.CircularBuffer[Message]) *Logs {
	if buf == nil {
		buf = ringbuf.NewDefault[Message]()
	}
	return &Logs{buf: buf}
}

// WithCapacity returns empty Logs retaining at most capacity messages.
func WithCapacity(capacity int) (*Logs, error) {
	buf, err := ringbuf.New[Message](capacity)
	if err != nil {
		return nil, fmt.Errorf("create log buffer: %w", err)
	}
	return New(buf), nil
}

// Append stores m as the newest message.
func (l *Logs) Append(m Message) {
	l.buf.Append(m)
}

// Log appends a message with the given level and text.
func (l *Logs) Log(level Level, text string) {
	l.Append(NewMessage(level, text))
}

func (l *Logs) Infof(format string, args ...any) {
	l.Log(Info, fmt.Sprintf(format, args...))
}

func (l *Logs) Warnf(format string, args ...any) {
	l.Log(Warning, fmt.Sprintf(format, args...))
}

func (l *Logs) Errorf(format string, args ...any) {
	l.Log(Error, fmt.Sprintf(format, args...))
}

// Len returns the number of retained messages.
func (l *Logs) Len() int {
	return l.buf.Len()
}

// Cap returns how many messages are retained at most.
func (l *Logs) Cap() int {
	return l.buf.Cap()
}

// RenderLines returns the retained messages oldest first. It reads a fresh
// snapshot on every call and leaves the buffer untouched.
func (l *Logs) RenderLines() []Line {
	lines := make([]Line, 0, l.buf.Len())
	for m := range l.buf.All() {
		lines = append(lines, Line{Level: m.level, Text: m.text})
	}
	return lines
}

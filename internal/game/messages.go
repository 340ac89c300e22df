package game

import (
	"strings"

	humanize "github.com/dustin/go-humanize"
)

// MsgPriority controls the color of a line in the mine log.
type MsgPriority uint8

const (
	MsgInfo      MsgPriority = iota // cyan
	MsgWarning                      // yellow
	MsgCritical                     // red
	MsgDiscovery                    // green
	MsgSocial                       // white
)

// logWidth is the widest line the HUD log panel shows.
const logWidth = 55

// Message is a single line in the mine log.
type Message struct {
	Text     string
	Priority MsgPriority
}

// MessageLog is a bounded FIFO of messages.
type MessageLog struct {
	messages []Message
	maxSize  int
}

// NewMessageLog creates a log that keeps the most recent maxSize lines.
func NewMessageLog(maxSize int) *MessageLog {
	if maxSize < 1 {
		maxSize = 1
	}
	return &MessageLog{
		messages: make([]Message, 0, maxSize),
		maxSize:  maxSize,
	}
}

// Add appends text, wrapped to the panel width, evicting the oldest lines if full.
func (l *MessageLog) Add(text string, priority MsgPriority) {
	for _, line := range wrapText(text, logWidth) {
		msg := Message{Text: line, Priority: priority}
		if len(l.messages) >= l.maxSize {
			copy(l.messages, l.messages[1:])
			l.messages[len(l.messages)-1] = msg
		} else {
			l.messages = append(l.messages, msg)
		}
	}
}

// Len returns the number of stored lines.
func (l *MessageLog) Len() int { return len(l.messages) }

// Recent returns a copy of the last n lines (or fewer if the log is shorter).
func (l *MessageLog) Recent(n int) []Message {
	n = min(max(n, 0), len(l.messages))
	out := make([]Message, n)
	copy(out, l.messages[len(l.messages)-n:])
	return out
}

// wrapText splits text into lines no longer than width, breaking on spaces.
func wrapText(s string, width int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return []string{""}
	}
	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if len(line)+1+len(w) > width {
			lines = append(lines, line)
			line = w
			continue
		}
		line += " " + w
	}
	return append(lines, line)
}

// amount formats a quantity or price for log lines: 1,234.5
func amount(v float64) string {
	return humanize.CommafWithDigits(v, 1)
}

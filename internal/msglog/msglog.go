// Package msglog keeps a bounded log of game messages for the HUD.
package msglog

import "time"

// Category classifies messages for filtering and display.
type Category uint8

const (
	Discovery Category = iota
	Interaction
	System
	Weather
	Time
)

// DefaultMax is how many messages are retained before the oldest are dropped.
const DefaultMax = 50

// Message is a single log entry. Details carry secondary text such as a
// location description.
type Message struct {
	Text      string
	Category  Category
	Timestamp time.Time
	Details   string
}

// Log is a bounded, append-only message list.
type Log struct {
	messages []Message
	max      int
}

// New returns an empty log retaining up to max messages.
func New(max int) *Log {
	if max <= 0 {
		max = DefaultMax
	}
	return &Log{max: max}
}

// Add appends a message, evicting the oldest entry when over capacity.
func (l *Log) Add(text string, category Category, details string) {
	l.messages = append(l.messages, Message{
		Text:      text,
		Category:  category,
		Timestamp: time.Now(),
		Details:   details,
	})
	if len(l.messages) > l.max {
		l.messages = l.messages[1:]
	}
}

// Recent returns the last count messages, oldest first.
func (l *Log) Recent(count int) []Message {
	if count <= 0 || len(l.messages) == 0 {
		return nil
	}
	if count > len(l.messages) {
		count = len(l.messages)
	}
	out := make([]Message, count)
	copy(out, l.messages[len(l.messages)-count:])
	return out
}

// ByCategory returns all messages of the given category, oldest first.
func (l *Log) ByCategory(category Category) []Message {
	var out []Message
	for _, m := range l.messages {
		if m.Category == category {
			out = append(out, m)
		}
	}
	return out
}

// Len returns the number of retained messages.
func (l *Log) Len() int { return len(l.messages) }

// Clear discards all messages.
func (l *Log) Clear() { l.messages = l.messages[:0] }

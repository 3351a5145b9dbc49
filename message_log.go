package main

import (
	"sync"
	"time"

	"goatrinik/inventory"
)

type timedMessage struct {
	Text  string
	Color inventory.Color
	Time  time.Time
}

// messageLog is a bounded, concurrency safe list of console lines.
type messageLog struct {
	mu      sync.Mutex
	entries []timedMessage
	max     int
}

func (l *messageLog) Add(c inventory.Color, msg string) {
	if msg == "" {
		return
	}
	m := timedMessage{Text: msg, Color: c, Time: time.Now()}

	l.mu.Lock()
	l.entries = append(l.entries, m)
	if len(l.entries) > l.max {
		l.entries = l.entries[len(l.entries)-l.max:]
	}
	l.mu.Unlock()
}

// Last returns up to n of the newest entries, oldest first.
func (l *messageLog) Last(n int) []timedMessage {
	l.mu.Lock()
	defer l.mu.Unlock()
	if n > len(l.entries) {
		n = len(l.entries)
	}
	out := make([]timedMessage, n)
	copy(out, l.entries[len(l.entries)-n:])
	return out
}

func (l *messageLog) Clear() {
	l.mu.Lock()
	l.entries = nil
	l.mu.Unlock()
}

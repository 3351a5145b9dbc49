package main

import (
	"strconv"
	"unicode"

	"goatrinik/input"
	"goatrinik/inventory"
)

const (
	maxMessages = 1000
)

var consoleLog = messageLog{max: maxMessages}

func consoleMessage(msg string) {
	infoMessage(inventory.ColorWhite, msg)
}

// infoMessage adds a colored line to the console.
func infoMessage(c inventory.Color, msg string) {
	if msg == "" {
		return
	}
	consoleLog.Add(c, msg)
	logDebug("console: %s", msg)
}

type entryMode int

const (
	entryNone entryMode = iota
	entryConsole
	entryQuantity
)

// lineEntry is the single line text input shared by the console and the
// quantity prompt.
type lineEntry struct {
	mode    entryMode
	title   string
	prepend string
	text    []rune
}

var entry lineEntry

func (e *lineEntry) Active() bool { return e.mode != entryNone }

func (e *lineEntry) Open(mode entryMode, title, prepend, text string) {
	e.mode = mode
	e.title = title
	e.prepend = prepend
	e.text = []rune(text)
}

func (e *lineEntry) Close() {
	*e = lineEntry{}
}

func (e *lineEntry) Text() string { return string(e.text) }

// Type appends typed characters. The quantity prompt only takes digits.
func (e *lineEntry) Type(rs []rune) {
	if !e.Active() {
		return
	}
	for _, r := range rs {
		if !unicode.IsPrint(r) {
			continue
		}
		if e.mode == entryQuantity && !unicode.IsDigit(r) {
			continue
		}
		e.text = append(e.text, r)
	}
}

// HandleKey edits the line and reports whether the key was used.
func (e *lineEntry) HandleKey(ev input.Event) bool {
	if !e.Active() || !ev.Kind.IsKey() {
		return false
	}
	if ev.Kind == input.KeyUp {
		return true
	}
	switch ev.Key {
	case input.KeyEnter:
		e.submit()
	case input.KeyEscape:
		e.Close()
	case input.KeyBackspace:
		if n := len(e.text); n > 0 {
			e.text = e.text[:n-1]
		}
	}
	return true
}

func (e *lineEntry) submit() {
	mode, prepend, text := e.mode, e.prepend, e.Text()
	e.Close()
	switch mode {
	case entryConsole:
		runConsoleCommand(text)
	case entryQuantity:
		n, err := strconv.ParseUint(text, 10, 32)
		if err != nil || n == 0 {
			return
		}
		enqueueCommand(prepend + strconv.FormatUint(n, 10))
	}
}

// Package chatlog reads and writes the chat history file.
//
// Each event is one line of tab separated fields: RFC3339 time, chat type,
// source, channel, game id and message. Tabs, line breaks and backslashes
// inside fields are backslash escaped.
package chatlog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"icsterm/types"
)

const fieldCount = 6

var escaper = strings.NewReplacer(`\`, `\\`, "\t", `\t`, "\n", `\n`, "\r", `\r`)

// Writer appends events to a chat log file.
type Writer struct {
	FilePath string

	mu   sync.Mutex
	file *os.File
}

// OpenWriter opens path for appending, creating it and its directory.
func OpenWriter(path string) (*Writer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create chat log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("open chat log: %w", err)
	}
	return &Writer{FilePath: path, file: f}, nil
}

// Append writes ev as one line.
func (w *Writer) Append(ev types.ChatEvent) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.file == nil {
		return fmt.Errorf("chat log %s is closed", w.FilePath)
	}
	if _, err := w.file.WriteString(FormatEvent(ev)); err != nil {
		return fmt.Errorf("write chat log: %w", err)
	}
	return nil
}

func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.file == nil {
		return nil
	}
	err := w.file.Close()
	w.file = nil
	return err
}

// FormatEvent returns the log line for ev, including the trailing newline.
func FormatEvent(ev types.ChatEvent) string {
	fields := [fieldCount]string{
		ev.Time.Format(time.RFC3339),
		ev.Type.String(),
		escaper.Replace(ev.Source),
		escaper.Replace(ev.Channel),
		escaper.Replace(ev.GameID),
		escaper.Replace(ev.Message),
	}
	return strings.Join(fields[:], "\t") + "\n"
}

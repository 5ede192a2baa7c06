package chatlog

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"icsterm/types"
)

const maxLineSize = 1 << 20

// ParseError reports a malformed log line.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("chat log line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse calls fn for each event read from r until fn returns false or the
// input ends. Blank lines are skipped.
func Parse(r io.Reader, fn func(types.ChatEvent) bool) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimRight(sc.Text(), "\r")
		if text == "" {
			continue
		}
		ev, err := ParseEvent(text)
		if err != nil {
			return &ParseError{Line: line, Err: err}
		}
		if !fn(ev) {
			return nil
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read chat log: %w", err)
	}
	return nil
}

// ParseFile parses the log at path.
func ParseFile(path string, fn func(types.ChatEvent) bool) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open chat log: %w", err)
	}
	defer f.Close()
	return Parse(f, fn)
}

// ParseEvent parses a single log line without its newline.
func ParseEvent(line string) (types.ChatEvent, error) {
	fields := strings.Split(line, "\t")
	if len(fields) != fieldCount {
		return types.ChatEvent{}, fmt.Errorf("got %d fields, want %d", len(fields), fieldCount)
	}
	t, err := time.Parse(time.RFC3339, fields[0])
	if err != nil {
		return types.ChatEvent{}, fmt.Errorf("bad time: %w", err)
	}
	return types.ChatEvent{
		Time:    t,
		Type:    types.ParseChatType(fields[1]),
		Source:  unescape(fields[2]),
		Channel: unescape(fields[3]),
		GameID:  unescape(fields[4]),
		Message: unescape(fields[5]),
	}, nil
}

// unescape reverses escaper. Unknown escapes are kept as written.
func unescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 == len(s) {
			sb.WriteByte(c)
			continue
		}
		i++
		switch s[i] {
		case 't':
			sb.WriteByte('\t')
		case 'n':
			sb.WriteByte('\n')
		case 'r':
			sb.WriteByte('\r')
		case '\\':
			sb.WriteByte('\\')
		default:
			sb.WriteByte('\\')
			sb.WriteByte(s[i])
		}
	}
	return sb.String()
}

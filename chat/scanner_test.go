package chat

import (
	"strings"
	"testing"
)

func TestWord(t *testing.T) {
	buf := NewRuneBuffer("hello world")

	for pos := 0; pos < 5; pos++ {
		if got, ok := Word(buf, pos); !ok || got != "hello" {
			t.Errorf("Word(%d) = %q, %v, want %q", pos, got, ok, "hello")
		}
	}
	for pos := 6; pos < 11; pos++ {
		if got, ok := Word(buf, pos); !ok || got != "world" {
			t.Errorf("Word(%d) = %q, %v, want %q", pos, got, ok, "world")
		}
	}
}

func TestWordOnWhiteSpace(t *testing.T) {
	buf := NewRuneBuffer("hello world\nnext\tline")
	for _, pos := range []int{5, 11, 16} {
		if got, ok := Word(buf, pos); ok {
			t.Errorf("Word(%d) = %q, want not found", pos, got)
		}
	}
	if got, ok := Word(buf, 13); !ok || got != "next" {
		t.Errorf("Word(13) = %q, %v, want %q", got, ok, "next")
	}
}

func TestWordOutOfRange(t *testing.T) {
	buf := NewRuneBuffer("abc")
	for _, pos := range []int{-1, 3, 100} {
		if _, ok := Word(buf, pos); ok {
			t.Errorf("Word(%d) found a word outside the buffer", pos)
		}
	}
	if _, ok := Word(NewRuneBuffer(""), 0); ok {
		t.Error("Word on empty buffer found a word")
	}
}

func TestWordSingleCharacters(t *testing.T) {
	buf := NewRuneBuffer("a b c")
	want := map[int]string{0: "a", 2: "b", 4: "c"}
	for pos, w := range want {
		if got, ok := Word(buf, pos); !ok || got != w {
			t.Errorf("Word(%d) = %q, %v, want %q", pos, got, ok, w)
		}
	}
}

func TestWordDateStamp(t *testing.T) {
	buf := NewRuneBuffer("[12:01]hello")
	if got, ok := Word(buf, 9); !ok || got != "hello" {
		t.Errorf("Word = %q, %v, want %q", got, ok, "hello")
	}

	buf = NewRuneBuffer("[12:01] hello")
	if got, ok := Word(buf, 2); !ok || got != "" {
		t.Errorf("Word on bare stamp = %q, %v, want empty and found", got, ok)
	}
}

func TestWordUnicode(t *testing.T) {
	buf := NewRuneBuffer("für Schach ♞")
	if got, ok := Word(buf, 1); !ok || got != "für" {
		t.Errorf("Word(1) = %q, %v, want %q", got, ok, "für")
	}
	if got, ok := Word(buf, 11); !ok || got != "♞" {
		t.Errorf("Word(11) = %q, %v, want %q", got, ok, "♞")
	}
}

func TestTrimDateStamp(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"[12:01]hello", "hello"},
		{"[unclosed", "[unclosed"},
		{"plain", "plain"},
		{"a[b]c", "a[b]c"},
		{"[]x", "x"},
	}
	for _, tc := range tests {
		if got := TrimDateStamp(tc.in); got != tc.want {
			t.Errorf("TrimDateStamp(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestQuotedText(t *testing.T) {
	text := `say "hi there" now`
	buf := NewRuneBuffer(text)

	inside := strings.Index(text, "hi")
	for pos := inside; pos < inside+len("hi there"); pos++ {
		if got, ok := QuotedText(buf, pos); !ok || got != "hi there" {
			t.Errorf("QuotedText(%d) = %q, %v, want %q", pos, got, ok, "hi there")
		}
	}

	closing := strings.LastIndex(text, `"`)
	if got, ok := QuotedText(buf, closing); !ok || got != "hi there" {
		t.Errorf("QuotedText on closing quote = %q, %v, want %q", got, ok, "hi there")
	}

	for _, pos := range []int{0, 1, len(text) - 1} {
		if got, ok := QuotedText(buf, pos); ok {
			t.Errorf("QuotedText(%d) = %q, want not found", pos, got)
		}
	}
}

func TestQuotedTextMixedQuotes(t *testing.T) {
	buf := NewRuneBuffer(`type 'observe 12" to watch`)
	if got, ok := QuotedText(buf, 8); !ok || got != "observe 12" {
		t.Errorf("QuotedText = %q, %v, want %q", got, ok, "observe 12")
	}
}

func TestQuotedTextEmpty(t *testing.T) {
	buf := NewRuneBuffer(`x "" y`)
	if got, ok := QuotedText(buf, 3); !ok || got != "" {
		t.Errorf("QuotedText = %q, %v, want empty and found", got, ok)
	}
}

func TestQuotedTextLineBreak(t *testing.T) {
	tests := []struct {
		name string
		text string
		pos  int
	}{
		{"break before", "say \"hi\nthere\" now", 9},
		{"break after", "say \"hi\nthere\" now", 5},
		{"carriage return", "'a\rb'", 1},
		{"on newline", "'a\nb'", 2},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got, ok := QuotedText(NewRuneBuffer(tc.text), tc.pos); ok {
				t.Errorf("QuotedText = %q, want not found", got)
			}
		})
	}
}

func TestQuotedTextOutOfRange(t *testing.T) {
	buf := NewRuneBuffer(`"abc"`)
	if _, ok := QuotedText(buf, 5); ok {
		t.Error("QuotedText past the end found text")
	}
	if _, ok := QuotedText(buf, 0); ok {
		t.Error("QuotedText on an opening quote at buffer start found text")
	}
}

func TestURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"www.example.com", "http://www.example.com", true},
		{"http://x.org", "http://x.org", true},
		{"https://x.org/a?b=c", "https://x.org/a?b=c", true},
		{"random", "", false},
		{"(http://a.com)", "http://a.com", true},
		{"<freechess.org>;", "http://freechess.org", true},
		{"#//chess.edu", "http://chess.edu", true},
		{"whitehouse.gov", "http://whitehouse.gov", true},
		{"www.x", "http://www.x", true},
		{"lichess.net/abc", "http://lichess.net/abc", true},
		{"12.50", "", false},
		{"", "", false},
		{"   ", "", false},
		{"()", "", false},
		{"end.", "", false},
	}
	for _, tc := range tests {
		got, ok := URL(tc.in)
		if ok != tc.ok || got != tc.want {
			t.Errorf("URL(%q) = %q, %v, want %q, %v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestURLFixedPoint(t *testing.T) {
	for _, in := range []string{"www.example.com", "(http://a.com)", "fics.org;", "a.b"} {
		first, ok := URL(in)
		if !ok {
			t.Fatalf("URL(%q) not found", in)
		}
		second, ok := URL(first)
		if !ok || second != first {
			t.Errorf("URL(URL(%q)) = %q, want %q", in, second, first)
		}
	}
}

func TestURLAt(t *testing.T) {
	buf := NewRuneBuffer("visit www.freechess.org today")
	if got, ok := URLAt(buf, 10); !ok || got != "http://www.freechess.org" {
		t.Errorf("URLAt = %q, %v, want %q", got, ok, "http://www.freechess.org")
	}
	if got, ok := URLAt(buf, 1); ok {
		t.Errorf("URLAt on plain word = %q, want not found", got)
	}
	if got, ok := URLAt(buf, 5); ok {
		t.Errorf("URLAt on whitespace = %q, want not found", got)
	}
}

func TestStripDoubleURLs(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"http://a.com http://b.com", "http://a.com"},
		{"http://a.comhttp://b.com", "http://a.com"},
		{"https://a.com https://b.com", "https://a.com"},
		{"http://a.com", "http://a.com"},
		{"http://a http://b http://c", "http://a http://b http://c"},
		{"plain", "plain"},
	}
	for _, tc := range tests {
		if got := StripDoubleURLs(tc.in); got != tc.want {
			t.Errorf("StripDoubleURLs(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestIsWhiteSpace(t *testing.T) {
	for _, r := range " \r\n\t" {
		if !IsWhiteSpace(r) {
			t.Errorf("IsWhiteSpace(%q) = false", r)
		}
	}
	for _, r := range "a.[\u00a0" {
		if IsWhiteSpace(r) {
			t.Errorf("IsWhiteSpace(%q) = true", r)
		}
	}
}

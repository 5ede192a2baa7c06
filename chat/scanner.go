package chat

import (
	"regexp"
	"strings"
)

const whiteSpaceChars = " \r\n\t"

var urlPattern = regexp.MustCompile(`(?i)^[!#$&\-;=?\[\]_a-z~]+\.[^ ]+$`)

// IsWhiteSpace reports whether r separates words in console text.
func IsWhiteSpace(r rune) bool {
	return strings.ContainsRune(whiteSpaceChars, r)
}

func isQuote(r rune) bool {
	return r == '"' || r == '\''
}

func isLineBreak(r rune) bool {
	return r == '\r' || r == '\n'
}

// Word returns the whitespace delimited word containing pos, with any
// leading date stamp removed.
func Word(buf TextBuffer, pos int) (string, bool) {
	c, err := buf.CharAt(pos)
	if err != nil || IsWhiteSpace(c) {
		return "", false
	}

	start := pos
	for start > 0 {
		c, err = buf.CharAt(start - 1)
		if err != nil {
			return "", false
		}
		if IsWhiteSpace(c) {
			break
		}
		start--
	}

	end := pos
	for end < buf.CharCount()-1 {
		c, err = buf.CharAt(end + 1)
		if err != nil {
			return "", false
		}
		if IsWhiteSpace(c) {
			break
		}
		end++
	}

	word, err := buf.Text(start, end)
	if err != nil {
		return "", false
	}
	return TrimDateStamp(word), true
}

// TrimDateStamp strips a leading "[...]" tag from word.
func TrimDateStamp(word string) string {
	if strings.HasPrefix(word, "[") {
		if closing := strings.IndexByte(word, ']'); closing != -1 {
			return word[closing+1:]
		}
	}
	return word
}

// QuotedText returns the text between the quotes surrounding pos. A quote at
// pos is taken as the closing quote. Quotes never span lines.
func QuotedText(buf TextBuffer, pos int) (string, bool) {
	c, err := buf.CharAt(pos)
	if err != nil {
		return "", false
	}

	end := -1
	cur := pos
	if isQuote(c) {
		end = pos
		cur--
		if c, err = buf.CharAt(cur); err != nil {
			return "", false
		}
	}

	for !isQuote(c) {
		if isLineBreak(c) {
			return "", false
		}
		cur--
		if c, err = buf.CharAt(cur); err != nil {
			return "", false
		}
	}
	start := cur

	if end == -1 {
		cur = pos + 1
		if c, err = buf.CharAt(cur); err != nil {
			return "", false
		}
		for !isQuote(c) {
			if isLineBreak(c) {
				return "", false
			}
			cur++
			if c, err = buf.CharAt(cur); err != nil {
				return "", false
			}
		}
		end = cur
	}

	text, err := buf.Text(start+1, end-1)
	if err != nil {
		return "", false
	}
	return text, true
}

// URL returns word as a URL if it looks like one. Bare host names get an
// http:// prefix.
func URL(word string) (string, bool) {
	if strings.TrimSpace(word) == "" {
		return "", false
	}

	word = strings.TrimLeft(word, "(<#/")
	word = strings.TrimRight(word, ")>;")

	switch {
	case strings.HasPrefix(word, "http://"), strings.HasPrefix(word, "https://"):
		return word, true
	case strings.HasSuffix(word, ".com"),
		strings.HasSuffix(word, ".org"),
		strings.HasSuffix(word, ".gov"),
		strings.HasSuffix(word, ".edu"),
		strings.HasPrefix(word, "www."),
		urlPattern.MatchString(word):
		return "http://" + word, true
	}
	return "", false
}

// URLAt returns the URL under pos, if any.
func URLAt(buf TextBuffer, pos int) (string, bool) {
	word, ok := Word(buf, pos)
	if !ok {
		return "", false
	}
	return URL(word)
}

// StripDoubleURLs cuts word at the second URL when two URLs were glued
// together by server line wrapping.
func StripDoubleURLs(word string) string {
	if strings.Count(word, "http://") != 2 && strings.Count(word, "https://") != 2 {
		return word
	}
	second := strings.Index(word[1:], "http") + 1
	return strings.TrimSpace(word[:second])
}

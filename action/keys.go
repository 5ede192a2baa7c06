package action

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// Binding is a normalized key chord.
type Binding struct {
	Key  tcell.Key
	Rune rune
	Mod  tcell.ModMask
}

var keyByName = map[string]tcell.Key{}

var modifierNames = map[string]tcell.ModMask{
	"alt":   tcell.ModAlt,
	"meta":  tcell.ModMeta,
	"shift": tcell.ModShift,
	"ctrl":  tcell.ModCtrl,
}

func init() {
	for k, name := range tcell.KeyNames {
		keyByName[strings.ToLower(name)] = k
	}
}

// isControlKey reports whether k is one of the Ctrl-letter key codes, which
// imply the Ctrl modifier.
func isControlKey(k tcell.Key) bool {
	return k >= tcell.KeyCtrlSpace && k <= tcell.KeyCtrlUnderscore
}

func normalize(b Binding) Binding {
	if b.Key == tcell.KeyRune {
		b.Mod &^= tcell.ModShift
	} else {
		b.Rune = 0
	}
	if isControlKey(b.Key) {
		b.Mod &^= tcell.ModCtrl
	}
	return b
}

// ParseKey parses names like "Ctrl-L", "F5", "Alt-s" or "Shift-F2".
func ParseKey(s string) (Binding, error) {
	rest := strings.TrimSpace(s)
	var mod tcell.ModMask
	for rest != "" {
		if k, ok := keyByName[strings.ToLower(rest)]; ok {
			return normalize(Binding{Key: k, Mod: mod}), nil
		}
		if utf8.RuneCountInString(rest) == 1 {
			r, _ := utf8.DecodeRuneInString(rest)
			return normalize(Binding{Key: tcell.KeyRune, Rune: r, Mod: mod}), nil
		}
		prefix, tail, found := strings.Cut(rest, "-")
		if !found {
			break
		}
		m, ok := modifierNames[strings.ToLower(prefix)]
		if !ok {
			break
		}
		mod |= m
		rest = tail
	}
	return Binding{}, fmt.Errorf("unknown key %q", s)
}

// BindingFor returns the binding an event would match.
func BindingFor(ev *tcell.EventKey) Binding {
	return normalize(Binding{Key: ev.Key(), Rune: ev.Rune(), Mod: ev.Modifiers()})
}

// IsHotkey reports whether b may trigger an action rather than being typed
// into the input line: it carries a modifier or is a function key.
func (b Binding) IsHotkey() bool {
	if b.Mod&(tcell.ModCtrl|tcell.ModAlt|tcell.ModMeta) != 0 {
		return true
	}
	if isControlKey(b.Key) {
		switch b.Key {
		case tcell.KeyTab, tcell.KeyEnter, tcell.KeyBackspace, tcell.KeyEscape:
			return false
		}
		return true
	}
	return b.Key >= tcell.KeyF1 && b.Key <= tcell.KeyF64
}

func (b Binding) String() string {
	var sb strings.Builder
	if b.Mod&tcell.ModCtrl != 0 {
		sb.WriteString("Ctrl-")
	}
	if b.Mod&tcell.ModAlt != 0 {
		sb.WriteString("Alt-")
	}
	if b.Mod&tcell.ModMeta != 0 {
		sb.WriteString("Meta-")
	}
	if b.Mod&tcell.ModShift != 0 {
		sb.WriteString("Shift-")
	}
	if b.Key == tcell.KeyRune {
		sb.WriteRune(b.Rune)
	} else if name, ok := tcell.KeyNames[b.Key]; ok {
		sb.WriteString(name)
	} else {
		fmt.Fprintf(&sb, "Key[%d]", b.Key)
	}
	return sb.String()
}

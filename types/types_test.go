package types

import "testing"

func TestParseChatType(t *testing.T) {
	cases := []struct {
		in   string
		want ChatType
	}{
		{"TELL", Tell},
		{"partner_tell", PartnerTell},
		{" Channel_Tell ", ChannelTell},
		{"OUTBOUND", Outbound},
		{"", Unknown},
		{"SEEK", Unknown},
	}
	for _, c := range cases {
		if got := ParseChatType(c.in); got != c.want {
			t.Errorf("ParseChatType(%q) = %v, want %v", c.in, got, c.want)
		}
	}
	for ct := Unknown; ct <= Outbound; ct++ {
		if got := ParseChatType(ct.String()); got != ct {
			t.Errorf("ParseChatType(%q) = %v, want %v", ct.String(), got, ct)
		}
	}
	if got := ChatType(99).String(); got != "UNKNOWN" {
		t.Errorf("ChatType(99).String() = %q, want UNKNOWN", got)
	}
}

func TestIsDirect(t *testing.T) {
	for ct := Unknown; ct <= Outbound; ct++ {
		want := ct == Tell || ct == PartnerTell
		if got := ct.IsDirect(); got != want {
			t.Errorf("%v.IsDirect() = %v, want %v", ct, got, want)
		}
	}
}

func TestNewInternalEvent(t *testing.T) {
	ev := NewInternalEvent("hello")
	if ev.Type != Internal || ev.Message != "hello" || ev.Source != "" {
		t.Errorf("NewInternalEvent = %+v", ev)
	}
	if ev.Time.IsZero() {
		t.Error("NewInternalEvent left Time zero")
	}
}

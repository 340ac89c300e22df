package game

import (
	"strings"
	"testing"
)

func TestMessageLogEvictsOldest(t *testing.T) {
	l := NewMessageLog(3)
	for _, s := range []string{"one", "two", "three", "four"} {
		l.Add(s, MsgInfo)
	}
	got := l.Recent(10)
	if len(got) != 3 || got[0].Text != "two" || got[2].Text != "four" {
		t.Fatalf("log = %+v", got)
	}
}

func TestMessageLogWrapsLongLines(t *testing.T) {
	l := NewMessageLog(10)
	long := strings.Repeat("rubble ", 20)
	l.Add(long, MsgCritical)

	if l.Len() < 2 {
		t.Fatalf("expected wrapped lines, got %d", l.Len())
	}
	for _, m := range l.Recent(l.Len()) {
		if len(m.Text) > logWidth {
			t.Fatalf("line too long (%d): %q", len(m.Text), m.Text)
		}
		if m.Priority != MsgCritical {
			t.Fatalf("wrapped line lost its priority")
		}
	}
}

func TestMessageLogRecentReturnsCopy(t *testing.T) {
	l := NewMessageLog(5)
	l.Add("first", MsgInfo)
	l.Add("second", MsgWarning)

	got := l.Recent(1)
	if len(got) != 1 || got[0].Text != "second" {
		t.Fatalf("Recent(1) = %+v", got)
	}
	got[0].Text = "changed"
	if l.Recent(1)[0].Text != "second" {
		t.Fatalf("Recent aliased the log")
	}
	if n := len(l.Recent(-1)); n != 0 {
		t.Fatalf("Recent(-1) returned %d lines", n)
	}
}

func TestAmountFormatting(t *testing.T) {
	cases := map[float64]string{
		0:       "0",
		1.5:     "1.5",
		1234.5:  "1,234.5",
		1e6:     "1,000,000",
	}
	for v, want := range cases {
		if got := amount(v); got != want {
			t.Fatalf("amount(%g) = %q, want %q", v, got, want)
		}
	}
}

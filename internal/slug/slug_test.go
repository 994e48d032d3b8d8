package slug

import (
	"regexp"
	"strings"
	"testing"
	"time"
)

func TestMakeNormalizesTitle(t *testing.T) {
	now := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		title string
		base  string
	}{
		{"Groceries", "groceries"},
		{"Compras   Supermercado", "compras-supermercado"},
		{"  Hello, World!  ", "hello-world"},
		{"Tareas del Trabajo", "tareas-del-trabajo"},
		{"--- already - dashed ---", "already-dashed"},
		{"UPPER case MiX", "upper-case-mix"},
	}
	for _, c := range cases {
		got := Make(c.title, now)
		if !strings.HasPrefix(got, c.base+"-") {
			t.Errorf("Make(%q) = %q; want prefix %q-", c.title, got, c.base)
		}
	}
}

func TestMakeSymbolOnlyTitle(t *testing.T) {
	got := Make("!!!", time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC))
	if got == "" || strings.HasPrefix(got, "-") {
		t.Fatalf("Make(symbols) = %q; want bare disambiguator", got)
	}
}

func TestMakeDistinctAtDifferentInstants(t *testing.T) {
	t0 := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	t1 := t0.Add(time.Millisecond)

	a := Make("Test", t0)
	b := Make("Test", t1)
	if a == b {
		t.Fatalf("same slug for different instants: %q", a)
	}
	pattern := regexp.MustCompile(`^test-[0-9a-z]+$`)
	for _, s := range []string{a, b} {
		if !pattern.MatchString(s) {
			t.Errorf("slug %q does not match test-<disambiguator>", s)
		}
	}
}

func TestUniqueEscalatesOnCollision(t *testing.T) {
	now := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	existing := map[string]bool{
		Make("Test", now):        true,
		Make("Test", now) + "-2": true,
	}
	got := Unique("Test", now, func(s string) bool { return existing[s] })
	if existing[got] {
		t.Fatalf("Unique returned a taken slug %q", got)
	}
	if want := Make("Test", now) + "-3"; got != want {
		t.Fatalf("Unique = %q; want %q", got, want)
	}
}

func TestUniqueWithoutCollision(t *testing.T) {
	now := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	if got, want := Unique("Test", now, func(string) bool { return false }), Make("Test", now); got != want {
		t.Fatalf("Unique = %q; want %q", got, want)
	}
}

package validate

import (
	"testing"

	"listo/internal/model"
)

func TestTitle(t *testing.T) {
	lists := model.Collection{{Slug: "groceries-a", Title: "Groceries"}}

	cases := []struct {
		title string
		ok    bool
	}{
		{"Work", true},
		{"Groceries 2", true},
		{"  Trimmed  ", true},
		{"", false},
		{"   ", false},
		{"12345", false},
		{"12 34", false},
		{"Groceries", false},
		{"groceries", false}, // duplicates match case-insensitively
	}
	for _, c := range cases {
		err := Title(lists, c.title)
		if c.ok && err != nil {
			t.Errorf("Title(%q) = %v; want ok", c.title, err)
		}
		if !c.ok && err == nil {
			t.Errorf("Title(%q) succeeded; want error", c.title)
		}
	}
}

func TestMessage(t *testing.T) {
	if err := Message("Milk"); err != nil {
		t.Fatalf("Message(Milk) = %v", err)
	}
	for _, m := range []string{"", "   "} {
		if err := Message(m); err == nil {
			t.Errorf("Message(%q) succeeded; want error", m)
		}
	}
}

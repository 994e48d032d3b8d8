package revive

import (
	"encoding/json"
	"reflect"
	"testing"
	"time"
)

func TestTimeMatchesExactPattern(t *testing.T) {
	got, ok := Time("2026-02-01T12:00:00.000Z")
	if !ok {
		t.Fatalf("expected match")
	}
	want := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("parsed %v; want %v", got, want)
	}
}

func TestTimeRejectsNearMisses(t *testing.T) {
	cases := []string{
		"",
		"not a date",
		"2026-02-01",                             // date only
		"2026-02-01T12:00:00Z",                   // no milliseconds
		"2026-02-01T12:00:00.000+00:00",          // offset form
		"deadline is 2026-02-01T12:00:00.000Z",   // not anchored at start
		"2026-02-01T12:00:00.000Z was the start", // not anchored at end
		"2026-02-01T12:00:00.0000Z",              // too many digits
	}
	for _, s := range cases {
		if _, ok := Time(s); ok {
			t.Errorf("Time(%q) matched; want no match", s)
		}
	}
}

func TestValueRevivesNestedTrees(t *testing.T) {
	raw := `{
		"slug": "groceries-abc",
		"title": "Groceries",
		"created_at": "2026-01-15T00:00:00.000Z",
		"items": [
			{"message": "Leche", "done": true, "created_at": "2026-01-15T08:30:00.000Z"},
			{"message": "note about 2026-01-15T08:30:00.000Z here", "done": false, "created_at": "2026-01-16T00:00:00.000Z"}
		]
	}`
	var tree any
	if err := json.Unmarshal([]byte(raw), &tree); err != nil {
		t.Fatal(err)
	}

	got := Value(tree).(map[string]any)

	if _, ok := got["created_at"].(time.Time); !ok {
		t.Fatalf("created_at = %T; want time.Time", got["created_at"])
	}
	items := got["items"].([]any)
	if len(items) != 2 {
		t.Fatalf("items length = %d; want 2", len(items))
	}
	first := items[0].(map[string]any)
	if ts, ok := first["created_at"].(time.Time); !ok || !ts.Equal(time.Date(2026, 1, 15, 8, 30, 0, 0, time.UTC)) {
		t.Fatalf("item created_at = %v (%T)", first["created_at"], first["created_at"])
	}
	if first["done"] != true {
		t.Fatalf("done = %v; want true", first["done"])
	}
	second := items[1].(map[string]any)
	if _, ok := second["message"].(string); !ok {
		t.Fatalf("a sentence containing a date must stay a string; got %T", second["message"])
	}
}

func TestValueDoesNotMutateInput(t *testing.T) {
	in := map[string]any{
		"created_at": "2026-02-01T12:00:00.000Z",
		"items":      []any{"2026-02-01T12:00:00.000Z"},
	}
	_ = Value(in)
	if _, ok := in["created_at"].(string); !ok {
		t.Fatalf("input map was mutated")
	}
	if _, ok := in["items"].([]any)[0].(string); !ok {
		t.Fatalf("input slice was mutated")
	}
}

func TestValuePassthrough(t *testing.T) {
	cases := []any{
		nil,
		"plain text",
		float64(42),
		true,
		[]any{},
		map[string]any{},
	}
	for _, in := range cases {
		if got := Value(in); !reflect.DeepEqual(got, in) {
			t.Errorf("Value(%#v) = %#v; want unchanged", in, got)
		}
	}
}

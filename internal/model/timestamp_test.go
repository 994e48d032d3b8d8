package model

import (
	"encoding/json"
	"testing"
	"time"
)

func TestTimestampRoundTrip(t *testing.T) {
	orig := At(time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC))

	b, err := json.Marshal(orig)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `"2026-02-01T12:00:00.000Z"` {
		t.Fatalf("marshalled to %s", b)
	}

	var back Timestamp
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatal(err)
	}
	if !back.Equal(orig.Time) {
		t.Fatalf("round-trip changed instant: %v != %v", back, orig)
	}
}

func TestTimestampTruncatesToMillis(t *testing.T) {
	fine := time.Date(2026, 2, 1, 12, 0, 0, 123456789, time.UTC)
	ts := At(fine)
	if got := ts.Nanosecond(); got != 123000000 {
		t.Fatalf("nanoseconds = %d; want 123000000", got)
	}

	b, _ := json.Marshal(ts)
	var back Timestamp
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatal(err)
	}
	if !back.Equal(ts.Time) {
		t.Fatalf("truncated value must round-trip exactly")
	}
}

func TestTimestampRejectsOtherForms(t *testing.T) {
	for _, raw := range []string{`"2026-02-01"`, `"2026-02-01T12:00:00Z"`, `42`, `"hello"`} {
		var ts Timestamp
		if err := json.Unmarshal([]byte(raw), &ts); err == nil {
			t.Errorf("unmarshal %s succeeded; want error", raw)
		}
	}
}

func TestCollectionRoundTrip(t *testing.T) {
	lists := Collection{
		{
			Slug:      "groceries-abc",
			Title:     "Groceries",
			CreatedAt: At(time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)),
			Items: []Item{
				{Message: "Leche", Done: true, CreatedAt: At(time.Date(2026, 1, 15, 8, 30, 0, 0, time.UTC))},
				{Message: "Pan", Done: false, CreatedAt: At(time.Date(2026, 1, 16, 0, 0, 0, 0, time.UTC))},
			},
		},
	}

	b, err := json.Marshal(lists)
	if err != nil {
		t.Fatal(err)
	}
	var back Collection
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatal(err)
	}
	if len(back) != 1 || len(back[0].Items) != 2 {
		t.Fatalf("shape changed: %+v", back)
	}
	if !back[0].CreatedAt.Equal(lists[0].CreatedAt.Time) {
		t.Fatalf("list timestamp drifted")
	}
	if !back[0].Items[0].CreatedAt.Equal(lists[0].Items[0].CreatedAt.Time) {
		t.Fatalf("item timestamp drifted")
	}
}

func TestProgress(t *testing.T) {
	l := CheckList{Items: []Item{{Done: true}, {Done: false}, {Done: true}}}
	done, pending := l.Progress()
	if done != 2 || pending != 1 {
		t.Fatalf("Progress() = %d, %d; want 2, 1", done, pending)
	}
}

// Package mutate holds the pure operations over a checklist collection.
// Every function returns a brand-new collection built by structural
// copy-on-write; inputs are never modified, and lists the operation
// does not target are carried over as the same values. Invalid input
// (blank titles or messages) and addressing misses (unknown slug,
// out-of-range index) are silent no-ops that return the input.
package mutate

import (
	"strings"
	"time"

	"listo/internal/model"
	"listo/internal/slug"
)

// DefaultItemMessage seeds the first item of every new list.
const DefaultItemMessage = "Nueva tarea"

// AddList appends a new checklist with one seeded pending item and
// returns the new collection plus the generated slug. A blank title is
// rejected with an empty-slug sentinel.
func AddList(lists model.Collection, title string, now time.Time) (model.Collection, string) {
	title = strings.TrimSpace(title)
	if title == "" {
		return lists, ""
	}

	s := slug.Unique(title, now, func(candidate string) bool {
		return model.Find(lists, candidate) >= 0
	})
	list := model.CheckList{
		Slug:      s,
		Title:     title,
		CreatedAt: model.At(now),
		Items: []model.Item{
			{Message: DefaultItemMessage, Done: false, CreatedAt: model.At(now)},
		},
	}

	out := make(model.Collection, 0, len(lists)+1)
	out = append(out, lists...)
	out = append(out, list)
	return out, s
}

// UpdateListTitle replaces the title of the list with the given slug.
func UpdateListTitle(lists model.Collection, slug, newTitle string) model.Collection {
	newTitle = strings.TrimSpace(newTitle)
	if newTitle == "" {
		return lists
	}
	i := model.Find(lists, slug)
	if i < 0 {
		return lists
	}

	out := make(model.Collection, len(lists))
	copy(out, lists)
	out[i].Title = newTitle
	return out
}

// DeleteList removes the list with the given slug.
func DeleteList(lists model.Collection, slug string) model.Collection {
	i := model.Find(lists, slug)
	if i < 0 {
		return lists
	}

	out := make(model.Collection, 0, len(lists)-1)
	out = append(out, lists[:i]...)
	out = append(out, lists[i+1:]...)
	return out
}

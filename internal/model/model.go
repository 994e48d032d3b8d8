// Package model holds the domain types for listo checklists.
package model

// Item is a single checklist entry. Items have no stable id of their
// own; their position in the list is their identity, so deleting item k
// shifts every later item down by one.
type Item struct {
	Message   string    `json:"message"`
	Done      bool      `json:"done"`
	CreatedAt Timestamp `json:"created_at"`
}

// CheckList is a named, slug-identified list of items. The slug is the
// stable identity; the title is mutable display text.
type CheckList struct {
	Slug      string    `json:"slug"`
	Title     string    `json:"title"`
	Items     []Item    `json:"items"`
	CreatedAt Timestamp `json:"created_at"`
}

// Collection is every checklist persisted under one storage key, in
// insertion order.
type Collection = []CheckList

// Progress counts done and pending items in a list.
func (c CheckList) Progress() (done, pending int) {
	for _, it := range c.Items {
		if it.Done {
			done++
		} else {
			pending++
		}
	}
	return
}

// Find returns the index of the list with the given slug, or -1.
func Find(lists Collection, slug string) int {
	for i, l := range lists {
		if l.Slug == slug {
			return i
		}
	}
	return -1
}

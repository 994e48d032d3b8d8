package mutate

import (
	"strings"
	"time"

	"listo/internal/model"
)

// AddItem appends a pending item to the list with the given slug.
func AddItem(lists model.Collection, slug, message string, now time.Time) model.Collection {
	message = strings.TrimSpace(message)
	if message == "" {
		return lists
	}
	i := model.Find(lists, slug)
	if i < 0 {
		return lists
	}

	items := make([]model.Item, 0, len(lists[i].Items)+1)
	items = append(items, lists[i].Items...)
	items = append(items, model.Item{Message: message, Done: false, CreatedAt: model.At(now)})
	return replaceItems(lists, i, items)
}

// UpdateItemMessage replaces the message of the item at index,
// preserving its done flag and creation time.
func UpdateItemMessage(lists model.Collection, slug string, index int, newMessage string) model.Collection {
	newMessage = strings.TrimSpace(newMessage)
	if newMessage == "" {
		return lists
	}
	i := model.Find(lists, slug)
	if i < 0 || index < 0 || index >= len(lists[i].Items) {
		return lists
	}

	items := cloneItems(lists[i].Items)
	items[index].Message = newMessage
	return replaceItems(lists, i, items)
}

// ToggleItemDone flips the done flag of the item at index.
func ToggleItemDone(lists model.Collection, slug string, index int) model.Collection {
	i := model.Find(lists, slug)
	if i < 0 || index < 0 || index >= len(lists[i].Items) {
		return lists
	}

	items := cloneItems(lists[i].Items)
	items[index].Done = !items[index].Done
	return replaceItems(lists, i, items)
}

// DeleteItem removes the item at index. Later items shift down by one.
func DeleteItem(lists model.Collection, slug string, index int) model.Collection {
	i := model.Find(lists, slug)
	if i < 0 || index < 0 || index >= len(lists[i].Items) {
		return lists
	}

	items := make([]model.Item, 0, len(lists[i].Items)-1)
	items = append(items, lists[i].Items[:index]...)
	items = append(items, lists[i].Items[index+1:]...)
	return replaceItems(lists, i, items)
}

func cloneItems(items []model.Item) []model.Item {
	out := make([]model.Item, len(items))
	copy(out, items)
	return out
}

// replaceItems copies the collection with list i carrying the new item
// slice. Lists other than i keep their original values.
func replaceItems(lists model.Collection, i int, items []model.Item) model.Collection {
	out := make(model.Collection, len(lists))
	copy(out, lists)
	out[i].Items = items
	return out
}

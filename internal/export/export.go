// Package export produces and reads portable JSON snapshots of the
// whole checklist collection.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"listo/internal/model"
	"listo/internal/revive"
)

const (
	// Version tags the snapshot format.
	Version = "1.0"
	// App identifies the producer.
	App = "listo"
)

// Snapshot is the on-the-wire form of an export: fully stringified,
// timestamps as ISO-8601 millisecond strings.
type Snapshot struct {
	Version    string          `json:"version"`
	ExportedAt model.Timestamp `json:"exportedAt"`
	App        string          `json:"app"`
	Data       Payload         `json:"data"`
}

type Payload struct {
	Lists model.Collection `json:"lists"`
}

// Lists stamps the collection into a versioned snapshot.
func Lists(lists model.Collection, now time.Time) Snapshot {
	if lists == nil {
		lists = model.Collection{}
	}
	return Snapshot{
		Version:    Version,
		ExportedAt: model.At(now),
		App:        App,
		Data:       Payload{Lists: lists},
	}
}

// Filename names a backup file after the export moment's calendar date.
func Filename(now time.Time) string {
	return "checklist-backup-" + now.UTC().Format("2006-01-02") + ".json"
}

// Write renders the snapshot as indented JSON.
func Write(w io.Writer, snap Snapshot) error {
	b, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	if _, err := w.Write(append(b, '\n')); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}

// Read parses a snapshot back into a collection. Unlike the store's
// silent fallback, a broken snapshot is an explicit user action and
// reports an error. The data.lists subtree goes through the revival
// walk, so timestamps come back as instants.
func Read(r io.Reader) (model.Collection, error) {
	var raw struct {
		Version string `json:"version"`
		Data    struct {
			Lists any `json:"lists"`
		} `json:"data"`
	}
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("parse snapshot: %w", err)
	}
	if raw.Version == "" {
		return nil, fmt.Errorf("snapshot has no version tag")
	}
	if raw.Version != Version {
		return nil, fmt.Errorf("unsupported snapshot version %q", raw.Version)
	}
	return listsFromTree(revive.Value(raw.Data.Lists))
}

func listsFromTree(tree any) (model.Collection, error) {
	nodes, ok := tree.([]any)
	if !ok {
		return nil, fmt.Errorf("data.lists is not an array")
	}
	lists := make(model.Collection, 0, len(nodes))
	for i, n := range nodes {
		obj, ok := n.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("list %d is not an object", i)
		}
		list := model.CheckList{Items: []model.Item{}}
		if list.Slug, ok = obj["slug"].(string); !ok || list.Slug == "" {
			return nil, fmt.Errorf("list %d has no slug", i)
		}
		if list.Title, ok = obj["title"].(string); !ok || list.Title == "" {
			return nil, fmt.Errorf("list %q has no title", list.Slug)
		}
		created, ok := obj["created_at"].(time.Time)
		if !ok {
			return nil, fmt.Errorf("list %q has no valid created_at", list.Slug)
		}
		list.CreatedAt = model.At(created)

		rawItems, _ := obj["items"].([]any)
		for j, ri := range rawItems {
			item, err := itemFromTree(ri)
			if err != nil {
				return nil, fmt.Errorf("list %q item %d: %w", list.Slug, j, err)
			}
			list.Items = append(list.Items, item)
		}
		lists = append(lists, list)
	}
	return lists, nil
}

func itemFromTree(tree any) (model.Item, error) {
	obj, ok := tree.(map[string]any)
	if !ok {
		return model.Item{}, fmt.Errorf("not an object")
	}
	var item model.Item
	if item.Message, ok = obj["message"].(string); !ok {
		return model.Item{}, fmt.Errorf("no message")
	}
	item.Done, _ = obj["done"].(bool)
	created, ok := obj["created_at"].(time.Time)
	if !ok {
		return model.Item{}, fmt.Errorf("no valid created_at")
	}
	item.CreatedAt = model.At(created)
	return item, nil
}

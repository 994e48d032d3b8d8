package cli

import (
	"fmt"

	"listo/internal/config"
	"listo/internal/kv"
	"listo/internal/model"
	"listo/internal/store"
)

// app holds the opened storage stack for one command invocation.
type app struct {
	db    kv.KV
	store *store.Store
}

func open(cfg *config.Config) (*app, error) {
	dir, err := cfg.DataDir()
	if err != nil {
		return nil, err
	}
	db, err := kv.Open(dir, cfg.Backend)
	if err != nil {
		return nil, err
	}
	st := store.Open(db, store.DefaultKey, model.Collection{}, cfg.PollInterval())
	return &app{db: db, store: st}, nil
}

func (a *app) Close() {
	a.store.Close()
	_ = a.db.Close()
}

// mustFind resolves a slug or fails with a hint, so engine-level no-ops
// surface as real errors on the CLI.
func mustFind(lists model.Collection, slug string) (model.CheckList, error) {
	if i := model.Find(lists, slug); i >= 0 {
		return lists[i], nil
	}
	return model.CheckList{}, fmt.Errorf("no list with slug %q (run `listo ls` to see slugs)", slug)
}

// itemIndex converts a 1-based user index into a 0-based engine index.
func itemIndex(list model.CheckList, arg int) (int, error) {
	if arg < 1 || arg > len(list.Items) {
		return 0, fmt.Errorf("index out of range: %q has %d items, got %d", list.Title, len(list.Items), arg)
	}
	return arg - 1, nil
}

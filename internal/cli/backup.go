package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"listo/internal/config"
	"listo/internal/export"
	"listo/internal/model"
	"listo/internal/slug"
	"listo/internal/ui"
)

func newExportCmd(cfg **config.Config) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a portable JSON backup of every checklist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := open(*cfg)
			if err != nil {
				return err
			}
			defer app.Close()

			now := time.Now()
			if out == "" {
				out = export.Filename(now)
			}

			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("create backup file: %w", err)
			}
			defer f.Close()

			lists := app.store.Lists()
			if err := export.Write(f, export.Lists(lists, now)); err != nil {
				return err
			}
			ui.OK(fmt.Sprintf("exported %d lists to %s", len(lists), out))
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "Backup file path (default checklist-backup-<date>.json)")
	return cmd
}

func newImportCmd(cfg **config.Config) *cobra.Command {
	var merge bool
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Load checklists from a JSON backup",
		Long:  "Load checklists from a backup produced by `listo export`. By default the backup replaces the current collection; with --merge its lists are appended, re-slugged on collision.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open backup file: %w", err)
			}
			defer f.Close()

			imported, err := export.Read(f)
			if err != nil {
				return err
			}

			app, err := open(*cfg)
			if err != nil {
				return err
			}
			defer app.Close()

			if err := app.store.Update(func(lists model.Collection) model.Collection {
				if !merge {
					return imported
				}
				return mergeLists(lists, imported)
			}); err != nil {
				return err
			}
			ui.OK(fmt.Sprintf("imported %d lists", len(imported)))
			return nil
		},
	}
	cmd.Flags().BoolVar(&merge, "merge", false, "Append to the current collection instead of replacing it")
	return cmd
}

// mergeLists appends imported lists, regenerating the slug of any list
// that would collide with one already present.
func mergeLists(current, imported model.Collection) model.Collection {
	out := make(model.Collection, 0, len(current)+len(imported))
	out = append(out, current...)
	for _, l := range imported {
		if model.Find(out, l.Slug) >= 0 {
			l.Slug = slug.Unique(l.Title, time.Now(), func(candidate string) bool {
				return model.Find(out, candidate) >= 0
			})
		}
		out = append(out, l)
	}
	return out
}

package cli

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"listo/internal/config"
	"listo/internal/model"
	"listo/internal/mutate"
	"listo/internal/ui"
	"listo/internal/validate"
)

func newLsCmd(cfg **config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "ls",
		Short: "Show all checklists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := open(*cfg)
			if err != nil {
				return err
			}
			defer app.Close()

			lists := app.store.Lists()
			fmt.Println(ui.Panel(overviewLines(lists)))
			return nil
		},
	}
}

func overviewLines(lists model.Collection) []string {
	s := ui.Current()

	totalDone, totalPending := 0, 0
	for _, l := range lists {
		d, p := l.Progress()
		totalDone += d
		totalPending += p
	}
	lines := []string{
		fmt.Sprintf("%s  %s %d  %s %d  %s %d",
			s.Title.Render("Checklists"),
			s.Success.Render("✔"), totalDone,
			s.Pending.Render("•"), totalPending,
			s.Accent.Render("Lists"), len(lists)),
		"",
	}

	if len(lists) == 0 {
		lines = append(lines, s.Muted.Render("no lists yet"), "",
			s.Muted.Render("Tip: create one with `listo add \"Groceries\"`"))
		return lines
	}

	// Most recent first; display order only, storage keeps insertion order.
	sorted := make(model.Collection, len(lists))
	copy(sorted, lists)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt.Time)
	})

	for _, l := range sorted {
		d, p := l.Progress()
		lines = append(lines, fmt.Sprintf("%s %s  %s",
			s.Title.Render(l.Title),
			s.Muted.Render("("+l.Slug+")"),
			ui.ProgressBar(d, d+p, 16)))
	}
	return lines
}

func newAddCmd(cfg **config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "add <title...>",
		Short: "Create a new checklist",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			title := strings.TrimSpace(strings.Join(args, " "))

			app, err := open(*cfg)
			if err != nil {
				return err
			}
			defer app.Close()

			if err := validate.Title(app.store.Lists(), title); err != nil {
				return err
			}

			var slug string
			err = app.store.Update(func(lists model.Collection) model.Collection {
				out, s := mutate.AddList(lists, title, time.Now())
				slug = s
				return out
			})
			if err != nil {
				return err
			}
			ui.OK(fmt.Sprintf("created %q (%s)", title, slug))
			return nil
		},
	}
}

func newRenameCmd(cfg **config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "rename <slug> <title...>",
		Short: "Rename a checklist (the slug stays)",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			slug := args[0]
			title := strings.TrimSpace(strings.Join(args[1:], " "))

			app, err := open(*cfg)
			if err != nil {
				return err
			}
			defer app.Close()

			lists := app.store.Lists()
			if _, err := mustFind(lists, slug); err != nil {
				return err
			}
			// The list keeps its own title off the duplicate check so a
			// rename can fix capitalization.
			others := make(model.Collection, 0, len(lists))
			for _, l := range lists {
				if l.Slug != slug {
					others = append(others, l)
				}
			}
			if err := validate.Title(others, title); err != nil {
				return err
			}

			if err := app.store.Update(func(lists model.Collection) model.Collection {
				return mutate.UpdateListTitle(lists, slug, title)
			}); err != nil {
				return err
			}
			ui.OK(fmt.Sprintf("renamed %s to %q", slug, title))
			return nil
		},
	}
}

func newRmCmd(cfg **config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <slug>",
		Short: "Delete a checklist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			slug := args[0]

			app, err := open(*cfg)
			if err != nil {
				return err
			}
			defer app.Close()

			list, err := mustFind(app.store.Lists(), slug)
			if err != nil {
				return err
			}

			if err := app.store.Update(func(lists model.Collection) model.Collection {
				return mutate.DeleteList(lists, slug)
			}); err != nil {
				return err
			}
			ui.OK(fmt.Sprintf("deleted %q", list.Title))
			return nil
		},
	}
}

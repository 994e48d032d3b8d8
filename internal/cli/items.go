package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"listo/internal/config"
	"listo/internal/model"
	"listo/internal/mutate"
	"listo/internal/ui"
)

func newItemsCmd(cfg **config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "items <slug>",
		Short: "Show the items of a checklist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := open(*cfg)
			if err != nil {
				return err
			}
			defer app.Close()

			list, err := mustFind(app.store.Lists(), args[0])
			if err != nil {
				return err
			}
			fmt.Println(ui.Panel(itemLines(list)))
			return nil
		},
	}
}

func itemLines(list model.CheckList) []string {
	s := ui.Current()
	done, pending := list.Progress()

	lines := []string{
		fmt.Sprintf("%s %s", s.Title.Render(list.Title), s.Muted.Render("("+list.Slug+")")),
		s.Muted.Render(ui.ProgressBar(done, done+pending, 28)),
		"",
	}
	if len(list.Items) == 0 {
		return append(lines, s.Muted.Render("no items"))
	}
	for i, it := range list.Items {
		box := s.Muted.Render(ui.Box(false))
		text := it.Message
		if it.Done {
			box = s.Success.Render(ui.Box(true))
			text = s.Done.Render(text)
		}
		lines = append(lines, fmt.Sprintf("%2d. %s %s", i+1, box, text))
	}
	return lines
}

// newItemCmd groups the item-level mutations. Indexes are 1-based on
// the command line.
func newItemCmd(cfg **config.Config) *cobra.Command {
	item := &cobra.Command{
		Use:   "item",
		Short: "Work with items in a checklist",
	}
	item.AddCommand(
		newItemAddCmd(cfg),
		newItemEditCmd(cfg),
		newItemDoneCmd(cfg),
		newItemRmCmd(cfg),
	)
	return item
}

func newItemAddCmd(cfg **config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "add <slug> <message...>",
		Short: "Append an item to a checklist",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			slug := args[0]
			message := strings.TrimSpace(strings.Join(args[1:], " "))
			if message == "" {
				return errors.New("message cannot be empty")
			}

			app, err := open(*cfg)
			if err != nil {
				return err
			}
			defer app.Close()

			if _, err := mustFind(app.store.Lists(), slug); err != nil {
				return err
			}
			if err := app.store.Update(func(lists model.Collection) model.Collection {
				return mutate.AddItem(lists, slug, message, time.Now())
			}); err != nil {
				return err
			}
			ui.OK("added")
			return nil
		},
	}
}

func newItemEditCmd(cfg **config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "edit <slug> <index> <message...>",
		Short: "Replace an item's message",
		Args:  cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			slug := args[0]
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("edit: not a number: %s", args[1])
			}
			message := strings.TrimSpace(strings.Join(args[2:], " "))
			if message == "" {
				return errors.New("message cannot be empty")
			}

			app, err := open(*cfg)
			if err != nil {
				return err
			}
			defer app.Close()

			list, err := mustFind(app.store.Lists(), slug)
			if err != nil {
				return err
			}
			idx, err := itemIndex(list, n)
			if err != nil {
				return err
			}
			if err := app.store.Update(func(lists model.Collection) model.Collection {
				return mutate.UpdateItemMessage(lists, slug, idx, message)
			}); err != nil {
				return err
			}
			ui.OK("updated")
			return nil
		},
	}
}

func newItemDoneCmd(cfg **config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "done <slug> <index>",
		Short: "Toggle an item's done state",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			slug := args[0]
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("done: not a number: %s", args[1])
			}

			app, err := open(*cfg)
			if err != nil {
				return err
			}
			defer app.Close()

			list, err := mustFind(app.store.Lists(), slug)
			if err != nil {
				return err
			}
			idx, err := itemIndex(list, n)
			if err != nil {
				return err
			}
			if err := app.store.Update(func(lists model.Collection) model.Collection {
				return mutate.ToggleItemDone(lists, slug, idx)
			}); err != nil {
				return err
			}
			ui.OK("toggled")
			return nil
		},
	}
}

func newItemRmCmd(cfg **config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <slug> <index>",
		Short: "Remove an item",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			slug := args[0]
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("rm: not a number: %s", args[1])
			}

			app, err := open(*cfg)
			if err != nil {
				return err
			}
			defer app.Close()

			list, err := mustFind(app.store.Lists(), slug)
			if err != nil {
				return err
			}
			idx, err := itemIndex(list, n)
			if err != nil {
				return err
			}
			if err := app.store.Update(func(lists model.Collection) model.Collection {
				return mutate.DeleteItem(lists, slug, idx)
			}); err != nil {
				return err
			}
			ui.OK("removed")
			return nil
		},
	}
}

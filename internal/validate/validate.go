// Package validate holds the surface-level input rules the mutation
// engine deliberately leaves to its callers. The engine itself only
// rejects blank input; duplicate and numeric-only titles are policy of
// the CLI and TUI surfaces.
package validate

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"listo/internal/model"
)

// Title checks a new or replacement list title against the collection.
func Title(lists model.Collection, title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return errors.New("title cannot be empty")
	}
	if numericOnly(title) {
		return errors.New("title cannot be only numbers")
	}
	for _, l := range lists {
		if strings.EqualFold(l.Title, title) {
			return fmt.Errorf("a list titled %q already exists", l.Title)
		}
	}
	return nil
}

// Message checks an item message.
func Message(message string) error {
	if strings.TrimSpace(message) == "" {
		return errors.New("message cannot be empty")
	}
	return nil
}

func numericOnly(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) && r != ' ' {
			return false
		}
	}
	return true
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package prompts provides interactive terminal prompts for CLI commands.
package prompts

import (
	"errors"
	"fmt"
	"io"
	"unicode"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Theme returns the shared huh theme used across all CLI forms.
func Theme() *huh.Theme {
	theme := huh.ThemeBase16()
	theme.FieldSeparator = lipgloss.NewStyle().SetString("\n").MarginBottom(1)
	theme.Form.Base = theme.Form.Base.MarginTop(1)
	theme.Group.Base = theme.Group.Base.MarginTop(1)
	theme.Focused.Title = theme.Focused.Title.Foreground(lipgloss.Color("#f9ca24"))
	theme.Blurred.Title = theme.Blurred.Title.Foreground(lipgloss.Color("#bababa"))
	return theme
}

// RunFields runs the given fields as a single themed form.
func RunFields(fields ...huh.Field) error {
	return huh.NewForm(huh.NewGroup(fields...)).WithTheme(Theme()).Run()
}

// ResultField is a label-value pair for PrintResult.
type ResultField struct {
	Label string
	Value string
}

// Heading renders a section title in the result color.
func Heading(title string) string {
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#f9ca24")).Render(title)
}

// PrintResult prints a styled summary with green checkmarks and gray labels.
func PrintResult(w io.Writer, fields []ResultField, successMsg string) {
	success := lipgloss.NewStyle().Foreground(lipgloss.Color("#27ca3f"))
	label := lipgloss.NewStyle().Foreground(lipgloss.Color("#bababa"))
	check := success.Render("✓")

	_, _ = fmt.Fprintln(w)
	for _, f := range fields {
		_, _ = fmt.Fprintf(w, "%s %s %s\n", check, label.Render(f.Label+":"), f.Value)
	}

	if successMsg != "" {
		_, _ = fmt.Fprintln(w, success.Render("\n"+successMsg))
	}
}

// classPrefixValidator accepts an empty prefix or an identifier made of
// ASCII letters and digits that starts with a letter.
func classPrefixValidator(s string) error {
	for i, r := range s {
		if r > unicode.MaxASCII {
			return errors.New("must contain only ASCII letters and digits")
		}
		if i == 0 && !unicode.IsLetter(r) {
			return errors.New("must start with a letter")
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return errors.New("must contain only letters and digits")
		}
	}
	return nil
}

func requiredValidator(field string) func(string) error {
	return func(s string) error {
		if s == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

func atLeastOne[T any](what string) func([]T) error {
	return func(v []T) error {
		if len(v) == 0 {
			return fmt.Errorf("select at least one %s", what)
		}
		return nil
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package prompts

import (
	"github.com/charmbracelet/huh"
	"github.com/dacolabs/modelgen/internal/logging"
)

// RunInitForm runs the interactive form for the init command.
// It fills the provided pointers with user input; their current values are
// shown as the starting answers.
func RunInitForm(schemaDir, classPrefix, logLevel *string, strict *bool) error {
	levels := make([]huh.Option[string], len(logging.Levels))
	for i, l := range logging.Levels {
		levels[i] = huh.NewOption(l, l)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Schema directory").
				Placeholder("schemas").
				Value(schemaDir).
				Validate(requiredValidator("schema directory")),
			huh.NewInput().
				Title("Class prefix").
				Placeholder("e.g., PI").
				Value(classPrefix).
				Validate(classPrefixValidator),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Log level").
				Options(levels...).
				Value(logLevel),
			huh.NewConfirm().
				Title("Fail on unresolved schema references?").
				Affirmative("Yes").
				Negative("No, skip them").
				Value(strict),
		),
	).WithTheme(Theme()).Run()
}

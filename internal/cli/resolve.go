package cli

import (
	"context"
	"fmt"
	"strings"
)

// resolveSessionID resolves user input (full UUID or unambiguous prefix)
// to a stored assessment ID.
func resolveSessionID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("assessment ID is required")
	}

	sessions, err := app.Assessments.List(ctx, 0)
	if err != nil {
		return "", err
	}

	for _, s := range sessions {
		if s.ID == input {
			return s.ID, nil
		}
	}

	var matches []string
	for _, s := range sessions {
		if strings.HasPrefix(s.ID, input) {
			matches = append(matches, s.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("assessment not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("assessment ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

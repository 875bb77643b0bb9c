package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/iaso/internal/cli/formatter"
	"github.com/alexanderramin/iaso/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// iasoHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func iasoHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// profileForm collects the intake profile before any question is asked.
func profileForm(age *string, sex *string, symptoms *[]string) *huh.Form {
	sexOptions := []huh.Option[string]{
		huh.NewOption("Female", string(domain.SexFemale)),
		huh.NewOption("Male", string(domain.SexMale)),
		huh.NewOption("Other", string(domain.SexOther)),
	}

	symptomOptions := make([]huh.Option[string], 0, len(domain.ValidSymptomTags))
	for _, tag := range domain.SymptomTagOrder {
		label := strings.ReplaceAll(tag, "_", " ")
		symptomOptions = append(symptomOptions, huh.NewOption(label, tag))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Age").
				Placeholder("45").
				Value(age).
				Validate(validateAge),
			huh.NewSelect[string]().
				Title("Sex").
				Options(sexOptions...).
				Value(sex),
			huh.NewMultiSelect[string]().
				Title("Current symptoms (optional)").
				Options(symptomOptions...).
				Value(symptoms),
		),
	).WithTheme(iasoHuhTheme()).WithShowHelp(false)
}

// questionForm builds a single-field form for one questionnaire question.
// The description line shows questionnaire progress.
func questionForm(q *domain.QuestionDefinition, progress string, value *string) *huh.Form {
	var field huh.Field

	switch q.Kind {
	case domain.AnswerBool:
		field = huh.NewSelect[string]().
			Title(q.Prompt).
			Description(progress).
			Options(
				huh.NewOption("Yes", domain.BoolYes),
				huh.NewOption("No", domain.BoolNo),
			).
			Value(value)
	case domain.AnswerChoice:
		options := make([]huh.Option[string], 0, len(q.Choices))
		for _, c := range q.Choices {
			options = append(options, huh.NewOption(choiceLabel(c), c))
		}
		field = huh.NewSelect[string]().
			Title(q.Prompt).
			Description(progress).
			Options(options...).
			Value(value)
	default:
		field = huh.NewInput().
			Title(q.Prompt).
			Description(progress).
			Placeholder(fmt.Sprintf("%d-%d", q.Min, q.Max)).
			Value(value).
			Validate(validateNumberIn(q.Min, q.Max))
	}

	return huh.NewForm(
		huh.NewGroup(field),
	).WithTheme(iasoHuhTheme()).WithShowHelp(false)
}

func choiceLabel(choice string) string {
	label := strings.ReplaceAll(choice, "_", " ")
	if label == "" {
		return choice
	}
	return strings.ToUpper(label[:1]) + label[1:]
}

func validateAge(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("enter a whole number")
	}
	if n < 0 || n > 130 {
		return fmt.Errorf("enter an age between 0 and 130")
	}
	return nil
}

func validateNumberIn(min, max int) func(string) error {
	return func(s string) error {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return fmt.Errorf("enter a whole number")
		}
		if n < min || n > max {
			return fmt.Errorf("enter a number between %d and %d", min, max)
		}
		return nil
	}
}

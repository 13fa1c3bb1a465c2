package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/folio/internal/cli/formatter"
	"github.com/alexanderramin/folio/internal/domain"
	"github.com/alexanderramin/folio/internal/draft"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// folioHuhTheme returns a custom huh theme using the Gruvbox palette.
func folioHuhTheme() *huh.Theme {
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
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(formatter.ColorRed)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// wizardValues is the string-typed form state behind the draft wizard.
// team is indexed in domain.Stages order.
type wizardValues struct {
	name       string
	subject    domain.Subject
	complexity domain.Complexity
	books      string
	pages      string
	team       []string
}

func wizardValuesFrom(d *draft.Draft) *wizardValues {
	p, t := d.Project(), d.Team()
	v := &wizardValues{
		name:       p.Name,
		subject:    p.Subject,
		complexity: p.Complexity,
		books:      strconv.Itoa(p.NumberOfBooks),
		pages:      strconv.Itoa(p.PagesPerBook),
		team:       make([]string, len(domain.Stages)),
	}
	for i, s := range domain.Stages {
		v.team[i] = strconv.Itoa(t.Headcount(s.ID))
	}
	return v
}

// apply writes the form values back through the draft mutators, so tier
// switching and clamping behave as they do for flags.
func (v *wizardValues) apply(d *draft.Draft) error {
	books, err := parseAtMost(v.books, domain.MaxBooks)
	if err != nil {
		return fmt.Errorf("books: %w", err)
	}
	pages, err := parseAtMost(v.pages, domain.MaxPagesPerBook)
	if err != nil {
		return fmt.Errorf("pages: %w", err)
	}

	d.SetName(strings.TrimSpace(v.name))
	d.SetSubject(v.subject)
	d.SetComplexity(v.complexity)
	d.SetBooks(books)
	d.SetPages(pages)
	for i, s := range domain.Stages {
		n, err := parsePositive(v.team[i])
		if err != nil {
			return fmt.Errorf("%s: %w", strings.ToLower(s.Role), err)
		}
		d.SetHeadcount(s.ID, n)
	}
	return nil
}

func parsePositive(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("enter a whole number")
	}
	if n < 1 {
		return 0, fmt.Errorf("must be at least 1")
	}
	return n, nil
}

func parseAtMost(s string, limit int) (int, error) {
	n, err := parsePositive(s)
	if err != nil {
		return 0, err
	}
	if n > limit {
		return 0, fmt.Errorf("must be at most %d", limit)
	}
	return n, nil
}

func validatePositive(s string) error {
	_, err := parsePositive(s)
	return err
}

func validateAtMost(limit int) func(string) error {
	return func(s string) error {
		_, err := parseAtMost(s, limit)
		return err
	}
}

func newDraftForm(v *wizardValues) *huh.Form {
	subjects := make([]huh.Option[domain.Subject], len(domain.Subjects))
	for i, s := range domain.Subjects {
		subjects[i] = huh.NewOption(string(s), s)
	}

	team := make([]huh.Field, len(domain.Stages))
	for i, s := range domain.Stages {
		team[i] = huh.NewInput().
			Title(s.Role).
			Description(s.Name).
			Value(&v.team[i]).
			Validate(validatePositive)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Collection name").
				Value(&v.name),
			huh.NewSelect[domain.Subject]().
				Title("Subject").
				Options(subjects...).
				Value(&v.subject),
			huh.NewSelect[domain.Complexity]().
				Title("Complexity").
				Description("Switches to the matching rate preset unless rates were customized").
				Options(
					huh.NewOption("Simple", domain.ComplexitySimple),
					huh.NewOption("Complex", domain.ComplexityComplex),
				).
				Value(&v.complexity),
			huh.NewInput().
				Title("Number of books").
				Value(&v.books).
				Validate(validateAtMost(domain.MaxBooks)),
			huh.NewInput().
				Title("Pages per book").
				Value(&v.pages).
				Validate(validateAtMost(domain.MaxPagesPerBook)),
		),
		huh.NewGroup(team...).Title("Team"),
	).WithTheme(folioHuhTheme()).WithShowHelp(false)
}

// runDraftWizard lets the user edit d in a terminal form.
func runDraftWizard(d *draft.Draft) error {
	v := wizardValuesFrom(d)
	if err := newDraftForm(v).Run(); err != nil {
		return err
	}
	return v.apply(d)
}

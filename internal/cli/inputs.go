package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/alexanderramin/folio/internal/domain"
	"github.com/alexanderramin/folio/internal/draft"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// inputFlags are the estimate inputs shared by `estimate` and `advise`.
type inputFlags struct {
	name        string
	subject     string
	complexity  string
	books       int
	pages       int
	team        map[string]int
	rates       map[string]string
	ratesFile   string
	profile     string
	interactive bool
}

func (f *inputFlags) register(cmd *cobra.Command) {
	p := draft.New().Project()
	subjects := make([]string, len(domain.Subjects))
	for i, s := range domain.Subjects {
		subjects[i] = string(s)
	}

	fs := cmd.Flags()
	fs.StringVar(&f.name, "name", p.Name, "Collection name")
	fs.StringVar(&f.subject, "subject", string(p.Subject), "Subject: "+strings.Join(subjects, ", "))
	fs.StringVar(&f.complexity, "complexity", string(p.Complexity), "Complexity tier: simple or complex")
	fs.IntVar(&f.books, "books", p.NumberOfBooks, "Number of books")
	fs.IntVar(&f.pages, "pages", p.PagesPerBook, "Pages per book")
	fs.StringToIntVar(&f.team, "team", nil, "People per stage, e.g. content=2,design=1")
	addRateFlags(fs, &f.rates, &f.ratesFile)
	fs.StringVar(&f.profile, "profile", "", "Saved rate profile to apply")
	fs.BoolVarP(&f.interactive, "interactive", "i", false, "Fill in the inputs with an interactive form")
	cmd.MarkFlagsMutuallyExclusive("rates-file", "profile")
}

// buildDraft applies the flags to a default draft: project fields first so
// the tier preset is in place, then a profile or rates file, then
// individual rate overrides, then headcounts.
func (f *inputFlags) buildDraft(ctx context.Context, app *App) (*draft.Draft, error) {
	d := draft.New()
	d.SetName(f.name)

	subject, err := domain.ParseSubject(f.subject)
	if err != nil {
		return nil, err
	}
	d.SetSubject(subject)

	complexity, err := domain.ParseComplexity(f.complexity)
	if err != nil {
		return nil, err
	}
	d.SetComplexity(complexity)
	if f.books > domain.MaxBooks {
		return nil, fmt.Errorf("--books must be at most %d, got %d", domain.MaxBooks, f.books)
	}
	if f.pages > domain.MaxPagesPerBook {
		return nil, fmt.Errorf("--pages must be at most %d, got %d", domain.MaxPagesPerBook, f.pages)
	}
	d.SetBooks(f.books)
	d.SetPages(f.pages)

	switch {
	case f.profile != "":
		if app.Profiles == nil {
			return nil, errProfilesUnavailable
		}
		p, err := app.Profiles.Get(ctx, f.profile)
		if err != nil {
			return nil, fmt.Errorf("loading profile %q: %w", f.profile, err)
		}
		d.ApplyRates(p.Rates)
	case f.ratesFile != "":
		rates, err := loadRatesFile(f.ratesFile, d.Rates())
		if err != nil {
			return nil, err
		}
		d.ApplyRates(rates)
	}

	rates, err := applyRateOverrides(d.Rates(), f.rates)
	if err != nil {
		return nil, err
	}
	if rates != d.Rates() {
		d.ApplyRates(rates)
	}

	for _, k := range sortedKeys(f.team) {
		id, ok := domain.ParseStageID(k)
		if !ok {
			return nil, unknownStage(k)
		}
		d.SetHeadcount(id, f.team[k])
	}

	return d, nil
}

// loadRatesFile decodes a YAML rate table on top of base. Fields the file
// omits keep their base value; unknown fields are rejected.
func loadRatesFile(path string, base domain.RateConfig) (domain.RateConfig, error) {
	file, err := os.Open(path)
	if err != nil {
		return domain.RateConfig{}, fmt.Errorf("opening rates file: %w", err)
	}
	defer file.Close()

	rates := base
	dec := yaml.NewDecoder(file)
	dec.KnownFields(true)
	if err := dec.Decode(&rates); err != nil && !errors.Is(err, io.EOF) {
		return domain.RateConfig{}, fmt.Errorf("parsing rates file %s: %w", path, err)
	}
	if err := rates.Validate(); err != nil {
		return domain.RateConfig{}, fmt.Errorf("rates file %s: %w", path, err)
	}
	return rates, nil
}

// applyRateOverrides sets each stage=value pair on base.
func applyRateOverrides(base domain.RateConfig, overrides map[string]string) (domain.RateConfig, error) {
	rates := base
	for _, k := range sortedKeys(overrides) {
		id, ok := domain.ParseStageID(k)
		if !ok {
			return domain.RateConfig{}, unknownStage(k)
		}
		v, err := strconv.ParseFloat(overrides[k], 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return domain.RateConfig{}, fmt.Errorf("invalid rate %q for %s", overrides[k], k)
		}
		if v < 0 {
			return domain.RateConfig{}, fmt.Errorf("rate for %s must not be negative", k)
		}
		rates = rates.WithRate(id, v)
	}
	return rates, nil
}

// addRateFlags registers --rate and --rates-file on fs.
func addRateFlags(fs *pflag.FlagSet, overrides *map[string]string, ratesFile *string) {
	fs.StringToStringVar(overrides, "rate", nil, "Rate overrides per stage, e.g. design=10,final=0.5")
	fs.StringVar(ratesFile, "rates-file", "", "YAML file with rate overrides")
}

func unknownStage(k string) error {
	ids := make([]string, len(domain.Stages))
	for i, s := range domain.Stages {
		ids[i] = string(s.ID)
	}
	return fmt.Errorf("unknown stage %q (want one of %s)", k, strings.Join(ids, ", "))
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

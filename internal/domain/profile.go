package domain

import (
	"fmt"
	"strings"
	"time"
)

// RateProfile is a named, saved rate table that can be applied to a draft
// instead of a tier preset.
type RateProfile struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	BaseComplexity Complexity `json:"baseComplexity"`
	Rates          RateConfig `json:"rates"`
	Notes          string     `json:"notes,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

// Validate checks the profile name and rates.
func (p *RateProfile) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("profile name is required")
	}
	if _, err := ParseComplexity(string(p.BaseComplexity)); err != nil {
		return err
	}
	return p.Rates.Validate()
}

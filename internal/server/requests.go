package server

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/alexanderramin/folio/internal/advisor"
	"github.com/alexanderramin/folio/internal/domain"
	"github.com/go-playground/validator/v10"
)

// EstimateRequest is the body of POST /api/estimate. Rates default to the
// preset of the project's complexity.
type EstimateRequest struct {
	Project *domain.ProjectConfig `json:"project" validate:"required"`
	Team    *domain.TeamConfig    `json:"team" validate:"required"`
	Rates   *domain.RateConfig    `json:"rates,omitempty"`
}

func (e *EstimateRequest) Bind(*http.Request) error {
	if e.Project != nil {
		e.Project.Complexity = domain.Complexity(strings.ToLower(string(e.Project.Complexity)))
	}
	return nil
}

// AdviceRequest is the body of POST /api/advisor.
type AdviceRequest struct {
	advisor.Request
}

func (a *AdviceRequest) Bind(*http.Request) error {
	return a.Request.Validate()
}

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// describeValidation renders validator errors as "field: rule" pairs using
// JSON field names.
func describeValidation(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := fe.Namespace()
		if _, rest, ok := strings.Cut(field, "."); ok {
			field = rest
		}
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		parts = append(parts, fmt.Sprintf("%s: %s", field, rule))
	}
	return "invalid request: " + strings.Join(parts, ", ")
}

package server

import (
	"net/http"

	"github.com/alexanderramin/folio/internal/domain"
	"github.com/go-chi/render"
)

// ErrReply is the body of every non-2xx JSON response.
type ErrReply struct {
	HTTPStatusCode int    `json:"-"`
	Message        string `json:"error"`
}

func (e *ErrReply) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.HTTPStatusCode)
	return nil
}

func errReply(status int, msg string) *ErrReply {
	return &ErrReply{HTTPStatusCode: status, Message: msg}
}

type AdviceReply struct {
	Advice string `json:"advice"`
}

func (AdviceReply) Render(http.ResponseWriter, *http.Request) error { return nil }

type EstimateReply struct {
	domain.CalculationResult
}

func (EstimateReply) Render(http.ResponseWriter, *http.Request) error { return nil }

// PresetsReply maps each complexity tier to its default rates.
type PresetsReply map[domain.Complexity]domain.RateConfig

func (PresetsReply) Render(http.ResponseWriter, *http.Request) error { return nil }

type StagesReply struct {
	Stages []domain.Stage `json:"stages"`
}

func (StagesReply) Render(http.ResponseWriter, *http.Request) error { return nil }

type ProfileReply struct {
	domain.RateProfile
}

func (ProfileReply) Render(http.ResponseWriter, *http.Request) error { return nil }

type ProfilesReply struct {
	Profiles []domain.RateProfile `json:"profiles"`
}

func (ProfilesReply) Render(http.ResponseWriter, *http.Request) error { return nil }

type HealthReply struct {
	Status string `json:"status"`
}

func (HealthReply) Render(http.ResponseWriter, *http.Request) error { return nil }

package server

import (
	"errors"
	"net/http"

	"github.com/alexanderramin/folio/internal/advisor"
	"github.com/alexanderramin/folio/internal/domain"
	"github.com/alexanderramin/folio/internal/draft"
	"github.com/alexanderramin/folio/internal/repository"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"go.uber.org/zap"
)

const (
	outcomeSuccess     = "success"
	outcomeRateLimited = "rate_limited"
	outcomeBadRequest  = "bad_request"

	rateLimitedMessage = "Too many advice requests. Please wait a moment and try again."
)

func (s *Server) handleEstimate(w http.ResponseWriter, r *http.Request) {
	req := new(EstimateRequest)
	if err := render.Bind(r, req); err != nil {
		_ = render.Render(w, r, errReply(http.StatusBadRequest, "Invalid request body."))
		return
	}
	if err := s.validate.Struct(req); err != nil {
		_ = render.Render(w, r, errReply(http.StatusBadRequest, describeValidation(err)))
		return
	}
	if req.Rates != nil {
		if err := req.Rates.Validate(); err != nil {
			_ = render.Render(w, r, errReply(http.StatusBadRequest, "invalid request: "+err.Error()))
			return
		}
	}

	result := draft.FromConfig(*req.Project, *req.Team, req.Rates).Result()
	s.recorder.ObserveEstimate(req.Project.Complexity, result)
	_ = render.Render(w, r, EstimateReply{CalculationResult: result})
}

func (s *Server) handleAdvice(w http.ResponseWriter, r *http.Request) {
	req := new(AdviceRequest)
	if err := render.Bind(r, req); err != nil {
		s.recorder.ObserveAdvice(outcomeBadRequest)
		_ = render.Render(w, r, errReply(http.StatusBadRequest, advisor.UserMessage(advisor.ErrMissingData)))
		return
	}
	if !s.limiter.Allow() {
		s.recorder.ObserveAdvice(outcomeRateLimited)
		_ = render.Render(w, r, errReply(http.StatusTooManyRequests, rateLimitedMessage))
		return
	}

	advice, err := s.advisor.Advise(r.Context(), req.Request)
	if err != nil {
		kind := advisor.Classify(err)
		s.recorder.ObserveAdvice(kind.String())
		s.log.Named("advisor").Warn("advice request failed",
			zap.Stringer("kind", kind),
			zap.Error(err),
		)
		_ = render.Render(w, r, errReply(adviceStatus(kind), advisor.UserMessage(err)))
		return
	}
	s.recorder.ObserveAdvice(outcomeSuccess)
	_ = render.Render(w, r, AdviceReply{Advice: advice})
}

// adviceStatus maps a failure kind to the response code. A credential
// problem is a server misconfiguration, everything else is a bad gateway.
func adviceStatus(kind advisor.FailureKind) int {
	switch kind {
	case advisor.FailureCredential:
		return http.StatusServiceUnavailable
	default:
		return http.StatusBadGateway
	}
}

func (s *Server) handlePresets(w http.ResponseWriter, r *http.Request) {
	_ = render.Render(w, r, PresetsReply{
		domain.ComplexitySimple:  domain.RatesSimple,
		domain.ComplexityComplex: domain.RatesComplex,
	})
}

func (s *Server) handleStages(w http.ResponseWriter, r *http.Request) {
	_ = render.Render(w, r, StagesReply{Stages: domain.Stages})
}

func (s *Server) handleListProfiles(w http.ResponseWriter, r *http.Request) {
	profiles, err := s.profiles.List(r.Context())
	if err != nil {
		s.log.Named("profiles").Error("listing profiles", zap.Error(err))
		_ = render.Render(w, r, errReply(http.StatusInternalServerError, "Profiles could not be loaded."))
		return
	}
	if profiles == nil {
		profiles = []domain.RateProfile{}
	}
	_ = render.Render(w, r, ProfilesReply{Profiles: profiles})
}

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	profile, err := s.profiles.Get(r.Context(), name)
	if errors.Is(err, repository.ErrNotFound) {
		_ = render.Render(w, r, errReply(http.StatusNotFound, "Profile not found."))
		return
	}
	if err != nil {
		s.log.Named("profiles").Error("loading profile", zap.String("name", name), zap.Error(err))
		_ = render.Render(w, r, errReply(http.StatusInternalServerError, "Profile could not be loaded."))
		return
	}
	_ = render.Render(w, r, ProfileReply{RateProfile: *profile})
}

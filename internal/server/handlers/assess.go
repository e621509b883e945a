package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/domainscout/domainscout/internal/core"
	"github.com/domainscout/domainscout/internal/server/middleware"
)

const maxNamesPerRequest = 10

// Assessor runs availability checks for candidate names.
type Assessor interface {
	AssessName(ctx context.Context, name string) *core.NameReport
}

// AssessRequest is the body for POST /v1/assessments.
type AssessRequest struct {
	Names []string `json:"names"`
}

// AssessResponse carries the per-name reports.
type AssessResponse struct {
	Reports []*core.NameReport `json:"reports"`
}

// Assess serves synchronous availability assessments.
type Assess struct {
	Engine Assessor
	Logger *zap.Logger
}

func (h *Assess) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req AssessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	names := make([]string, 0, len(req.Names))
	for _, name := range req.Names {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		names = append(names, name)
	}

	if len(names) == 0 {
		RespondError(w, r, http.StatusBadRequest, "at least one name is required")
		return
	}
	if len(names) > maxNamesPerRequest {
		RespondError(w, r, http.StatusBadRequest, "too many names in one request")
		return
	}

	reports := make([]*core.NameReport, 0, len(names))
	for _, name := range names {
		if r.Context().Err() != nil {
			break
		}
		reports = append(reports, h.Engine.AssessName(r.Context(), name))
	}

	if h.Logger != nil {
		h.Logger.Info("assessment request served",
			zap.Int("names", len(names)),
			zap.String("request_id", middleware.GetRequestID(r.Context())))
	}

	respondJSON(w, http.StatusOK, AssessResponse{Reports: reports})
}

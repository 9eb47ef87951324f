package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gomarkdown/markdown"
	mdhtml "github.com/gomarkdown/markdown/html"
	mdparser "github.com/gomarkdown/markdown/parser"

	"csvprof/domain/core"
	"csvprof/domain/report"
	"csvprof/domain/table"
	apperrors "csvprof/internal/errors"
)

// processRequest is the body of POST /api/v1/process. Unset options fall back
// to the server defaults.
type processRequest struct {
	CSV     string          `json:"csv"`
	Options *optionsPayload `json:"options,omitempty"`
}

type optionsPayload struct {
	MaxSizeBytes    *int  `json:"max_size_bytes,omitempty"`
	PreviewRowCount *int  `json:"preview_row_count,omitempty"`
	AdvancedStats   *bool `json:"advanced_stats,omitempty"`
}

type processResponse struct {
	Handle string                   `json:"handle,omitempty"`
	Report *report.ProcessingReport `json:"report"`
}

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleProcess(w http.ResponseWriter, r *http.Request) {
	var req processRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, apperrors.InvalidInput("request body must be JSON"))
		return
	}

	opts := s.resolveOptions(req.Options)
	rep, handle, err := s.processor.Process(req.CSV, opts)
	if err != nil {
		s.writeError(w, statusFor(err), toAppError(err))
		return
	}

	writeJSON(w, http.StatusOK, processResponse{Handle: handle.String(), Report: rep})
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	handle, err := core.ParseTableHandle(chi.URLParam(r, "handle"))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, apperrors.InvalidInput(err.Error()))
		return
	}

	summary, err := s.processor.Summarize(handle)
	if err != nil {
		s.writeError(w, statusFor(err), toAppError(err))
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	rep, err := s.storedReport(r)
	if err != nil {
		s.writeError(w, statusFor(err), toAppError(err))
		return
	}
	writeJSON(w, http.StatusOK, rep)
}

func (s *Server) handleReportHTML(w http.ResponseWriter, r *http.Request) {
	rep, err := s.storedReport(r)
	if err != nil {
		s.writeError(w, statusFor(err), toAppError(err))
		return
	}

	p := mdparser.NewWithExtensions(mdparser.CommonExtensions)
	doc := p.Parse([]byte(rep.Markdown()))
	renderer := mdhtml.NewRenderer(mdhtml.RendererOptions{Flags: mdhtml.CommonFlags | mdhtml.CompletePage})

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(markdown.Render(doc, renderer))
}

func (s *Server) storedReport(r *http.Request) (*report.ProcessingReport, error) {
	handle, err := core.ParseTableHandle(chi.URLParam(r, "handle"))
	if err != nil {
		return nil, core.ErrHandleNotFound
	}
	return s.processor.Report(handle)
}

func (s *Server) resolveOptions(payload *optionsPayload) table.ProcessOptions {
	opts := s.defaults
	if payload == nil {
		return opts
	}
	if payload.MaxSizeBytes != nil {
		opts.MaxSizeBytes = *payload.MaxSizeBytes
	}
	if payload.PreviewRowCount != nil {
		opts.PreviewRows = *payload.PreviewRowCount
	}
	if payload.AdvancedStats != nil {
		opts.AdvancedStats = *payload.AdvancedStats
	}
	return opts
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	s.log.Warn("request failed: %v", err)
	writeJSON(w, status, errorResponse{Error: err.Error(), Code: apperrors.GetCode(err)})
}

// toAppError attaches the API error code matching the domain error
func toAppError(err error) error {
	switch {
	case errors.Is(err, core.ErrHandleNotFound):
		return apperrors.New(apperrors.CodeNotFound, err.Error())
	case errors.Is(err, core.ErrInvalidOptions):
		return apperrors.ConfigInvalid(err.Error())
	default:
		return apperrors.Wrap(err, "internal error")
	}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, core.ErrHandleNotFound):
		return http.StatusNotFound
	case errors.Is(err, core.ErrInvalidOptions):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

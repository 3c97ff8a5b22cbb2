package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/spigell/hh-resume/internal/input"
	"github.com/spigell/hh-resume/internal/logger"
	"github.com/spigell/hh-resume/internal/pdf"
	"github.com/spigell/hh-resume/internal/render"
	"github.com/spigell/hh-resume/internal/resume"
)

// Request is the body of every POST endpoint.
type Request struct {
	Text     string `json:"text"`
	Template string `json:"template,omitempty"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}

type coverLetterResponse struct {
	CoverLetter string `json:"cover_letter"`
}

type healthResponse struct {
	Status    string   `json:"status"`
	Templates []string `json:"templates"`
}

var errMalformedBody = errors.New("malformed request body")

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	data, err := ui.ReadFile("ui/index.html")
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(data)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Templates: s.renderer.Names()})
}

func (s *Server) handleTemplates(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.renderer.Names())
}

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	_, record, err := s.parseRequest(w, r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func (s *Server) handleCoverLetter(w http.ResponseWriter, r *http.Request) {
	_, record, err := s.parseRequest(w, r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, coverLetterResponse{CoverLetter: resume.CoverLetter(record)})
}

func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	req, record, err := s.parseRequest(w, r)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	html, err := s.renderer.Render(record, req.Template)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	io.WriteString(w, html)
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	req, record, err := s.parseRequest(w, r)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	html, err := s.renderer.Render(record, req.Template)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	if s.printer == nil {
		s.fail(w, r, pdf.ErrRendererUnavailable)
		return
	}

	doc, err := s.printer.Print(r.Context(), html, s.renderer.Dir())
	if err != nil {
		s.fail(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="resume.pdf"`)
	w.Header().Set("Content-Length", fmt.Sprint(len(doc)))
	w.Write(doc)
}

func (s *Server) parseRequest(w http.ResponseWriter, r *http.Request) (Request, *resume.Record, error) {
	var req Request

	body := http.MaxBytesReader(w, r.Body, MaxBodyBytes)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		return req, nil, fmt.Errorf("%w: %v", errMalformedBody, err)
	}

	text, err := input.Load(input.Source{Name: "text", Value: req.Text})
	if err != nil {
		return req, nil, err
	}

	if req.Template != "" && !s.renderer.Has(req.Template) {
		return req, nil, &render.TemplateError{Message: fmt.Sprintf("%q", req.Template), Cause: render.ErrUnknownTemplate}
	}

	s.logger.Debug("parsing request text",
		zap.String("preview", logger.Preview(text, logger.PreviewLimit)),
		zap.Int("length", len(text)),
	)

	return req, s.parser.Parse(text), nil
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)

	fields := []zap.Field{
		zap.String("request_id", middleware.GetReqID(r.Context())),
		zap.Int("status", status),
		zap.Error(err),
	}
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", fields...)
	} else {
		s.logger.Warn("request rejected", fields...)
	}

	detail := err.Error()
	if errors.Is(err, input.ErrEmptyText) {
		detail = "Empty text"
	}
	writeError(w, status, detail)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, input.ErrEmptyText), errors.Is(err, errMalformedBody):
		return http.StatusBadRequest
	case errors.Is(err, render.ErrUnknownTemplate):
		return http.StatusNotFound
	case errors.Is(err, pdf.ErrRendererUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.Encode(v)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, errorResponse{Detail: strings.TrimSpace(detail)})
}

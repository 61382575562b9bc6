// ABOUTME: Web UI server with embedded templates
// ABOUTME: Serves the dashboard, FullCalendar JSON feed, iCalendar feed, and override actions
package web

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"

	"github.com/Sankar2i/calendar/ical"
	"github.com/Sankar2i/calendar/models"
	"github.com/Sankar2i/calendar/store"
	"github.com/Sankar2i/calendar/viz"
)

//go:embed templates/*
var templatesFS embed.FS

// WarningHeader carries the scheduler warning on JSON event responses.
const WarningHeader = "X-Schedule-Warning"

type Server struct {
	store     *store.Store
	templates *template.Template
	logger    zerolog.Logger
	now       func() time.Time
}

func NewServer(s *store.Store, logger zerolog.Logger) (*Server, error) {
	funcMap := template.FuncMap{
		"indicator": func(st models.Status) string { return viz.Indicator(st) },
		"colors": func(st models.Status) template.CSS {
			bg, border := st.Colors()
			return template.CSS(fmt.Sprintf("background:%s;border-color:%s;color:%s", bg, border, models.ColorEventText))
		},
	}

	tmpl, err := template.New("").Funcs(funcMap).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	return &Server{
		store:     s,
		templates: tmpl,
		logger:    logger,
		now:       time.Now,
	}, nil
}

// Handler returns the routed handler with request logging.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleDashboard)
	mux.HandleFunc("GET /calendar", s.handleCalendar)
	mux.HandleFunc("GET /calendar.ics", s.handleICS)
	mux.HandleFunc("GET /api/events", s.handleEvents)
	mux.HandleFunc("GET /api/notifications", s.handleNotifications)
	mux.HandleFunc("GET /api/companies", s.handleCompanies)
	mux.HandleFunc("POST /api/companies/{id}/override", s.handleOverride)
	mux.HandleFunc("DELETE /api/companies/{id}/override", s.handleClearOverride)
	mux.HandleFunc("POST /api/companies/{id}/communications", s.handleLogCommunication)

	var h http.Handler = mux
	h = hlog.AccessHandler(func(r *http.Request, status, size int, d time.Duration) {
		hlog.FromRequest(r).Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", status).
			Int("size", size).
			Dur("duration", d).
			Msg("request")
	})(h)
	h = hlog.NewHandler(s.logger)(h)
	return h
}

// Start serves on port until ctx is cancelled.
func (s *Server) Start(ctx context.Context, port int) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", "http://localhost"+srv.Addr).Msg("starting web server")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	stats := viz.GenerateDashboardStats(s.store.Schedule())

	data := map[string]interface{}{
		"Stats":           stats,
		"Title":           "Dashboard",
		"ContentTemplate": "dashboard-content",
	}

	s.renderTemplate(w, r, "layout.html", data)
}

func (s *Server) handleCalendar(w http.ResponseWriter, r *http.Request) {
	sched := s.store.Schedule()

	data := map[string]interface{}{
		"Today":           sched.Today,
		"Warning":         sched.Result.Warning,
		"Counts":          sched.Counts,
		"Title":           "Calendar",
		"ContentTemplate": "calendar-content",
	}

	s.renderTemplate(w, r, "layout.html", data)
}

func (s *Server) renderTemplate(w http.ResponseWriter, r *http.Request, name string, data interface{}) {
	if err := s.templates.ExecuteTemplate(w, name, data); err != nil {
		hlog.FromRequest(r).Error().Err(err).Str("template", name).Msg("template error")
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	res := s.store.Schedule().Result
	if res.Warning != "" {
		w.Header().Set(WarningHeader, res.Warning)
	}
	writeJSON(w, http.StatusOK, res.Events)
}

type notificationsResponse struct {
	Overdue  int    `json:"overdue"`
	DueToday int    `json:"due_today"`
	Total    int    `json:"total"`
	Warning  string `json:"warning,omitempty"`
}

func (s *Server) handleNotifications(w http.ResponseWriter, r *http.Request) {
	sched := s.store.Schedule()
	writeJSON(w, http.StatusOK, notificationsResponse{
		Overdue:  sched.Counts.Overdue,
		DueToday: sched.Counts.DueToday,
		Total:    sched.Counts.Total,
		Warning:  sched.Result.Warning,
	})
}

func (s *Server) handleCompanies(w http.ResponseWriter, r *http.Request) {
	companies := s.store.Companies()
	if companies == nil {
		companies = []models.Company{}
	}
	writeJSON(w, http.StatusOK, companies)
}

func (s *Server) handleICS(w http.ResponseWriter, r *http.Request) {
	events := s.store.Schedule().Result.Events
	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	if err := ical.Encode(w, events, s.now()); err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("failed to encode calendar")
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (s *Server) handleOverride(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := s.store.OverrideHighlight(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleClearOverride(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := s.store.ClearOverride(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type logRequest struct {
	Type  string `json:"type"`
	Date  string `json:"date"`
	Notes string `json:"notes"`
}

func (s *Server) handleLogCommunication(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req logRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.Date == "" {
		req.Date = s.store.Today()
	}

	updated, err := s.store.LogCommunication(r.Context(), id, models.Communication{
		Type:  req.Type,
		Date:  req.Date,
		Notes: req.Notes,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, updated)
}

func pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		http.Error(w, "invalid company id", http.StatusBadRequest)
		return uuid.Nil, false
	}
	return id, true
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, store.ErrValidation):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Package server exposes the analyzer over HTTP. A save runs the analysis and, only when it
// succeeds, replaces the stored transcript and report.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/AnmolTwari/Ai-Debate-Analyzer/debate"
	"github.com/AnmolTwari/Ai-Debate-Analyzer/orchestrator"
	"github.com/AnmolTwari/Ai-Debate-Analyzer/store"
)

// ReportStore is the persistence the handlers need.
type ReportStore interface {
	SaveTranscript(t *orchestrator.Transcript) error
	LatestTranscript() (*orchestrator.Transcript, error)
	SaveReport(rep *debate.Report, analyzedFile string) (string, error)
	LatestReport() (*store.Stored, error)
}

// Server runs one analysis pipeline per save request.
type Server struct {
	settings  Settings
	providers orchestrator.Providers
	store     ReportStore
	log       logrus.FieldLogger
	clock     func() time.Time
	pipeOpts  []orchestrator.Option

	mu        sync.Mutex
	server    *http.Server
	listener  net.Listener
	startTime time.Time
}

type Option func(*Server)

func WithLogger(l logrus.FieldLogger) Option {
	return func(s *Server) {
		if l != nil {
			s.log = l
		}
	}
}

// WithClock allows tests to control report timestamps.
func WithClock(clock func() time.Time) Option {
	return func(s *Server) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// WithPipelineOptions forwards extra options (seed, picker) to every pipeline.
func WithPipelineOptions(opts ...orchestrator.Option) Option {
	return func(s *Server) { s.pipeOpts = append(s.pipeOpts, opts...) }
}

func New(settings Settings, providers orchestrator.Providers, st ReportStore, opts ...Option) *Server {
	discard := logrus.New()
	discard.SetOutput(io.Discard)
	s := &Server{
		settings:  settings,
		providers: providers,
		store:     st,
		log:       discard,
		clock:     func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Handler returns the routed API.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/api/save-transcript", s.handleSaveTranscript)
	mux.HandleFunc("/api/analyze-transcript", s.handleAnalyzeTranscript)
	mux.HandleFunc("/api/transcript", s.handleTranscript)
	return mux
}

// Start binds the listener and serves in the background.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener != nil {
		return errors.New("server: already started")
	}
	addr := s.settings.Address()
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("server: listen %s: %w", addr, err)
	}
	srv := &http.Server{
		Handler:      s.Handler(),
		ReadTimeout:  s.settings.ReadTimeout,
		WriteTimeout: s.settings.WriteTimeout,
		IdleTimeout:  s.settings.IdleTimeout,
	}
	if ctx != nil {
		srv.BaseContext = func(net.Listener) context.Context { return ctx }
	}
	s.listener = listener
	s.server = srv
	s.startTime = time.Now()
	go func() {
		if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.WithError(err).Error("serve failed")
		}
	}()
	s.log.WithField("addr", listener.Addr().String()).Info("http server listening")
	return nil
}

// Shutdown stops accepting connections and waits for in-flight analyses.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.server == nil {
		return nil
	}
	if err := s.server.Shutdown(ctx); err != nil {
		return err
	}
	s.server = nil
	s.listener = nil
	return nil
}

// Addr returns the bound address once started.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

type healthResponse struct {
	Status        string `json:"status"`
	UptimeSeconds int64  `json:"uptime_seconds"`
}

type saveRequest struct {
	Transcript []orchestrator.RawUtterance `json:"transcript"`
	Topic      string                      `json:"topic"`
}

type saveResponse struct {
	Message      string `json:"message"`
	ReportID     string `json:"report_id"`
	AnalyzedFile string `json:"analyzed_file,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", http.MethodGet+", "+http.MethodHead)
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	s.mu.Lock()
	var uptime int64
	if !s.startTime.IsZero() {
		uptime = int64(time.Since(s.startTime).Seconds())
	}
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", UptimeSeconds: uptime})
}

func (s *Server) handleSaveTranscript(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.settings.maxBody()))
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeError(w, http.StatusRequestEntityTooLarge, "payload exceeds limit")
			return
		}
		writeError(w, http.StatusBadRequest, "unable to read body")
		return
	}
	var req saveRequest
	if err := json.Unmarshal(body, &req); err != nil || len(req.Transcript) == 0 {
		writeError(w, http.StatusBadRequest, "Transcript empty or invalid")
		return
	}
	utts, err := orchestrator.ParseTranscript(req.Transcript)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	opts := append([]orchestrator.Option{
		orchestrator.WithLogger(s.log),
		orchestrator.WithClock(s.clock),
	}, s.pipeOpts...)
	rep, err := orchestrator.NewPipeline(s.providers, opts...).Run(r.Context(), utts, req.Topic)
	if err != nil {
		s.writeRunError(w, err)
		return
	}

	if err := s.store.SaveTranscript(&orchestrator.Transcript{Topic: req.Topic, Utterances: utts}); err != nil {
		s.log.WithError(err).Error("save transcript")
		writeError(w, http.StatusInternalServerError, "could not save transcript")
		return
	}
	var analyzed string
	if s.settings.OutputsDir != "" {
		analyzed, err = orchestrator.Persist(s.settings.OutputsDir, rep, s.settings.ReportFormat)
		if err != nil {
			s.log.WithError(err).Error("write analyzed transcript")
			writeError(w, http.StatusInternalServerError, "could not write report")
			return
		}
	}
	id, err := s.store.SaveReport(rep, analyzed)
	if err != nil {
		s.log.WithError(err).Error("save report")
		writeError(w, http.StatusInternalServerError, "could not save report")
		return
	}
	s.log.WithFields(logrus.Fields{"report_id": id, "utterances": len(utts)}).Info("transcript analyzed")
	writeJSON(w, http.StatusOK, saveResponse{
		Message:      "Transcript saved and analyzed",
		ReportID:     id,
		AnalyzedFile: analyzed,
	})
}

func (s *Server) writeRunError(w http.ResponseWriter, err error) {
	var (
		inErr   *debate.InputError
		provErr *debate.ProviderError
	)
	switch {
	case errors.As(err, &inErr):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &provErr):
		s.log.WithError(err).WithField("capability", provErr.Capability).Warn("provider failed")
		writeError(w, http.StatusBadGateway, err.Error())
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		writeError(w, http.StatusServiceUnavailable, "analysis cancelled")
	default:
		s.log.WithError(err).Error("analysis failed")
		writeError(w, http.StatusInternalServerError, "analysis failed")
	}
}

func (s *Server) handleAnalyzeTranscript(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	got, err := s.store.LatestReport()
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "No analyzed transcript yet")
		return
	}
	if err != nil {
		s.log.WithError(err).Error("load report")
		writeError(w, http.StatusInternalServerError, "could not load report")
		return
	}
	w.Header().Set("X-Report-Id", got.ID)
	writeJSON(w, http.StatusOK, got.Report)
}

type transcriptResponse struct {
	Topic      string             `json:"topic,omitempty"`
	Transcript []debate.Utterance `json:"transcript"`
}

// handleTranscript returns the transcript behind the latest report.
func (s *Server) handleTranscript(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	t, err := s.store.LatestTranscript()
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "No transcript saved yet")
		return
	}
	if err != nil {
		s.log.WithError(err).Error("load transcript")
		writeError(w, http.StatusInternalServerError, "could not load transcript")
		return
	}
	writeJSON(w, http.StatusOK, transcriptResponse{Topic: t.Topic, Transcript: t.Utterances})
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

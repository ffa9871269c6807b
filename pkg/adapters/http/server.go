package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/aretw0/pergola"
	"github.com/aretw0/pergola/pkg/domain"
	"github.com/aretw0/pergola/pkg/templates"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Validator defines the validation core the server exposes.
type Validator interface {
	Validate(ctx context.Context, cfg *domain.Config, opts ...pergola.RunOption) (*pergola.Result, error)
}

// Server holds the HTTP handlers.
type Server struct {
	Validator Validator
	Streams   *StreamManager

	logger  *slog.Logger
	metrics http.Handler
}

// Option configures the HTTP server.
type Option func(*Server)

// WithLogger sets the logger for request diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithGatherer serves /metrics from g instead of the default registry.
func WithGatherer(g prometheus.Gatherer) Option {
	return func(s *Server) {
		s.metrics = promhttp.HandlerFor(g, promhttp.HandlerOpts{})
	}
}

// NewHandler creates a new HTTP handler for the validator.
func NewHandler(v Validator, opts ...Option) http.Handler {
	server := &Server{
		Validator: v,
		logger:    slog.Default(),
		metrics:   promhttp.Handler(),
	}
	for _, opt := range opts {
		opt(server)
	}
	server.Streams = NewStreamManager(server.logger)

	r := chi.NewRouter()
	r.Use(server.validateRequests)

	r.Post("/validate", server.Validate)
	r.Get("/templates", server.ListTemplates)
	r.Get("/templates/{businessType}", server.GetTemplate)
	r.Post("/detect", server.DetectTemplate)
	r.Get("/events", server.SubscribeEvents)
	r.Get("/health", server.GetHealth)
	r.Get("/info", server.GetInfo)
	r.Handle("/metrics", server.metrics)

	// Swagger UI
	r.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/yaml")
		w.Write(Spec())
	})
	r.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(swaggerHTML))
	})

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

const swaggerHTML = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>Pergola API Documentation</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui.css" />
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui-bundle.js" crossorigin></script>
<script>
    window.onload = () => {
    window.ui = SwaggerUIBundle({
        url: '/openapi.yaml',
        dom_id: '#swagger-ui',
    });
    };
</script>
</body>
</html>
`

// ValidateRequest is the body of POST /validate.
type ValidateRequest struct {
	Config map[string]any `json:"config"`

	// TemplateType selects a built-in template; Template supplies a custom one.
	// LockedIDs overrides the template's own locked ids when set.
	TemplateType string         `json:"template_type,omitempty"`
	Template     map[string]any `json:"template,omitempty"`
	LockedIDs    []string       `json:"locked_ids,omitempty"`
}

// validationEvent is the payload broadcast to /events subscribers.
type validationEvent struct {
	BusinessType string         `json:"business_type"`
	Report       *domain.Report `json:"report"`
}

// Validate handles the POST /validate request.
func (s *Server) Validate(w http.ResponseWriter, r *http.Request) {
	var body ValidateRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		s.logger.Warn("Validate: Invalid request body", "error", err)
		return
	}
	if body.Config == nil {
		http.Error(w, "Invalid request body: config is required", http.StatusBadRequest)
		return
	}

	opts, status, err := s.runOptions(body)
	if err != nil {
		http.Error(w, err.Error(), status)
		s.logger.Warn("Validate: Template rejected", "error", err)
		return
	}

	cfg, warnings := pergola.FromMap(body.Config)
	res, err := s.Validator.Validate(r.Context(), cfg, opts...)
	if err != nil {
		http.Error(w, fmt.Sprintf("Validate error: %v", err), http.StatusInternalServerError)
		s.logger.Error("Validate failed", "error", err)
		return
	}
	for _, warning := range warnings {
		res.Warnings = append(res.Warnings, warning.Error())
	}

	if data, err := json.Marshal(validationEvent{BusinessType: res.Config.BusinessType, Report: res.Report}); err == nil {
		s.Streams.Broadcast(res.Config.BusinessType, string(data))
	}

	writeJSON(w, s.logger, res)
}

func (s *Server) runOptions(body ValidateRequest) ([]pergola.RunOption, int, error) {
	var tpl *templates.Template
	switch {
	case body.Template != nil:
		data, err := json.Marshal(body.Template)
		if err != nil {
			return nil, http.StatusBadRequest, fmt.Errorf("invalid template: %w", err)
		}
		tpl, err = templates.Load(data)
		if err != nil {
			return nil, http.StatusBadRequest, err
		}
	case body.TemplateType != "":
		var err error
		tpl, err = templates.Get(body.TemplateType)
		if errors.Is(err, templates.ErrUnknownTemplate) {
			return nil, http.StatusNotFound, err
		}
		if err != nil {
			return nil, http.StatusInternalServerError, err
		}
	}

	if tpl == nil {
		if len(body.LockedIDs) > 0 {
			return nil, http.StatusBadRequest, errors.New("locked_ids requires a template")
		}
		return nil, http.StatusOK, nil
	}

	locked := tpl.Locked
	if body.LockedIDs != nil {
		locked = body.LockedIDs
	}
	return []pergola.RunOption{pergola.WithTemplate(tpl.Config, locked)}, http.StatusOK, nil
}

// ListTemplates handles the GET /templates request.
func (s *Server) ListTemplates(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.logger, templates.Types())
}

// GetTemplate handles the GET /templates/{businessType} request.
func (s *Server) GetTemplate(w http.ResponseWriter, r *http.Request) {
	tpl, err := templates.Get(chi.URLParam(r, "businessType"))
	if err != nil {
		if errors.Is(err, templates.ErrUnknownTemplate) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, fmt.Sprintf("Template error: %v", err), http.StatusInternalServerError)
		s.logger.Error("GetTemplate failed", "error", err)
		return
	}
	writeJSON(w, s.logger, tpl)
}

// DetectTemplate handles the POST /detect request.
func (s *Server) DetectTemplate(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Description string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Description == "" {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	detection, ok := templates.Detect(body.Description)
	if !ok {
		http.Error(w, "No template matches the description", http.StatusNotFound)
		return
	}
	writeJSON(w, s.logger, detection)
}

// SubscribeEvents handles the GET /events request (SSE).
func (s *Server) SubscribeEvents(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		s.logger.Error("SubscribeEvents: Streaming not supported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	topic := r.URL.Query().Get("business_type")
	s.logger.Info("SSE: Subscribing to validation events", "business_type", topic)

	ch, cancel := s.Streams.Subscribe(topic)
	defer cancel()

	fmt.Fprintf(w, "event: ping\ndata: connected\n\n")
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			s.logger.Info("SSE Client Disconnected")
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			fmt.Fprintf(w, "event: validation\ndata: %s\n\n", msg)
			flusher.Flush()
		}
	}
}

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.logger, map[string]string{"status": "ok"})
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.logger, map[string]string{
		"app":         "pergola-http",
		"version":     pergola.Version,
		"api_version": APIVersion(),
	})
}

func writeJSON(w http.ResponseWriter, logger *slog.Logger, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("Response encode failed", "error", err)
	}
}

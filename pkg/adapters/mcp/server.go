package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/pergola"
	"github.com/aretw0/pergola/pkg/domain"
	"github.com/aretw0/pergola/pkg/palette"
	"github.com/aretw0/pergola/pkg/schema"
	"github.com/aretw0/pergola/pkg/templates"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// ValidateResponse aligns with the OpenAPI schema and provides a unified structure across adapters.
type ValidateResponse struct {
	Config   *domain.Config `json:"config" jsonschema_description:"The validated configuration tree"`
	Report   *domain.Report `json:"report" jsonschema_description:"Per-stage change report"`
	Warnings []string       `json:"warnings,omitempty" jsonschema_description:"Input fields dropped while decoding"`
}

// Validator defines the validation core exposed over MCP.
type Validator interface {
	Validate(ctx context.Context, cfg *domain.Config, opts ...pergola.RunOption) (*pergola.Result, error)
}

// Server wraps the Validator and exposes it as an MCP Server.
type Server struct {
	validator Validator
	logger    *slog.Logger
	mcpServer *server.MCPServer
}

// Option configures the MCP server.
type Option func(*Server)

// WithLogger sets the logger for tool diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

var validateArgs = schema.Schema{
	"config": schema.String(),
}

// NewServer creates a new MCP Server instance.
func NewServer(v Validator, opts ...Option) *Server {
	s := &Server{
		validator: v,
		logger:    slog.Default(),
		mcpServer: server.NewMCPServer("pergola-mcp", pergola.Version),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.registerTools()
	s.registerResources()
	return s
}

// MCPServer returns the underlying protocol server.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	// Channel to listen for errors coming from the listener.
	serverErrors := make(chan error, 1)

	go func() {
		s.logger.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Info("Shutdown signal received, shutting down MCP server")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) registerTools() {
	// TOOL: validate_config
	validateTool := mcp.NewTool("validate_config",
		mcp.WithDescription("Validate and repair a generated dashboard configuration."),
		mcp.WithString("config", mcp.Required(), mcp.Description("The configuration as a JSON or YAML document")),
		mcp.WithString("template_type", mcp.Description("Business type of the built-in template whose locked components must survive (optional)")),
		mcp.WithString("locked_ids", mcp.Description("Comma-separated component ids overriding the template's locked set (optional)")),
		mcp.WithOutputSchema[ValidateResponse](),
	)
	s.mcpServer.AddTool(validateTool, mcp.NewStructuredToolHandler(s.handleValidate))

	// TOOL: get_template
	s.mcpServer.AddTool(mcp.NewTool("get_template",
		mcp.WithDescription("Get the built-in template for a business type."),
		mcp.WithString("business_type", mcp.Required(), mcp.Description("Business type, e.g. tattoo or nail_salon")),
		mcp.WithOutputSchema[templates.Template](),
	), mcp.NewStructuredToolHandler(s.handleGetTemplate))

	// TOOL: detect_template
	s.mcpServer.AddTool(mcp.NewTool("detect_template",
		mcp.WithDescription("Match a free-text business description to a built-in template."),
		mcp.WithString("description", mcp.Required(), mcp.Description("Business description")),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		description := request.GetString("description", "")
		detection, ok := templates.Detect(description)
		if !ok {
			return mcp.NewToolResultError("no template matches the description"), nil
		}
		jsonBytes, _ := json.Marshal(detection)
		return mcp.NewToolResultText(string(jsonBytes)), nil
	})
}

// Handler methods for structured tools

func (s *Server) handleValidate(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (ValidateResponse, error) {
	if err := schema.Validate(validateArgs, args); err != nil {
		return ValidateResponse{}, fmt.Errorf("invalid arguments: %w", err)
	}
	raw, _ := args["config"].(string)

	var opts []pergola.RunOption
	templateType, _ := args["template_type"].(string)
	if templateType != "" {
		tpl, err := templates.Get(templateType)
		if err != nil {
			return ValidateResponse{}, err
		}
		locked := tpl.Locked
		if ids, ok := args["locked_ids"].(string); ok && strings.TrimSpace(ids) != "" {
			locked = splitIDs(ids)
		}
		opts = append(opts, pergola.WithTemplate(tpl.Config, locked))
	}

	cfg, warnings, err := pergola.Decode([]byte(raw))
	if err != nil {
		s.logger.Warn("MCP Validate: Config rejected", "error", err, "size", len(raw))
		return ValidateResponse{}, fmt.Errorf("config rejected: %w", err)
	}

	res, err := s.validator.Validate(ctx, cfg, opts...)
	if err != nil {
		return ValidateResponse{}, fmt.Errorf("validate failed: %w", err)
	}

	out := ValidateResponse{Config: res.Config, Report: res.Report}
	for _, w := range warnings {
		out.Warnings = append(out.Warnings, w.Error())
	}
	return out, nil
}

func (s *Server) handleGetTemplate(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (templates.Template, error) {
	businessType, _ := args["business_type"].(string)
	tpl, err := templates.Get(businessType)
	if err != nil {
		return templates.Template{}, err
	}
	return *tpl, nil
}

func splitIDs(s string) []string {
	var out []string
	for _, id := range strings.Split(s, ",") {
		if id = strings.TrimSpace(id); id != "" {
			out = append(out, id)
		}
	}
	return out
}

func (s *Server) registerResources() {
	// EXPOSE: pergola://palettes
	s.mcpServer.AddResource(mcp.NewResource("pergola://palettes", "Industry Color Palettes",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		palettes := make(map[string]*domain.Colors)
		for _, industry := range palette.Industries() {
			palettes[industry] = palette.ForBusiness(industry)
		}
		palettes["neutral"] = palette.Neutral()
		return jsonResource("pergola://palettes", palettes)
	})

	// EXPOSE: pergola://templates
	s.mcpServer.AddResource(mcp.NewResource("pergola://templates", "Built-in Template Types",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		return jsonResource("pergola://templates", templates.Types())
	})
}

func jsonResource(uri string, v any) ([]mcp.ResourceContents, error) {
	jsonBytes, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s: %w", uri, err)
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(jsonBytes),
		},
	}, nil
}

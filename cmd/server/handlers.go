package main

import (
	"bytes"
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	casefmt "github.com/baditaflorin/go_casefmt"
	"github.com/baditaflorin/go_casefmt/internal/adapters/logger"
	"github.com/baditaflorin/go_casefmt/internal/ports"
	"github.com/baditaflorin/go_casefmt/pkg/streaming"
	"github.com/valyala/fasthttp"
	"golang.org/x/time/rate"
)

const (
	formatPrefix = "/format/"
	streamPrefix = "/stream/"
	batchPath    = "/format/batch"
)

// FormatRequest is the body of POST /format/{kind}.
type FormatRequest struct {
	Text string `json:"text"`
}

// FormatResponse is returned for a single formatted text.
type FormatResponse struct {
	Kind   string `json:"kind"`
	Input  string `json:"input"`
	Output string `json:"output"`
}

// BatchRequest is the body of POST /format/batch.
type BatchRequest struct {
	Kind  string   `json:"kind"`
	Texts []string `json:"texts"`
}

// BatchResponse holds outputs in request order.
type BatchResponse struct {
	Kind    string   `json:"kind"`
	Outputs []string `json:"outputs"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

type serverConfig struct {
	Logger        ports.Logger
	Formatter     *casefmt.Formatter
	Limiter       *rate.Limiter
	MaxBatch      int
	StreamWorkers int
}

type server struct {
	cfg     serverConfig
	started time.Time
}

func newServer(cfg serverConfig) *server {
	if cfg.Logger == nil {
		cfg.Logger = logger.NewNopLogger()
	}
	if cfg.Formatter == nil {
		cfg.Formatter = casefmt.Default()
	}
	if cfg.Limiter == nil {
		cfg.Limiter = rate.NewLimiter(rate.Inf, 0)
	}
	if cfg.MaxBatch <= 0 {
		cfg.MaxBatch = DefaultMaxBatch
	}
	return &server{cfg: cfg, started: time.Now()}
}

// requestHandler is the main fasthttp request handler
func (s *server) requestHandler(ctx *fasthttp.RequestCtx) {
	startTime := time.Now()

	ctx.Response.Header.Set("Content-Type", "application/json")

	path := string(ctx.Path())
	switch {
	case path == "/health":
		s.handleHealthCheck(ctx)
	case !s.cfg.Limiter.Allow():
		ctx.SetStatusCode(fasthttp.StatusTooManyRequests)
		writeJSONError(ctx, s.cfg.Logger, "Rate limit exceeded")
	case path == batchPath:
		s.handleBatch(ctx)
	case strings.HasPrefix(path, formatPrefix):
		s.handleFormat(ctx, strings.TrimPrefix(path, formatPrefix))
	case strings.HasPrefix(path, streamPrefix):
		s.handleStream(ctx, strings.TrimPrefix(path, streamPrefix))
	default:
		ctx.SetStatusCode(fasthttp.StatusNotFound)
		writeJSONError(ctx, s.cfg.Logger, "Not found")
	}

	s.cfg.Logger.Info("Request processed",
		"method", string(ctx.Method()),
		"path", path,
		"status", ctx.Response.StatusCode(),
		"ip", ctx.RemoteIP().String(),
		"duration", time.Since(startTime),
	)
}

// handleHealthCheck responds to health check requests
func (s *server) handleHealthCheck(ctx *fasthttp.RequestCtx) {
	ctx.SetStatusCode(fasthttp.StatusOK)
	writeJSONResponse(ctx, s.cfg.Logger, map[string]interface{}{
		"status": "ok",
		"time":   time.Now().Format(time.RFC3339),
		"uptime": time.Since(s.started).String(),
	})
}

func (s *server) handleFormat(ctx *fasthttp.RequestCtx, kindName string) {
	if !requirePost(ctx, s.cfg.Logger) {
		return
	}
	kind, ok := s.parseKind(ctx, kindName)
	if !ok {
		return
	}

	var req FormatRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		ctx.SetStatusCode(fasthttp.StatusBadRequest)
		writeJSONError(ctx, s.cfg.Logger, "Invalid request: "+err.Error())
		return
	}

	ctx.SetStatusCode(fasthttp.StatusOK)
	writeJSONResponse(ctx, s.cfg.Logger, FormatResponse{
		Kind:   kind.String(),
		Input:  req.Text,
		Output: s.cfg.Formatter.Format(kind, req.Text),
	})
}

func (s *server) handleBatch(ctx *fasthttp.RequestCtx) {
	if !requirePost(ctx, s.cfg.Logger) {
		return
	}

	var req BatchRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		ctx.SetStatusCode(fasthttp.StatusBadRequest)
		writeJSONError(ctx, s.cfg.Logger, "Invalid request: "+err.Error())
		return
	}
	kind, ok := s.parseKind(ctx, req.Kind)
	if !ok {
		return
	}
	if len(req.Texts) > s.cfg.MaxBatch {
		ctx.SetStatusCode(fasthttp.StatusRequestEntityTooLarge)
		writeJSONError(ctx, s.cfg.Logger, "Too many texts in batch")
		return
	}

	outputs := make([]string, len(req.Texts))
	for i, text := range req.Texts {
		outputs[i] = s.cfg.Formatter.Format(kind, text)
	}

	ctx.SetStatusCode(fasthttp.StatusOK)
	writeJSONResponse(ctx, s.cfg.Logger, BatchResponse{Kind: kind.String(), Outputs: outputs})
}

// handleStream formats a text/plain body line by line and answers with the
// formatted lines.
func (s *server) handleStream(ctx *fasthttp.RequestCtx, kindName string) {
	if !requirePost(ctx, s.cfg.Logger) {
		return
	}
	kind, ok := s.parseKind(ctx, kindName)
	if !ok {
		return
	}

	c, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	var out bytes.Buffer
	result, err := streaming.FormatLines(c, kind, bytes.NewReader(ctx.PostBody()), &out,
		streaming.WithStreamingFormatter(s.cfg.Formatter),
		streaming.WithStreamingWorkers(s.cfg.StreamWorkers),
	)
	if err != nil {
		s.cfg.Logger.Error("Stream formatting failed", "kind", kind.String(), "error", err)
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		writeJSONError(ctx, s.cfg.Logger, "Stream formatting failed")
		return
	}

	ctx.Response.Header.Set("Content-Type", "text/plain; charset=utf-8")
	ctx.Response.Header.Set("X-Lines", strconv.Itoa(result.Lines))
	ctx.Response.Header.Set("X-Processing-Time", result.ProcessingTime)
	ctx.SetStatusCode(fasthttp.StatusOK)
	ctx.SetBody(out.Bytes())
}

func (s *server) parseKind(ctx *fasthttp.RequestCtx, name string) (casefmt.Kind, bool) {
	kind, err := casefmt.ParseKind(name)
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusBadRequest)
		writeJSONError(ctx, s.cfg.Logger, err.Error())
		return 0, false
	}
	return kind, true
}

func requirePost(ctx *fasthttp.RequestCtx, logger ports.Logger) bool {
	if ctx.IsPost() {
		return true
	}
	ctx.Response.Header.Set("Allow", fasthttp.MethodPost)
	ctx.SetStatusCode(fasthttp.StatusMethodNotAllowed)
	writeJSONError(ctx, logger, "Method not allowed")
	return false
}

// writeJSONResponse writes a JSON response to the context
func writeJSONResponse(ctx *fasthttp.RequestCtx, logger ports.Logger, data interface{}) {
	response, err := json.Marshal(data)
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		logger.Error("Error marshaling JSON response", "error", err)
		writeJSONError(ctx, logger, "Internal server error")
		return
	}

	ctx.SetBody(response)
}

// writeJSONError writes a JSON error response to the context
func writeJSONError(ctx *fasthttp.RequestCtx, logger ports.Logger, message string) {
	response, err := json.Marshal(ErrorResponse{Error: message})
	if err != nil {
		logger.Error("Error marshaling JSON error response", "error", err)
		ctx.SetBodyString(`{"error":"Internal server error"}`)
		return
	}

	ctx.SetBody(response)
}

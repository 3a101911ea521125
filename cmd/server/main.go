package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	casefmt "github.com/baditaflorin/go_casefmt"
	"github.com/baditaflorin/go_casefmt/internal/adapters/logger"
	"github.com/baditaflorin/go_casefmt/internal/ports"
	"github.com/baditaflorin/go_casefmt/internal/warmup"
	"github.com/baditaflorin/l"
	"github.com/valyala/fasthttp"
	"golang.org/x/time/rate"
)

// Default configuration
const (
	DefaultPort           = 8080
	DefaultReadTimeout    = 30 * time.Second
	DefaultWriteTimeout   = 30 * time.Second
	DefaultMaxRequestSize = 10 * 1024 * 1024 // 10MB
	DefaultConcurrency    = 0                // 0 means use GOMAXPROCS
	DefaultRateLimit      = 1000             // requests per second, 0 = unlimited
	DefaultMaxBatch       = 10000
)

func main() {
	port := flag.Int("port", DefaultPort, "HTTP server port")
	readTimeout := flag.Duration("read-timeout", DefaultReadTimeout, "HTTP read timeout")
	writeTimeout := flag.Duration("write-timeout", DefaultWriteTimeout, "HTTP write timeout")
	maxRequestSize := flag.Int("max-request-size", DefaultMaxRequestSize, "Maximum request size in bytes")
	concurrency := flag.Int("concurrency", DefaultConcurrency, "Maximum number of concurrent requests (0 = GOMAXPROCS)")
	rateLimit := flag.Float64("rate-limit", DefaultRateLimit, "Requests per second across all clients (0 = unlimited)")
	maxBatch := flag.Int("max-batch", DefaultMaxBatch, "Maximum number of texts in a batch request")
	workers := flag.Int("stream-workers", runtime.NumCPU(), "Workers used by the line streaming endpoint")
	warmUp := flag.Bool("warm-up", true, "Run the formatter self-check on startup")
	logFile := flag.String("log-file", "", "Log file path (empty = stdout)")
	flag.Parse()

	lg, err := createLogger(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer lg.Close()

	lg.Info("Starting case formatting HTTP server",
		"port", *port,
		"read_timeout", *readTimeout,
		"write_timeout", *writeTimeout,
		"max_request_size", *maxRequestSize,
		"concurrency", *concurrency,
		"rate_limit", *rateLimit,
	)

	formatter := casefmt.New()
	if *warmUp {
		report := runWarmup(logger.ForComponent(lg, "warmup"), formatter)
		if !report.OK() {
			lg.Error("Formatter self-check failed", "failures", len(report.Failures))
			os.Exit(1)
		}
	}

	srv := newServer(serverConfig{
		Logger:        logger.ForComponent(lg, "server"),
		Formatter:     formatter,
		Limiter:       newLimiter(*rateLimit),
		MaxBatch:      *maxBatch,
		StreamWorkers: *workers,
	})

	server := &fasthttp.Server{
		Handler:               srv.requestHandler,
		Name:                  "CasefmtServer",
		ReadTimeout:           *readTimeout,
		WriteTimeout:          *writeTimeout,
		MaxRequestBodySize:    *maxRequestSize,
		Concurrency:           *concurrency,
		TCPKeepalive:          true,
		TCPKeepalivePeriod:    3 * time.Minute,
		MaxIdleWorkerDuration: 10 * time.Second,
	}

	idleConnsClosed := make(chan struct{})
	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
		<-sigint

		lg.Info("Shutting down server...")
		if err := server.Shutdown(); err != nil {
			lg.Error("Error during server shutdown", "error", err)
		}
		close(idleConnsClosed)
	}()

	addr := fmt.Sprintf(":%d", *port)
	lg.Info("Server listening", "address", addr)
	if err := server.ListenAndServe(addr); err != nil {
		lg.Error("Server error", "error", err)
		os.Exit(1)
	}

	<-idleConnsClosed
	lg.Info("Server stopped")
}

// newLimiter returns a limiter admitting rps requests per second with a
// one second burst. rps <= 0 disables limiting.
func newLimiter(rps float64) *rate.Limiter {
	if rps <= 0 {
		return rate.NewLimiter(rate.Inf, 0)
	}
	burst := int(rps)
	if burst < 1 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(rps), burst)
}

// warmupSamples are run through each formatter before the server accepts
// traffic.
var warmupSamples = map[casefmt.Kind][]string{
	casefmt.KindName:        {"O'SHEA", "MACLEOD", "marie-anne", "DE LA CRUZ", "JOSÉ PEÑA", "john (the brave)"},
	casefmt.KindAddress:     {"123 MAIN STREET, PO BOX 567, H1M2J5", "456 broadway ave, new york, ny, 10001, usa"},
	casefmt.KindCity:        {"OTTAWA-GATINEAU", "peggy's cove", "SAINT JOHN"},
	casefmt.KindLegalEntity: {"MCDONALD'S CORP.", "smith & sons, inc.", "ACADEMY OF ARTS AND SCIENCES"},
	casefmt.KindPostalCode:  {"h1m2j5", "12345-6789", "abc123"},
	casefmt.KindCountry:     {"usa", "UNITED STATES", "canada"},
}

func runWarmup(lg ports.Logger, formatter *casefmt.Formatter) warmup.Report {
	manager := warmup.NewManager(lg, warmup.DefaultWarmupConfig())
	for _, kind := range casefmt.Kinds() {
		manager.RegisterFormatter(kind.String(), formatter.For(kind), warmupSamples[kind]...)
	}
	return manager.WarmUp(context.Background())
}

// createLogger creates and configures a logger
func createLogger(logFile string) (l.Logger, error) {
	var output io.Writer = os.Stdout
	if logFile != "" {
		file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		output = file
	}

	lg, err := casefmt.NewLogger(output, true)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return lg, nil
}

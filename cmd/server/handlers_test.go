package main

import (
	"encoding/json"
	"testing"

	casefmt "github.com/baditaflorin/go_casefmt"
	"github.com/baditaflorin/go_casefmt/internal/adapters/logger"
	"github.com/google/go-cmp/cmp"
	"github.com/valyala/fasthttp"
	"golang.org/x/time/rate"
)

func doRequest(t *testing.T, s *server, method, uri, body string) *fasthttp.RequestCtx {
	t.Helper()
	ctx := &fasthttp.RequestCtx{}
	ctx.Request.Header.SetMethod(method)
	ctx.Request.SetRequestURI(uri)
	ctx.Request.SetBodyString(body)
	s.requestHandler(ctx)
	return ctx
}

func decode[T any](t *testing.T, ctx *fasthttp.RequestCtx) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(ctx.Response.Body(), &v); err != nil {
		t.Fatalf("decode %q: %v", ctx.Response.Body(), err)
	}
	return v
}

func TestHandleFormat(t *testing.T) {
	s := newServer(serverConfig{})

	tests := []struct {
		uri  string
		text string
		want FormatResponse
	}{
		{"/format/name", "O'SHEA", FormatResponse{Kind: "name", Input: "O'SHEA", Output: "O'Shea"}},
		{"/format/person", "MACLEOD", FormatResponse{Kind: "name", Input: "MACLEOD", Output: "MacLeod"}},
		{"/format/address", "123 MAIN STREET, PO BOX 567, H1M2J5", FormatResponse{Kind: "address", Input: "123 MAIN STREET, PO BOX 567, H1M2J5", Output: "123 Main Street, PO Box 567, H1M 2J5"}},
		{"/format/city", "OTTAWA-GATINEAU", FormatResponse{Kind: "city", Input: "OTTAWA-GATINEAU", Output: "Ottawa-Gatineau"}},
		{"/format/entity", "MCDONALD'S CORP.", FormatResponse{Kind: "entity", Input: "MCDONALD'S CORP.", Output: "McDonald's Corp."}},
		{"/format/postal", "k1a0b1", FormatResponse{Kind: "postal", Input: "k1a0b1", Output: "K1A 0B1"}},
		{"/format/country", "usa", FormatResponse{Kind: "country", Input: "usa", Output: "USA"}},
		{"/format/name", "", FormatResponse{Kind: "name"}},
	}
	for _, tc := range tests {
		t.Run(tc.uri+"/"+tc.text, func(t *testing.T) {
			body, _ := json.Marshal(FormatRequest{Text: tc.text})
			ctx := doRequest(t, s, fasthttp.MethodPost, tc.uri, string(body))
			if code := ctx.Response.StatusCode(); code != fasthttp.StatusOK {
				t.Fatalf("status = %d, want 200, body %s", code, ctx.Response.Body())
			}
			if diff := cmp.Diff(tc.want, decode[FormatResponse](t, ctx)); diff != "" {
				t.Errorf("response mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestHandleBatch(t *testing.T) {
	s := newServer(serverConfig{MaxBatch: 3})

	ctx := doRequest(t, s, fasthttp.MethodPost, "/format/batch",
		`{"kind":"entity","texts":["ACME CORP.","smith & sons, inc.",""]}`)
	if code := ctx.Response.StatusCode(); code != fasthttp.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", code, ctx.Response.Body())
	}
	want := BatchResponse{Kind: "entity", Outputs: []string{"Acme Corp.", "Smith & Sons, Inc.", ""}}
	if diff := cmp.Diff(want, decode[BatchResponse](t, ctx)); diff != "" {
		t.Errorf("response mismatch (-want +got):\n%s", diff)
	}

	ctx = doRequest(t, s, fasthttp.MethodPost, "/format/batch", `{"kind":"name","texts":["a","b","c","d"]}`)
	if code := ctx.Response.StatusCode(); code != fasthttp.StatusRequestEntityTooLarge {
		t.Errorf("oversized batch status = %d, want 413", code)
	}
}

func TestHandleStream(t *testing.T) {
	s := newServer(serverConfig{StreamWorkers: 2})

	ctx := doRequest(t, s, fasthttp.MethodPost, "/stream/city", "TORONTO\npeggy's cove\nOTTAWA-GATINEAU\n")
	if code := ctx.Response.StatusCode(); code != fasthttp.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", code, ctx.Response.Body())
	}
	if got, want := string(ctx.Response.Body()), "Toronto\nPeggy's Cove\nOttawa-Gatineau\n"; got != want {
		t.Errorf("body = %q, want %q", got, want)
	}
	if got := string(ctx.Response.Header.Peek("X-Lines")); got != "3" {
		t.Errorf("X-Lines = %q, want 3", got)
	}
}

func TestErrorStatuses(t *testing.T) {
	s := newServer(serverConfig{})

	tests := []struct {
		name   string
		method string
		uri    string
		body   string
		want   int
	}{
		{"unknown kind", fasthttp.MethodPost, "/format/planet", `{"text":"x"}`, fasthttp.StatusBadRequest},
		{"bad json", fasthttp.MethodPost, "/format/name", `{"text":`, fasthttp.StatusBadRequest},
		{"batch bad kind", fasthttp.MethodPost, "/format/batch", `{"kind":"planet","texts":[]}`, fasthttp.StatusBadRequest},
		{"wrong method", fasthttp.MethodGet, "/format/name", "", fasthttp.StatusMethodNotAllowed},
		{"stream wrong method", fasthttp.MethodPut, "/stream/name", "", fasthttp.StatusMethodNotAllowed},
		{"not found", fasthttp.MethodGet, "/nope", "", fasthttp.StatusNotFound},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctx := doRequest(t, s, tc.method, tc.uri, tc.body)
			if code := ctx.Response.StatusCode(); code != tc.want {
				t.Errorf("status = %d, want %d", code, tc.want)
			}
			if resp := decode[ErrorResponse](t, ctx); resp.Error == "" {
				t.Error("error response without message")
			}
		})
	}
}

func TestHealthCheck(t *testing.T) {
	ctx := doRequest(t, newServer(serverConfig{}), fasthttp.MethodGet, "/health", "")
	if code := ctx.Response.StatusCode(); code != fasthttp.StatusOK {
		t.Fatalf("status = %d, want 200", code)
	}
	if got := decode[map[string]interface{}](t, ctx)["status"]; got != "ok" {
		t.Errorf("status field = %v, want ok", got)
	}
}

func TestRateLimit(t *testing.T) {
	s := newServer(serverConfig{Limiter: rate.NewLimiter(rate.Every(1<<62), 1)})
	body := `{"text":"smith"}`

	if code := doRequest(t, s, fasthttp.MethodPost, "/format/name", body).Response.StatusCode(); code != fasthttp.StatusOK {
		t.Fatalf("first request status = %d, want 200", code)
	}
	if code := doRequest(t, s, fasthttp.MethodPost, "/format/name", body).Response.StatusCode(); code != fasthttp.StatusTooManyRequests {
		t.Errorf("second request status = %d, want 429", code)
	}
	// health checks bypass the limiter
	if code := doRequest(t, s, fasthttp.MethodGet, "/health", "").Response.StatusCode(); code != fasthttp.StatusOK {
		t.Errorf("health status = %d, want 200", code)
	}
}

func TestNewLimiter(t *testing.T) {
	if l := newLimiter(0); l.Limit() != rate.Inf {
		t.Errorf("newLimiter(0).Limit() = %v, want Inf", l.Limit())
	}
	if l := newLimiter(0.5); l.Burst() != 1 {
		t.Errorf("newLimiter(0.5).Burst() = %d, want 1", l.Burst())
	}
	if l := newLimiter(50); l.Burst() != 50 {
		t.Errorf("newLimiter(50).Burst() = %d, want 50", l.Burst())
	}
}

func TestRunWarmup(t *testing.T) {
	report := runWarmup(logger.NewNopLogger(), casefmt.New())
	if !report.OK() {
		t.Errorf("warmup samples are not stable: %+v", report.Failures)
	}
}

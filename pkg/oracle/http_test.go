package oracle

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"github.com/gitrdm/wordle-entropy-solver/pkg/pattern"
)

func TestHTTPOracleSubmitSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req guessRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decoding request: %v", err)
		}
		if req.Guess != "CRANE" {
			t.Fatalf("got guess %q, want CRANE", req.Guess)
		}
		resp := guessResponse{Feedback: [pattern.WordLength]string{"exact", "exact", "exact", "exact", "exact"}}
		json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	o := NewHTTPOracle(srv.URL, zerolog.Nop())
	p, err := o.Submit(context.Background(), pattern.MustParseWord("CRANE"))
	if err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}
	if !p.IsWin() {
		t.Fatalf("expected win pattern, got %v", p)
	}
}

func TestHTTPOracleSubmitRetriesOn5xx(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		resp := guessResponse{Feedback: [pattern.WordLength]string{"absent", "absent", "absent", "absent", "absent"}}
		json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	o := NewHTTPOracle(srv.URL, zerolog.Nop())
	o.BaseDelay = 0
	_, err := o.Submit(context.Background(), pattern.MustParseWord("CRANE"))
	if err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}
	if attempts != 3 {
		t.Fatalf("got %d attempts, want 3", attempts)
	}
}

func TestHTTPOracleSubmit4xxNotRetried(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	o := NewHTTPOracle(srv.URL, zerolog.Nop())
	o.BaseDelay = 0
	_, err := o.Submit(context.Background(), pattern.MustParseWord("CRANE"))
	if err == nil {
		t.Fatal("expected error for 4xx response")
	}
	if attempts != 1 {
		t.Fatalf("got %d attempts, want 1 (4xx must not retry)", attempts)
	}
}

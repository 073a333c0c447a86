package advisor

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/calcconstru/calcconstru/internal/engine"
	"github.com/calcconstru/calcconstru/internal/project"
	"go.uber.org/zap"
)

func testStudy() (project.Project, engine.Result) {
	p := project.NewProject()
	return p, engine.Compute(p)
}

func TestBuildPrompt(t *testing.T) {
	p, result := testStudy()
	prompt := BuildPrompt(p, result)

	for _, fragment := range []string{
		"empreendimento imobiliário",
		"Nome: " + p.Name,
		"VGV Projetado:",
		"formato Markdown",
	} {
		if !strings.Contains(prompt, fragment) {
			t.Errorf("prompt missing %q", fragment)
		}
	}
}

func TestAnalyzeSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, ":generateContent") {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if r.URL.Query().Get("key") != "test-key" {
			t.Errorf("missing api key query param")
		}

		var request generateRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if len(request.Contents) != 1 || len(request.Contents[0].Parts) != 1 {
			t.Fatalf("unexpected request shape: %+v", request)
		}

		response := generateResponse{}
		response.Candidates = []struct {
			Content struct {
				Parts []part `json:"parts"`
			} `json:"content"`
		}{{}}
		response.Candidates[0].Content.Parts = []part{{Text: "## Avaliação\nProjeto viável."}}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", "gemini-3-flash-preview", zap.NewNop())
	p, result := testStudy()

	analysis := client.Analyze(context.Background(), p, result)
	if analysis != "## Avaliação\nProjeto viável." {
		t.Errorf("Analyze() = %q", analysis)
	}
}

func TestAnalyzeFallsBackOnServerError(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		http.Error(w, `{"error":{"code":500,"message":"boom"}}`, http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", "gemini-3-flash-preview", zap.NewNop())
	p, result := testStudy()

	if analysis := client.Analyze(context.Background(), p, result); analysis != FallbackMessage {
		t.Errorf("Analyze() = %q, expected fallback", analysis)
	}
	if calls != 1 {
		t.Errorf("failing endpoint was hit %d times, expected a single attempt", calls)
	}
}

func TestAnalyzeDoesNotRetryTransportErrors(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		// Kill the connection mid-response to force a transport error.
		hj, ok := w.(http.Hijacker)
		if !ok {
			t.Fatal("recorder does not support hijacking")
		}
		conn, _, err := hj.Hijack()
		if err != nil {
			t.Fatalf("hijack: %v", err)
		}
		_ = conn.Close()
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", "gemini-3-flash-preview", zap.NewNop())
	p, result := testStudy()

	if analysis := client.Analyze(context.Background(), p, result); analysis != FallbackMessage {
		t.Errorf("Analyze() = %q, expected fallback", analysis)
	}
	if calls != 1 {
		t.Errorf("unreachable endpoint was hit %d times, expected a single attempt", calls)
	}
}

func TestAnalyzeFallsBackOnEmptyCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", "gemini-3-flash-preview", zap.NewNop())
	p, result := testStudy()

	if analysis := client.Analyze(context.Background(), p, result); analysis != FallbackMessage {
		t.Errorf("Analyze() = %q, expected fallback", analysis)
	}
}

func TestAnalyzeDisabledWithoutKey(t *testing.T) {
	client := NewClient("http://unused.invalid", "", "gemini-3-flash-preview", zap.NewNop())
	p, result := testStudy()

	if client.Enabled() {
		t.Error("client without key should be disabled")
	}
	if analysis := client.Analyze(context.Background(), p, result); analysis != FallbackMessage {
		t.Errorf("Analyze() = %q, expected fallback", analysis)
	}
}

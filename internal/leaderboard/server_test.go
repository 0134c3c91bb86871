package leaderboard

import (
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/avasilyev/chainpop/internal/storage"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	srv := httptest.NewServer(NewServer(store).Router())
	t.Cleanup(srv.Close)
	return srv
}

func TestSubmitAndFetchScores(t *testing.T) {
	srv := newTestServer(t)
	client := NewClient(srv.URL, 2*time.Second)

	for _, s := range []struct {
		name     string
		score    int
		maxChain int
	}{
		{"alice", 250, 4},
		{"bob", 500, 6},
		{"carol", 100, 2},
	} {
		if err := client.SubmitScore(s.name, s.score, s.maxChain); err != nil {
			t.Fatalf("SubmitScore(%s) failed: %v", s.name, err)
		}
	}

	entries, err := client.TopScores(10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("Expected 3 entries, got %d", len(entries))
	}
	if entries[0].Name != "bob" || entries[0].Score != 500 {
		t.Errorf("Expected bob/500 first, got %s/%d", entries[0].Name, entries[0].Score)
	}
	if entries[2].Score != 100 {
		t.Errorf("Expected lowest score last, got %d", entries[2].Score)
	}
	if entries[0].MaxChain != 6 {
		t.Errorf("MaxChain = %d, expected 6", entries[0].MaxChain)
	}
}

func TestTopScoresLimit(t *testing.T) {
	srv := newTestServer(t)
	client := NewClient(srv.URL, 2*time.Second)

	for i := 0; i < 5; i++ {
		if err := client.SubmitScore("p", (i+1)*10, 1); err != nil {
			t.Fatalf("SubmitScore() failed: %v", err)
		}
	}

	entries, err := client.TopScores(2)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("Expected 2 entries with limit 2, got %d", len(entries))
	}
}

func TestSubmitRejectsBadPayload(t *testing.T) {
	srv := newTestServer(t)

	resp, err := srv.Client().Post(srv.URL+"/scores", "application/json", strings.NewReader("not json"))
	if err != nil {
		t.Fatalf("POST failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != 400 {
		t.Errorf("Expected 400 for malformed JSON, got %d", resp.StatusCode)
	}

	resp, err = srv.Client().Post(srv.URL+"/scores", "application/json", strings.NewReader(`{"name":"","score":10}`))
	if err != nil {
		t.Fatalf("POST failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != 400 {
		t.Errorf("Expected 400 for empty name, got %d", resp.StatusCode)
	}
}

func TestTopScoresRejectsBadLimit(t *testing.T) {
	srv := newTestServer(t)

	for _, q := range []string{"limit=0", "limit=-3", "limit=abc", "limit=1000"} {
		resp, err := srv.Client().Get(srv.URL + "/scores?" + q)
		if err != nil {
			t.Fatalf("GET failed: %v", err)
		}
		resp.Body.Close()
		if resp.StatusCode != 400 {
			t.Errorf("Expected 400 for %q, got %d", q, resp.StatusCode)
		}
	}
}

func TestClientSubmitUnreachableServer(t *testing.T) {
	// Port 1 should refuse connections everywhere.
	client := NewClient("http://127.0.0.1:1", 200*time.Millisecond)
	if err := client.SubmitScore("ghost", 10, 1); err == nil {
		t.Error("Expected an error submitting to an unreachable server")
	}
	if _, err := client.TopScores(5); err == nil {
		t.Error("Expected an error fetching from an unreachable server")
	}
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer(t)

	resp, err := srv.Client().Get(srv.URL + "/health")
	if err != nil {
		t.Fatalf("GET /health failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != 200 {
		t.Errorf("Expected 200 from /health, got %d", resp.StatusCode)
	}
}

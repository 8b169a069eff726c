package generativeAI

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/FACorreiaa/karnataka-trip-planner/config"
)

func configFor(provider, keyEnv, baseURL string) config.AIConfig {
	return config.AIConfig{
		Provider:      provider,
		APIKeyEnv:     keyEnv,
		BaseURL:       baseURL,
		Temperature:   0.2,
		MaxToolRounds: 3,
	}
}

// scriptedServer replies to successive POSTs with the given bodies in order and
// keeps every decoded request body for inspection.
type scriptedServer struct {
	*httptest.Server
	mu       sync.Mutex
	replies  []string
	requests []map[string]any
}

func newScriptedServer(t *testing.T, replies ...string) *scriptedServer {
	t.Helper()
	s := &scriptedServer{replies: replies}
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		var decoded map[string]any
		_ = json.Unmarshal(body, &decoded)

		s.mu.Lock()
		s.requests = append(s.requests, decoded)
		idx := len(s.requests) - 1
		s.mu.Unlock()

		if idx >= len(s.replies) {
			http.Error(w, `{"error":{"code":500,"message":"script exhausted"}}`, http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(s.replies[idx]))
	}))
	t.Cleanup(s.Close)
	return s
}

func (s *scriptedServer) Requests() []map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]map[string]any(nil), s.requests...)
}

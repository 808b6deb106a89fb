package httpapi

import (
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"dominosim/internal/app"
	"dominosim/internal/domain"
)

type stubRounds struct {
	err error
}

func (s stubRounds) SimulateRound() (*app.RoundResult, error) { return nil, s.err }
func (s stubRounds) Scoreboard() app.Scoreboard              { return app.NewLedger().Scoreboard() }

func TestHealthEndpoint(t *testing.T) {
	server := NewServer(stubRounds{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	server.Routes().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}

func TestSimulateEndpointAccumulatesScore(t *testing.T) {
	svc := app.NewService(rand.New(rand.NewSource(17)), app.NewLedger())
	handler := NewServer(svc, nil).Routes()

	total := 0
	for i := 1; i <= 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/simular", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("round %d: status = %d", i, w.Code)
		}
		if ct := w.Header().Get("Content-Type"); ct != "application/json" {
			t.Fatalf("content type = %q", ct)
		}

		var resp struct {
			States  []json.RawMessage  `json:"estados"`
			Final   app.Outcome        `json:"final"`
			Score   app.Score          `json:"placar"`
			History []app.HistoryEntry `json:"historicoRodadas"`
		}
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatalf("round %d: decode: %v", i, err)
		}
		total += resp.Final.Points
		if resp.Score.Dupla1+resp.Score.Dupla2 != total {
			t.Fatalf("round %d: score %+v, want total %d", i, resp.Score, total)
		}
		if len(resp.History) != i {
			t.Fatalf("round %d: history = %d entries", i, len(resp.History))
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/placar", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	var board app.Scoreboard
	if err := json.NewDecoder(w.Body).Decode(&board); err != nil {
		t.Fatalf("decode scoreboard: %v", err)
	}
	if board.Score.Dupla1+board.Score.Dupla2 != total || len(board.History) != 3 {
		t.Fatalf("scoreboard = %+v, want total %d over 3 rounds", board, total)
	}
}

func TestSimulateEndpointNoDouble(t *testing.T) {
	server := NewServer(stubRounds{err: domain.ErrNoOpeningDouble}, nil)

	req := httptest.NewRequest(http.MethodGet, "/simular", nil)
	w := httptest.NewRecorder()
	server.Routes().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if body := strings.TrimSpace(w.Body.String()); body != `{"error":"Nenhum duplo encontrado"}` {
		t.Fatalf("body = %s", body)
	}
}

func TestSimulateEndpointMethodNotAllowed(t *testing.T) {
	server := NewServer(stubRounds{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/simular", nil)
	w := httptest.NewRecorder()
	server.Routes().ServeHTTP(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", w.Code)
	}
}

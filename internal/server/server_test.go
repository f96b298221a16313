package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	s, err := New(Config{Port: 0})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func doJSON(t *testing.T, s *Server, method, path string, body any, out any) int {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	if out != nil && rec.Code == http.StatusOK {
		if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
			t.Fatalf("decode %s %s response: %v", method, path, err)
		}
	}
	return rec.Code
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	if code := doJSON(t, s, http.MethodGet, "/health", nil, nil); code != http.StatusOK {
		t.Fatalf("GET /health = %d", code)
	}
}

func TestLevelsEndpoint(t *testing.T) {
	s := newTestServer(t)
	var levels []levelInfo
	if code := doJSON(t, s, http.MethodGet, "/api/levels", nil, &levels); code != http.StatusOK {
		t.Fatalf("GET /api/levels = %d", code)
	}
	if len(levels) == 0 {
		t.Fatal("no levels listed")
	}
	if levels[0].Name != "triads" {
		t.Errorf("first level = %q, want triads", levels[0].Name)
	}
}

func TestChordDrillOverHTTP(t *testing.T) {
	s := newTestServer(t)

	var sess createSessionResponse
	code := doJSON(t, s, http.MethodPost, "/api/sessions",
		createSessionRequest{Mode: "chord", Level: "triads"}, &sess)
	if code != http.StatusOK {
		t.Fatalf("create session = %d", code)
	}
	if sess.ID == "" || sess.Mode != "chord" {
		t.Fatalf("session = %+v", sess)
	}

	// Answering before a problem is open is a conflict.
	code = doJSON(t, s, http.MethodPost, "/api/sessions/"+sess.ID+"/answer",
		answerRequest{Answer: "Cmaj"}, nil)
	if code != http.StatusConflict {
		t.Fatalf("answer without problem = %d, want 409", code)
	}

	var problem chordProblem
	code = doJSON(t, s, http.MethodPost, "/api/sessions/"+sess.ID+"/problem", nil, &problem)
	if code != http.StatusOK {
		t.Fatalf("next problem = %d", code)
	}
	if len(problem.Pitches) == 0 || len(problem.Notes) != len(problem.Pitches) {
		t.Fatalf("problem = %+v", problem)
	}

	var result answerResponse
	code = doJSON(t, s, http.MethodPost, "/api/sessions/"+sess.ID+"/answer",
		answerRequest{Answer: "not a chord"}, &result)
	if code != http.StatusOK {
		t.Fatalf("answer = %d", code)
	}
	if result.Correct {
		t.Error("junk answer judged correct")
	}
	if result.Expected == "" {
		t.Error("expected answer not echoed after scoring")
	}
	if result.Score.Asked != 1 {
		t.Errorf("score = %+v, want 1 asked", result.Score)
	}
}

func TestProgressionSessionOverHTTP(t *testing.T) {
	s := newTestServer(t)

	var sess createSessionResponse
	code := doJSON(t, s, http.MethodPost, "/api/sessions",
		createSessionRequest{Mode: "progression", Key: "Am"}, &sess)
	if code != http.StatusOK {
		t.Fatalf("create session = %d", code)
	}

	var problem progressionProblem
	code = doJSON(t, s, http.MethodPost, "/api/sessions/"+sess.ID+"/problem", nil, &problem)
	if code != http.StatusOK {
		t.Fatalf("next problem = %d", code)
	}
	if problem.Key != "Am" {
		t.Errorf("key = %q, want Am", problem.Key)
	}
	if problem.Steps != 4 || len(problem.Voicings) != 4 {
		t.Errorf("problem = %+v, want 4 steps", problem)
	}
}

func TestSessionErrors(t *testing.T) {
	s := newTestServer(t)

	if code := doJSON(t, s, http.MethodPost, "/api/sessions",
		createSessionRequest{Mode: "chord", Level: "nope"}, nil); code != http.StatusNotFound {
		t.Errorf("unknown level = %d, want 404", code)
	}
	if code := doJSON(t, s, http.MethodPost, "/api/sessions",
		createSessionRequest{Mode: "progression", Key: "H#"}, nil); code != http.StatusBadRequest {
		t.Errorf("bad key = %d, want 400", code)
	}
	if code := doJSON(t, s, http.MethodPost, "/api/sessions",
		createSessionRequest{Mode: "waltz"}, nil); code != http.StatusBadRequest {
		t.Errorf("bad mode = %d, want 400", code)
	}
	if code := doJSON(t, s, http.MethodPost, "/api/sessions/ghost/problem", nil, nil); code != http.StatusNotFound {
		t.Errorf("unknown session problem = %d, want 404", code)
	}
	if code := doJSON(t, s, http.MethodPost, "/api/sessions/ghost/answer",
		answerRequest{Answer: "x"}, nil); code != http.StatusNotFound {
		t.Errorf("unknown session answer = %d, want 404", code)
	}
}

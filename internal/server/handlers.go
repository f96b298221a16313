package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	apperrors "github.com/lkorr/music-theory-website-sub004/internal/errors"
	"github.com/lkorr/music-theory-website-sub004/internal/pitch"
	"github.com/lkorr/music-theory-website-sub004/internal/progression"
	"github.com/lkorr/music-theory-website-sub004/internal/session"
)

// handleIndex serves the practice page
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	data := map[string]any{"Levels": s.levelList}
	if err := s.templates.ExecuteTemplate(w, "index.html", data); err != nil {
		s.logger.Error("template error", "template", "index.html", "error", err)
		http.Error(w, "Internal error", http.StatusInternalServerError)
	}
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

type levelInfo struct {
	Name                     string   `json:"name"`
	Qualities                []string `json:"qualities"`
	Inversions               []int    `json:"inversions"`
	RequireInversionLabeling bool     `json:"require_inversion_labeling"`
}

// handleLevels lists the available levels
func (s *Server) handleLevels(w http.ResponseWriter, r *http.Request) {
	out := make([]levelInfo, 0, len(s.levelList))
	for _, name := range s.levelList {
		lvl := s.levels[name]
		out = append(out, levelInfo{
			Name:                     lvl.Name,
			Qualities:                lvl.Qualities,
			Inversions:               lvl.Inversions,
			RequireInversionLabeling: lvl.RequireInversionLabeling,
		})
	}
	s.writeJSON(w, http.StatusOK, out)
}

type createSessionRequest struct {
	Mode  string `json:"mode"`  // "chord" (default) or "progression"
	Level string `json:"level"` // chord mode
	Key   string `json:"key"`   // progression mode, e.g. "Am"
}

type createSessionResponse struct {
	ID   string `json:"id"`
	Mode string `json:"mode"`
}

// handleCreateSession opens a practice session
func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var req createSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}

	switch req.Mode {
	case "progression":
		key, ok := progression.ParseKey(req.Key)
		if !ok {
			s.errorJSON(w, http.StatusBadRequest, "unrecognized key signature")
			return
		}
		sess := s.sessions.CreateProgression(key)
		s.writeJSON(w, http.StatusOK, createSessionResponse{ID: sess.ID, Mode: string(sess.Mode)})
	case "", "chord":
		lvl, ok := s.levels[req.Level]
		if !ok {
			s.errorJSON(w, http.StatusNotFound, "unknown level")
			return
		}
		sess := s.sessions.CreateChord(lvl)
		s.writeJSON(w, http.StatusOK, createSessionResponse{ID: sess.ID, Mode: string(sess.Mode)})
	default:
		s.errorJSON(w, http.StatusBadRequest, "unknown mode")
	}
}

type chordProblem struct {
	Pitches                  []int    `json:"pitches"`
	Notes                    []string `json:"notes"`
	RequireInversionLabeling bool     `json:"require_inversion_labeling"`
}

type progressionProblem struct {
	Key      string     `json:"key"`
	Steps    int        `json:"steps"`
	Voicings [][]int    `json:"voicings"`
	Notes    [][]string `json:"notes"`
}

// handleNextProblem draws the next problem for a session. The expected
// answer never leaves the server.
func (s *Server) handleNextProblem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	sess := s.sessions.Get(id)
	if sess == nil {
		s.errorJSON(w, http.StatusNotFound, "session not found")
		return
	}

	switch sess.Mode {
	case session.ModeProgression:
		p, err := s.sessions.NextProgression(id)
		if err != nil {
			s.problemError(w, err)
			return
		}
		resp := progressionProblem{
			Key:      pitch.ClassName(p.Key.TonicClass),
			Steps:    len(p.Steps),
			Voicings: make([][]int, len(p.Steps)),
			Notes:    make([][]string, len(p.Steps)),
		}
		if p.Key.Minor {
			resp.Key += "m"
		}
		for i, step := range p.Steps {
			resp.Voicings[i] = step.Pitches
			resp.Notes[i] = noteNames(step.Pitches)
		}
		s.writeJSON(w, http.StatusOK, resp)
	default:
		gen, lvl, err := s.sessions.NextChord(id)
		if err != nil {
			s.problemError(w, err)
			return
		}
		s.writeJSON(w, http.StatusOK, chordProblem{
			Pitches:                  gen.Pitches,
			Notes:                    noteNames(gen.Pitches),
			RequireInversionLabeling: lvl.RequireInversionLabeling,
		})
	}
}

type answerRequest struct {
	Answer string `json:"answer"`
}

type answerResponse struct {
	Correct  bool          `json:"correct"`
	Expected string        `json:"expected"`
	Score    session.Score `json:"score"`
}

// handleAnswer scores an answer against the session's open problem
func (s *Server) handleAnswer(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req answerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorJSON(w, http.StatusBadRequest, "invalid request body")
		return
	}

	correct, expected, score, err := s.sessions.Submit(id, req.Answer)
	switch {
	case errors.Is(err, session.ErrNotFound):
		s.errorJSON(w, http.StatusNotFound, "session not found")
		return
	case errors.Is(err, session.ErrNoProblem):
		s.errorJSON(w, http.StatusConflict, "no open problem; request one first")
		return
	case err != nil:
		s.errorJSON(w, http.StatusInternalServerError, "internal error")
		return
	}

	s.writeJSON(w, http.StatusOK, answerResponse{
		Correct:  correct,
		Expected: expected,
		Score:    score,
	})
}

// problemError maps generation failures to responses. Configuration
// errors are the level author's fault and say so.
func (s *Server) problemError(w http.ResponseWriter, err error) {
	var cfgErr *apperrors.ConfigError
	switch {
	case errors.Is(err, session.ErrNotFound):
		s.errorJSON(w, http.StatusNotFound, "session not found")
	case errors.As(err, &cfgErr):
		s.errorJSON(w, http.StatusUnprocessableEntity, cfgErr.Error())
	default:
		s.logger.Error("problem generation failed", "error", err)
		s.errorJSON(w, http.StatusInternalServerError, "internal error")
	}
}

func noteNames(pitches []int) []string {
	out := make([]string, len(pitches))
	for i, p := range pitches {
		out[i] = pitch.Name(p)
	}
	return out
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encode response", "error", err)
	}
}

func (s *Server) errorJSON(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, map[string]string{"error": msg})
}

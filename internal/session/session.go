package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lkorr/music-theory-website-sub004/internal/answer"
	"github.com/lkorr/music-theory-website-sub004/internal/chord"
	"github.com/lkorr/music-theory-website-sub004/internal/level"
	"github.com/lkorr/music-theory-website-sub004/internal/progression"
)

var (
	ErrNotFound  = errors.New("session not found")
	ErrNoProblem = errors.New("no open problem; request one first")
)

// Mode selects what a session drills.
type Mode string

const (
	ModeChord       Mode = "chord"
	ModeProgression Mode = "progression"
)

// Score is a running tally for one session.
type Score struct {
	Asked   int `json:"asked"`
	Correct int `json:"correct"`
}

// Session holds the per-player state the engine itself refuses to own:
// the level, the previous problem threaded into generation for duplicate
// avoidance, the currently open problem, and the score.
type Session struct {
	ID         string
	Mode       Mode
	Level      *level.Config
	Key        progression.Key
	Score      Score
	LastActive time.Time

	prevChord    *chord.Generated
	currentChord *chord.Generated
	prevProg     *progression.Progression
	currentProg  *progression.Progression
}

// Manager guards all live sessions. Idle sessions are swept on creation.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	chords   *chord.Generator
	progs    *progression.Generator
	ttl      time.Duration
}

// NewManager creates a session manager with time-seeded generators.
func NewManager() *Manager {
	now := time.Now().UnixNano()
	return &Manager{
		sessions: make(map[string]*Session),
		chords:   chord.NewGenerator(now),
		progs:    progression.NewGenerator(now + 1),
		ttl:      time.Hour,
	}
}

// CreateChord starts a chord-drill session for a level.
func (m *Manager) CreateChord(cfg *level.Config) *Session {
	return m.create(&Session{Mode: ModeChord, Level: cfg})
}

// CreateProgression starts a progression-drill session in a key.
func (m *Manager) CreateProgression(key progression.Key) *Session {
	return m.create(&Session{Mode: ModeProgression, Key: key})
}

func (m *Manager) create(s *Session) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sweepLocked()
	s.ID = uuid.NewString()
	s.LastActive = time.Now()
	m.sessions[s.ID] = s
	return s
}

// sweepLocked drops sessions idle past the TTL. Caller holds the lock.
func (m *Manager) sweepLocked() {
	cutoff := time.Now().Add(-m.ttl)
	for id, s := range m.sessions {
		if s.LastActive.Before(cutoff) {
			delete(m.sessions, id)
		}
	}
}

// Get retrieves a session by ID.
func (m *Manager) Get(id string) *Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sessions[id]
}

// NextChord generates the next chord problem for a chord session.
func (m *Manager) NextChord(id string) (*chord.Generated, *level.Config, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := m.sessions[id]
	if s == nil || s.Mode != ModeChord {
		return nil, nil, ErrNotFound
	}
	gen, err := m.chords.Generate(s.Level, s.prevChord)
	if err != nil {
		return nil, nil, err
	}
	s.currentChord = gen
	s.LastActive = time.Now()
	return gen, s.Level, nil
}

// NextProgression generates the next progression problem.
func (m *Manager) NextProgression(id string) (*progression.Progression, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := m.sessions[id]
	if s == nil || s.Mode != ModeProgression {
		return nil, ErrNotFound
	}
	p, err := m.progs.Generate(s.Key, s.prevProg)
	if err != nil {
		return nil, err
	}
	s.currentProg = p
	s.LastActive = time.Now()
	return p, nil
}

// Submit scores an answer against the open problem. Each problem is
// scored once; the problem closes whether or not the answer was right.
func (m *Manager) Submit(id, text string) (correct bool, expected string, score Score, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := m.sessions[id]
	if s == nil {
		return false, "", Score{}, ErrNotFound
	}
	s.LastActive = time.Now()

	switch s.Mode {
	case ModeChord:
		if s.currentChord == nil {
			return false, "", s.Score, ErrNoProblem
		}
		correct = answer.Validate(text, s.currentChord, s.Level)
		expected = s.currentChord.ExpectedAnswer
		s.prevChord = s.currentChord
		s.currentChord = nil
	case ModeProgression:
		if s.currentProg == nil {
			return false, "", s.Score, ErrNoProblem
		}
		correct = progression.Validate(text, s.currentProg)
		expected = s.currentProg.ExpectedAnswer
		s.prevProg = s.currentProg
		s.currentProg = nil
	}

	s.Score.Asked++
	if correct {
		s.Score.Correct++
	}
	return correct, expected, s.Score, nil
}

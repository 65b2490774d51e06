package quadblox

import (
	"math/rand/v2"

	"github.com/google/uuid"
)

// TickInterval is the gravity period in seconds.
const TickInterval = 0.75

type State int

const (
	StateTitle State = iota
	StatePlaying
)

func (s State) String() string {
	switch s {
	case StateTitle:
		return "title"
	case StatePlaying:
		return "playing"
	default:
		return "unknown"
	}
}

// Actions is the set of player intents sampled for one frame.
type Actions struct {
	Rotate    bool
	MoveLeft  bool
	MoveRight bool
	SoftDrop  bool
	Start     bool
}

// Step summarizes what a single Update did.
type Step struct {
	Started   bool
	Rotated   bool
	Moved     bool
	Ticked    bool
	Descended bool
	Locked    bool
	Cleared   int
	Points    int
}

// Session is the whole mutable state of one game: the board, the active
// piece, the counters and the gravity timer. Only Update and the methods it
// calls mutate it.
type Session struct {
	ID     uuid.UUID
	State  State
	Board  Board
	Active Piece
	Score  int
	Lines  int

	lastTick float64
	rng      *rand.Rand
}

// NewSession returns a session on the title screen drawing randomness from rng.
func NewSession(rng *rand.Rand) *Session {
	return &Session{
		State: StateTitle,
		rng:   rng,
	}
}

// LastTick returns the timestamp of the last gravity step.
func (s *Session) LastTick() float64 {
	return s.lastTick
}

// Start begins a new game at time now.
func (s *Session) Start(now float64) {
	s.ID = uuid.New()
	s.Score = 0
	s.Lines = 0
	s.Board.Reset(s.rng)
	s.Active = Spawn(s.rng)
	s.lastTick = now
	s.State = StatePlaying
}

// Update advances the session by one frame.
func (s *Session) Update(in Actions, now float64) Step {
	var step Step

	if s.State != StatePlaying {
		if in.Start {
			s.Start(now)
			step.Started = true
		}
		return step
	}

	if in.Rotate {
		step.Rotated = s.Rotate()
	}
	if in.MoveLeft && s.Shift(-1) {
		step.Moved = true
	}
	if in.MoveRight && s.Shift(1) {
		step.Moved = true
	}

	step.Ticked = s.tick(now)
	if step.Ticked || in.SoftDrop {
		locked, cleared := s.Descend()
		step.Descended = !locked
		step.Locked = locked
		step.Cleared = cleared
		step.Points = Points(cleared)
	}

	return step
}

// Valid reports whether candidate may replace the active piece.
func (s *Session) Valid(candidate Piece) bool {
	return !Collides(&s.Board, candidate)
}

// Rotate commits the rotated active piece if it fits and reports whether it did.
func (s *Session) Rotate() bool {
	candidate := s.Active.Rotated()
	if !s.Valid(candidate) {
		return false
	}
	s.Active = candidate
	return true
}

// Shift moves the active piece dx columns if it fits and reports whether it did.
func (s *Session) Shift(dx int) bool {
	candidate := s.Active.Moved(dx, 0)
	if !s.Valid(candidate) {
		return false
	}
	s.Active = candidate
	return true
}

// Descend moves the active piece one row down. When the piece cannot move
// it is locked into the board, full rows are cleared and scored, and a new
// piece is spawned. There is no game over: a spawn that overlaps the stack
// locks on its next descent.
func (s *Session) Descend() (locked bool, cleared int) {
	candidate := s.Active.Moved(0, 1)
	if s.Valid(candidate) {
		s.Active = candidate
		return false, 0
	}

	s.placePiece()
	cleared = s.Board.ClearFullRows()
	s.Score += Points(cleared)
	s.Lines += cleared
	s.Active = Spawn(s.rng)
	return true, cleared
}

// placePiece writes the active piece into the board without checking for
// overlap; the piece was validated before it became active.
func (s *Session) placePiece() {
	for pt, c := range s.Active.Tiles() {
		s.Board.Set(pt.X, pt.Y, c)
	}
}

func (s *Session) tick(now float64) bool {
	if now-s.lastTick < TickInterval {
		return false
	}
	s.lastTick = now
	return true
}

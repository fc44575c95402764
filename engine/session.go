package engine

import (
	"github.com/google/uuid"
	"github.com/lixenwraith/crossing/constants"
)

// SessionOptions configures a new session; zero values select defaults
type SessionOptions struct {
	// ID identifies the session in logs; generated when empty
	ID string

	// Obstacles is the number of obstacles, distributed round-robin over the lanes
	Obstacles int

	// Random draws obstacle speeds; time-seeded when nil
	Random RandomSource

	// Display receives level-up, life-lost and game-end signals
	Display Display
}

// Session is the live game instance: it owns the player and obstacles and
// holds level, score and the terminal ended flag
//
// States: Active and Ended. Only lives reaching zero ends a session, and every
// mutating method is a no-op afterwards
type Session struct {
	id    string
	level int
	score int
	ended bool

	player    *Player
	obstacles []*Obstacle
	display   Display
}

// NewSession builds a session with a fresh player and obstacle set
func NewSession(opts SessionOptions) *Session {
	if opts.ID == "" {
		opts.ID = uuid.NewString()
	}
	if opts.Obstacles <= 0 {
		opts.Obstacles = constants.ObstacleDefaultCount
	}
	if opts.Random == nil {
		opts.Random = NewTimeSeededSource()
	}
	if opts.Display == nil {
		opts.Display = NopDisplay{}
	}

	s := &Session{
		id:        opts.ID,
		level:     constants.StartLevel,
		display:   opts.Display,
		obstacles: make([]*Obstacle, 0, opts.Obstacles),
	}
	s.player = NewPlayer((*sessionSignals)(s))

	for i := 0; i < opts.Obstacles; i++ {
		s.obstacles = append(s.obstacles, NewObstacle(LaneY(i), opts.Random))
	}

	return s
}

// Tick advances the session by dt seconds
// Order is fixed: every obstacle advances and checks collision, then the player
// updates, so a hit detected in this tick is resolved in this tick
func (s *Session) Tick(dt float64) {
	if s.ended {
		return
	}
	if dt < 0 {
		dt = 0
	}

	for _, o := range s.obstacles {
		o.Advance(dt)
		o.CheckCollision(s.player)
	}

	s.player.Update()
}

// HandleInput forwards a movement command to the player
func (s *Session) HandleInput(dir Direction) {
	if s.ended {
		return
	}
	s.player.HandleInput(dir)
}

// AdvanceLevel moves to the next level: player back to start without penalty,
// all obstacles faster, level and score incremented
func (s *Session) AdvanceLevel() {
	if s.ended {
		return
	}

	s.player.Reset()

	for _, o := range s.obstacles {
		o.IncreaseSpeed()
	}

	s.level++
	s.score += constants.ScorePerLevel

	s.display.OnLevelUp(s.level, s.score)
}

// EndGame moves the session to its terminal state and reports the final score
func (s *Session) EndGame() {
	if s.ended {
		return
	}
	s.ended = true
	s.display.OnGameEnd(s.score)
}

func (s *Session) ID() string             { return s.id }
func (s *Session) Level() int             { return s.level }
func (s *Session) Score() int             { return s.score }
func (s *Session) Ended() bool            { return s.ended }
func (s *Session) Lives() int             { return s.player.lives }
func (s *Session) Player() *Player        { return s.player }
func (s *Session) Obstacles() []*Obstacle { return s.obstacles }

// Renderables returns obstacles followed by the player, in draw order
func (s *Session) Renderables() []Renderable {
	out := make([]Renderable, 0, len(s.obstacles)+1)
	for _, o := range s.obstacles {
		out = append(out, o)
	}
	return append(out, s.player)
}

// sessionSignals routes player signals back into the owning session
type sessionSignals Session

func (ss *sessionSignals) GoalReached() {
	(*Session)(ss).AdvanceLevel()
}

func (ss *sessionSignals) LifeLost(remaining int) {
	s := (*Session)(ss)
	if s.ended {
		return
	}
	s.display.OnLifeLost(remaining)
}

func (ss *sessionSignals) LivesDepleted() {
	(*Session)(ss).EndGame()
}

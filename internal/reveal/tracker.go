package reveal

import (
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/d2reveal/internal/game/session"
	"github.com/cory-johannsen/d2reveal/internal/game/world"
)

// Outcome describes what a Tracker tick did.
type Outcome int

// Tick outcomes.
const (
	// OutcomeIdle means no player and nothing to reset.
	OutcomeIdle Outcome = iota
	// OutcomeReset means the player disappeared and the session was reset.
	OutcomeReset
	// OutcomeInvalidPlayer means the player reference is a placeholder.
	OutcomeInvalidPlayer
	// OutcomeNoSubArea means the player's location could not be resolved.
	OutcomeNoSubArea
	// OutcomeAlreadyRevealed means the current area was revealed earlier this session.
	OutcomeAlreadyRevealed
	// OutcomeSkippedTown means the current area is a town and towns are skipped.
	OutcomeSkippedTown
	// OutcomeRevealed means the current area was revealed by this tick.
	OutcomeRevealed
)

var outcomeNames = [...]string{
	OutcomeIdle:            "idle",
	OutcomeReset:           "reset",
	OutcomeInvalidPlayer:   "invalid_player",
	OutcomeNoSubArea:       "no_subarea",
	OutcomeAlreadyRevealed: "already_revealed",
	OutcomeSkippedTown:     "skipped_town",
	OutcomeRevealed:        "revealed",
}

// String returns the outcome name.
func (o Outcome) String() string {
	if o < 0 || int(o) >= len(outcomeNames) {
		return "unknown"
	}
	return outcomeNames[o]
}

// TrackerOptions tunes the reveal policy.
type TrackerOptions struct {
	// SkipTowns marks towns as revealed without walking them.
	SkipTowns bool
}

// Tracker decides once per tick whether the player's current subarea still
// needs revealing, and resets the session when the player leaves the game.
//
// Tracker is the only writer of the session set.
type Tracker struct {
	graph    world.Graph
	engine   *Engine
	revealed *session.Revealed
	opts     TrackerOptions
	logger   *zap.Logger
}

// NewTracker creates a Tracker.
//
// Precondition: graph, engine, revealed and logger must be non-nil.
func NewTracker(graph world.Graph, engine *Engine, revealed *session.Revealed, opts TrackerOptions, logger *zap.Logger) *Tracker {
	return &Tracker{
		graph:    graph,
		engine:   engine,
		revealed: revealed,
		opts:     opts,
		logger:   logger,
	}
}

// Session returns the session set the tracker maintains.
func (t *Tracker) Session() *session.Revealed {
	return t.revealed
}

// Tick runs one polling step.
//
// Postcondition: The session set is empty after a tick with no local player;
// an area already in the set causes no host routine invocations.
func (t *Tracker) Tick() (Outcome, Stats) {
	player := t.graph.LocalPlayer()
	if player == 0 {
		if t.revealed.Empty() {
			return OutcomeIdle, Stats{}
		}
		t.logger.Info("out of game, resetting revealed areas",
			zap.Stringer("session", t.revealed.ID()),
			zap.Int("areas", t.revealed.Len()),
			zap.Duration("session_age", time.Since(t.revealed.Started())),
		)
		t.revealed.Reset()
		return OutcomeReset, Stats{}
	}
	if !t.graph.UnitIsValid(player) {
		return OutcomeInvalidPlayer, Stats{}
	}

	sub := t.graph.UnitSubArea(player)
	if sub == 0 {
		return OutcomeNoSubArea, Stats{}
	}
	id := t.graph.SubAreaID(sub)
	if t.revealed.Contains(id) {
		return OutcomeAlreadyRevealed, Stats{}
	}
	if t.opts.SkipTowns && id.IsTown() {
		t.revealed.Add(id)
		t.logger.Debug("skipping town", zap.Stringer("area", id))
		return OutcomeSkippedTown, Stats{}
	}

	t.logger.Info("revealing area",
		zap.Uint32("area_id", uint32(id)),
		zap.Stringer("area", id),
		zap.Stringer("session", t.revealed.ID()),
	)
	st := t.engine.RevealSubArea(sub, world.AreaOf(t.graph, sub))
	t.revealed.Add(id)
	t.logger.Debug("area revealed",
		zap.Stringer("area", id),
		zap.Int("rooms", st.Rooms),
		zap.Int("revealed", st.Revealed),
		zap.Int("neighbors", st.Neighbors),
		zap.Int("registered", st.Registered),
		zap.Int("skipped", st.Skipped),
	)
	return OutcomeRevealed, st
}

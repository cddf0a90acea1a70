package metrics

import (
	"reversi/game"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

type AgentConfig struct {
	ID   int
	Kind string // agent.RandomKind or agent.FirstKind
	Seed uint64
}

type MoveMetric struct {
	Step   int
	Player string
	Move   game.GameMove
	Flips  int
}

type GameMetric struct {
	GameID         uuid.UUID
	StartingPlayer string
	Winner         string
	Black          int // Final disc count
	White          int
	Moves          int
	Passes         int
	Flips          int
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
}

type Collector interface {
	Start(startingPlayer string)
	AddMove(flips int)
	AddPass()
	Complete(winner string, black, white int) GameMetric
}

type collector struct {
	gameID         uuid.UUID
	startingPlayer string
	startTime      time.Time
	moves          atomic.Int32
	passes         atomic.Int32
	flips          atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(startingPlayer string) {
	m.gameID = uuid.New()
	m.startingPlayer = startingPlayer
	m.startTime = time.Now()
	m.moves.Store(0)
	m.passes.Store(0)
	m.flips.Store(0)
}

func (m *collector) AddMove(flips int) {
	m.moves.Add(1)
	m.flips.Add(int32(flips))
}

func (m *collector) AddPass() {
	m.passes.Add(1)
}

func (m *collector) Complete(winner string, black, white int) GameMetric {
	end := time.Now()
	return GameMetric{
		GameID:         m.gameID,
		StartingPlayer: m.startingPlayer,
		Winner:         winner,
		Black:          black,
		White:          white,
		Moves:          int(m.moves.Load()),
		Passes:         int(m.passes.Load()),
		Flips:          int(m.flips.Load()),
		StartTime:      m.startTime,
		EndTime:        end,
		Duration:       end.Sub(m.startTime),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(startingPlayer string) {}
func (m *dummyCollector) AddMove(flips int)           {}
func (m *dummyCollector) AddPass()                    {}
func (m *dummyCollector) Complete(winner string, black, white int) GameMetric {
	return GameMetric{Winner: winner, Black: black, White: white}
}

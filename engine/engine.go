package engine

import "reversi/experiments/metrics"

type Engine interface {
	// Run plays a game until neither side can move or MaxTurns is reached
	Run() (winner string, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}

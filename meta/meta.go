// meta/meta.go
package meta

// MAX_TURNS bounds a game loop. A game has at most 60 placements, and every
// pass is followed by a placement, so a finished game never reaches it.
const MAX_TURNS = 150

// NUM_GAMES is the default number of self-play games per matchup.
const NUM_GAMES = 10

// OUTPUT_DIR is the default root for experiment records.
const OUTPUT_DIR = "experiments"

// SEED is the default seed for random agents.
const SEED = 1

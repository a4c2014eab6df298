// meta/meta.go
package meta

// GAMES defines the number of games of an experiment run.
const GAMES = 500

// WORKERS defines the number of games played concurrently.
const WORKERS = 8

// PLAYOUT_BAND defines how many consecutive game ids share a playout count.
const PLAYOUT_BAND = 100

// PLAYOUTS defines the MCTS playouts per band, the last one covers every remaining game.
var PLAYOUTS = []int{10, 20, 40, 80, 160}

// EXCLUDED_WONDERS defines the wonders never dealt in experiments.
var EXCLUDED_WONDERS = []string{"Babylon", "Halikarnassus", "Olympia"}

// OUTPUT_DIR defines where experiment results are written.
const OUTPUT_DIR = "results"

package searcher

import (
	"fmt"
	"math"
)

// ucb scores the children of one parent.
type ucb struct {
	exploration float64
}

func newUCB(parentVisits int) ucb {
	if parentVisits <= 0 {
		panic(fmt.Sprintf("cannot score children of a node with %d visits", parentVisits))
	}
	return ucb{exploration: CSquared * math.Log(float64(parentVisits))}
}

func (u ucb) score(rewards, visits int) float64 {
	if visits <= 0 {
		panic("cannot score a node that was never visited")
	}
	n := float64(visits)
	return float64(rewards)/n + math.Sqrt(u.exploration/n)
}

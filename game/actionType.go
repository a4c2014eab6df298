package game

// ActionKind is what the simulator expects from a seat at the current decision point.
type ActionKind int

const (
	PlayFromHand ActionKind = iota
	PlayFromDiscarded
	Wait
	WatchScore
)

var actionKindNames = []string{"PLAY_FROM_HAND", "PLAY_FROM_DISCARDED", "WAIT", "WATCH_SCORE"}

func (k ActionKind) String() string {
	if k < 0 || int(k) >= len(actionKindNames) {
		return "UNKNOWN"
	}
	return actionKindNames[k]
}

type HandRotation int

const (
	RotateLeft HandRotation = iota
	RotateRight
)

func rotationForAge(age int) HandRotation {
	if age == 2 {
		return RotateRight
	}
	return RotateLeft
}

type Playability struct {
	IsPlayable         bool
	IsFree             bool
	TransactionOptions TransactionOptions
}

type HandCard struct {
	Name        string
	Color       Color
	Playability Playability
}

type DiscardedCard struct {
	Name  string
	Color Color
}

type Action struct {
	Kind      ActionKind
	Hand      []HandCard
	Discarded []DiscardedCard
}

type WonderBuildability struct {
	IsBuildable        bool
	IsFree             bool
	TransactionOptions TransactionOptions
}

type BoardView struct {
	Seat        int
	WonderName  string
	StagesBuilt int
	Coins       int
	Military    Military
	Played      []string
}

type Table struct {
	Boards          []BoardView
	CurrentAge      int
	HandRotation    HandRotation
	LastPlayedMoves []PlayedMove
}

// PlayerTurnInfo is one seat's observable state at a decision point.
type PlayerTurnInfo struct {
	Seat               int
	Action             Action
	Table              Table
	WonderBuildability WonderBuildability
}

func (ti PlayerTurnInfo) Hand() []HandCard {
	return ti.Action.Hand
}

package game

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// Game is the simulator. Every seat prepares a move, then PlayTurn resolves them together.
// Given the same wonders and decks, the same sequence of moves always leads to the same state.
type Game struct {
	id         int
	settings   Settings
	boards     []*Board
	decks      Decks
	hands      [][]Card
	discarded  []Card
	age        int
	prepared   []*PlayerMove
	lastPlayed []PlayedMove

	discardPlayer int // seat playing a discarded card for free, -1 when none
}

func NewGame(id int, settings Settings, wonders []Wonder, decks Decks) *Game {
	players := len(wonders)
	if players < 3 {
		panic(fmt.Sprintf("need at least 3 players, got %d", players))
	}
	for age := 1; age <= LastAge; age++ {
		if got := len(decks.Age(age)); got != players*CardsPerPlayer {
			panic(fmt.Sprintf("age %d deck has %d cards, want %d", age, got, players*CardsPerPlayer))
		}
	}

	boards := make([]*Board, players)
	for seat, wonder := range wonders {
		boards[seat] = newBoard(seat, wonder)
	}
	g := &Game{
		id:            id,
		settings:      settings,
		boards:        boards,
		decks:         decks,
		discarded:     []Card{},
		prepared:      make([]*PlayerMove, players),
		lastPlayed:    []PlayedMove{},
		discardPlayer: -1,
	}
	g.startAge(1)
	return g
}

func (g *Game) ID() int {
	return g.id
}

func (g *Game) Players() int {
	return len(g.boards)
}

func (g *Game) Decks() Decks {
	var decks Decks
	for i := range g.decks {
		decks[i] = slices.Clone(g.decks[i])
	}
	return decks
}

func (g *Game) startAge(age int) {
	g.age = age
	players := len(g.boards)
	g.hands = make([][]Card, players)
	for i, card := range g.decks.Age(age) {
		g.hands[i%players] = append(g.hands[i%players], card)
	}
}

func (g *Game) EndOfGameReached() bool {
	if g.age < LastAge || g.discardPlayer >= 0 {
		return false
	}
	for _, hand := range g.hands {
		if len(hand) > 0 {
			return false
		}
	}
	return true
}

func (g *Game) isDue(seat int) bool {
	if g.EndOfGameReached() {
		return false
	}
	if g.discardPlayer >= 0 {
		return seat == g.discardPlayer
	}
	return len(g.hands[seat]) > 0
}

func (g *Game) PrepareMove(seat int, move PlayerMove) error {
	if seat < 0 || seat >= len(g.boards) {
		return fmt.Errorf("%w: %d", ErrUnknownSeat, seat)
	}
	if g.EndOfGameReached() {
		return ErrGameOver
	}
	if !g.isDue(seat) {
		return fmt.Errorf("%w: seat %d", ErrNotYourTurn, seat)
	}
	if prepared := g.prepared[seat]; prepared != nil {
		return fmt.Errorf("%w: seat %d already chose %s", ErrMoveAlreadyPrepared, seat, prepared)
	}
	if err := g.validate(seat, move); err != nil {
		return fmt.Errorf("seat %d cannot %s: %w", seat, move, err)
	}
	g.prepared[seat] = &move
	return nil
}

func (g *Game) validate(seat int, move PlayerMove) error {
	if g.discardPlayer >= 0 {
		if move.Type != PlayFreeDiscarded {
			return fmt.Errorf("%w: only a discarded card can be played", ErrIllegalMove)
		}
		if indexOf(g.discarded, move.CardName) < 0 {
			return fmt.Errorf("%w: %q is not in the discard pile", ErrIllegalMove, move.CardName)
		}
		if g.boards[seat].Has(move.CardName) {
			return fmt.Errorf("%w: %q is already built", ErrIllegalMove, move.CardName)
		}
		return nil
	}

	i := indexOf(g.hands[seat], move.CardName)
	if i < 0 {
		return fmt.Errorf("%w: %q is not in hand", ErrIllegalMove, move.CardName)
	}
	switch move.Type {
	case Play:
		p := playability(g.hands[seat][i], g.boards, seat)
		if !p.IsPlayable {
			return fmt.Errorf("%w: %q is not playable", ErrIllegalMove, move.CardName)
		}
		if !p.TransactionOptions.contains(move.Transactions) {
			return fmt.Errorf("%w: unavailable transactions", ErrIllegalMove)
		}
	case UpgradeWonder:
		b := buildability(g.boards, seat)
		if !b.IsBuildable {
			return fmt.Errorf("%w: wonder is not buildable", ErrIllegalMove)
		}
		if !b.TransactionOptions.contains(move.Transactions) {
			return fmt.Errorf("%w: unavailable transactions", ErrIllegalMove)
		}
	case Discard:
	default:
		return fmt.Errorf("%w: %s is not allowed from hand", ErrIllegalMove, move.Type)
	}
	return nil
}

func (g *Game) AllPlayersPreparedTheirMove() bool {
	for seat := range g.boards {
		if g.isDue(seat) && g.prepared[seat] == nil {
			return false
		}
	}
	return true
}

func (g *Game) PlayTurn() error {
	if g.EndOfGameReached() {
		return ErrGameOver
	}
	if !g.AllPlayersPreparedTheirMove() {
		return ErrMissingMoves
	}

	if g.discardPlayer >= 0 {
		g.playDiscardedTurn()
	} else {
		g.playHandTurn()
	}
	for seat := range g.prepared {
		g.prepared[seat] = nil
	}
	return nil
}

func (g *Game) playHandTurn() {
	players := len(g.boards)
	income := make([]int, players)
	built := make([]*Card, players)
	played := make([]PlayedMove, 0, players)

	for seat, board := range g.boards {
		move := *g.prepared[seat]
		card := g.takeFromHand(seat, move.CardName)

		switch move.Type {
		case Play:
			board.Coins -= card.Cost.Coins + move.Transactions.Price()
			g.payNeighbours(seat, move.Transactions, income)
			board.Played = append(board.Played, card)
			board.Military.Shields += card.Shields
			built[seat] = &card
		case UpgradeWonder:
			stage, _ := board.nextStage()
			board.Coins -= move.Transactions.Price()
			g.payNeighbours(seat, move.Transactions, income)
			board.StagesBuilt++
			board.Military.Shields += stage.Shields
			income[seat] += stage.Coins
			if stage.PlayDiscarded {
				board.canPlayDiscarded = true
			}
		case Discard:
			income[seat] += discardIncome
			g.discarded = append(g.discarded, card)
		}

		played = append(played, PlayedMove{
			Seat:         seat,
			Type:         move.Type,
			CardName:     card.Name,
			Color:        card.Color,
			Transactions: move.Transactions,
		})
	}

	// Card income is computed once every card of the turn is on the table.
	for seat, card := range built {
		if card != nil {
			income[seat] += card.Coins + card.Income.count(g.boards, seat)
		}
	}
	for seat, coins := range income {
		g.boards[seat].Coins += coins
	}

	g.lastPlayed = played
	g.endTurn()
}

func (g *Game) playDiscardedTurn() {
	seat := g.discardPlayer
	move := *g.prepared[seat]
	i := indexOf(g.discarded, move.CardName)
	card := g.discarded[i]
	g.discarded = slices.Delete(g.discarded, i, i+1)

	board := g.boards[seat]
	board.Played = append(board.Played, card)
	board.Military.Shields += card.Shields
	board.Coins += card.Coins + card.Income.count(g.boards, seat)

	g.lastPlayed = []PlayedMove{{Seat: seat, Type: PlayFreeDiscarded, CardName: card.Name, Color: card.Color}}
	g.discardPlayer = -1
}

func (g *Game) payNeighbours(seat int, transactions Transactions, income []int) {
	for _, t := range transactions {
		if t.Provider == LeftPlayer {
			income[leftOf(seat, len(g.boards))] += t.Price
		} else {
			income[rightOf(seat, len(g.boards))] += t.Price
		}
	}
}

func (g *Game) takeFromHand(seat int, name string) Card {
	hand := g.hands[seat]
	i := indexOf(hand, name)
	card := hand[i]
	g.hands[seat] = slices.Delete(slices.Clone(hand), i, i+1)
	return card
}

func (g *Game) endTurn() {
	exhausted := true
	for _, hand := range g.hands {
		if len(hand) > 1 {
			exhausted = false
			break
		}
	}

	if exhausted {
		for seat, hand := range g.hands {
			g.discarded = append(g.discarded, hand...)
			g.hands[seat] = nil
		}
		g.resolveConflicts()
		if g.age < LastAge {
			g.startAge(g.age + 1)
		}
	} else {
		g.rotateHands()
	}

	for seat, board := range g.boards {
		if !board.canPlayDiscarded {
			continue
		}
		board.canPlayDiscarded = false
		if slices.ContainsFunc(g.discarded, func(c Card) bool { return !board.Has(c.Name) }) {
			g.discardPlayer = seat
			break
		}
	}
}

func (g *Game) rotateHands() {
	players := len(g.hands)
	rotated := make([][]Card, players)
	for seat := range g.hands {
		if rotationForAge(g.age) == RotateLeft {
			rotated[seat] = g.hands[rightOf(seat, players)]
		} else {
			rotated[seat] = g.hands[leftOf(seat, players)]
		}
	}
	g.hands = rotated
}

func (g *Game) resolveConflicts() {
	players := len(g.boards)
	for seat, board := range g.boards {
		for _, neighbour := range []int{leftOf(seat, players), rightOf(seat, players)} {
			theirs := g.boards[neighbour].Military.Shields
			switch {
			case board.Military.Shields > theirs:
				board.Military.VictoryPoints += victoryPointsByAge[g.age]
			case board.Military.Shields < theirs:
				board.Military.DefeatTokens++
			}
		}
	}
}

// CurrentTurnInfo returns one record per seat. The records share no memory with the game.
func (g *Game) CurrentTurnInfo() []PlayerTurnInfo {
	infos := make([]PlayerTurnInfo, len(g.boards))
	for seat := range g.boards {
		info := PlayerTurnInfo{
			Seat:   seat,
			Action: g.action(seat),
			Table:  g.table(),
		}
		if info.Action.Kind == PlayFromHand {
			info.WonderBuildability = buildability(g.boards, seat)
		}
		infos[seat] = info
	}
	return infos
}

func (g *Game) action(seat int) Action {
	switch {
	case g.EndOfGameReached():
		return Action{Kind: WatchScore}
	case g.discardPlayer == seat:
		discarded := make([]DiscardedCard, len(g.discarded))
		for i, card := range g.discarded {
			discarded[i] = DiscardedCard{Name: card.Name, Color: card.Color}
		}
		return Action{Kind: PlayFromDiscarded, Discarded: discarded}
	case g.discardPlayer >= 0:
		return Action{Kind: Wait}
	}

	hand := make([]HandCard, len(g.hands[seat]))
	for i, card := range g.hands[seat] {
		hand[i] = HandCard{Name: card.Name, Color: card.Color, Playability: playability(card, g.boards, seat)}
	}
	return Action{Kind: PlayFromHand, Hand: hand}
}

func (g *Game) table() Table {
	boards := make([]BoardView, len(g.boards))
	for seat, b := range g.boards {
		boards[seat] = BoardView{
			Seat:        seat,
			WonderName:  b.Wonder.Name,
			StagesBuilt: b.StagesBuilt,
			Coins:       b.Coins,
			Military:    b.Military,
			Played:      cardNames(b.Played),
		}
	}
	return Table{
		Boards:          boards,
		CurrentAge:      g.age,
		HandRotation:    rotationForAge(g.age),
		LastPlayedMoves: slices.Clone(g.lastPlayed),
	}
}

func indexOf(cards []Card, name string) int {
	return slices.IndexFunc(cards, func(c Card) bool { return c.Name == name })
}

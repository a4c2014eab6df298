package game

import "errors"

var (
	ErrUnknownSeat         = errors.New("unknown seat")
	ErrGameOver            = errors.New("game is over")
	ErrNotYourTurn         = errors.New("seat is not due to act")
	ErrMoveAlreadyPrepared = errors.New("move already prepared")
	ErrIllegalMove         = errors.New("illegal move")
	ErrMissingMoves        = errors.New("not all players prepared their move")
)

const discardIncome = 3

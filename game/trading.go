package game

import "golang.org/x/exp/slices"

const (
	pricePerUnit          = 2
	maxTransactionOptions = 8
)

// transactionOptions lists the ways the seat can pay for cost, buying what its own production
// lacks from its neighbours. No options means the cost cannot be paid. A single empty option means
// nothing has to be bought.
func transactionOptions(cost Cost, boards []*Board, seat int) TransactionOptions {
	board := boards[seat]
	if board.Coins < cost.Coins {
		return nil
	}
	missing := cost.Resources.Missing(board.Production())
	if missing.IsEmpty() {
		return TransactionOptions{Transactions{}}
	}

	left := boards[leftOf(seat, len(boards))].Production()
	right := boards[rightOf(seat, len(boards))].Production()
	budget := board.Coins - cost.Coins

	options := TransactionOptions{}
	var fromLeft Resources
	var assign func(r Resource)
	assign = func(r Resource) {
		if r == numResources {
			var fromRight Resources
			for i := range missing {
				fromRight[i] = missing[i] - fromLeft[i]
			}
			ts := buyFrom(fromLeft, fromRight)
			if ts.Price() <= budget {
				options = append(options, ts)
			}
			return
		}
		for k := min(missing[r], left[r]); k >= 0; k-- {
			if missing[r]-k > right[r] {
				continue
			}
			fromLeft[r] = k
			assign(r + 1)
		}
		fromLeft[r] = 0
	}
	assign(Wood)

	slices.SortStableFunc(options, func(a, b Transactions) int {
		return a.Price() - b.Price()
	})
	if len(options) > maxTransactionOptions {
		options = options[:maxTransactionOptions]
	}
	if len(options) == 0 {
		return nil
	}
	return options
}

func buyFrom(left, right Resources) Transactions {
	ts := Transactions{}
	if !left.IsEmpty() {
		ts = append(ts, Transaction{Provider: LeftPlayer, Resources: left, Price: pricePerUnit * left.Count()})
	}
	if !right.IsEmpty() {
		ts = append(ts, Transaction{Provider: RightPlayer, Resources: right, Price: pricePerUnit * right.Count()})
	}
	return ts
}

func playability(card Card, boards []*Board, seat int) Playability {
	if boards[seat].Has(card.Name) {
		return Playability{}
	}
	options := transactionOptions(card.Cost, boards, seat)
	if len(options) == 0 {
		return Playability{}
	}
	return Playability{
		IsPlayable:         true,
		IsFree:             card.Cost.Coins == 0 && len(options[0]) == 0,
		TransactionOptions: options,
	}
}

func buildability(boards []*Board, seat int) WonderBuildability {
	stage, ok := boards[seat].nextStage()
	if !ok {
		return WonderBuildability{}
	}
	options := transactionOptions(Cost{Resources: stage.Cost}, boards, seat)
	if len(options) == 0 {
		return WonderBuildability{}
	}
	return WonderBuildability{
		IsBuildable:        true,
		IsFree:             len(options[0]) == 0,
		TransactionOptions: options,
	}
}

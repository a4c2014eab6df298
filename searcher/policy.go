package searcher

// Hyperparameters for MCTS

const ExploreConstant = 0.3

// UCT = q/n + C*sqrt(2*ln(N)/n) = q/n + sqrt(CSquared*ln(N)/n)
const CSquared = 2 * ExploreConstant * ExploreConstant

// Rewards are win rates: a rollout is won only by the sole top scorer
const Win = 1
const Loss = 0

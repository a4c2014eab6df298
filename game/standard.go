package game

// The standard catalogue for three players.

func raw(name string, age, coins int, produces ...Resource) Card {
	return Card{Name: name, Color: Brown, Age: age, Cost: Cost{Coins: coins}, Production: Of(produces...)}
}

func manufactured(name string, age int, produces Resource) Card {
	return Card{Name: name, Color: Grey, Age: age, Production: Of(produces)}
}

func civil(name string, age, points int, cost ...Resource) Card {
	return Card{Name: name, Color: Blue, Age: age, Points: points, Cost: Cost{Resources: Of(cost...)}}
}

func military(name string, age, shields int, cost ...Resource) Card {
	return Card{Name: name, Color: Red, Age: age, Shields: shields, Cost: Cost{Resources: Of(cost...)}}
}

func scientific(name string, age int, symbol Science, cost ...Resource) Card {
	return Card{Name: name, Color: Green, Age: age, Science: symbol, Cost: Cost{Resources: Of(cost...)}}
}

func commercial(name string, age, coins int, income, reward *Bonus, cost ...Resource) Card {
	return Card{
		Name:   name,
		Color:  Yellow,
		Age:    age,
		Coins:  coins,
		Income: income,
		Reward: reward,
		Cost:   Cost{Resources: Of(cost...)},
	}
}

func guild(name string, reward Bonus, cost ...Resource) Card {
	return Card{Name: name, Color: Purple, Age: 3, Reward: &reward, Cost: Cost{Resources: Of(cost...)}}
}

func perColor(amount int, self, neighbours bool, colors ...Color) *Bonus {
	return &Bonus{Colors: colors, Self: self, Neighbours: neighbours, Amount: amount}
}

func perStage(amount int, self, neighbours bool) *Bonus {
	return &Bonus{WonderStages: true, Self: self, Neighbours: neighbours, Amount: amount}
}

func standardAgeOne() []Card {
	return []Card{
		raw("Lumber Yard", 1, 0, Wood),
		raw("Stone Pit", 1, 0, Stone),
		raw("Clay Pool", 1, 0, Clay),
		raw("Ore Vein", 1, 0, Ore),
		raw("Tree Farm", 1, 1, Wood),
		raw("Excavation", 1, 1, Stone),
		manufactured("Loom", 1, Loom),
		manufactured("Glassworks", 1, Glass),
		manufactured("Press", 1, Papyrus),
		commercial("Tavern", 1, 5, nil, nil),
		commercial("Marketplace", 1, 0, perColor(1, true, true, Grey), nil),
		military("Stockade", 1, 1, Wood),
		military("Barracks", 1, 1, Ore),
		military("Guard Tower", 1, 1, Clay),
		civil("Altar", 1, 2),
		civil("Theater", 1, 2),
		civil("Baths", 1, 3, Stone),
		civil("Pawnshop", 1, 3),
		scientific("Apothecary", 1, Compass, Loom),
		scientific("Workshop", 1, Gear, Glass),
		scientific("Scriptorium", 1, Tablet, Papyrus),
	}
}

func standardAgeTwo() []Card {
	return []Card{
		raw("Sawmill", 2, 1, Wood, Wood),
		raw("Quarry", 2, 1, Stone, Stone),
		raw("Brickyard", 2, 1, Clay, Clay),
		raw("Foundry", 2, 1, Ore, Ore),
		manufactured("Loom", 2, Loom),
		manufactured("Glassworks", 2, Glass),
		manufactured("Press", 2, Papyrus),
		commercial("Vineyard", 2, 0, perColor(1, true, true, Brown), nil),
		commercial("Bazar", 2, 0, perColor(2, true, true, Grey), nil),
		military("Walls", 2, 2, Stone, Stone, Stone),
		military("Training Ground", 2, 2, Ore, Ore, Wood),
		military("Stables", 2, 2, Clay, Wood, Ore),
		military("Archery Range", 2, 2, Wood, Wood, Ore),
		civil("Aqueduct", 2, 5, Stone, Stone, Stone),
		civil("Temple", 2, 3, Wood, Clay, Glass),
		civil("Statue", 2, 4, Ore, Ore, Wood),
		civil("Courthouse", 2, 4, Clay, Clay, Loom),
		scientific("Dispensary", 2, Compass, Ore, Ore, Glass),
		scientific("Laboratory", 2, Gear, Clay, Clay, Papyrus),
		scientific("Library", 2, Tablet, Stone, Stone, Loom),
		scientific("School", 2, Tablet, Wood, Papyrus),
	}
}

func standardAgeThree() []Card {
	return []Card{
		military("Fortifications", 3, 3, Ore, Ore, Ore, Stone),
		military("Circus", 3, 3, Stone, Stone, Stone, Ore),
		military("Arsenal", 3, 3, Wood, Wood, Ore, Loom),
		military("Siege Workshop", 3, 3, Clay, Clay, Clay, Wood),
		civil("Pantheon", 3, 7, Clay, Clay, Ore, Glass, Papyrus, Loom),
		civil("Gardens", 3, 5, Clay, Clay, Wood),
		civil("Town Hall", 3, 6, Stone, Stone, Ore, Glass),
		civil("Palace", 3, 8, Wood, Stone, Ore, Clay, Glass, Papyrus, Loom),
		civil("Senate", 3, 6, Wood, Wood, Stone, Ore),
		commercial("Haven", 3, 0, perColor(1, true, false, Brown), perColor(1, true, false, Brown), Wood, Ore, Loom),
		commercial("Lighthouse", 3, 0, perColor(1, true, false, Yellow), perColor(1, true, false, Yellow), Stone, Glass),
		commercial("Arena", 3, 0, perStage(3, true, false), perStage(1, true, false), Stone, Stone, Ore),
		scientific("Lodge", 3, Compass, Clay, Clay, Loom, Papyrus),
		scientific("Observatory", 3, Gear, Ore, Ore, Glass, Loom),
		scientific("University", 3, Tablet, Wood, Wood, Glass, Papyrus),
		scientific("Academy", 3, Compass, Stone, Stone, Stone, Glass),
	}
}

func standardGuilds() []Card {
	return []Card{
		guild("Workers Guild", *perColor(1, false, true, Brown), Ore, Ore, Clay, Stone, Wood),
		guild("Craftsmens Guild", *perColor(2, false, true, Grey), Ore, Ore, Stone, Stone),
		guild("Traders Guild", *perColor(1, false, true, Yellow), Loom, Papyrus, Glass),
		guild("Philosophers Guild", *perColor(1, false, true, Green), Clay, Clay, Clay, Loom, Papyrus),
		guild("Spies Guild", *perColor(1, false, true, Red), Clay, Clay, Clay, Glass),
		guild("Magistrates Guild", *perColor(1, false, true, Blue), Wood, Wood, Wood, Stone, Loom),
		guild("Builders Guild", *perStage(1, true, true), Stone, Stone, Clay, Clay, Glass),
		guild("Shipowners Guild", *perColor(1, true, false, Brown, Grey, Purple), Wood, Wood, Wood, Glass, Papyrus),
	}
}

func standardWonders() []Wonder {
	return []Wonder{
		{Name: "Rhodos", Initial: Ore, Stages: []WonderStage{
			{Cost: Of(Wood, Wood), Points: 3},
			{Cost: Of(Clay, Clay, Clay), Shields: 2},
			{Cost: Of(Ore, Ore, Ore, Ore), Points: 7},
		}},
		{Name: "Alexandria", Initial: Glass, Stages: []WonderStage{
			{Cost: Of(Stone, Stone), Points: 3},
			{Cost: Of(Ore, Ore), Coins: 6},
			{Cost: Of(Glass, Glass), Points: 7},
		}},
		{Name: "Ephesos", Initial: Papyrus, Stages: []WonderStage{
			{Cost: Of(Stone, Stone), Points: 3},
			{Cost: Of(Wood, Wood), Coins: 9},
			{Cost: Of(Papyrus, Papyrus), Points: 7},
		}},
		{Name: "Gizah", Initial: Stone, Stages: []WonderStage{
			{Cost: Of(Stone, Stone), Points: 3},
			{Cost: Of(Wood, Wood, Wood), Points: 5},
			{Cost: Of(Stone, Stone, Stone, Stone), Points: 7},
		}},
		{Name: "Babylon", Initial: Clay, Stages: []WonderStage{
			{Cost: Of(Clay, Clay), Points: 3},
			{Cost: Of(Wood, Wood, Wood), Science: Tablet},
			{Cost: Of(Clay, Clay, Clay, Clay), Points: 7},
		}},
		{Name: "Olympia", Initial: Wood, Stages: []WonderStage{
			{Cost: Of(Wood, Wood), Points: 3},
			{Cost: Of(Stone, Stone), Coins: 4, Points: 2},
			{Cost: Of(Ore, Ore), Points: 7},
		}},
		{Name: "Halikarnassus", Initial: Loom, Stages: []WonderStage{
			{Cost: Of(Clay, Clay), Points: 3},
			{Cost: Of(Ore, Ore, Ore), PlayDiscarded: true},
			{Cost: Of(Glass, Glass), Points: 7},
		}},
	}
}

package entities

func level(l EducationLevel) *EducationLevel { return &l }
func relType(t RelationType) *RelationType   { return &t }

// DefaultEvents is the builtin life-event catalog. Every event is
// eligibility-gated; the selector picks one uniformly at random from
// the eligible set each time an event fires.
var DefaultEvents = []Event{
	// Childhood
	{
		ID: "first_steps", Text: "You took your first steps today!", Category: "milestone",
		AgeRange: &AgeRange{Min: 1, Max: 2},
		Choices: []Choice{
			{Text: "Wobble proudly", Effects: StatDelta{Happiness: 5}},
		},
	},
	{
		ID: "playground_fall", Text: "You fell off the slide at the playground.", Category: "childhood",
		AgeRange: &AgeRange{Min: 3, Max: 8},
		Choices: []Choice{
			{Text: "Cry until someone helps", Effects: StatDelta{Happiness: -3, Health: -2}},
			{Text: "Shake it off", Effects: StatDelta{Happiness: 2, Health: -4}},
		},
	},
	{
		ID: "stray_kitten", Text: "A stray kitten follows you home and your parents say you can keep it.", Category: "childhood",
		AgeRange: &AgeRange{Min: 5, Max: 12}, RequireRelationship: relType(RelationParent),
		Choices: []Choice{
			{Text: "Keep the kitten", Effects: StatDelta{Happiness: 10}, AddRel: &RelationshipAdd{Name: "Mittens", Type: RelationPet}},
			{Text: "Find it another home", Effects: StatDelta{Happiness: 2, Smarts: 2}},
		},
	},
	{
		ID: "school_spelling_bee", Text: "Your school is holding a spelling bee.", Category: "school",
		AgeRange: &AgeRange{Min: 6, Max: 10}, RequireEducation: level(EducationElementary),
		Choices: []Choice{
			{Text: "Study hard and compete", Effects: StatDelta{Smarts: 8, Happiness: 3}},
			{Text: "Skip it", Effects: StatDelta{Happiness: 1}},
		},
	},
	{
		ID: "middle_school_bully", Text: "An older kid keeps picking on you at school.", Category: "school",
		AgeRange: &AgeRange{Min: 11, Max: 13}, RequireEducation: level(EducationMiddle),
		Choices: []Choice{
			{Text: "Tell a teacher", Effects: StatDelta{Smarts: 3, Happiness: 2}},
			{Text: "Stand up to them", Effects: StatDelta{Happiness: 5, Health: -5}},
			{Text: "Avoid them", Effects: StatDelta{Happiness: -5}},
		},
	},
	{
		ID: "sibling_argument", Text: "Your sibling borrowed your things without asking. Again.", Category: "family",
		AgeRange: &AgeRange{Min: 8, Max: 17}, RequireRelationship: relType(RelationSibling),
		Choices: []Choice{
			{Text: "Let it go", Effects: StatDelta{Happiness: 2}},
			{Text: "Start a shouting match", Effects: StatDelta{Happiness: -4}, UpdateRel: &RelationshipEdit{Target: RelationshipRef{OfType: RelationSibling}, BondDelta: -10}},
		},
	},

	// Teen years
	{
		ID: "first_crush", Text: "You have a crush on a classmate.", Category: "romance",
		AgeRange: &AgeRange{Min: 13, Max: 17},
		Choices: []Choice{
			{Text: "Ask them out", Effects: StatDelta{Happiness: 8}, AddRel: &RelationshipAdd{Type: RelationPartner}},
			{Text: "Admire from afar", Effects: StatDelta{Happiness: -2}},
		},
	},
	{
		ID: "high_school_party", Text: "You're invited to a party the night before a big exam.", Category: "school",
		AgeRange: &AgeRange{Min: 15, Max: 18}, RequireEducation: level(EducationHigh),
		Choices: []Choice{
			{Text: "Go to the party", Effects: StatDelta{Happiness: 10, Smarts: -5}},
			{Text: "Stay home and study", Effects: StatDelta{Smarts: 8, Happiness: -3}},
		},
	},
	{
		ID: "first_paycheck_temptation", Text: "A classmate dares you to shoplift a candy bar.", Category: "crime",
		AgeRange: &AgeRange{Min: 13, Max: 17},
		Choices: []Choice{
			{Text: "Do it", Effects: StatDelta{Happiness: 3}, CrimeAdd: "Petty Theft", ArrestChance: 0.2},
			{Text: "Refuse", Effects: StatDelta{Smarts: 2}},
		},
	},
	{
		ID: "summer_job_offer", Text: "The corner store is hiring for the summer.", Category: "career",
		AgeRange: &AgeRange{Min: 16, Max: 19},
		Choices: []Choice{
			{Text: "Take the job", Effects: StatDelta{Happiness: 5}, JobOffer: &JobOffer{Title: "Store Clerk", Salary: 18000, Category: "Retail"}},
			{Text: "Enjoy the summer instead", Effects: StatDelta{Happiness: 8}},
		},
	},

	// Adulthood
	{
		ID: "lottery_scratcher", Text: "A gas-station scratcher catches your eye.", Category: "gambling",
		AgeRange: &AgeRange{Min: 18, Max: 90},
		Choices: []Choice{
			{Text: "Buy one for $10", RequireMoney: 10, Effects: StatDelta{Money: -10}, GambleWin: 0.1, GambleAmount: 500},
			{Text: "Keep walking", Effects: StatDelta{Smarts: 1}},
		},
	},
	{
		ID: "old_friend_reunion", Text: "An old friend reaches out wanting to reconnect.", Category: "social",
		AgeRange: &AgeRange{Min: 20, Max: 80},
		Choices: []Choice{
			{Text: "Meet for coffee", Effects: StatDelta{Happiness: 10}, AddRel: &RelationshipAdd{Type: RelationFriend}},
			{Text: "Leave the past behind", Effects: StatDelta{Happiness: -2}},
		},
	},
	{
		ID: "overtime_request", Text: "Your boss asks you to work weekends this quarter.", Category: "career",
		AgeRange: &AgeRange{Min: 18, Max: 65}, RequireJob: true,
		Choices: []Choice{
			{Text: "Put in the hours", Effects: StatDelta{Happiness: -8}, SalaryIncrease: 5000},
			{Text: "Protect your weekends", Effects: StatDelta{Happiness: 5}},
		},
	},
	{
		ID: "workplace_layoffs", Text: "Your company announces layoffs and your name is on the list.", Category: "career",
		AgeRange: &AgeRange{Min: 20, Max: 64}, RequireJob: true,
		Choices: []Choice{
			{Text: "Accept the severance", Effects: StatDelta{Happiness: -15, Money: 10000}, JobRemove: true},
		},
	},
	{
		ID: "night_school_flyer", Text: "A night-school flyer advertises a data-analytics certificate.", Category: "education",
		AgeRange: &AgeRange{Min: 24, Max: 50}, RequireEducation: level(EducationHigh),
		Choices: []Choice{
			{Text: "Enroll for $2,000", RequireMoney: 2000, Effects: StatDelta{Money: -2000, Smarts: 10}},
			{Text: "Toss the flyer", Effects: StatDelta{}},
		},
	},
	{
		ID: "used_car_deal", Text: "A neighbor is selling their old hatchback cheap.", Category: "purchase",
		AgeRange: &AgeRange{Min: 18, Max: 70},
		Choices: []Choice{
			{Text: "Buy it for $4,000", RequireMoney: 4000, AddAsset: &AssetAdd{Kind: AssetCar, Name: "Used Hatchback", Value: 4000}},
			{Text: "Pass on it", Effects: StatDelta{}},
		},
	},
	{
		ID: "garage_startup_pitch", Text: "A friend pitches you on funding their garage startup.", Category: "business",
		AgeRange: &AgeRange{Min: 21, Max: 60}, RequireRelationship: relType(RelationFriend),
		Choices: []Choice{
			{Text: "Invest $20,000", RequireMoney: 20000, Effects: StatDelta{Money: -20000}, BusinessLuck: 0.35},
			{Text: "Wish them luck", Effects: StatDelta{Happiness: 2}},
		},
	},
	{
		ID: "anniversary_dinner", Text: "Your anniversary is coming up.", Category: "romance",
		AgeRange: &AgeRange{Min: 18, Max: 100}, RequireRelationship: relType(RelationSpouse),
		Choices: []Choice{
			{Text: "Plan a fancy dinner", RequireMoney: 300, Effects: StatDelta{Money: -300, Happiness: 12}, UpdateRel: &RelationshipEdit{Target: RelationshipRef{OfType: RelationSpouse}, BondDelta: 10}},
			{Text: "Forget about it", Effects: StatDelta{Happiness: -5}, UpdateRel: &RelationshipEdit{Target: RelationshipRef{OfType: RelationSpouse}, BondDelta: -15}},
		},
	},
	{
		ID: "midlife_checkup", Text: "Your doctor recommends a full health screening.", Category: "health",
		AgeRange: &AgeRange{Min: 40, Max: 60},
		Choices: []Choice{
			{Text: "Get screened for $400", RequireMoney: 400, Effects: StatDelta{Money: -400, Health: 10}},
			{Text: "Maybe next year", Effects: StatDelta{Health: -3}},
		},
	},

	// Later life
	{
		ID: "grandkid_visit", Text: "Your grandchildren want to visit for the weekend.", Category: "family",
		AgeRange: &AgeRange{Min: 55, Max: 110}, RequireRelationship: relType(RelationChild),
		Choices: []Choice{
			{Text: "Host the chaos", Effects: StatDelta{Happiness: 15, Health: -2}},
			{Text: "Reschedule", Effects: StatDelta{Happiness: -5}},
		},
	},
	{
		ID: "retirement_hobby", Text: "Retirement leaves you restless. Time for a hobby?", Category: "lifestyle",
		AgeRange: &AgeRange{Min: 65, Max: 100},
		Choices: []Choice{
			{Text: "Take up painting", Effects: StatDelta{Happiness: 12, Smarts: 3}},
			{Text: "Take up gardening", Effects: StatDelta{Happiness: 10, Health: 5}},
			{Text: "Stay restless", Effects: StatDelta{Happiness: -4}},
		},
	},
}

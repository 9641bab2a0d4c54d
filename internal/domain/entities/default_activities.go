package entities

// Activity categories used by the builtin catalog and the CLI menu.
const (
	ActivityMindBody    = "mind-body"
	ActivitySalon       = "salon"
	ActivitySurgery     = "surgery"
	ActivityCrime       = "crime"
	ActivityGambling    = "gambling"
	ActivitySocialMedia = "social-media"
	ActivityPets        = "pets"
	ActivityTravel      = "travel"
	ActivityDoctor      = "doctor"
)

// DefaultActivities is the builtin activity catalog.
var DefaultActivities = []Activity{
	// Mind & body
	{ID: "gym", Name: "Go to the Gym", Category: ActivityMindBody, Cost: 50, Effects: StatDelta{Health: 10, Looks: 5}, HistoryText: "Went to the gym"},
	{ID: "read_book", Name: "Read a Book", Category: ActivityMindBody, Effects: StatDelta{Smarts: 5, Happiness: 5}, HistoryText: "Read a book"},
	{ID: "meditate", Name: "Meditate", Category: ActivityMindBody, Effects: StatDelta{Happiness: 10, Health: 5}, HistoryText: "Meditated"},
	{ID: "yoga", Name: "Practice Yoga", Category: ActivityMindBody, Cost: 30, Effects: StatDelta{Health: 8, Happiness: 8}, HistoryText: "Practiced yoga"},
	{ID: "running", Name: "Go for a Run", Category: ActivityMindBody, Effects: StatDelta{Health: 12, Looks: 3}, HistoryText: "Went for a run"},
	{ID: "sports", Name: "Play Sports", Category: ActivityMindBody, Cost: 40, Effects: StatDelta{Health: 15, Happiness: 10}, HistoryText: "Played sports"},

	// Salon
	{ID: "haircut", Name: "Fresh Haircut", Category: ActivitySalon, Cost: 30, Effects: StatDelta{Looks: 5, Happiness: 5}, HistoryText: "Got a fresh haircut"},
	{ID: "mani_pedi", Name: "Manicure & Pedicure", Category: ActivitySalon, Cost: 50, Effects: StatDelta{Looks: 8, Happiness: 8}, HistoryText: "Got a manicure and pedicure"},
	{ID: "spa_day", Name: "Spa Day", Category: ActivitySalon, Cost: 150, Effects: StatDelta{Looks: 12, Happiness: 15, Health: 5}, HistoryText: "Enjoyed a spa day"},
	{ID: "facial", Name: "Facial Treatment", Category: ActivitySalon, Cost: 80, Effects: StatDelta{Looks: 10, Happiness: 6}, HistoryText: "Got a facial treatment"},

	// Cosmetic surgery
	{ID: "nose_job", Name: "Nose Job", Category: ActivitySurgery, Cost: 5000, MinAge: 18, Effects: StatDelta{Looks: 20, Health: -5}, HistoryText: "Got a nose job"},
	{ID: "botox", Name: "Botox Injections", Category: ActivitySurgery, Cost: 2000, MinAge: 18, Effects: StatDelta{Looks: 10, Health: -2}, HistoryText: "Got Botox injections"},
	{ID: "facelift", Name: "Facelift", Category: ActivitySurgery, Cost: 8000, MinAge: 18, Effects: StatDelta{Looks: 25, Health: -8}, HistoryText: "Got a facelift"},
	{ID: "lip_fillers", Name: "Lip Fillers", Category: ActivitySurgery, Cost: 3000, MinAge: 18, Effects: StatDelta{Looks: 15, Health: -4}, HistoryText: "Got lip fillers"},

	// Crime
	{ID: "shoplifting", Name: "Shoplifting", Category: ActivityCrime, Crime: &CrimeSpec{
		Label: "Shoplifting", CatchChance: 0.2, Loot: 200,
		SuccessEffects: StatDelta{Happiness: 5}, CaughtEffects: StatDelta{Happiness: -20}, Fine: 500,
		SuccessText: "Successfully shoplifted (+$200)", CaughtText: "Attempted shoplifting but got caught!",
	}},
	{ID: "burglary", Name: "Burglary", Category: ActivityCrime, Crime: &CrimeSpec{
		Label: "Burglary", CatchChance: 0.3, Loot: 1500,
		SuccessEffects: StatDelta{Happiness: -10}, CaughtEffects: StatDelta{Happiness: -30}, Fine: 2000,
		SuccessText: "Committed burglary (+$1,500)", CaughtText: "Attempted burglary but got caught!",
	}},
	{ID: "pickpocketing", Name: "Pickpocketing", Category: ActivityCrime, Crime: &CrimeSpec{
		Label: "Pickpocketing", CatchChance: 0.15, Loot: 500,
		CaughtEffects: StatDelta{Happiness: -15}, Fine: 1000,
		SuccessText: "Pickpocketed someone (+$500)", CaughtText: "Got caught pickpocketing!",
	}},
	{ID: "grand_theft_auto", Name: "Grand Theft Auto", Category: ActivityCrime, Crime: &CrimeSpec{
		Label: "Grand Theft Auto", CatchChance: 0.5, Loot: 10000,
		SuccessEffects: StatDelta{Happiness: -20}, CaughtEffects: StatDelta{Happiness: -40}, Fine: 5000,
		SuccessText: "Stole a car (+$10,000)", CaughtText: "Grand theft auto - got arrested!",
	}},

	// Gambling
	{ID: "casino", Name: "Casino", Category: ActivityGambling, Cost: 1000, MinAge: 18, Gamble: &GambleSpec{
		WinChance: 0.4, Payout: 2500,
		WinEffects: StatDelta{Happiness: 20}, LoseEffects: StatDelta{Happiness: -10},
		WinText: "Won at the casino! (+$2,500)", LoseText: "Lost $1,000 at the casino",
	}},
	{ID: "lottery", Name: "Buy Lottery Ticket", Category: ActivityGambling, Cost: 50, MinAge: 18, Gamble: &GambleSpec{
		WinChance: 0.01, Payout: 50000,
		WinEffects: StatDelta{Happiness: 50}, LoseEffects: StatDelta{Happiness: -5},
		WinText: "WON THE LOTTERY! (+$50,000)", LoseText: "Bought a lottery ticket - no luck",
	}},
	{ID: "sports_bet", Name: "Sports Bet", Category: ActivityGambling, Cost: 500, MinAge: 18, Gamble: &GambleSpec{
		WinChance: 0.5, Payout: 1200,
		WinEffects: StatDelta{Happiness: 15}, LoseEffects: StatDelta{Happiness: -8},
		WinText: "Won sports bet! (+$1,200)", LoseText: "Lost a sports bet",
	}},

	// Social media
	{ID: "instagram", Name: "Create Instagram Account", Category: ActivitySocialMedia, SocialPlatform: "Instagram", Effects: StatDelta{Happiness: 5}, HistoryText: "Created an Instagram account"},
	{ID: "tiktok", Name: "Create TikTok Account", Category: ActivitySocialMedia, SocialPlatform: "TikTok", Effects: StatDelta{Happiness: 8}, HistoryText: "Created a TikTok account"},
	{ID: "youtube", Name: "Create YouTube Channel", Category: ActivitySocialMedia, SocialPlatform: "YouTube", Effects: StatDelta{Happiness: 6}, HistoryText: "Created a YouTube channel"},
	{ID: "twitter", Name: "Create Twitter/X Account", Category: ActivitySocialMedia, SocialPlatform: "Twitter", Effects: StatDelta{Happiness: 4}, HistoryText: "Created a Twitter/X account"},

	// Pets
	{ID: "adopt_dog", Name: "Adopt a Dog", Category: ActivityPets, Cost: 500, Pet: &PetSpec{Name: "Buddy", Species: "Dog", Breed: "Golden Retriever"}, Effects: StatDelta{Happiness: 15}, HistoryText: "Adopted a dog named Buddy"},
	{ID: "adopt_cat", Name: "Adopt a Cat", Category: ActivityPets, Cost: 300, Pet: &PetSpec{Name: "Whiskers", Species: "Cat", Breed: "Persian"}, Effects: StatDelta{Happiness: 12}, HistoryText: "Adopted a cat named Whiskers"},
	{ID: "adopt_bird", Name: "Adopt a Bird", Category: ActivityPets, Cost: 100, Pet: &PetSpec{Name: "Tweety", Species: "Bird", Breed: "Parakeet"}, Effects: StatDelta{Happiness: 8}, HistoryText: "Adopted a bird named Tweety"},
	{ID: "adopt_fish", Name: "Adopt a Fish", Category: ActivityPets, Cost: 50, Pet: &PetSpec{Name: "Goldie", Species: "Fish", Breed: "Goldfish"}, Effects: StatDelta{Happiness: 5}, HistoryText: "Adopted a fish named Goldie"},

	// Travel
	{ID: "hawaii", Name: "Hawaii", Category: ActivityTravel, Cost: 3000, Effects: StatDelta{Happiness: 30, Health: 10}, HistoryText: "Took a vacation to Hawaii"},
	{ID: "paris", Name: "Paris, France", Category: ActivityTravel, Cost: 5000, Effects: StatDelta{Happiness: 35, Smarts: 10}, HistoryText: "Traveled to Paris, France"},
	{ID: "tokyo", Name: "Tokyo, Japan", Category: ActivityTravel, Cost: 4000, Effects: StatDelta{Happiness: 32, Smarts: 8}, HistoryText: "Visited Tokyo, Japan"},
	{ID: "caribbean", Name: "Caribbean Cruise", Category: ActivityTravel, Cost: 2000, Effects: StatDelta{Happiness: 25, Health: 15}, HistoryText: "Explored the Caribbean"},
	{ID: "safari", Name: "African Safari", Category: ActivityTravel, Cost: 6000, Effects: StatDelta{Happiness: 40, Smarts: 12}, HistoryText: "Safari adventure in Africa"},

	// Doctor
	{ID: "checkup", Name: "General Checkup", Category: ActivityDoctor, Cost: 200, Effects: StatDelta{Health: 15}, HistoryText: "Had a medical checkup"},
	{ID: "treatment", Name: "Medical Treatment", Category: ActivityDoctor, Cost: 500, Effects: StatDelta{Health: 30}, HistoryText: "Received medical treatment"},
	{ID: "vaccine", Name: "Get Vaccinated", Category: ActivityDoctor, Cost: 50, Effects: StatDelta{Health: 5}, HistoryText: "Got vaccinated"},
	{ID: "hospital_surgery", Name: "Surgery", Category: ActivityDoctor, Cost: 1000, Effects: StatDelta{Health: 50}, HistoryText: "Had surgery"},
}

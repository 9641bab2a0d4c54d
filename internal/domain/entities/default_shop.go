package entities

// DefaultShopItems is the builtin shopping catalog. Vehicles and real
// estate become owned assets; everything else is consumed on purchase.
var DefaultShopItems = []ShopItem{
	// Vehicles
	{ID: "bicycle", Name: "Bicycle", Description: "Eco-friendly transport", Category: ShopCategoryVehicles, Price: 500, Effects: StatDelta{Happiness: 5, Health: 5}},
	{ID: "motorcycle", Name: "Motorcycle", Description: "Fast and stylish", Category: ShopCategoryVehicles, Price: 8000, MinAge: 18, Effects: StatDelta{Happiness: 15, Looks: 10}},
	{ID: "compact_car", Name: "Compact Car", Description: "Reliable daily driver", Category: ShopCategoryVehicles, Price: 18000, MinAge: 18, Effects: StatDelta{Happiness: 20}},
	{ID: "luxury_sedan", Name: "Luxury Sedan", Description: "Comfortable luxury", Category: ShopCategoryVehicles, Price: 65000, MinAge: 18, Effects: StatDelta{Happiness: 35, Looks: 20, Fame: 5}},
	{ID: "sports_car", Name: "Sports Car", Description: "Speed and status", Category: ShopCategoryVehicles, Price: 120000, MinAge: 18, Effects: StatDelta{Happiness: 50, Looks: 30, Fame: 15}},
	{ID: "supercar", Name: "Supercar", Description: "Ultimate luxury", Category: ShopCategoryVehicles, Price: 500000, MinAge: 18, Effects: StatDelta{Happiness: 80, Looks: 50, Fame: 30}},

	// Real estate
	{ID: "studio_apt", Name: "Studio Apartment", Description: "Cozy starter home", Category: ShopCategoryRealEstate, Price: 150000, MinAge: 18, Effects: StatDelta{Happiness: 25}},
	{ID: "condo", Name: "Condo", Description: "Modern living space", Category: ShopCategoryRealEstate, Price: 350000, MinAge: 18, Effects: StatDelta{Happiness: 40, Looks: 10}},
	{ID: "house", Name: "Family House", Description: "Spacious family home", Category: ShopCategoryRealEstate, Price: 650000, MinAge: 18, Effects: StatDelta{Happiness: 60, Looks: 20}},
	{ID: "mansion", Name: "Mansion", Description: "Luxurious estate", Category: ShopCategoryRealEstate, Price: 2000000, MinAge: 18, Effects: StatDelta{Happiness: 100, Looks: 40, Fame: 25}},

	// Electronics
	{ID: "smartphone", Name: "Smartphone", Description: "Latest flagship phone", Category: "electronics", Price: 1000, Effects: StatDelta{Happiness: 15, Looks: 5}},
	{ID: "laptop", Name: "Gaming Laptop", Description: "Powerful gaming machine", Category: "electronics", Price: 2500, Effects: StatDelta{Happiness: 25}},
	{ID: "tablet", Name: "Tablet", Description: "Portable entertainment", Category: "electronics", Price: 800, Effects: StatDelta{Happiness: 10}},
	{ID: "console", Name: "Gaming Console", Description: "Next-gen gaming", Category: "electronics", Price: 500, Effects: StatDelta{Happiness: 20}},
	{ID: "tv_4k", Name: `85" 4K TV`, Description: "Home theater experience", Category: "electronics", Price: 3500, Effects: StatDelta{Happiness: 30}},
	{ID: "smartwatch", Name: "Smartwatch", Description: "Fitness tracker", Category: "electronics", Price: 400, Effects: StatDelta{Happiness: 10, Health: 5}},

	// Fashion
	{ID: "designer_outfit", Name: "Designer Outfit", Description: "High fashion", Category: "fashion", Price: 2000, Effects: StatDelta{Happiness: 20, Looks: 15}},
	{ID: "sneaker_collection", Name: "Sneaker Collection", Description: "Limited edition sneakers", Category: "fashion", Price: 5000, Effects: StatDelta{Happiness: 25, Looks: 10, Fame: 5}},
	{ID: "luxury_suit", Name: "Luxury Suit", Description: "Tailored perfection", Category: "fashion", Price: 8000, Effects: StatDelta{Happiness: 30, Looks: 25, Fame: 10}},
	{ID: "jewelry_set", Name: "Jewelry Set", Description: "Diamonds and gold", Category: "fashion", Price: 15000, Effects: StatDelta{Happiness: 35, Looks: 30, Fame: 15}},

	// Luxury
	{ID: "luxury_watch", Name: "Luxury Watch", Description: "Swiss craftsmanship", Category: "luxury", Price: 25000, Effects: StatDelta{Happiness: 40, Looks: 20, Fame: 15}},
	{ID: "yacht", Name: "Yacht", Description: "Sail in style", Category: "luxury", Price: 1500000, MinAge: 21, Effects: StatDelta{Happiness: 90, Looks: 50, Fame: 40}},
	{ID: "private_jet", Name: "Private Jet", Description: "Fly anywhere, anytime", Category: "luxury", Price: 5000000, MinAge: 21, Effects: StatDelta{Happiness: 100, Looks: 60, Fame: 50}},
	{ID: "art_collection", Name: "Art Collection", Description: "Priceless masterpieces", Category: "luxury", Price: 500000, Effects: StatDelta{Happiness: 50, Looks: 30, Fame: 20}},

	// Experiences
	{ID: "concert_vip", Name: "VIP Concert Tickets", Description: "Front row experience", Category: "experiences", Price: 1500, Effects: StatDelta{Happiness: 30}},
	{ID: "cruise", Name: "Luxury Cruise", Description: "Two-week adventure", Category: "experiences", Price: 8000, MinAge: 18, Effects: StatDelta{Happiness: 45, Health: 15}},
	{ID: "spa_retreat", Name: "Spa Retreat Weekend", Description: "Ultimate relaxation", Category: "experiences", Price: 3000, Effects: StatDelta{Happiness: 35, Health: 20}},
	{ID: "skydiving", Name: "Skydiving Experience", Description: "Adrenaline rush", Category: "experiences", Price: 300, MinAge: 18, Effects: StatDelta{Happiness: 25, Health: 5}},
}

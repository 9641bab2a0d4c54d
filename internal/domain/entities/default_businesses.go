package entities

// DefaultBusinessTypes is the builtin venture catalog.
var DefaultBusinessTypes = []BusinessType{
	{ID: "lemonade", Name: "Lemonade Stand", Description: "Start small with a classic lemonade stand", StartupCost: 100, BaseRevenue: 200, BaseEmployees: 0, MinAge: 8},
	{ID: "food_truck", Name: "Food Truck", Description: "Mobile food business serving delicious meals", StartupCost: 15000, BaseRevenue: 8000, BaseEmployees: 2, MinAge: 18},
	{ID: "coffee_shop", Name: "Coffee Shop", Description: "Cozy cafe serving coffee and pastries", StartupCost: 50000, BaseRevenue: 18000, BaseEmployees: 5, MinAge: 21},
	{ID: "restaurant", Name: "Restaurant", Description: "Fine dining establishment", StartupCost: 150000, BaseRevenue: 45000, BaseEmployees: 15, MinAge: 25},
	{ID: "tech_startup", Name: "Tech Startup", Description: "Innovative technology company", StartupCost: 100000, BaseRevenue: 50000, BaseEmployees: 10, MinAge: 22, RequiredEducation: EducationUniversity},
	{ID: "gym", Name: "Fitness Center", Description: "Modern gym with equipment and classes", StartupCost: 200000, BaseRevenue: 40000, BaseEmployees: 12, MinAge: 25},
	{ID: "real_estate", Name: "Real Estate Agency", Description: "Property sales and management", StartupCost: 80000, BaseRevenue: 60000, BaseEmployees: 8, MinAge: 25},
	{ID: "hotel", Name: "Boutique Hotel", Description: "Luxury accommodations for travelers", StartupCost: 500000, BaseRevenue: 120000, BaseEmployees: 30, MinAge: 30},
	{ID: "investment_firm", Name: "Investment Firm", Description: "Manage investments and portfolios", StartupCost: 1000000, BaseRevenue: 250000, BaseEmployees: 20, MinAge: 30, RequiredEducation: EducationGraduate},
}

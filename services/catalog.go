package services

import "concierge/models"

// The catalogs are fixed data baked into the service. The slices below are
// process-wide and must never be handed out directly, so the accessors
// return copies.

var membershipTiers = []models.MembershipTier{
	{
		ID:           "student",
		Name:         "UWI Life",
		Price:        199,
		Currency:     "TTD",
		BillingCycle: "month",
		Features: []string{
			"2 errands per week",
			"5% discount on NutriMeal",
			"Access to shared concierge app",
			"Email support",
		},
		IsPopular: false,
	},
	{
		ID:           "standard",
		Name:         "Urban Assist",
		Price:        499,
		Currency:     "TTD",
		BillingCycle: "month",
		Features: []string{
			"5 errands per week",
			"1 grocery run per week",
			"Basic NutriMeal plan access",
			"Priority email support",
			"Mobile app access",
		},
		IsPopular: true,
	},
	{
		ID:           "premium",
		Name:         "Nicholas Black",
		Price:        999,
		Currency:     "TTD",
		BillingCycle: "month",
		Features: []string{
			"Unlimited errands (within reason)",
			"Priority scheduling",
			"Daily NutriMeal delivery",
			"Direct concierge hotline",
			"24/7 support",
			"Dedicated concierge manager",
		},
		IsPopular: false,
	},
}

var nutriMealPlans = []models.NutriMealPlan{
	{
		ID:          "balanced",
		Name:        "Balanced Wellness",
		Description: "A perfect balance of proteins, carbs, and healthy fats for sustained energy throughout your day.",
		ImageURL:    "https://images.unsplash.com/photo-1544986581-efac024faf62?crop=entropy&cs=srgb&fm=jpg&ixid=M3w3NDQ2NDJ8MHwxfHNlYXJjaHwxfHxsdXh1cnklMjBob3NwaXRhbGl0eXxlbnwwfHx8fDE3NTQ1Nzc2NjR8MA&ixlib=rb-4.1.0&q=85",
		PricePerDay: 45,
		Ingredients: []string{"Grilled salmon", "Quinoa", "Roasted vegetables", "Avocado", "Mixed greens"},
		NutritionalInfo: models.NutritionalInfo{
			Calories: 650,
			Protein:  "35g",
			Carbs:    "45g",
			Fat:      "28g",
		},
	},
	{
		ID:          "power",
		Name:        "Power Professional",
		Description: "High-protein, brain-boosting meals designed for busy executives and professionals.",
		ImageURL:    "https://images.unsplash.com/photo-1695606453406-a7f4b86c99b3?crop=entropy&cs=srgb&fm=jpg&ixid=M3w3NDQ2NDJ8MHwxfHNlYXJjaHw0fHxsdXh1cnklMjBob3NwaXRhbGl0eXxlbnwwfHx8fDE3NTQ1Nzc2NjR8MA&ixlib=rb-4.1.0&q=85",
		PricePerDay: 55,
		Ingredients: []string{"Lean beef", "Sweet potato", "Spinach", "Blueberries", "Almonds"},
		NutritionalInfo: models.NutritionalInfo{
			Calories: 720,
			Protein:  "42g",
			Carbs:    "48g",
			Fat:      "24g",
		},
	},
	{
		ID:          "student",
		Name:        "Student Fuel",
		Description: "Budget-friendly, nutritious meals that support focus and brain function during studies.",
		ImageURL:    "https://images.unsplash.com/photo-1741506131058-533fcf894483?crop=entropy&cs=srgb&fm=jpg&ixid=M3w3NDQ2NDJ8MHwxfHNlYXJjaHwyfHxsdXh1cnklMjBob3NwaXRhbGl0eXxlbnwwfHx8fDE3NTQ1Nzc2NjR8MA&ixlib=rb-4.1.0&q=85",
		PricePerDay: 35,
		Ingredients: []string{"Chicken breast", "Brown rice", "Broccoli", "Chickpeas", "Greek yogurt"},
		NutritionalInfo: models.NutritionalInfo{
			Calories: 580,
			Protein:  "38g",
			Carbs:    "52g",
			Fat:      "18g",
		},
	},
}

// MembershipTiers returns the three fixed membership tiers.
func MembershipTiers() []models.MembershipTier {
	tiers := make([]models.MembershipTier, len(membershipTiers))
	copy(tiers, membershipTiers)
	for i := range tiers {
		features := make([]string, len(tiers[i].Features))
		copy(features, tiers[i].Features)
		tiers[i].Features = features
	}
	return tiers
}

// NutriMealPlans returns the three fixed meal plans.
func NutriMealPlans() []models.NutriMealPlan {
	plans := make([]models.NutriMealPlan, len(nutriMealPlans))
	copy(plans, nutriMealPlans)
	for i := range plans {
		ingredients := make([]string, len(plans[i].Ingredients))
		copy(ingredients, plans[i].Ingredients)
		plans[i].Ingredients = ingredients
	}
	return plans
}

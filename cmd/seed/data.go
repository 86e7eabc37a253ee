package main

import "gymspot/internal/slug"

type city struct {
	Name       string
	PostalCode string
	Lat, Lng   float64
}

var cities = []city{
	{"Casablanca", "20000", 33.5731, -7.5898},
	{"Rabat", "10000", 34.0209, -6.8416},
	{"Marrakech", "40000", 31.6295, -7.9811},
	{"Tangier", "90000", 35.7595, -5.8340},
	{"Fez", "30000", 34.0181, -5.0078},
	{"Agadir", "80000", 30.4278, -9.5981},
}

type venueSeed struct {
	Kind        string
	Name        string
	Description string
	Street      string
	PriceTier   string
	Facilities  []string
	Images      []string
	Verified    bool
}

var gyms = []venueSeed{
	{
		Kind:        "gym",
		Name:        "Fitness Zone",
		Description: "Open-plan gym with free weights, cardio deck and group classes every evening.",
		Street:      "Boulevard Zerktouni",
		PriceTier:   "MEDIUM",
		Facilities:  []string{"Cardio", "Free Weights", "Group Classes", "Lockers"},
		Images:      []string{"https://res.cloudinary.com/gymspot/image/upload/v1/venues/fitness-zone.jpg"},
		Verified:    true,
	},
	{
		Kind:        "gym",
		Name:        "Iron Temple",
		Description: "Strength-focused gym with power racks, platforms and coaching.",
		Street:      "Avenue Hassan II",
		PriceTier:   "LOW",
		Facilities:  []string{"Free Weights", "Power Racks", "Personal Training"},
	},
	{
		Kind:        "gym",
		Name:        "Atlas Wellness",
		Description: "Premium club gym with spa, sauna and a heated indoor pool.",
		Street:      "Rue de la Liberté",
		PriceTier:   "PREMIUM",
		Facilities:  []string{"Sauna", "Pool", "Spa", "Cardio", "Parking"},
		Images:      []string{"https://res.cloudinary.com/gymspot/image/upload/v1/venues/atlas-wellness.jpg"},
		Verified:    true,
	},
}

var clubs = []venueSeed{
	{
		Kind:        "club",
		Name:        "Fitness Pro",
		Description: "Multi-sport club with padel courts, a climbing wall and a juice bar.",
		Street:      "Route d'El Jadida",
		PriceTier:   "HIGH",
		Facilities:  []string{"Padel", "Climbing Wall", "Cafe"},
		Verified:    true,
	},
	{
		Kind:        "club",
		Name:        "Riad Tennis Club",
		Description: "Clay tennis courts with lessons for juniors and adults.",
		Street:      "Avenue Mohammed VI",
		PriceTier:   "MEDIUM",
		Facilities:  []string{"Tennis", "Coaching", "Showers"},
	},
}

var reviewers = []string{"Salma", "Youssef", "Imane", "Karim", "Nadia"}

var reviewComments = []string{
	"Clean, friendly staff and never too crowded.",
	"Good equipment but the changing rooms need work.",
	"Great classes, I come back every week.",
	"Fair price for what you get.",
	"Parking is a pain at peak hours.",
}

type planSeed struct {
	Name         string
	Description  string
	Price        string
	BillingCycle string
	Features     []string
}

var plans = []planSeed{
	{"Basic", "Browse and review venues", "0", "MONTHLY", []string{"Search", "Reviews", "Favorites"}},
	{"Plus", "Promotion alerts and member discounts", "99", "MONTHLY", []string{"Search", "Reviews", "Favorites", "Promotion alerts"}},
	{"Pro", "Everything in Plus, billed yearly", "990", "ANNUALLY", []string{"Search", "Reviews", "Favorites", "Promotion alerts", "Priority support"}},
}

// venueName suffixes the base name with the city outside Casablanca so slugs
// stay readable and unique per city.
func venueName(v venueSeed, c city) string {
	if c.Name == "Casablanca" {
		return v.Name
	}
	return v.Name + " " + c.Name
}

func venueSlug(v venueSeed, c city) string {
	return slug.Make(venueName(v, c))
}

// reviewRating spreads seeded ratings over 3 to 5.
func reviewRating(venueIdx, reviewerIdx int) int {
	return 3 + (venueIdx+reviewerIdx)%3
}

package services

import (
	"fmt"
	"math/rand"

	"github.com/samirrathod1410/playarena-gameon-hub/models"
)

// catalogSeed fixes the PRNG so that every fresh database seeds the exact
// same 60-ground catalog. Tests rely on this determinism.
const catalogSeed = 20251101

var seedAreas = []string{
	"Satellite", "Bopal", "Vastrapur", "Thaltej", "Maninagar",
	"Navrangpura", "SG Highway", "Prahlad Nagar", "Gota", "Chandkheda",
}

var seedFacilities = []string{
	"Parking", "Changing Room", "Floodlights", "Drinking Water", "Washroom",
	"First Aid", "Cafeteria", "Seating Area", "Coaching Available", "Equipment Rental",
}

var seedGroundNames = map[models.SportCategory][]string{
	models.SportBoxCricket: {
		"Stumps Arena", "Cricket Hub 360", "Six & Out Arena", "PowerPlay Zone", "Boundary Line Turf",
		"Howzat Arena", "Wicket World", "Cricket Paradise", "Super Over Ground", "The Pitch Ahmedabad",
	},
	models.SportFootball: {
		"Kick Zone Turf", "Goal Arena", "Striker's Field", "Football Factory", "The Green Pitch",
		"Penalty Box Turf", "Hat-trick Arena", "FC Ground Ahmedabad", "Soccer Hub", "Goalpost Turf",
	},
	models.SportBadminton: {
		"Shuttle Zone", "Smash Arena", "Drop Shot Courts", "Feather Shuttle Hub", "Rally Point Arena",
		"Net Edge Courts", "Shuttle Masters", "Ace Badminton Club", "Clear & Smash", "Court King Arena",
	},
	models.SportTennis: {
		"Ace Tennis Club", "Grand Slam Arena", "Baseline Courts", "Match Point Turf", "Tennis Edge",
		"Volley Point Arena", "Deuce Court Club", "Top Spin Arena", "Love Game Courts", "Rally Masters",
	},
	models.SportBasketball: {
		"Dunk Zone Arena", "Hoop Dreams Court", "Slam Dunk Hub", "Three Point Arena", "Basket Central",
		"Court Kings Arena", "Fast Break Zone", "Alley Oop Arena", "Rebound Courts", "Swish Arena",
	},
	models.SportMulti: {
		"All Sports Arena", "Multi Play Zone", "Sports Central Hub", "The Sports Village", "Arena 360",
		"PlayAll Ground", "Universal Sports Hub", "Infinity Sports Arena", "Total Sports Zone", "The Sports Deck",
	},
}

var seedReviewComments = []string{
	"Great ground with excellent facilities!",
	"Had an amazing experience. Will definitely come back.",
	"Good turf quality but parking is limited.",
	"Loved the floodlights and ambiance. Perfect for evening games.",
	"Affordable pricing and well-maintained ground.",
	"The staff was very helpful and friendly.",
	"Best ground in the area, highly recommended!",
	"Decent ground but could improve the washroom facilities.",
	"Perfect for weekend games with friends and family.",
	"Professional-grade turf, felt like playing in a stadium!",
}

var seedReviewerNames = []string{
	"Raj Patel", "Priya Shah", "Amit Kumar", "Sneha Desai", "Vikram Singh",
	"Anjali Mehta", "Karan Joshi", "Nisha Gupta", "Rohit Sharma", "Meera Thakkar",
}

// SeedGrounds generates the catalog: ten grounds for each sport category,
// spread across the city areas. Output is identical on every call.
func SeedGrounds() []models.Ground {
	rng := rand.New(rand.NewSource(catalogSeed))

	var grounds []models.Ground
	id := 1

	for _, category := range models.SportCategories {
		names := seedGroundNames[category.Name]
		for i := 0; i < 10; i++ {
			area := seedAreas[i%len(seedAreas)]

			numFacilities := 4 + rng.Intn(5)
			facilities := append([]string(nil), seedFacilities...)
			rng.Shuffle(len(facilities), func(a, b int) {
				facilities[a], facilities[b] = facilities[b], facilities[a]
			})
			facilities = facilities[:numFacilities]

			var basePrice int64
			switch category.Name {
			case models.SportBoxCricket:
				basePrice = int64(800 + rng.Intn(700))
			case models.SportFootball:
				basePrice = int64(1200 + rng.Intn(800))
			default:
				basePrice = int64(300 + rng.Intn(400))
			}

			grounds = append(grounds, models.Ground{
				Name:         names[i],
				Sport:        category.Name,
				Location:     fmt.Sprintf("%s, Ahmedabad", area),
				Area:         area,
				Address:      fmt.Sprintf("%d, %s Road, %s, Ahmedabad - %d", 1+rng.Intn(200), area, area, 380000+rng.Intn(100)),
				Rating:       float64(35+rng.Intn(16)) / 10, // 3.5 to 5.0
				ReviewCount:  10 + rng.Intn(90),
				BasePrice:    basePrice,
				SlotDuration: category.SlotDuration,
				OpenTime:     "06:00",
				CloseTime:    "23:00",
				Facilities:   facilities,
				Description: fmt.Sprintf("%s is one of the finest %s grounds in %s, Ahmedabad. Equipped with professional-grade facilities and maintained to the highest standards for an exceptional playing experience.",
					names[i], string(category.Name), area),
				Phone:     fmt.Sprintf("+91 98%08d", 10000000+rng.Intn(89999999)),
				OwnerName: fmt.Sprintf("Owner %d", id),
			})
			id++
		}
	}

	return grounds
}

// SeedReviews generates three to seven reviews per seeded ground name.
// Deterministic for the same reason as SeedGrounds.
func SeedReviews(groundNames []string) map[string][]models.Review {
	rng := rand.New(rand.NewSource(catalogSeed + 1))

	reviews := make(map[string][]models.Review, len(groundNames))
	for _, name := range groundNames {
		count := 3 + rng.Intn(5)
		for i := 0; i < count; i++ {
			reviews[name] = append(reviews[name], models.Review{
				UserName: seedReviewerNames[i%len(seedReviewerNames)],
				Rating:   3 + rng.Intn(3),
				Comment:  seedReviewComments[i%len(seedReviewComments)],
				Date:     fmt.Sprintf("2025-%02d-%02d", 1+rng.Intn(12), 1+rng.Intn(28)),
			})
		}
	}
	return reviews
}

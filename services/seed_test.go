package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samirrathod1410/playarena-gameon-hub/models"
)

func TestSeedGrounds_Shape(t *testing.T) {
	grounds := SeedGrounds()
	require.Len(t, grounds, 60)

	perSport := map[models.SportCategory]int{}
	for _, g := range grounds {
		perSport[g.Sport]++

		assert.NotEmpty(t, g.Name)
		assert.Equal(t, "06:00", g.OpenTime)
		assert.Equal(t, "23:00", g.CloseTime)
		assert.GreaterOrEqual(t, g.Rating, 3.5)
		assert.LessOrEqual(t, g.Rating, 5.0)
		assert.GreaterOrEqual(t, len(g.Facilities), 4)
		assert.LessOrEqual(t, len(g.Facilities), 8)
	}

	for _, category := range models.SportCategories {
		assert.Equal(t, 10, perSport[category.Name], "ten grounds per sport")
	}
}

func TestSeedGrounds_SlotDurationsPerSport(t *testing.T) {
	durations := map[models.SportCategory]int{}
	for _, category := range models.SportCategories {
		durations[category.Name] = category.SlotDuration
	}

	for _, g := range SeedGrounds() {
		assert.Equal(t, durations[g.Sport], g.SlotDuration, g.Name)
	}
}

func TestSeedGrounds_PriceBands(t *testing.T) {
	for _, g := range SeedGrounds() {
		switch g.Sport {
		case models.SportBoxCricket:
			assert.GreaterOrEqual(t, g.BasePrice, int64(800), g.Name)
			assert.Less(t, g.BasePrice, int64(1500), g.Name)
		case models.SportFootball:
			assert.GreaterOrEqual(t, g.BasePrice, int64(1200), g.Name)
			assert.Less(t, g.BasePrice, int64(2000), g.Name)
		default:
			assert.GreaterOrEqual(t, g.BasePrice, int64(300), g.Name)
			assert.Less(t, g.BasePrice, int64(700), g.Name)
		}
	}
}

func TestSeedGrounds_Deterministic(t *testing.T) {
	assert.Equal(t, SeedGrounds(), SeedGrounds())
}

func TestSeedReviews(t *testing.T) {
	names := []string{"Stumps Arena", "Kick Zone Turf"}

	reviews := SeedReviews(names)
	require.Len(t, reviews, 2)

	for _, name := range names {
		require.NotEmpty(t, reviews[name])
		assert.GreaterOrEqual(t, len(reviews[name]), 3)
		assert.LessOrEqual(t, len(reviews[name]), 7)
		for _, r := range reviews[name] {
			assert.GreaterOrEqual(t, r.Rating, 3)
			assert.LessOrEqual(t, r.Rating, 5)
			assert.NotEmpty(t, r.UserName)
			assert.NotEmpty(t, r.Comment)
			assert.Regexp(t, `^2025-\d{2}-\d{2}$`, r.Date)
		}
	}

	assert.Equal(t, reviews, SeedReviews(names))
}

func TestFixtureCatalog_Filters(t *testing.T) {
	catalog := FixtureCatalog{
		"g1": {ID: "g1", Name: "Stumps Arena", Sport: models.SportBoxCricket, Area: "Satellite", BasePrice: 1000},
		"g2": {ID: "g2", Name: "Kick Zone Turf", Sport: models.SportFootball, Area: "Bopal", BasePrice: 1500},
		"g3": {ID: "g3", Name: "Shuttle Zone", Sport: models.SportBadminton, Area: "Satellite", BasePrice: 400},
	}

	all, err := catalog.Grounds(context.Background(), CatalogFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	bySport, err := catalog.Grounds(context.Background(), CatalogFilter{Sport: string(models.SportFootball)})
	require.NoError(t, err)
	require.Len(t, bySport, 1)
	assert.Equal(t, "g2", bySport[0].ID)

	byArea, err := catalog.Grounds(context.Background(), CatalogFilter{Area: "Satellite"})
	require.NoError(t, err)
	assert.Len(t, byArea, 2)

	byPrice, err := catalog.Grounds(context.Background(), CatalogFilter{MaxPrice: 500})
	require.NoError(t, err)
	require.Len(t, byPrice, 1)
	assert.Equal(t, "g3", byPrice[0].ID)

	combined, err := catalog.Grounds(context.Background(), CatalogFilter{Area: "Satellite", MaxPrice: 500})
	require.NoError(t, err)
	require.Len(t, combined, 1)
	assert.Equal(t, "g3", combined[0].ID)
}

func TestFixtureCatalog_GroundByID(t *testing.T) {
	catalog := FixtureCatalog{"g1": testGround()}

	ground, err := catalog.GroundByID(context.Background(), "g1")
	require.NoError(t, err)
	assert.Equal(t, "Stumps Arena", ground.Name)

	_, err = catalog.GroundByID(context.Background(), "missing")
	assert.Error(t, err)
}

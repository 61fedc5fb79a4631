package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/pocketbase/pocketbase/core"

	"github.com/samirrathod1410/playarena-gameon-hub/models"
)

// CatalogFilter narrows a ground listing. Zero values mean "no constraint".
type CatalogFilter struct {
	Sport    string
	Area     string
	Query    string
	MaxPrice int64
}

// CatalogSource is the read surface of the grounds catalog.
type CatalogSource interface {
	GroundByID(ctx context.Context, id string) (*models.Ground, error)
	Grounds(ctx context.Context, filter CatalogFilter) ([]models.Ground, error)
}

// ReviewSource lists customer reviews for a ground.
type ReviewSource interface {
	ReviewsForGround(ctx context.Context, groundID string) ([]models.Review, error)
}

type groundCatalog struct {
	app core.App
}

func NewGroundCatalog(app core.App) CatalogSource {
	return &groundCatalog{app: app}
}

func (c *groundCatalog) GroundByID(ctx context.Context, id string) (*models.Ground, error) {
	record, err := c.app.FindRecordById("grounds", id)
	if err != nil {
		return nil, fmt.Errorf("ground %s: %w", id, err)
	}
	return groundFromRecord(record), nil
}

func (c *groundCatalog) Grounds(ctx context.Context, filter CatalogFilter) ([]models.Ground, error) {
	var parts []string
	params := map[string]any{}

	if filter.Sport != "" {
		parts = append(parts, "sport = {:sport}")
		params["sport"] = filter.Sport
	}
	if filter.Area != "" {
		parts = append(parts, "area = {:area}")
		params["area"] = filter.Area
	}
	if filter.MaxPrice > 0 {
		parts = append(parts, "base_price <= {:maxPrice}")
		params["maxPrice"] = filter.MaxPrice
	}
	if filter.Query != "" {
		parts = append(parts, "(name ~ {:q} || location ~ {:q})")
		params["q"] = filter.Query
	}

	var records []*core.Record
	var err error
	if len(parts) == 0 {
		records, err = c.app.FindAllRecords("grounds")
	} else {
		records, err = c.app.FindRecordsByFilter(
			"grounds",
			strings.Join(parts, " && "),
			"-rating",
			0,
			0,
			params,
		)
	}
	if err != nil {
		return nil, err
	}

	grounds := make([]models.Ground, 0, len(records))
	for _, record := range records {
		grounds = append(grounds, *groundFromRecord(record))
	}
	return grounds, nil
}

func groundFromRecord(record *core.Record) *models.Ground {
	return &models.Ground{
		ID:           record.Id,
		Name:         record.GetString("name"),
		Sport:        models.SportCategory(record.GetString("sport")),
		Location:     record.GetString("location"),
		Area:         record.GetString("area"),
		Address:      record.GetString("address"),
		Rating:       record.GetFloat("rating"),
		ReviewCount:  record.GetInt("review_count"),
		BasePrice:    int64(record.GetInt("base_price")),
		SlotDuration: record.GetInt("slot_duration"),
		OpenTime:     record.GetString("open_time"),
		CloseTime:    record.GetString("close_time"),
		Facilities:   record.GetStringSlice("facilities"),
		Description:  record.GetString("description"),
		Phone:        record.GetString("phone"),
		OwnerName:    record.GetString("owner_name"),
	}
}

type reviewCatalog struct {
	app core.App
}

func NewReviewCatalog(app core.App) ReviewSource {
	return &reviewCatalog{app: app}
}

func (c *reviewCatalog) ReviewsForGround(ctx context.Context, groundID string) ([]models.Review, error) {
	records, err := c.app.FindRecordsByFilter(
		"reviews",
		"ground_id = {:groundId}",
		"-date",
		0,
		0,
		map[string]any{"groundId": groundID},
	)
	if err != nil {
		return nil, err
	}

	reviews := make([]models.Review, 0, len(records))
	for _, record := range records {
		reviews = append(reviews, models.Review{
			ID:       record.Id,
			GroundID: record.GetString("ground_id"),
			UserName: record.GetString("user_name"),
			Rating:   record.GetInt("rating"),
			Comment:  record.GetString("comment"),
			Date:     record.GetString("date"),
		})
	}
	return reviews, nil
}

// FixtureCatalog serves grounds from memory for tests.
type FixtureCatalog map[string]*models.Ground

func (f FixtureCatalog) GroundByID(_ context.Context, id string) (*models.Ground, error) {
	ground, ok := f[id]
	if !ok {
		return nil, fmt.Errorf("ground %s: not found", id)
	}
	return ground, nil
}

func (f FixtureCatalog) Grounds(_ context.Context, filter CatalogFilter) ([]models.Ground, error) {
	var grounds []models.Ground
	for _, ground := range f {
		if filter.Sport != "" && string(ground.Sport) != filter.Sport {
			continue
		}
		if filter.Area != "" && ground.Area != filter.Area {
			continue
		}
		if filter.MaxPrice > 0 && ground.BasePrice > filter.MaxPrice {
			continue
		}
		grounds = append(grounds, *ground)
	}
	return grounds, nil
}

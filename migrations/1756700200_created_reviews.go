package migrations

import (
	"github.com/pocketbase/pocketbase/core"
	m "github.com/pocketbase/pocketbase/migrations"
)

func init() {
	m.Register(func(app core.App) error {
		collection := core.NewBaseCollection("reviews")

		collection.Fields.Add(
			&core.TextField{Name: "ground_id", Required: true, Max: 50},
			&core.TextField{Name: "user_name", Required: true, Max: 100},
			&core.NumberField{Name: "rating", Required: true, OnlyInt: true},
			&core.TextField{Name: "comment", Max: 500},
			&core.TextField{Name: "date", Pattern: `^\d{4}-\d{2}-\d{2}$`},
			&core.AutodateField{Name: "created", OnCreate: true},
		)

		collection.AddIndex("idx_reviews_ground", false, "ground_id", "")

		return app.Save(collection)
	}, func(app core.App) error {
		collection, err := app.FindCollectionByNameOrId("reviews")
		if err != nil {
			return err
		}
		return app.Delete(collection)
	})
}

package migrations

import (
	"github.com/pocketbase/pocketbase/core"
	m "github.com/pocketbase/pocketbase/migrations"
)

func init() {
	m.Register(func(app core.App) error {
		collection := core.NewBaseCollection("grounds")

		collection.Fields.Add(
			&core.TextField{Name: "name", Required: true, Max: 100},
			&core.SelectField{
				Name:      "sport",
				Required:  true,
				MaxSelect: 1,
				Values: []string{
					"Box Cricket", "Football", "Badminton",
					"Tennis", "Basketball", "Multi-Sports",
				},
			},
			&core.TextField{Name: "location", Max: 200},
			&core.TextField{Name: "area", Max: 100},
			&core.TextField{Name: "address", Max: 300},
			&core.NumberField{Name: "rating"},
			&core.NumberField{Name: "review_count", OnlyInt: true},
			&core.NumberField{Name: "base_price", Required: true, OnlyInt: true},
			&core.NumberField{Name: "slot_duration", Required: true, OnlyInt: true},
			&core.TextField{Name: "open_time", Required: true, Pattern: `^\d{2}:\d{2}$`},
			&core.TextField{Name: "close_time", Required: true, Pattern: `^\d{2}:\d{2}$`},
			&core.JSONField{Name: "facilities"},
			&core.TextField{Name: "description", Max: 1000},
			&core.TextField{Name: "phone", Max: 20},
			&core.TextField{Name: "owner_name", Max: 100},
			&core.AutodateField{Name: "created", OnCreate: true},
			&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true},
		)

		collection.AddIndex("idx_grounds_sport", false, "sport", "")
		collection.AddIndex("idx_grounds_area", false, "area", "")

		return app.Save(collection)
	}, func(app core.App) error {
		collection, err := app.FindCollectionByNameOrId("grounds")
		if err != nil {
			return err
		}
		return app.Delete(collection)
	})
}

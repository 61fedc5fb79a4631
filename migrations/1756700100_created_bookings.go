package migrations

import (
	"github.com/pocketbase/pocketbase/core"
	m "github.com/pocketbase/pocketbase/migrations"
)

func init() {
	m.Register(func(app core.App) error {
		collection := core.NewBaseCollection("bookings")

		collection.Fields.Add(
			&core.TextField{Name: "booking_id", Required: true, Pattern: `^TBK\d{5}$`},
			&core.TextField{Name: "user_id", Max: 50},
			&core.TextField{Name: "name", Required: true, Max: 100},
			&core.TextField{Name: "mobile", Required: true, Max: 15},
			&core.EmailField{Name: "email", Required: true},
			&core.TextField{Name: "ground_id", Required: true, Max: 50},
			&core.TextField{Name: "turf_name", Required: true, Max: 100},
			&core.TextField{Name: "booking_date", Required: true, Pattern: `^\d{4}-\d{2}-\d{2}$`},
			&core.TextField{Name: "time_slot", Required: true, Max: 20},
			&core.SelectField{
				Name:      "payment_method",
				MaxSelect: 1,
				Values:    []string{"Pay at Turf", "Online"},
			},
			&core.NumberField{Name: "amount", Required: true, OnlyInt: true},
			&core.SelectField{
				Name:      "status",
				Required:  true,
				MaxSelect: 1,
				Values:    []string{"Pending", "Confirmed", "Cancelled"},
			},
			&core.AutodateField{Name: "created", OnCreate: true},
			&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true},
		)

		// Conflict lookups hit (ground, date) on every slot listing.
		collection.AddIndex("idx_bookings_ground_date", false, "ground_id, booking_date", "")
		collection.AddIndex("idx_bookings_user", false, "user_id", "")
		collection.AddIndex("idx_bookings_code", false, "booking_id", "")

		return app.Save(collection)
	}, func(app core.App) error {
		collection, err := app.FindCollectionByNameOrId("bookings")
		if err != nil {
			return err
		}
		return app.Delete(collection)
	})
}

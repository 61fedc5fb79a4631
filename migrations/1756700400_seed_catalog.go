package migrations

import (
	"github.com/pocketbase/pocketbase/core"
	m "github.com/pocketbase/pocketbase/migrations"

	"github.com/samirrathod1410/playarena-gameon-hub/services"
)

// Seeds the 60-ground catalog and its reviews. The generator is
// deterministic, so every fresh database starts from the same data.
func init() {
	m.Register(func(app core.App) error {
		grounds, err := app.FindCollectionByNameOrId("grounds")
		if err != nil {
			return err
		}
		reviews, err := app.FindCollectionByNameOrId("reviews")
		if err != nil {
			return err
		}

		seeded := services.SeedGrounds()
		names := make([]string, 0, len(seeded))
		idByName := make(map[string]string, len(seeded))

		for _, ground := range seeded {
			record := core.NewRecord(grounds)
			record.Set("name", ground.Name)
			record.Set("sport", string(ground.Sport))
			record.Set("location", ground.Location)
			record.Set("area", ground.Area)
			record.Set("address", ground.Address)
			record.Set("rating", ground.Rating)
			record.Set("review_count", ground.ReviewCount)
			record.Set("base_price", ground.BasePrice)
			record.Set("slot_duration", ground.SlotDuration)
			record.Set("open_time", ground.OpenTime)
			record.Set("close_time", ground.CloseTime)
			record.Set("facilities", ground.Facilities)
			record.Set("description", ground.Description)
			record.Set("phone", ground.Phone)
			record.Set("owner_name", ground.OwnerName)

			if err := app.Save(record); err != nil {
				return err
			}

			names = append(names, ground.Name)
			idByName[ground.Name] = record.Id
		}

		for name, groundReviews := range services.SeedReviews(names) {
			for _, review := range groundReviews {
				record := core.NewRecord(reviews)
				record.Set("ground_id", idByName[name])
				record.Set("user_name", review.UserName)
				record.Set("rating", review.Rating)
				record.Set("comment", review.Comment)
				record.Set("date", review.Date)

				if err := app.Save(record); err != nil {
					return err
				}
			}
		}

		return nil
	}, func(app core.App) error {
		for _, name := range []string{"reviews", "grounds"} {
			records, err := app.FindAllRecords(name)
			if err != nil {
				continue
			}
			for _, record := range records {
				if err := app.Delete(record); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

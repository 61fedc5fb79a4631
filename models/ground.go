package models

type SportCategory string

const (
	SportBoxCricket SportCategory = "Box Cricket"
	SportFootball   SportCategory = "Football"
	SportBadminton  SportCategory = "Badminton"
	SportTennis     SportCategory = "Tennis"
	SportBasketball SportCategory = "Basketball"
	SportMulti      SportCategory = "Multi-Sports"
)

// SportCategories lists every bookable sport with its default slot length.
var SportCategories = []struct {
	Name         SportCategory
	SlotDuration int
}{
	{SportBoxCricket, 120},
	{SportFootball, 90},
	{SportBadminton, 60},
	{SportTennis, 60},
	{SportBasketball, 60},
	{SportMulti, 60},
}

// Ground is immutable reference data seeded by the catalog migration.
// The booking flow never mutates it.
type Ground struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Sport        SportCategory `json:"sport"`
	Location     string        `json:"location"`
	Area         string        `json:"area"`
	Address      string        `json:"address"`
	Rating       float64       `json:"rating"`
	ReviewCount  int           `json:"review_count"`
	BasePrice    int64         `json:"base_price"` // rupees per slot before multipliers
	SlotDuration int           `json:"slot_duration"`
	OpenTime     string        `json:"open_time"`  // "HH:MM"
	CloseTime    string        `json:"close_time"` // "HH:MM"
	Facilities   []string      `json:"facilities"`
	Description  string        `json:"description"`
	Phone        string        `json:"phone"`
	OwnerName    string        `json:"owner_name"`
}

type Review struct {
	ID       string `json:"id"`
	GroundID string `json:"ground_id"`
	UserName string `json:"user_name"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment"`
	Date     string `json:"date"` // "YYYY-MM-DD"
}

package models

import "time"

// SeedReport merangkum satu kali eksekusi seeding.
type SeedReport struct {
	UsersCreated         int       `json:"users_created"`
	UsersUpdated         int       `json:"users_updated"`
	RolesSet             int       `json:"roles_set"`
	DestinationsUpserted int       `json:"destinations_upserted"`
	ProfilesUpserted     int       `json:"profiles_upserted"`
	UnresolvedLocations  int       `json:"unresolved_locations"`
	CategoriesCreated    int       `json:"categories_created"`
	CountriesUpserted    int       `json:"countries_upserted"`
	VisitsCreated        int       `json:"visits_created"`
	VisitsSkipped        int       `json:"visits_skipped"`
	SettingsUpserted     bool      `json:"settings_upserted"`
	Transcript           []string  `json:"transcript"`
	StartedAt            time.Time `json:"started_at"`
	FinishedAt           time.Time `json:"finished_at"`
}

type VisitTotals struct {
	Wisnus             int `json:"wisnus"`
	Wisman             int `json:"wisman"`
	EventVisitors      int `json:"event_visitors"`
	HistoricalVisitors int `json:"historical_visitors"`
	Total              int `json:"total"`
}

// Add menambahkan satu record ke akumulator.
func (t *VisitTotals) Add(v VisitData) {
	t.Wisnus += v.Wisnus
	t.Wisman += v.Wisman
	t.EventVisitors += v.EventVisitors
	t.HistoricalVisitors += v.HistoricalVisitors
	t.Total += v.TotalVisitors
}

type MonthTotals struct {
	Month     int    `json:"month"`
	MonthName string `json:"month_name"`
	VisitTotals
}

type DestinationTotals struct {
	DestinationID   string `json:"destination_id"`
	DestinationName string `json:"destination_name"`
	VisitTotals
}

type CountryTotal struct {
	Country string `json:"country"`
	Count   int    `json:"count"`
}

// YearlyReport adalah agregat lintas destinasi untuk satu tahun.
type YearlyReport struct {
	Year         int                 `json:"year"`
	Totals       VisitTotals         `json:"totals"`
	Months       []MonthTotals       `json:"months"`
	Destinations []DestinationTotals `json:"destinations"`
	TopCountries []CountryTotal      `json:"top_countries"`
}

package models

// Settings is the single league configuration record.
type Settings struct {
	SeasonName string `json:"seasonName"`
	PointsWin  int    `json:"pointsWin"`
	PointsDraw int    `json:"pointsDraw"`
	PointsLoss int    `json:"pointsLoss"`
}

// DefaultSettings is returned when no settings document has been written
// yet. It is never persisted implicitly on read.
func DefaultSettings() Settings {
	return Settings{
		SeasonName: "Temporada 2025",
		PointsWin:  3,
		PointsDraw: 1,
		PointsLoss: 0,
	}
}

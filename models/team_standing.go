package models

// TeamStanding is one row of the league table. Position is recomputed from
// the sort order on every read and is never authoritative in storage.
// GoalDifference is persisted as given; the store does not recompute it
// from GoalsFor and GoalsAgainst.
type TeamStanding struct {
	Position       int    `json:"position"`
	Team           string `json:"team"`
	TeamID         int    `json:"teamId"`
	Played         int    `json:"played"`
	Won            int    `json:"won"`
	Drawn          int    `json:"drawn"`
	Lost           int    `json:"lost"`
	GoalsFor       int    `json:"goalsFor"`
	GoalsAgainst   int    `json:"goalsAgainst"`
	GoalDifference int    `json:"goalDifference"`
	Points         int    `json:"points"`
}

// DefaultStandings builds the all-zero table for the fixed league roster.
func DefaultStandings() []TeamStanding {
	teams := DefaultTeams()
	standings := make([]TeamStanding, 0, len(teams))
	for i, team := range teams {
		standings = append(standings, TeamStanding{
			Position: i + 1,
			Team:     team.Name,
			TeamID:   team.ID,
		})
	}
	return standings
}

package models

type Team struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Stadium string `json:"stadium"`
}

// DefaultTeams returns the fixed league roster. Team names in matches are
// free text and are not validated against this list.
func DefaultTeams() []Team {
	return []Team{
		{ID: 1, Name: "ACP 507", Stadium: "Estadio ACP"},
		{ID: 2, Name: "Coiner FC", Stadium: "Campo Coiner"},
		{ID: 3, Name: "FC WEST SIDE", Stadium: "West Side Arena"},
		{ID: 4, Name: "Humacao Fc", Stadium: "Estadio Humacao"},
		{ID: 5, Name: "Punta Coco Fc", Stadium: "Punta Coco Field"},
		{ID: 6, Name: "Pura Vibra", Stadium: "Vibra Stadium"},
		{ID: 7, Name: "Raven Law", Stadium: "Law Arena"},
		{ID: 8, Name: "Rayos X Fc", Stadium: "Rayos Stadium"},
		{ID: 9, Name: "Tiki Taka Fc", Stadium: "Tiki Taka Field"},
		{ID: 10, Name: "fly city", Stadium: "Fly City Arena"},
	}
}

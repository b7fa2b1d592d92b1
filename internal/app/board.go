package app

// BoardRequest selects the events drawn on the location board. Empty
// From/To select every event; cancelled events are always left out.
type BoardRequest struct {
	From        string
	To          string
	LocationIDs []string
}

// EventBar is one event placed on a board row.
type EventBar struct {
	EventID   string `json:"event_id"`
	Name      string `json:"name"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Status    string `json:"status"`
	Row       int    `json:"row"`
}

// LocationLane groups a location's events. RowCount equals the peak number
// of events booked on the same day.
type LocationLane struct {
	LocationID    string     `json:"location_id"`
	LocationName  string     `json:"location_name"`
	RowCount      int        `json:"row_count"`
	MaxConcurrent int        `json:"max_concurrent"`
	Events        []EventBar `json:"events"`
}

type LocationBoardResponse struct {
	From  string         `json:"from"`
	To    string         `json:"to"`
	Lanes []LocationLane `json:"lanes"`
}

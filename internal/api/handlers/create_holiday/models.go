package create_holiday

// CreateHolidayRequest HTTP request model
type CreateHolidayRequest struct {
	Day     int    `json:"day"`
	Month   int    `json:"month"`
	Year    int    `json:"year"`
	Comment string `json:"comment,omitempty"`
}

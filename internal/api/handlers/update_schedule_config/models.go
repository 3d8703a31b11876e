package update_schedule_config

// UpsertRuleRequest HTTP request model
type UpsertRuleRequest struct {
	Month     int    `json:"month"`     // 1-12
	DayOfWeek int    `json:"dayOfWeek"` // 0=Monday .. 6=Sunday
	StartTime string `json:"startTime"` // "07:30", 00:00 with 00:00 closes the day
	EndTime   string `json:"endTime"`
	Enabled   bool   `json:"enabled"`
}

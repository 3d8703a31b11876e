package models

import (
	"time"

	"github.com/mobisfm/FM-BookingService/internal/domain"
	"github.com/mobisfm/FM-BookingService/pkg/types"
)

// Request models

// UpsertRuleRequest creates or replaces the rule for one
// (month, dayOfWeek) key of a resource type
type UpsertRuleRequest struct {
	Actor     domain.Actor
	Month     int    `json:"month"`     // 1-12
	DayOfWeek int    `json:"dayOfWeek"` // 0=Monday .. 6=Sunday
	StartTime string `json:"startTime"` // "07:30"
	EndTime   string `json:"endTime"`
	Enabled   bool   `json:"enabled"`
}

// CreateHolidayRequest excludes one date from availability
type CreateHolidayRequest struct {
	Actor   domain.Actor
	Day     int    `json:"day"`
	Month   int    `json:"month"`
	Year    int    `json:"year"`
	Comment string `json:"comment"`
}

// Response models

// RuleResponse is one effective schedule rule. Explicit rows carry their
// id; defaulted windows carry zero.
type RuleResponse struct {
	ID        int64  `json:"id,omitempty"`
	Month     int    `json:"month"`
	DayOfWeek int    `json:"dayOfWeek"`
	StartTime string `json:"startTime,omitempty"`
	EndTime   string `json:"endTime,omitempty"`
	Enabled   bool   `json:"enabled"`
	Default   bool   `json:"default"`
}

// HolidayResponse is one excluded date
type HolidayResponse struct {
	ID      int64  `json:"id"`
	Day     int    `json:"day"`
	Month   int    `json:"month"`
	Year    int    `json:"year"`
	Comment string `json:"comment,omitempty"`
}

// ConfigResponse is the full schedule configuration of a resource type:
// the effective rule grid plus the holiday list
type ConfigResponse struct {
	ResourceType string            `json:"resourceType"`
	Rules        []RuleResponse    `json:"rules"`
	Holidays     []HolidayResponse `json:"holidays"`
}

// Conversion helpers

// ToDomainRule builds the domain rule for the upsert
func (r *UpsertRuleRequest) ToDomainRule(resourceType domain.ResourceType) *domain.ScheduleRule {
	return &domain.ScheduleRule{
		ResourceType: resourceType,
		Month:        time.Month(r.Month),
		DayOfWeek:    r.DayOfWeek,
		StartTime:    types.TimeString(r.StartTime),
		EndTime:      types.TimeString(r.EndTime),
		Enabled:      r.Enabled,
	}
}

// FromDomainRule converts an explicit schedule rule to its DTO
func FromDomainRule(rule *domain.ScheduleRule) RuleResponse {
	return RuleResponse{
		ID:        rule.ID,
		Month:     int(rule.Month),
		DayOfWeek: rule.DayOfWeek,
		StartTime: rule.StartTime.String(),
		EndTime:   rule.EndTime.String(),
		Enabled:   rule.Enabled,
	}
}

// DefaultRule builds the DTO for a key with no explicit rule
func DefaultRule(month time.Month, dayOfWeek int) RuleResponse {
	open, close := domain.DefaultScheduleWindow(month)
	return RuleResponse{
		Month:     int(month),
		DayOfWeek: dayOfWeek,
		StartTime: open.String(),
		EndTime:   close.String(),
		Enabled:   true,
		Default:   true,
	}
}

// FromDomainHoliday converts a holiday to its DTO
func FromDomainHoliday(h *domain.Holiday) HolidayResponse {
	return HolidayResponse{
		ID:      h.ID,
		Day:     h.Day,
		Month:   int(h.Month),
		Year:    h.Year,
		Comment: h.Comment,
	}
}

package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mobisfm/FM-BookingService/internal/domain"
	scheduleRepo "github.com/mobisfm/FM-BookingService/internal/infra/storage/schedule"
	"github.com/mobisfm/FM-BookingService/internal/service/schedule/models"
	"github.com/mobisfm/FM-BookingService/pkg/types"
)

// Service manages the open-hours configuration and the holiday calendar
type Service struct {
	scheduleRepo ScheduleRepository
	logger       Logger
}

// NewService creates the schedule service
func NewService(scheduleRepo ScheduleRepository, logger Logger) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		logger:       logger,
	}
}

// GetConfig returns the effective rule grid of a resource type, explicit
// rows overlaid on the defaults, plus the holiday calendar
func (s *Service) GetConfig(ctx context.Context, resourceType domain.ResourceType) (*models.ConfigResponse, error) {
	s.logger.Info("GetConfig: fetching schedule for resourceType=%s", resourceType)

	if !resourceType.Valid() {
		return nil, fmt.Errorf("%w: invalid resource type", ErrInvalidInput)
	}

	rules, err := s.scheduleRepo.ListRules(ctx, resourceType)
	if err != nil {
		s.logger.Error("GetConfig: repository error listing rules: %v", err)
		return nil, fmt.Errorf("%w: GetConfig - repository error: %v", ErrInternal, err)
	}
	holidays, err := s.scheduleRepo.ListHolidays(ctx)
	if err != nil {
		s.logger.Error("GetConfig: repository error listing holidays: %v", err)
		return nil, fmt.Errorf("%w: GetConfig - repository error: %v", ErrInternal, err)
	}

	explicit := make(map[[2]int]*domain.ScheduleRule, len(rules))
	for _, rule := range rules {
		explicit[[2]int{int(rule.Month), rule.DayOfWeek}] = rule
	}

	resp := &models.ConfigResponse{
		ResourceType: string(resourceType),
		Rules:        make([]models.RuleResponse, 0, 12*7),
		Holidays:     make([]models.HolidayResponse, 0, len(holidays)),
	}
	for month := time.January; month <= time.December; month++ {
		for dow := 0; dow < 7; dow++ {
			if rule, ok := explicit[[2]int{int(month), dow}]; ok {
				resp.Rules = append(resp.Rules, models.FromDomainRule(rule))
			} else {
				resp.Rules = append(resp.Rules, models.DefaultRule(month, dow))
			}
		}
	}
	for _, h := range holidays {
		resp.Holidays = append(resp.Holidays, models.FromDomainHoliday(h))
	}

	return resp, nil
}

// UpsertRule creates or replaces one rule of the open-hours table.
// Administrators only.
func (s *Service) UpsertRule(ctx context.Context, resourceType domain.ResourceType, req *models.UpsertRuleRequest) (*models.RuleResponse, error) {
	s.logger.Info("UpsertRule: resourceType=%s month=%d dow=%d by user=%d",
		resourceType, req.Month, req.DayOfWeek, req.Actor.ID)

	if !req.Actor.IsAdmin {
		s.logger.Warn("UpsertRule: user=%d is not an administrator", req.Actor.ID)
		return nil, ErrAccessDenied
	}
	if err := s.validateRule(resourceType, req); err != nil {
		s.logger.Warn("UpsertRule: validation failed: %v", err)
		return nil, err
	}

	rule, err := s.scheduleRepo.UpsertRule(ctx, req.ToDomainRule(resourceType))
	if err != nil {
		s.logger.Error("UpsertRule: repository error: %v", err)
		return nil, fmt.Errorf("%w: UpsertRule - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpsertRule: saved rule id=%d", rule.ID)
	resp := models.FromDomainRule(rule)
	return &resp, nil
}

// CreateHoliday excludes a date from availability. Administrators only.
func (s *Service) CreateHoliday(ctx context.Context, req *models.CreateHolidayRequest) (*models.HolidayResponse, error) {
	s.logger.Info("CreateHoliday: %04d-%02d-%02d by user=%d", req.Year, req.Month, req.Day, req.Actor.ID)

	if !req.Actor.IsAdmin {
		s.logger.Warn("CreateHoliday: user=%d is not an administrator", req.Actor.ID)
		return nil, ErrAccessDenied
	}
	if req.Month < 1 || req.Month > 12 || req.Year < 1 {
		return nil, fmt.Errorf("%w: invalid date", ErrInvalidInput)
	}
	// Rejects the 31st of short months and the 29th of ordinary Februaries
	if req.Day < 1 || req.Day > daysInMonth(time.Month(req.Month), req.Year) {
		return nil, fmt.Errorf("%w: invalid date", ErrInvalidInput)
	}

	holiday, err := s.scheduleRepo.CreateHoliday(ctx, &domain.Holiday{
		Day:     req.Day,
		Month:   time.Month(req.Month),
		Year:    req.Year,
		Comment: req.Comment,
	})
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrDuplicateHoliday) {
			s.logger.Warn("CreateHoliday: duplicate for %04d-%02d-%02d", req.Year, req.Month, req.Day)
			return nil, ErrDuplicateHoliday
		}
		s.logger.Error("CreateHoliday: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateHoliday - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateHoliday: created holiday id=%d", holiday.ID)
	resp := models.FromDomainHoliday(holiday)
	return &resp, nil
}

// DeleteHoliday removes an excluded date. Administrators only.
func (s *Service) DeleteHoliday(ctx context.Context, id int64, actor domain.Actor) error {
	s.logger.Info("DeleteHoliday: id=%d by user=%d", id, actor.ID)

	if !actor.IsAdmin {
		s.logger.Warn("DeleteHoliday: user=%d is not an administrator", actor.ID)
		return ErrAccessDenied
	}

	if err := s.scheduleRepo.DeleteHoliday(ctx, id); err != nil {
		if errors.Is(err, scheduleRepo.ErrHolidayNotFound) {
			s.logger.Warn("DeleteHoliday: holiday id=%d not found", id)
			return ErrHolidayNotFound
		}
		s.logger.Error("DeleteHoliday: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteHoliday - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteHoliday: deleted holiday id=%d", id)
	return nil
}

func (s *Service) validateRule(resourceType domain.ResourceType, req *models.UpsertRuleRequest) error {
	if !resourceType.Valid() {
		return fmt.Errorf("%w: invalid resource type", ErrInvalidInput)
	}
	if req.Month < 1 || req.Month > 12 {
		return fmt.Errorf("%w: month must be between 1 and 12", ErrInvalidInput)
	}
	if req.DayOfWeek < 0 || req.DayOfWeek > 6 {
		return fmt.Errorf("%w: dayOfWeek must be between 0 and 6", ErrInvalidInput)
	}

	start := types.TimeString(req.StartTime)
	end := types.TimeString(req.EndTime)
	if err := start.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}
	if err := end.Validate(); err != nil {
		return fmt.Errorf("%w: invalid endTime: %v", ErrInvalidInput, err)
	}
	// 00:00-00:00 is the closed-day sentinel, any other empty window is a
	// mistake
	if start == domain.ClosedTime && end == domain.ClosedTime {
		return nil
	}
	if !end.IsAfter(start) {
		return fmt.Errorf("%w: endTime must be after startTime", ErrInvalidInput)
	}
	return nil
}

func daysInMonth(month time.Month, year int) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

package update_schedule_config

import (
	"context"

	"github.com/mobisfm/FM-BookingService/internal/domain"
	"github.com/mobisfm/FM-BookingService/internal/service/schedule/models"
)

type ScheduleService interface {
	UpsertRule(ctx context.Context, resourceType domain.ResourceType, req *models.UpsertRuleRequest) (*models.RuleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

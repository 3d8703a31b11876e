package get_schedule_config

import (
	"context"

	"github.com/mobisfm/FM-BookingService/internal/domain"
	"github.com/mobisfm/FM-BookingService/internal/service/schedule/models"
)

type ScheduleService interface {
	GetConfig(ctx context.Context, resourceType domain.ResourceType) (*models.ConfigResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package delete_holiday

import (
	"context"

	"github.com/mobisfm/FM-BookingService/internal/domain"
)

type ScheduleService interface {
	DeleteHoliday(ctx context.Context, id int64, actor domain.Actor) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

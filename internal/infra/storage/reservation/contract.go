package reservation

import (
	"github.com/mobisfm/FM-BookingService/pkg/dbmetrics"
)

// Reuse the dbmetrics interfaces for database access
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor

package app

import (
	"context"
)

type LedgerRetryService interface {
	RetryLedgerEvents(context.Context) ([]string, []string, error)
}

package accounting_port

import (
	"context"

	"github.com/heyybhargav/personal-newsletter-sub000/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=accounting_port.go -destination=../../mocks/mock_accounting_port.go -package=mocks

// AccountingPort appends usage and error events. Both logs are append-only
// and never mutated by the pipeline.
type AccountingPort interface {
	AppendUsage(ctx context.Context, event domain.UsageEvent) error
	AppendError(ctx context.Context, event domain.ErrorEvent) error
}

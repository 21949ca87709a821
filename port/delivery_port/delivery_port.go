package delivery_port

import (
	"context"

	"github.com/heyybhargav/personal-newsletter-sub000/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=delivery_port.go -destination=../../mocks/mock_delivery_port.go -package=mocks

// TrialContext decorates a delivery with trial-countdown information.
type TrialContext struct {
	DaysLeft int
}

// DeliveryPort is the opaque outbound email collaborator.
type DeliveryPort interface {
	Deliver(ctx context.Context, recipient string, briefing *domain.Briefing, trial *TrialContext) error
}

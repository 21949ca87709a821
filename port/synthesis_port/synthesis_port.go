package synthesis_port

import (
	"context"

	"github.com/heyybhargav/personal-newsletter-sub000/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=synthesis_port.go -destination=../../mocks/mock_synthesis_port.go -package=mocks

// SynthesisPort is the opaque LLM collaborator: items in, narrative plus
// cost metrics out.
type SynthesisPort interface {
	Synthesize(ctx context.Context, items []domain.ContentItem, provider string) (*domain.Briefing, error)
}

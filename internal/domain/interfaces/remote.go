package interfaces

import (
	"context"

	domaintypes "xorcrack/internal/domain/types"
)

// RemoteCracker is how we talk to a xorcrackd server, all with context.
type RemoteCracker interface {
	Break(ctx context.Context, req domaintypes.BreakRequest) (domaintypes.BreakResponse, error)
	Detect(ctx context.Context, req domaintypes.DetectRequest) (domaintypes.DetectResponse, error)
	Health(ctx context.Context) error
}

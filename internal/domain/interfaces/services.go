package interfaces

import (
	"context"

	domaintypes "xorcrack/internal/domain/types"
)

// CrackService ranks keys for single ciphertexts and picks the encrypted one
// out of a batch.
type CrackService interface {
	Break(ciphertext []byte, top int) ([]domaintypes.Candidate, error)
	BreakHex(hexCiphertext []byte, top int) ([]domaintypes.Candidate, error)
	Detect(ctx context.Context, ciphertexts [][]byte) (domaintypes.Result, error)
	DetectHex(ctx context.Context, lines [][]byte) (domaintypes.Result, error)
}

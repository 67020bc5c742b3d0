package crack

import (
	"context"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"xorcrack/internal/codec"
	"xorcrack/internal/domain"
	"xorcrack/internal/rank"
)

// Selector picks the single-byte XOR encrypted ciphertext out of a batch.
type Selector struct {
	Breaker *Breaker
	// Workers bounds concurrent per-ciphertext searches; <= 0 means GOMAXPROCS.
	Workers int
	Logger  *zap.Logger
}

// NewSelector returns a selector using b. A nil logger logs nothing.
func NewSelector(b *Breaker, workers int, logger *zap.Logger) *Selector {
	if b == nil {
		b = NewBreaker()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Selector{Breaker: b, Workers: workers, Logger: logger}
}

// SelectBest runs the default selector over raw ciphertexts.
func SelectBest(ctx context.Context, ciphertexts [][]byte) (domain.Result, error) {
	return NewSelector(nil, 0, nil).SelectBest(ctx, ciphertexts)
}

// SelectBestHex runs the default selector over hex-encoded ciphertexts.
func SelectBestHex(ctx context.Context, lines [][]byte) (domain.Result, error) {
	return NewSelector(nil, 0, nil).SelectBestHex(ctx, lines)
}

// SelectBestHex decodes every line and then behaves like SelectBest.
// A line that is not valid hex fails the batch with its index.
func (s *Selector) SelectBestHex(ctx context.Context, lines [][]byte) (domain.Result, error) {
	if len(lines) == 0 {
		return domain.Result{}, &domain.StageError{Index: -1, Stage: domain.StageSelect, Err: domain.ErrEmptyBatch}
	}
	cts := make([][]byte, len(lines))
	for i, l := range lines {
		ct, err := codec.DecodeHex(l)
		if err != nil {
			return domain.Result{}, &domain.StageError{Index: i, Stage: domain.StageDecode, Err: err}
		}
		cts[i] = ct
	}
	return s.SelectBest(ctx, cts)
}

// SelectBest breaks every ciphertext, keeps each one's best candidate and
// returns the overall winner with its plaintext.
func (s *Selector) SelectBest(ctx context.Context, ciphertexts [][]byte) (domain.Result, error) {
	if len(ciphertexts) == 0 {
		return domain.Result{}, &domain.StageError{Index: -1, Stage: domain.StageSelect, Err: domain.ErrEmptyBatch}
	}
	log := s.logger()

	best, err := s.bestPerCiphertext(ctx, ciphertexts)
	if err != nil {
		return domain.Result{}, err
	}

	global := rank.New(func(a, b domain.GlobalCandidate) bool {
		if a.Index != b.Index {
			return a.Index < b.Index
		}
		return a.Key < b.Key
	})
	for i, c := range best {
		gc := domain.GlobalCandidate{Score: c.Score, Index: i, Key: c.Key}
		if err := global.Push(c.Score, gc); err != nil {
			return domain.Result{}, &domain.StageError{Index: i, Stage: domain.StageSelect, Err: err}
		}
	}

	top, ok := global.Peek()
	if !ok {
		return domain.Result{}, &domain.StageError{Index: -1, Stage: domain.StageSelect, Err: domain.ErrEmptyBatch}
	}
	win := top.Value
	log.Debug("batch winner",
		zap.Int("ciphertexts", len(ciphertexts)),
		zap.Int("index", win.Index),
		zap.Uint8("key", win.Key),
		zap.Float64("score", win.Score),
	)
	return domain.Result{
		Index:     win.Index,
		Key:       win.Key,
		Score:     win.Score,
		Plaintext: Decrypt(ciphertexts[win.Index], win.Key),
	}, nil
}

// bestPerCiphertext fans the per-ciphertext searches out over a bounded
// errgroup. Results land at their input index.
func (s *Selector) bestPerCiphertext(ctx context.Context, ciphertexts [][]byte) ([]domain.Candidate, error) {
	b := s.Breaker
	if b == nil {
		b = defaultBreaker
	}
	workers := s.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	best := make([]domain.Candidate, len(ciphertexts))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, ct := range ciphertexts {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			c, err := b.Best(ct)
			if err != nil {
				return &domain.StageError{Index: i, Stage: domain.StageBreak, Err: err}
			}
			best[i] = c
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return best, nil
}

func (s *Selector) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}

package recovery

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"xorcrack/internal/codec"
	"xorcrack/internal/crack"
	"xorcrack/internal/crypto"
	"xorcrack/internal/domain"
)

// DefaultTop is the number of candidates Break returns when top <= 0.
const DefaultTop = 5

// logIDBytes is how much of a ciphertext's hash is logged.
const logIDBytes = 8

// Service recovers single-byte XOR keys.
//
// High-level flow:
//   - Break/BreakHex: rank every key for one ciphertext and return the best few.
//   - Detect/DetectHex: pick the encrypted ciphertext out of a batch and return
//     its key, score and plaintext.
//
// Plaintexts never reach the log; ciphertexts are logged by LogID.
type Service struct {
	breaker  *crack.Breaker
	selector *crack.Selector
	top      int
	log      *zap.Logger
}

// New constructs a Service. A nil logger logs nothing; top <= 0 uses DefaultTop.
func New(b *crack.Breaker, workers, top int, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	if b == nil {
		b = crack.NewBreaker()
	}
	if top <= 0 {
		top = DefaultTop
	}
	return &Service{
		breaker:  b,
		selector: crack.NewSelector(b, workers, log),
		top:      top,
		log:      log,
	}
}

// Break ranks keys for a raw ciphertext and returns up to top candidates.
func (s *Service) Break(ciphertext []byte, top int) ([]domain.Candidate, error) {
	if top <= 0 {
		top = s.top
	}
	log := s.log.With(zap.String("run", uuid.NewString()))
	start := time.Now()

	set, err := s.breaker.BreakKey(ciphertext)
	if err != nil {
		log.Warn("break failed", zap.Error(err))
		return nil, err
	}
	cands := crack.Candidates(set, top)
	if len(cands) == 0 {
		return nil, domain.ErrEmptyCandidates
	}
	log.Info("break finished",
		zap.String("ciphertext", crypto.LogID(ciphertext, logIDBytes)),
		zap.Int("bytes", len(ciphertext)),
		zap.Stringer("keys", s.breaker.Keys),
		zap.Uint8("best_key", cands[0].Key),
		zap.Float64("best_score", cands[0].Score),
		zap.Duration("elapsed", time.Since(start)),
	)
	return cands, nil
}

// BreakHex decodes hexCiphertext and calls Break.
func (s *Service) BreakHex(hexCiphertext []byte, top int) ([]domain.Candidate, error) {
	ct, err := codec.DecodeHex(hexCiphertext)
	if err != nil {
		return nil, &domain.StageError{Index: -1, Stage: domain.StageDecode, Err: err}
	}
	return s.Break(ct, top)
}

// Detect selects the best ciphertext out of a raw batch.
func (s *Service) Detect(ctx context.Context, ciphertexts [][]byte) (domain.Result, error) {
	return s.detect(ctx, len(ciphertexts), func(sel *crack.Selector) (domain.Result, error) {
		return sel.SelectBest(ctx, ciphertexts)
	})
}

// DetectHex selects the best ciphertext out of a batch of hex lines.
func (s *Service) DetectHex(ctx context.Context, lines [][]byte) (domain.Result, error) {
	return s.detect(ctx, len(lines), func(sel *crack.Selector) (domain.Result, error) {
		return sel.SelectBestHex(ctx, lines)
	})
}

func (s *Service) detect(ctx context.Context, n int, run func(*crack.Selector) (domain.Result, error)) (domain.Result, error) {
	log := s.log.With(zap.String("run", uuid.NewString()))
	start := time.Now()
	log.Debug("detect started", zap.Int("ciphertexts", n))

	res, err := run(s.selector)
	if err != nil {
		fields := []zap.Field{zap.Error(err)}
		var se *domain.StageError
		if errors.As(err, &se) {
			fields = append(fields, zap.Int("index", se.Index), zap.String("stage", string(se.Stage)))
		}
		log.Warn("detect failed", fields...)
		return domain.Result{}, err
	}
	log.Info("detect finished",
		zap.Int("ciphertexts", n),
		zap.Int("index", res.Index),
		zap.Uint8("key", res.Key),
		zap.Float64("score", res.Score),
		zap.Duration("elapsed", time.Since(start)),
	)
	return res, nil
}

// Compile-time assertion that Service implements domain.CrackService.
var _ domain.CrackService = (*Service)(nil)

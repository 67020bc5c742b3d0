package recovery_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"xorcrack/internal/codec"
	"xorcrack/internal/domain"
	"xorcrack/internal/fixture"
	"xorcrack/internal/services/recovery"
)

const cookingHex = "1b37373331363f78151b7f2b783431333d78397828372d363c78373e783a393b3736"

func newService(t *testing.T) (*recovery.Service, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zap.DebugLevel)
	return recovery.New(nil, 4, 0, zap.New(core)), logs
}

func TestBreakHex_TopCandidates(t *testing.T) {
	svc, logs := newService(t)

	cands, err := svc.BreakHex([]byte(cookingHex), 3)
	require.NoError(t, err)
	require.Len(t, cands, 3)
	assert.Equal(t, byte('X'), cands[0].Key)

	entries := logs.FilterMessage("break finished").All()
	require.Len(t, entries, 1)
	ctx := entries[0].ContextMap()
	assert.Contains(t, ctx, "run")
	assert.Contains(t, ctx, "ciphertext")
	assert.NotContains(t, ctx, "plaintext")
}

func TestBreak_DefaultTop(t *testing.T) {
	svc, _ := newService(t)
	ct, err := codec.DecodeHexString(cookingHex)
	require.NoError(t, err)

	cands, err := svc.Break(ct, 0)
	require.NoError(t, err)
	assert.Len(t, cands, recovery.DefaultTop)
}

func TestBreakHex_Malformed(t *testing.T) {
	svc, _ := newService(t)
	_, err := svc.BreakHex([]byte("abc"), 1)
	require.ErrorIs(t, err, domain.ErrMalformedHex)

	var se *domain.StageError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, domain.StageDecode, se.Stage)
}

func TestDetectHex_FindsHiddenLine(t *testing.T) {
	svc, logs := newService(t)
	batch, err := fixture.Generate(fixture.Options{
		Seed:      "service",
		Lines:     300,
		Plaintext: []byte("Now that the party is jumping\n"),
		Index:     -1,
	})
	require.NoError(t, err)

	res, err := svc.DetectHex(context.Background(), batch.Lines)
	require.NoError(t, err)
	assert.Equal(t, batch.Index, res.Index)
	assert.Equal(t, batch.Key, res.Key)
	assert.Equal(t, batch.Plaintext, res.Plaintext)
	assert.Equal(t, 1, logs.FilterMessage("detect finished").Len())
}

func TestDetect_EmptyBatchIsLogged(t *testing.T) {
	svc, logs := newService(t)
	_, err := svc.Detect(context.Background(), nil)
	require.ErrorIs(t, err, domain.ErrEmptyBatch)
	assert.Equal(t, 1, logs.FilterMessage("detect failed").Len())
}

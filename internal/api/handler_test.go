package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"xorcrack/internal/api"
	"xorcrack/internal/domain"
	"xorcrack/internal/services/recovery"
)

func newServer(t *testing.T, maxBody int64) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(api.NewHandler(recovery.New(nil, 2, 0, nil), nil, maxBody))
	t.Cleanup(srv.Close)
	return srv
}

func post(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(b))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestBreak_OK(t *testing.T) {
	srv := newServer(t, 0)
	resp := post(t, srv.URL+"/break", domain.BreakRequest{
		Ciphertext: "1b37373331363f78151b7f2b783431333d78397828372d363c78373e783a393b3736",
		Top:        2,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-Id"))

	var out domain.BreakResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Len(t, out.Candidates, 2)
	assert.Equal(t, byte('X'), out.Candidates[0].Key)
	assert.Equal(t, "Cooking MC's like a pound of bacon", out.Candidates[0].Plaintext)
}

func TestDetect_BadLineReportsIndex(t *testing.T) {
	srv := newServer(t, 0)
	resp := post(t, srv.URL+"/detect", domain.DetectRequest{Lines: []string{"6162", "xyz"}})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var out domain.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.NotNil(t, out.Index)
	assert.Equal(t, 1, *out.Index)
	assert.Equal(t, domain.StageDecode, out.Stage)
}

func TestDetect_EmptyBatch(t *testing.T) {
	srv := newServer(t, 0)
	resp := post(t, srv.URL+"/detect", domain.DetectRequest{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestBreak_BodyTooLarge(t *testing.T) {
	srv := newServer(t, 16)
	resp := post(t, srv.URL+"/break", domain.BreakRequest{Ciphertext: strings.Repeat("ab", 64)})
	assert.Equal(t, http.StatusRequestEntityTooLarge, resp.StatusCode)
}

func TestBreak_UnknownField(t *testing.T) {
	srv := newServer(t, 0)
	resp, err := http.Post(srv.URL+"/break", "application/json", strings.NewReader(`{"cipher":"00"}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHealthz(t *testing.T) {
	srv := newServer(t, 0)
	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

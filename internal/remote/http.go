package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"xorcrack/internal/domain"
)

// StatusError is a non-2xx response from the server.
type StatusError struct {
	Method string
	Path   string
	Status string
	Code   int
	Body   domain.ErrorResponse
}

func (e *StatusError) Error() string {
	msg := fmt.Sprintf("xorcrackd %s %s: %s", e.Method, e.Path, e.Status)
	if e.Body.Error != "" {
		msg += ": " + e.Body.Error
	}
	return msg
}

// HTTP talks to a xorcrackd server at Base.
type HTTP struct {
	Base string
	HTTP *http.Client
}

// NewHTTP returns a client for base. A nil client uses http.DefaultClient.
func NewHTTP(base string, client *http.Client) *HTTP {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTP{Base: strings.TrimRight(base, "/"), HTTP: client}
}

// Break implements domain.RemoteCracker.
func (c *HTTP) Break(ctx context.Context, req domain.BreakRequest) (domain.BreakResponse, error) {
	var out domain.BreakResponse
	if err := c.post(ctx, "/break", req, &out); err != nil {
		return domain.BreakResponse{}, err
	}
	return out, nil
}

// Detect implements domain.RemoteCracker.
func (c *HTTP) Detect(ctx context.Context, req domain.DetectRequest) (domain.DetectResponse, error) {
	var out domain.DetectResponse
	if err := c.post(ctx, "/detect", req, &out); err != nil {
		return domain.DetectResponse{}, err
	}
	return out, nil
}

// Health implements domain.RemoteCracker.
func (c *HTTP) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.Base+"/healthz", nil)
	if err != nil {
		return err
	}
	return c.do(req, "/healthz", nil)
}

func (c *HTTP) post(ctx context.Context, path string, in any, out any) error {
	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(in); err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Base+path, buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, path, out)
}

func (c *HTTP) do(req *http.Request, path string, out any) error {
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		se := &StatusError{Method: req.Method, Path: path, Status: resp.Status, Code: resp.StatusCode}
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
		_ = json.Unmarshal(b, &se.Body)
		return se
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

var _ domain.RemoteCracker = (*HTTP)(nil)

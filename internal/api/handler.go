package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"xorcrack/internal/codec"
	"xorcrack/internal/crack"
	"xorcrack/internal/domain"
)

// DefaultMaxBodyBytes caps request bodies when no limit is configured.
const DefaultMaxBodyBytes = 4 << 20

// Handler routes xorcrackd requests to a CrackService.
type Handler struct {
	svc     domain.CrackService
	log     *zap.Logger
	maxBody int64
	mux     *http.ServeMux
}

// NewHandler builds the HTTP handler. maxBody <= 0 uses DefaultMaxBodyBytes.
func NewHandler(svc domain.CrackService, log *zap.Logger, maxBody int64) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	if maxBody <= 0 {
		maxBody = DefaultMaxBodyBytes
	}
	h := &Handler{svc: svc, log: log, maxBody: maxBody, mux: http.NewServeMux()}
	h.mux.HandleFunc("POST /break", h.handleBreak)
	h.mux.HandleFunc("POST /detect", h.handleDetect)
	h.mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	return h
}

// ServeHTTP wraps routing with a request id and an access log line.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	rid := r.Header.Get("X-Request-Id")
	if rid == "" {
		rid = uuid.NewString()
	}
	w.Header().Set("X-Request-Id", rid)
	rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
	h.mux.ServeHTTP(rec, r)
	h.log.Info("request",
		zap.String("request_id", rid),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.String("remote", r.RemoteAddr),
		zap.Int("status", rec.status),
		zap.Int("bytes", rec.bytes),
		zap.Duration("elapsed", time.Since(start)),
	)
}

func (h *Handler) handleBreak(w http.ResponseWriter, r *http.Request) {
	var req domain.BreakRequest
	if !h.decode(w, r, &req) {
		return
	}
	cands, err := h.svc.BreakHex([]byte(req.Ciphertext), req.Top)
	if err != nil {
		h.writeError(w, err)
		return
	}
	ct, err := codec.DecodeHexString(req.Ciphertext)
	if err != nil {
		h.writeError(w, err)
		return
	}
	resp := domain.BreakResponse{Candidates: make([]domain.CandidateView, len(cands))}
	for i, c := range cands {
		pt := crack.Decrypt(ct, c.Key)
		resp.Candidates[i] = domain.CandidateView{
			Key:          c.Key,
			Score:        c.Score,
			Plaintext:    string(pt),
			PlaintextHex: codec.EncodeHexString(pt),
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleDetect(w http.ResponseWriter, r *http.Request) {
	var req domain.DetectRequest
	if !h.decode(w, r, &req) {
		return
	}
	lines := make([][]byte, len(req.Lines))
	for i, l := range req.Lines {
		lines[i] = []byte(l)
	}
	res, err := h.svc.DetectHex(r.Context(), lines)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, domain.DetectResponse{
		Index:        res.Index,
		Key:          res.Key,
		Score:        res.Score,
		Plaintext:    string(res.Plaintext),
		PlaintextHex: codec.EncodeHexString(res.Plaintext),
	})
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, out any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBody)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(out); err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			writeJSON(w, http.StatusRequestEntityTooLarge, domain.ErrorResponse{Error: err.Error()})
			return false
		}
		writeJSON(w, http.StatusBadRequest, domain.ErrorResponse{Error: "invalid json: " + err.Error()})
		return false
	}
	return true
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	body := domain.ErrorResponse{Error: err.Error()}
	var se *domain.StageError
	if errors.As(err, &se) {
		body.Stage = se.Stage
		if se.Index >= 0 {
			idx := se.Index
			body.Index = &idx
		}
	}
	writeJSON(w, statusFor(err), body)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrMalformedHex),
		errors.Is(err, domain.ErrLengthMismatch),
		errors.Is(err, domain.ErrEmptyBatch):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	n, err := r.ResponseWriter.Write(b)
	r.bytes += n
	return n, err
}

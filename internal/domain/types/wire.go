package types

// BreakRequest asks a crack server to rank keys for one hex ciphertext.
type BreakRequest struct {
	Ciphertext string `json:"ciphertext"`
	Top        int    `json:"top,omitempty"`
}

// CandidateView is a Candidate with its decryption, as served over HTTP.
// Plaintext is lossy for bytes that are not valid UTF-8; PlaintextHex is exact.
type CandidateView struct {
	Key          byte    `json:"key"`
	Score        float64 `json:"score"`
	Plaintext    string  `json:"plaintext"`
	PlaintextHex string  `json:"plaintext_hex"`
}

// BreakResponse lists the best candidates, best first.
type BreakResponse struct {
	Candidates []CandidateView `json:"candidates"`
}

// DetectRequest carries hex-encoded candidate ciphertexts, one per entry.
type DetectRequest struct {
	Lines []string `json:"lines"`
}

// DetectResponse is the winning line of a DetectRequest.
type DetectResponse struct {
	Index        int     `json:"index"`
	Key          byte    `json:"key"`
	Score        float64 `json:"score"`
	Plaintext    string  `json:"plaintext"`
	PlaintextHex string  `json:"plaintext_hex"`
}

// ErrorResponse is returned with non-2xx statuses.
type ErrorResponse struct {
	Error string `json:"error"`
	Index *int   `json:"index,omitempty"`
	Stage Stage  `json:"stage,omitempty"`
}

package interfaces

// LineSource supplies candidate ciphertexts, one buffer per input line.
type LineSource interface {
	Lines() ([][]byte, error)
}

package domain

import (
	interfaces "xorcrack/internal/domain/interfaces"
	types "xorcrack/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Candidate       = types.Candidate
	GlobalCandidate = types.GlobalCandidate
	Result          = types.Result
	KeyRange        = types.KeyRange
	Stage           = types.Stage
	StageError      = types.StageError

	BreakRequest   = types.BreakRequest
	BreakResponse  = types.BreakResponse
	CandidateView  = types.CandidateView
	DetectRequest  = types.DetectRequest
	DetectResponse = types.DetectResponse
	ErrorResponse  = types.ErrorResponse
)

// Interface aliases expose service contracts from the interfaces subpackage.
type (
	CrackService  = interfaces.CrackService
	RemoteCracker = interfaces.RemoteCracker
	LineSource    = interfaces.LineSource
)

// Errors and constants re-exported from the types subpackage.
var (
	ErrMalformedHex    = types.ErrMalformedHex
	ErrLengthMismatch  = types.ErrLengthMismatch
	ErrEmptyBatch      = types.ErrEmptyBatch
	ErrEmptyCandidates = types.ErrEmptyCandidates
	ErrDegenerateScore = types.ErrDegenerateScore
	ErrInvalidKeyRange = types.ErrInvalidKeyRange

	DefaultKeyRange = types.DefaultKeyRange
)

const (
	StageDecode = types.StageDecode
	StageBreak  = types.StageBreak
	StageSelect = types.StageSelect
)

// Package domain defines core data models, error values and service contracts
// shared across xorcrack. It contains plain types (wire/state) and interfaces only.
package domain

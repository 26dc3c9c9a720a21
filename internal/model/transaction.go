// Package model defines the core domain models used throughout the application.
package model

import (
	"crypto/sha256"
	"fmt"
	"math"
	"time"
)

// Direction indicates whether money moved into or out of the account.
type Direction string

const (
	// DirectionInflow represents money received (deposits, payroll, refunds).
	DirectionInflow Direction = "inflow"
	// DirectionOutflow represents money spent (purchases, bills, fees).
	DirectionOutflow Direction = "outflow"
)

// Transaction represents a single financial transaction from any source.
type Transaction struct {
	Date         time.Time
	ID           string
	Description  string // Raw transaction description from the bank feed
	MerchantName string // Cleaned merchant name, when the source provides one
	AccountID    string
	Hash         string
	Type         string // Source transaction type (e.g., DEBIT, CHECK, ATM)
	Direction    Direction
	Amount       float64
}

// GenerateHash creates a unique hash for duplicate detection.
func (t *Transaction) GenerateHash() string {
	data := fmt.Sprintf("%s:%.2f:%s:%s",
		t.Date.Format("2006-01-02"),
		t.Amount,
		t.Description,
		t.AccountID)
	hash := sha256.Sum256([]byte(data))
	return fmt.Sprintf("%x", hash)
}

// AbsAmount returns the magnitude of the transaction amount.
// All pattern comparisons operate on magnitudes regardless of sign convention.
func (t *Transaction) AbsAmount() float64 {
	return math.Abs(t.Amount)
}

// Flow returns the explicit direction when set, otherwise derives it
// from the sign of the amount (negative amounts are outflows in most feeds).
func (t *Transaction) Flow() Direction {
	if t.Direction != "" {
		return t.Direction
	}
	if t.Amount < 0 {
		return DirectionOutflow
	}
	return DirectionInflow
}

package model

import (
	"math"
	"strconv"
)

// Transaction moves an amount from a sender to a receiver. Sender and receiver
// are the names as the user typed them, not resolved addresses.
type Transaction struct {
	// Who pays, e.g. a wallet name or "Faucet".
	Sender string `json:"sender"`
	// Who gets paid.
	Receiver string `json:"receiver"`
	// How much value to transfer.
	Amount float32 `json:"amount"`
}

// Stringer function of transaction. This exact rendering is part of the block
// hash, e.g. "alice -> bob: 40".
func (t Transaction) String() string {
	return t.Sender + " -> " + t.Receiver + ": " + FormatAmount(t.Amount)
}

// FormatAmount renders the shortest decimal that round-trips a 32-bit float,
// without exponent.
func FormatAmount(amount float32) string {
	f := float64(amount)
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	return strconv.FormatFloat(f, 'f', -1, 32)
}

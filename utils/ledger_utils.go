package utils

import (
	"fmt"
	"math"

	"github.com/Luismorlan/ledger_in_go/model"
)

// One past the largest balance, as a float.
const maxUnits = float64(1 << 64)

// RoundAmount converts a transaction amount to ledger units. Halves round away
// from zero; negative and NaN amounts become 0 and huge ones saturate.
func RoundAmount(amount float32) uint64 {
	r := math.Round(float64(amount))
	switch {
	case math.IsNaN(r) || r <= 0:
		return 0
	case r >= maxUnits:
		return math.MaxUint64
	}
	return uint64(r)
}

// Debit takes amount out of balance.
func Debit(balance uint64, amount uint64) (uint64, error) {
	if balance < amount {
		return balance, fmt.Errorf("%w: has %d, needs %d", model.ErrInsufficientFunds, balance, amount)
	}
	return balance - amount, nil
}

// Credit adds amount to balance, refusing to wrap around.
func Credit(balance uint64, amount uint64) (uint64, error) {
	if balance > math.MaxUint64-amount {
		return balance, fmt.Errorf("%w: crediting %d overflows balance %d", model.ErrInvalidAmount, amount, balance)
	}
	return balance + amount, nil
}

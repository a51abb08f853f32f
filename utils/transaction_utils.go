package utils

import (
	"fmt"
	"math"
	"strings"

	"github.com/Luismorlan/ledger_in_go/model"
)

func NewTransaction(sender string, receiver string, amount float32) model.Transaction {
	return model.Transaction{
		Sender:   sender,
		Receiver: receiver,
		Amount:   amount,
	}
}

// JoinTransactions renders every transaction and joins them with "|".
func JoinTransactions(txs []model.Transaction) string {
	ss := make([]string, 0, len(txs))
	for i := 0; i < len(txs); i++ {
		ss = append(ss, txs[i].String())
	}
	return strings.Join(ss, "|")
}

// A transfer amount is valid if it is a finite, non-negative number.
func ValidateAmount(amount float32) error {
	f := float64(amount)
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return fmt.Errorf("%w: %s", model.ErrInvalidAmount, model.FormatAmount(amount))
	}
	return nil
}

package model

import "time"

// PendingTransfer is a journal record written before a transfer touches the
// chain, and removed in the same ledger transaction that applies it.
type PendingTransfer struct {
	ID string `json:"id"`
	// Display names recorded in the block.
	Sender   string `json:"sender"`
	Receiver string `json:"receiver"`
	// Ledger keys. An empty SenderAddress is a faucet credit with no debit.
	SenderAddress   string `json:"sender_address"`
	ReceiverAddress string `json:"receiver_address"`
	// Rounded amount moved between balances.
	Amount uint64 `json:"amount"`
	// Amount as recorded in the transaction.
	RawAmount float32 `json:"raw_amount"`
	// Hash of the block recording the transfer, empty until it is mined.
	BlockHash string    `json:"block_hash"`
	CreatedAt time.Time `json:"created_at"`
}

// IsFaucet reports whether the transfer only credits the receiver.
func (p PendingTransfer) IsFaucet() bool {
	return p.SenderAddress == ""
}

// Transaction is the chain record of this transfer.
func (p PendingTransfer) Transaction() Transaction {
	return Transaction{
		Sender:   p.Sender,
		Receiver: p.Receiver,
		Amount:   p.RawAmount,
	}
}

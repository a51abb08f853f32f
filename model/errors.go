package model

import "errors"

var (
	// ErrKeypairGeneration is returned when a wallet key pair cannot be created.
	ErrKeypairGeneration = errors.New("keypair generation failed")
	// ErrStoreIO wraps any read, write or flush failure of the balance ledger.
	ErrStoreIO = errors.New("balance store I/O failed")
	// ErrChainPersistence wraps failures writing the chain document.
	ErrChainPersistence = errors.New("chain persistence failed")
	// ErrInsufficientFunds is a business rejection, not a system fault.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrMalformedRecord is returned for a stored balance that is not 8 bytes.
	ErrMalformedRecord = errors.New("malformed balance record")
	// ErrWalletExists is returned when creating a wallet under a taken name.
	ErrWalletExists = errors.New("wallet already exists")
	// ErrInvalidAmount covers negative, NaN and infinite transfer amounts
	// and credits that would overflow a balance.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrMiningCancelled is returned when the context ends before a nonce is
	// found. No block is appended.
	ErrMiningCancelled = errors.New("mining cancelled")
)

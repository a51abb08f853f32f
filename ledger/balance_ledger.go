// Package ledger keeps account balances in a bolt database. Every write is a
// bolt read-write transaction, and bolt syncs the file before Update returns,
// so a balance change is durable once the call succeeds.
//
// Besides the balances the database holds a journal of transfers that have
// been accepted but not yet applied. A transfer is journaled before its block
// is mined and retired in the same transaction that moves the funds, which
// lets a restarted node finish transfers interrupted half way.
package ledger

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/Luismorlan/ledger_in_go/model"
	"github.com/Luismorlan/ledger_in_go/utils"
	"github.com/boltdb/bolt"
)

var (
	balancesBucket = []byte("balances")
	journalBucket  = []byte("journal")
	// Journaled transfers whose block is on the chain but which can no
	// longer be applied to the balances.
	quarantineBucket = []byte("quarantine")
)

// How long Open waits for another process holding the database.
const openTimeout = time.Second

type BalanceLedger struct {
	db *bolt.DB
}

// Open opens or creates the ledger database at path.
func Open(path string) (*BalanceLedger, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, storeErr("create ledger directory", err)
	}
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: openTimeout})
	if err != nil {
		return nil, storeErr("open "+path, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range [][]byte{balancesBucket, journalBucket, quarantineBucket} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, storeErr("create buckets", err)
	}
	return &BalanceLedger{db: db}, nil
}

func (l *BalanceLedger) Close() error {
	return l.db.Close()
}

// GetBalance returns 0 for an address that was never written.
func (l *BalanceLedger) GetBalance(address string) (uint64, error) {
	var balance uint64
	err := l.db.View(func(tx *bolt.Tx) error {
		var err error
		balance, err = getBalance(tx.Bucket(balancesBucket), address)
		return err
	})
	if err != nil {
		return 0, passOrStoreErr("get balance of "+address, err)
	}
	return balance, nil
}

func (l *BalanceLedger) SetBalance(address string, amount uint64) error {
	err := l.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(balancesBucket).Put([]byte(address), utils.Uint64ToBytes(amount))
	})
	if err != nil {
		return storeErr("set balance of "+address, err)
	}
	return nil
}

// ApplyTransfer moves p.Amount from sender to receiver and retires the
// journal record of p, all in one transaction. Faucet transfers only credit.
// The sender's funds are checked again against the stored balance.
func (l *BalanceLedger) ApplyTransfer(p model.PendingTransfer) error {
	err := l.db.Update(func(tx *bolt.Tx) error {
		balances := tx.Bucket(balancesBucket)
		if !p.IsFaucet() {
			sender, err := getBalance(balances, p.SenderAddress)
			if err != nil {
				return err
			}
			if sender, err = utils.Debit(sender, p.Amount); err != nil {
				return fmt.Errorf("%s: %w", p.Sender, err)
			}
			if err := balances.Put([]byte(p.SenderAddress), utils.Uint64ToBytes(sender)); err != nil {
				return err
			}
		}

		// Read after the debit so a transfer to oneself nets out.
		receiver, err := getBalance(balances, p.ReceiverAddress)
		if err != nil {
			return err
		}
		if receiver, err = utils.Credit(receiver, p.Amount); err != nil {
			return fmt.Errorf("%s: %w", p.Receiver, err)
		}
		if err := balances.Put([]byte(p.ReceiverAddress), utils.Uint64ToBytes(receiver)); err != nil {
			return err
		}
		return tx.Bucket(journalBucket).Delete([]byte(p.ID))
	})
	if err != nil {
		return passOrStoreErr("apply transfer "+p.ID, err)
	}
	return nil
}

// RecordPending journals a transfer before it touches the chain.
func (l *BalanceLedger) RecordPending(p model.PendingTransfer) error {
	data, err := json.Marshal(p)
	if err != nil {
		return err
	}
	err = l.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(journalBucket).Put([]byte(p.ID), data)
	})
	if err != nil {
		return storeErr("journal transfer "+p.ID, err)
	}
	return nil
}

// MarkMined records the hash of the block holding the journaled transfer.
func (l *BalanceLedger) MarkMined(id string, blockHash string) error {
	err := l.db.Update(func(tx *bolt.Tx) error {
		journal := tx.Bucket(journalBucket)
		raw := journal.Get([]byte(id))
		if raw == nil {
			return fmt.Errorf("transfer %s is not journaled", id)
		}
		var p model.PendingTransfer
		if err := json.Unmarshal(raw, &p); err != nil {
			return err
		}
		p.BlockHash = blockHash
		data, err := json.Marshal(p)
		if err != nil {
			return err
		}
		return journal.Put([]byte(id), data)
	})
	if err != nil {
		return storeErr("mark transfer "+id, err)
	}
	return nil
}

// DiscardPending drops a journaled transfer without touching balances.
func (l *BalanceLedger) DiscardPending(id string) error {
	err := l.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(journalBucket).Delete([]byte(id))
	})
	if err != nil {
		return storeErr("discard transfer "+id, err)
	}
	return nil
}

// QuarantinePending moves a journaled transfer out of the journal into the
// quarantine bucket, where it is kept for an operator to inspect.
func (l *BalanceLedger) QuarantinePending(id string) error {
	err := l.db.Update(func(tx *bolt.Tx) error {
		journal := tx.Bucket(journalBucket)
		raw := journal.Get([]byte(id))
		if raw == nil {
			return fmt.Errorf("transfer %s is not journaled", id)
		}
		if err := tx.Bucket(quarantineBucket).Put([]byte(id), raw); err != nil {
			return err
		}
		return journal.Delete([]byte(id))
	})
	if err != nil {
		return storeErr("quarantine transfer "+id, err)
	}
	return nil
}

// PendingTransfers lists journaled transfers, oldest first.
func (l *BalanceLedger) PendingTransfers() ([]model.PendingTransfer, error) {
	return l.list(journalBucket)
}

// QuarantinedTransfers lists transfers set aside by QuarantinePending,
// oldest first.
func (l *BalanceLedger) QuarantinedTransfers() ([]model.PendingTransfer, error) {
	return l.list(quarantineBucket)
}

// PendingDebit sums what journaled transfers will take from address once
// their blocks are applied.
func (l *BalanceLedger) PendingDebit(address string) (uint64, error) {
	pending, err := l.PendingTransfers()
	if err != nil {
		return 0, err
	}
	var total uint64
	for _, p := range pending {
		if p.IsFaucet() || p.SenderAddress != address {
			continue
		}
		if total, err = utils.Credit(total, p.Amount); err != nil {
			return 0, fmt.Errorf("pending debit of %s: %w", address, err)
		}
	}
	return total, nil
}

func (l *BalanceLedger) list(bucket []byte) ([]model.PendingTransfer, error) {
	var pending []model.PendingTransfer
	err := l.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucket).ForEach(func(k, v []byte) error {
			var p model.PendingTransfer
			if err := json.Unmarshal(v, &p); err != nil {
				return fmt.Errorf("%s entry %s: %w", bucket, k, err)
			}
			pending = append(pending, p)
			return nil
		})
	})
	if err != nil {
		return nil, storeErr("read "+string(bucket), err)
	}
	sort.Slice(pending, func(i, j int) bool {
		return pending[i].CreatedAt.Before(pending[j].CreatedAt)
	})
	return pending, nil
}

func getBalance(b *bolt.Bucket, address string) (uint64, error) {
	raw := b.Get([]byte(address))
	if raw == nil {
		return 0, nil
	}
	balance, err := utils.BytesToUint64(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", model.ErrMalformedRecord, address, err)
	}
	return balance, nil
}

func storeErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", model.ErrStoreIO, op, err)
}

// passOrStoreErr keeps business and decode errors as they are and wraps the
// rest as store failures.
func passOrStoreErr(op string, err error) error {
	if errors.Is(err, model.ErrInsufficientFunds) ||
		errors.Is(err, model.ErrMalformedRecord) ||
		errors.Is(err, model.ErrInvalidAmount) {
		return err
	}
	return storeErr(op, err)
}

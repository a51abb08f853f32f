// Package chain owns the node's blockchain: appending mined blocks and
// keeping the chain document on disk in sync.
package chain

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/Luismorlan/ledger_in_go/model"
	"github.com/Luismorlan/ledger_in_go/utils"
	"github.com/jinzhu/copier"
)

// ChainStore guards the blockchain with a single mutex. Appending a block
// holds the mutex through mining and persisting, so there is one writer at a
// time.
type ChainStore struct {
	m          sync.Mutex
	blockchain *model.Blockchain
	// Where the chain document lives.
	path  string
	miner *Miner
	// Number of leading blocks known to be written to path.
	persisted int
}

// LoadChainStore reads the chain document at path. When the document is
// missing, unreadable or fails verification it logs the cause and starts a
// fresh chain at difficulty; the error is never returned. A rejected document
// is moved aside to path.corrupt first so the next save does not destroy it.
// An error only comes back when the genesis block of a fresh chain cannot be
// mined.
func LoadChainStore(ctx context.Context, path string, difficulty int, miner *Miner) (*ChainStore, error) {
	s := &ChainStore{
		path:  path,
		miner: miner,
	}

	data, err := os.ReadFile(path)
	if err == nil {
		var bc *model.Blockchain
		if bc, err = decodeChain(data); err == nil {
			s.blockchain = bc
			s.persisted = len(bc.Blocks)
			slog.Debug("loaded blockchain", "path", path, "blocks", len(bc.Blocks), "difficulty", bc.Difficulty)
			return s, nil
		}
		if rerr := os.Rename(path, path+".corrupt"); rerr != nil {
			slog.Error("failed to move corrupt blockchain aside", "path", path, "err", rerr)
		}
	}

	slog.Warn("No existing blockchain found. Creating new chain.", "path", path, "err", err)
	bc, err := utils.NewBlockchain(ctx, difficulty)
	if err != nil {
		return nil, err
	}
	s.blockchain = bc
	return s, nil
}

// AddBlock mines a block holding txs on top of the tail, appends it and
// persists the chain. Nothing is appended when mining fails. When only
// persisting fails the block stays appended in memory and is returned along
// with an error wrapping model.ErrChainPersistence.
func (s *ChainStore) AddBlock(ctx context.Context, txs []model.Transaction) (*model.Block, error) {
	s.m.Lock()
	defer s.m.Unlock()

	tail := s.blockchain.Tail()
	block := utils.NewBlock(tail.Index+1, tail.Hash, txs)
	start := time.Now()
	if err := s.miner.Mine(ctx, block, s.blockchain.Difficulty); err != nil {
		return nil, err
	}
	s.blockchain.Blocks = append(s.blockchain.Blocks, *block)
	slog.Info("block mined", "index", block.Index, "hash", block.Hash, "nonce", block.Nonce, "took", time.Since(start))

	return block, s.saveLocked()
}

// Save writes the whole chain to disk.
func (s *ChainStore) Save() error {
	s.m.Lock()
	defer s.m.Unlock()
	return s.saveLocked()
}

func (s *ChainStore) saveLocked() error {
	if err := utils.WriteJSONFile(s.path, s.blockchain, 0644); err != nil {
		slog.Error("failed to persist blockchain", "path", s.path, "err", err)
		return fmt.Errorf("%w: %s: %w", model.ErrChainPersistence, s.path, err)
	}
	s.persisted = len(s.blockchain.Blocks)
	return nil
}

// Snapshot returns a deep copy of the chain that callers may keep.
func (s *ChainStore) Snapshot() (model.Blockchain, error) {
	s.m.Lock()
	defer s.m.Unlock()

	var out model.Blockchain
	if err := copier.CopyWithOption(&out, s.blockchain, copier.Option{DeepCopy: true}); err != nil {
		return model.Blockchain{}, err
	}
	normalize(&out)
	return out, nil
}

// IsPersisted reports whether a block with hash is part of the chain on disk.
func (s *ChainStore) IsPersisted(hash string) bool {
	s.m.Lock()
	defer s.m.Unlock()
	for i := 0; i < s.persisted; i++ {
		if s.blockchain.Blocks[i].Hash == hash {
			return true
		}
	}
	return false
}

// Contains reports whether a block with hash is in the chain, on disk or not.
func (s *ChainStore) Contains(hash string) bool {
	s.m.Lock()
	defer s.m.Unlock()
	for i := range s.blockchain.Blocks {
		if s.blockchain.Blocks[i].Hash == hash {
			return true
		}
	}
	return false
}

// FindPersisted returns the hash of the first block on disk, stamped at or
// after since, that records tx.
func (s *ChainStore) FindPersisted(tx model.Transaction, since time.Time) (string, bool) {
	s.m.Lock()
	defer s.m.Unlock()
	for i := 0; i < s.persisted; i++ {
		b := &s.blockchain.Blocks[i]
		if int64(b.Timestamp) < since.Unix() {
			continue
		}
		for _, t := range b.Transactions {
			if t == tx {
				return b.Hash, true
			}
		}
	}
	return "", false
}

// Verify checks hashes, difficulty and linkage of the whole chain.
func (s *ChainStore) Verify() error {
	s.m.Lock()
	defer s.m.Unlock()
	return utils.VerifyChain(s.blockchain)
}

func (s *ChainStore) Height() int {
	s.m.Lock()
	defer s.m.Unlock()
	return len(s.blockchain.Blocks)
}

func (s *ChainStore) Difficulty() int {
	s.m.Lock()
	defer s.m.Unlock()
	return s.blockchain.Difficulty
}

// Transactions are written as [] rather than null.
func normalize(bc *model.Blockchain) {
	for i := range bc.Blocks {
		if bc.Blocks[i].Transactions == nil {
			bc.Blocks[i].Transactions = []model.Transaction{}
		}
	}
}

package utils

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Luismorlan/ledger_in_go/model"
)

// Previous hash recorded by the genesis block.
const GenesisPrevHash = "0"

// NewBlock creates a block on top of prevHash with a fresh timestamp and nonce 0.
// The returned block carries a valid hash but is not mined yet.
func NewBlock(index uint64, prevHash string, txs []model.Transaction) *model.Block {
	if txs == nil {
		txs = []model.Transaction{}
	}
	block := &model.Block{
		Index:        index,
		Timestamp:    uint64(time.Now().Unix()),
		PreviousHash: prevHash,
		Transactions: txs,
	}
	block.Hash = CalcBlockHash(block)
	return block
}

// NewBlockchain creates a chain that holds only a mined genesis block.
func NewBlockchain(ctx context.Context, difficulty int) (*model.Blockchain, error) {
	genesis := NewBlock(0, GenesisPrevHash, nil)
	if err := Mine(ctx, genesis, difficulty); err != nil {
		return nil, err
	}
	return &model.Blockchain{
		Blocks:     []model.Block{*genesis},
		Difficulty: difficulty,
	}, nil
}

// GetBlockBytes concatenates index, timestamp, previous hash, the joined
// transactions and the nonce. Integers are rendered in decimal.
func GetBlockBytes(block *model.Block) []byte {
	return []byte(fmt.Sprintf("%d%d%s%s%d",
		block.Index,
		block.Timestamp,
		block.PreviousHash,
		JoinTransactions(block.Transactions),
		block.Nonce,
	))
}

func CalcBlockHash(block *model.Block) string {
	return BytesToHex(SHA256(GetBlockBytes(block)))
}

// Mine a block, bumping the nonce and the hash until the hash has difficulty
// leading hex zeros. ctx is checked on every attempt; a difficulty larger than
// the hash length can only end through ctx.
func Mine(ctx context.Context, block *model.Block, difficulty int) error {
	if difficulty < 0 {
		return fmt.Errorf("block %d: negative difficulty %d", block.Index, difficulty)
	}
	prefix := strings.Repeat("0", difficulty)
	for {
		select {
		case <-ctx.Done():
			return fmt.Errorf("%w: block %d after %d attempts: %w", model.ErrMiningCancelled, block.Index, block.Nonce, ctx.Err())
		default:
		}
		if strings.HasPrefix(block.Hash, prefix) {
			return nil
		}
		block.Nonce++
		block.Hash = CalcBlockHash(block)
	}
}

func MatchDifficulty(hash string, difficulty int) bool {
	if difficulty < 0 || difficulty > len(hash) {
		return false
	}
	return strings.HasPrefix(hash, strings.Repeat("0", difficulty))
}

// IsValidBlock checks the stored hash against the block content and the
// difficulty.
func IsValidBlock(block *model.Block, difficulty int) error {
	if expected := CalcBlockHash(block); block.Hash != expected {
		return fmt.Errorf("invalid hash: expected %s, got %s", expected, block.Hash)
	}
	if !MatchDifficulty(block.Hash, difficulty) {
		return fmt.Errorf("hash %s does not match difficulty %d", block.Hash, difficulty)
	}
	return nil
}

// VerifyChain validates genesis, every block and the links between them.
// Genesis is only checked for its hash: chains written by older versions
// carry an unmined genesis.
func VerifyChain(bc *model.Blockchain) error {
	if len(bc.Blocks) == 0 {
		return errors.New("empty blockchain")
	}
	if bc.Difficulty < 0 {
		return fmt.Errorf("negative difficulty %d", bc.Difficulty)
	}

	genesis := &bc.Blocks[0]
	if genesis.Index != 0 || genesis.PreviousHash != GenesisPrevHash {
		return errors.New("invalid genesis block")
	}
	if expected := CalcBlockHash(genesis); genesis.Hash != expected {
		return fmt.Errorf("genesis: invalid hash: expected %s, got %s", expected, genesis.Hash)
	}

	for i := 1; i < len(bc.Blocks); i++ {
		current := &bc.Blocks[i]
		previous := &bc.Blocks[i-1]
		if current.Index != previous.Index+1 {
			return fmt.Errorf("block %d invalid: expected index %d, got %d", i, previous.Index+1, current.Index)
		}
		if current.PreviousHash != previous.Hash {
			return fmt.Errorf("block %d invalid: expected prev hash %s, got %s", i, previous.Hash, current.PreviousHash)
		}
		if err := IsValidBlock(current, bc.Difficulty); err != nil {
			return fmt.Errorf("block %d invalid: %w", i, err)
		}
	}
	return nil
}

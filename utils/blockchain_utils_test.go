package utils

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/Luismorlan/ledger_in_go/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestBlock() *model.Block {
	return &model.Block{
		Index:        3,
		Timestamp:    1700000000,
		PreviousHash: "00ab",
		Transactions: []model.Transaction{
			{Sender: "alice", Receiver: "bob", Amount: 40},
			{Sender: "bob", Receiver: "carol", Amount: 2.5},
		},
		Nonce: 7,
	}
}

func TestGetBlockBytes(t *testing.T) {
	testBlock := createTestBlock()
	expected := "31700000000" + "00ab" + "alice -> bob: 40|bob -> carol: 2.5" + "7"
	assert.Equal(t, expected, string(GetBlockBytes(testBlock)))
}

func TestCalcBlockHash(t *testing.T) {
	testBlock := createTestBlock()
	digest := sha256.Sum256([]byte("31700000000" + "00ab" + "alice -> bob: 40|bob -> carol: 2.5" + "7"))
	assert.Equal(t, hex.EncodeToString(digest[:]), CalcBlockHash(testBlock))
}

func TestNewBlock(t *testing.T) {
	before := uint64(time.Now().Unix())
	block := NewBlock(1, "abc", nil)

	assert.Equal(t, uint64(1), block.Index)
	assert.Equal(t, "abc", block.PreviousHash)
	assert.Equal(t, uint64(0), block.Nonce)
	assert.NotNil(t, block.Transactions)
	assert.Empty(t, block.Transactions)
	assert.GreaterOrEqual(t, block.Timestamp, before)
	assert.Equal(t, CalcBlockHash(block), block.Hash)
}

func TestMine(t *testing.T) {
	testDifficulty := 2
	testBlock := NewBlock(1, "00ab", createTestBlock().Transactions)

	err := Mine(context.Background(), testBlock, testDifficulty)
	require.NoError(t, err)
	assert.True(t, MatchDifficulty(testBlock.Hash, testDifficulty))
	assert.True(t, strings.HasPrefix(testBlock.Hash, "00"))
	assert.Equal(t, CalcBlockHash(testBlock), testBlock.Hash)
	assert.NoError(t, IsValidBlock(testBlock, testDifficulty))
}

func TestMineInterruption(t *testing.T) {
	// A difficulty longer than the hash is impossible to solve.
	testDifficulty := 100
	testBlock := NewBlock(1, "00ab", nil)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := Mine(ctx, testBlock, testDifficulty)
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrMiningCancelled))
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
	assert.Greater(t, testBlock.Nonce, uint64(0))
}

func TestMatchDifficulty(t *testing.T) {
	assert.True(t, MatchDifficulty("00ab", 2))
	assert.True(t, MatchDifficulty("00ab", 0))
	assert.False(t, MatchDifficulty("0a0b", 2))
	assert.False(t, MatchDifficulty("00", 3))
	assert.False(t, MatchDifficulty("00ab", -1))
}

func TestMineNegativeDifficulty(t *testing.T) {
	testBlock := NewBlock(1, "00ab", nil)
	assert.Error(t, Mine(context.Background(), testBlock, -1))
	assert.Error(t, IsValidBlock(testBlock, -1))
	_, err := NewBlockchain(context.Background(), -1)
	assert.Error(t, err)
}

func TestIsValidBlock(t *testing.T) {
	testBlock := NewBlock(1, "00ab", nil)
	require.NoError(t, Mine(context.Background(), testBlock, 1))

	tampered := *testBlock
	tampered.Transactions = []model.Transaction{{Sender: "mallory", Receiver: "mallory", Amount: 1000}}
	assert.Error(t, IsValidBlock(&tampered, 1))

	assert.Error(t, IsValidBlock(testBlock, 64))
}

func TestNewBlockchain(t *testing.T) {
	bc, err := NewBlockchain(context.Background(), 2)
	require.NoError(t, err)

	require.Len(t, bc.Blocks, 1)
	genesis := bc.Blocks[0]
	assert.Equal(t, uint64(0), genesis.Index)
	assert.Equal(t, GenesisPrevHash, genesis.PreviousHash)
	assert.Empty(t, genesis.Transactions)
	assert.True(t, MatchDifficulty(genesis.Hash, 2))
	assert.Equal(t, 2, bc.Difficulty)
	assert.NoError(t, VerifyChain(bc))
}

func appendTestBlocks(t *testing.T, bc *model.Blockchain, n int) {
	for i := 0; i < n; i++ {
		tail := bc.Tail()
		tx := NewTransaction(fmt.Sprintf("user%d", i), "bob", float32(i))
		block := NewBlock(tail.Index+1, tail.Hash, []model.Transaction{tx})
		require.NoError(t, Mine(context.Background(), block, bc.Difficulty))
		bc.Blocks = append(bc.Blocks, *block)
	}
}

func TestVerifyChain(t *testing.T) {
	bc, err := NewBlockchain(context.Background(), 1)
	require.NoError(t, err)
	appendTestBlocks(t, bc, 4)
	require.NoError(t, VerifyChain(bc))

	for i := 1; i < len(bc.Blocks); i++ {
		assert.Equal(t, bc.Blocks[i-1].Hash, bc.Blocks[i].PreviousHash)
		assert.Equal(t, bc.Blocks[i-1].Index+1, bc.Blocks[i].Index)
	}

	t.Run("broken link", func(t *testing.T) {
		broken := model.Blockchain{Difficulty: bc.Difficulty, Blocks: append([]model.Block{}, bc.Blocks...)}
		broken.Blocks[2].PreviousHash = "ff"
		assert.Error(t, VerifyChain(&broken))
	})

	t.Run("skipped index", func(t *testing.T) {
		skipped := model.Blockchain{Difficulty: bc.Difficulty, Blocks: append([]model.Block{}, bc.Blocks[:2]...)}
		skipped.Blocks = append(skipped.Blocks, bc.Blocks[3])
		assert.Error(t, VerifyChain(&skipped))
	})

	t.Run("empty", func(t *testing.T) {
		assert.Error(t, VerifyChain(&model.Blockchain{}))
	})
}

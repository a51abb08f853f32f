package chain

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/Luismorlan/ledger_in_go/model"
	"github.com/Luismorlan/ledger_in_go/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDifficulty = 2

func newTestMiner(t *testing.T) *Miner {
	m := NewMiner()
	t.Cleanup(m.Stop)
	return m
}

func loadTestStore(t *testing.T, path string) *ChainStore {
	s, err := LoadChainStore(context.Background(), path, testDifficulty, newTestMiner(t))
	require.NoError(t, err)
	return s
}

func transferTx(from string, to string, amount float32) []model.Transaction {
	return []model.Transaction{utils.NewTransaction(from, to, amount)}
}

func TestFreshChainHasOnlyGenesis(t *testing.T) {
	s := loadTestStore(t, filepath.Join(t.TempDir(), "data", "blockchain.json"))

	bc, err := s.Snapshot()
	require.NoError(t, err)
	require.Len(t, bc.Blocks, 1)
	genesis := bc.Blocks[0]
	assert.Equal(t, uint64(0), genesis.Index)
	assert.Equal(t, "0", genesis.PreviousHash)
	assert.Empty(t, genesis.Transactions)
	assert.True(t, strings.HasPrefix(genesis.Hash, "00"))
	assert.Equal(t, testDifficulty, bc.Difficulty)
	assert.False(t, s.IsPersisted(genesis.Hash))
}

func TestAddBlockLinksAndPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "blockchain.json")
	s := loadTestStore(t, path)

	for i := 0; i < 5; i++ {
		block, err := s.AddBlock(context.Background(), transferTx("alice", "bob", float32(i)+0.5))
		require.NoError(t, err)
		assert.Equal(t, uint64(i+1), block.Index)
		assert.True(t, s.IsPersisted(block.Hash))
	}

	bc, err := s.Snapshot()
	require.NoError(t, err)
	require.Len(t, bc.Blocks, 6)
	for i := 1; i < len(bc.Blocks); i++ {
		assert.Equal(t, bc.Blocks[i-1].Hash, bc.Blocks[i].PreviousHash)
		assert.Equal(t, bc.Blocks[i-1].Index+1, bc.Blocks[i].Index)
		assert.Equal(t, utils.CalcBlockHash(&bc.Blocks[i]), bc.Blocks[i].Hash)
		assert.True(t, strings.HasPrefix(bc.Blocks[i].Hash, "00"))
	}
	assert.NoError(t, s.Verify())
	assert.FileExists(t, path)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blockchain.json")
	s := loadTestStore(t, path)
	_, err := s.AddBlock(context.Background(), transferTx("alice", "bob", 40))
	require.NoError(t, err)
	_, err = s.AddBlock(context.Background(), transferTx("Faucet", "carol", 0.1))
	require.NoError(t, err)
	original, err := s.Snapshot()
	require.NoError(t, err)

	reloaded := loadTestStore(t, path)
	bc, err := reloaded.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, original, bc)
	assert.NoError(t, reloaded.Verify())
	assert.True(t, reloaded.IsPersisted(original.Blocks[0].Hash))
}

func TestSavedDocumentShape(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blockchain.json")
	s := loadTestStore(t, path)
	require.NoError(t, s.Save())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	doc := string(data)
	for _, field := range []string{`"blocks"`, `"index"`, `"timestamp"`, `"previous_hash"`, `"hash"`, `"transactions": []`, `"nonce"`, `"difficulty": 2`} {
		assert.Contains(t, doc, field)
	}
	assert.Contains(t, doc, "\n  ")
}

func TestLoadReferenceDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blockchain.json")
	doc := `{
  "blocks": [
    {"index": 0, "timestamp": 1700000000, "previous_hash": "0", "hash": "37f57659f355b43b3daeeaab7b535744335dcdeca20c1e5b124f1ff64a5d2d44", "transactions": [], "nonce": 0},
    {"index": 1, "timestamp": 1700000010, "previous_hash": "37f57659f355b43b3daeeaab7b535744335dcdeca20c1e5b124f1ff64a5d2d44", "hash": "00bfb1096e275ae5d169df4ec8e28a5bc0d90e341cb40abd07dd5be2db61a40a", "transactions": [{"sender": "alice", "receiver": "bob", "amount": 40.0}], "nonce": 11}
  ],
  "difficulty": 2
}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	s := loadTestStore(t, path)
	bc, err := s.Snapshot()
	require.NoError(t, err)
	require.Len(t, bc.Blocks, 2)
	assert.Equal(t, model.Transaction{Sender: "alice", Receiver: "bob", Amount: 40}, bc.Blocks[1].Transactions[0])
	assert.Equal(t, uint64(11), bc.Blocks[1].Nonce)
	assert.NoError(t, s.Verify())
	assert.True(t, s.IsPersisted(bc.Blocks[1].Hash))
}

func TestLoadCorruptOrMissingFile(t *testing.T) {
	dir := t.TempDir()
	valid := loadTestStore(t, filepath.Join(dir, "valid.json"))
	require.NoError(t, valid.Save())
	validDoc, err := os.ReadFile(filepath.Join(dir, "valid.json"))
	require.NoError(t, err)

	cases := map[string]string{
		"corrupt":             "{not json",
		"empty":               `{"blocks": [], "difficulty": 2}`,
		"negative difficulty": strings.Replace(string(validDoc), `"difficulty": 2`, `"difficulty": -1`, 1),
		"missing difficulty":  strings.Replace(string(validDoc), `,
  "difficulty": 2`, "", 1),
		"empty block":         `{"blocks": [{}], "difficulty": 2}`,
		"null transactions":   strings.Replace(string(validDoc), `"transactions": []`, `"transactions": null`, 1),
		"missing sender":      `{"blocks": [{"index": 0, "timestamp": 1, "previous_hash": "0", "hash": "x", "transactions": [{"receiver": "bob", "amount": 1}], "nonce": 0}], "difficulty": 2}`,
		"tampered hash":       strings.Replace(string(validDoc), `"hash": "`, `"hash": "f`, 1),
		"array":               `[]`,
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, strings.ReplaceAll(name, " ", "_")+".json")
			require.NotEqual(t, string(validDoc), content)
			require.NoError(t, os.WriteFile(path, []byte(content), 0644))
			s := loadTestStore(t, path)
			assert.Equal(t, 1, s.Height())
			assert.Equal(t, testDifficulty, s.Difficulty())
			assert.NoError(t, s.Verify())

			// The rejected document is kept for inspection.
			kept, err := os.ReadFile(path + ".corrupt")
			require.NoError(t, err)
			assert.Equal(t, content, string(kept))
		})
	}

	t.Run("missing", func(t *testing.T) {
		s := loadTestStore(t, filepath.Join(dir, "missing.json"))
		assert.Equal(t, 1, s.Height())
	})
}

func TestPersistenceFailureIsReturned(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0644))
	s := loadTestStore(t, filepath.Join(blocker, "blockchain.json"))

	block, err := s.AddBlock(context.Background(), transferTx("alice", "bob", 1))
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrChainPersistence))
	require.NotNil(t, block)
	// The block stays in memory.
	assert.Equal(t, 2, s.Height())
	assert.True(t, s.Contains(block.Hash))
	assert.False(t, s.IsPersisted(block.Hash))
}

func TestAddBlockCancelledAppendsNothing(t *testing.T) {
	s := loadTestStore(t, filepath.Join(t.TempDir(), "blockchain.json"))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	block, err := s.AddBlock(ctx, transferTx("alice", "bob", 1))
	assert.Nil(t, block)
	assert.True(t, errors.Is(err, model.ErrMiningCancelled))
	assert.Equal(t, 1, s.Height())
}

func TestSnapshotIsDeepCopy(t *testing.T) {
	s := loadTestStore(t, filepath.Join(t.TempDir(), "blockchain.json"))
	_, err := s.AddBlock(context.Background(), transferTx("alice", "bob", 1))
	require.NoError(t, err)

	bc, err := s.Snapshot()
	require.NoError(t, err)
	bc.Blocks[1].Transactions[0].Amount = 1000
	bc.Blocks = append(bc.Blocks, model.Block{})

	assert.Equal(t, 2, s.Height())
	assert.NoError(t, s.Verify())
}

func TestFindPersisted(t *testing.T) {
	s := loadTestStore(t, filepath.Join(t.TempDir(), "blockchain.json"))
	since := time.Now().Add(-time.Second)
	block, err := s.AddBlock(context.Background(), transferTx("alice", "bob", 3))
	require.NoError(t, err)

	hash, ok := s.FindPersisted(utils.NewTransaction("alice", "bob", 3), since)
	assert.True(t, ok)
	assert.Equal(t, block.Hash, hash)

	_, ok = s.FindPersisted(utils.NewTransaction("alice", "bob", 4), since)
	assert.False(t, ok)
	_, ok = s.FindPersisted(utils.NewTransaction("alice", "bob", 3), time.Now().Add(time.Hour))
	assert.False(t, ok)
}

func TestConcurrentAddBlock(t *testing.T) {
	s := loadTestStore(t, filepath.Join(t.TempDir(), "blockchain.json"))
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := s.AddBlock(context.Background(), transferTx("alice", "bob", float32(i)))
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 9, s.Height())
	assert.NoError(t, s.Verify())
}

func TestMinerStopCancelsJob(t *testing.T) {
	m := NewMiner()
	block := utils.NewBlock(1, "0", nil)
	errc := make(chan error, 1)
	go func() {
		errc <- m.Mine(context.Background(), block, 100)
	}()

	time.Sleep(20 * time.Millisecond)
	m.Stop()
	select {
	case err := <-errc:
		assert.True(t, errors.Is(err, model.ErrMiningCancelled))
	case <-time.After(5 * time.Second):
		t.Fatal("mining did not stop")
	}

	err := m.Mine(context.Background(), utils.NewBlock(2, "0", nil), 1)
	assert.True(t, errors.Is(err, model.ErrMiningCancelled))
}

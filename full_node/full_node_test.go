package full_node

import (
	"context"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Luismorlan/ledger_in_go/config"
	"github.com/Luismorlan/ledger_in_go/model"
	"github.com/Luismorlan/ledger_in_go/utils"
	"github.com/boltdb/bolt"
	uuid "github.com/satori/go.uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getTestConfig(dir string) config.AppConfig {
	return config.AppConfig{
		DIFFICULTY:  2,
		CHAIN_PATH:  filepath.Join(dir, "data", "blockchain.json"),
		LEDGER_PATH: filepath.Join(dir, "wallet_db"),
		WALLET_DIR:  filepath.Join(dir, "wallets"),
		FAUCET_NAME: "Faucet",
		LISTEN_ADDR: "localhost:0",
	}
}

func newTestFullNode(t *testing.T, c config.AppConfig) *FullNode {
	f, err := NewFullNode(context.Background(), c)
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })
	return f
}

func lastBlock(t *testing.T, f *FullNode) model.Block {
	bc, err := f.Chain()
	require.NoError(t, err)
	require.NotEmpty(t, bc.Blocks)
	return bc.Blocks[len(bc.Blocks)-1]
}

func TestTransfer(t *testing.T) {
	f := newTestFullNode(t, getTestConfig(t.TempDir()))
	require.NoError(t, f.SetBalance("alice", 100))
	require.NoError(t, f.SetBalance("bob", 10))

	block, err := f.Transfer(context.Background(), "alice", "bob", 40)
	require.NoError(t, err)

	alice, err := f.GetBalance("alice")
	require.NoError(t, err)
	bob, err := f.GetBalance("bob")
	require.NoError(t, err)
	assert.Equal(t, uint64(60), alice)
	assert.Equal(t, uint64(50), bob)

	assert.Equal(t, 2, f.GetHeight())
	assert.Equal(t, *block, lastBlock(t, f))
	assert.Equal(t, []model.Transaction{{Sender: "alice", Receiver: "bob", Amount: 40}}, block.Transactions)
	assert.NoError(t, f.Verify())

	pending, err := f.ledger.PendingTransfers()
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestTransferInsufficientFunds(t *testing.T) {
	f := newTestFullNode(t, getTestConfig(t.TempDir()))
	require.NoError(t, f.SetBalance("alice", 5))
	require.NoError(t, f.SetBalance("bob", 10))

	block, err := f.Transfer(context.Background(), "alice", "bob", 40)
	assert.Nil(t, block)
	assert.True(t, errors.Is(err, model.ErrInsufficientFunds))

	alice, _ := f.GetBalance("alice")
	bob, _ := f.GetBalance("bob")
	assert.Equal(t, uint64(5), alice)
	assert.Equal(t, uint64(10), bob)
	assert.Equal(t, 1, f.GetHeight())
}

func TestTransferRoundsAmount(t *testing.T) {
	f := newTestFullNode(t, getTestConfig(t.TempDir()))
	require.NoError(t, f.SetBalance("alice", 10))

	// 9.5 rounds up to 10, which alice can just afford.
	block, err := f.Transfer(context.Background(), "alice", "bob", 9.5)
	require.NoError(t, err)
	assert.Equal(t, float32(9.5), block.Transactions[0].Amount)

	alice, _ := f.GetBalance("alice")
	bob, _ := f.GetBalance("bob")
	assert.Equal(t, uint64(0), alice)
	assert.Equal(t, uint64(10), bob)

	_, err = f.Transfer(context.Background(), "alice", "bob", 0.5)
	assert.True(t, errors.Is(err, model.ErrInsufficientFunds))
}

func TestTransferInvalidAmount(t *testing.T) {
	f := newTestFullNode(t, getTestConfig(t.TempDir()))
	require.NoError(t, f.SetBalance("alice", 100))

	for _, amount := range []float32{-1, float32(math.NaN()), float32(math.Inf(1))} {
		_, err := f.Transfer(context.Background(), "alice", "bob", amount)
		assert.True(t, errors.Is(err, model.ErrInvalidAmount), "amount %v", amount)
	}
	assert.Equal(t, 1, f.GetHeight())
}

func TestTransferToSelf(t *testing.T) {
	f := newTestFullNode(t, getTestConfig(t.TempDir()))
	require.NoError(t, f.SetBalance("alice", 100))

	_, err := f.Transfer(context.Background(), "alice", "alice", 30)
	require.NoError(t, err)
	alice, _ := f.GetBalance("alice")
	assert.Equal(t, uint64(100), alice)
}

func TestTransferMalformedBalance(t *testing.T) {
	c := getTestConfig(t.TempDir())
	f, err := NewFullNode(context.Background(), c)
	require.NoError(t, err)
	require.NoError(t, f.SetBalance("bob", 10))
	require.NoError(t, f.Close())

	db, err := bolt.Open(c.LEDGER_PATH, 0600, nil)
	require.NoError(t, err)
	require.NoError(t, db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte("balances")).Put([]byte("alice"), []byte{1, 2, 3})
	}))
	require.NoError(t, db.Close())

	f = newTestFullNode(t, c)
	_, err = f.Transfer(context.Background(), "alice", "bob", 1)
	assert.True(t, errors.Is(err, model.ErrMalformedRecord))
	assert.Equal(t, 1, f.GetHeight())
	bob, _ := f.GetBalance("bob")
	assert.Equal(t, uint64(10), bob)
}

func TestCreateWallet(t *testing.T) {
	f := newTestFullNode(t, getTestConfig(t.TempDir()))

	alice, block, err := f.CreateWallet(context.Background(), "alice", 100)
	require.NoError(t, err)
	require.NotNil(t, block)
	assert.Equal(t, []model.Transaction{{Sender: "Faucet", Receiver: "alice", Amount: 100}}, block.Transactions)

	// Balances are keyed by address and reachable through the name.
	byName, err := f.GetBalance("alice")
	require.NoError(t, err)
	byAddress, err := f.GetBalance(alice.Address)
	require.NoError(t, err)
	assert.Equal(t, uint64(100), byName)
	assert.Equal(t, uint64(100), byAddress)

	bob, block, err := f.CreateWallet(context.Background(), "bob", 0)
	require.NoError(t, err)
	assert.Nil(t, block)
	assert.Equal(t, 2, f.GetHeight())

	block, err = f.Transfer(context.Background(), "alice", "bob", 40)
	require.NoError(t, err)
	// Blocks keep the names the user typed.
	assert.Equal(t, "alice", block.Transactions[0].Sender)
	assert.Equal(t, "bob", block.Transactions[0].Receiver)

	balance, err := f.ledger.GetBalance(bob.Address)
	require.NoError(t, err)
	assert.Equal(t, uint64(40), balance)
	balance, err = f.ledger.GetBalance(alice.Address)
	require.NoError(t, err)
	assert.Equal(t, uint64(60), balance)
}

func TestCreateWalletTwice(t *testing.T) {
	f := newTestFullNode(t, getTestConfig(t.TempDir()))
	first, _, err := f.CreateWallet(context.Background(), "alice", 0)
	require.NoError(t, err)

	_, _, err = f.CreateWallet(context.Background(), "alice", 50)
	assert.True(t, errors.Is(err, model.ErrWalletExists))
	assert.Equal(t, first.Address, f.wallets.Resolve("alice"))
	assert.Equal(t, 1, f.GetHeight())
}

func TestFund(t *testing.T) {
	f := newTestFullNode(t, getTestConfig(t.TempDir()))
	require.NoError(t, f.SetBalance("carol", 5))

	block, err := f.Fund(context.Background(), "carol", 20)
	require.NoError(t, err)
	assert.Equal(t, "Faucet", block.Transactions[0].Sender)
	carol, _ := f.GetBalance("carol")
	assert.Equal(t, uint64(25), carol)
}

func TestRestartKeepsState(t *testing.T) {
	c := getTestConfig(t.TempDir())
	f, err := NewFullNode(context.Background(), c)
	require.NoError(t, err)
	require.NoError(t, f.SetBalance("alice", 100))
	_, err = f.Transfer(context.Background(), "alice", "bob", 40)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	f = newTestFullNode(t, c)
	assert.Equal(t, 2, f.GetHeight())
	alice, _ := f.GetBalance("alice")
	bob, _ := f.GetBalance("bob")
	assert.Equal(t, uint64(60), alice)
	assert.Equal(t, uint64(40), bob)
}

func pendingTransfer(from string, to string, amount uint64) model.PendingTransfer {
	return model.PendingTransfer{
		ID:              uuid.NewV4().String(),
		Sender:          from,
		Receiver:        to,
		SenderAddress:   from,
		ReceiverAddress: to,
		Amount:          amount,
		RawAmount:       float32(amount),
		CreatedAt:       time.Now(),
	}
}

func TestRecoverAppliesMinedTransfer(t *testing.T) {
	f := newTestFullNode(t, getTestConfig(t.TempDir()))
	require.NoError(t, f.SetBalance("alice", 100))

	// Stop just after the journal was marked.
	p := pendingTransfer("alice", "bob", 40)
	require.NoError(t, f.ledger.RecordPending(p))
	block, err := f.chain.AddBlock(context.Background(), []model.Transaction{p.Transaction()})
	require.NoError(t, err)
	require.NoError(t, f.ledger.MarkMined(p.ID, block.Hash))

	require.NoError(t, f.Recover(context.Background()))
	alice, _ := f.GetBalance("alice")
	bob, _ := f.GetBalance("bob")
	assert.Equal(t, uint64(60), alice)
	assert.Equal(t, uint64(40), bob)
	pending, err := f.ledger.PendingTransfers()
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestRecoverFindsUnmarkedBlock(t *testing.T) {
	f := newTestFullNode(t, getTestConfig(t.TempDir()))
	require.NoError(t, f.SetBalance("alice", 100))

	// Stop after the block was saved but before the journal was marked.
	p := pendingTransfer("alice", "bob", 40)
	require.NoError(t, f.ledger.RecordPending(p))
	_, err := f.chain.AddBlock(context.Background(), []model.Transaction{p.Transaction()})
	require.NoError(t, err)

	require.NoError(t, f.Recover(context.Background()))
	bob, _ := f.GetBalance("bob")
	assert.Equal(t, uint64(40), bob)
}

func TestRecoverDropsUnminedTransfer(t *testing.T) {
	f := newTestFullNode(t, getTestConfig(t.TempDir()))
	require.NoError(t, f.SetBalance("alice", 100))

	require.NoError(t, f.ledger.RecordPending(pendingTransfer("alice", "bob", 40)))
	require.NoError(t, f.Recover(context.Background()))

	alice, _ := f.GetBalance("alice")
	bob, _ := f.GetBalance("bob")
	assert.Equal(t, uint64(100), alice)
	assert.Equal(t, uint64(0), bob)
	pending, err := f.ledger.PendingTransfers()
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestRecoverOnStartup(t *testing.T) {
	c := getTestConfig(t.TempDir())
	f, err := NewFullNode(context.Background(), c)
	require.NoError(t, err)
	require.NoError(t, f.SetBalance("alice", 100))
	p := pendingTransfer("alice", "bob", 40)
	require.NoError(t, f.ledger.RecordPending(p))
	block, err := f.chain.AddBlock(context.Background(), []model.Transaction{p.Transaction()})
	require.NoError(t, err)
	require.NoError(t, f.ledger.MarkMined(p.ID, block.Hash))
	require.NoError(t, f.Close())

	f = newTestFullNode(t, c)
	bob, _ := f.GetBalance("bob")
	assert.Equal(t, uint64(40), bob)
}

func TestPersistenceFailureHoldsTransfer(t *testing.T) {
	dir := t.TempDir()
	c := getTestConfig(dir)
	// The chain's parent directory is a regular file, so saving fails.
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))
	c.CHAIN_PATH = filepath.Join(blocker, "blockchain.json")
	f := newTestFullNode(t, c)
	require.NoError(t, f.SetBalance("alice", 100))

	block, err := f.Transfer(context.Background(), "alice", "bob", 40)
	assert.True(t, errors.Is(err, model.ErrChainPersistence))
	require.NotNil(t, block)
	assert.Equal(t, 2, f.GetHeight())

	// Balances wait for the block to reach the disk.
	alice, _ := f.GetBalance("alice")
	assert.Equal(t, uint64(100), alice)
	require.NoError(t, f.Recover(context.Background()))
	pending, err := f.ledger.PendingTransfers()
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, block.Hash, pending[0].BlockHash)
}

func TestHeldTransferCountsAgainstSender(t *testing.T) {
	dir := t.TempDir()
	c := getTestConfig(dir)
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))
	c.CHAIN_PATH = filepath.Join(blocker, "blockchain.json")
	f := newTestFullNode(t, c)
	require.NoError(t, f.SetBalance("alice", 100))

	_, err := f.Transfer(context.Background(), "alice", "bob", 100)
	require.True(t, errors.Is(err, model.ErrChainPersistence))

	// The disk recovers, but the held block already spent alice's coins.
	require.NoError(t, os.Remove(blocker))
	_, err = f.Transfer(context.Background(), "alice", "carol", 100)
	assert.True(t, errors.Is(err, model.ErrInsufficientFunds))
	assert.Equal(t, 2, f.GetHeight())

	// The next save puts the held block on disk and settles it.
	_, err = f.Fund(context.Background(), "carol", 5)
	require.NoError(t, err)
	alice, _ := f.GetBalance("alice")
	bob, _ := f.GetBalance("bob")
	carol, _ := f.GetBalance("carol")
	assert.Equal(t, uint64(0), alice)
	assert.Equal(t, uint64(100), bob)
	assert.Equal(t, uint64(5), carol)
	pending, err := f.ledger.PendingTransfers()
	require.NoError(t, err)
	assert.Empty(t, pending)
	assert.NoError(t, f.Verify())
}

func TestRecoverQuarantinesUnapplicableTransfer(t *testing.T) {
	c := getTestConfig(t.TempDir())
	f, err := NewFullNode(context.Background(), c)
	require.NoError(t, err)

	// alice's block is on disk but her balance was never funded.
	p := pendingTransfer("alice", "bob", 40)
	require.NoError(t, f.ledger.RecordPending(p))
	block, err := f.chain.AddBlock(context.Background(), []model.Transaction{p.Transaction()})
	require.NoError(t, err)
	require.NoError(t, f.ledger.MarkMined(p.ID, block.Hash))

	require.NoError(t, f.Recover(context.Background()))
	pending, err := f.ledger.PendingTransfers()
	require.NoError(t, err)
	assert.Empty(t, pending)
	quarantined, err := f.ledger.QuarantinedTransfers()
	require.NoError(t, err)
	require.Len(t, quarantined, 1)
	assert.Equal(t, p.ID, quarantined[0].ID)
	require.NoError(t, f.Close())

	// Startup is not blocked by the quarantined transfer.
	f = newTestFullNode(t, c)
	bob, _ := f.GetBalance("bob")
	assert.Equal(t, uint64(0), bob)
	assert.Equal(t, 2, f.GetHeight())
}

func TestCancelledTransferLeavesNoTrace(t *testing.T) {
	f := newTestFullNode(t, getTestConfig(t.TempDir()))
	require.NoError(t, f.SetBalance("alice", 100))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	block, err := f.Transfer(ctx, "alice", "bob", 40)
	assert.Nil(t, block)
	assert.True(t, errors.Is(err, model.ErrMiningCancelled))

	alice, _ := f.GetBalance("alice")
	assert.Equal(t, uint64(100), alice)
	assert.Equal(t, 1, f.GetHeight())
	pending, err := f.ledger.PendingTransfers()
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestTransferMatchesHashFormula(t *testing.T) {
	f := newTestFullNode(t, getTestConfig(t.TempDir()))
	require.NoError(t, f.SetBalance("alice", 100))
	block, err := f.Transfer(context.Background(), "alice", "bob", 1.25)
	require.NoError(t, err)
	assert.Equal(t, utils.CalcBlockHash(block), block.Hash)
	assert.True(t, utils.MatchDifficulty(block.Hash, 2))
}

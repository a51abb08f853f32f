package full_node

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/Luismorlan/ledger_in_go/chain"
	"github.com/Luismorlan/ledger_in_go/config"
	"github.com/Luismorlan/ledger_in_go/ledger"
	"github.com/Luismorlan/ledger_in_go/model"
	"github.com/Luismorlan/ledger_in_go/utils"
	"github.com/Luismorlan/ledger_in_go/wallet"
	uuid "github.com/satori/go.uuid"
)

// WalletStore looks up and stores wallet identities by name.
type WalletStore interface {
	Exists(name string) bool
	Save(identity model.WalletIdentity) error
	// Resolve maps a wallet name to its address. Unknown input is returned
	// as is and treated as an address.
	Resolve(input string) string
}

// A full node maintains the blockchain and the balances it implies.
type FullNode struct {
	chain  *chain.ChainStore
	ledger *ledger.BalanceLedger
	// Wallet identities used to resolve names to addresses.
	wallets WalletStore
	miner   *chain.Miner
	config  config.AppConfig
	// Serializes every balance-changing operation, so a balance check and the
	// update it guards never interleave with another transfer.
	m sync.Mutex
	// A unique identifier of this full node, only used in logs and file names.
	uuid string
}

// NewFullNode opens the chain and the balance store named in c and replays
// any transfer left half done by a previous run.
func NewFullNode(ctx context.Context, c config.AppConfig) (*FullNode, error) {
	miner := chain.NewMiner()
	cs, err := chain.LoadChainStore(ctx, c.CHAIN_PATH, c.DIFFICULTY, miner)
	if err != nil {
		miner.Stop()
		return nil, err
	}
	l, err := ledger.Open(c.LEDGER_PATH)
	if err != nil {
		miner.Stop()
		return nil, err
	}

	f := &FullNode{
		chain:   cs,
		ledger:  l,
		wallets: wallet.NewRegistry(c.WALLET_DIR),
		miner:   miner,
		config:  c,
		uuid:    uuid.NewV4().String(),
	}
	if err := f.Recover(ctx); err != nil {
		f.Close()
		return nil, err
	}
	slog.Debug("full node ready", "node", f.uuid, "height", cs.Height(), "difficulty", cs.Difficulty())
	return f, nil
}

// Close cancels any mining in flight and releases the balance store.
func (f *FullNode) Close() error {
	f.miner.Stop()
	return f.ledger.Close()
}

func (f *FullNode) NodeID() string {
	return f.uuid
}

// Transfer moves amount from one wallet to another and records it in a newly
// mined block. Names that are not known wallets are used as addresses.
//
// When the block was mined but the chain could not be written, the block is
// returned together with an error wrapping model.ErrChainPersistence. The
// balances are then left untouched until Recover finds the block on disk.
func (f *FullNode) Transfer(ctx context.Context, from string, to string, amount float32) (*model.Block, error) {
	if err := utils.ValidateAmount(amount); err != nil {
		return nil, err
	}

	f.m.Lock()
	defer f.m.Unlock()

	units := utils.RoundAmount(amount)
	p := model.PendingTransfer{
		ID:              uuid.NewV4().String(),
		Sender:          from,
		Receiver:        to,
		SenderAddress:   f.wallets.Resolve(from),
		ReceiverAddress: f.wallets.Resolve(to),
		Amount:          units,
		RawAmount:       amount,
		CreatedAt:       time.Now(),
	}
	balance, err := f.ledger.GetBalance(p.SenderAddress)
	if err != nil {
		return nil, err
	}
	// Held transfers are already on the chain; their debits are spent.
	held, err := f.ledger.PendingDebit(p.SenderAddress)
	if err != nil {
		return nil, err
	}
	available := uint64(0)
	if balance > held {
		available = balance - held
	}
	if available < units {
		return nil, fmt.Errorf("%w: %s has %d available, needs %d", model.ErrInsufficientFunds, from, available, units)
	}
	return f.commitLocked(ctx, p)
}

// CreateWallet generates and stores a new identity called name. A positive
// fund is credited from the faucet and recorded in its own block.
func (f *FullNode) CreateWallet(ctx context.Context, name string, fund uint64) (model.WalletIdentity, *model.Block, error) {
	f.m.Lock()
	defer f.m.Unlock()

	if f.wallets.Exists(name) {
		return model.WalletIdentity{}, nil, fmt.Errorf("%w: %s", model.ErrWalletExists, name)
	}
	identity, err := wallet.Generate(name)
	if err != nil {
		return model.WalletIdentity{}, nil, err
	}
	if err := f.wallets.Save(identity); err != nil {
		return model.WalletIdentity{}, nil, err
	}
	slog.Info("wallet created", "name", name, "address", identity.Address)

	if fund == 0 {
		return identity, nil, nil
	}
	block, err := f.fundLocked(ctx, name, identity.Address, fund)
	return identity, block, err
}

// Fund credits amount to an existing wallet or address from the faucet.
func (f *FullNode) Fund(ctx context.Context, to string, amount uint64) (*model.Block, error) {
	f.m.Lock()
	defer f.m.Unlock()
	return f.fundLocked(ctx, to, f.wallets.Resolve(to), amount)
}

func (f *FullNode) fundLocked(ctx context.Context, name string, address string, amount uint64) (*model.Block, error) {
	return f.commitLocked(ctx, model.PendingTransfer{
		ID:              uuid.NewV4().String(),
		Sender:          f.config.FAUCET_NAME,
		Receiver:        name,
		ReceiverAddress: address,
		Amount:          amount,
		RawAmount:       float32(amount),
		CreatedAt:       time.Now(),
	})
}

// commitLocked journals p, records it on the chain and then applies it to the
// balances. The caller holds f.m.
func (f *FullNode) commitLocked(ctx context.Context, p model.PendingTransfer) (*model.Block, error) {
	if err := f.ledger.RecordPending(p); err != nil {
		return nil, err
	}

	block, err := f.chain.AddBlock(ctx, []model.Transaction{p.Transaction()})
	if block == nil {
		if derr := f.ledger.DiscardPending(p.ID); derr != nil {
			slog.Error("failed to discard transfer", "id", p.ID, "err", derr)
		}
		return nil, err
	}
	if merr := f.ledger.MarkMined(p.ID, block.Hash); merr != nil {
		return block, errors.Join(err, merr)
	}
	if err != nil {
		slog.Warn("transfer held until its block is on disk", "id", p.ID, "block", block.Hash, "err", err)
		return block, err
	}

	p.BlockHash = block.Hash
	if err := f.ledger.ApplyTransfer(p); err != nil {
		return block, err
	}
	slog.Info("transfer applied", "from", p.Sender, "to", p.Receiver, "amount", p.Amount, "block", block.Index)

	// A successful save also puts earlier held blocks on disk.
	if err := f.recoverLocked(); err != nil {
		slog.Error("failed to settle held transfers", "err", err)
	}
	return block, nil
}

// Recover settles journaled transfers. A transfer whose block is on disk is
// applied, or quarantined when the balances no longer allow it. One whose
// block only lives in memory is kept for later. One that never reached a
// persisted block is dropped.
func (f *FullNode) Recover(ctx context.Context) error {
	f.m.Lock()
	defer f.m.Unlock()
	return f.recoverLocked()
}

func (f *FullNode) recoverLocked() error {
	pending, err := f.ledger.PendingTransfers()
	if err != nil {
		return err
	}

	var errs []error
	for _, p := range pending {
		switch {
		case p.BlockHash != "" && f.chain.IsPersisted(p.BlockHash):
			// Applied below.
		case p.BlockHash != "" && f.chain.Contains(p.BlockHash):
			continue
		case p.BlockHash == "":
			// The process may have stopped between saving the block and
			// marking the journal.
			hash, ok := f.chain.FindPersisted(p.Transaction(), p.CreatedAt)
			if !ok {
				slog.Warn("dropping transfer that never reached the chain", "id", p.ID, "from", p.Sender, "to", p.Receiver)
				errs = append(errs, f.ledger.DiscardPending(p.ID))
				continue
			}
			p.BlockHash = hash
		default:
			slog.Warn("dropping transfer whose block was lost", "id", p.ID, "block", p.BlockHash)
			errs = append(errs, f.ledger.DiscardPending(p.ID))
			continue
		}

		if err := f.ledger.ApplyTransfer(p); err != nil {
			if errors.Is(err, model.ErrStoreIO) {
				errs = append(errs, err)
				continue
			}
			// The block stays on the chain; the balances cannot follow it.
			slog.Error("quarantining transfer that cannot be applied", "id", p.ID, "from", p.Sender, "to", p.Receiver, "amount", p.Amount, "block", p.BlockHash, "err", err)
			errs = append(errs, f.ledger.QuarantinePending(p.ID))
			continue
		}
		slog.Info("recovered transfer", "id", p.ID, "from", p.Sender, "to", p.Receiver, "amount", p.Amount, "block", p.BlockHash)
	}
	return errors.Join(errs...)
}

// GetBalance returns the balance of a wallet name or address.
func (f *FullNode) GetBalance(nameOrAddress string) (uint64, error) {
	return f.ledger.GetBalance(f.wallets.Resolve(nameOrAddress))
}

// SetBalance overwrites the balance of a wallet name or address. No block is
// recorded.
func (f *FullNode) SetBalance(nameOrAddress string, amount uint64) error {
	f.m.Lock()
	defer f.m.Unlock()
	address := f.wallets.Resolve(nameOrAddress)
	if err := f.ledger.SetBalance(address, amount); err != nil {
		return err
	}
	slog.Info("balance set", "address", address, "amount", amount)
	return nil
}

// Chain returns a deep copy of the current chain.
func (f *FullNode) Chain() (model.Blockchain, error) {
	return f.chain.Snapshot()
}

func (f *FullNode) Verify() error {
	return f.chain.Verify()
}

func (f *FullNode) GetHeight() int {
	return f.chain.Height()
}

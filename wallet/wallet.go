package wallet

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"sync"
	"time"

	"github.com/Luismorlan/ledger_in_go/model"
	"github.com/Luismorlan/ledger_in_go/service"
	"google.golang.org/grpc"
)

// Mining a block can take a while at higher difficulties.
const (
	queryTimeout  = 10 * time.Second
	miningTimeout = 2 * time.Minute
)

var ErrNotConnected = errors.New("not connected to a full node")

// Wallet is the client of a serving full node.
type Wallet struct {
	FullNodeClient service.FullNodeServiceClient
	conn           *grpc.ClientConn
	// Destination of user-facing messages.
	out io.Writer
	m   sync.Mutex
}

func NewWallet(out io.Writer) *Wallet {
	return &Wallet{out: out}
}

// Log writes a message for the user.
func (w *Wallet) Log(msg string) {
	fmt.Fprintln(w.out, msg)
}

func (w *Wallet) SetFullNodeConnection(ipAddr string, port string) error {
	return w.Connect(net.JoinHostPort(ipAddr, port), grpc.WithInsecure())
}

// Connect replaces the current full node connection with one to target.
func (w *Wallet) Connect(target string, opts ...grpc.DialOption) error {
	conn, err := grpc.Dial(target, opts...)
	if err != nil {
		return fmt.Errorf("failed to dial %s: %w", target, err)
	}

	w.m.Lock()
	defer w.m.Unlock()
	if w.conn != nil {
		w.conn.Close()
	}
	w.conn = conn
	w.FullNodeClient = service.NewFullNodeServiceClient(conn)
	return nil
}

func (w *Wallet) Close() error {
	w.m.Lock()
	defer w.m.Unlock()
	if w.conn == nil {
		return nil
	}
	err := w.conn.Close()
	w.conn = nil
	w.FullNodeClient = nil
	return err
}

func (w *Wallet) client() (service.FullNodeServiceClient, error) {
	w.m.Lock()
	defer w.m.Unlock()
	if w.FullNodeClient == nil {
		return nil, ErrNotConnected
	}
	return w.FullNodeClient, nil
}

// TransferMoney asks the full node to move amount between two wallets and
// returns the block recording it.
func (w *Wallet) TransferMoney(from string, to string, amount float32) (*model.Block, error) {
	c, err := w.client()
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(context.Background(), miningTimeout)
	defer cancel()
	res, err := c.Transfer(ctx, &service.TransferRequest{From: from, To: to, Amount: amount})
	if err != nil {
		return nil, err
	}
	return service.BlockFromProto(res.GetBlock()), nil
}

func (w *Wallet) GetBalance(name string) (uint64, error) {
	c, err := w.client()
	if err != nil {
		return 0, err
	}
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()
	res, err := c.GetBalance(ctx, &service.GetBalanceRequest{Address: name})
	if err != nil {
		return 0, err
	}
	return res.GetBalance(), nil
}

func (w *Wallet) CreateWallet(name string, fund uint64) (*service.CreateWalletResponse, error) {
	c, err := w.client()
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(context.Background(), miningTimeout)
	defer cancel()
	return c.CreateWallet(ctx, &service.CreateWalletRequest{Name: name, Fund: fund})
}

// GetChain fetches the last depth blocks before the tail, or the whole chain
// when depth is negative. problem is set when the node's chain failed
// verification.
func (w *Wallet) GetChain(depth int) (chain model.Blockchain, problem string, err error) {
	c, err := w.client()
	if err != nil {
		return model.Blockchain{}, "", err
	}
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()
	res, err := c.GetChain(ctx, &service.GetChainRequest{Depth: int64(depth)})
	if err != nil {
		return model.Blockchain{}, "", err
	}
	return service.ChainFromProto(res.GetChain()), res.GetProblem(), nil
}

package full_node

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/Luismorlan/ledger_in_go/model"
	"github.com/Luismorlan/ledger_in_go/service"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// FullNodeServer exposes a full node to wallets over gRPC.
type FullNodeServer struct {
	service.UnimplementedFullNodeServiceServer
	fullNode *FullNode
}

func NewFullNodeServer(f *FullNode) *FullNodeServer {
	return &FullNodeServer{fullNode: f}
}

// NewGRPCServer returns a gRPC server with the full node service registered.
func NewGRPCServer(f *FullNode) *grpc.Server {
	s := grpc.NewServer(grpc.UnaryInterceptor(logUnary))
	service.RegisterFullNodeServiceServer(s, NewFullNodeServer(f))
	return s
}

func (sev *FullNodeServer) Transfer(ctx context.Context, req *service.TransferRequest) (*service.TransferResponse, error) {
	block, err := sev.fullNode.Transfer(ctx, req.From, req.To, req.Amount)
	if err != nil {
		return nil, toStatus(err)
	}
	return &service.TransferResponse{Block: service.BlockToProto(block)}, nil
}

func (sev *FullNodeServer) GetBalance(ctx context.Context, req *service.GetBalanceRequest) (*service.GetBalanceResponse, error) {
	balance, err := sev.fullNode.GetBalance(req.Address)
	if err != nil {
		return nil, toStatus(err)
	}
	return &service.GetBalanceResponse{Address: req.Address, Balance: balance}, nil
}

func (sev *FullNodeServer) SetBalance(ctx context.Context, req *service.SetBalanceRequest) (*service.SetBalanceResponse, error) {
	if err := sev.fullNode.SetBalance(req.Address, req.Amount); err != nil {
		return nil, toStatus(err)
	}
	return &service.SetBalanceResponse{}, nil
}

func (sev *FullNodeServer) CreateWallet(ctx context.Context, req *service.CreateWalletRequest) (*service.CreateWalletResponse, error) {
	identity, block, err := sev.fullNode.CreateWallet(ctx, req.Name, req.Fund)
	if err != nil {
		return nil, toStatus(err)
	}
	return &service.CreateWalletResponse{Name: identity.Name, Address: identity.Address, Block: service.BlockToProto(block)}, nil
}

func (sev *FullNodeServer) GetChain(ctx context.Context, req *service.GetChainRequest) (*service.GetChainResponse, error) {
	bc, err := sev.fullNode.Chain()
	if err != nil {
		return nil, toStatus(err)
	}
	res := &service.GetChainResponse{}
	if err := sev.fullNode.Verify(); err != nil {
		res.Problem = err.Error()
	}
	depth := -1
	if req.Depth >= 0 && req.Depth < int64(len(bc.Blocks)) {
		depth = int(req.Depth)
	}
	bc.Blocks = bc.Last(depth)
	res.Chain = service.ChainToProto(bc)
	return res, nil
}

// toStatus maps full node errors to gRPC status codes.
func toStatus(err error) error {
	code := codes.Internal
	switch {
	case errors.Is(err, model.ErrInsufficientFunds), errors.Is(err, model.ErrWalletExists):
		code = codes.FailedPrecondition
	case errors.Is(err, model.ErrInvalidAmount):
		code = codes.InvalidArgument
	case errors.Is(err, model.ErrChainPersistence):
		code = codes.DataLoss
	case errors.Is(err, model.ErrMiningCancelled):
		code = codes.Canceled
	}
	return status.Error(code, err.Error())
}

func logUnary(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	start := time.Now()
	res, err := handler(ctx, req)
	if err != nil {
		slog.Warn("rpc failed", "method", info.FullMethod, "took", time.Since(start), "err", err)
		return res, err
	}
	slog.Debug("rpc served", "method", info.FullMethod, "took", time.Since(start))
	return res, nil
}

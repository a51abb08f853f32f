// Package service holds the gRPC API between wallets and a full node. The
// messages and stubs are generated from service.proto:
//
//	protoc --go_out=. --go_opt=paths=source_relative \
//		--go-grpc_out=. --go-grpc_opt=paths=source_relative service/service.proto
package service

import "github.com/Luismorlan/ledger_in_go/model"

func TransactionToProto(tx model.Transaction) *Transaction {
	return &Transaction{Sender: tx.Sender, Receiver: tx.Receiver, Amount: tx.Amount}
}

func TransactionFromProto(tx *Transaction) model.Transaction {
	return model.Transaction{Sender: tx.GetSender(), Receiver: tx.GetReceiver(), Amount: tx.GetAmount()}
}

// BlockToProto returns nil for a nil block.
func BlockToProto(b *model.Block) *Block {
	if b == nil {
		return nil
	}
	out := &Block{
		Index:        b.Index,
		Timestamp:    b.Timestamp,
		PreviousHash: b.PreviousHash,
		Hash:         b.Hash,
		Nonce:        b.Nonce,
	}
	for _, tx := range b.Transactions {
		out.Transactions = append(out.Transactions, TransactionToProto(tx))
	}
	return out
}

// BlockFromProto returns nil for a nil block. Transactions are never nil.
func BlockFromProto(b *Block) *model.Block {
	if b == nil {
		return nil
	}
	out := &model.Block{
		Index:        b.GetIndex(),
		Timestamp:    b.GetTimestamp(),
		PreviousHash: b.GetPreviousHash(),
		Hash:         b.GetHash(),
		Transactions: make([]model.Transaction, 0, len(b.GetTransactions())),
		Nonce:        b.GetNonce(),
	}
	for _, tx := range b.GetTransactions() {
		out.Transactions = append(out.Transactions, TransactionFromProto(tx))
	}
	return out
}

func ChainToProto(bc model.Blockchain) *Blockchain {
	out := &Blockchain{Difficulty: int64(bc.Difficulty)}
	for i := range bc.Blocks {
		out.Blocks = append(out.Blocks, BlockToProto(&bc.Blocks[i]))
	}
	return out
}

func ChainFromProto(bc *Blockchain) model.Blockchain {
	out := model.Blockchain{Difficulty: int(bc.GetDifficulty())}
	for _, b := range bc.GetBlocks() {
		out.Blocks = append(out.Blocks, *BlockFromProto(b))
	}
	return out
}

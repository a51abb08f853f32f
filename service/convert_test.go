package service

import (
	"testing"

	"github.com/Luismorlan/ledger_in_go/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
)

func createTestChain() model.Blockchain {
	return model.Blockchain{
		Difficulty: 2,
		Blocks: []model.Block{
			{Index: 0, Timestamp: 1700000000, PreviousHash: "0", Hash: "00aa", Transactions: []model.Transaction{}},
			{
				Index:        1,
				Timestamp:    1700000010,
				PreviousHash: "00aa",
				Hash:         "00bb",
				Transactions: []model.Transaction{{Sender: "alice", Receiver: "bob", Amount: 1.25}},
				Nonce:        42,
			},
		},
	}
}

func TestChainSurvivesTheWire(t *testing.T) {
	bc := createTestChain()
	data, err := proto.Marshal(&GetChainResponse{Chain: ChainToProto(bc), Problem: "none"})
	require.NoError(t, err)

	res := &GetChainResponse{}
	require.NoError(t, proto.Unmarshal(data, res))
	assert.Equal(t, "none", res.GetProblem())
	assert.Equal(t, bc, ChainFromProto(res.GetChain()))
}

func TestBlockFromProto(t *testing.T) {
	assert.Nil(t, BlockToProto(nil))
	assert.Nil(t, BlockFromProto(nil))

	// An empty transaction list decodes as [], not nil.
	b := BlockFromProto(&Block{Index: 3, Hash: "00cc"})
	require.NotNil(t, b)
	assert.NotNil(t, b.Transactions)
	assert.Empty(t, b.Transactions)
	assert.Equal(t, uint64(3), b.Index)
}

func TestServiceDescriptor(t *testing.T) {
	sd := File_service_service_proto.Services().ByName("FullNodeService")
	require.NotNil(t, sd)
	assert.Equal(t, 5, sd.Methods().Len())
	assert.Equal(t, FullNodeService_ServiceDesc.ServiceName, string(sd.FullName()))

	field := (&Block{}).ProtoReflect().Descriptor().Fields().ByName("previous_hash")
	require.NotNil(t, field)
	assert.Equal(t, "previousHash", field.JSONName())
}

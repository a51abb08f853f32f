package chain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Luismorlan/ledger_in_go/model"
	"github.com/Luismorlan/ledger_in_go/utils"
)

var (
	blockFields       = []string{"index", "timestamp", "previous_hash", "hash", "transactions", "nonce"}
	transactionFields = []string{"sender", "receiver", "amount"}
)

// decodeChain parses a chain document. Every field must be present and
// non-null, the difficulty must not be negative and the chain must verify.
func decodeChain(data []byte) (*model.Blockchain, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if err := requireFields(doc, "blocks", "difficulty"); err != nil {
		return nil, err
	}

	var blocks []map[string]json.RawMessage
	if err := json.Unmarshal(doc["blocks"], &blocks); err != nil {
		return nil, fmt.Errorf("blocks: %w", err)
	}
	if len(blocks) == 0 {
		return nil, errors.New("chain document holds no blocks")
	}
	for i, b := range blocks {
		if err := requireFields(b, blockFields...); err != nil {
			return nil, fmt.Errorf("block %d: %w", i, err)
		}
		var txs []map[string]json.RawMessage
		if err := json.Unmarshal(b["transactions"], &txs); err != nil {
			return nil, fmt.Errorf("block %d: transactions: %w", i, err)
		}
		for j, tx := range txs {
			if err := requireFields(tx, transactionFields...); err != nil {
				return nil, fmt.Errorf("block %d: transaction %d: %w", i, j, err)
			}
		}
	}

	bc := &model.Blockchain{}
	if err := json.Unmarshal(data, bc); err != nil {
		return nil, err
	}
	if bc.Difficulty < 0 {
		return nil, fmt.Errorf("negative difficulty %d", bc.Difficulty)
	}
	normalize(bc)
	if err := utils.VerifyChain(bc); err != nil {
		return nil, err
	}
	return bc, nil
}

func requireFields(obj map[string]json.RawMessage, fields ...string) error {
	if obj == nil {
		return errors.New("not an object")
	}
	for _, f := range fields {
		raw, ok := obj[f]
		if !ok {
			return fmt.Errorf("missing field %q", f)
		}
		if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
			return fmt.Errorf("field %q is null", f)
		}
	}
	return nil
}

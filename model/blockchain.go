package model

// Block is immutable once mined.
type Block struct {
	// Position in the chain, 0 for genesis.
	Index uint64 `json:"index"`
	// Seconds since epoch when the block was constructed.
	Timestamp uint64 `json:"timestamp"`
	// Hash of the previous block in the hex format, "0" for genesis.
	PreviousHash string `json:"previous_hash"`
	// Hash of this entire block in the hex string format.
	Hash string `json:"hash"`
	// Transactions recorded by this block, in order.
	Transactions []Transaction `json:"transactions"`
	// Nonce is the miner's challenge for computing the block.
	Nonce uint64 `json:"nonce"`
}

// Blockchain is a single linear chain starting from genesis. Its JSON form is
// the persisted chain document.
type Blockchain struct {
	Blocks []Block `json:"blocks"`
	// How many leading hex 0s form a valid hash.
	Difficulty int `json:"difficulty"`
}

// Tail returns the last block. A chain always holds at least genesis.
func (bc *Blockchain) Tail() *Block {
	return &bc.Blocks[len(bc.Blocks)-1]
}

// Last returns the tail block and the depth blocks before it, or every block
// when depth is negative or reaches past genesis.
func (bc *Blockchain) Last(depth int) []Block {
	if depth < 0 || depth >= len(bc.Blocks)-1 {
		return bc.Blocks
	}
	return bc.Blocks[len(bc.Blocks)-1-depth:]
}

package visualize

import (
	"fmt"
	"io"
	"strconv"

	"github.com/Luismorlan/ledger_in_go/model"
	"github.com/bradleyjkemp/memviz"
	"github.com/pterm/pterm"
)

// We re-define the model here so the graph only carries what is worth
// looking at, with hashes short enough to read.
type transaction struct {
	sender   string
	receiver string
	amount   string
}

type block struct {
	index     uint64
	timestamp uint64
	hash      string
	prevHash  string
	nonce     uint64
	txs       []transaction
	next      *block
}

// Build a linked list from the d-th block before the tail to the tail.
func constructData(bc model.Blockchain, d int) *block {
	blocks := bc.Last(d)
	var head *block
	for i := len(blocks) - 1; i >= 0; i-- {
		n := blockToblock(&blocks[i])
		n.next = head
		head = n
	}
	return head
}

// The hashes are just too long to render, instead we take only first 3 and last 3
// characters and replace the middle part with '...'. E.g. "abcdefghi" will be rendered as "abc...ghi"
func shortenString(s string) string {
	if len(s) < 9 {
		return s
	}
	return fmt.Sprintf("%s...%s", s[0:3], s[len(s)-3:])
}

func blockToblock(b *model.Block) *block {
	n := &block{
		index:     b.Index,
		timestamp: b.Timestamp,
		hash:      shortenString(b.Hash),
		prevHash:  shortenString(b.PreviousHash),
		nonce:     b.Nonce,
	}
	for _, tx := range b.Transactions {
		n.txs = append(n.txs, transaction{
			sender:   shortenString(tx.Sender),
			receiver: shortenString(tx.Receiver),
			amount:   model.FormatAmount(tx.Amount),
		})
	}
	return n
}

// Render writes a graphviz dot graph of the tail and the d blocks before it.
// A negative d renders the whole chain.
func Render(w io.Writer, bc model.Blockchain, d int) {
	chain := constructData(bc, d)
	memviz.Map(w, chain)
}

// Table lays out the same blocks as Render, one row each, with a header row.
// Hashes are shortened unless full is set.
func Table(bc model.Blockchain, d int, full bool) pterm.TableData {
	hash := shortenString
	if full {
		hash = func(s string) string { return s }
	}
	data := pterm.TableData{{"Index", "Timestamp", "Hash", "Previous", "Nonce", "Transactions"}}
	for _, b := range bc.Last(d) {
		txs := ""
		for i, tx := range b.Transactions {
			if i > 0 {
				txs += "\n"
			}
			txs += tx.String()
		}
		data = append(data, []string{
			strconv.FormatUint(b.Index, 10),
			strconv.FormatUint(b.Timestamp, 10),
			hash(b.Hash),
			hash(b.PreviousHash),
			strconv.FormatUint(b.Nonce, 10),
			txs,
		})
	}
	return data
}

// SprintChain renders Table as text.
func SprintChain(bc model.Blockchain, d int, full bool) (string, error) {
	return pterm.DefaultTable.WithHasHeader().WithData(Table(bc, d, full)).Srender()
}

// PrintChain prints Table to the terminal.
func PrintChain(bc model.Blockchain, d int, full bool) error {
	return pterm.DefaultTable.WithHasHeader().WithData(Table(bc, d, full)).Render()
}

package commands

import (
	"fmt"
	"strconv"
	"strings"
)

type Operation int

const PORT_REGEX = "^[0-9]{2,5}$"

const (
	DEFAULT Operation = iota
	// Show the last blocks of the chain.
	SHOW
	// Print the balance of a wallet name or address.
	BALANCE
	// Overwrite the balance of a wallet name or address.
	SET_BALANCE
	// Move coins between two wallets, mining a block.
	TRANSFER
	// Credit coins from the faucet, mining a block.
	FUND
	// Verify the whole chain.
	VERIFY
	// Print the console manual.
	HELP
	// Shut the node down.
	QUIT
)

// Manual shown by the full node console.
const Usage = `Commands:
  show [depth]             last blocks of the chain
  balance <name>           balance of a wallet or address
  set_balance <name> <n>   overwrite a balance
  transfer <from> <to> <amount>
  fund <name> <n>          credit coins from the faucet
  verify                   check hashes and linkage
  help
  quit`

// A command contains a operation and many arguments.
type Command struct {
	Op   Operation
	Args []string
}

func isCount(s string) bool {
	_, err := strconv.ParseUint(s, 10, 64)
	return err == nil
}

func isAmount(s string) bool {
	_, err := strconv.ParseFloat(s, 32)
	return err == nil
}

func (c Command) IsValid() bool {
	switch c.Op {
	case VERIFY, HELP, QUIT:
		return len(c.Args) == 0
	case SHOW:
		// depth is optional and must be a number.
		return len(c.Args) == 0 || (len(c.Args) == 1 && isCount(c.Args[0]))
	case BALANCE:
		return len(c.Args) == 1
	case SET_BALANCE, FUND:
		return len(c.Args) == 2 && isCount(c.Args[1])
	case TRANSFER:
		return len(c.Args) == 3 && isAmount(c.Args[2])
	default:
		return false
	}
}

// From string, create a command. A blank line yields the default command,
// which callers skip.
func CreateCommand(s string) (Command, error) {
	// split command by whitespace.
	ss := strings.Fields(s)
	if len(ss) == 0 {
		return NewDefaultCommand(), nil
	}
	cmd := Command{}
	switch ss[0] {
	case "show":
		cmd.Op = SHOW
	case "balance":
		cmd.Op = BALANCE
	case "set_balance":
		cmd.Op = SET_BALANCE
	case "transfer":
		cmd.Op = TRANSFER
	case "fund":
		cmd.Op = FUND
	case "verify":
		cmd.Op = VERIFY
	case "help":
		cmd.Op = HELP
	case "quit", "exit":
		cmd.Op = QUIT
	default:
		return Command{}, fmt.Errorf("unknown command %q, try help", ss[0])
	}
	cmd.Args = ss[1:]
	if !cmd.IsValid() {
		return Command{}, fmt.Errorf("invalid arguments for %s, try help", ss[0])
	}
	return cmd, nil
}

// Create a brand new command with default operation.
func NewDefaultCommand() Command {
	return Command{
		Op: DEFAULT,
	}
}

func (c Command) IsDefault() bool {
	return c.Op == DEFAULT
}

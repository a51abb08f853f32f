package commands

import (
	"errors"
	"fmt"
	"net"
	"regexp"
	"strings"
)

const (
	// do nothing operation
	NOOP Operation = iota
	// Initiate a money transfer between two wallets
	CLIENT_TRANSFER
	// Connect a full node with ip address and port
	CONNECT
	// Get the balance of a wallet
	GET_BALANCE
	// Create a wallet on the full node, optionally funded
	CREATE
	// Show the chain held by the full node
	CLIENT_SHOW
	// Leave the wallet
	CLIENT_QUIT
)

const ClientUsage = `Commands:
  connect <ip> <port>
  transfer <from> <to> <amount>
  balance <name>
  create <name> [fund]
  show [depth]
  quit`

var portRegex = regexp.MustCompile(PORT_REGEX)

type ClientCommand struct {
	Op   Operation
	Args []string
}

func (c ClientCommand) IsValid() bool {
	switch c.Op {
	case CLIENT_TRANSFER:
		return len(c.Args) == 3 && isAmount(c.Args[2])
	case GET_BALANCE:
		return len(c.Args) == 1
	case CREATE:
		return len(c.Args) == 1 || (len(c.Args) == 2 && isCount(c.Args[1]))
	case CLIENT_SHOW:
		return len(c.Args) == 0 || (len(c.Args) == 1 && isCount(c.Args[0]))
	case CLIENT_QUIT:
		return len(c.Args) == 0
	case CONNECT:
		if len(c.Args) != 2 {
			return false
		}
		ipAddr := c.Args[0]
		port := c.Args[1]
		ip := net.ParseIP(ipAddr)
		return (ipAddr == "localhost" || (ip != nil && ip.To4() != nil)) && portRegex.MatchString(port)
	default:
		return false
	}
}

func CreateClientCommand(s string) (ClientCommand, error) {
	// split command by whitespace.
	ss := strings.Fields(s)
	if len(ss) == 0 {
		return ClientCommand{}, errors.New("command is empty")
	}
	cmd := ClientCommand{}
	switch ss[0] {
	case "transfer":
		cmd.Op = CLIENT_TRANSFER
	case "connect":
		cmd.Op = CONNECT
	case "balance":
		cmd.Op = GET_BALANCE
	case "create":
		cmd.Op = CREATE
	case "show":
		cmd.Op = CLIENT_SHOW
	case "quit", "exit":
		cmd.Op = CLIENT_QUIT
	default:
		cmd.Op = NOOP
	}
	cmd.Args = ss[1:]
	if !cmd.IsValid() {
		return ClientCommand{}, fmt.Errorf("invalid command %q", s)
	}
	return cmd, nil
}

package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/Luismorlan/ledger_in_go/commands"
	"github.com/Luismorlan/ledger_in_go/layout"
	"github.com/Luismorlan/ledger_in_go/visualize"
	"github.com/Luismorlan/ledger_in_go/wallet"
	"github.com/pterm/pterm"
)

var (
	nodeIP    *string
	nodePort  *string
	debugMode *bool
)

func init() {
	nodeIP = flag.String("node_ip", "", "ip address of the full node to connect on start")
	nodePort = flag.String("node_port", "10000", "port of the full node")
	debugMode = flag.Bool("debug_mode", false, "Using debug mode will disable fancy GUI.")
}

func main() {
	flag.Parse()
	slog.SetDefault(slog.New(pterm.NewSlogHandler(&pterm.DefaultLogger)))

	cmd := make(chan commands.ClientCommand, 16)
	done := make(chan struct{})
	var out io.Writer = os.Stdout
	var console *layout.Console
	if *debugMode {
		go ParseCommand(cmd)
	} else {
		var err error
		console, err = layout.CreateGui(commands.ClientUsage, func(line string) error {
			c, err := commands.CreateClientCommand(line)
			if err != nil {
				return err
			}
			select {
			case cmd <- c:
				return nil
			default:
				return errors.New("busy, try again once running commands finish")
			}
		})
		if err != nil {
			pterm.Error.Println(err)
			os.Exit(1)
		}
		slog.SetDefault(slog.New(pterm.NewSlogHandler(pterm.DefaultLogger.WithWriter(console))))
		out = console
	}

	w := wallet.NewWallet(out)
	defer w.Close()
	if *nodeIP != "" {
		connect(w, *nodeIP, *nodePort)
	}

	quit := func() { close(done) }
	if console != nil {
		defer console.Close()
		quit = console.Quit
		go func() {
			if err := console.Run(); err != nil {
				slog.Error("console failed", "err", err)
			}
			close(done)
		}()
	}
	go HandleCommand(cmd, w, quit)
	<-done
}

// Parse command from stdio.
func ParseCommand(cmd chan commands.ClientCommand) {
	scanner := bufio.NewScanner(os.Stdin)
	fmt.Print("> ")
	for scanner.Scan() {
		c, err := commands.CreateClientCommand(scanner.Text())
		if err != nil {
			fmt.Println(err)
			fmt.Print("> ")
			continue
		}
		cmd <- c
	}
	cmd <- commands.ClientCommand{Op: commands.CLIENT_QUIT}
}

func connect(w *wallet.Wallet, ipAddr string, port string) {
	if err := w.SetFullNodeConnection(ipAddr, port); err != nil {
		w.Log("failed to connect to full node endpoint " + ipAddr + ":" + port + ": " + err.Error())
		return
	}
	w.Log("connected full node endpoint " + ipAddr + ":" + port)
}

func HandleCommand(cmd chan commands.ClientCommand, w *wallet.Wallet, quit func()) {
	for {
		c := <-cmd
		switch c.Op {
		case commands.CONNECT:
			connect(w, c.Args[0], c.Args[1])
		case commands.CLIENT_TRANSFER:
			amount, _ := strconv.ParseFloat(c.Args[2], 32)
			block, err := w.TransferMoney(c.Args[0], c.Args[1], float32(amount))
			if err != nil {
				w.Log("fail to transfer money: " + err.Error())
				break
			}
			w.Log(fmt.Sprintf("transaction processed in block %d: %s", block.Index, block.Transactions[0]))
		case commands.GET_BALANCE:
			b, err := w.GetBalance(c.Args[0])
			if err != nil {
				w.Log("fail to get balance: " + err.Error())
				break
			}
			w.Log(fmt.Sprintf("balance for %s: %d", c.Args[0], b))
		case commands.CREATE:
			var fund uint64
			if len(c.Args) == 2 {
				fund, _ = strconv.ParseUint(c.Args[1], 10, 64)
			}
			res, err := w.CreateWallet(c.Args[0], fund)
			if err != nil {
				w.Log("fail to create wallet: " + err.Error())
				break
			}
			w.Log(fmt.Sprintf("wallet '%s' created with address %s", res.Name, res.Address))
			if res.Block != nil {
				w.Log(fmt.Sprintf("funded with %d coins in block %d", fund, res.Block.Index))
			}
		case commands.CLIENT_SHOW:
			depth := -1
			if len(c.Args) == 1 {
				depth, _ = strconv.Atoi(c.Args[0])
			}
			bc, problem, err := w.GetChain(depth)
			if err != nil {
				w.Log("fail to get chain: " + err.Error())
				break
			}
			s, err := visualize.SprintChain(bc, -1, false)
			if err != nil {
				w.Log(err.Error())
				break
			}
			w.Log(s)
			if problem != "" {
				w.Log("chain failed verification: " + problem)
			}
		case commands.CLIENT_QUIT:
			quit()
			return
		default:
			w.Log(fmt.Sprintf("Unimplemented command: %d", c.Op))
		}
		if *debugMode {
			fmt.Print("> ")
		}
	}
}

package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strconv"

	"github.com/Luismorlan/ledger_in_go/commands"
	"github.com/Luismorlan/ledger_in_go/config"
	"github.com/Luismorlan/ledger_in_go/full_node"
	"github.com/Luismorlan/ledger_in_go/layout"
	"github.com/Luismorlan/ledger_in_go/model"
	"github.com/Luismorlan/ledger_in_go/visualize"
	"github.com/pterm/pterm"
)

var configPath *string

func init() {
	configPath = flag.String("config_path", "full_node/cmd/config.yaml", "path to full node config")
}

const usage = `Usage: full_node [-config_path FILE] <command> [flags]

Commands:
  wallet-gen -name N [-fund F]          create a wallet, optionally funded
  balance -get X                        print the balance of a wallet or address
  balance -set X -amount N              overwrite a balance
  block-add -from A -to B -amount F     transfer coins, mining a block
  blockchain-show [-depth D] [-full] [-dot F]
                                        print the chain
  serve [-listen_addr A] [-debug_mode]  serve wallets with an operator console
`

func main() {
	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
	flag.Parse()
	slog.SetDefault(slog.New(pterm.NewSlogHandler(&pterm.DefaultLogger)))

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.ParseAppConfig(*configPath)
	if err != nil {
		pterm.Error.Printfln("failed to read config %s: %v", *configPath, err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	node, err := full_node.NewFullNode(ctx, cfg)
	if err != nil {
		pterm.Error.Printfln("failed to start full node: %v", err)
		stop()
		os.Exit(1)
	}

	err = run(ctx, node, cfg, flag.Arg(0), flag.Args()[1:])
	node.Close()
	stop()
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}

func run(ctx context.Context, node *full_node.FullNode, cfg config.AppConfig, cmd string, args []string) error {
	switch cmd {
	case "wallet-gen":
		return walletGen(ctx, node, args)
	case "balance":
		return balance(node, args)
	case "block-add":
		return blockAdd(ctx, node, args)
	case "blockchain-show":
		return blockchainShow(node, args)
	case "serve":
		return serve(ctx, node, cfg, args)
	default:
		flag.Usage()
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func walletGen(ctx context.Context, node *full_node.FullNode, args []string) error {
	fs := flag.NewFlagSet("wallet-gen", flag.ContinueOnError)
	name := fs.String("name", "", "name of the new wallet")
	fund := fs.Uint64("fund", 0, "coins credited from the faucet")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *name == "" {
		fs.Usage()
		return errors.New("wallet-gen needs -name")
	}

	identity, block, err := node.CreateWallet(ctx, *name, *fund)
	if errors.Is(err, model.ErrWalletExists) {
		return fmt.Errorf("Wallet '%s' already exists.", *name)
	}
	if identity.Address == "" {
		return err
	}
	pterm.Success.Printfln("Wallet '%s' created.", identity.Name)
	pterm.Info.Printfln("Address: %s", identity.Address)
	if err != nil {
		return fmt.Errorf("failed to fund '%s': %w", *name, err)
	}
	if block != nil {
		pterm.Success.Printfln("Funded '%s' with %d coins in block %d.", *name, *fund, block.Index)
	}
	return nil
}

func balance(node *full_node.FullNode, args []string) error {
	fs := flag.NewFlagSet("balance", flag.ContinueOnError)
	get := fs.String("get", "", "wallet name or address to read")
	set := fs.String("set", "", "wallet name or address to overwrite")
	amount := fs.Uint64("amount", 0, "new balance, used with -set")
	if err := fs.Parse(args); err != nil {
		return err
	}
	amountGiven := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "amount" {
			amountGiven = true
		}
	})

	switch {
	case *get != "":
		b, err := node.GetBalance(*get)
		if errors.Is(err, model.ErrMalformedRecord) {
			pterm.Warning.Printfln("The balance record for %s is malformed.", *get)
		}
		if err != nil {
			return err
		}
		pterm.Info.Printfln("Balance for %s: %d", *get, b)
	case *set != "" && amountGiven:
		if err := node.SetBalance(*set, *amount); err != nil {
			return err
		}
		pterm.Success.Printfln("Set balance for %s to %d", *set, *amount)
	default:
		pterm.Warning.Println("Use -get <name> or -set <name> -amount <n>.")
		fs.Usage()
	}
	return nil
}

func blockAdd(ctx context.Context, node *full_node.FullNode, args []string) error {
	fs := flag.NewFlagSet("block-add", flag.ContinueOnError)
	from := fs.String("from", "", "sending wallet name or address")
	to := fs.String("to", "", "receiving wallet name or address")
	amount := fs.Float64("amount", 0, "coins to move")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *from == "" || *to == "" {
		fs.Usage()
		return errors.New("block-add needs -from and -to")
	}

	block, err := node.Transfer(ctx, *from, *to, float32(*amount))
	switch {
	case errors.Is(err, model.ErrInsufficientFunds):
		return fmt.Errorf("Insufficient funds: %w", err)
	case errors.Is(err, model.ErrChainPersistence):
		pterm.Warning.Printfln("Block %d was mined but not saved; balances will update once it is on disk.", block.Index)
		return err
	case err != nil:
		return err
	}
	pterm.Success.Println("Transaction processed. Block added.")
	pterm.Info.Printfln("%s → %s: %s coins (block %d)", *from, *to, model.FormatAmount(float32(*amount)), block.Index)
	return nil
}

func blockchainShow(node *full_node.FullNode, args []string) error {
	fs := flag.NewFlagSet("blockchain-show", flag.ContinueOnError)
	depth := fs.Int("depth", -1, "blocks before the tail to show, negative for all")
	dot := fs.String("dot", "", "also write a graphviz graph of the blocks to this file")
	full := fs.Bool("full", false, "print hashes in full")
	if err := fs.Parse(args); err != nil {
		return err
	}

	bc, err := node.Chain()
	if err != nil {
		return err
	}
	if err := visualize.PrintChain(bc, *depth, *full); err != nil {
		return err
	}
	if *dot != "" {
		f, err := os.Create(*dot)
		if err != nil {
			return err
		}
		visualize.Render(f, bc, *depth)
		if err := f.Close(); err != nil {
			return err
		}
		pterm.Info.Printfln("Graph written to %s", *dot)
	}

	if err := node.Verify(); err != nil {
		pterm.Warning.Printfln("Chain failed verification: %v", err)
		return nil
	}
	pterm.Success.Printfln("Chain of %d blocks verified.", len(bc.Blocks))
	return nil
}

func serve(ctx context.Context, node *full_node.FullNode, cfg config.AppConfig, args []string) error {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	listenAddr := fs.String("listen_addr", cfg.LISTEN_ADDR, "address to serve wallets on")
	debugMode := fs.Bool("debug_mode", false, "Using debug mode will disable fancy GUI.")
	if err := fs.Parse(args); err != nil {
		return err
	}

	lis, err := net.Listen("tcp", *listenAddr)
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}
	grpcServer := full_node.NewGRPCServer(node)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Commands are handled one at a time, off the input goroutine.
	cmd := make(chan commands.Command, 16)
	var out io.Writer = os.Stdout
	quit := cancel
	if *debugMode {
		go ParseCommand(ctx, cmd)
	} else {
		console, err := layout.CreateGui(commands.Usage, func(line string) error {
			c, err := commands.CreateCommand(line)
			if err != nil || c.IsDefault() {
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
			return err
		}
		defer console.Close()
		slog.SetDefault(slog.New(pterm.NewSlogHandler(pterm.DefaultLogger.WithWriter(console))))
		out = console
		quit = console.Quit
		go func() {
			if err := console.Run(); err != nil {
				slog.Error("console failed", "err", err)
			}
			cancel()
		}()
	}
	go HandleCommand(ctx, cmd, node, out, quit)
	go func() {
		<-ctx.Done()
		grpcServer.GracefulStop()
	}()

	slog.Info("Starting to serve", "addr", lis.Addr().String(), "node", node.NodeID())
	return grpcServer.Serve(lis)
}

// Parse command from stdio.
func ParseCommand(ctx context.Context, cmd chan commands.Command) {
	scanner := bufio.NewScanner(os.Stdin)
	fmt.Print("> ")
	for scanner.Scan() {
		c, err := commands.CreateCommand(scanner.Text())
		if err != nil || c.IsDefault() {
			if err != nil {
				fmt.Println(err)
			}
			fmt.Print("> ")
			continue
		}
		select {
		case cmd <- c:
		case <-ctx.Done():
			return
		}
	}
	// Stdin closed.
	select {
	case cmd <- commands.Command{Op: commands.QUIT}:
	case <-ctx.Done():
	}
}

func HandleCommand(ctx context.Context, cmd chan commands.Command, node *full_node.FullNode, out io.Writer, quit func()) {
	for {
		var c commands.Command
		select {
		case <-ctx.Done():
			return
		case c = <-cmd:
		}

		switch c.Op {
		case commands.SHOW:
			depth := -1
			if len(c.Args) == 1 {
				depth, _ = strconv.Atoi(c.Args[0])
			}
			bc, err := node.Chain()
			if err != nil {
				fmt.Fprintln(out, err)
				break
			}
			s, err := visualize.SprintChain(bc, depth, false)
			if err != nil {
				fmt.Fprintln(out, err)
				break
			}
			fmt.Fprintln(out, s)
		case commands.BALANCE:
			b, err := node.GetBalance(c.Args[0])
			if err != nil {
				fmt.Fprintln(out, "failed to get balance:", err)
				break
			}
			fmt.Fprintf(out, "Balance for %s: %d\n", c.Args[0], b)
		case commands.SET_BALANCE:
			amount, _ := strconv.ParseUint(c.Args[1], 10, 64)
			if err := node.SetBalance(c.Args[0], amount); err != nil {
				fmt.Fprintln(out, "failed to set balance:", err)
				break
			}
			fmt.Fprintf(out, "Set balance for %s to %d\n", c.Args[0], amount)
		case commands.TRANSFER:
			amount, _ := strconv.ParseFloat(c.Args[2], 32)
			block, err := node.Transfer(ctx, c.Args[0], c.Args[1], float32(amount))
			if err != nil {
				fmt.Fprintln(out, "transfer failed:", err)
				break
			}
			fmt.Fprintf(out, "Transaction processed in block %d: %s\n", block.Index, block.Transactions[0])
		case commands.FUND:
			amount, _ := strconv.ParseUint(c.Args[1], 10, 64)
			block, err := node.Fund(ctx, c.Args[0], amount)
			if err != nil {
				fmt.Fprintln(out, "funding failed:", err)
				break
			}
			fmt.Fprintf(out, "Funded in block %d: %s\n", block.Index, block.Transactions[0])
		case commands.VERIFY:
			if err := node.Verify(); err != nil {
				fmt.Fprintln(out, "chain failed verification:", err)
				break
			}
			fmt.Fprintf(out, "Chain of %d blocks verified.\n", node.GetHeight())
		case commands.HELP:
			fmt.Fprintln(out, commands.Usage)
		case commands.QUIT:
			quit()
			return
		default:
			fmt.Fprintln(out, "Unrecognized command:", c)
		}
		if out == os.Stdout {
			fmt.Print("> ")
		}
	}
}

package chain

import (
	"context"
	"fmt"

	"github.com/Luismorlan/ledger_in_go/model"
	"github.com/Luismorlan/ledger_in_go/utils"
)

// Miner runs proof of work on one dedicated goroutine. Stopping the miner
// cancels the block being mined.
type Miner struct {
	jobs chan mineJob
	// Cancelled by Stop.
	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}
}

type mineJob struct {
	ctx        context.Context
	block      *model.Block
	difficulty int
	result     chan error
}

func NewMiner() *Miner {
	ctx, cancel := context.WithCancel(context.Background())
	m := &Miner{
		jobs:   make(chan mineJob),
		ctx:    ctx,
		cancel: cancel,
		done:   make(chan struct{}),
	}
	go m.run()
	return m
}

func (m *Miner) run() {
	defer close(m.done)
	for {
		select {
		case <-m.ctx.Done():
			return
		case job := <-m.jobs:
			ctx, cancel := context.WithCancel(job.ctx)
			stop := context.AfterFunc(m.ctx, cancel)
			job.result <- utils.Mine(ctx, job.block, job.difficulty)
			stop()
			cancel()
		}
	}
}

// Mine blocks until block satisfies difficulty, ctx is done or the miner is
// stopped.
func (m *Miner) Mine(ctx context.Context, block *model.Block, difficulty int) error {
	result := make(chan error, 1)
	select {
	case m.jobs <- mineJob{ctx: ctx, block: block, difficulty: difficulty, result: result}:
	case <-m.done:
		return fmt.Errorf("%w: miner stopped", model.ErrMiningCancelled)
	case <-ctx.Done():
		return fmt.Errorf("%w: %w", model.ErrMiningCancelled, ctx.Err())
	}
	return <-result
}

// Stop cancels any running job and waits for the mining goroutine to exit.
func (m *Miner) Stop() {
	m.cancel()
	<-m.done
}

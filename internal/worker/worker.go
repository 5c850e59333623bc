package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"lotledger/pkg/lotledger"
)

// Message kinds exchanged with the engine.
const (
	KindRecalculate = "recalculate"
	KindSuccess     = "success"
	KindFailure     = "failure"
)

// ErrQueueFull is returned by Submit when the request queue is saturated.
var ErrQueueFull = errors.New("request queue is full")

// Request is the single message a host sends per computation.
type Request struct {
	Kind         string                  `json:"kind"`
	Transactions []lotledger.Transaction `json:"transactions"`
	StockSplits  []lotledger.StockSplit  `json:"stock_splits,omitempty"`
}

// Response is the single message the engine sends back.
type Response struct {
	Kind         string                     `json:"kind"`
	Transactions []lotledger.Transaction    `json:"transactions,omitempty"`
	Summary      *lotledger.RealizedSummary `json:"summary,omitempty"`
	Error        string                     `json:"error,omitempty"`
}

type job struct {
	id    string
	req   Request
	reply chan Response
}

// Options controls Pool initialization.
type Options struct {
	Engine     *lotledger.Engine
	Logger     *slog.Logger
	Workers    int
	QueueDepth int
}

// Pool runs computations off the caller's path. Each request is owned by
// exactly one worker for its whole duration and yields exactly one response;
// in-flight computations share no mutable state.
type Pool struct {
	engine  *lotledger.Engine
	logger  *slog.Logger
	jobs    chan job
	workers int
	wg      sync.WaitGroup
}

// NewPool creates a Pool; Start must be called before Submit is useful.
func NewPool(opts Options) *Pool {
	engine := opts.Engine
	if engine == nil {
		engine = lotledger.New()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = 1
	}
	queueDepth := opts.QueueDepth
	if queueDepth <= 0 {
		queueDepth = 16
	}
	return &Pool{
		engine:  engine,
		logger:  logger,
		jobs:    make(chan job, queueDepth),
		workers: workers,
	}
}

// Start launches the workers. They exit when ctx is cancelled.
func (p *Pool) Start(ctx context.Context) {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.run(ctx)
	}
}

// Wait blocks until all workers have exited.
func (p *Pool) Wait() {
	p.wg.Wait()
}

// Submit enqueues one request and blocks for its response. Cancelling ctx
// abandons the wait; the computation itself is not interrupted mid-run, its
// reply is simply dropped.
func (p *Pool) Submit(ctx context.Context, req Request) (Response, error) {
	j := job{id: uuid.NewString(), req: req, reply: make(chan Response, 1)}
	select {
	case p.jobs <- j:
	default:
		return Response{}, ErrQueueFull
	}
	select {
	case resp := <-j.reply:
		return resp, nil
	case <-ctx.Done():
		return Response{}, ctx.Err()
	}
}

func (p *Pool) run(ctx context.Context) {
	defer p.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case j := <-p.jobs:
			j.reply <- p.process(j)
		}
	}
}

func (p *Pool) process(j job) Response {
	if j.req.Kind != KindRecalculate {
		p.logger.Warn("rejecting message", "request_id", j.id, "kind", j.req.Kind)
		return Response{Kind: KindFailure, Error: fmt.Sprintf("unsupported message kind %q", j.req.Kind)}
	}
	result, err := p.engine.Recalculate(lotledger.RecalculateRequest{
		Transactions: j.req.Transactions,
		StockSplits:  j.req.StockSplits,
	})
	if err != nil {
		p.logger.Warn("recalculation failed", "request_id", j.id, "err", err)
		return Response{Kind: KindFailure, Error: err.Error()}
	}
	p.logger.Info("recalculation complete", "request_id", j.id, "transactions", len(result.Transactions))
	return Response{Kind: KindSuccess, Transactions: result.Transactions, Summary: &result.Summary}
}

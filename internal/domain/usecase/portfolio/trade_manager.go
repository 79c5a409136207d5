package portfolio

import (
	"context"
	"fmt"
	"sync"

	"github.com/amirhossein-jamali/paper-trader/internal/domain/entity"
	errs "github.com/amirhossein-jamali/paper-trader/internal/domain/error"
	coreport "github.com/amirhossein-jamali/paper-trader/internal/domain/port/core"
)

// DefaultQueueSize bounds the pending trades of one user
const DefaultQueueSize = 16

// SettleFunc writes one priced trade to the ledger
type SettleFunc func(ctx context.Context, trade *entity.Transaction) error

// TradeManager settles the trades of each user one at a time, in arrival order
type TradeManager struct {
	logger    coreport.Logger
	queueSize int

	mu         sync.Mutex
	userQueues map[uint64]chan *tradeRequest
	closed     bool
	workers    sync.WaitGroup

	settle SettleFunc
}

type tradeRequest struct {
	ctx        context.Context
	trade      *entity.Transaction
	resultChan chan error
}

// NewTradeManager creates a new trade manager
func NewTradeManager(logger coreport.Logger, queueSize int, settle SettleFunc) *TradeManager {
	if settle == nil {
		panic("trade settle function cannot be nil")
	}
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}

	return &TradeManager{
		logger:     logger,
		queueSize:  queueSize,
		userQueues: make(map[uint64]chan *tradeRequest),
		settle:     settle,
	}
}

// Enqueue hands a trade to the queue of its user and waits for it to settle.
// A full queue fails fast with ErrUserLocked.
func (m *TradeManager) Enqueue(ctx context.Context, trade *entity.Transaction) error {
	req := &tradeRequest{
		ctx:        ctx,
		trade:      trade,
		resultChan: make(chan error, 1),
	}

	if err := m.push(req); err != nil {
		return err
	}

	select {
	case err := <-req.resultChan:
		return err
	case <-ctx.Done():
		m.logger.Warn("Context canceled while waiting for trade settlement", map[string]any{
			"user_id": trade.UserID,
			"symbol":  trade.Symbol,
			"error":   ctx.Err().Error(),
		})
		return ctx.Err()
	}
}

func (m *TradeManager) push(req *tradeRequest) error {
	userID := req.trade.UserID

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return fmt.Errorf("%w: trade manager is shut down", errs.ErrInternalServer)
	}

	queue, ok := m.userQueues[userID]
	if !ok {
		queue = make(chan *tradeRequest, m.queueSize)
		m.userQueues[userID] = queue
		m.workers.Add(1)
		go m.processUserTrades(userID, queue)
		m.logger.Debug("Started trade queue worker", map[string]any{"user_id": userID})
	}

	select {
	case queue <- req:
		return nil
	default:
		m.logger.Warn("Trade queue is full", map[string]any{
			"user_id":    userID,
			"queue_size": m.queueSize,
		})
		return fmt.Errorf("%w: too many pending trades", errs.ErrUserLocked)
	}
}

func (m *TradeManager) processUserTrades(userID uint64, queue chan *tradeRequest) {
	defer m.workers.Done()

	for req := range queue {
		// The caller stopped waiting, so nothing must be written on its behalf.
		if err := req.ctx.Err(); err != nil {
			req.resultChan <- err
			continue
		}
		req.resultChan <- m.settle(req.ctx, req.trade)
	}

	m.logger.Debug("Trade queue worker stopped", map[string]any{"user_id": userID})
}

// Shutdown stops accepting trades, lets queued ones settle and waits for the workers
func (m *TradeManager) Shutdown() {
	m.logger.Info("Shutting down trade manager", nil)

	m.mu.Lock()
	if !m.closed {
		m.closed = true
		for _, queue := range m.userQueues {
			close(queue)
		}
	}
	m.mu.Unlock()

	m.workers.Wait()
	m.logger.Info("Trade manager shut down", nil)
}

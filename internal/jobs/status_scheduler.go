package jobs

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"droncakes/internal/core/application/usecases/commands"
	"droncakes/internal/core/domain/model/kernel"
	"droncakes/internal/core/domain/model/order"
	"droncakes/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

// OrderAdvancer applies a due transition. commands.AdvanceOrderCommandHandler
// is the production implementation.
type OrderAdvancer interface {
	Handle(ctx context.Context, cmd commands.AdvanceOrderCommand) (bool, error)
}

var _ commands.StatusScheduler = (*StatusScheduler)(nil)

// StatusScheduler fires the planned transitions of orders. Every transition
// is a cron entry that runs once at its instant and then unregisters itself.
//
// Entries are grouped by order, so delivering an order drops its remaining
// timers. A timer that is already running when it is cancelled still reaches
// the advance handler, which ignores transitions an order has already passed.
type StatusScheduler struct {
	advancer OrderAdvancer
	cron     *cron.Cron
	logger   *slog.Logger

	mu    sync.Mutex
	tasks map[kernel.ID]map[cron.EntryID]struct{}

	// running jobs hold the read lock; CancelAll takes the write lock to wait for them.
	runMu sync.RWMutex
}

func NewStatusScheduler(advancer OrderAdvancer, logger *slog.Logger) *StatusScheduler {
	logger = logger.With("component", "status_scheduler")
	cronLog := newCronLogger(logger)

	return &StatusScheduler{
		advancer: advancer,
		cron: cron.New(
			cron.WithLogger(cronLog),
			cron.WithChain(cron.Recover(cronLog)),
		),
		logger: logger,
		tasks:  make(map[kernel.ID]map[cron.EntryID]struct{}),
	}
}

// Start runs the scheduler loop. Transitions scheduled before Start fire once it runs.
func (s *StatusScheduler) Start() {
	s.cron.Start()
	s.logger.Info("Status scheduler started")
}

// Stop halts the loop and waits for running transitions to finish.
func (s *StatusScheduler) Stop() {
	<-s.cron.Stop().Done()
	s.logger.Info("Status scheduler stopped")
}

func (s *StatusScheduler) Schedule(orderID kernel.ID, at time.Time, target order.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()

	job := &transitionJob{scheduler: s, orderID: orderID, target: target}
	job.entryID = s.cron.Schedule(&onceAt{at: at}, job)

	entries, ok := s.tasks[orderID]
	if !ok {
		entries = make(map[cron.EntryID]struct{})
		s.tasks[orderID] = entries
	}
	entries[job.entryID] = struct{}{}

	s.logger.Debug("Transition scheduled",
		"order_id", orderID.Int64(), "target", target.String(), "at", at)
}

func (s *StatusScheduler) Cancel(orderID kernel.ID) {
	s.mu.Lock()
	entries := s.tasks[orderID]
	delete(s.tasks, orderID)
	s.mu.Unlock()

	for id := range entries {
		s.cron.Remove(id)
	}

	if len(entries) > 0 {
		s.logger.Debug("Transitions cancelled", "order_id", orderID.Int64(), "count", len(entries))
	}
}

func (s *StatusScheduler) CancelAll() {
	s.runMu.Lock()
	defer s.runMu.Unlock()

	s.mu.Lock()
	all := s.tasks
	s.tasks = make(map[kernel.ID]map[cron.EntryID]struct{})
	s.mu.Unlock()

	count := 0
	for _, entries := range all {
		for id := range entries {
			s.cron.Remove(id)
			count++
		}
	}

	s.logger.Info("All transitions cancelled", "count", count)
}

// Pending returns how many transitions of the order have not fired yet.
func (s *StatusScheduler) Pending(orderID kernel.ID) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks[orderID])
}

// claim unregisters the job's entry and reports whether it was still scheduled.
func (s *StatusScheduler) claim(job *transitionJob) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, ok := s.tasks[job.orderID]
	if !ok {
		return false
	}
	if _, ok = entries[job.entryID]; !ok {
		return false
	}

	delete(entries, job.entryID)
	if len(entries) == 0 {
		delete(s.tasks, job.orderID)
	}

	return true
}

func (s *StatusScheduler) fire(job *transitionJob) {
	s.runMu.RLock()
	defer s.runMu.RUnlock()

	if !s.claim(job) {
		return
	}
	s.cron.Remove(job.entryID)

	ctx := context.Background()
	log := s.logger.With("order_id", job.orderID.Int64(), "target", job.target.String())

	cmd, err := commands.NewAdvanceOrderCommand(job.orderID, job.target)
	if err != nil {
		log.ErrorContext(ctx, "Invalid scheduled transition", "error", err)
		return
	}

	changed, err := s.advancer.Handle(ctx, cmd)
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		log.WarnContext(ctx, "Scheduled transition for unknown order", "error", err)
	case err != nil:
		log.ErrorContext(ctx, "Scheduled transition failed", "error", err)
	case changed:
		log.InfoContext(ctx, "Order advanced")
	default:
		log.DebugContext(ctx, "Order already past scheduled status")
	}
}

// transitionJob is the cron job of one planned transition. entryID is set
// under the scheduler lock before the job can run.
type transitionJob struct {
	scheduler *StatusScheduler
	entryID   cron.EntryID
	orderID   kernel.ID
	target    order.Status
}

func (j *transitionJob) Run() {
	j.scheduler.fire(j)
}

// onceAt is a cron.Schedule that activates a single time. An instant already
// in the past fires immediately. cron never runs an entry whose next
// activation is the zero time.
type onceAt struct {
	at   time.Time
	done bool
}

func (o *onceAt) Next(now time.Time) time.Time {
	if o.done {
		return time.Time{}
	}
	o.done = true

	if o.at.After(now) {
		return o.at
	}
	return now
}

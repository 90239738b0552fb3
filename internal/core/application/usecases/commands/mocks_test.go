package commands_test

import (
	"context"
	"sync"
	"time"

	"droncakes/internal/adapters/out/clock"
	"droncakes/internal/adapters/out/memory"
	"droncakes/internal/core/application/usecases/commands"
	"droncakes/internal/core/domain/model/drone"
	"droncakes/internal/core/domain/model/kernel"
	"droncakes/internal/core/domain/model/order"
	"droncakes/internal/core/domain/services"
	"droncakes/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockDroneRepository struct{ mock.Mock }

func (m *MockDroneRepository) List(ctx context.Context) ([]*drone.Drone, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*drone.Drone), args.Error(1)
}

func (m *MockDroneRepository) Get(ctx context.Context, id kernel.ID) (*drone.Drone, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*drone.Drone), args.Error(1)
}

func (m *MockDroneRepository) Update(ctx context.Context, d *drone.Drone) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) NextID(ctx context.Context) (kernel.ID, error) {
	args := m.Called(ctx)
	return args.Get(0).(kernel.ID), args.Error(1)
}

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.ID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) List(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) DroneRepository() ports.DroneRepository {
	args := m.Called()
	return args.Get(0).(ports.DroneRepository)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockScheduler struct{ mock.Mock }

func (m *MockScheduler) Schedule(orderID kernel.ID, at time.Time, target order.Status) {
	m.Called(orderID, at, target)
}

func (m *MockScheduler) Cancel(orderID kernel.ID) {
	m.Called(orderID)
}

func (m *MockScheduler) CancelAll() {
	m.Called()
}

type MockResetter struct{ mock.Mock }

func (m *MockResetter) Reset(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// plannedTask is a transition recorded by manualScheduler.
type plannedTask struct {
	orderID kernel.ID
	at      time.Time
	target  order.Status
}

// manualScheduler keeps planned transitions until the test fires them.
type manualScheduler struct {
	mu    sync.Mutex
	tasks []plannedTask
}

func (s *manualScheduler) Schedule(orderID kernel.ID, at time.Time, target order.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = append(s.tasks, plannedTask{orderID: orderID, at: at, target: target})
}

func (s *manualScheduler) Cancel(orderID kernel.ID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.tasks[:0]
	for _, task := range s.tasks {
		if task.orderID != orderID {
			kept = append(kept, task)
		}
	}
	s.tasks = kept
}

func (s *manualScheduler) CancelAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = nil
}

// due removes and returns the tasks planned at or before now.
func (s *manualScheduler) due(now time.Time) []plannedTask {
	s.mu.Lock()
	defer s.mu.Unlock()

	var due []plannedTask
	kept := s.tasks[:0]
	for _, task := range s.tasks {
		if task.at.After(now) {
			kept = append(kept, task)
			continue
		}
		due = append(due, task)
	}
	s.tasks = kept

	return due
}

func (s *manualScheduler) pending(orderID kernel.ID) []plannedTask {
	s.mu.Lock()
	defer s.mu.Unlock()

	var result []plannedTask
	for _, task := range s.tasks {
		if task.orderID == orderID {
			result = append(result, task)
		}
	}
	return result
}

// uowFactory adapts the memory factory to commands.UoWFactory.
type uowFactory struct {
	inner *memory.UnitOfWorkFactory
}

func (f uowFactory) Create() commands.UoW {
	return f.inner.Create()
}

// droneUoWFactory adapts the memory factory to commands.DroneUoWFactory.
type droneUoWFactory struct {
	inner *memory.UnitOfWorkFactory
}

func (f droneUoWFactory) Create() commands.DroneUoW {
	return f.inner.Create()
}

// engine wires every handler over a memory store, a fixed clock and a manual scheduler.
type engine struct {
	store     *memory.Store
	clock     *clock.Fixed
	scheduler *manualScheduler

	create       commands.CreateOrderCommandHandler
	update       commands.UpdateOrderStatusCommandHandler
	complete     commands.CompleteOrderCommandHandler
	advance      commands.AdvanceOrderCommandHandler
	availability commands.SetDroneAvailabilityCommandHandler
	reset        commands.ResetCommandHandler
}

var epoch = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

func newEngine(names ...string) (*engine, error) {
	fleet, err := drone.NewFleet(names...)
	if err != nil {
		return nil, err
	}

	store, err := memory.NewStore(fleet)
	if err != nil {
		return nil, err
	}

	factory := memory.NewUnitOfWorkFactory(store)
	e := &engine{
		store:     store,
		clock:     clock.NewFixed(epoch),
		scheduler: &manualScheduler{},
	}

	schedule := services.DefaultDeliverySchedule()
	e.create = commands.NewCreateOrderCommandHandler(uowFactory{factory}, e.clock, schedule, e.scheduler)
	e.update = commands.NewUpdateOrderStatusCommandHandler(uowFactory{factory}, e.clock, e.scheduler)
	e.complete = commands.NewCompleteOrderCommandHandler(e.update)
	e.advance = commands.NewAdvanceOrderCommandHandler(uowFactory{factory}, e.clock)
	e.availability = commands.NewSetDroneAvailabilityCommandHandler(droneUoWFactory{factory})
	e.reset = commands.NewResetCommandHandler(e.scheduler, store)

	return e, nil
}

// tick advances the clock and fires every task that became due, in plan order.
func (e *engine) tick(ctx context.Context, d time.Duration) error {
	now := e.clock.Advance(d)
	for _, task := range e.scheduler.due(now) {
		cmd, err := commands.NewAdvanceOrderCommand(task.orderID, task.target)
		if err != nil {
			return err
		}
		if _, err = e.advance.Handle(ctx, cmd); err != nil {
			return err
		}
	}
	return nil
}

func (e *engine) order(ctx context.Context, name, flavor string) (*order.Order, error) {
	cmd, err := commands.NewCreateOrderCommand(name, flavor)
	if err != nil {
		return nil, err
	}
	return e.create.Handle(ctx, cmd)
}

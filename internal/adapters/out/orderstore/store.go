package orderstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"grabgo/internal/core/domain/model/kernel"
	"grabgo/internal/core/domain/model/order"
	"grabgo/internal/core/ports"
	"grabgo/internal/pkg/errs"

	"go.uber.org/zap"
)

// SlotKey is the key the order collection is stored under unless WithKey
// overrides it.
const SlotKey = "grabgo_orders"

const (
	opLoad   = "load"
	opAppend = "append"
	opPatch  = "patch"
	opFlush  = "flush"
)

var _ ports.OrderStore = (*Store)(nil)

// Option configures a Store.
type Option func(*Store)

// WithKey stores the collection under key instead of SlotKey.
func WithKey(key string) Option {
	return func(s *Store) {
		if key != "" {
			s.key = key
		}
	}
}

// Store is the single owner of the order collection.
//
// Every successful mutation serializes the entire collection and overwrites
// the slot, so each write costs O(n). A failed write leaves the mutation in
// memory, marks the store dirty and returns a *errs.PersistenceError; Flush
// retries the write later.
type Store struct {
	mu     sync.RWMutex
	kv     ports.KeyValueStore
	key    string
	logger *zap.Logger

	orders []*order.Order
	dirty  bool
}

// New creates an empty store backed by kv. Call Load to read the persisted
// collection.
func New(kv ports.KeyValueStore, logger *zap.Logger, opts ...Option) *Store {
	s := &Store{
		kv:     kv,
		key:    SlotKey,
		logger: logger.With(zap.String("component", "order_store")),
		orders: make([]*order.Order, 0),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Key returns the slot key the collection is persisted under.
func (s *Store) Key() string {
	return s.key
}

// Load replaces the in-memory collection with the persisted one.
//
// A missing slot yields an empty store. Unreadable or invalid content also
// yields an empty store, together with a *errs.PersistenceError.
func (s *Store) Load(ctx context.Context) ([]*order.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.orders = make([]*order.Order, 0)
	s.dirty = false

	raw, err := s.kv.Get(ctx, s.key)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			s.logger.Info("no persisted orders, starting empty", zap.String("key", s.key))
			return s.cloneAll(), nil
		}
		return s.cloneAll(), s.loadFailed(err)
	}

	orders, err := decode(raw)
	if err != nil {
		return s.cloneAll(), s.loadFailed(err)
	}

	s.orders = orders
	s.logger.Info("orders loaded", zap.String("key", s.key), zap.Int("count", len(orders)))

	return s.cloneAll(), nil
}

// Append inserts o at the head of the collection and persists.
func (s *Store) Append(ctx context.Context, o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(o.ID()) >= 0 {
		return errs.NewObjectAlreadyExistsError("order", o.ID().String())
	}

	s.orders = append([]*order.Order{o.Clone()}, s.orders...)

	return s.persist(ctx, opAppend)
}

// Patch merges patch into the order with the given id and persists.
//
// Invalid patch values leave the collection untouched. On a persistence
// failure the updated order is returned together with the error.
func (s *Store) Patch(ctx context.Context, id kernel.OrderID, patch order.Patch) (*order.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, errs.NewObjectNotFoundError("order", id.String())
	}

	next, err := s.orders[i].Apply(patch)
	if err != nil {
		return nil, err
	}
	s.orders[i] = next

	return next.Clone(), s.persist(ctx, opPatch)
}

// Get returns a copy of the order with the given id.
func (s *Store) Get(_ context.Context, id kernel.OrderID) (*order.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, errs.NewObjectNotFoundError("order", id.String())
	}
	return s.orders[i].Clone(), nil
}

// Snapshot returns copies of every order, most recent first.
func (s *Store) Snapshot(_ context.Context) ([]*order.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.cloneAll(), nil
}

// Flush rewrites the slot if an earlier write failed. It is a no-op for a
// clean store.
func (s *Store) Flush(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.dirty {
		return nil
	}
	if err := s.persist(ctx, opFlush); err != nil {
		return err
	}

	s.logger.Info("pending orders flushed", zap.Int("count", len(s.orders)))
	return nil
}

// Dirty reports whether the in-memory collection is ahead of the slot.
func (s *Store) Dirty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.dirty
}

// persist writes the whole collection. The caller must hold the write lock.
func (s *Store) persist(ctx context.Context, op string) error {
	raw, err := encode(s.orders)
	if err == nil {
		err = s.kv.Put(ctx, s.key, raw)
	}

	if err != nil {
		s.dirty = true
		s.logger.Warn("failed to persist orders, keeping them in memory",
			zap.String("op", op),
			zap.String("key", s.key),
			zap.Int("count", len(s.orders)),
			zap.Error(err),
		)
		return errs.NewPersistenceError(op, s.key, err)
	}

	s.dirty = false
	return nil
}

func (s *Store) loadFailed(err error) error {
	s.logger.Error("persisted orders are unreadable, starting empty",
		zap.String("key", s.key),
		zap.Error(err),
	)
	return errs.NewPersistenceError(opLoad, s.key, err)
}

func (s *Store) indexOf(id kernel.OrderID) int {
	for i, o := range s.orders {
		if o.ID().IsEqual(id) {
			return i
		}
	}
	return -1
}

func (s *Store) cloneAll() []*order.Order {
	out := make([]*order.Order, 0, len(s.orders))
	for _, o := range s.orders {
		out = append(out, o.Clone())
	}
	return out
}

func encode(orders []*order.Order) ([]byte, error) {
	dtos := make([]OrderDTO, 0, len(orders))
	for _, o := range orders {
		dtos = append(dtos, fromDomain(o))
	}
	return json.Marshal(dtos)
}

func decode(raw []byte) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := json.Unmarshal(raw, &dtos); err != nil {
		return nil, fmt.Errorf("decode orders: %w", err)
	}

	orders := make([]*order.Order, 0, len(dtos))
	seen := make(map[string]struct{}, len(dtos))
	for _, dto := range dtos {
		if _, ok := seen[dto.ID]; ok {
			return nil, errs.NewObjectAlreadyExistsError("order", dto.ID)
		}
		seen[dto.ID] = struct{}{}

		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

package usecases

import (
	"context"
	"log"

	"github.com/cleitonmarx/symbiont/depend"

	"github.com/cleitonmarx/symbiont-ai-chatpad/internal/common"
	"github.com/cleitonmarx/symbiont-ai-chatpad/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-chatpad/internal/toolkit"
)

// NotifyingKVStore is the shared key/value service handed to tools and UI
// handlers. Every write goes through the unit of work so the change and its
// realtime outbox event commit atomically.
type NotifyingKVStore struct {
	repo domain.KVRepository
	uow  domain.UnitOfWork
}

// NewNotifyingKVStore creates a new NotifyingKVStore instance
func NewNotifyingKVStore(repo domain.KVRepository, uow domain.UnitOfWork) *NotifyingKVStore {
	return &NotifyingKVStore{
		repo: repo,
		uow:  uow,
	}
}

// Get returns the value stored under key.
func (s *NotifyingKVStore) Get(ctx context.Context, key string) (any, bool, error) {
	return s.repo.Get(ctx, key)
}

// Set stores a value under key and records a kv_update event.
func (s *NotifyingKVStore) Set(ctx context.Context, key string, value any) error {
	return s.uow.Execute(ctx, func(uow domain.UnitOfWork) error {
		if err := uow.KV().Set(ctx, key, value); err != nil {
			return err
		}
		return uow.Outbox().CreateKVUpdateEvent(ctx, domain.KVUpdateEvent{
			Type:  domain.EventType_KV_UPDATED,
			Key:   key,
			Value: value,
		})
	})
}

// Delete removes key and records a kv_update event when the key existed.
func (s *NotifyingKVStore) Delete(ctx context.Context, key string) (bool, error) {
	var existed bool
	err := s.uow.Execute(ctx, func(uow domain.UnitOfWork) error {
		deleted, err := uow.KV().Delete(ctx, key)
		if err != nil {
			return err
		}
		existed = deleted
		if !deleted {
			return nil
		}
		return uow.Outbox().CreateKVUpdateEvent(ctx, domain.KVUpdateEvent{
			Type:    domain.EventType_KV_UPDATED,
			Key:     key,
			Deleted: true,
		})
	})
	return existed, err
}

// ListAppend appends items to the list under key and records a kv_update
// event carrying the new length.
func (s *NotifyingKVStore) ListAppend(ctx context.Context, key string, items ...any) (int, error) {
	var length int
	err := s.uow.Execute(ctx, func(uow domain.UnitOfWork) error {
		n, err := uow.KV().ListAppend(ctx, key, items...)
		if err != nil {
			return err
		}
		length = n
		return uow.Outbox().CreateKVUpdateEvent(ctx, domain.KVUpdateEvent{
			Type:   domain.EventType_KV_UPDATED,
			Key:    key,
			Value:  items,
			Length: common.Ptr(n),
		})
	})
	return length, err
}

// ListRange returns items of the list under key in [start, stop] inclusive.
func (s *NotifyingKVStore) ListRange(ctx context.Context, key string, start, stop int) ([]any, error) {
	return s.repo.ListRange(ctx, key, start, stop)
}

// ListLength returns the length of the list under key.
func (s *NotifyingKVStore) ListLength(ctx context.Context, key string) (int, error) {
	return s.repo.ListLength(ctx, key)
}

// Keys returns all keys matching the given glob pattern.
func (s *NotifyingKVStore) Keys(ctx context.Context, pattern string) ([]string, error) {
	return s.repo.Keys(ctx, pattern)
}

// InitKVStore registers the notifying key/value store as the domain KVStore
type InitKVStore struct {
	Repo domain.KVRepository `resolve:""`
	Uow  domain.UnitOfWork   `resolve:""`
}

// Initialize registers the NotifyingKVStore in the dependency container
func (i InitKVStore) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.KVStore](NewNotifyingKVStore(i.Repo, i.Uow))
	return ctx, nil
}

// InitFeatureNotifier registers the outbox-backed feature change notifier
// consumed by the tool registry and condition evaluator.
type InitFeatureNotifier struct {
	Uow    domain.UnitOfWork `resolve:""`
	Logger *log.Logger       `resolve:""`
}

// Initialize registers the FeatureNotifier in the dependency container
func (i InitFeatureNotifier) Initialize(ctx context.Context) (context.Context, error) {
	uow := i.Uow
	logger := i.Logger
	depend.Register[toolkit.FeatureNotifier](func(ctx context.Context, reason string) {
		// Feature change fan-out is best effort; a failed notification never
		// blocks the toggle or condition flip that triggered it.
		err := uow.Execute(ctx, func(uow domain.UnitOfWork) error {
			return uow.Outbox().CreateFeaturesChangedEvent(ctx, domain.FeaturesChangedEvent{
				Type:   domain.EventType_FEATURES_CHANGED,
				Reason: reason,
			})
		})
		if err != nil {
			logger.Printf("feature change notification failed (%s): %v", reason, err)
		}
	})
	return ctx, nil
}

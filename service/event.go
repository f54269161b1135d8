// Package service orchestrates the rest boundary and the query cache: reads
// go through the cache, successful mutations stale exactly the cached reads
// the invalidation rules declare. Failed mutations never touch the cache
// and are never retried.
package service

import (
	"context"
	"fmt"

	"github.com/aston-csic/csic-go/cache"
	"github.com/aston-csic/csic-go/domain"
	"github.com/aston-csic/csic-go/rest/request"
)

type EventAPI interface {
	ListEvents(ctx context.Context) ([]domain.Event, error)
	UpcomingEvents(ctx context.Context, count int) ([]domain.Event, error)
	GetEvent(ctx context.Context, id string) (domain.EventDetail, error)
	CreateEvent(ctx context.Context, req request.CreateEventRequest) (string, error)
	UpdateEventStatus(ctx context.Context, id string, req request.UpdateEventStatusRequest) error
}

type EventService struct {
	api     EventAPI
	queries *cache.Store
}

func NewEventService(api EventAPI, queries *cache.Store) *EventService {
	return &EventService{
		api:     api,
		queries: queries,
	}
}

func (s *EventService) ListEvents(ctx context.Context) ([]domain.Event, error) {
	if events, ok := cache.GetAs[[]domain.Event](s.queries, cache.KeyEvents); ok {
		return events, nil
	}

	events, err := s.api.ListEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.api.ListEvents -> %w", err)
	}

	s.queries.Set(cache.KeyEvents, events)

	return events, nil
}

// UpcomingEvents caches per count; event mutations stale the whole family.
func (s *EventService) UpcomingEvents(ctx context.Context, count int) ([]domain.Event, error) {
	key := cache.UpcomingEventsKey(count)
	if events, ok := cache.GetAs[[]domain.Event](s.queries, key); ok {
		return events, nil
	}

	events, err := s.api.UpcomingEvents(ctx, count)
	if err != nil {
		return nil, fmt.Errorf("s.api.UpcomingEvents -> %w", err)
	}

	s.queries.Set(key, events)

	return events, nil
}

func (s *EventService) GetEvent(ctx context.Context, id string) (domain.EventDetail, error) {
	key := cache.EventKey(id)
	if detail, ok := cache.GetAs[domain.EventDetail](s.queries, key); ok {
		return detail, nil
	}

	detail, err := s.api.GetEvent(ctx, id)
	if err != nil {
		return domain.EventDetail{}, fmt.Errorf("s.api.GetEvent -> %w", err)
	}

	s.queries.Set(key, detail)

	return detail, nil
}

func (s *EventService) CreateEvent(ctx context.Context, req request.CreateEventRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	id, err := s.api.CreateEvent(ctx, req)
	if err != nil {
		return "", fmt.Errorf("s.api.CreateEvent -> %w", err)
	}

	s.queries.Apply(cache.MutationCreateEvent, "")

	return id, nil
}

// UpdateEventStatus transitions an event (publish, cancel, complete).
func (s *EventService) UpdateEventStatus(ctx context.Context, id string, status domain.EventStatus) error {
	req := request.UpdateEventStatusRequest{Status: status}
	if err := req.Validate(); err != nil {
		return err
	}

	if err := s.api.UpdateEventStatus(ctx, id, req); err != nil {
		return fmt.Errorf("s.api.UpdateEventStatus -> %w", err)
	}

	s.queries.Apply(cache.MutationUpdateEventStatus, id)

	return nil
}

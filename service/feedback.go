package service

import (
	"context"
	"fmt"

	"github.com/aston-csic/csic-go/cache"
	"github.com/aston-csic/csic-go/domain"
	"github.com/aston-csic/csic-go/rest/request"
)

type FeedbackAPI interface {
	EventFeedback(ctx context.Context, eventID string) ([]domain.EventFeedback, error)
	MyFeedback(ctx context.Context) ([]domain.EventFeedback, error)
	CreateFeedback(ctx context.Context, req request.CreateFeedbackRequest) (string, error)
	UpdateFeedback(ctx context.Context, req request.UpdateFeedbackRequest) error
	DeleteFeedback(ctx context.Context, id string) error
}

type FeedbackService struct {
	api     FeedbackAPI
	queries *cache.Store
}

func NewFeedbackService(api FeedbackAPI, queries *cache.Store) *FeedbackService {
	return &FeedbackService{
		api:     api,
		queries: queries,
	}
}

func (s *FeedbackService) EventFeedback(ctx context.Context, eventID string) ([]domain.EventFeedback, error) {
	key := cache.EventFeedbackKey(eventID)
	if feedback, ok := cache.GetAs[[]domain.EventFeedback](s.queries, key); ok {
		return feedback, nil
	}

	feedback, err := s.api.EventFeedback(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("s.api.EventFeedback -> %w", err)
	}

	s.queries.Set(key, feedback)

	return feedback, nil
}

func (s *FeedbackService) MyFeedback(ctx context.Context) ([]domain.EventFeedback, error) {
	if feedback, ok := cache.GetAs[[]domain.EventFeedback](s.queries, cache.KeyMyFeedback); ok {
		return feedback, nil
	}

	feedback, err := s.api.MyFeedback(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.api.MyFeedback -> %w", err)
	}

	s.queries.Set(cache.KeyMyFeedback, feedback)

	return feedback, nil
}

// MyFeedbackForEvent returns the caller's feedback on one event. The server
// does not enforce one row per user and event, so when several exist the
// pick is deterministic: most recent createdAt, ties broken by larger id.
func (s *FeedbackService) MyFeedbackForEvent(ctx context.Context, eventID, userID string) (*domain.EventFeedback, error) {
	feedback, err := s.EventFeedback(ctx, eventID)
	if err != nil {
		return nil, err
	}

	var picked *domain.EventFeedback
	for i := range feedback {
		f := &feedback[i]
		if f.UserID != userID {
			continue
		}
		if picked == nil ||
			f.CreatedAt.After(picked.CreatedAt) ||
			(f.CreatedAt.Equal(picked.CreatedAt) && f.ID > picked.ID) {
			picked = f
		}
	}

	return picked, nil
}

func (s *FeedbackService) CreateFeedback(ctx context.Context, req request.CreateFeedbackRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	id, err := s.api.CreateFeedback(ctx, req)
	if err != nil {
		return "", fmt.Errorf("s.api.CreateFeedback -> %w", err)
	}

	s.queries.Apply(cache.MutationCreateFeedback, req.EventID)

	return id, nil
}

func (s *FeedbackService) UpdateFeedback(ctx context.Context, eventID string, req request.UpdateFeedbackRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if err := s.api.UpdateFeedback(ctx, req); err != nil {
		return fmt.Errorf("s.api.UpdateFeedback -> %w", err)
	}

	s.queries.Apply(cache.MutationUpdateFeedback, eventID)

	return nil
}

func (s *FeedbackService) DeleteFeedback(ctx context.Context, id, eventID string) error {
	if err := s.api.DeleteFeedback(ctx, id); err != nil {
		return fmt.Errorf("s.api.DeleteFeedback -> %w", err)
	}

	s.queries.Apply(cache.MutationDeleteFeedback, eventID)

	return nil
}

package service

import (
	"context"
	"fmt"

	"github.com/aston-csic/csic-go/cache"
	"github.com/aston-csic/csic-go/domain"
	"github.com/aston-csic/csic-go/rest/request"
)

type ContactAPI interface {
	SubmitContactMessage(ctx context.Context, req request.ContactMessageRequest) (string, error)
	ContactMessages(ctx context.Context, unreadOnly bool) ([]domain.ContactMessage, error)
	MarkMessageRead(ctx context.Context, id string) error
}

type ContactService struct {
	api     ContactAPI
	queries *cache.Store
}

func NewContactService(api ContactAPI, queries *cache.Store) *ContactService {
	return &ContactService{
		api:     api,
		queries: queries,
	}
}

// Submit sends a contact message; this is the one operation open to
// anonymous callers.
func (s *ContactService) Submit(ctx context.Context, req request.ContactMessageRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	id, err := s.api.SubmitContactMessage(ctx, req)
	if err != nil {
		return "", fmt.Errorf("s.api.SubmitContactMessage -> %w", err)
	}

	s.queries.Apply(cache.MutationSubmitContact, "")

	return id, nil
}

// Messages lists inbound messages for admins. The unread-only filter is
// parameterized and bypasses the cache.
func (s *ContactService) Messages(ctx context.Context, unreadOnly bool) ([]domain.ContactMessage, error) {
	if unreadOnly {
		messages, err := s.api.ContactMessages(ctx, true)
		if err != nil {
			return nil, fmt.Errorf("s.api.ContactMessages -> %w", err)
		}

		return messages, nil
	}

	if messages, ok := cache.GetAs[[]domain.ContactMessage](s.queries, cache.KeyContactMessages); ok {
		return messages, nil
	}

	messages, err := s.api.ContactMessages(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("s.api.ContactMessages -> %w", err)
	}

	s.queries.Set(cache.KeyContactMessages, messages)

	return messages, nil
}

func (s *ContactService) MarkRead(ctx context.Context, id string) error {
	if err := s.api.MarkMessageRead(ctx, id); err != nil {
		return fmt.Errorf("s.api.MarkMessageRead -> %w", err)
	}

	s.queries.Apply(cache.MutationMarkMessageRead, "")

	return nil
}

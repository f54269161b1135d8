package service

import (
	"context"
	"fmt"

	"github.com/aston-csic/csic-go/cache"
	"github.com/aston-csic/csic-go/domain"
	"github.com/aston-csic/csic-go/rest/request"
)

type UserAPI interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	CreateUser(ctx context.Context, req request.CreateUserRequest) (string, error)
	UpdateUserRole(ctx context.Context, req request.UpdateUserRoleRequest) error
	DeleteUser(ctx context.Context, id string) error
}

type UserService struct {
	api     UserAPI
	queries *cache.Store
}

func NewUserService(api UserAPI, queries *cache.Store) *UserService {
	return &UserService{
		api:     api,
		queries: queries,
	}
}

func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	if users, ok := cache.GetAs[[]domain.User](s.queries, cache.KeyUsers); ok {
		return users, nil
	}

	users, err := s.api.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.api.ListUsers -> %w", err)
	}

	s.queries.Set(cache.KeyUsers, users)

	return users, nil
}

func (s *UserService) CreateUser(ctx context.Context, req request.CreateUserRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	id, err := s.api.CreateUser(ctx, req)
	if err != nil {
		return "", fmt.Errorf("s.api.CreateUser -> %w", err)
	}

	s.queries.Apply(cache.MutationCreateUser, "")

	return id, nil
}

func (s *UserService) UpdateUserRole(ctx context.Context, userID string, role domain.Role) error {
	req := request.UpdateUserRoleRequest{UserID: userID, Role: role}
	if err := req.Validate(); err != nil {
		return err
	}

	if err := s.api.UpdateUserRole(ctx, req); err != nil {
		return fmt.Errorf("s.api.UpdateUserRole -> %w", err)
	}

	s.queries.Apply(cache.MutationUpdateUserRole, "")

	return nil
}

func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	if err := s.api.DeleteUser(ctx, id); err != nil {
		return fmt.Errorf("s.api.DeleteUser -> %w", err)
	}

	s.queries.Apply(cache.MutationDeleteUser, "")

	return nil
}

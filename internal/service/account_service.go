package service

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"brnaccounts/internal/auth"
	"brnaccounts/internal/cache"
	apperrors "brnaccounts/internal/errors"
	"brnaccounts/internal/model"
	"brnaccounts/internal/repository"
	"brnaccounts/internal/validate"
)

const userCacheTTL = 5 * time.Minute

// AccountService exposes the signup, login, update and delete pipelines over
// normalized field mappings.
type AccountService interface {
	Signup(ctx context.Context, fields map[string]string) (string, error)
	Login(ctx context.Context, email, password string) (token string, user *model.User, err error)
	UpdateProfile(ctx context.Context, fields map[string]string) error
	DeleteProfile(ctx context.Context, email string) error
}

type accountService struct {
	repo  repository.UserRepository
	jwt   *auth.JWTService
	cache *cache.Client
}

// NewAccountService builds an AccountService with explicit dependencies.
func NewAccountService(repo repository.UserRepository, jwt *auth.JWTService, cache *cache.Client) AccountService {
	return &accountService{repo: repo, jwt: jwt, cache: cache}
}

func (s *accountService) cacheKey(email string) string {
	return fmt.Sprintf("user:%s", email)
}

// findByEmail is a cache-aside read; cached documents use bson so the stored
// hash survives the round trip.
func (s *accountService) findByEmail(ctx context.Context, email string) (*model.User, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(email)); data != nil {
		var cached model.User
		if err := bson.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if payload, err := bson.Marshal(user); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(email), payload, userCacheTTL)
	}
	return user, nil
}

// Signup validates the submission, hashes the password and inserts the
// document. The returned id is whatever identity the store assigned.
func (s *accountService) Signup(ctx context.Context, fields map[string]string) (string, error) {
	user, err := validate.User(fields)
	if err != nil {
		return "", err
	}

	hashed, err := auth.HashPassword(user.Password)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	user.Password = hashed

	id, err := s.repo.Insert(ctx, user)
	if err != nil {
		return "", fmt.Errorf("insert user: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(user.Email))
	return id, nil
}

// Login verifies credentials and issues a bearer token. The returned user
// has its password hash stripped.
func (s *accountService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	user, err := s.findByEmail(ctx, email)
	if err == apperrors.ErrNotFound {
		return "", nil, apperrors.ErrInvalidUsername
	}
	if err != nil {
		return "", nil, fmt.Errorf("find user: %w", err)
	}

	if !auth.CheckPassword(password, user.Password) {
		return "", nil, apperrors.ErrInvalidPassword
	}

	token, err := s.jwt.Issue(user.ID.Hex(), user.Email)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}

	user.Password = ""
	return token, user, nil
}

// UpdateProfile overwrites the stored document for the submitted email,
// retaining the stored upload reference and password hash per the merge
// policy. The lookup-then-update pair is not atomic; a concurrent update to
// the same email is last-write-wins.
func (s *accountService) UpdateProfile(ctx context.Context, fields map[string]string) error {
	email := fields["email"]

	existing, err := s.repo.FindByEmail(ctx, email)
	if err == apperrors.ErrNotFound {
		return apperrors.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("find user: %w", err)
	}

	merged, skipHash := applyMergePolicy(fields, existing)

	user, err := validate.User(merged)
	if err != nil {
		return err
	}

	if skipHash {
		user.Password = existing.Password
	} else {
		hashed, err := auth.HashPassword(user.Password)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}
		user.Password = hashed
	}

	matched, err := s.repo.UpdateByEmail(ctx, email, user)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	if matched == 0 {
		return apperrors.ErrUpdateConflict
	}

	_ = s.cache.Delete(ctx, s.cacheKey(email))
	if user.Email != email {
		_ = s.cache.Delete(ctx, s.cacheKey(user.Email))
	}
	return nil
}

// DeleteProfile hard-deletes the document for the given email.
func (s *accountService) DeleteProfile(ctx context.Context, email string) error {
	if _, err := s.repo.FindByEmail(ctx, email); err != nil {
		if err == apperrors.ErrNotFound {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("find user: %w", err)
	}

	deleted, err := s.repo.DeleteByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if deleted == 0 {
		return apperrors.ErrNotFound
	}

	_ = s.cache.Delete(ctx, s.cacheKey(email))
	return nil
}

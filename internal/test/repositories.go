package test

import (
	"context"
	"sync"
	"time"

	domainErrors "github.com/avdeyev/churnscope/internal/domain/errors"
	"github.com/avdeyev/churnscope/internal/domain/model"
)

// UserRepositoryStub is an in-memory credential repository for tests.
type UserRepositoryStub struct {
	mu     sync.Mutex
	nextID int64
	users  map[string]*model.User

	CreateFn     func(context.Context, string, string) (*model.User, error)
	GetByLoginFn func(context.Context, string) (*model.User, error)
}

// NewUserRepositoryStub creates an empty stub repository.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{users: make(map[string]*model.User)}
}

// Create stores a credential, enforcing login uniqueness.
func (r *UserRepositoryStub) Create(ctx context.Context, login, passwordHash string) (*model.User, error) {
	if r.CreateFn != nil {
		return r.CreateFn(ctx, login, passwordHash)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[login]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	r.nextID++
	user := &model.User{ID: r.nextID, Login: login, PasswordHash: passwordHash, CreatedAt: time.Now()}
	r.users[login] = user
	return user, nil
}

// GetByLogin returns the stored credential for login.
func (r *UserRepositoryStub) GetByLogin(ctx context.Context, login string) (*model.User, error) {
	if r.GetByLoginFn != nil {
		return r.GetByLoginFn(ctx, login)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	user, exists := r.users[login]
	if !exists {
		return nil, domainErrors.ErrNotFound
	}
	return user, nil
}

// GetByID returns the stored credential with the given identifier.
func (r *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

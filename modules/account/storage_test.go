package account_test

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/dmitrymomot/helo/modules/account"
)

// memoryStorage is an in-memory account.Storage for tests.
type memoryStorage struct {
	mu     sync.Mutex
	nextID int64
	users  []account.User
}

func newMemoryStorage() *memoryStorage {
	return &memoryStorage{}
}

func (s *memoryStorage) CreateUser(_ context.Context, in account.NewUser) (*account.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == in.Email {
			return nil, account.ErrEmailAlreadyExists
		}
	}

	s.nextID++
	now := time.Now()
	u := account.User{
		ID:         s.nextID,
		Nome:       in.Nome,
		Email:      in.Email,
		Senha:      in.Senha,
		Disciplina: in.Disciplina,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	s.users = append(s.users, u)
	return &u, nil
}

func (s *memoryStorage) find(match func(account.User) bool) (int, bool) {
	for i, u := range s.users {
		if match(u) {
			return i, true
		}
	}
	return 0, false
}

func (s *memoryStorage) GetUserByEmail(_ context.Context, email string) (*account.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.find(func(u account.User) bool { return u.Email == email })
	if !ok {
		return nil, account.ErrUserNotFound
	}
	u := s.users[i]
	return &u, nil
}

func (s *memoryStorage) GetUserByID(_ context.Context, id int64) (*account.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.find(func(u account.User) bool { return u.ID == id })
	if !ok {
		return nil, account.ErrUserNotFound
	}
	u := s.users[i]
	return &u, nil
}

func (s *memoryStorage) ListUsers(context.Context) ([]account.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]account.User{}, s.users...), nil
}

func (s *memoryStorage) ListEmails(context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	emails := make([]string, 0, len(s.users))
	for _, u := range s.users {
		emails = append(emails, u.Email)
	}
	return emails, nil
}

func (s *memoryStorage) UpdateUser(_ context.Context, id int64, p account.UserPatch) (*account.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.find(func(u account.User) bool { return u.ID == id })
	if !ok {
		return nil, account.ErrUserNotFound
	}
	if p.Email != nil {
		if j, taken := s.find(func(u account.User) bool { return u.Email == *p.Email }); taken && j != i {
			return nil, errors.New("duplicate key value violates unique constraint")
		}
	}

	u := &s.users[i]
	if p.Nome != nil {
		u.Nome = *p.Nome
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Senha != nil {
		u.Senha = *p.Senha
	}
	if p.Disciplina != nil {
		u.Disciplina = *p.Disciplina
	}
	u.UpdatedAt = time.Now()
	out := *u
	return &out, nil
}

func (s *memoryStorage) DeleteUser(_ context.Context, id int64) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.find(func(u account.User) bool { return u.ID == id })
	if !ok {
		return "", account.ErrUserNotFound
	}
	nome := s.users[i].Nome
	s.users = append(s.users[:i], s.users[i+1:]...)
	return nome, nil
}

// MockStorage is a testify mock of account.Storage.
type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) CreateUser(ctx context.Context, user account.NewUser) (*account.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.User), args.Error(1)
}

func (m *MockStorage) GetUserByEmail(ctx context.Context, email string) (*account.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.User), args.Error(1)
}

func (m *MockStorage) GetUserByID(ctx context.Context, id int64) (*account.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.User), args.Error(1)
}

func (m *MockStorage) ListUsers(ctx context.Context) ([]account.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]account.User), args.Error(1)
}

func (m *MockStorage) ListEmails(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockStorage) UpdateUser(ctx context.Context, id int64, patch account.UserPatch) (*account.User, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.User), args.Error(1)
}

func (m *MockStorage) DeleteUser(ctx context.Context, id int64) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

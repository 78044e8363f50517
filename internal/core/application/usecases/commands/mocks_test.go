package commands_test

import (
	"context"

	"fastfeet/internal/core/application/usecases/commands"
	"fastfeet/internal/core/domain/model/recipient"
	"fastfeet/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockRecipientRepository struct{ mock.Mock }

func (m *MockRecipientRepository) Add(ctx context.Context, r *recipient.Recipient) (*recipient.Recipient, error) {
	args := m.Called(ctx, r)
	created, _ := args.Get(0).(*recipient.Recipient)
	return created, args.Error(1)
}

func (m *MockRecipientRepository) Update(ctx context.Context, r *recipient.Recipient) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRecipientRepository) Get(ctx context.Context, id int64) (*recipient.Recipient, error) {
	args := m.Called(ctx, id)
	found, _ := args.Get(0).(*recipient.Recipient)
	return found, args.Error(1)
}

func (m *MockRecipientRepository) GetForUpdate(ctx context.Context, id int64) (*recipient.Recipient, error) {
	args := m.Called(ctx, id)
	found, _ := args.Get(0).(*recipient.Recipient)
	return found, args.Error(1)
}

func (m *MockRecipientRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockRecipientUoW struct{ mock.Mock }

func (m *MockRecipientUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRecipientUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRecipientUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRecipientUoW) RecipientRepository() ports.RecipientRepository {
	args := m.Called()
	return args.Get(0).(ports.RecipientRepository)
}

type MockRecipientUoWFactory struct{ mock.Mock }

func (m *MockRecipientUoWFactory) Create() commands.RecipientUoW {
	args := m.Called()
	return args.Get(0).(commands.RecipientUoW)
}

type MockRecipientCache struct{ mock.Mock }

func (m *MockRecipientCache) Get(ctx context.Context, key string) ([]byte, bool) {
	args := m.Called(ctx, key)
	payload, _ := args.Get(0).([]byte)
	return payload, args.Bool(1)
}

func (m *MockRecipientCache) Version(ctx context.Context, key string) (int64, bool) {
	args := m.Called(ctx, key)
	return args.Get(0).(int64), args.Bool(1)
}

func (m *MockRecipientCache) SetIfVersion(ctx context.Context, key string, version int64, payload []byte) {
	m.Called(ctx, key, version, payload)
}

func (m *MockRecipientCache) Invalidate(ctx context.Context, key string) {
	m.Called(ctx, key)
}

package queries_test

import (
	"context"

	"github.com/stretchr/testify/mock"
)

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

package http_test

import (
	"context"

	"fastfeet/internal/core/application/usecases/commands"
	"fastfeet/internal/core/application/usecases/queries"
	"fastfeet/internal/core/domain/model/recipient"

	"github.com/stretchr/testify/mock"
)

type MockCreateRecipientHandler struct{ mock.Mock }

func (m *MockCreateRecipientHandler) Handle(
	ctx context.Context,
	cmd commands.CreateRecipientCommand,
) (*recipient.Recipient, error) {
	args := m.Called(ctx, cmd)
	r, _ := args.Get(0).(*recipient.Recipient)
	return r, args.Error(1)
}

type MockUpdateRecipientHandler struct{ mock.Mock }

func (m *MockUpdateRecipientHandler) Handle(
	ctx context.Context,
	cmd commands.UpdateRecipientCommand,
) (*recipient.Recipient, error) {
	args := m.Called(ctx, cmd)
	r, _ := args.Get(0).(*recipient.Recipient)
	return r, args.Error(1)
}

type MockDeleteRecipientHandler struct{ mock.Mock }

func (m *MockDeleteRecipientHandler) Handle(ctx context.Context, cmd commands.DeleteRecipientCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockGetRecipientHandler struct{ mock.Mock }

func (m *MockGetRecipientHandler) Handle(
	ctx context.Context,
	query queries.GetRecipientQuery,
) (queries.GetRecipientQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.GetRecipientQueryResponse), args.Error(1)
}

type MockListRecipientsHandler struct{ mock.Mock }

func (m *MockListRecipientsHandler) Handle(
	ctx context.Context,
	query queries.ListRecipientsQuery,
) (queries.ListRecipientsQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.ListRecipientsQueryResponse), args.Error(1)
}

type MockListDeliverymanDeliveriesHandler struct{ mock.Mock }

func (m *MockListDeliverymanDeliveriesHandler) Handle(
	ctx context.Context,
	query queries.ListDeliverymanDeliveriesQuery,
) (queries.ListDeliverymanDeliveriesQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.ListDeliverymanDeliveriesQueryResponse), args.Error(1)
}

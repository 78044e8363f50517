package queries_test

import (
	"context"

	postgresadapter "fastfeet/internal/adapters/out/postgres"
	"fastfeet/internal/adapters/out/rediscache"
	"fastfeet/internal/core/application/usecases/commands"
	"fastfeet/internal/core/application/usecases/queries"
	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/core/domain/model/recipient"
	"fastfeet/internal/pkg/errs"
)

type recipientUoWFactory func() commands.RecipientUoW

func (f recipientUoWFactory) Create() commands.RecipientUoW {
	return f()
}

func (suite *QueryHandlersIntegrationTestSuite) uowFactory() commands.RecipientUoWFactory {
	factory := postgresadapter.NewGormUnitOfWorkFactory(suite.db)
	return recipientUoWFactory(func() commands.RecipientUoW {
		return factory.Create()
	})
}

func (suite *QueryHandlersIntegrationTestSuite) getRecipient(id int64) (queries.GetRecipientQueryResponse, error) {
	query, err := queries.NewGetRecipientQuery(id)
	suite.Require().NoError(err)
	return queries.NewGetRecipientQueryHandler(suite.db, rediscache.NopCache{}).Handle(context.Background(), query)
}

func (suite *QueryHandlersIntegrationTestSuite) TestRecipientLifecycle_CreateReadUpdateDelete() {
	ctx := context.Background()
	cache := rediscache.NopCache{}

	createCmd, err := commands.NewCreateRecipientCommand("Acme", kernel.AddressFields{
		Street: "Main St",
		State:  "CA",
		City:   "LA",
		CEP:    "90001",
	})
	suite.Require().NoError(err)

	create := commands.NewCreateRecipientCommandHandler(suite.uowFactory())
	created, err := create.Handle(ctx, createCmd)
	suite.Require().NoError(err)
	suite.Require().True(created.IsPersisted())

	found, err := suite.getRecipient(created.ID())
	suite.Require().NoError(err)
	suite.Equal("Acme", found.Name)
	suite.Equal("Main St", found.Street)
	suite.Equal("CA", found.State)
	suite.Equal("LA", found.City)
	suite.Equal("90001", found.CEP)
	suite.Nil(found.Address)
	suite.Nil(found.Number)
	suite.Nil(found.Complement)

	update := commands.NewUpdateRecipientCommandHandler(suite.uowFactory(), cache)

	patchCmd, err := commands.NewUpdateRecipientCommand(created.ID(), recipient.Patch{
		Address: kernel.AddressPatch{City: ptr("San Diego")},
	})
	suite.Require().NoError(err)
	_, err = update.Handle(ctx, patchCmd)
	suite.Require().NoError(err)

	patched, err := suite.getRecipient(created.ID())
	suite.Require().NoError(err)
	suite.Equal("San Diego", patched.City)
	suite.Equal("Acme", patched.Name)
	suite.Equal("Main St", patched.Street)
	suite.Equal("90001", patched.CEP)

	emptyCmd, err := commands.NewUpdateRecipientCommand(created.ID(), recipient.Patch{})
	suite.Require().NoError(err)
	_, err = update.Handle(ctx, emptyCmd)
	suite.Require().NoError(err)

	untouched, err := suite.getRecipient(created.ID())
	suite.Require().NoError(err)
	suite.True(patched.UpdatedAt.Equal(untouched.UpdatedAt))

	deleteCmd, err := commands.NewDeleteRecipientCommand(created.ID())
	suite.Require().NoError(err)
	remove := commands.NewDeleteRecipientCommandHandler(suite.uowFactory(), cache)
	suite.Require().NoError(remove.Handle(ctx, deleteCmd))

	_, err = suite.getRecipient(created.ID())
	suite.Require().Error(err)
	suite.True(errs.IsNotFound(err))

	suite.True(errs.IsNotFound(remove.Handle(ctx, deleteCmd)))
}

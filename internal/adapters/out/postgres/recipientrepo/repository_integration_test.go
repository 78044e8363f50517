package recipientrepo_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"fastfeet/internal/adapters/out/postgres/postgrestest"
	"fastfeet/internal/adapters/out/postgres/recipientrepo"
	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/core/domain/model/recipient"
	"fastfeet/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

func ptr(s string) *string { return &s }

// RecipientRepositoryIntegrationTestSuite verifies recipient persistence against PostgreSQL.
type RecipientRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *postgrestest.Database
	repository *recipientrepo.GormRecipientRepository
}

func (suite *RecipientRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := postgrestest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
}

func (suite *RecipientRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())
	suite.repository = recipientrepo.NewGormRecipientRepository(suite.database.DB)
}

func (suite *RecipientRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *RecipientRepositoryIntegrationTestSuite) newRecipient(name string, fields kernel.AddressFields) *recipient.Recipient {
	address, err := kernel.NewAddress(fields)
	suite.Require().NoError(err)

	r, err := recipient.NewRecipient(name, address)
	suite.Require().NoError(err)
	return r
}

func acme() kernel.AddressFields {
	return kernel.AddressFields{
		Street: "Main St",
		City:   "LA",
		State:  "CA",
		CEP:    "90001",
	}
}

func (suite *RecipientRepositoryIntegrationTestSuite) TestAdd_AssignsIdentityAndTimestamps() {
	ctx := context.Background()

	created, err := suite.repository.Add(ctx, suite.newRecipient("Acme", acme()))
	suite.Require().NoError(err)

	suite.Positive(created.ID())
	suite.True(created.IsPersisted())
	suite.False(created.CreatedAt().IsZero())
	suite.False(created.UpdatedAt().IsZero())
}

func (suite *RecipientRepositoryIntegrationTestSuite) TestAdd_RoundTripsOptionalFields() {
	ctx := context.Background()

	withOptional := acme()
	withOptional.Line = ptr("Building 7")
	withOptional.Number = ptr("12")

	created, err := suite.repository.Add(ctx, suite.newRecipient("Acme", withOptional))
	suite.Require().NoError(err)

	found, err := suite.repository.Get(ctx, created.ID())
	suite.Require().NoError(err)

	suite.Equal("Acme", found.Name())
	suite.Equal(ptr("Building 7"), found.Address().Line())
	suite.Equal(ptr("12"), found.Address().Number())
	suite.Nil(found.Address().Complement())
	suite.Equal("Main St", found.Address().Street())
	suite.Equal("90001", found.Address().CEP())
}

func (suite *RecipientRepositoryIntegrationTestSuite) TestAdd_InvalidAggregate() {
	_, err := suite.repository.Add(context.Background(), &recipient.Recipient{})

	suite.Require().ErrorIs(err, recipient.ErrRecipientIsNotConstructed)
}

func (suite *RecipientRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), 42)

	suite.Require().Error(err)
	suite.True(errs.IsNotFound(err))
	suite.Contains(err.Error(), "42")
}

func (suite *RecipientRepositoryIntegrationTestSuite) TestUpdate_ChangesOnlyPatchedFields() {
	ctx := context.Background()

	created, err := suite.repository.Add(ctx, suite.newRecipient("Acme", acme()))
	suite.Require().NoError(err)

	time.Sleep(5 * time.Millisecond)

	suite.Require().NoError(created.Update(recipient.Patch{
		Address: kernel.AddressPatch{City: ptr("San Diego"), Complement: ptr("Suite 3")},
	}))
	suite.Require().NoError(suite.repository.Update(ctx, created))

	found, err := suite.repository.Get(ctx, created.ID())
	suite.Require().NoError(err)

	suite.Equal("Acme", found.Name())
	suite.Equal("San Diego", found.Address().City())
	suite.Equal(ptr("Suite 3"), found.Address().Complement())
	suite.Equal("Main St", found.Address().Street())
	suite.True(found.UpdatedAt().After(created.CreatedAt()))
	suite.WithinDuration(created.CreatedAt(), found.CreatedAt(), time.Millisecond)
}

func (suite *RecipientRepositoryIntegrationTestSuite) TestUpdate_ClearsOptionalField() {
	ctx := context.Background()

	fields := acme()
	fields.Number = ptr("12")
	created, err := suite.repository.Add(ctx, suite.newRecipient("Acme", fields))
	suite.Require().NoError(err)

	suite.Require().NoError(created.Update(recipient.Patch{
		Address: kernel.AddressPatch{Number: ptr("")},
	}))
	suite.Require().NoError(suite.repository.Update(ctx, created))

	found, err := suite.repository.Get(ctx, created.ID())
	suite.Require().NoError(err)
	suite.Equal(created.Address().Number(), found.Address().Number())
}

func (suite *RecipientRepositoryIntegrationTestSuite) TestUpdate_MissingRow() {
	ctx := context.Background()

	created, err := suite.repository.Add(ctx, suite.newRecipient("Acme", acme()))
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Delete(ctx, created.ID()))

	err = suite.repository.Update(ctx, created)

	suite.True(errs.IsNotFound(err))
}

func (suite *RecipientRepositoryIntegrationTestSuite) TestUpdate_UnpersistedAggregate() {
	err := suite.repository.Update(context.Background(), suite.newRecipient("Acme", acme()))

	suite.True(errs.IsValidation(err))
}

func (suite *RecipientRepositoryIntegrationTestSuite) TestDelete() {
	ctx := context.Background()

	created, err := suite.repository.Add(ctx, suite.newRecipient("Acme", acme()))
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Delete(ctx, created.ID()))

	_, err = suite.repository.Get(ctx, created.ID())
	suite.True(errs.IsNotFound(err))

	err = suite.repository.Delete(ctx, created.ID())
	suite.True(errs.IsNotFound(err), "second delete reports not found")
}

func (suite *RecipientRepositoryIntegrationTestSuite) TestGetForUpdate_SerialisesWriters() {
	ctx := context.Background()
	db := suite.database.DB

	created, err := suite.repository.Add(ctx, suite.newRecipient("Acme", acme()))
	suite.Require().NoError(err)

	tx := db.WithContext(ctx).Begin()
	suite.Require().NoError(tx.Error)

	_, err = recipientrepo.NewGormRecipientRepository(tx).GetForUpdate(ctx, created.ID())
	suite.Require().NoError(err)

	var (
		wg        sync.WaitGroup
		deleteErr error
		deletedAt time.Time
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		deleteErr = recipientrepo.NewGormRecipientRepository(db).Delete(ctx, created.ID())
		deletedAt = time.Now()
	}()

	time.Sleep(200 * time.Millisecond)
	committedAt := time.Now()
	suite.Require().NoError(recipientrepo.NewGormRecipientRepository(tx).Delete(ctx, created.ID()))
	suite.Require().NoError(tx.Commit().Error)
	wg.Wait()

	suite.True(deletedAt.After(committedAt), "concurrent delete waits for the lock holder")
	suite.True(errs.IsNotFound(deleteErr), "the losing writer observes not found")
}

func TestRecipientRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(RecipientRepositoryIntegrationTestSuite))
}

package cmd

import (
	"log/slog"

	httpadapter "fastfeet/internal/adapters/in/http"
	"fastfeet/internal/adapters/out/postgres"
	"fastfeet/internal/core/application/usecases/commands"
	"fastfeet/internal/core/application/usecases/queries"
	"fastfeet/internal/core/ports"
	"fastfeet/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	cache      ports.RecipientCache
	logger     *slog.Logger
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, cache ports.RecipientCache, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		cache:      cache,
		logger:     logger,
	}
}

func (c *CompositionRoot) recipientUoWFactory() commands.RecipientUoWFactory {
	return FuncRecipientUoWFactory(func() commands.RecipientUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateRecipientCommandHandler() *commands.CreateRecipientCommandHandler {
	h := commands.NewCreateRecipientCommandHandler(c.recipientUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateUpdateRecipientCommandHandler() *commands.UpdateRecipientCommandHandler {
	h := commands.NewUpdateRecipientCommandHandler(c.recipientUoWFactory(), c.cache)
	return &h
}

func (c *CompositionRoot) CreateDeleteRecipientCommandHandler() *commands.DeleteRecipientCommandHandler {
	h := commands.NewDeleteRecipientCommandHandler(c.recipientUoWFactory(), c.cache)
	return &h
}

func (c *CompositionRoot) CreateGetRecipientQueryHandler() queries.GetRecipientQueryHandler {
	return queries.NewGetRecipientQueryHandler(c.gormDB, c.cache)
}

func (c *CompositionRoot) CreateListRecipientsQueryHandler() queries.ListRecipientsQueryHandler {
	return queries.NewListRecipientsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListDeliverymanDeliveriesQueryHandler() queries.ListDeliverymanDeliveriesQueryHandler {
	return queries.NewListDeliverymanDeliveriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDeliveryBacklogQueryHandler() queries.GetDeliveryBacklogQueryHandler {
	return queries.NewGetDeliveryBacklogQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateServer() *httpadapter.Server {
	return httpadapter.NewServer(
		c.CreateCreateRecipientCommandHandler(),
		c.CreateUpdateRecipientCommandHandler(),
		c.CreateDeleteRecipientCommandHandler(),
		c.CreateGetRecipientQueryHandler(),
		c.CreateListRecipientsQueryHandler(),
		c.CreateListDeliverymanDeliveriesQueryHandler(),
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateGetDeliveryBacklogQueryHandler(),
		c.configs.Jobs.DeliveryBacklogSchedule,
		c.logger,
	)
}

type FuncRecipientUoWFactory func() commands.RecipientUoW

func (f FuncRecipientUoWFactory) Create() commands.RecipientUoW {
	return f()
}

package http

import (
	"context"
	"net/http"

	"fastfeet/internal/core/application/usecases/commands"
	"fastfeet/internal/core/application/usecases/queries"
	"fastfeet/internal/core/domain/model/delivery"
	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/core/domain/model/recipient"
	"fastfeet/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// Use case contracts the server depends on. Command handlers are passed by
// pointer, query handlers by value.
type (
	CreateRecipientHandler interface {
		Handle(ctx context.Context, cmd commands.CreateRecipientCommand) (*recipient.Recipient, error)
	}

	UpdateRecipientHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateRecipientCommand) (*recipient.Recipient, error)
	}

	DeleteRecipientHandler interface {
		Handle(ctx context.Context, cmd commands.DeleteRecipientCommand) error
	}

	GetRecipientHandler interface {
		Handle(ctx context.Context, query queries.GetRecipientQuery) (queries.GetRecipientQueryResponse, error)
	}

	ListRecipientsHandler interface {
		Handle(ctx context.Context, query queries.ListRecipientsQuery) (queries.ListRecipientsQueryResponse, error)
	}

	ListDeliverymanDeliveriesHandler interface {
		Handle(
			ctx context.Context,
			query queries.ListDeliverymanDeliveriesQuery,
		) (queries.ListDeliverymanDeliveriesQueryResponse, error)
	}
)

var _ servers.ServerInterface = (*Server)(nil)

// Server implements servers.ServerInterface on top of the application use cases.
// Handlers return domain errors unchanged; ErrorHandler turns them into responses.
type Server struct {
	// Command handlers
	createRecipientHandler CreateRecipientHandler
	updateRecipientHandler UpdateRecipientHandler
	deleteRecipientHandler DeleteRecipientHandler

	// Query handlers
	getRecipientHandler              GetRecipientHandler
	listRecipientsHandler            ListRecipientsHandler
	listDeliverymanDeliveriesHandler ListDeliverymanDeliveriesHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createRecipientHandler CreateRecipientHandler,
	updateRecipientHandler UpdateRecipientHandler,
	deleteRecipientHandler DeleteRecipientHandler,
	getRecipientHandler GetRecipientHandler,
	listRecipientsHandler ListRecipientsHandler,
	listDeliverymanDeliveriesHandler ListDeliverymanDeliveriesHandler,
) *Server {
	return &Server{
		createRecipientHandler:           createRecipientHandler,
		updateRecipientHandler:           updateRecipientHandler,
		deleteRecipientHandler:           deleteRecipientHandler,
		getRecipientHandler:              getRecipientHandler,
		listRecipientsHandler:            listRecipientsHandler,
		listDeliverymanDeliveriesHandler: listDeliverymanDeliveriesHandler,
	}
}

// ListDeliverymanDeliveries handles GET /api/v1/deliverymen/:id/deliveries.
func (s *Server) ListDeliverymanDeliveries(
	ctx echo.Context,
	id servers.ID,
	params servers.ListDeliverymanDeliveriesParams,
) error {
	pagination, err := paginationFrom(params.Page, params.Paginate)
	if err != nil {
		return err
	}

	status := delivery.DefaultStatus
	if params.Status != nil {
		status = delivery.ParseStatus(*params.Status)
	}

	query, err := queries.NewListDeliverymanDeliveriesQuery(id, status, pagination)
	if err != nil {
		return err
	}

	page, err := s.listDeliverymanDeliveriesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, toDeliveryPage(page))
}

// ListRecipients handles GET /api/v1/recipients.
func (s *Server) ListRecipients(ctx echo.Context, params servers.ListRecipientsParams) error {
	pagination, err := paginationFrom(params.Page, params.Paginate)
	if err != nil {
		return err
	}

	var name string
	if params.Name != nil {
		name = *params.Name
	}

	query, err := queries.NewListRecipientsQuery(name, pagination)
	if err != nil {
		return err
	}

	page, err := s.listRecipientsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, toRecipientPage(page))
}

// CreateRecipient handles POST /api/v1/recipients.
func (s *Server) CreateRecipient(ctx echo.Context) error {
	var body servers.CreateRecipientJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return err
	}

	cmd, err := commands.NewCreateRecipientCommand(body.Name, kernel.AddressFields{
		Line:       body.Address,
		Street:     body.Street,
		Number:     body.Number,
		Complement: body.Complement,
		City:       body.City,
		State:      body.State,
		CEP:        body.Cep,
	})
	if err != nil {
		return err
	}

	created, err := s.createRecipientHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, toSavedRecipient(created))
}

// GetRecipient handles GET /api/v1/recipients/:id.
func (s *Server) GetRecipient(ctx echo.Context, id servers.ID) error {
	query, err := queries.NewGetRecipientQuery(id)
	if err != nil {
		return err
	}

	found, err := s.getRecipientHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, toRecipient(found))
}

// UpdateRecipient handles PUT /api/v1/recipients/:id.
func (s *Server) UpdateRecipient(ctx echo.Context, id servers.ID) error {
	var body servers.UpdateRecipientJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateRecipientCommand(id, recipient.Patch{
		Name: body.Name,
		Address: kernel.AddressPatch{
			Line:       body.Address,
			Street:     body.Street,
			Number:     body.Number,
			Complement: body.Complement,
			City:       body.City,
			State:      body.State,
			CEP:        body.Cep,
		},
	})
	if err != nil {
		return err
	}

	updated, err := s.updateRecipientHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, toSavedRecipient(updated))
}

// DeleteRecipient handles DELETE /api/v1/recipients/:id.
func (s *Server) DeleteRecipient(ctx echo.Context, id servers.ID) error {
	cmd, err := commands.NewDeleteRecipientCommand(id)
	if err != nil {
		return err
	}

	if err = s.deleteRecipientHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusOK)
}

func paginationFrom(page, pageSize *int) (kernel.Pagination, error) {
	p, size := kernel.DefaultPage, kernel.DefaultPageSize
	if page != nil {
		p = *page
	}
	if pageSize != nil {
		size = *pageSize
	}
	return kernel.NewPagination(p, size)
}

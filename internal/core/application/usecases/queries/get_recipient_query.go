package queries

import (
	"errors"
	"time"

	"fastfeet/internal/pkg/errs"
	"fastfeet/internal/pkg/guard"
)

var (
	ErrGetRecipientQueryIsNotConstructed = errors.New(
		"GetRecipientQuery must be created via NewGetRecipientQuery constructor",
	)
)

// GetRecipientQuery retrieves one recipient with every stored field.
type GetRecipientQuery struct {
	id    int64
	guard guard.ConstructorGuard
}

// NewGetRecipientQuery creates a query for the recipient with the given id.
func NewGetRecipientQuery(id int64) (GetRecipientQuery, error) {
	if id <= 0 {
		return GetRecipientQuery{}, errs.NewValueIsInvalidError("id")
	}
	return GetRecipientQuery{id: id, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRecipientQuery) Validate() error {
	return q.guard.Validate(ErrGetRecipientQueryIsNotConstructed)
}

// ID returns the requested recipient id.
func (q GetRecipientQuery) ID() int64 {
	return q.id
}

// GetRecipientQueryResponse is the full recipient record.
// It is also the cached representation, hence the JSON tags.
type GetRecipientQueryResponse struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Address    *string   `json:"address"`
	Street     string    `json:"street"`
	Number     *string   `json:"number"`
	Complement *string   `json:"complement"`
	State      string    `json:"state"`
	City       string    `json:"city"`
	CEP        string    `json:"cep"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

package http

import (
	"fastfeet/internal/core/application/usecases/queries"
	"fastfeet/internal/core/domain/model/recipient"
	"fastfeet/internal/generated/servers"
)

func toSavedRecipient(r *recipient.Recipient) servers.SavedRecipient {
	address := r.Address()

	return servers.SavedRecipient{
		Id:         r.ID(),
		Name:       r.Name(),
		Street:     address.Street(),
		Number:     address.Number(),
		Complement: address.Complement(),
		State:      address.State(),
		City:       address.City(),
		Cep:        address.CEP(),
	}
}

func toRecipient(r queries.GetRecipientQueryResponse) servers.Recipient {
	return servers.Recipient{
		Id:         r.ID,
		Name:       r.Name,
		Address:    r.Address,
		Street:     r.Street,
		Number:     r.Number,
		Complement: r.Complement,
		State:      r.State,
		City:       r.City,
		Cep:        r.CEP,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

func toRecipientPage(page queries.ListRecipientsQueryResponse) servers.RecipientPage {
	docs := make([]servers.RecipientSummary, len(page.Docs))
	for i, doc := range page.Docs {
		docs[i] = servers.RecipientSummary{
			Id:      doc.ID,
			Name:    doc.Name,
			Address: doc.Address,
			Street:  doc.Street,
			Number:  doc.Number,
			City:    doc.City,
			State:   doc.State,
		}
	}

	return servers.RecipientPage{Docs: docs, Pages: page.Pages, Total: page.Total}
}

func toDeliveryPage(page queries.ListDeliverymanDeliveriesQueryResponse) servers.DeliveryPage {
	docs := make([]servers.Delivery, len(page.Docs))
	for i, doc := range page.Docs {
		docs[i] = servers.Delivery{
			Id:         doc.ID,
			Product:    doc.Product,
			EndDate:    doc.EndDate,
			CanceledAt: doc.CanceledAt,
		}
		if doc.Recipient != nil {
			docs[i].Recipient = &servers.DeliveryRecipient{
				Id:   doc.Recipient.ID,
				Name: doc.Recipient.Name,
			}
		}
	}

	return servers.DeliveryPage{Docs: docs, Pages: page.Pages, Total: page.Total}
}

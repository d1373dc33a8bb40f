// Package contact provides HTTP handlers for the contact-form endpoints:
// creating, updating, deleting and listing contact submissions.
package contact

import "intake-backend/internal/domain/entity"

// DTO represents the JSON structure for contact data transfer.
// The store-internal identifier key is normalized to "id"; the raw key
// never appears in responses.
type DTO struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Country   string `json:"country"`
	Problems  string `json:"problems"`
	About     string `json:"about"`
}

func toDTO(c *entity.Contact) DTO {
	return DTO{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
		Country:   c.Country,
		Problems:  c.Problems,
		About:     c.About,
	}
}

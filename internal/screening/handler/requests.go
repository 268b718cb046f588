package handler

import (
	"strings"

	"sdnscreen/internal/screening"
	dErrors "sdnscreen/pkg/domain-errors"
)

// SearchRequest is the body of POST /sanctions/search. Unknown fields are
// ignored.
type SearchRequest struct {
	ID        string `json:"id"`
	IDType    string `json:"id_type"`
	Country   string `json:"country"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// Validate trims the criteria and rejects a request that carries neither an
// ID nor a name.
func (r *SearchRequest) Validate() error {
	r.ID = strings.TrimSpace(r.ID)
	r.IDType = strings.TrimSpace(r.IDType)
	r.Country = strings.TrimSpace(r.Country)
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)

	if r.Query().IsEmpty() {
		return dErrors.New(dErrors.CodeValidation, "id or name is required")
	}
	return nil
}

// Query converts the request into screening criteria.
func (r *SearchRequest) Query() screening.Query {
	return screening.Query{
		ID:        r.ID,
		IDType:    r.IDType,
		Country:   r.Country,
		FirstName: r.FirstName,
		LastName:  r.LastName,
	}
}

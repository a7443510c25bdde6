package dto

import (
	"time"

	"github.com/cemas-app/cemas_backend/internal/core/domain"
)

// CategoryRequest carries category fields for create and update. Any owner
// field in the payload is ignored; ownership always comes from the session.
type CategoryRequest struct {
	Name string `json:"nombre" binding:"required,max=50"`
	Kind string `json:"tipo" binding:"required,tipo_categoria"`
}

// CategoryResponse is the wire representation of a category.
type CategoryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"nombre"`
	Kind      string    `json:"tipo"`
	CreatedAt time.Time `json:"fecha_creacion"`
}

// ToCategoryResponse converts a domain.Category to its wire form.
func ToCategoryResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{
		ID:        c.CategoryID,
		Name:      c.Name,
		Kind:      string(c.Kind),
		CreatedAt: c.CreatedAt,
	}
}

// ToCategoryResponses converts a slice of domain categories.
func ToCategoryResponses(cs []domain.Category) []CategoryResponse {
	responses := make([]CategoryResponse, len(cs))
	for i := range cs {
		responses[i] = ToCategoryResponse(&cs[i])
	}
	return responses
}

package dto

import (
	"time"

	"github.com/ramidarshan07/wealthtrack/internal/core/domain"
)

// CreateReferenceRequest carries the name for a new reference entity.
// The server normalizes it to Title Case before persisting.
type CreateReferenceRequest struct {
	Name string `json:"name" binding:"required,max=60"`
}

// UpdateReferenceRequest renames an existing reference entity.
type UpdateReferenceRequest struct {
	Name string `json:"name" binding:"required,max=60"`
}

// UpdateStatusRequest toggles the soft-delete flag.
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,entitystatus"`
}

// ReferenceResponse is the wire shape of a reference entity.
type ReferenceResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ToReferenceResponse converts a domain.Reference to its wire shape.
func ToReferenceResponse(ref *domain.Reference) ReferenceResponse {
	return ReferenceResponse{
		ID:        ref.ID,
		Name:      ref.Name,
		Status:    string(ref.Status),
		CreatedAt: ref.CreatedAt,
		UpdatedAt: ref.UpdatedAt,
	}
}

// ToReferenceResponseList converts a slice of references.
func ToReferenceResponseList(refs []domain.Reference) []ReferenceResponse {
	res := make([]ReferenceResponse, len(refs))
	for i := range refs {
		res[i] = ToReferenceResponse(&refs[i])
	}
	return res
}

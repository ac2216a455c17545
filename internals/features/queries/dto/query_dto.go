package dto

import (
	"time"

	"github.com/google/uuid"

	"reach_backend/internals/features/queries/model"
)

type SetRepliedRequest struct {
	ID string `json:"id" validate:"required,uuid"`
}

type QueryResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Mobile    string    `json:"mobile"`
	Query     string    `json:"query"`
	Replied   bool      `json:"replied"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromModel(q model.QueryModel) QueryResponse {
	return QueryResponse{
		ID:        q.ID,
		Name:      q.Name,
		Email:     q.Email,
		Mobile:    q.Mobile,
		Query:     q.Query,
		Replied:   q.Replied,
		CreatedAt: q.CreatedAt,
	}
}

func FromModels(list []model.QueryModel) []QueryResponse {
	out := make([]QueryResponse, 0, len(list))
	for _, q := range list {
		out = append(out, FromModel(q))
	}
	return out
}

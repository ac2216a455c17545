package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"reach_backend/internals/features/queries/dto"
	"reach_backend/internals/features/queries/repository"
	"reach_backend/internals/helpers"
)

type QueryService struct {
	db     *gorm.DB
	logger zerolog.Logger
}

func NewQueryService(db *gorm.DB, logger zerolog.Logger) *QueryService {
	return &QueryService{db: db, logger: logger.With().Str("component", "queries").Logger()}
}

func (s *QueryService) FetchUnreplied(ctx context.Context) ([]dto.QueryResponse, error) {
	list, err := repository.ListUnreplied(ctx, s.db)
	if err != nil {
		return nil, helpers.Internalf(err, "list unreplied queries")
	}
	return dto.FromModels(list), nil
}

// SetReplied marks the query replied. Marking it twice is not an error.
func (s *QueryService) SetReplied(ctx context.Context, id uuid.UUID) error {
	if err := repository.MarkReplied(ctx, s.db, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.NotFound("Query not Found")
		}
		return helpers.Internalf(err, "mark query %s replied", id)
	}
	s.logger.Debug().Str("query_id", id.String()).Msg("query marked replied")
	return nil
}

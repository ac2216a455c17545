package details

import (
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"reach_backend/internals/configs"
	"reach_backend/internals/features/workshops/catalog"
	"reach_backend/internals/services/artifacts"
	"reach_backend/internals/services/mailer"
	"reach_backend/internals/services/token"
)

// Deps are the shared collaborators every feature mount draws from.
type Deps struct {
	DB        *gorm.DB
	Config    configs.Config
	Logger    zerolog.Logger
	Tokens    *token.Service
	Mailer    *mailer.Service
	Catalog   *catalog.Catalog
	Artifacts *artifacts.FileStore
}

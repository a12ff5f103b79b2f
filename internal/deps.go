package internal

import (
	"homekeep/organizer-api/internal/service"
	"homekeep/organizer-api/internal/session"

	"gorm.io/gorm"
)

// Deps bundles every injected collaborator a use case may need. It is
// constructed once at startup and passed by reference to all handlers,
// so stores can be swapped without touching call sites.
type Deps struct {
	DB           *gorm.DB
	Sessions     session.Store
	VerifyTokens session.Store
	Mail         service.Mailer
}

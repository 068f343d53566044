// Package v1 implements the REST API for clinical note intake.
package v1

import (
	"github.com/labstack/echo/v4"

	"github.com/shail31-tech/Clinical-Notes-Summary/ai/clinical"
	"github.com/shail31-tech/Clinical-Notes-Summary/internal/profile"
	"github.com/shail31-tech/Clinical-Notes-Summary/store"
)

// demoUserID is the fixed caller identity for every request. The storage
// and service layers take the creator as a required parameter, so real
// authentication slots in here without touching them.
const demoUserID = "demo-user"

type APIV1Service struct {
	Profile    *profile.Profile
	Store      *store.Store
	Summarizer clinical.Summarizer
}

func NewAPIV1Service(profile *profile.Profile, store *store.Store, summarizer clinical.Summarizer) *APIV1Service {
	return &APIV1Service{
		Profile:    profile,
		Store:      store,
		Summarizer: summarizer,
	}
}

// RegisterRoutes registers the API handlers with the given Echo instance.
func (s *APIV1Service) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/v1")
	g.POST("/notes", s.CreateNote)
	g.GET("/notes", s.ListNotes)
	g.GET("/notes/:id", s.GetNote)
}

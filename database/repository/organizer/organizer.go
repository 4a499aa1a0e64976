package organizerRepo

import (
	"eventify/models"
)

// OrganizerSearchCriteria defines criteria for an organizer catalog search.
type OrganizerSearchCriteria struct {
	EventType string
	Location  string
	MinRating float64
}

// OrganizerRepository defines methods for organizer catalog access. The
// catalog is read-only to the matching and negotiation engine; Create/Update
// exist for seeding and admin tooling.
type OrganizerRepository interface {
	// GetByID retrieves an organizer by its unique ID.
	GetByID(id string) (*models.OrganizerProfile, error)
	// GetAll retrieves all organizers.
	GetAll() ([]models.OrganizerProfile, error)
	// Search returns organizers matching the criteria, sorted by rating
	// descending. An empty result is not an error.
	Search(criteria OrganizerSearchCriteria) ([]models.OrganizerProfile, error)
	// Create inserts a new organizer record.
	Create(organizer *models.OrganizerProfile) error
	// Update modifies an existing organizer record.
	Update(organizer *models.OrganizerProfile) error
	// Delete removes an organizer record by its ID.
	Delete(id string) error
}

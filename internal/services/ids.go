package services

import (
	"github.com/bizreview/backend/internal/models"
	"github.com/google/uuid"
)

// newID generates identifiers for created rows. Tests replace it to get stable ids.
var newID = func() models.ID {
	return models.ID(uuid.NewString())
}

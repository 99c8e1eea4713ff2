package snapshot

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	clientRepo "zoomcreatives_backend/internals/features/clients/client/repository"
	accountRepo "zoomcreatives_backend/internals/features/users/accounts/repository"
)

// Resolution failures surfaced to the caller as 400s.
var (
	ErrClientNotFound = errors.New("Client not found")
	ErrInvalidHandler = errors.New("Invalid handler selected")
)

// ResolveClient checks the referenced client exists and returns its id plus
// the display name to persist as a snapshot.
func ResolveClient(db *gorm.DB, rawID string) (uuid.UUID, string, error) {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return uuid.Nil, "", ErrClientNotFound
	}
	c, err := clientRepo.FindClientByID(db, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, "", ErrClientNotFound
		}
		return uuid.Nil, "", err
	}
	return c.ID, c.Name, nil
}

// ResolveClientContact is ResolveClient plus the client's phone, for record
// types that snapshot the mobile number alongside the name.
func ResolveClientContact(db *gorm.DB, rawID string) (uuid.UUID, string, string, error) {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return uuid.Nil, "", "", ErrClientNotFound
	}
	c, err := clientRepo.FindClientByID(db, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, "", "", ErrClientNotFound
		}
		return uuid.Nil, "", "", err
	}
	return c.ID, c.Name, c.Phone, nil
}

// ResolveHandler checks the referenced staff account exists and returns its id
// plus full name. A handler snapshot keeps the name readable after the staff
// account is renamed or removed.
func ResolveHandler(db *gorm.DB, rawID string) (uuid.UUID, string, error) {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return uuid.Nil, "", ErrInvalidHandler
	}
	s, err := accountRepo.FindStaffByID(db, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, "", ErrInvalidHandler
		}
		return uuid.Nil, "", err
	}
	return s.ID, s.FullName, nil
}

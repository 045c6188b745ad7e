package personrepo

import (
	"context"
	"time"

	"github.com/club41-romania/directory-api/internal/domain"
)

// Person is the persistence shape used by the person repository.
// It is an internal record, not an HTTP DTO.
type Person struct {
	// ID is assigned by the backend on Insert and is empty before that.
	ID        domain.PersonID
	CreatedBy domain.ClientID

	FirstName   string
	LastName    string
	PartnerName string
	BirthDate   time.Time
	RoleInClub  string
	Club        string
	City        string
	Profession  string
	Phone       string
	Email       string
	// PhotoRef is the durable reference returned by the blob store; empty means no photo.
	PhotoRef string

	CreatedAt time.Time
}

// Repository provides access to persisted person records.
//
// Ordering expectations: List returns records ordered by club, then last
// name, then first name, ascending and case-insensitive, with the record ID
// as a deterministic tiebreak.
type Repository interface {
	// Insert stores a new record and returns the backend-assigned identifier.
	Insert(ctx context.Context, p Person) (domain.PersonID, error)

	GetByID(ctx context.Context, id domain.PersonID) (Person, error)

	List(ctx context.Context) ([]Person, error)

	// Delete removes the record; ErrNotFound when no record matches.
	Delete(ctx context.Context, id domain.PersonID) error
}

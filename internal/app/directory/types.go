package directory

import "github.com/club41-romania/directory-api/internal/domain"

// PhotoUpload is an uploaded image buffer as received from the form.
type PhotoUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// CreatePersonInput carries the raw multipart form fields. Text fields arrive
// as typed by the member; the service normalizes them before persisting.
type CreatePersonInput struct {
	FirstName   string
	LastName    string
	PartnerName string
	BirthDate   string // calendar date, "2006-01-02"
	RoleInClub  string
	Club        string
	City        string
	Profession  string
	Phone       string
	Email       string
	CreatedBy   string

	Photo *PhotoUpload // nil when no file was attached
}

// DeleteAuth is the authorization evidence supplied with a delete request:
// the requesting client's identifier and, for cross-owner deletes, the shared
// secret.
type DeleteAuth struct {
	RequesterID domain.ClientID
	Secret      string
}

package directory

import (
	"context"
	"crypto/subtle"
	"errors"
	"net/http"
	"net/mail"
	"strings"
	"time"

	"github.com/club41-romania/directory-api/internal/domain"
	"github.com/club41-romania/directory-api/internal/ports/out/blobstore"
	clockport "github.com/club41-romania/directory-api/internal/ports/out/clock"
	"github.com/club41-romania/directory-api/internal/ports/out/personrepo"
)

const birthDateLayout = "2006-01-02"

// minPhoneDigits is the minimum number of digits a submitted phone number
// must contain before normalization is attempted.
const minPhoneDigits = 9

type Service struct {
	repo  personrepo.Repository
	blobs blobstore.Store
	clk   clockport.Clock

	// deleteSecret authorizes cross-owner deletes. Empty means only owners
	// can delete their own records.
	deleteSecret string

	// MaxUploadBytes bounds accepted photo size.
	MaxUploadBytes int64
}

func NewService(repo personrepo.Repository, blobs blobstore.Store, clk clockport.Clock, deleteSecret string) *Service {
	return &Service{
		repo:           repo,
		blobs:          blobs,
		clk:            clk,
		deleteSecret:   deleteSecret,
		MaxUploadBytes: 10 << 20,
	}
}

// ListPersons returns every record, ordered by club, last name, first name.
func (s *Service) ListPersons(ctx context.Context) ([]domain.Person, error) {
	ps, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Person, 0, len(ps))
	for _, p := range ps {
		out = append(out, toDomain(p))
	}
	return out, nil
}

// CreatePerson normalizes and validates the submitted fields, uploads the
// photo when one is attached, and persists the record. The stored record,
// including its assigned identifier, is returned.
func (s *Service) CreatePerson(ctx context.Context, in CreatePersonInput) (domain.Person, error) {
	p := personrepo.Person{
		CreatedBy:   domain.ClientID(strings.TrimSpace(in.CreatedBy)),
		FirstName:   domain.NormalizeName(in.FirstName),
		LastName:    domain.NormalizeName(in.LastName),
		PartnerName: domain.NormalizeName(in.PartnerName),
		RoleInClub:  domain.NormalizeName(in.RoleInClub),
		Club:        strings.TrimSpace(in.Club),
		City:        domain.NormalizeName(in.City),
		Profession:  domain.NormalizeName(in.Profession),
		Phone:       domain.NormalizePhone(in.Phone),
		Email:       strings.TrimSpace(in.Email),
	}

	details := map[string]any{}
	if p.FirstName == "" {
		details["firstName"] = "must be non-empty"
	}
	if p.LastName == "" {
		details["lastName"] = "must be non-empty"
	}
	if p.City == "" {
		details["city"] = "must be non-empty"
	}
	if p.Profession == "" {
		details["profession"] = "must be non-empty"
	}
	if p.CreatedBy == "" {
		details["createdBy"] = "must be non-empty"
	}
	if countDigits(in.Phone) < minPhoneDigits {
		details["telefon"] = "must contain at least 9 digits"
	}
	if in.BirthDate == "" {
		details["birthDate"] = "must be non-empty"
	} else {
		bd, err := time.Parse(birthDateLayout, strings.TrimSpace(in.BirthDate))
		if err != nil {
			details["birthDate"] = "must be a calendar date (yyyy-mm-dd)"
		} else {
			p.BirthDate = bd
		}
	}
	if p.Email != "" {
		if err := validateEmail(p.Email); err != nil {
			details["email"] = err.Error()
		}
	}
	switch {
	case p.Club == "":
		p.Club = domain.DefaultClub
	case !domain.KnownClub(p.Club):
		details["club"] = "must be one of the known clubs"
	}
	if in.Photo != nil {
		if !isImage(in.Photo) {
			details["photo"] = "only image files are allowed"
		} else if int64(len(in.Photo.Data)) > s.MaxUploadBytes {
			details["photo"] = "file too large"
		}
	}
	if len(details) > 0 {
		return domain.Person{}, &Error{
			Status:  http.StatusBadRequest,
			Code:    "VALIDATION_ERROR",
			Message: "invalid person submission",
			Details: details,
		}
	}

	// Upload before insert so the stored record always carries the final
	// reference. A failed upload aborts the create.
	if in.Photo != nil {
		ref, err := s.blobs.Put(ctx, blobstore.Object{
			Filename:    in.Photo.Filename,
			ContentType: in.Photo.ContentType,
			Data:        in.Photo.Data,
		})
		if err != nil {
			return domain.Person{}, &Error{
				Status:  http.StatusBadRequest,
				Code:    "UPLOAD_FAILED",
				Message: "photo upload failed: " + err.Error(),
			}
		}
		p.PhotoRef = ref
	}

	p.CreatedAt = s.clk.Now()
	id, err := s.repo.Insert(ctx, p)
	if err != nil {
		// The blob is already durable; drop it rather than orphan it.
		if p.PhotoRef != "" {
			_ = s.blobs.Remove(ctx, p.PhotoRef)
		}
		return domain.Person{}, err
	}
	p.ID = id
	return toDomain(p), nil
}

// DeletePerson removes a record after checking the delete-authorization rule:
// the requester owns the record, or presents the shared secret. The check is
// enforced here, server-side; the authorization evidence travels with the
// request instead of living in ambient client state.
func (s *Service) DeletePerson(ctx context.Context, id domain.PersonID, auth DeleteAuth) (domain.Person, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, personrepo.ErrNotFound) {
			return domain.Person{}, notFoundError()
		}
		return domain.Person{}, err
	}

	if !s.authorizeDelete(p, auth) {
		// Pass/fail only: no hint about which part of the rule failed.
		return domain.Person{}, &Error{
			Status:  http.StatusForbidden,
			Code:    "DELETE_FORBIDDEN",
			Message: "delete not authorized",
		}
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, personrepo.ErrNotFound) {
			// Lost a race with a concurrent delete.
			return domain.Person{}, notFoundError()
		}
		return domain.Person{}, err
	}

	// Best effort: the record is gone either way.
	if p.PhotoRef != "" {
		_ = s.blobs.Remove(ctx, p.PhotoRef)
	}
	return toDomain(p), nil
}

func (s *Service) authorizeDelete(p personrepo.Person, auth DeleteAuth) bool {
	if auth.RequesterID != "" && auth.RequesterID == p.CreatedBy {
		return true
	}
	if s.deleteSecret == "" || auth.Secret == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(auth.Secret), []byte(s.deleteSecret)) == 1
}

func validateEmail(email string) error {
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return errors.New("must be a valid email address")
	}
	// Ensure no "Name <email@x>" format sneaks in.
	if addr.Address != email {
		return errors.New("must be a bare email address")
	}
	return nil
}

func isImage(ph *PhotoUpload) bool {
	ct := ph.ContentType
	if ct == "" {
		ct = http.DetectContentType(ph.Data)
	}
	return strings.HasPrefix(ct, "image/")
}

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}

func notFoundError() *Error {
	return &Error{
		Status:  http.StatusNotFound,
		Code:    "PERSON_NOT_FOUND",
		Message: "Persoana nu a fost găsită",
	}
}

func toDomain(p personrepo.Person) domain.Person {
	return domain.Person{
		ID:          p.ID,
		CreatedBy:   p.CreatedBy,
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		PartnerName: p.PartnerName,
		BirthDate:   p.BirthDate,
		RoleInClub:  p.RoleInClub,
		Club:        p.Club,
		City:        p.City,
		Profession:  p.Profession,
		Phone:       p.Phone,
		Email:       p.Email,
		PhotoRef:    p.PhotoRef,
		CreatedAt:   p.CreatedAt,
	}
}

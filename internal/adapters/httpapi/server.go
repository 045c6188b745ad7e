package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/club41-romania/directory-api/internal/app/directory"
	"github.com/club41-romania/directory-api/internal/domain"
)

const birthDateLayout = "2006-01-02"

// headerDeleteSecret carries the shared secret for cross-owner deletes.
const headerDeleteSecret = "X-Delete-Secret"

// Server is the HTTP adapter: it decodes requests, delegates to the
// application service, and encodes responses.
type Server struct {
	Directory *directory.Service
	Log       *zap.Logger
}

func NewServer(svc *directory.Service, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{Directory: svc, Log: log}
}

func (s *Server) handleListPersons(w http.ResponseWriter, r *http.Request) {
	ps, err := s.Directory.ListPersons(r.Context())
	if err != nil {
		s.Log.Error("list persons failed", zap.Error(err))
		writeAppError(w, r, err)
		return
	}
	out := make([]personJSON, 0, len(ps))
	for _, p := range ps {
		out = append(out, personFromDomain(p))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCreatePerson(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.Directory.MaxUploadBytes+1<<20)
	if err := r.ParseMultipartForm(4 << 20); err != nil {
		writeError(w, r, http.StatusBadRequest, "BAD_MULTIPART", "request body must be multipart/form-data", nil)
		return
	}

	in := directory.CreatePersonInput{
		FirstName:   r.FormValue("firstName"),
		LastName:    r.FormValue("lastName"),
		PartnerName: r.FormValue("sotiePartenera"),
		BirthDate:   r.FormValue("birthDate"),
		RoleInClub:  r.FormValue("functie"),
		Club:        r.FormValue("club"),
		City:        r.FormValue("city"),
		Profession:  r.FormValue("profession"),
		Phone:       r.FormValue("telefon"),
		Email:       r.FormValue("email"),
		CreatedBy:   r.FormValue("createdBy"),
	}

	file, header, err := r.FormFile("photo")
	switch {
	case err == nil:
		defer file.Close()
		data, err := io.ReadAll(file)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "BAD_UPLOAD", "could not read uploaded file", nil)
			return
		}
		in.Photo = &directory.PhotoUpload{
			Filename:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Data:        data,
		}
	case errors.Is(err, http.ErrMissingFile):
		// Photo is optional.
	default:
		writeError(w, r, http.StatusBadRequest, "BAD_UPLOAD", "could not read uploaded file", nil)
		return
	}

	p, err := s.Directory.CreatePerson(r.Context(), in)
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	s.Log.Info("person created",
		zap.String("personId", string(p.ID)),
		zap.String("club", p.Club))
	writeJSON(w, http.StatusCreated, personFromDomain(p))
}

func (s *Server) handleDeletePerson(w http.ResponseWriter, r *http.Request) {
	id := domain.PersonID(chi.URLParam(r, "id"))
	requester, _ := ClientIDFromContext(r.Context())
	auth := directory.DeleteAuth{
		RequesterID: requester,
		Secret:      r.Header.Get(headerDeleteSecret),
	}

	p, err := s.Directory.DeletePerson(r.Context(), id, auth)
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	s.Log.Info("person deleted", zap.String("personId", string(p.ID)))
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Persoana a fost ștearsă cu succes",
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// personJSON is the wire form of a person record. Field names are part of the
// public contract and are kept verbatim, Romanian ones included.
type personJSON struct {
	ID          string `json:"id"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PartnerName string `json:"sotiePartenera,omitempty"`
	BirthDate   string `json:"birthDate"`
	RoleInClub  string `json:"functie,omitempty"`
	Club        string `json:"club"`
	City        string `json:"city"`
	Profession  string `json:"profession"`
	Phone       string `json:"telefon"`
	Email       string `json:"email,omitempty"`
	PhotoRef    string `json:"photo,omitempty"`
	CreatedBy   string `json:"createdBy"`
	CreatedAt   string `json:"createdAt"`
}

func personFromDomain(p domain.Person) personJSON {
	return personJSON{
		ID:          string(p.ID),
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		PartnerName: p.PartnerName,
		BirthDate:   p.BirthDate.Format(birthDateLayout),
		RoleInClub:  p.RoleInClub,
		Club:        p.Club,
		City:        p.City,
		Profession:  p.Profession,
		Phone:       p.Phone,
		Email:       p.Email,
		PhotoRef:    p.PhotoRef,
		CreatedBy:   string(p.CreatedBy),
		CreatedAt:   p.CreatedAt.UTC().Format(time.RFC3339),
	}
}

package personrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/club41-romania/directory-api/internal/domain"
	"github.com/club41-romania/directory-api/internal/ports/out/personrepo"
)

// Repo is a Postgres implementation of personrepo.Repository. Each record is
// stored as one JSONB document, mirroring the document-store shape; a few
// columns are denormalized for ordering.
type Repo struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// personDoc is the JSONB payload. Field names match the wire format used by
// the other record-store backends.
type personDoc struct {
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	PartnerName string    `json:"sotiePartenera,omitempty"`
	BirthDate   time.Time `json:"birthDate"`
	RoleInClub  string    `json:"functie,omitempty"`
	Club        string    `json:"club"`
	City        string    `json:"city"`
	Profession  string    `json:"profession"`
	Phone       string    `json:"telefon"`
	Email       string    `json:"email,omitempty"`
	PhotoRef    string    `json:"photo,omitempty"`
	CreatedBy   string    `json:"createdBy"`
}

func (r *Repo) Insert(ctx context.Context, p personrepo.Person) (domain.PersonID, error) {
	if r.pool == nil {
		return "", errors.New("nil postgres pool")
	}
	id := uuid.New()
	doc, err := json.Marshal(toDoc(p))
	if err != nil {
		return "", fmt.Errorf("encode person: %w", err)
	}

	_, err = r.pool.Exec(ctx, `
		INSERT INTO persons (id, club, last_name, first_name, doc, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`,
		id,
		p.Club,
		p.LastName,
		p.FirstName,
		doc,
		p.CreatedAt.UTC(),
	)
	if err != nil {
		return "", fmt.Errorf("insert person: %w", err)
	}
	return domain.PersonID(id.String()), nil
}

func (r *Repo) GetByID(ctx context.Context, id domain.PersonID) (personrepo.Person, error) {
	if r.pool == nil {
		return personrepo.Person{}, errors.New("nil postgres pool")
	}
	uid, err := uuid.Parse(string(id))
	if err != nil {
		return personrepo.Person{}, personrepo.ErrNotFound
	}

	var (
		raw       []byte
		createdAt time.Time
	)
	err = r.pool.QueryRow(ctx, `
		SELECT doc, created_at FROM persons WHERE id = $1
	`, uid).Scan(&raw, &createdAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return personrepo.Person{}, personrepo.ErrNotFound
		}
		return personrepo.Person{}, fmt.Errorf("get person: %w", err)
	}
	return fromRow(id, raw, createdAt)
}

func (r *Repo) List(ctx context.Context) ([]personrepo.Person, error) {
	if r.pool == nil {
		return nil, errors.New("nil postgres pool")
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id, doc, created_at
		FROM persons
		ORDER BY lower(club), lower(last_name), lower(first_name), id
	`)
	if err != nil {
		return nil, fmt.Errorf("list persons: %w", err)
	}
	defer rows.Close()

	out := make([]personrepo.Person, 0)
	for rows.Next() {
		var (
			uid       uuid.UUID
			raw       []byte
			createdAt time.Time
		)
		if err := rows.Scan(&uid, &raw, &createdAt); err != nil {
			return nil, fmt.Errorf("scan person: %w", err)
		}
		p, err := fromRow(domain.PersonID(uid.String()), raw, createdAt)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list persons: %w", err)
	}
	return out, nil
}

func (r *Repo) Delete(ctx context.Context, id domain.PersonID) error {
	if r.pool == nil {
		return errors.New("nil postgres pool")
	}
	uid, err := uuid.Parse(string(id))
	if err != nil {
		return personrepo.ErrNotFound
	}
	ct, err := r.pool.Exec(ctx, `DELETE FROM persons WHERE id = $1`, uid)
	if err != nil {
		return fmt.Errorf("delete person: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return personrepo.ErrNotFound
	}
	return nil
}

func toDoc(p personrepo.Person) personDoc {
	return personDoc{
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		PartnerName: p.PartnerName,
		BirthDate:   p.BirthDate.UTC(),
		RoleInClub:  p.RoleInClub,
		Club:        p.Club,
		City:        p.City,
		Profession:  p.Profession,
		Phone:       p.Phone,
		Email:       p.Email,
		PhotoRef:    p.PhotoRef,
		CreatedBy:   string(p.CreatedBy),
	}
}

func fromRow(id domain.PersonID, raw []byte, createdAt time.Time) (personrepo.Person, error) {
	var d personDoc
	if err := json.Unmarshal(raw, &d); err != nil {
		return personrepo.Person{}, fmt.Errorf("decode person %s: %w", id, err)
	}
	return personrepo.Person{
		ID:          id,
		CreatedBy:   domain.ClientID(d.CreatedBy),
		FirstName:   d.FirstName,
		LastName:    d.LastName,
		PartnerName: d.PartnerName,
		BirthDate:   d.BirthDate,
		RoleInClub:  d.RoleInClub,
		Club:        d.Club,
		City:        d.City,
		Profession:  d.Profession,
		Phone:       d.Phone,
		Email:       d.Email,
		PhotoRef:    d.PhotoRef,
		CreatedAt:   createdAt,
	}, nil
}

package personrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/club41-romania/directory-api/internal/domain"
	"github.com/club41-romania/directory-api/internal/ports/out/personrepo"
)

const collectionName = "persons"

// Repo is a MongoDB implementation of personrepo.Repository.
// Identifiers are collection-assigned ObjectIDs, exposed in hex form.
type Repo struct {
	coll *mongo.Collection
}

func NewRepo(db *mongo.Database) *Repo {
	return &Repo{coll: db.Collection(collectionName)}
}

// personDoc keeps the historical document field names, so the collection
// stays readable by earlier deployments of the directory.
type personDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	FirstName   string             `bson:"firstName"`
	LastName    string             `bson:"lastName"`
	PartnerName string             `bson:"sotiePartenera,omitempty"`
	BirthDate   time.Time          `bson:"birthDate"`
	RoleInClub  string             `bson:"functie,omitempty"`
	Club        string             `bson:"club"`
	City        string             `bson:"city"`
	Profession  string             `bson:"profession"`
	Phone       string             `bson:"telefon"`
	Email       string             `bson:"email,omitempty"`
	PhotoRef    string             `bson:"photo,omitempty"`
	CreatedBy   string             `bson:"createdBy"`
	CreatedAt   time.Time          `bson:"createdAt"`
}

func (r *Repo) Insert(ctx context.Context, p personrepo.Person) (domain.PersonID, error) {
	res, err := r.coll.InsertOne(ctx, toDoc(p))
	if err != nil {
		return "", fmt.Errorf("insert person: %w", err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return domain.PersonID(oid.Hex()), nil
}

func (r *Repo) GetByID(ctx context.Context, id domain.PersonID) (personrepo.Person, error) {
	oid, err := primitive.ObjectIDFromHex(string(id))
	if err != nil {
		// A malformed id cannot match any document.
		return personrepo.Person{}, personrepo.ErrNotFound
	}
	var doc personDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return personrepo.Person{}, personrepo.ErrNotFound
		}
		return personrepo.Person{}, fmt.Errorf("find person: %w", err)
	}
	return fromDoc(doc), nil
}

func (r *Repo) List(ctx context.Context) ([]personrepo.Person, error) {
	sort := bson.D{
		{Key: "club", Value: 1},
		{Key: "lastName", Value: 1},
		{Key: "firstName", Value: 1},
		{Key: "_id", Value: 1},
	}
	// Strength 2 makes the sort case-insensitive, matching the other backends.
	findOpts := options.Find().
		SetSort(sort).
		SetCollation(&options.Collation{Locale: "ro", Strength: 2})
	cur, err := r.coll.Find(ctx, bson.D{}, findOpts)
	if err != nil {
		return nil, fmt.Errorf("list persons: %w", err)
	}
	defer cur.Close(ctx)

	out := make([]personrepo.Person, 0)
	for cur.Next(ctx) {
		var doc personDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode person: %w", err)
		}
		out = append(out, fromDoc(doc))
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list persons: %w", err)
	}
	return out, nil
}

func (r *Repo) Delete(ctx context.Context, id domain.PersonID) error {
	oid, err := primitive.ObjectIDFromHex(string(id))
	if err != nil {
		return personrepo.ErrNotFound
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete person: %w", err)
	}
	if res.DeletedCount == 0 {
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
		CreatedAt:   p.CreatedAt.UTC(),
	}
}

func fromDoc(d personDoc) personrepo.Person {
	return personrepo.Person{
		ID:          domain.PersonID(d.ID.Hex()),
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
		CreatedAt:   d.CreatedAt,
	}
}

package domain

import "time"

// DefaultClub is assigned when a member registers without picking a club.
const DefaultClub = "Fără club"

// clubs is the fixed list of known club names. Extending the directory to a
// new club means adding it here.
var clubs = []string{
	"Club 41 Nr.1 Brașov",
	"Club 41 Nr.2 Drobeta Turnu Severin",
	"Club 41 Nr.3 Brașov",
	"Club 41 Nr.4 Craiova",
	"Club 41 Nr.5 Câmpulung",
	"Club 41 Nr.6 Suceava",
	"Club 41 Nr.7 Brașov",
	"Club 41 Nr.8 Slatina",
	"Club 41 Nr.9 Craiova",
	"Club 41 Nr.10 Suceava",
	"Club 41 Nr.11 Galați",
	"Club 41 Nr.12 Sibiu",
	"Club 41 Nr.14 București",
}

// Clubs returns the known club names. The returned slice is a copy.
func Clubs() []string {
	out := make([]string, len(clubs))
	copy(out, clubs)
	return out
}

// KnownClub reports whether name is one of the enumerated club names
// (the default placeholder included).
func KnownClub(name string) bool {
	if name == DefaultClub {
		return true
	}
	for _, c := range clubs {
		if c == name {
			return true
		}
	}
	return false
}

// Person is the domain representation of a directory record.
//
// Records are created once and never updated in place; the only lifecycle
// transitions are insert and delete-by-id.
type Person struct {
	ID        PersonID
	CreatedBy ClientID

	FirstName   string
	LastName    string
	PartnerName string // optional
	BirthDate   time.Time
	RoleInClub  string // optional free text
	Club        string
	City        string
	Profession  string
	Phone       string
	Email       string // optional
	PhotoRef    string // optional URL or path to the stored photo

	CreatedAt time.Time
}

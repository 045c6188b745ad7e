package domain

// PersonID is the store-assigned identifier of a person record.
// Its format depends on the record-store backend (ObjectID hex, UUID, ...),
// so we model it as an opaque string.
type PersonID string

// ClientID is the opaque identifier of the authoring client session.
// It is supplied by the client and used only for the delete-authorization
// shortcut; it is not an identity in any stronger sense.
type ClientID string

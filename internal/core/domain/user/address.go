package user

type AddressID int64

type AddressPublicID string

type AddressType string

const (
	AddressTypeShipping AddressType = "shipping"
	AddressTypeBilling  AddressType = "billing"
)

// Address is exclusively owned by the user referenced by UserID.
type Address struct {
	ID         AddressID
	PublicID   AddressPublicID
	UserID     ID
	Type       AddressType
	City       string
	Country    string
	PostalCode string
	StreetName string
}

// NewAddress carries the address attributes supplied by a caller.
type NewAddress struct {
	Type       AddressType
	City       string
	Country    string
	PostalCode string
	StreetName string
}

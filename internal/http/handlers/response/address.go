package response

import (
	"fmt"
	"userhub/internal/core/domain/user"
)

type Address struct {
	AddressID  string `json:"address_id"`
	Type       string `json:"type"`
	City       string `json:"city"`
	Country    string `json:"country"`
	PostalCode string `json:"postal_code"`
	StreetName string `json:"street_name"`
}

func (a *Address) FromDomainAddress(da user.Address) {
	a.AddressID = string(da.PublicID)
	a.Type = string(da.Type)
	a.City = da.City
	a.Country = da.Country
	a.PostalCode = da.PostalCode
	a.StreetName = da.StreetName
}

type Link struct {
	Href string `json:"href"`
}

type AddressLinks struct {
	Self      Link `json:"self"`
	User      Link `json:"user"`
	Addresses Link `json:"addresses"`
}

type AddressWithLinks struct {
	Address
	Links AddressLinks `json:"links"`
}

func NewAddressWithLinks(da user.Address, userID user.PublicID) AddressWithLinks {
	a := AddressWithLinks{}
	a.FromDomainAddress(da)
	userPath := fmt.Sprintf("/users/%s", userID)
	a.Links = AddressLinks{
		Self:      Link{Href: fmt.Sprintf("%s/addresses/%s", userPath, da.PublicID)},
		User:      Link{Href: userPath},
		Addresses: Link{Href: userPath + "/addresses"},
	}
	return a
}

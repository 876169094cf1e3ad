package response

import (
	"time"
	"userhub/internal/core/domain/user"
)

// User never carries the password hash or the internal key.
type User struct {
	UserID    string    `json:"user_id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	Addresses []Address `json:"addresses,omitempty"`
}

func (u *User) FromDomainUser(du user.User) {
	u.UserID = string(du.PublicID)
	u.FirstName = du.FirstName
	u.LastName = du.LastName
	u.Email = string(du.Email)
	u.CreatedAt = du.CreatedAt
	if len(du.Addresses) > 0 {
		u.Addresses = make([]Address, len(du.Addresses))
		for i, a := range du.Addresses {
			u.Addresses[i].FromDomainAddress(a)
		}
	}
}

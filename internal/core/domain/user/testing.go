package user

import (
	"context"
	"crypto/md5"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
	"time"
	c "userhub/internal/core/domain/common"
)

type FakePasswordHasher struct{}

func NewFakePasswordHasher() *FakePasswordHasher {
	return &FakePasswordHasher{}
}

func (h *FakePasswordHasher) HashPassword(password RawPassword) (PasswordHash, error) {
	hash := md5.New()
	io.WriteString(hash, string(password))
	return PasswordHash(fmt.Sprintf("%x", hash.Sum(nil))), nil
}

func (h *FakePasswordHasher) ValidatePassword(password RawPassword, hash PasswordHash) bool {
	actualHash, err := h.HashPassword(password)
	if err != nil {
		return false
	}
	return actualHash == hash
}

type FakePublicIDGenerator struct {
	counter int
	lock    sync.Mutex
}

func NewFakePublicIDGenerator() *FakePublicIDGenerator {
	return &FakePublicIDGenerator{}
}

func (g *FakePublicIDGenerator) GeneratePublicID() PublicID {
	return PublicID(g.next("u"))
}

func (g *FakePublicIDGenerator) GenerateAddressPublicID() AddressPublicID {
	return AddressPublicID(g.next("a"))
}

func (g *FakePublicIDGenerator) next(prefix string) string {
	g.lock.Lock()
	defer g.lock.Unlock()
	g.counter++
	return fmt.Sprintf("%s%0*d", prefix, PublicIDLength-len(prefix), g.counter)
}

type FakeTokenCodec struct {
	Issued      []PasswordResetToken
	Subjects    []PublicID
	Expired     map[PasswordResetToken]struct{}
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeTokenCodec() *FakeTokenCodec {
	return &FakeTokenCodec{Expired: make(map[PasswordResetToken]struct{})}
}

func (t *FakeTokenCodec) Issue(subject PublicID, ttl time.Duration) (token PasswordResetToken, err error) {
	if t.ReturnError {
		return token, fmt.Errorf("could not issue token for %s", subject)
	}
	t.lock.Lock()
	defer t.lock.Unlock()
	token = PasswordResetToken(fmt.Sprintf("token.%s.%d", subject, len(t.Issued)+1))
	t.Issued = append(t.Issued, token)
	t.Subjects = append(t.Subjects, subject)
	return token, nil
}

func (t *FakeTokenCodec) VerifyNotExpired(token PasswordResetToken) bool {
	t.lock.Lock()
	defer t.lock.Unlock()
	if _, ok := t.Expired[token]; ok {
		return false
	}
	return strings.HasPrefix(string(token), "token.")
}

func (t *FakeTokenCodec) Expire(token PasswordResetToken) {
	t.lock.Lock()
	defer t.lock.Unlock()
	t.Expired[token] = struct{}{}
}

func (t *FakeTokenCodec) LastIssued() PasswordResetToken {
	t.lock.Lock()
	defer t.lock.Unlock()
	l := len(t.Issued)
	if l == 0 {
		panic("Issued count is 0.")
	}
	return t.Issued[l-1]
}

type FakePasswordResetTokenSender struct {
	Sent        []PasswordResetToken
	SentTo      []User
	ReturnError bool
	lock        sync.Mutex
}

func NewFakePasswordResetTokenSender() *FakePasswordResetTokenSender {
	return &FakePasswordResetTokenSender{}
}

func (s *FakePasswordResetTokenSender) SendPasswordResetToken(
	ctx context.Context,
	user User,
	token PasswordResetToken,
) error {
	if s.ReturnError {
		return fmt.Errorf("could not send password reset token")
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	s.Sent = append(s.Sent, token)
	s.SentTo = append(s.SentTo, user)
	return nil
}

type FakeUserRepository struct {
	Users           []User
	ReturnError     bool
	CreateCallCount int
	// When present, SetPassword stores this hash instead of the given one.
	PersistedPasswordHash c.Optional[PasswordHash]
	lock                  sync.Mutex
}

func NewFakeUserRepository() *FakeUserRepository {
	return &FakeUserRepository{Users: make([]User, 0, 10)}
}

func (r *FakeUserRepository) Create(ctx context.Context, input CreateUserInput) (u User, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.CreateCallCount++
	if r.ReturnError {
		return u, fmt.Errorf("could not create user %v", input)
	}
	maxID := ID(0)
	for _, existing := range r.Users {
		if existing.Email == input.Email {
			return u, ErrEmailAlreadyExists
		}
		if existing.ID > maxID {
			maxID = existing.ID
		}
	}
	u = User{
		ID:           maxID + 1,
		PublicID:     input.PublicID,
		Email:        input.Email,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		PasswordHash: input.PasswordHash,
		CreatedAt:    input.CreatedAt,
	}
	r.Users = append(r.Users, u)
	return u, nil
}

func (r *FakeUserRepository) GetByID(ctx context.Context, id ID) (u User, err error) {
	return r.find(func(u User) bool { return u.ID == id })
}

func (r *FakeUserRepository) GetByPublicID(ctx context.Context, id PublicID) (u User, err error) {
	return r.find(func(u User) bool { return u.PublicID == id })
}

func (r *FakeUserRepository) GetByEmail(ctx context.Context, email c.Email) (u User, err error) {
	return r.find(func(u User) bool { return u.Email == email })
}

func (r *FakeUserRepository) List(ctx context.Context, pagination c.Pagination) ([]User, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	if r.ReturnError {
		return nil, fmt.Errorf("could not list users")
	}
	sorted := make([]User, len(r.Users))
	copy(sorted, r.Users)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	offset := pagination.Offset()
	if offset >= uint(len(sorted)) {
		return []User{}, nil
	}
	end := offset + pagination.Limit
	if end > uint(len(sorted)) {
		end = uint(len(sorted))
	}
	return sorted[offset:end], nil
}

func (r *FakeUserRepository) Update(ctx context.Context, input UpdateUserInput) (u User, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	if r.ReturnError {
		return u, fmt.Errorf("could not update user %v", input)
	}
	for ix, u := range r.Users {
		if u.ID == input.ID {
			r.Users[ix].FirstName = input.FirstName
			r.Users[ix].LastName = input.LastName
			return r.Users[ix], nil
		}
	}
	return u, ErrUserDoesNotExist
}

func (r *FakeUserRepository) SetPassword(ctx context.Context, id ID, password PasswordHash) (PasswordHash, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	if r.ReturnError {
		return "", fmt.Errorf("could not set password for user %d", id)
	}
	if r.PersistedPasswordHash.IsPresent {
		password = r.PersistedPasswordHash.Value
	}
	for ix, u := range r.Users {
		if u.ID == id {
			r.Users[ix].PasswordHash = password
			return password, nil
		}
	}
	return "", ErrUserDoesNotExist
}

func (r *FakeUserRepository) Delete(ctx context.Context, id ID) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	if r.ReturnError {
		return fmt.Errorf("could not delete user %d", id)
	}
	for ix, u := range r.Users {
		if u.ID == id {
			r.Users = append(r.Users[:ix], r.Users[ix+1:]...)
			return nil
		}
	}
	return ErrUserDoesNotExist
}

func (r *FakeUserRepository) find(match func(User) bool) (u User, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	if r.ReturnError {
		return u, fmt.Errorf("could not get user")
	}
	for _, u := range r.Users {
		if match(u) {
			return u, nil
		}
	}
	return u, ErrUserDoesNotExist
}

type FakeAddressRepository struct {
	Addresses   []Address
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeAddressRepository() *FakeAddressRepository {
	return &FakeAddressRepository{Addresses: make([]Address, 0, 10)}
}

func (r *FakeAddressRepository) Create(ctx context.Context, input CreateAddressInput) (a Address, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	if r.ReturnError {
		return a, fmt.Errorf("could not create address %v", input)
	}
	a = Address{
		ID:         AddressID(len(r.Addresses) + 1),
		PublicID:   input.PublicID,
		UserID:     input.UserID,
		Type:       input.Address.Type,
		City:       input.Address.City,
		Country:    input.Address.Country,
		PostalCode: input.Address.PostalCode,
		StreetName: input.Address.StreetName,
	}
	r.Addresses = append(r.Addresses, a)
	return a, nil
}

func (r *FakeAddressRepository) GetByPublicID(ctx context.Context, id AddressPublicID) (a Address, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	if r.ReturnError {
		return a, fmt.Errorf("could not get address %s", id)
	}
	for _, a := range r.Addresses {
		if a.PublicID == id {
			return a, nil
		}
	}
	return a, ErrAddressDoesNotExist
}

func (r *FakeAddressRepository) ListByUser(ctx context.Context, userID ID) ([]Address, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	if r.ReturnError {
		return nil, fmt.Errorf("could not list addresses of user %d", userID)
	}
	addresses := make([]Address, 0)
	for _, a := range r.Addresses {
		if a.UserID == userID {
			addresses = append(addresses, a)
		}
	}
	return addresses, nil
}

func (r *FakeAddressRepository) DeleteByUser(ctx context.Context, userID ID) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	if r.ReturnError {
		return fmt.Errorf("could not delete addresses of user %d", userID)
	}
	kept := make([]Address, 0, len(r.Addresses))
	for _, a := range r.Addresses {
		if a.UserID != userID {
			kept = append(kept, a)
		}
	}
	r.Addresses = kept
	return nil
}

type FakePasswordResetTokenRepository struct {
	UserIDByToken    map[PasswordResetToken]ID
	CreatedAtByToken map[PasswordResetToken]time.Time
	ReturnError      bool
	ConsumeCallCount int
	lock             sync.Mutex
}

func NewFakePasswordResetTokenRepository() *FakePasswordResetTokenRepository {
	return &FakePasswordResetTokenRepository{
		UserIDByToken:    make(map[PasswordResetToken]ID),
		CreatedAtByToken: make(map[PasswordResetToken]time.Time),
	}
}

func (r *FakePasswordResetTokenRepository) Create(ctx context.Context, input CreatePasswordResetTokenInput) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	if r.ReturnError {
		return fmt.Errorf("could not create password reset token for user %d", input.UserID)
	}
	r.UserIDByToken[input.Token] = input.UserID
	r.CreatedAtByToken[input.Token] = input.CreatedAt
	return nil
}

func (r *FakePasswordResetTokenRepository) Consume(ctx context.Context, token PasswordResetToken) (ID, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.ConsumeCallCount++
	if r.ReturnError {
		return ID(0), fmt.Errorf("could not consume password reset token")
	}
	userID, ok := r.UserIDByToken[token]
	if !ok {
		return ID(0), ErrPasswordResetTokenDoesNotExist
	}
	delete(r.UserIDByToken, token)
	return userID, nil
}

func (r *FakePasswordResetTokenRepository) DeleteByUser(ctx context.Context, userID ID) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	if r.ReturnError {
		return fmt.Errorf("could not delete password reset tokens of user %d", userID)
	}
	for token, owner := range r.UserIDByToken {
		if owner == userID {
			delete(r.UserIDByToken, token)
		}
	}
	return nil
}

func (r *FakePasswordResetTokenRepository) DeleteCreatedBefore(ctx context.Context, before time.Time) (int64, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	if r.ReturnError {
		return 0, fmt.Errorf("could not delete password reset tokens created before %v", before)
	}
	var count int64
	for token := range r.UserIDByToken {
		if r.CreatedAtByToken[token].Before(before) {
			delete(r.UserIDByToken, token)
			delete(r.CreatedAtByToken, token)
			count++
		}
	}
	return count, nil
}

func (r *FakePasswordResetTokenRepository) Count() int {
	r.lock.Lock()
	defer r.lock.Unlock()
	return len(r.UserIDByToken)
}

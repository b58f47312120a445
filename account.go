package valutatrade

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"
)

// MinPasswordLength is the shortest accepted password.
const MinPasswordLength = 4

// saltBytes is the number of random bytes in a salt, hex encoded on disk.
const saltBytes = 8

// Account is a registered user: an identity and its credentials.
//
// The identifier never changes once assigned. The hash and the salt are
// always replaced together.
type Account struct {
	id           int
	name         string
	passwordHash string
	salt         string
	registered   time.Time
}

// NewAccount creates an account with a fresh salt for password.
func NewAccount(id int, name, password string, registered time.Time) (*Account, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyUsername
	}
	if len(password) < MinPasswordLength {
		return nil, ErrWeakPassword
	}
	salt, err := newSalt()
	if err != nil {
		return nil, err
	}
	return &Account{
		id:           id,
		name:         name,
		passwordHash: hashPassword(password, salt),
		salt:         salt,
		registered:   registered,
	}, nil
}

// restoreAccount rebuilds an account from persisted fields.
func restoreAccount(id int, name, hash, salt string, registered time.Time) (*Account, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("account %d: %w", id, ErrEmptyUsername)
	}
	if salt == "" {
		return nil, fmt.Errorf("account %d: empty salt", id)
	}
	return &Account{id: id, name: name, passwordHash: hash, salt: salt, registered: registered}, nil
}

// ID returns the unique identifier of the account.
func (a *Account) ID() int { return a.id }

// Name returns the username.
func (a *Account) Name() string { return a.name }

// Registered returns the registration time.
func (a *Account) Registered() time.Time { return a.registered }

// VerifyPassword reports whether candidate, hashed with the stored salt,
// matches the stored hash.
func (a *Account) VerifyPassword(candidate string) bool {
	return hashPassword(candidate, a.salt) == a.passwordHash
}

// ChangePassword replaces the credentials. A new salt is drawn every time;
// the old salt is never reused.
func (a *Account) ChangePassword(password string) error {
	if len(password) < MinPasswordLength {
		return ErrWeakPassword
	}
	salt, err := newSalt()
	if err != nil {
		return err
	}
	a.salt = salt
	a.passwordHash = hashPassword(password, salt)
	return nil
}

// AccountInfo is the public view of an account, without credentials.
type AccountInfo struct {
	ID         int       `json:"user_id"`
	Name       string    `json:"username"`
	Registered time.Time `json:"registration_date"`
}

// Info returns the public view of the account.
func (a *Account) Info() AccountInfo {
	return AccountInfo{ID: a.id, Name: a.name, Registered: a.registered}
}

func hashPassword(password, salt string) string {
	sum := sha256.Sum256([]byte(password + salt))
	return hex.EncodeToString(sum[:])
}

func newSalt() (string, error) {
	b := make([]byte, saltBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("cannot draw salt: %w", err)
	}
	return hex.EncodeToString(b), nil
}

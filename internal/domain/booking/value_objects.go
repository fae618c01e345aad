package booking

import (
	"errors"
	"strings"
)

var (
	ErrEmptyGuestName   = errors.New("guest name cannot be empty")
	ErrGuestNameTooLong = errors.New("guest name is too long (max 200 characters)")
	ErrInvalidEmail     = errors.New("guest email is invalid")
	ErrEmptyGuestPhone  = errors.New("guest phone cannot be empty")
)

const (
	MaxGuestNameLength  = 200
	MaxGuestPhoneLength = 20
)

// GuestDetails is the contact block captured at booking time. A booking can
// exist without a linked user account, so this is the canonical record of
// who booked.
type GuestDetails struct {
	name  string
	email string
	phone string
}

func NewGuestDetails(name, email, phone string) (GuestDetails, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return GuestDetails{}, ErrEmptyGuestName
	}
	if len(name) > MaxGuestNameLength {
		return GuestDetails{}, ErrGuestNameTooLong
	}

	email = strings.TrimSpace(email)
	at := strings.Index(email, "@")
	if at < 1 || at == len(email)-1 {
		return GuestDetails{}, ErrInvalidEmail
	}

	phone = strings.TrimSpace(phone)
	if phone == "" || len(phone) > MaxGuestPhoneLength {
		return GuestDetails{}, ErrEmptyGuestPhone
	}

	return GuestDetails{name: name, email: email, phone: phone}, nil
}

func (g GuestDetails) Name() string  { return g.name }
func (g GuestDetails) Email() string { return g.email }
func (g GuestDetails) Phone() string { return g.phone }

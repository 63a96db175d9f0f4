package address

import (
	"strings"
	"time"
)

// Service orchestrates the address book.
type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

func (s *Service) List(userID int) ([]Address, error) {
	if userID <= 0 {
		return nil, ErrInvalidUser
	}
	return s.repo.List(userID)
}

func (s *Service) Get(userID, addressID int) (Address, error) {
	if userID <= 0 {
		return Address{}, ErrInvalidUser
	}
	if addressID <= 0 {
		return Address{}, ErrNotFound
	}
	return s.repo.Get(userID, addressID)
}

func (s *Service) Add(userID int, f Fields) (Address, error) {
	if userID <= 0 {
		return Address{}, ErrInvalidUser
	}
	return s.repo.Add(userID, trim(f), s.timestamp())
}

func (s *Service) Update(userID, addressID int, f Fields) (Address, error) {
	if userID <= 0 {
		return Address{}, ErrInvalidUser
	}
	if addressID <= 0 {
		return Address{}, ErrNotFound
	}
	return s.repo.Update(userID, addressID, trim(f), s.timestamp())
}

func (s *Service) Delete(userID, addressID int) error {
	if userID <= 0 {
		return ErrInvalidUser
	}
	if addressID <= 0 {
		return ErrNotFound
	}
	return s.repo.Delete(userID, addressID)
}

func (s *Service) timestamp() string {
	return s.now().UTC().Format(time.RFC3339)
}

func trim(f Fields) Fields {
	return Fields{
		AddressName: strings.TrimSpace(f.AddressName),
		AddressDesc: strings.TrimSpace(f.AddressDesc),
		Phone:       strings.TrimSpace(f.Phone),
	}
}

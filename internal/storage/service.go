package storage

import (
	"github.com/rohanthewiz/logger"
)

// SearchTermKey is the key the last typed search input is stored under.
const SearchTermKey = "name"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Available reports whether writes will be attempted.
func (s *Service) Available() bool {
	return s != nil && s.repo != nil && s.repo.Available()
}

// Set stores value under key for owner. Unavailable storage is a silent no-op.
func (s *Service) Set(owner, key, value string) error {
	if !s.Available() {
		return nil
	}
	return s.repo.Set(owner, key, value)
}

func (s *Service) Get(owner, key string) (string, error) {
	if !s.Available() {
		return "", ErrNotFound
	}
	return s.repo.Get(owner, key)
}

// StoreSearchTerm writes the raw search input for owner. Failures are logged
// and dropped; the caller never sees them.
func (s *Service) StoreSearchTerm(owner, value string) {
	if err := s.Set(owner, SearchTermKey, value); err != nil {
		logger.LogErr(err, "search term not stored")
	}
}

// Bucket binds the service to one visitor.
func (s *Service) Bucket(owner string) Bucket {
	return Bucket{service: s, owner: owner}
}

// Bucket is a visitor's view of the store.
type Bucket struct {
	service *Service
	owner   string
}

// RecordSearchTerm stores the raw search input for the bucket's visitor.
func (b Bucket) RecordSearchTerm(value string) {
	b.service.StoreSearchTerm(b.owner, value)
}

// Package search backs the storefront search box suggestions.
package search

import (
	"context"
	"strings"
	"time"

	"stylehub-be/internal/repository/unitofwork"

	"github.com/patrickmn/go-cache"
)

const (
	minTermLength     = 2
	defaultLimit      = 8
	suggestCacheTTL   = 2 * time.Minute
	suggestCachePurge = 5 * time.Minute
)

// Suggester serves typeahead suggestions from product and brand names.
// Results are cached per normalized term; the catalog changes rarely enough
// that a short TTL keeps suggestions fresh without hitting the database on
// every keystroke.
type Suggester struct {
	uowFactory unitofwork.RepositoryFactory
	cache      *cache.Cache
}

func NewSuggester(uowFactory unitofwork.RepositoryFactory) *Suggester {
	return &Suggester{
		uowFactory: uowFactory,
		cache:      cache.New(suggestCacheTTL, suggestCachePurge),
	}
}

// Suggest returns up to limit suggestions for the term. Terms shorter than
// two characters yield no suggestions.
func (s *Suggester) Suggest(ctx context.Context, term string, limit int) ([]string, error) {
	normalized := Normalize(term)
	if len(normalized) < minTermLength {
		return nil, nil
	}
	if limit < 1 {
		limit = defaultLimit
	}

	if cached, found := s.cache.Get(normalized); found {
		return cached.([]string), nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	names, err := uow.ProductRepository().SearchNames(ctx, normalized, limit)
	if err != nil {
		return nil, err
	}

	s.cache.Set(normalized, names, cache.DefaultExpiration)
	return names, nil
}

// Normalize lowercases and collapses surrounding whitespace so "  Denim "
// and "denim" share a cache entry.
func Normalize(term string) string {
	return strings.ToLower(strings.TrimSpace(term))
}

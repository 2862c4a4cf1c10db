package blog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/daniilsolovey/blogfront/internal/cms"
)

// ErrEmptyKey is returned for a category listing without category or subcategory.
var ErrEmptyKey = errors.New("category and subcategory are required")

// Source fetches the pages of one listing. Key identifies the listing so a
// loader can tell whether a response still belongs to what it shows.
type Source interface {
	Key() string
	Fetch(ctx context.Context, page int) (Page, error)
}

type fetchFunc func(ctx context.Context, page int) (cms.Listing, error)

type listingSource struct {
	key      string
	fetch    fetchFunc
	resolver Resolver
}

func (s listingSource) Key() string {
	return s.key
}

func (s listingSource) Fetch(ctx context.Context, page int) (Page, error) {
	listing, err := s.fetch(ctx, page)
	if err != nil {
		return Page{}, fmt.Errorf("fetch %s page %d: %w", s.key, page, err)
	}

	return NewPage(s.resolver, page, listing), nil
}

// CategorySource lists contents of a subcategory.
func (m *Manager) CategorySource(categoryID, subcategoryID string) (Source, error) {
	categoryID, subcategoryID = strings.TrimSpace(categoryID), strings.TrimSpace(subcategoryID)
	if categoryID == "" || subcategoryID == "" {
		return nil, ErrEmptyKey
	}

	return listingSource{
		key: "contents/" + categoryID + "/" + subcategoryID,
		fetch: func(ctx context.Context, page int) (cms.Listing, error) {
			return m.cms.Contents(ctx, categoryID, subcategoryID, page)
		},
		resolver: m.resolver,
	}, nil
}

func (m *Manager) HomeSource() Source {
	return listingSource{
		key:      "home",
		fetch:    m.cms.Home,
		resolver: m.resolver,
	}
}

func (m *Manager) HomeCategorySource(categoryName string) Source {
	return listingSource{
		key: "home/" + categoryName,
		fetch: func(ctx context.Context, page int) (cms.Listing, error) {
			return m.cms.HomeCategory(ctx, categoryName, page)
		},
		resolver: m.resolver,
	}
}

func (m *Manager) ShowsSource() Source {
	return listingSource{
		key:      "shows",
		fetch:    m.cms.Shows,
		resolver: m.resolver,
	}
}

func (m *Manager) TagSource(tag string) Source {
	return listingSource{
		key: "show-tags/" + tag,
		fetch: func(ctx context.Context, page int) (cms.Listing, error) {
			return m.cms.ShowTags(ctx, tag, page)
		},
		resolver: m.resolver,
	}
}

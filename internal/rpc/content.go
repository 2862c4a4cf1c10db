package rpc

import (
	"context"
	"errors"

	"github.com/daniilsolovey/blogfront/internal/blog"
	"github.com/daniilsolovey/blogfront/internal/cms"
	"github.com/vmkteam/zenrpc/v2"
)

//go:generate zenrpc

const (
	KindHome     = "home"
	KindCategory = "category"
	KindShows    = "shows"
	KindTag      = "tag"
)

// ContentService provides RPC methods for the public listings.
type ContentService struct {
	zenrpc.Service
	manager *blog.Manager
}

func NewContentService(manager *blog.Manager) *ContentService {
	return &ContentService{manager: manager}
}

// List returns one page of any listing: the home page, a home category,
// a subcategory, the shows or the shows with a tag.
//
//zenrpc:filter listing to fetch
//zenrpc:return page of sanitized posts
//zenrpc:400 invalid filter
//zenrpc:404 listing not found
//zenrpc:502 backend unavailable
func (s *ContentService) List(ctx context.Context, filter ListFilter) (*PostsPage, error) {
	src, err := s.source(filter)
	if err != nil {
		return nil, zenrpc.NewStringError(400, err.Error())
	}

	page := 1
	if filter.Page != nil {
		page = *filter.Page
	}

	p, err := s.manager.ListPage(ctx, src, page)
	if cms.IsNotFound(err) {
		return nil, zenrpc.NewStringError(404, "listing not found")
	} else if err != nil {
		return nil, zenrpc.NewStringError(502, "backend unavailable")
	}

	return &PostsPage{
		Posts: blog.Map(p.Posts, func(post blog.Post) Post {
			return NewPost(post, s.manager.Share(post))
		}),
		Page:     p.Number,
		LastPage: p.LastPage,
		HasMore:  !p.IsLast(),
	}, nil
}

// Advertising returns both advertising slots. A slot that fails to load is empty.
//
//zenrpc:return horizontal and vertical slots
func (s *ContentService) Advertising(ctx context.Context) Ads {
	return NewAds(s.manager.Ads(ctx))
}

// Categories retrieves all categories with their subcategories.
//
//zenrpc:return list of categories
//zenrpc:502 backend unavailable
func (s *ContentService) Categories(ctx context.Context) ([]Category, error) {
	categories, err := s.manager.Categories(ctx)
	if err != nil {
		return nil, zenrpc.NewStringError(502, "backend unavailable")
	}

	return NewCategories(categories), nil
}

func (s *ContentService) source(f ListFilter) (blog.Source, error) {
	switch f.Kind {
	case "", KindHome:
		if f.Category != "" {
			return s.manager.HomeCategorySource(f.Category), nil
		}
		return s.manager.HomeSource(), nil
	case KindCategory:
		return s.manager.CategorySource(f.CategoryID, f.SubcategoryID)
	case KindShows:
		return s.manager.ShowsSource(), nil
	case KindTag:
		if f.Tag == "" {
			return nil, errors.New("tag is required")
		}
		return s.manager.TagSource(f.Tag), nil
	}

	return nil, errors.New("unknown listing kind " + f.Kind)
}

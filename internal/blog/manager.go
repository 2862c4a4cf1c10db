package blog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/daniilsolovey/blogfront/internal/cms"
	"golang.org/x/sync/errgroup"
)

const (
	PlacementHorizontal = "horizontal"
	PlacementVertical   = "vertical"
)

type Manager struct {
	cms      *cms.Client
	resolver Resolver
	site     string
	log      *slog.Logger
	statuses *StatusTable
}

func NewManager(client *cms.Client, resolver Resolver, site string, log *slog.Logger) *Manager {
	return &Manager{
		cms:      client,
		resolver: resolver,
		site:     site,
		log:      log,
		statuses: NewStatusTable(),
	}
}

// Ad fetches one advertising slot. A failing slot is logged and left empty.
func (m *Manager) Ad(ctx context.Context, placement string) Ad {
	ad, err := m.cms.Advertising(ctx, placement)
	if err != nil {
		m.log.Warn("failed to load advertising", "placement", placement, "error", err)
		return Ad{}
	}

	return NewAd(m.resolver, ad)
}

// Ads fetches both side slots independently of each other.
func (m *Manager) Ads(ctx context.Context) Ads {
	var ads Ads
	var eg errgroup.Group
	eg.Go(func() error {
		ads.Horizontal = m.Ad(ctx, PlacementHorizontal)
		return nil
	})
	eg.Go(func() error {
		ads.Vertical = m.Ad(ctx, PlacementVertical)
		return nil
	})
	_ = eg.Wait()

	return ads
}

// MountWithAds mounts src on l while the advertising slots load. The error
// is the mount error; the loader state already carries its message.
func (m *Manager) MountWithAds(ctx context.Context, l *Loader, src Source) (Ads, error) {
	var ads Ads
	var mountErr error

	var eg errgroup.Group
	eg.Go(func() error {
		mountErr = l.Mount(ctx, src)
		return nil
	})
	eg.Go(func() error {
		ads = m.Ads(ctx)
		return nil
	})
	_ = eg.Wait()

	return ads, mountErr
}

// ListPage fetches a single page of src without a loader.
func (m *Manager) ListPage(ctx context.Context, src Source, page int) (Page, error) {
	if page < 1 {
		page = 1
	}
	return src.Fetch(ctx, page)
}

// Post returns a single post, nil when the CMS does not know it.
func (m *Manager) Post(ctx context.Context, categoryID, subcategoryID string, id int) (*Post, error) {
	content, err := m.cms.Content(ctx, categoryID, subcategoryID, id)
	if cms.IsNotFound(err) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("cms get content: %w", err)
	}

	post := NewPost(m.resolver, content)
	return &post, nil
}

func (m *Manager) Share(p Post) Share {
	return NewShare(m.site, p)
}

func (m *Manager) Categories(ctx context.Context) ([]cms.Category, error) {
	categories, err := m.cms.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("cms get categories: %w", err)
	}

	return categories, nil
}

func (m *Manager) Subscribe(ctx context.Context, form cms.SubscribeForm) error {
	if err := m.cms.Subscribe(ctx, form); err != nil {
		return fmt.Errorf("cms subscribe: %w", err)
	}

	return nil
}

func (m *Manager) Settings(ctx context.Context) (cms.Settings, error) {
	settings, err := m.cms.Settings(ctx)
	if err != nil {
		return cms.Settings{}, fmt.Errorf("cms get settings: %w", err)
	}

	return settings, nil
}

package blog

import (
	"context"
	"fmt"

	"github.com/daniilsolovey/blogfront/internal/cms"
)

// Dashboard operations run with the bearer token of the signed in user.

func (m *Manager) Login(ctx context.Context, form cms.LoginForm) (cms.Session, error) {
	session, err := m.cms.Login(ctx, form)
	if err != nil {
		return cms.Session{}, fmt.Errorf("cms login: %w", err)
	}

	return session, nil
}

func (m *Manager) Logout(ctx context.Context, token string) error {
	return m.cms.WithToken(token).Logout(ctx)
}

func (m *Manager) Me(ctx context.Context, token string) (cms.User, error) {
	return m.cms.WithToken(token).Me(ctx)
}

// DashboardContents lists contents of every status and refreshes the
// status table with what the CMS reports.
func (m *Manager) DashboardContents(ctx context.Context, token string, page int) ([]Post, cms.Meta, error) {
	listing, err := m.cms.WithToken(token).DashboardContents(ctx, page)
	if err != nil {
		return nil, cms.Meta{}, fmt.Errorf("cms get dashboard contents: %w", err)
	}

	posts := NewPosts(m.resolver, listing.Items)
	m.statuses.Reset(posts)

	return posts, listing.Meta, nil
}

// ChangeStatus applies next optimistically. On failure the returned status
// is the one the dashboard shows after rollback.
func (m *Manager) ChangeStatus(ctx context.Context, token string, id int, next Status) (Status, error) {
	client := m.cms.WithToken(token)
	status, err := m.statuses.Change(ctx, id, next, func(ctx context.Context, id int, s Status) error {
		return client.UpdateContentStatus(ctx, id, string(s))
	})
	if err != nil {
		m.log.Error("failed to change content status", "id", id, "status", next, "error", err)
		return status, err
	}

	return status, nil
}

func (m *Manager) CreateContent(ctx context.Context, token string, form cms.ContentForm) (Post, error) {
	content, err := m.cms.WithToken(token).CreateContent(ctx, form)
	if err != nil {
		return Post{}, fmt.Errorf("cms create content: %w", err)
	}

	return NewPost(m.resolver, content), nil
}

func (m *Manager) UpdateContent(ctx context.Context, token string, id int, form cms.ContentForm) (Post, error) {
	content, err := m.cms.WithToken(token).UpdateContent(ctx, id, form)
	if err != nil {
		return Post{}, fmt.Errorf("cms update content: %w", err)
	}

	return NewPost(m.resolver, content), nil
}

func (m *Manager) DeleteContent(ctx context.Context, token string, id int) error {
	return m.cms.WithToken(token).DeleteContent(ctx, id)
}

func (m *Manager) CreateCategory(ctx context.Context, token string, form cms.CategoryForm) (cms.Category, error) {
	return m.cms.WithToken(token).CreateCategory(ctx, form)
}

func (m *Manager) UpdateCategory(ctx context.Context, token string, id int, form cms.CategoryForm) (cms.Category, error) {
	return m.cms.WithToken(token).UpdateCategory(ctx, id, form)
}

func (m *Manager) DeleteCategory(ctx context.Context, token string, id int) error {
	return m.cms.WithToken(token).DeleteCategory(ctx, id)
}

func (m *Manager) Subcategories(ctx context.Context, categoryID int) ([]cms.Subcategory, error) {
	return m.cms.Subcategories(ctx, categoryID)
}

func (m *Manager) CreateSubcategory(ctx context.Context, token string, form cms.SubcategoryForm) (cms.Subcategory, error) {
	return m.cms.WithToken(token).CreateSubcategory(ctx, form)
}

func (m *Manager) UpdateSubcategory(ctx context.Context, token string, id int, form cms.SubcategoryForm) (cms.Subcategory, error) {
	return m.cms.WithToken(token).UpdateSubcategory(ctx, id, form)
}

func (m *Manager) DeleteSubcategory(ctx context.Context, token string, id int) error {
	return m.cms.WithToken(token).DeleteSubcategory(ctx, id)
}

func (m *Manager) UpdateAd(ctx context.Context, token, placement string, form cms.AdForm) (Ad, error) {
	ad, err := m.cms.WithToken(token).UpdateAdvertising(ctx, placement, form)
	if err != nil {
		return Ad{}, fmt.Errorf("cms update advertising: %w", err)
	}

	return NewAd(m.resolver, ad), nil
}

func (m *Manager) Roles(ctx context.Context, token string) ([]cms.Role, error) {
	return m.cms.WithToken(token).Roles(ctx)
}

func (m *Manager) CreateRole(ctx context.Context, token string, form cms.RoleForm) (cms.Role, error) {
	return m.cms.WithToken(token).CreateRole(ctx, form)
}

func (m *Manager) DeleteRole(ctx context.Context, token string, id int) error {
	return m.cms.WithToken(token).DeleteRole(ctx, id)
}

func (m *Manager) Subscribers(ctx context.Context, token string, page int) ([]cms.Subscriber, cms.Meta, error) {
	return m.cms.WithToken(token).Subscribers(ctx, page)
}

func (m *Manager) DeleteSubscriber(ctx context.Context, token string, id int) error {
	return m.cms.WithToken(token).DeleteSubscriber(ctx, id)
}

func (m *Manager) UpdateSettings(ctx context.Context, token string, settings cms.Settings) (cms.Settings, error) {
	return m.cms.WithToken(token).UpdateSettings(ctx, settings)
}

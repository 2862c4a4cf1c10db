package rest

import (
	"github.com/daniilsolovey/blogfront/internal/blog"
	"github.com/daniilsolovey/blogfront/internal/session"
)

func NewPost(p blog.Post, share blog.Share) Post {
	return Post{
		ID:              p.ID,
		Heading:         string(p.Heading),
		SubHeading:      string(p.SubHeading),
		Body:            string(p.Body),
		Author:          p.Author,
		PublishedDate:   p.PublishedDate,
		CategoryID:      p.CategoryID,
		SubcategoryID:   p.SubcategoryID,
		CategoryName:    p.CategoryName,
		SubcategoryName: p.SubcategoryName,
		Image:           p.Image,
		AdImage:         p.AdImage,
		Tags:            p.Tags,
		Status:          string(p.Status),
		ShareURL:        share.URL,
	}
}

func (h *Handler) newPosts(posts []blog.Post) []Post {
	return blog.Map(posts, func(p blog.Post) Post {
		return NewPost(p, h.manager.Share(p))
	})
}

func NewPostsPage(posts []Post, page blog.Page) PostsPage {
	return PostsPage{
		Posts:    posts,
		Page:     page.Number,
		LastPage: page.LastPage,
		HasMore:  !page.IsLast(),
	}
}

func NewAd(a blog.Ad) Ad {
	return Ad{
		Code:  string(a.Code),
		Image: a.Image,
		Link:  a.Link,
	}
}

func NewAds(a blog.Ads) Ads {
	return Ads{
		Horizontal: NewAd(a.Horizontal),
		Vertical:   NewAd(a.Vertical),
	}
}

func (h *Handler) newItem(p blog.Post, menu *blog.ShareMenu) Item {
	return Item{
		Post:     p,
		Share:    h.manager.Share(p),
		MenuOpen: menu.IsOpen(p.ID),
	}
}

func (h *Handler) newItems(posts []*blog.Post, menu *blog.ShareMenu) []Item {
	items := make([]Item, 0, len(posts))
	for _, p := range posts {
		if p != nil {
			items = append(items, h.newItem(*p, menu))
		}
	}
	return items
}

// newList arranges the current state of a mount for rendering.
func (h *Handler) newList(m *session.Mount) List {
	v := blog.Arrange(m.Loader.State())

	list := List{
		MountID:      m.ID,
		ShowCards:    v.ShowCards,
		EmptyMessage: blog.NoContentMessage,
		Error:        v.Error,
		HasMore:      v.HasMore,
		Cards: blog.Map(v.Cards, func(p blog.Post) Item {
			return h.newItem(p, m.Menu)
		}),
	}

	if v.Featured != nil {
		featured := FeaturedItems{
			Secondary: h.newItems(v.Featured.Secondary[:], m.Menu),
			Tertiary:  h.newItems(v.Featured.Tertiary[:], m.Menu),
		}
		if v.Featured.Hero != nil {
			hero := h.newItem(*v.Featured.Hero, m.Menu)
			featured.Hero = &hero
		}
		list.Featured = &featured
	}

	return list
}

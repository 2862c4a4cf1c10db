package rpc

import (
	"github.com/daniilsolovey/blogfront/internal/blog"
	"github.com/daniilsolovey/blogfront/internal/cms"
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
		Tags:            p.Tags,
		ShareURL:        share.URL,
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

func NewSubcategory(s cms.Subcategory) Subcategory {
	return Subcategory{
		SubcategoryID: s.ID,
		Name:          s.Name,
	}
}

func NewCategory(c cms.Category) Category {
	return Category{
		CategoryID:    c.ID,
		Name:          c.Name,
		Subcategories: blog.Map(c.Subcategories, NewSubcategory),
	}
}

func NewCategories(in []cms.Category) []Category {
	return blog.Map(in, NewCategory)
}

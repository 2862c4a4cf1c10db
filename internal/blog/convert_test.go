package blog

import (
	"html/template"
	"testing"

	"github.com/daniilsolovey/blogfront/internal/cms"
	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string {
	return &s
}

func TestResolver_Resolve(t *testing.T) {
	r := NewResolver("https://api.example.com/")

	tests := []struct {
		name string
		path string
		want string
	}{
		{name: "blank", path: "", want: FallbackImage},
		{name: "whitespace", path: "  ", want: FallbackImage},
		{name: "relative", path: "images/a.jpg", want: "https://api.example.com/images/a.jpg"},
		{name: "leading slashes", path: "//images/a.jpg", want: "https://api.example.com/images/a.jpg"},
		{name: "absolute http", path: "http://cdn.example.com/a.jpg", want: "http://cdn.example.com/a.jpg"},
		{name: "absolute https", path: "https://cdn.example.com/a.jpg", want: "https://cdn.example.com/a.jpg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Resolve(tt.path)
			assert.Equal(t, tt.want, got)
			if tt.path != "" && tt.want != FallbackImage {
				assert.Equal(t, got, r.Resolve(got), "resolving twice must not change the url")
			}
		})
	}
}

func TestResolver_Pick(t *testing.T) {
	r := NewResolver("https://api.example.com")

	assert.Equal(t, "https://api.example.com/stored.jpg", r.Pick(strPtr("stored.jpg"), strPtr("https://x.test/link.jpg")))
	assert.Equal(t, "https://x.test/link.jpg", r.Pick(nil, strPtr("https://x.test/link.jpg")))
	assert.Equal(t, "https://x.test/link.jpg", r.Pick(strPtr(" "), strPtr("https://x.test/link.jpg")))
	assert.Equal(t, FallbackImage, r.Pick(nil, nil))
}

func TestNormalizeTags(t *testing.T) {
	assert.Equal(t, []string{"news", "sports"}, NormalizeTags([]string{"news", "", "  ", "sports"}))
	assert.Equal(t, []string{}, NormalizeTags(nil))
}

func TestNewPost(t *testing.T) {
	r := NewResolver("https://api.example.com")
	c := cms.Content{
		ID:              42,
		Heading:         `<h1 onclick="steal()">Hello <script>alert(1)</script>world</h1>`,
		SubHeading:      `<em>sub</em>`,
		Body:            `<p>body<img src="x" onerror="alert(1)"></p>`,
		Author:          "Ann",
		Date:            "2024-01-14",
		CategoryID:      3,
		SubcategoryID:   7,
		CategoryName:    "Music",
		SubcategoryName: "Jazz",
		Image:           strPtr("/uploads/a.jpg"),
		ImageLink:       strPtr("https://img.test/b.jpg"),
		AdLink:          strPtr("https://ads.test/banner.png"),
		Tags:            []string{"news", "", "  ", "sports"},
		Status:          "published",
	}

	p := NewPost(r, c)

	assert.Equal(t, 42, p.ID)
	assert.NotContains(t, string(p.Heading), "script")
	assert.NotContains(t, string(p.Heading), "onclick")
	assert.Contains(t, string(p.Heading), "Hello")
	assert.Equal(t, template.HTML("<em>sub</em>"), p.SubHeading)
	assert.NotContains(t, string(p.Body), "onerror")
	assert.Equal(t, "https://api.example.com/uploads/a.jpg", p.Image)
	assert.Equal(t, "https://ads.test/banner.png", p.AdImage)
	assert.Equal(t, []string{"news", "sports"}, p.Tags)
	assert.Equal(t, StatusPublished, p.Status)
	assert.Equal(t, "Music", p.CategoryName)
}

func TestNewPost_NoImages(t *testing.T) {
	p := NewPost(NewResolver("https://api.example.com"), cms.Content{ID: 1})

	assert.Equal(t, FallbackImage, p.Image)
	assert.Empty(t, p.AdImage)
}

func TestNewPage(t *testing.T) {
	l := cms.Listing{
		Items: []cms.Content{{ID: 1}, {ID: 2}},
		Meta:  cms.Meta{PageNumber: 2, TotalPages: 2},
	}

	page := NewPage(NewResolver(""), 2, l)
	assert.Equal(t, 2, page.Number)
	assert.Equal(t, 2, page.LastPage)
	assert.True(t, page.IsLast())
	assert.Len(t, page.Posts, 2)
}

func TestNewAd(t *testing.T) {
	r := NewResolver("https://api.example.com")

	ad := NewAd(r, cms.Ad{Code: strPtr(`<div>ad<script>x()</script></div>`)})
	assert.NotContains(t, string(ad.Code), "script")
	assert.False(t, ad.Empty())

	ad = NewAd(r, cms.Ad{Image: strPtr("ads/v.png"), Link: strPtr("https://shop.test")})
	assert.Equal(t, "https://api.example.com/ads/v.png", ad.Image)
	assert.Equal(t, "https://shop.test", ad.Link)

	assert.True(t, NewAd(r, cms.Ad{}).Empty())
}

func TestStripHTML(t *testing.T) {
	assert.Equal(t, "Tom & Jerry", StripHTML(template.HTML("<b>Tom &amp; Jerry</b>")))
	assert.Equal(t, "", StripHTML(""))
}

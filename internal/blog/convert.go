package blog

import (
	"html"
	"html/template"
	"strings"

	"github.com/daniilsolovey/blogfront/internal/cms"
	"github.com/microcosm-cc/bluemonday"
)

var (
	richTextPolicy  = bluemonday.UGCPolicy()
	stripTagsPolicy = bluemonday.StripTagsPolicy()
)

// SanitizeHTML cleans CMS supplied rich text so it can be rendered verbatim.
func SanitizeHTML(s string) template.HTML {
	return template.HTML(richTextPolicy.Sanitize(s))
}

// StripHTML returns the plain text of an HTML fragment.
func StripHTML[S ~string](s S) string {
	return strings.TrimSpace(html.UnescapeString(stripTagsPolicy.Sanitize(string(s))))
}

// NormalizeTags drops blank tags keeping the order of the rest.
func NormalizeTags(tags []string) []string {
	result := make([]string, 0, len(tags))
	for _, tag := range tags {
		if strings.TrimSpace(tag) == "" {
			continue
		}
		result = append(result, tag)
	}

	return result
}

func Map[From, To any](list []From, converter func(From) To) []To {
	result := make([]To, len(list))
	for i := range list {
		result[i] = converter(list[i])
	}
	return result
}

// NewPost converts a CMS content into a Post. This is the only place
// where CMS rich text enters the site.
func NewPost(r Resolver, c cms.Content) Post {
	post := Post{
		ID:              c.ID,
		Heading:         SanitizeHTML(c.Heading),
		SubHeading:      SanitizeHTML(c.SubHeading),
		Body:            SanitizeHTML(c.Body),
		Author:          c.Author,
		PublishedDate:   c.Date,
		CategoryID:      c.CategoryID,
		SubcategoryID:   c.SubcategoryID,
		CategoryName:    c.CategoryName,
		SubcategoryName: c.SubcategoryName,
		Image:           r.Pick(c.Image, c.ImageLink),
		Tags:            NormalizeTags(c.Tags),
		Status:          Status(c.Status),
	}

	if !blank(c.AdImage) || !blank(c.AdLink) {
		post.AdImage = r.Pick(c.AdImage, c.AdLink)
	}

	return post
}

func NewPosts(r Resolver, contents []cms.Content) []Post {
	return Map(contents, func(c cms.Content) Post {
		return NewPost(r, c)
	})
}

// NewPage converts a CMS listing fetched for page number.
func NewPage(r Resolver, number int, l cms.Listing) Page {
	return Page{
		Number:   number,
		Posts:    NewPosts(r, l.Items),
		LastPage: l.Meta.LastPage(),
	}
}

func NewAd(r Resolver, a cms.Ad) Ad {
	var ad Ad
	if a.Code != nil {
		ad.Code = SanitizeHTML(*a.Code)
	}
	if !blank(a.Image) {
		ad.Image = r.Resolve(*a.Image)
	}
	if a.Link != nil {
		ad.Link = *a.Link
	}

	return ad
}

func blank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}

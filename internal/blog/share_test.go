package blog

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewShare(t *testing.T) {
	p := Post{
		ID:            42,
		CategoryID:    3,
		SubcategoryID: 7,
		Heading:       SanitizeHTML("<b>Big</b> news"),
		SubHeading:    SanitizeHTML("<i>read</i> this"),
	}

	s := NewShare("https://example.com/", p)

	assert.Equal(t, "https://example.com/blogs/3/7/42", s.URL)
	assert.Equal(t, "Big news", s.Title)
	assert.Equal(t, "read this", s.Text)
	require.Len(t, s.Links, 3)

	for _, link := range s.Links {
		u, err := url.Parse(link.URL)
		require.NoError(t, err)
		q := u.Query()
		shared := q.Get("u")
		if shared == "" {
			shared = q.Get("url")
		}
		assert.Equal(t, s.URL, shared, link.Name)
	}

	x, err := url.Parse(s.Links[1].URL)
	require.NoError(t, err)
	assert.Equal(t, "Big news", x.Query().Get("text"))
}

func TestShareURL(t *testing.T) {
	p := Post{ID: 42, CategoryID: 3, SubcategoryID: 7}
	assert.Equal(t, "https://example.com/blogs/3/7/42", ShareURL("https://example.com", p))
}

func TestShareMenu(t *testing.T) {
	var m ShareMenu

	_, ok := m.Open()
	assert.False(t, ok)

	m.Toggle(1)
	assert.True(t, m.IsOpen(1))

	m.Toggle(2)
	assert.False(t, m.IsOpen(1))
	assert.True(t, m.IsOpen(2))

	m.Toggle(2)
	_, ok = m.Open()
	assert.False(t, ok)

	m.Toggle(3)
	m.Close()
	assert.False(t, m.IsOpen(3))
}

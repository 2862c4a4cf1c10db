package blog

import (
	"fmt"
	"net/url"
	"strings"
	"sync"
)

type ShareLink struct {
	Name string
	URL  string
}

// Share holds what the native share sheet and the fallback menu need.
type Share struct {
	URL   string
	Title string
	Text  string
	Links []ShareLink
}

// ShareURL is the canonical address of a post on site.
func ShareURL(site string, p Post) string {
	return fmt.Sprintf("%s/blogs/%d/%d/%d", strings.TrimRight(site, "/"), p.CategoryID, p.SubcategoryID, p.ID)
}

func NewShare(site string, p Post) Share {
	s := Share{
		URL:   ShareURL(site, p),
		Title: StripHTML(p.Heading),
		Text:  StripHTML(p.SubHeading),
	}

	s.Links = []ShareLink{
		{
			Name: "Facebook",
			URL:  "https://www.facebook.com/sharer/sharer.php?" + url.Values{"u": {s.URL}}.Encode(),
		},
		{
			Name: "X",
			URL:  "https://twitter.com/intent/tweet?" + url.Values{"url": {s.URL}, "text": {s.Title}}.Encode(),
		},
		{
			Name: "LinkedIn",
			URL:  "https://www.linkedin.com/sharing/share-offsite/?" + url.Values{"url": {s.URL}}.Encode(),
		},
	}

	return s
}

// ShareMenu tracks the one fallback share menu open in a list.
type ShareMenu struct {
	mu   sync.Mutex
	open int
	set  bool
}

// Toggle opens the menu of post id, closing any other, or closes it when it
// is already open.
func (m *ShareMenu) Toggle(id int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.set && m.open == id {
		m.set = false
		return
	}
	m.open, m.set = id, true
}

func (m *ShareMenu) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.set = false
}

func (m *ShareMenu) Open() (int, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.open, m.set
}

func (m *ShareMenu) IsOpen(id int) bool {
	open, ok := m.Open()
	return ok && open == id
}

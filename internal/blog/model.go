package blog

import (
	"html/template"
	"slices"
)

type Status string

const (
	StatusPending       Status = "pending"
	StatusActive        Status = "active"
	StatusInReview      Status = "in-review"
	StatusPublished     Status = "published"
	StatusArchived      Status = "archived"
	StatusNeedsRevision Status = "needs-revision"
	StatusRejected      Status = "rejected"
)

// Statuses lists workflow states in dropdown order. Any state may follow any other.
var Statuses = []Status{
	StatusPending,
	StatusActive,
	StatusInReview,
	StatusPublished,
	StatusArchived,
	StatusNeedsRevision,
	StatusRejected,
}

func (s Status) Valid() bool {
	return slices.Contains(Statuses, s)
}

// Post is a content item as the site renders it. Rich text fields are
// already sanitized.
type Post struct {
	ID              int
	Heading         template.HTML
	SubHeading      template.HTML
	Body            template.HTML
	Author          string
	PublishedDate   string
	CategoryID      int
	SubcategoryID   int
	CategoryName    string
	SubcategoryName string
	Image           string
	AdImage         string
	Tags            []string
	Status          Status
}

// Page is one fetched page of a listing.
type Page struct {
	Number   int
	Posts    []Post
	LastPage int
}

func (p Page) IsLast() bool {
	return p.Number >= p.LastPage
}

// Ad is the content of one advertising slot; an empty Ad renders nothing.
type Ad struct {
	Code  template.HTML
	Image string
	Link  string
}

func (a Ad) Empty() bool {
	return a.Code == "" && a.Image == ""
}

type Ads struct {
	Horizontal Ad
	Vertical   Ad
}

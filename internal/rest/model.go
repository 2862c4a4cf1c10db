package rest

import (
	"github.com/daniilsolovey/blogfront/internal/blog"
	"github.com/daniilsolovey/blogfront/internal/cms"
)

type PageRequest struct {
	Page int `query:"page"`
}

type Post struct {
	ID              int      `json:"id"`
	Heading         string   `json:"heading"`
	SubHeading      string   `json:"subHeading"`
	Body            string   `json:"body"`
	Author          string   `json:"author"`
	PublishedDate   string   `json:"publishedDate"`
	CategoryID      int      `json:"categoryId"`
	SubcategoryID   int      `json:"subcategoryId"`
	CategoryName    string   `json:"categoryName"`
	SubcategoryName string   `json:"subcategoryName"`
	Image           string   `json:"image"`
	AdImage         string   `json:"advertisingImage,omitempty"`
	Tags            []string `json:"tags"`
	Status          string   `json:"status,omitempty"`
	ShareURL        string   `json:"shareUrl"`
}

type PostsPage struct {
	Posts    []Post `json:"posts"`
	Page     int    `json:"page"`
	LastPage int    `json:"lastPage"`
	HasMore  bool   `json:"hasMore"`
}

type Ad struct {
	Code  string `json:"code,omitempty"`
	Image string `json:"image,omitempty"`
	Link  string `json:"link,omitempty"`
}

type Ads struct {
	Horizontal Ad `json:"horizontal"`
	Vertical   Ad `json:"vertical"`
}

type StatusResponse struct {
	ID     int    `json:"id"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type DashboardContents struct {
	Posts    []Post   `json:"posts"`
	Page     int      `json:"page"`
	LastPage int      `json:"lastPage"`
	Statuses []string `json:"statuses"`
}

type SessionResponse struct {
	Token      string    `json:"token"`
	User       cms.User  `json:"user"`
	Navigation []NavItem `json:"navigation"`
}

type Subscribers struct {
	Subscribers []cms.Subscriber `json:"subscribers"`
	Page        int              `json:"page"`
	LastPage    int              `json:"lastPage"`
}

// Item is a post as a listing renders it.
type Item struct {
	Post     blog.Post
	Share    blog.Share
	MenuOpen bool
}

type FeaturedItems struct {
	Hero      *Item
	Secondary []Item
	Tertiary  []Item
}

// List is the part of a listing page the load-more and share endpoints
// re-render.
type List struct {
	MountID      string
	Featured     *FeaturedItems
	Cards        []Item
	ShowCards    bool
	EmptyMessage string
	Error        string
	HasMore      bool
}

type Page struct {
	Title    string
	Settings cms.Settings
	Ads      blog.Ads
}

type ListingPage struct {
	Page
	List List
}

type PostPage struct {
	Page
	Post  blog.Post
	Share blog.Share
}

package cms

// Envelope is the wrapper every CMS endpoint responds with. Listing and
// public endpoints report the outcome in "success", dashboard mutations in
// "status"; a missing flag means the HTTP status alone decides.
type Envelope[T any] struct {
	Success *bool  `json:"success,omitempty"`
	Status  *bool  `json:"status,omitempty"`
	Message string `json:"message,omitempty"`
	Data    T      `json:"data"`
	Meta    *Meta  `json:"meta,omitempty"`
}

func (e Envelope[T]) OK() bool {
	if e.Success != nil {
		return *e.Success
	}
	if e.Status != nil {
		return *e.Status
	}

	return true
}

// Meta is the pagination block of a listing envelope. Content endpoints send
// current_page/last_page, the home and shows endpoints send page/total_pages.
type Meta struct {
	CurrentPage int `json:"current_page,omitempty"`
	PageNumber  int `json:"page,omitempty"`
	PerPage     int `json:"per_page,omitempty"`
	Total       int `json:"total,omitempty"`
	LastPageNum int `json:"last_page,omitempty"`
	TotalPages  int `json:"total_pages,omitempty"`
}

func (m Meta) Page() int {
	if m.CurrentPage > 0 {
		return m.CurrentPage
	}
	return m.PageNumber
}

func (m Meta) LastPage() int {
	if m.LastPageNum > 0 {
		return m.LastPageNum
	}
	return m.TotalPages
}

// Listing is one page of contents together with its pagination meta.
type Listing struct {
	Items []Content
	Meta  Meta
}

type Content struct {
	ID              int      `json:"id"`
	Heading         string   `json:"heading"`
	SubHeading      string   `json:"sub_heading"`
	Body            string   `json:"body"`
	Author          string   `json:"author"`
	Date            string   `json:"date"`
	CategoryID      int      `json:"category_id"`
	SubcategoryID   int      `json:"subcategory_id"`
	CategoryName    string   `json:"category_name"`
	SubcategoryName string   `json:"subcategory_name"`
	Image           *string  `json:"image"`
	ImageLink       *string  `json:"image_link"`
	AdImage         *string  `json:"advertising_image"`
	AdLink          *string  `json:"advertising_link"`
	Tags            []string `json:"tags"`
	Status          string   `json:"status"`
}

type Ad struct {
	Code  *string `json:"code,omitempty"`
	Image *string `json:"image,omitempty"`
	Link  *string `json:"link,omitempty"`
}

type Category struct {
	ID            int           `json:"id"`
	Name          string        `json:"name"`
	Subcategories []Subcategory `json:"subcategories,omitempty"`
}

type Subcategory struct {
	ID         int    `json:"id"`
	CategoryID int    `json:"category_id"`
	Name       string `json:"name"`
}

type Role struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Permissions []string `json:"permissions"`
}

type Subscriber struct {
	ID        int    `json:"id"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
}

type User struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type Link struct {
	Title string `json:"title" validate:"required,max=64"`
	URL   string `json:"url" validate:"required,url"`
}

// SiteBlock is the theming of the site header or footer.
type SiteBlock struct {
	Logo            *string `json:"logo,omitempty"`
	BackgroundColor string  `json:"background_color" validate:"omitempty,hexcolor"`
	TextColor       string  `json:"text_color" validate:"omitempty,hexcolor"`
	Links           []Link  `json:"links" validate:"dive"`
	Copyright       string  `json:"copyright,omitempty" validate:"max=255"`
}

type Settings struct {
	Header SiteBlock `json:"header"`
	Footer SiteBlock `json:"footer"`
}

package rpc

type ListFilter struct {
	//kind listing kind: home, category, shows or tag
	Kind string `json:"kind"`
	//categoryId category of a category listing
	CategoryID string `json:"categoryId,omitempty"`
	//subcategoryId subcategory of a category listing
	SubcategoryID string `json:"subcategoryId,omitempty"`
	//category optional category name of a home listing
	Category string `json:"category,omitempty"`
	//tag tag of a tag listing
	Tag string `json:"tag,omitempty"`
	//page=1 page number (1-based)
	Page *int `json:"page,omitempty"`
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
	Tags            []string `json:"tags"`
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

type Subcategory struct {
	SubcategoryID int    `json:"subcategoryId"`
	Name          string `json:"name"`
}

type Category struct {
	CategoryID    int           `json:"categoryId"`
	Name          string        `json:"name"`
	Subcategories []Subcategory `json:"subcategories"`
}

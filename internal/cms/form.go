package cms

// Forms are sent to the dashboard mutation endpoints. The validate tags are
// checked before anything reaches the network.

type LoginForm struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type CategoryForm struct {
	Name string `json:"name" validate:"required,max=100"`
}

type SubcategoryForm struct {
	CategoryID int    `json:"category_id" validate:"required,gt=0"`
	Name       string `json:"name" validate:"required,max=100"`
}

type ContentForm struct {
	Heading       string   `json:"heading" validate:"required,max=500"`
	SubHeading    string   `json:"sub_heading" validate:"max=1000"`
	Body          string   `json:"body" validate:"required"`
	Author        string   `json:"author" validate:"required,max=100"`
	Date          string   `json:"date" validate:"omitempty,datetime=2006-01-02"`
	CategoryID    int      `json:"category_id" validate:"required,gt=0"`
	SubcategoryID int      `json:"subcategory_id" validate:"required,gt=0"`
	Image         string   `json:"image,omitempty"`
	ImageLink     string   `json:"image_link,omitempty" validate:"omitempty,url"`
	AdImage       string   `json:"advertising_image,omitempty"`
	AdLink        string   `json:"advertising_link,omitempty" validate:"omitempty,url"`
	Tags          []string `json:"tags" validate:"max=20,dive,max=50"`
	Status        string   `json:"status,omitempty" validate:"omitempty,oneof=pending active in-review published archived needs-revision rejected"`
}

type StatusForm struct {
	Status string `json:"status" validate:"required,oneof=pending active in-review published archived needs-revision rejected"`
}

type AdForm struct {
	Code  string `json:"code,omitempty" validate:"required_without_all=Image Link"`
	Image string `json:"image,omitempty"`
	Link  string `json:"link,omitempty" validate:"omitempty,url"`
}

type RoleForm struct {
	Name        string   `json:"name" validate:"required,max=50"`
	Permissions []string `json:"permissions" validate:"dive,required"`
}

type SubscribeForm struct {
	Email string `json:"email" validate:"required,email"`
}

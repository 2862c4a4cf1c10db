package blog

// FeaturedCount is the number of posts the featured layout holds.
const FeaturedCount = 5

// NoContentMessage is rendered by an empty card grid.
const NoContentMessage = "No content available"

// Featured maps the first posts to the hero, two stacked secondary slots
// and two side-by-side tertiary slots. Slots without a post stay nil.
type Featured struct {
	Hero      *Post
	Secondary [2]*Post
	Tertiary  [2]*Post
}

func NewFeatured(posts []Post) Featured {
	slot := func(i int) *Post {
		if i < len(posts) {
			return &posts[i]
		}
		return nil
	}

	return Featured{
		Hero:      slot(0),
		Secondary: [2]*Post{slot(1), slot(2)},
		Tertiary:  [2]*Post{slot(3), slot(4)},
	}
}

// View is what a listing renders for a loader state.
type View struct {
	Featured  *Featured
	Cards     []Post
	ShowCards bool
	Error     string
	HasMore   bool
	Fetching  bool
}

// Empty reports whether the card grid shows the no-content message.
func (v View) Empty() bool {
	return v.ShowCards && len(v.Cards) == 0
}

// Arrange decides the layout. Fewer than FeaturedCount posts, or any state
// after the first load-more, renders the card grid only. Otherwise the first
// FeaturedCount posts are featured and the rest go to the grid, which is
// omitted when there is no rest.
func Arrange(s State) View {
	v := View{
		Error:    s.Error,
		HasMore:  s.HasMore,
		Fetching: s.Fetching,
	}

	if s.ShowAll || len(s.Posts) < FeaturedCount {
		v.Cards = s.Posts
		v.ShowCards = true
		return v
	}

	featured := NewFeatured(s.Posts[:FeaturedCount])
	v.Featured = &featured
	v.Cards = s.Posts[FeaturedCount:]
	v.ShowCards = len(v.Cards) > 0

	return v
}

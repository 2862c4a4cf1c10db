package blog

import "strings"

// FallbackImage is served when a post has no image at all.
const FallbackImage = "/static/img/placeholder.svg"

// Resolver turns backend asset paths into absolute URLs.
type Resolver struct {
	origin   string
	fallback string
}

func NewResolver(origin string) Resolver {
	return Resolver{
		origin:   strings.TrimRight(origin, "/"),
		fallback: FallbackImage,
	}
}

// Resolve returns the fallback for a blank path, keeps URLs that already
// carry a scheme and prefixes everything else with the backend origin.
func (r Resolver) Resolve(path string) string {
	path = strings.TrimSpace(path)
	switch {
	case path == "":
		return r.fallback
	case strings.HasPrefix(path, "http"):
		return path
	}

	return r.origin + "/" + strings.TrimLeft(path, "/")
}

// Pick resolves an image given as a stored file and a manually supplied
// link. The stored file wins when both are set.
func (r Resolver) Pick(stored, link *string) string {
	if !blank(stored) {
		return r.Resolve(*stored)
	}
	if !blank(link) {
		return r.Resolve(*link)
	}

	return r.fallback
}

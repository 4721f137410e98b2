package domain

import "time"

// HeaderImage is the picture shown on top of an article.
type HeaderImage struct {
	URL string
	Alt string
}

// Article is a blog post.
type Article struct {
	ID          string
	Title       string
	Date        time.Time
	HeaderImage HeaderImage
	Excerpt     string
	Category    string
	Content     string
}

// ArticlePatch carries the fields of a partial article update. Nil fields are left untouched.
type ArticlePatch struct {
	Title          *string
	Date           *time.Time
	HeaderImageURL *string
	HeaderImageAlt *string
	Excerpt        *string
	Category       *string
	Content        *string
}

// Apply returns a copy of a with the patch fields replaced.
func (p ArticlePatch) Apply(a Article) Article {
	if p.Title != nil {
		a.Title = *p.Title
	}
	if p.Date != nil {
		a.Date = *p.Date
	}
	if p.HeaderImageURL != nil {
		a.HeaderImage.URL = *p.HeaderImageURL
	}
	if p.HeaderImageAlt != nil {
		a.HeaderImage.Alt = *p.HeaderImageAlt
	}
	if p.Excerpt != nil {
		a.Excerpt = *p.Excerpt
	}
	if p.Category != nil {
		a.Category = *p.Category
	}
	if p.Content != nil {
		a.Content = *p.Content
	}
	return a
}

// IsEmpty reports whether the patch changes nothing.
func (p ArticlePatch) IsEmpty() bool {
	return p.Title == nil && p.Date == nil && p.HeaderImageURL == nil && p.HeaderImageAlt == nil &&
		p.Excerpt == nil && p.Category == nil && p.Content == nil
}

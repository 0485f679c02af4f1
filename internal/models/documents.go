package models

import "time"

// Slug mirrors the content store's slug object
type Slug struct {
	Current string `json:"current,omitempty"`
}

// Image is a reference to an asset in the content store
type Image struct {
	Asset   AssetRef `json:"asset,omitempty"`
	Alt     string   `json:"alt,omitempty"`
	Caption string   `json:"caption,omitempty"`
}

type AssetRef struct {
	Ref string `json:"_ref,omitempty"`
}

// SEO holds optional per-record overrides for meta tags
type SEO struct {
	MetaTitle       string `json:"metaTitle,omitempty"`
	MetaDescription string `json:"metaDescription,omitempty"`
	ShareImage      *Image `json:"shareImage,omitempty"`
}

// Document is the shape common to all long-form content records.
// A record with no PublishedAt is a draft for sorting purposes
// but still reachable by direct slug lookup.
type Document struct {
	ID          string     `json:"_id,omitempty"`
	Title       string     `json:"title,omitempty"`
	Slug        Slug       `json:"slug,omitempty"`
	Excerpt     string     `json:"excerpt,omitempty"`
	Body        []Block    `json:"body,omitempty"`
	Topics      []string   `json:"topics,omitempty"`
	MainImage   *Image     `json:"mainImage,omitempty"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
	SEO         *SEO       `json:"seo,omitempty"`
}

// Guide is a practical legal-education guide
type Guide struct {
	Document
	RelatedArticles []Post `json:"relatedArticles,omitempty"`
}

// Post is an editorial article in the resources section
type Post struct {
	Document
	Author       *TeamMember `json:"author,omitempty"`
	RelatedPosts []Post      `json:"relatedPosts,omitempty"`
}

// NewsArticle is a short newsroom item
type NewsArticle struct {
	Document
	Source string `json:"source,omitempty"`
}

// WhitePaper is a downloadable research publication
type WhitePaper struct {
	Document
	Abstract    string `json:"abstract,omitempty"`
	DownloadURL string `json:"downloadUrl,omitempty"`
}

// TeamMember is used standalone on the About page
// and by reference as an event speaker
type TeamMember struct {
	ID            string `json:"_id,omitempty"`
	Name          string `json:"name,omitempty"`
	Role          string `json:"role,omitempty"`
	Bio           string `json:"bio,omitempty"`
	Image         *Image `json:"image,omitempty"`
	LinkedInURL   string `json:"linkedinUrl,omitempty"`
	AdvisoryBoard bool   `json:"advisoryBoard,omitempty"`
}

// SiteSettings is a singleton record of global defaults.
// Absence is valid, the app supplies hard-coded defaults.
type SiteSettings struct {
	SiteName     string `json:"siteName,omitempty"`
	Tagline      string `json:"tagline,omitempty"`
	ContactEmail string `json:"contactEmail,omitempty"`
	ContactPhone string `json:"contactPhone,omitempty"`
	Address      string `json:"address,omitempty"`
	SocialImage  *Image `json:"socialImage,omitempty"`
}

// Published reports whether the record carries a publication timestamp
func (d *Document) Published() bool {
	return d.PublishedAt != nil && !d.PublishedAt.IsZero()
}

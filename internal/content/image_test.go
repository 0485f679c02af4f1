package content

import (
	"testing"

	"github.com/lexcentre/website/internal/models"
)

func TestImageResolverURL(t *testing.T) {

	resolver := NewImageResolver("abc123", "production", 800)

	tests := []struct {
		name, ref, expected string
	}{
		{
			"valid reference",
			"image-f00ba4-1200x630-jpg",
			"https://cdn.sanity.io/images/abc123/production/f00ba4-1200x630.jpg?w=800&auto=format",
		},
		{"empty reference", "", ""},
		{"missing dimensions", "image-f00ba4-jpg", ""},
		{"wrong prefix", "file-f00ba4-1200x630-jpg", ""},
		{"garbage", "not a reference", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolver.URL(models.AssetRef{Ref: tt.ref})
			if got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestImageResolverImageURL(t *testing.T) {

	resolver := NewImageResolver("abc123", "production", 400)

	if got := resolver.ImageURL(nil); got != "" {
		t.Errorf("got %q for nil image, want empty string", got)
	}

	img := &models.Image{Asset: models.AssetRef{Ref: "image-aa11-100x100-png"}}
	want := "https://cdn.sanity.io/images/abc123/production/aa11-100x100.png?w=400&auto=format"
	if got := resolver.ImageURL(img); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

package content

import (
	"fmt"
	"regexp"

	"github.com/lexcentre/website/internal/models"
)

// Asset references look like image-<id>-<width>x<height>-<format>
var validImageRef = regexp.MustCompile(`^image-([a-zA-Z0-9]+)-(\d+x\d+)-([a-z]+)$`)

// ImageResolver turns asset references into displayable CDN URLs
// at a fixed target width
type ImageResolver struct {
	projectID string
	dataset   string
	width     int
}

func NewImageResolver(projectID, dataset string, width int) *ImageResolver {
	return &ImageResolver{
		projectID: projectID,
		dataset:   dataset,
		width:     width,
	}
}

// URL resolves an asset reference to the store's image CDN.
// An unparseable reference resolves to an empty string and the
// templates skip the image.
func (ir *ImageResolver) URL(ref models.AssetRef) string {

	matches := validImageRef.FindStringSubmatch(ref.Ref)
	if len(matches) != 4 {
		return ""
	}

	return fmt.Sprintf(
		"https://cdn.sanity.io/images/%s/%s/%s-%s.%s?w=%d&auto=format",
		ir.projectID, ir.dataset, matches[1], matches[2], matches[3], ir.width,
	)
}

// ImageURL resolves an optional image, nil safe
func (ir *ImageResolver) ImageURL(img *models.Image) string {
	if img == nil {
		return ""
	}
	return ir.URL(img.Asset)
}

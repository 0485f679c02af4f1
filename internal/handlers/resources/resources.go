package resources

import (
	"github.com/lexcentre/website/internal/config"
	"github.com/lexcentre/website/internal/content"
	"github.com/lexcentre/website/internal/richtext"
	"github.com/lexcentre/website/internal/ui"
)

type Service struct {
	fetcher  content.Fetcher
	ui       ui.Service
	richtext *richtext.Renderer
	images   *content.ImageResolver
	config   *config.Config
}

func New(
	fetcher content.Fetcher,
	ui ui.Service,
	richtext *richtext.Renderer,
	images *content.ImageResolver,
	config *config.Config,
) *Service {
	return &Service{
		fetcher:  fetcher,
		ui:       ui,
		richtext: richtext,
		images:   images,
		config:   config,
	}
}

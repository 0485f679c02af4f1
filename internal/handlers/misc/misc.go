package misc

import (
	"github.com/lexcentre/website/internal/config"
	"github.com/lexcentre/website/internal/content"
	"github.com/lexcentre/website/internal/ui"
)

type Service struct {
	config  *config.Config
	fetcher content.Fetcher
	ui      ui.Service
}

func New(config *config.Config, fetcher content.Fetcher, ui ui.Service) *Service {
	return &Service{
		config:  config,
		fetcher: fetcher,
		ui:      ui,
	}
}

package sitemaps

import (
	"github.com/lexcentre/website/internal/config"
	"github.com/lexcentre/website/internal/content"
	"github.com/lexcentre/website/internal/ui"
)

type Service struct {
	fetcher content.Fetcher
	ui      ui.Service
	config  *config.Config
}

func New(fetcher content.Fetcher, ui ui.Service, config *config.Config) *Service {
	return &Service{
		fetcher: fetcher,
		ui:      ui,
		config:  config,
	}
}

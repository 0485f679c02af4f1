package forms

import (
	"github.com/lexcentre/website/internal/config"
	"github.com/lexcentre/website/internal/mailer"
	"github.com/lexcentre/website/internal/ui"
)

type Service struct {
	mailer mailer.Service
	ui     ui.Service
	config *config.Config
}

func New(mailer mailer.Service, ui ui.Service, config *config.Config) *Service {
	return &Service{
		mailer: mailer,
		ui:     ui,
		config: config,
	}
}

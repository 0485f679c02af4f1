package app

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/sessions"
	"github.com/lexcentre/website/internal/config"
	"github.com/lexcentre/website/internal/content"
	"github.com/lexcentre/website/internal/handlers/events"
	"github.com/lexcentre/website/internal/handlers/feeds"
	"github.com/lexcentre/website/internal/handlers/forms"
	"github.com/lexcentre/website/internal/handlers/misc"
	"github.com/lexcentre/website/internal/handlers/news"
	"github.com/lexcentre/website/internal/handlers/pages"
	"github.com/lexcentre/website/internal/handlers/resources"
	"github.com/lexcentre/website/internal/handlers/sitemaps"
	"github.com/lexcentre/website/internal/mailer"
	"github.com/lexcentre/website/internal/middlewares"
	"github.com/lexcentre/website/internal/richtext"
	"github.com/lexcentre/website/internal/ui"
)

// App holds the HTTP server and every request-serving service
type App struct {
	server *http.Server
	config *config.Config
	mw     *middlewares.Service

	pages     *pages.Service
	events    *events.Service
	news      *news.Service
	resources *resources.Service
	forms     *forms.Service
	feeds     *feeds.Service
	sitemaps  *sitemaps.Service
	misc      *misc.Service
}

// New wires the whole application together
func New() *App {

	cfg := config.New()

	// Flash-message cookie store
	store := sessions.NewCookieStore(cfg.AuthKey.Bytes, cfg.EncryptionKey.Bytes)
	store.Options.HttpOnly = true
	store.Options.Secure = !cfg.Debug

	// Content store client and the derived helpers
	fetcher := content.New(cfg)
	images := content.NewImageResolver(cfg.StoreProjectID, cfg.StoreDataset, cfg.StoreImageWidth)
	renderer := richtext.New(images)

	// Outbound email
	mail := mailer.New(cfg)

	// Templates, static files, flashes, rendering
	uiService := ui.New(fetcher, store, cfg)

	app := &App{
		config: cfg,
		mw:     middlewares.New(uiService, cfg),

		pages:     pages.New(fetcher, uiService, cfg),
		events:    events.New(fetcher, uiService, renderer, images, cfg),
		news:      news.New(fetcher, uiService, renderer, images, cfg),
		resources: resources.New(fetcher, uiService, renderer, images, cfg),
		forms:     forms.New(mail, uiService, cfg),
		feeds:     feeds.New(fetcher, uiService, cfg),
		sitemaps:  sitemaps.New(fetcher, uiService, cfg),
		misc:      misc.New(cfg, fetcher, uiService),
	}

	app.server = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	return app
}

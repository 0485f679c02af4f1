package config

import (
	"encoding/base64"
	"fmt"
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Secret struct {
	Bytes []byte
}

type Config struct {
	// Running localy or not
	Debug    bool   `env:"DEBUG" envDefault:"false"`
	Protocol string `env:"PROTOCOL" envDefault:"https"`

	// Sessions
	CsrfKey          Secret `env:"CSRF_KEY"`
	AuthKey          Secret `env:"AUTH_KEY"`
	EncryptionKey    Secret `env:"ENCRYPTION_KEY"`
	FlashSessionName string `env:"FLASH_SESSION_NAME" envDefault:"_site_flash"`

	// Site settings
	SiteName        string `env:"SITE_NAME" envDefault:"LexCentre"`
	SiteDescription string `env:"SITE_DESCRIPTION" envDefault:"Centre for Legal Education"`
	Domain          string `env:"DOMAIN" envDefault:"localhost:5000"`
	FeedMaxItems    int    `env:"FEED_MAX_ITEMS" envDefault:"50"`

	// Content store (headless CMS) settings
	StoreProjectID  string        `env:"STORE_PROJECT_ID"`
	StoreDataset    string        `env:"STORE_DATASET" envDefault:"production"`
	StoreAPIVersion string        `env:"STORE_API_VERSION" envDefault:"2024-01-01"`
	StoreToken      string        `env:"STORE_TOKEN"`
	StoreUseCDN     bool          `env:"STORE_USE_CDN" envDefault:"true"`
	StoreTimeout    time.Duration `env:"STORE_TIMEOUT" envDefault:"15s"`
	StoreImageWidth int           `env:"STORE_IMAGE_WIDTH" envDefault:"800"`

	// Outbound email settings
	EmailAPIKey     string `env:"EMAIL_API_KEY"`
	EmailFrom       string `env:"EMAIL_FROM" envDefault:"no-reply@lexcentre.org"`
	ContactInbox    string `env:"CONTACT_INBOX" envDefault:"info@lexcentre.org"`
	NewsletterInbox string `env:"NEWSLETTER_INBOX" envDefault:"newsletter@lexcentre.org"`

	// Local app host and port
	Host string `env:"HOST" envDefault:"localhost"`
	Port int    `env:"PORT" envDefault:"5000"`
}

// New creates new config object
func New() *Config {

	// Load the .env file if any, for local development.
	// Variables already set in the environment win.
	_ = godotenv.Load()

	// Parse the config from the environment
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("failed to parse the config; %v", err)
	}

	// Check if the app has all the necessary secrets
	secrets := []Secret{cfg.CsrfKey, cfg.AuthKey, cfg.EncryptionKey}
	for _, secret := range secrets {
		if len(secret.Bytes) == 0 && !cfg.Debug {
			log.Fatal("empty or no secret key defined in env")
		}
	}

	return &cfg
}

// BaseURL constructs the canonical site root, no trailing slash
func (c *Config) BaseURL() string {
	return fmt.Sprintf("%s://%s", c.Protocol, c.Domain)
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
// It's called by the env library to decode the Secret.
func (s *Secret) UnmarshalText(text []byte) error {

	s.Bytes = make([]byte, base64.StdEncoding.DecodedLen(len(text)))
	n, err := base64.StdEncoding.Decode(s.Bytes, text)
	if err != nil {
		return fmt.Errorf("error decoding a secret key; %w", err)
	}

	s.Bytes = s.Bytes[:n]
	return nil
}

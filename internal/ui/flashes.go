package ui

import (
	"encoding/gob"
	"log"
	"net/http"

	"github.com/lexcentre/website/internal/models"
)

func init() {
	// Flash messages travel through the session cookie
	gob.Register(&models.FlashMessage{})
}

// StoreFlashMessage stores a flash message in a session
// to be shown on the next page load
func (s *service) StoreFlashMessage(w http.ResponseWriter, r *http.Request, m *models.FlashMessage) {

	session, _ := s.store.Get(r, s.config.FlashSessionName)
	session.AddFlash(m)

	if err := session.Save(r, w); err != nil {
		log.Printf("unable to save the flash session on URI '%s'; %v", r.RequestURI, err)
	}
}

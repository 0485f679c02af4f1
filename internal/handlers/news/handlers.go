package news

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"slices"
	"sort"

	"github.com/lexcentre/website/internal/content"
	"github.com/lexcentre/website/internal/models"
	"github.com/lexcentre/website/internal/structured"
	"github.com/lexcentre/website/internal/utils"
)

// Handle the news list, optionally filtered by topic
func (s *Service) NewsHandler(w http.ResponseWriter, r *http.Request) {

	data := utils.GetDataFromContext(r)

	articles := content.List(
		r.Context(), s.fetcher, content.AllNewsQuery, nil, content.FallbackNews,
	)

	// Collect the topic facets from the full list
	for _, article := range articles {
		for _, topic := range article.Topics {
			if !slices.Contains(data.Topics, topic) {
				data.Topics = append(data.Topics, topic)
			}
		}
	}
	sort.Strings(data.Topics)

	// The topic filter is a plain linear filter
	if topic := r.URL.Query().Get("topic"); topic != "" {
		var filtered []models.NewsArticle
		for _, article := range articles {
			if slices.Contains(article.Topics, topic) {
				filtered = append(filtered, article)
			}
		}
		articles = filtered
		data.SelectedTopic = topic
	}

	data.News = articles
	data.Title = fmt.Sprintf("News — %s", data.Settings.SiteName)
	s.ui.RenderHTML(w, r, "news.html", data)
}

// Handle a single news article by slug
func (s *Service) SingleNewsHandler(w http.ResponseWriter, r *http.Request) {

	slug := r.PathValue("article")
	data := utils.GetDataFromContext(r)

	article, err := content.One[models.NewsArticle](
		r.Context(), s.fetcher, content.SingleNewsQuery, content.Params{"slug": slug},
	)

	if errors.Is(err, content.ErrNotFound) {
		s.ui.HTMLError(w, r, http.StatusNotFound, data)
		return
	}

	if err != nil {
		log.Printf("Failed to fetch the news article '%s': %v", slug, err)
		s.ui.HTMLError(w, r, http.StatusInternalServerError, data)
		return
	}

	data.CurrentNews = article
	data.BodyHTML = s.richtext.Render(article.Body)
	data.Title = fmt.Sprintf("%s — %s", article.Title, data.Settings.SiteName)
	data.MetaDescription = article.Excerpt
	if article.SEO != nil && article.SEO.MetaDescription != "" {
		data.MetaDescription = article.SEO.MetaDescription
	}

	pageURL := s.config.BaseURL() + "/news/" + slug + "/"
	data.StructuredData = append(data.StructuredData,
		structured.Script(structured.Article(
			&article.Document, pageURL, s.images.ImageURL(article.MainImage), "",
		)),
		structured.Script(structured.Breadcrumb([]structured.Crumb{
			{Name: "Home", URL: s.config.BaseURL() + "/"},
			{Name: "News", URL: s.config.BaseURL() + "/news/"},
			{Name: article.Title},
		})),
	)

	s.ui.RenderHTML(w, r, "news_article.html", data)
}

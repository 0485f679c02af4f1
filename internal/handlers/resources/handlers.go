package resources

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/lexcentre/website/internal/content"
	"github.com/lexcentre/website/internal/models"
	"github.com/lexcentre/website/internal/structured"
	"github.com/lexcentre/website/internal/utils"
	"golang.org/x/sync/errgroup"
)

// Handle the resources landing page with the most
// recent records of each type
func (s *Service) ResourcesHandler(w http.ResponseWriter, r *http.Request) {

	data := utils.GetDataFromContext(r)

	// Independent reads, issued concurrently and joined
	g, ctx := errgroup.WithContext(r.Context())

	g.Go(func() error {
		data.Guides = content.List(
			ctx, s.fetcher, content.RecentGuidesQuery, nil, content.FallbackGuides,
		)
		return nil
	})

	g.Go(func() error {
		data.Posts = content.List(
			ctx, s.fetcher, content.RecentPostsQuery, nil, content.FallbackPosts,
		)
		return nil
	})

	g.Go(func() error {
		data.WhitePapers = content.List(
			ctx, s.fetcher, content.RecentWhitePapersQuery, nil, content.FallbackWhitePapers,
		)
		return nil
	})

	_ = g.Wait()

	data.Title = fmt.Sprintf("Resources — %s", data.Settings.SiteName)
	s.ui.RenderHTML(w, r, "resources.html", data)
}

// Handle the guides list
func (s *Service) GuidesHandler(w http.ResponseWriter, r *http.Request) {

	data := utils.GetDataFromContext(r)
	data.Guides = content.List(
		r.Context(), s.fetcher, content.AllGuidesQuery, nil, content.FallbackGuides,
	)

	data.Title = fmt.Sprintf("Guides — %s", data.Settings.SiteName)
	s.ui.RenderHTML(w, r, "guides.html", data)
}

// Handle a single guide by slug
func (s *Service) SingleGuideHandler(w http.ResponseWriter, r *http.Request) {

	slug := r.PathValue("guide")
	data := utils.GetDataFromContext(r)

	guide, err := content.One[models.Guide](
		r.Context(), s.fetcher, content.SingleGuideQuery, content.Params{"slug": slug},
	)

	if errors.Is(err, content.ErrNotFound) {
		s.ui.HTMLError(w, r, http.StatusNotFound, data)
		return
	}

	if err != nil {
		log.Printf("Failed to fetch the guide '%s': %v", slug, err)
		s.ui.HTMLError(w, r, http.StatusInternalServerError, data)
		return
	}

	data.CurrentGuide = guide
	data.BodyHTML = s.richtext.Render(guide.Body)
	s.documentHead(data, &guide.Document, "/resources/guides/", "Guides", "")

	s.ui.RenderHTML(w, r, "guide.html", data)
}

// Handle the articles list
func (s *Service) ArticlesHandler(w http.ResponseWriter, r *http.Request) {

	data := utils.GetDataFromContext(r)
	data.Posts = content.List(
		r.Context(), s.fetcher, content.AllPostsQuery, nil, content.FallbackPosts,
	)

	data.Title = fmt.Sprintf("Articles — %s", data.Settings.SiteName)
	s.ui.RenderHTML(w, r, "articles.html", data)
}

// Handle a single article by slug
func (s *Service) SingleArticleHandler(w http.ResponseWriter, r *http.Request) {

	slug := r.PathValue("article")
	data := utils.GetDataFromContext(r)

	post, err := content.One[models.Post](
		r.Context(), s.fetcher, content.SinglePostQuery, content.Params{"slug": slug},
	)

	if errors.Is(err, content.ErrNotFound) {
		s.ui.HTMLError(w, r, http.StatusNotFound, data)
		return
	}

	if err != nil {
		log.Printf("Failed to fetch the article '%s': %v", slug, err)
		s.ui.HTMLError(w, r, http.StatusInternalServerError, data)
		return
	}

	var author string
	if post.Author != nil {
		author = post.Author.Name
	}

	data.CurrentPost = post
	data.BodyHTML = s.richtext.Render(post.Body)
	s.documentHead(data, &post.Document, "/resources/articles/", "Articles", author)

	s.ui.RenderHTML(w, r, "article.html", data)
}

// Handle the white papers list
func (s *Service) WhitePapersHandler(w http.ResponseWriter, r *http.Request) {

	data := utils.GetDataFromContext(r)
	data.WhitePapers = content.List(
		r.Context(), s.fetcher, content.AllWhitePapersQuery, nil, content.FallbackWhitePapers,
	)

	data.Title = fmt.Sprintf("White Papers — %s", data.Settings.SiteName)
	s.ui.RenderHTML(w, r, "whitepapers.html", data)
}

// Handle a single white paper by slug
func (s *Service) SingleWhitePaperHandler(w http.ResponseWriter, r *http.Request) {

	slug := r.PathValue("paper")
	data := utils.GetDataFromContext(r)

	paper, err := content.One[models.WhitePaper](
		r.Context(), s.fetcher, content.SingleWhitePaperQuery, content.Params{"slug": slug},
	)

	if errors.Is(err, content.ErrNotFound) {
		s.ui.HTMLError(w, r, http.StatusNotFound, data)
		return
	}

	if err != nil {
		log.Printf("Failed to fetch the white paper '%s': %v", slug, err)
		s.ui.HTMLError(w, r, http.StatusInternalServerError, data)
		return
	}

	data.CurrentWhitePaper = paper
	data.BodyHTML = s.richtext.Render(paper.Body)
	s.documentHead(data, &paper.Document, "/resources/white-papers/", "White Papers", "")

	s.ui.RenderHTML(w, r, "whitepaper.html", data)
}

// Common head metadata for the long-form detail pages
func (s *Service) documentHead(
	data *models.TemplateData,
	doc *models.Document,
	sectionPath, sectionName, author string,
) {
	data.Title = fmt.Sprintf("%s — %s", doc.Title, data.Settings.SiteName)
	data.MetaDescription = doc.Excerpt
	if doc.SEO != nil {
		if doc.SEO.MetaTitle != "" {
			data.Title = doc.SEO.MetaTitle
		}
		if doc.SEO.MetaDescription != "" {
			data.MetaDescription = doc.SEO.MetaDescription
		}
	}

	pageURL := s.config.BaseURL() + sectionPath + doc.Slug.Current + "/"
	data.StructuredData = append(data.StructuredData,
		structured.Script(structured.Article(
			doc, pageURL, s.images.ImageURL(doc.MainImage), author,
		)),
		structured.Script(structured.Breadcrumb([]structured.Crumb{
			{Name: "Home", URL: s.config.BaseURL() + "/"},
			{Name: "Resources", URL: s.config.BaseURL() + "/resources/"},
			{Name: sectionName, URL: s.config.BaseURL() + sectionPath},
			{Name: doc.Title},
		})),
	)
}

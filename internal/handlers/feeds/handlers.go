package feeds

import (
	"log"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/gorilla/feeds"
	"github.com/lexcentre/website/internal/content"
	"github.com/lexcentre/website/internal/models"
	"github.com/lexcentre/website/internal/utils"
	"golang.org/x/sync/errgroup"
)

// One merged feed entry from either news-like content type
type feedEntry struct {
	title     string
	link      string
	excerpt   string
	topics    []string
	id        string
	published time.Time
}

// FeedHandler serves the RSS 2.0 feed aggregating news and articles,
// newest first, capped at the configured item count
func (s *Service) FeedHandler(w http.ResponseWriter, r *http.Request) {

	limit := s.config.FeedMaxItems
	params := content.Params{"limit": limit}

	var posts []models.Post
	var news []models.NewsArticle

	// Both reads are independent, fan out and join
	g, ctx := errgroup.WithContext(r.Context())

	g.Go(func() error {
		posts = content.List(ctx, s.fetcher, content.FeedPostsQuery, params, content.FallbackPosts)
		return nil
	})

	g.Go(func() error {
		news = content.List(ctx, s.fetcher, content.FeedNewsQuery, params, content.FallbackNews)
		return nil
	})

	_ = g.Wait()

	entries := make([]feedEntry, 0, len(posts)+len(news))
	for _, post := range posts {
		if post.PublishedAt == nil {
			continue
		}
		entries = append(entries, feedEntry{
			title:     post.Title,
			link:      s.config.BaseURL() + "/resources/articles/" + post.Slug.Current + "/",
			excerpt:   post.Excerpt,
			topics:    post.Topics,
			id:        post.ID,
			published: *post.PublishedAt,
		})
	}
	for _, article := range news {
		if article.PublishedAt == nil {
			continue
		}
		entries = append(entries, feedEntry{
			title:     article.Title,
			link:      s.config.BaseURL() + "/news/" + article.Slug.Current + "/",
			excerpt:   article.Excerpt,
			topics:    article.Topics,
			id:        article.ID,
			published: *article.PublishedAt,
		})
	}

	// Strictly newest first across both merged types
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].published.After(entries[j].published)
	})

	if len(entries) > limit {
		entries = entries[:limit]
	}

	data := utils.GetDataFromContext(r)

	// The RSS document is built directly so each item can
	// carry its category
	feed := &feeds.RssFeed{
		Title:       data.Settings.SiteName,
		Link:        s.config.BaseURL() + "/",
		Description: data.Settings.Tagline,
		PubDate:     time.Now().Format(time.RFC1123Z),
	}

	for _, entry := range entries {
		item := &feeds.RssItem{
			Title:       entry.title,
			Link:        entry.link,
			Description: entry.excerpt,
			Guid:        &feeds.RssGuid{Id: entry.link, IsPermaLink: "true"},
			PubDate:     entry.published.Format(time.RFC1123Z),
		}
		if len(entry.topics) > 0 {
			item.Category = strings.Join(entry.topics, ", ")
		}
		feed.Items = append(feed.Items, item)
	}

	rss, err := feeds.ToXML(feed)
	if err != nil {
		log.Printf("Failed to build the RSS feed: %v", err)
		utils.HttpError(w, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	if _, err := w.Write([]byte(rss)); err != nil {
		log.Printf("Failed to write the RSS feed to response: %v", err)
	}
}

package network

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/pointsfarm/standx-estimator/internal/infra"
	"github.com/pointsfarm/standx-estimator/pkg/models"
)

// Announcements fetches campaign announcements from the project's
// RSS/Atom feed for the UI's info panel.
type Announcements struct {
	feedURL string
	parser  *gofeed.Parser
	cache   *infra.Cache
}

// NewAnnouncements creates an announcements source for the given feed.
func NewAnnouncements(feedURL string) *Announcements {
	return &Announcements{
		feedURL: feedURL,
		parser:  gofeed.NewParser(),
		cache:   infra.NewCache(10 * time.Minute),
	}
}

// Latest returns up to limit announcements, newest first. Feed failures
// degrade to an empty list with the error returned for logging; the
// caller decides whether that is worth a notice.
func (a *Announcements) Latest(ctx context.Context, limit int) ([]models.Announcement, error) {
	if a.feedURL == "" {
		return nil, nil
	}

	cacheKey := fmt.Sprintf("announcements:%d", limit)
	if cached, ok := a.cache.Get(cacheKey); ok {
		return cached.([]models.Announcement), nil
	}

	feed, err := a.parser.ParseURLWithContext(a.feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("announcements feed: %w", err)
	}

	items := make([]models.Announcement, 0, len(feed.Items))
	for _, item := range feed.Items {
		ann := models.Announcement{
			Title:  item.Title,
			Link:   item.Link,
			Source: feed.Title,
		}
		if item.PublishedParsed != nil {
			ann.PublishedAt = *item.PublishedParsed
		}
		items = append(items, ann)
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].PublishedAt.After(items[j].PublishedAt)
	})

	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}

	a.cache.Set(cacheKey, items)
	return items, nil
}

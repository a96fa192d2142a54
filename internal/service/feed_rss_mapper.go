package service

import (
	"bytes"
	"fmt"
	"html"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"github.com/mmcdole/gofeed"

	"essentialfeed/backend/internal/model"
)

var textPolicy = bluemonday.StrictPolicy()

// MapFeedRSS builds a feed from an RSS, Atom or JSON Feed document. Items
// without an image are skipped. Only status 200 is accepted.
func MapFeedRSS(body []byte, statusCode int) ([]model.FeedImage, error) {
	if statusCode != http.StatusOK {
		return nil, &StatusError{StatusCode: statusCode}
	}

	parsed, err := gofeed.NewParser().Parse(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidData, err)
	}

	feed := make([]model.FeedImage, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		image, ok := itemToFeedImage(item)
		if !ok {
			continue
		}
		feed = append(feed, image)
	}
	return feed, nil
}

func itemToFeedImage(item *gofeed.Item) (model.FeedImage, bool) {
	imageURL := itemImageURL(item)
	if imageURL == "" {
		return model.FeedImage{}, false
	}

	key := strings.TrimSpace(item.GUID)
	if key == "" {
		key = strings.TrimSpace(item.Link)
	}
	if key == "" {
		key = imageURL
	}

	image := model.FeedImage{
		ID:  uuid.NewSHA1(uuid.NameSpaceURL, []byte(key)),
		URL: imageURL,
	}

	description := item.Title
	if strings.TrimSpace(description) == "" {
		description = item.Description
	}
	image.Description = optionalString(html.UnescapeString(textPolicy.Sanitize(description)))

	if len(item.Categories) > 0 {
		image.Location = optionalString(item.Categories[0])
	}
	return image, true
}

func itemImageURL(item *gofeed.Item) string {
	if item.Image != nil && isValidURL(item.Image.URL) {
		return strings.TrimSpace(item.Image.URL)
	}
	for _, enclosure := range item.Enclosures {
		if enclosure == nil || !strings.HasPrefix(enclosure.Type, "image/") {
			continue
		}
		if isValidURL(enclosure.URL) {
			return strings.TrimSpace(enclosure.URL)
		}
	}
	return ""
}

func optionalString(value string) *string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func isValidURL(value string) bool {
	parsed, err := url.ParseRequestURI(strings.TrimSpace(value))
	if err != nil {
		return false
	}
	return parsed.Scheme == "http" || parsed.Scheme == "https"
}

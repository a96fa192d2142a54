package service

import (
	"strings"

	"github.com/google/uuid"
)

func FeedEndpoint(baseURL string) string {
	return strings.TrimRight(baseURL, "/") + "/v1/feed"
}

func ImageCommentsEndpoint(baseURL string, imageID uuid.UUID) string {
	return strings.TrimRight(baseURL, "/") + "/v1/image/" + imageID.String() + "/comments"
}

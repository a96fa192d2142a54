package model

import (
	"time"

	"github.com/google/uuid"
)

type ImageComment struct {
	ID        uuid.UUID
	Message   string
	CreatedAt time.Time
	Username  string
}

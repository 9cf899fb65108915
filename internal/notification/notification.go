package notification

import (
	"time"
)

type NotificationType string

const (
	NotificationBadgeAwarded NotificationType = "badge_awarded"
	NotificationStreakRisk   NotificationType = "streak_risk"
)

type Notification struct {
	ID        string           `json:"id"`
	UserID    string           `json:"user_id"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	IsRead    bool             `json:"is_read"`
	Data      map[string]any   `json:"data"`
	CreatedAt time.Time        `json:"created_at"`
}

type DeviceToken struct {
	Token    string `json:"token"`
	Platform string `json:"platform"`
}

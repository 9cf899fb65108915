package notification

import "fmt"

type RegisterDeviceRequest struct {
	UserID   string `json:"user_id"`
	Token    string `json:"token"`
	Platform string `json:"platform"`
}

type NotificationListResponse struct {
	Notifications []*Notification `json:"notifications"`
	UnreadCount   int             `json:"unread_count"`
}

func (r *RegisterDeviceRequest) Validate() error {
	if r.UserID == "" {
		return fmt.Errorf("user_id is required")
	}
	if r.Token == "" {
		return fmt.Errorf("token is required")
	}
	switch r.Platform {
	case "ios", "android", "web":
		return nil
	default:
		return fmt.Errorf("platform must be one of ios, android, web")
	}
}

package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"quitSmokeAPI/internal/badge"
	"quitSmokeAPI/internal/notification"
)

// PushProvider abstracts the push channel so the service works without
// FCM configured (in-app notifications only).
type PushProvider interface {
	SendPush(ctx context.Context, tokens []notification.DeviceToken, title, body string, data map[string]any) error
}

type pushJob struct {
	userID string
	title  string
	body   string
	data   map[string]any
}

type NotificationService struct {
	db           *pgxpool.Pool
	pushProvider PushProvider
	jobQueue     chan *pushJob
}

func NewNotificationService(db *pgxpool.Pool) *NotificationService {
	s := &NotificationService{
		db:       db,
		jobQueue: make(chan *pushJob, 100),
	}

	// Small fixed worker pool for push delivery; pushes are fire and
	// forget relative to the request that triggered them.
	for i := 0; i < 5; i++ {
		go s.worker()
	}

	return s
}

// SetPushProvider injects the real FCM provider from main.go.
func (s *NotificationService) SetPushProvider(provider PushProvider) {
	s.pushProvider = provider
}

// NotifyBadgeAwarded writes the in-app notification row and queues a push
// to the user's registered devices.
func (s *NotificationService) NotifyBadgeAwarded(ctx context.Context, b *badge.Badge) error {
	title := "New badge unlocked " + b.Icon
	message := b.Name + " — " + b.Description
	data := map[string]any{"badge_key": b.Key}

	dataJSON, _ := json.Marshal(data)

	query := `
	INSERT INTO notifications (id, user_id, type, title, message, is_read, data, created_at)
	VALUES ($1, $2, $3, $4, $5, false, $6, NOW())
	`

	_, err := s.db.Exec(ctx, query, uuid.New().String(), b.UserID,
		notification.NotificationBadgeAwarded, title, message, dataJSON)
	if err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}

	job := &pushJob{userID: b.UserID, title: title, body: message, data: data}
	select {
	case s.jobQueue <- job:
	default:
		log.Printf("Push queue full, dropping push for user %s", b.UserID)
	}

	return nil
}

func (s *NotificationService) worker() {
	for job := range s.jobQueue {
		s.processJob(job)
	}
}

func (s *NotificationService) processJob(job *pushJob) {
	if s.pushProvider == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tokens, err := s.deviceTokens(ctx, job.userID)
	if err != nil {
		log.Printf("Failed to load device tokens for user %s: %v", job.userID, err)
		return
	}
	if len(tokens) == 0 {
		return
	}

	if err := s.pushProvider.SendPush(ctx, tokens, job.title, job.body, job.data); err != nil {
		log.Printf("Push failed for user %s: %v", job.userID, err)
	}
}

func (s *NotificationService) GetNotifications(ctx context.Context, userID string, limit int) (*notification.NotificationListResponse, error) {
	query := `
	SELECT id, user_id, type, title, message, is_read, data, created_at
	FROM notifications
	WHERE user_id = $1
	ORDER BY created_at DESC
	LIMIT $2
	`

	rows, err := s.db.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	defer rows.Close()

	var notifications []*notification.Notification
	for rows.Next() {
		n := &notification.Notification{}
		var dataJSON []byte
		if err := rows.Scan(&n.ID, &n.UserID, &n.Type, &n.Title, &n.Message, &n.IsRead, &dataJSON, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}
		if len(dataJSON) > 0 {
			json.Unmarshal(dataJSON, &n.Data)
		}
		notifications = append(notifications, n)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating notifications: %w", err)
	}

	if notifications == nil {
		notifications = []*notification.Notification{}
	}

	unread, err := s.GetUnreadCount(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &notification.NotificationListResponse{
		Notifications: notifications,
		UnreadCount:   unread,
	}, nil
}

func (s *NotificationService) GetUnreadCount(ctx context.Context, userID string) (int, error) {
	var count int
	err := s.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND is_read = false`,
		userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return count, nil
}

func (s *NotificationService) MarkAsRead(ctx context.Context, notificationID string, userID string) error {
	tag, err := s.db.Exec(ctx,
		`UPDATE notifications SET is_read = true WHERE id = $1 AND user_id = $2`,
		notificationID, userID)
	if err != nil {
		return fmt.Errorf("failed to mark notification as read: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("notification not found")
	}
	return nil
}

func (s *NotificationService) MarkAllAsRead(ctx context.Context, userID string) error {
	_, err := s.db.Exec(ctx,
		`UPDATE notifications SET is_read = true WHERE user_id = $1 AND is_read = false`,
		userID)
	if err != nil {
		return fmt.Errorf("failed to mark notifications as read: %w", err)
	}
	return nil
}

// RegisterDevice stores a push token; re-registering the same token just
// refreshes its platform.
func (s *NotificationService) RegisterDevice(ctx context.Context, req *notification.RegisterDeviceRequest) error {
	query := `
	INSERT INTO device_tokens (user_id, token, platform, created_at)
	VALUES ($1, $2, $3, NOW())
	ON CONFLICT (token)
	DO UPDATE SET user_id = $1, platform = $3
	`

	_, err := s.db.Exec(ctx, query, req.UserID, req.Token, req.Platform)
	if err != nil {
		return fmt.Errorf("failed to register device: %w", err)
	}
	return nil
}

func (s *NotificationService) deviceTokens(ctx context.Context, userID string) ([]notification.DeviceToken, error) {
	rows, err := s.db.Query(ctx,
		`SELECT token, platform FROM device_tokens WHERE user_id = $1`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load device tokens: %w", err)
	}
	defer rows.Close()

	var tokens []notification.DeviceToken
	for rows.Next() {
		var t notification.DeviceToken
		if err := rows.Scan(&t.Token, &t.Platform); err != nil {
			return nil, fmt.Errorf("failed to scan device token: %w", err)
		}
		tokens = append(tokens, t)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating device tokens: %w", err)
	}

	return tokens, nil
}

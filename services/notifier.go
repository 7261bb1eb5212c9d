package services

import (
	"sync"
	"time"
)

type NotificationType string

const (
	NotificationSuccess NotificationType = "success"
	NotificationError   NotificationType = "error"
)

const DefaultNotificationDuration = 3 * time.Second

type Notification struct {
	Type    NotificationType `json:"type"`
	Title   string           `json:"title"`
	Message string           `json:"message"`
	Visible bool             `json:"visible"`
}

// Notifier holds at most one visible message for the whole process. Showing a
// new message cancels the previous dismissal timer, so there is never more
// than one pending timer.
type Notifier struct {
	mu      sync.Mutex
	current Notification
	timer   *time.Timer
}

func NewNotifier() *Notifier {
	return &Notifier{}
}

func (n *Notifier) Show(typ NotificationType, title, message string, duration time.Duration) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if duration <= 0 {
		duration = DefaultNotificationDuration
	}

	n.current = Notification{Type: typ, Title: title, Message: message, Visible: true}

	if n.timer != nil {
		n.timer.Stop()
	}
	n.timer = time.AfterFunc(duration, n.dismiss)
}

func (n *Notifier) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.current = Notification{Type: NotificationSuccess}
	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
}

func (n *Notifier) Current() Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}

func (n *Notifier) dismiss() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.current = Notification{Type: NotificationSuccess}
	n.timer = nil
}

package models

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NotificationType describes which feature produced the notification.
type NotificationType string

const (
	NotificationBudget  NotificationType = "budget"
	NotificationGoal    NotificationType = "goal"
	NotificationLoan    NotificationType = "loan"
	NotificationInsight NotificationType = "insight"
)

// NotificationPriority orders notifications in the UI.
type NotificationPriority string

const (
	PriorityLow    NotificationPriority = "low"
	PriorityMedium NotificationPriority = "medium"
	PriorityHigh   NotificationPriority = "high"
)

// Notification is produced as a side effect of mutation operations,
// e.g. when a goal is achieved or a transfer is rejected.
type Notification struct {
	DefaultModel
	User     User `json:"-"`
	UserID   uuid.UUID
	Title    string
	Message  string
	Type     NotificationType
	Priority NotificationPriority
	Read     bool
}

// BeforeSave validates type and priority and trims whitespace.
func (n *Notification) BeforeSave(_ *gorm.DB) error {
	n.Title = strings.TrimSpace(n.Title)
	n.Message = strings.TrimSpace(n.Message)

	switch n.Type {
	case NotificationBudget, NotificationGoal, NotificationLoan, NotificationInsight:
	default:
		return ErrNotificationTypeInvalid
	}

	switch n.Priority {
	case PriorityLow, PriorityMedium, PriorityHigh:
	default:
		return ErrNotificationPriorityInvalid
	}

	return nil
}

func (n *Notification) BeforeCreate(tx *gorm.DB) error {
	_ = n.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*Notification)
	return tx.First(&User{}, "id = ?", toSave.UserID).Error
}

// notify records a notification for the user unless the user has
// disabled notifications in their preferences.
func notify(db *gorm.DB, userID uuid.UUID, typ NotificationType, priority NotificationPriority, title, message string) error {
	var preference Preference
	err := db.First(&preference, "user_id = ?", userID).Error
	if err == nil && !preference.NotificationsEnabled {
		return nil
	}

	return db.Create(&Notification{
		UserID:   userID,
		Title:    title,
		Message:  message,
		Type:     typ,
		Priority: priority,
	}).Error
}

// Returns the user's notifications for export
func (Notification) Export(userID uuid.UUID) (json.RawMessage, error) {
	return export(Notification{}, "user_id = ?", userID)
}

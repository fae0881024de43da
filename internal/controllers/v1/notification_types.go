package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/khademul4765/arther-hiseb-sub000/internal/models"
)

// NotificationEditable represents all user configurable parameters
type NotificationEditable struct {
	Title    string                      `json:"title" example:"Budget exceeded" default:""`                 // Short title
	Message  string                      `json:"message" example:"The Groceries budget passed 90%" default:""` // Full message
	Type     models.NotificationType     `json:"type" example:"budget"`                                      // Type: budget, goal, loan or insight
	Priority models.NotificationPriority `json:"priority" example:"high" default:"medium"`                   // Priority: low, medium or high
	Read     bool                        `json:"read" example:"false" default:"false"`                       // Has the notification been read?
}

func (editable NotificationEditable) model(userID uuid.UUID) models.Notification {
	return models.Notification{
		UserID:   userID,
		Title:    editable.Title,
		Message:  editable.Message,
		Type:     editable.Type,
		Priority: editable.Priority,
		Read:     editable.Read,
	}
}

type NotificationLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/notifications/9b9c1847-9d5d-4cb8-a3c2-625cfaab7b48"` // The notification itself
}

type Notification struct {
	models.DefaultModel
	NotificationEditable
	Links NotificationLinks `json:"links"`
}

func newNotification(c *gin.Context, model models.Notification) Notification {
	url := c.GetString(string(models.DBContextURL))

	return Notification{
		DefaultModel: model.DefaultModel,
		NotificationEditable: NotificationEditable{
			Title:    model.Title,
			Message:  model.Message,
			Type:     model.Type,
			Priority: model.Priority,
			Read:     model.Read,
		},
		Links: NotificationLinks{
			Self: fmt.Sprintf("%s/v1/notifications/%s", url, model.ID),
		},
	}
}

type NotificationListResponse struct {
	Data       []Notification `json:"data"`                                                          // List of notifications
	Error      *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination    `json:"pagination"`                                                    // Pagination information
}

type NotificationCreateResponse struct {
	Data  []NotificationResponse `json:"data"`                                                          // List of the created Notifications or their respective error
	Error *string                `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (n *NotificationCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	n.Data = append(n.Data, NotificationResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type NotificationResponse struct {
	Data  *Notification `json:"data"`                                                          // Data for the Notification
	Error *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type NotificationQueryFilter struct {
	Type     string `form:"type"`                       // By type
	Priority string `form:"priority"`                   // By priority
	Read     bool   `form:"read"`                       // Has the notification been read?
	Offset   uint   `form:"offset" filterField:"false"` // The offset of the first Notification returned. Defaults to 0.
	Limit    int    `form:"limit" filterField:"false"`  // Maximum number of Notifications to return. Defaults to 50.
}

func (f NotificationQueryFilter) model() models.Notification {
	return models.Notification{
		Type:     models.NotificationType(f.Type),
		Priority: models.NotificationPriority(f.Priority),
		Read:     f.Read,
	}
}

package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/khademul4765/arther-hiseb-sub000/internal/models"
)

// ContactEditable represents all user configurable parameters
type ContactEditable struct {
	Name    string             `json:"name" example:"Rahim Uddin" default:""`           // Name of the contact
	Type    models.ContactType `json:"type" example:"person" default:"person"`          // Type of the contact: person or organization
	Phone   string             `json:"phone" example:"+8801712345678" default:""`       // Phone number
	Email   string             `json:"email" example:"rahim@example.com" default:""`    // Email address
	Address string             `json:"address" example:"Mirpur 10, Dhaka" default:""`   // Postal address
}

func (editable ContactEditable) model(userID uuid.UUID) models.Contact {
	return models.Contact{
		UserID:  userID,
		Name:    editable.Name,
		Type:    editable.Type,
		Phone:   editable.Phone,
		Email:   editable.Email,
		Address: editable.Address,
	}
}

type ContactLinks struct {
	Self  string `json:"self" example:"https://example.com/api/v1/contacts/6b40ffab-9e0c-4135-a3d6-ba6a31d0f1eb"`          // The contact itself
	Loans string `json:"loans" example:"https://example.com/api/v1/loans?contact=6b40ffab-9e0c-4135-a3d6-ba6a31d0f1eb"`    // Loans with this contact
}

type Contact struct {
	models.DefaultModel
	ContactEditable
	Links ContactLinks `json:"links"`
}

func newContact(c *gin.Context, model models.Contact) Contact {
	url := c.GetString(string(models.DBContextURL))

	return Contact{
		DefaultModel: model.DefaultModel,
		ContactEditable: ContactEditable{
			Name:    model.Name,
			Type:    model.Type,
			Phone:   model.Phone,
			Email:   model.Email,
			Address: model.Address,
		},
		Links: ContactLinks{
			Self:  fmt.Sprintf("%s/v1/contacts/%s", url, model.ID),
			Loans: fmt.Sprintf("%s/v1/loans?contact=%s", url, model.ID),
		},
	}
}

type ContactListResponse struct {
	Data       []Contact   `json:"data"`                                                          // List of contacts
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type ContactCreateResponse struct {
	Data  []ContactResponse `json:"data"`                                                          // List of the created Contacts or their respective error
	Error *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (c *ContactCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	c.Data = append(c.Data, ContactResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type ContactResponse struct {
	Data  *Contact `json:"data"`                                                          // Data for the Contact
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type ContactQueryFilter struct {
	Name   string `form:"name" filterField:"false"`   // By name
	Type   string `form:"type"`                       // By type: person or organization
	Search string `form:"search" filterField:"false"` // By string in the name
	Offset uint   `form:"offset" filterField:"false"` // The offset of the first Contact returned. Defaults to 0.
	Limit  int    `form:"limit" filterField:"false"`  // Maximum number of Contacts to return. Defaults to 50.
}

func (f ContactQueryFilter) model() models.Contact {
	return models.Contact{
		Type: models.ContactType(f.Type),
	}
}

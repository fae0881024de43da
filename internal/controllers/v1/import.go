package v1

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/khademul4765/arther-hiseb-sub000/internal/httputil"
	"github.com/khademul4765/arther-hiseb-sub000/internal/models"
	"gorm.io/gorm"
)

// ImportDocument is an export document as accepted by the import endpoint.
type ImportDocument struct {
	Version string                     `json:"version" example:"1.0.0"` // Backend version that created the export
	Data    map[string]json.RawMessage `json:"data"`                    // All resources by collection name
}

func RegisterImportRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsImport)
		r.POST("", PostImport)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Import
// @Success		204
// @Router			/v1/import [options]
func OptionsImport(c *gin.Context) {
	httputil.OptionsPost(c)
}

// restore inserts all resources of one collection, keeping their IDs.
//
// Hooks are skipped so that the original IDs and computed values
// survive the restore unchanged.
func restore[M any](tx *gorm.DB, raw json.RawMessage) error {
	var resources []M
	err := json.Unmarshal(raw, &resources)
	if err != nil {
		return fmt.Errorf("%w: %s", errImportFormat, err)
	}

	if len(resources) == 0 {
		return nil
	}

	return tx.Session(&gorm.Session{SkipHooks: true}).Create(&resources).Error
}

// restoreUsers inserts the users of the document. The password hash
// travels in the export representation, so logins keep working after
// the restore.
func restoreUsers(tx *gorm.DB, raw json.RawMessage) error {
	var resources []models.UserExport
	err := json.Unmarshal(raw, &resources)
	if err != nil {
		return fmt.Errorf("%w: %s", errImportFormat, err)
	}

	if len(resources) == 0 {
		return nil
	}

	users := make([]models.User, 0, len(resources))
	for _, resource := range resources {
		user := resource.User
		user.PasswordHash = resource.PasswordHash
		users = append(users, user)
	}

	return tx.Session(&gorm.Session{SkipHooks: true}).Create(&users).Error
}

// @Summary		Import
// @Description	Restores a backup created by the export endpoint
// @Tags			Import
// @Accept			json
// @Produce		json
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			backup	body		ImportDocument	true	"The export document"
// @Router			/v1/import [post]
func PostImport(c *gin.Context) {
	var document ImportDocument

	err := httputil.BindData(c, &document)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	// Only known collections may appear in the document
	for name := range document.Data {
		if _, ok := models.Registry[name]; !ok {
			c.JSON(http.StatusBadRequest, httpError{
				Error: fmt.Sprintf("%s: unknown collection %q", errImportFormat, name),
			})
			return
		}
	}

	// Referenced models restore before the models referencing them
	err = models.DB.Transaction(func(tx *gorm.DB) error {
		type step struct {
			name    string
			restore func(*gorm.DB, json.RawMessage) error
		}

		steps := []step{
			{"users", restoreUsers},
			{"contacts", restore[models.Contact]},
			{"accounts", restore[models.Account]},
			{"categories", restore[models.Category]},
			{"transactions", restore[models.Transaction]},
			{"budgets", restore[models.Budget]},
			{"goals", restore[models.Goal]},
			{"goalDeposits", restore[models.GoalDeposit]},
			{"loans", restore[models.Loan]},
			{"loanInstallments", restore[models.LoanInstallment]},
			{"notifications", restore[models.Notification]},
			{"preferences", restore[models.Preference]},
		}

		for _, s := range steps {
			raw, ok := document.Data[s.name]
			if !ok {
				continue
			}

			err := s.restore(tx, raw)
			if err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

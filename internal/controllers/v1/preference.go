package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/khademul4765/arther-hiseb-sub000/internal/httputil"
	"github.com/khademul4765/arther-hiseb-sub000/internal/models"
)

// RegisterPreferenceRoutes registers the routes for the per-user
// preferences with the RouterGroup that is passed.
func RegisterPreferenceRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsPreferences)
	r.GET("", GetPreferences)
	r.PATCH("", UpdatePreferences)
}

// PreferenceEditable represents all user configurable parameters
type PreferenceEditable struct {
	DarkMode             bool `json:"darkMode" example:"true" default:"false"`             // Render the frontend in dark mode?
	NotificationsEnabled bool `json:"notificationsEnabled" example:"true" default:"true"`  // Produce notifications for budgets, goals and loans?
}

func (editable PreferenceEditable) model(model models.Preference) models.Preference {
	return models.Preference{
		UserID:               model.UserID,
		DarkMode:             editable.DarkMode,
		NotificationsEnabled: editable.NotificationsEnabled,
	}
}

// Preference is the API representation of the user's preferences.
type Preference struct {
	models.DefaultModel
	PreferenceEditable
}

func newPreference(model models.Preference) Preference {
	return Preference{
		DefaultModel: model.DefaultModel,
		PreferenceEditable: PreferenceEditable{
			DarkMode:             model.DarkMode,
			NotificationsEnabled: model.NotificationsEnabled,
		},
	}
}

type PreferenceResponse struct {
	Data  *Preference `json:"data"`                                        // The preferences of the user
	Error *string     `json:"error" example:"an error occurred on the server during your request"` // The error, if any occurred
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Preferences
// @Success		204
// @Router			/v1/preferences [options]
func OptionsPreferences(c *gin.Context) {
	httputil.OptionsGetPatch(c)
}

// @Summary		Get preferences
// @Description	Returns the preferences of the authenticated user
// @Tags			Preferences
// @Produce		json
// @Success		200	{object}	PreferenceResponse
// @Failure		404	{object}	PreferenceResponse
// @Failure		500	{object}	PreferenceResponse
// @Router			/v1/preferences [get]
func GetPreferences(c *gin.Context) {
	var preference models.Preference
	err := models.DB.First(&preference, "user_id = ?", currentUser(c).ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PreferenceResponse{
			Error: &s,
		})
		return
	}

	data := newPreference(preference)
	c.JSON(http.StatusOK, PreferenceResponse{Data: &data})
}

// @Summary		Update preferences
// @Description	Updates the preferences of the authenticated user. Only values to be updated need to be specified.
// @Tags			Preferences
// @Accept			json
// @Produce		json
// @Success		200			{object}	PreferenceResponse
// @Failure		400			{object}	PreferenceResponse
// @Failure		404			{object}	PreferenceResponse
// @Failure		500			{object}	PreferenceResponse
// @Param			preferences	body		PreferenceEditable	true	"Preferences"
// @Router			/v1/preferences [patch]
func UpdatePreferences(c *gin.Context) {
	var preference models.Preference
	err := models.DB.First(&preference, "user_id = ?", currentUser(c).ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PreferenceResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, PreferenceEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PreferenceResponse{
			Error: &s,
		})
		return
	}

	var data PreferenceEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PreferenceResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&preference).Select("", updateFields...).Updates(data.model(preference)).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PreferenceResponse{
			Error: &s,
		})
		return
	}

	r := newPreference(preference)
	c.JSON(http.StatusOK, PreferenceResponse{Data: &r})
}

package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/khademul4765/arther-hiseb-sub000/internal/httputil"
	"github.com/khademul4765/arther-hiseb-sub000/internal/models"
	"golang.org/x/exp/slices"
)

// RegisterLoanRoutes registers the routes for loans with
// the RouterGroup that is passed.
func RegisterLoanRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsLoanList)
		r.GET("", GetLoans)
		r.POST("", CreateLoans)
	}

	// Loan with ID
	{
		r.OPTIONS("/:id", OptionsLoanDetail)
		r.GET("/:id", GetLoan)
		r.PATCH("/:id", UpdateLoan)
		r.DELETE("/:id", DeleteLoan)
	}

	// Installments of the loan
	{
		r.OPTIONS("/:id/payments", OptionsLoanPayments)
		r.GET("/:id/payments", GetLoanPayments)
		r.POST("/:id/payments", CreateLoanPayment)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Loans
// @Success		204
// @Router			/v1/loans [options]
func OptionsLoanList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Loans
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/loans/{id} [options]
func OptionsLoanDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Loan{})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Loans
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/loans/{id}/payments [options]
func OptionsLoanPayments(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.Loan{}, "id = ? AND user_id = ?", uri.ID, currentUser(c).ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPost(c)
}

// @Summary		Create loans
// @Description	Creates new loans. The remaining amount starts at the full loan amount.
// @Tags			Loans
// @Produce		json
// @Success		201		{object}	LoanCreateResponse
// @Failure		400		{object}	LoanCreateResponse
// @Failure		404		{object}	LoanCreateResponse
// @Failure		500		{object}	LoanCreateResponse
// @Param			loans	body		[]LoanEditable	true	"Loans"
// @Router			/v1/loans [post]
func CreateLoans(c *gin.Context) {
	var editables []LoanEditable

	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), LoanCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := LoanCreateResponse{}

	for _, editable := range editables {
		loan := editable.model(currentUser(c).ID)

		err = models.DB.Create(&loan).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newLoan(c, loan)
		r.Data = append(r.Data, LoanResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get loans
// @Description	Returns a list of loans
// @Tags			Loans
// @Produce		json
// @Success		200	{object}	LoanListResponse
// @Failure		400	{object}	LoanListResponse
// @Failure		500	{object}	LoanListResponse
// @Router			/v1/loans [get]
// @Param			type		query	string	false	"Filter by direction: borrowed or lent"
// @Param			contact		query	string	false	"Filter by contact ID"
// @Param			completed	query	bool	false	"Is the loan settled?"
// @Param			note		query	string	false	"Filter by note"
// @Param			offset		query	uint	false	"The offset of the first Loan returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of Loans to return. Defaults to 50."
func GetLoans(c *gin.Context) {
	var filter LoanQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	// Get the fields that we are filtering for
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	filterModel := filter.model()

	q := models.DB.
		Where("user_id = ?", currentUser(c).ID).
		Order("datetime(date) DESC").
		Where(&filterModel, queryFields...)

	if filter.Note != "" {
		q = q.Where("note LIKE ?", "%"+filter.Note+"%")
	} else if slices.Contains(setFields, "Note") {
		q = q.Where("note = ''")
	}

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 Loans and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var loans []models.Loan
	err := q.Find(&loans).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), LoanListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), LoanListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Loan, 0)
	for _, loan := range loans {
		data = append(data, newLoan(c, loan))
	}

	c.JSON(http.StatusOK, LoanListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get loan
// @Description	Returns a specific loan
// @Tags			Loans
// @Produce		json
// @Success		200	{object}	LoanResponse
// @Failure		400	{object}	LoanResponse
// @Failure		404	{object}	LoanResponse
// @Failure		500	{object}	LoanResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/loans/{id} [get]
func GetLoan(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), LoanResponse{
			Error: &s,
		})
		return
	}

	var loan models.Loan
	err = models.DB.First(&loan, "id = ? AND user_id = ?", uri.ID, currentUser(c).ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), LoanResponse{
			Error: &s,
		})
		return
	}

	data := newLoan(c, loan)
	c.JSON(http.StatusOK, LoanResponse{Data: &data})
}

// @Summary		Update loan
// @Description	Updates an existing loan. Only values to be updated need to be specified.
// @Tags			Loans
// @Accept			json
// @Produce		json
// @Success		200	{object}	LoanResponse
// @Failure		400	{object}	LoanResponse
// @Failure		404	{object}	LoanResponse
// @Failure		500	{object}	LoanResponse
// @Param			id		path	URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			loan	body	LoanEditable	true	"Loan"
// @Router			/v1/loans/{id} [patch]
func UpdateLoan(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), LoanResponse{
			Error: &s,
		})
		return
	}

	var loan models.Loan
	err = models.DB.First(&loan, "id = ? AND user_id = ?", uri.ID, currentUser(c).ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), LoanResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, LoanEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), LoanResponse{
			Error: &s,
		})
		return
	}

	var data LoanEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), LoanResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&loan).Select("", updateFields...).Updates(data.model(loan.UserID)).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), LoanResponse{
			Error: &s,
		})
		return
	}

	r := newLoan(c, loan)
	c.JSON(http.StatusOK, LoanResponse{Data: &r})
}

// @Summary		Delete loan
// @Description	Deletes a loan and its installments
// @Tags			Loans
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/loans/{id} [delete]
func DeleteLoan(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var loan models.Loan
	err = models.DB.First(&loan, "id = ? AND user_id = ?", uri.ID, currentUser(c).ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&loan).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// @Summary		Get installments
// @Description	Returns the installments of a loan, oldest first
// @Tags			Loans
// @Produce		json
// @Success		200	{object}	LoanInstallmentListResponse
// @Failure		400	{object}	LoanInstallmentListResponse
// @Failure		404	{object}	LoanInstallmentListResponse
// @Failure		500	{object}	LoanInstallmentListResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/loans/{id}/payments [get]
func GetLoanPayments(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), LoanInstallmentListResponse{
			Error: &s,
		})
		return
	}

	var loan models.Loan
	err = models.DB.First(&loan, "id = ? AND user_id = ?", uri.ID, currentUser(c).ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), LoanInstallmentListResponse{
			Error: &s,
		})
		return
	}

	installments, err := loan.Installments(models.DB)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), LoanInstallmentListResponse{
			Error: &s,
		})
		return
	}

	data := make([]LoanInstallment, 0)
	for _, installment := range installments {
		data = append(data, newLoanInstallment(installment))
	}

	c.JSON(http.StatusOK, LoanInstallmentListResponse{Data: data})
}

// @Summary		Pay installment
// @Description	Records an installment payment and decrements the remaining amount, floored at zero. Settling the loan produces a notification.
// @Tags			Loans
// @Accept			json
// @Produce		json
// @Success		201		{object}	LoanPaymentResponse
// @Failure		400		{object}	LoanPaymentResponse
// @Failure		404		{object}	LoanPaymentResponse
// @Failure		500		{object}	LoanPaymentResponse
// @Param			id		path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			payment	body		LoanPaymentEditable	true	"Payment"
// @Router			/v1/loans/{id}/payments [post]
func CreateLoanPayment(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), LoanPaymentResponse{
			Error: &s,
		})
		return
	}

	var loan models.Loan
	err = models.DB.First(&loan, "id = ? AND user_id = ?", uri.ID, currentUser(c).ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), LoanPaymentResponse{
			Error: &s,
		})
		return
	}

	var editable LoanPaymentEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), LoanPaymentResponse{
			Error: &s,
		})
		return
	}

	installment, err := models.PayInstallment(models.DB, &loan, editable.InstallmentID, editable.Amount, editable.Note)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), LoanPaymentResponse{
			Error: &s,
		})
		return
	}

	data := newLoanInstallment(installment)
	loanData := newLoan(c, loan)
	c.JSON(http.StatusCreated, LoanPaymentResponse{
		Data: &data,
		Loan: &loanData,
	})
}

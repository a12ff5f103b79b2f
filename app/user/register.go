// Package user implements the account lifecycle: registration, email
// verification, login and self-service account management.
package user

import (
	"net/http"
	"time"

	"homekeep/organizer-api/internal"
	"homekeep/organizer-api/internal/domain"
	"homekeep/organizer-api/internal/model"
	"homekeep/organizer-api/internal/service"
	"homekeep/organizer-api/pkg/resp"
	"homekeep/organizer-api/pkg/validators"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const birthDateLayout = "2006-01-02"

type registerBody struct {
	Email     string `json:"email" binding:"required"`
	Password  string `json:"password" binding:"required"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	BirthDate string `json:"birth_date" binding:"required"`
	Phone     string `json:"phone" binding:"required"`
}

// Register creates an unverified account and mails a verification link.
// The account can't log in to anything useful until verified.
func Register(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	var data registerBody
	if err := c.ShouldBind(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid request body",
			"requestID": requestID,
		})
		return
	}

	email, err := domain.NewEmail(data.Email)
	if err != nil {
		resp.Error(c, err)
		return
	}

	fullName, err := domain.NewFullName(data.FirstName, data.LastName)
	if err != nil {
		resp.Error(c, err)
		return
	}

	phone, err := domain.NewPhone(data.Phone)
	if err != nil {
		resp.Error(c, err)
		return
	}

	birthDate, err := time.Parse(birthDateLayout, data.BirthDate)
	if err != nil {
		resp.Error(c, domain.NewValidationError("Birth date must use the YYYY-MM-DD format"))
		return
	}

	if err := validators.BirthDateValidator(birthDate, time.Now()); err != nil {
		resp.Error(c, err)
		return
	}

	password, err := domain.NewPassword(data.Password)
	if err != nil {
		resp.Error(c, err)
		return
	}

	var found bool

	// Unscoped so a soft-deleted account can't be re-registered under
	// the same address while its row still holds the unique index
	r := d.DB.Model(model.User{}).
		Unscoped().
		Select("count(*) > 0").
		Where("email = ?", email.String()).
		Find(&found)
	if r.Error != nil {
		resp.Error(c, r.Error)
		return
	}

	if found {
		resp.Error(c, domain.NewAlreadyExistsError("This email is already registered. Please login or use a different email"))
		return
	}

	user := model.User{
		ID:           domain.GenerateUuid().String(),
		Email:        email.String(),
		PasswordHash: password.Hash(),
		FirstName:    fullName.FirstName(),
		LastName:     fullName.LastName(),
		BirthDate:    birthDate,
		Phone:        phone.String(),
		Verified:     false,
	}

	verifToken, err := d.VerifyTokens.Create(c.Request.Context(), user.ID)
	if err != nil {
		resp.Error(c, err)
		return
	}

	if err := service.SendVerificationMail(d.Mail, verifToken, user.Email); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to send verification email", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if err := d.DB.Create(&user).Error; err != nil {
		resp.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"userID":    user.ID,
		"requestID": requestID,
	})
}

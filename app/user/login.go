package user

import (
	"net/http"

	"homekeep/organizer-api/internal"
	"homekeep/organizer-api/internal/domain"
	"homekeep/organizer-api/internal/model"
	"homekeep/organizer-api/pkg/resp"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type loginBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login verifies the credentials and issues a fresh session token.
// Soft-deleted accounts are invisible here, so they fail the same way
// as a wrong password does.
func Login(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	var data loginBody
	if err := c.ShouldBind(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid request body",
			"requestID": requestID,
		})
		return
	}

	if data.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Email field can't be empty",
			"requestID": requestID,
		})
		return
	}

	if data.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Password field can't be empty",
			"requestID": requestID,
		})
		return
	}

	var user model.User

	if err := d.DB.Where("email = ?", data.Email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			resp.Error(c, domain.NewInvalidCredentialsError())
			return
		}

		resp.Error(c, err)
		return
	}

	password, err := domain.NewPasswordFromHash(user.PasswordHash)
	if err != nil {
		resp.Error(c, err)
		return
	}

	if !password.Check(data.Password) {
		resp.Error(c, domain.NewInvalidCredentialsError())
		return
	}

	token, err := d.Sessions.Create(c.Request.Context(), user.ID)
	if err != nil {
		resp.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"userID":       user.ID,
		"sessionToken": token,
		"verified":     user.Verified,
		"requestID":    requestID,
	})
}

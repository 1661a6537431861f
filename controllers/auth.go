// controllers/auth.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sreepix-backend/config"
	"sreepix-backend/utils"
)

// AuthController gates the admin panel behind the configured owner
// credentials. There is no user table: client data is never persisted, so
// the owner is a single identity from configuration.
type AuthController struct {
	Cfg *config.Config
}

// LoginInput defines the expected JSON structure for owner login
type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login checks owner credentials and issues a session token. A bcrypt hash
// is preferred; OWNER_PASSWORD is the plaintext fallback for local setups.
func (ctl *AuthController) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if ctl.Cfg.OwnerPasswordHash == "" && ctl.Cfg.OwnerPassword == "" {
		utils.RespondWithError(c, http.StatusServiceUnavailable, "Owner login not configured")
		return
	}

	if input.Username != ctl.Cfg.OwnerUsername || !ctl.passwordMatches(input.Password) {
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := utils.GenerateToken(input.Username)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to issue token")
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

func (ctl *AuthController) passwordMatches(password string) bool {
	if ctl.Cfg.OwnerPasswordHash != "" {
		return utils.CheckPasswordHash(password, ctl.Cfg.OwnerPasswordHash)
	}
	return password == ctl.Cfg.OwnerPassword
}

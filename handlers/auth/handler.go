package auth

import (
	"net/http"
	"os"

	"github.com/fura-1993/totono/utils"

	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Password string `json:"password"`
}

// @Summary Admin login
// @Description Open an admin session when the operator password matches
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body loginRequest true "Operator password"
// @Success 200 {object} map[string]bool "success: true"
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 401 {object} map[string]string "error: Wrong password"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /api/admin/login [post]
func Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPassword == "" {
		utils.LogError(nil, "ADMIN_PASSWORD is not configured")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "ADMIN_PASSWORD が未設定です"})
		return
	}

	if req.Password != adminPassword {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "パスワードが正しくありません"})
		return
	}

	token, err := utils.GenerateAdminToken()
	if err != nil {
		utils.LogError(err, "Error generating admin session token")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "ログインに失敗しました"})
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(utils.AdminSessionCookie, token, utils.AdminSessionMaxAge, "/", "", gin.Mode() == gin.ReleaseMode, true)

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// @Summary Admin logout
// @Description Close the current admin session
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]bool "success: true"
// @Router /api/admin/logout [post]
func Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(utils.AdminSessionCookie, "", -1, "/", "", gin.Mode() == gin.ReleaseMode, true)

	c.JSON(http.StatusOK, gin.H{"success": true})
}

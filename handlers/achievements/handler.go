package achievements

import (
	"net/http"
	"strconv"

	"github.com/fura-1993/totono/db"
	"github.com/fura-1993/totono/models"
	"github.com/fura-1993/totono/utils"

	"github.com/gin-gonic/gin"
)

// remplaçable dans les tests
var uploadFile = utils.UploadFile

const achievementOrder = "work_date DESC, display_order ASC, created_at DESC"

// @Summary Get published achievements
// @Description Retrieve the published portfolio entries for the landing page
// @Tags achievements
// @Produce json
// @Success 200 {array} models.Achievement
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /api/achievements [get]
func GetPublishedAchievements(c *gin.Context) {
	var achievements []models.Achievement

	if err := db.DB.Where("is_published = ?", true).Order(achievementOrder).
		Find(&achievements).Error; err != nil {
		utils.LogError(err, "Error fetching achievements")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "実績の取得に失敗しました"})
		return
	}

	c.JSON(http.StatusOK, achievements)
}

// @Summary Get all achievements
// @Description Retrieve all achievements including unpublished ones
// @Tags achievements
// @Produce json
// @Success 200 {array} models.Achievement
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /api/admin/achievements [get]
func GetAllAchievements(c *gin.Context) {
	var achievements []models.Achievement

	if err := db.DB.Order(achievementOrder).Find(&achievements).Error; err != nil {
		utils.LogError(err, "Error fetching achievements")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "実績の取得に失敗しました"})
		return
	}

	c.JSON(http.StatusOK, achievements)
}

// @Summary Create a new achievement
// @Description Create a new portfolio entry, optionally uploading an image
// @Tags achievements
// @Accept multipart/form-data
// @Produce json
// @Param title formData string true "Title"
// @Param description formData string true "Description"
// @Param image formData file false "Illustration"
// @Success 200 {object} map[string]interface{} "success: true, id"
// @Failure 400 {object} map[string]string "error: Validation message"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /api/admin/achievements [post]
func CreateAchievement(c *gin.Context) {
	form := parseAchievementForm(c)

	if form.Title == "" || form.Description == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "タイトルと説明は必須です"})
		return
	}

	imageURL := uploadAchievementImage(c, form.ImageURL)

	achievement := models.Achievement{
		Title:        form.Title,
		Description:  form.Description,
		Location:     optional(form.Location),
		ServiceType:  optional(form.ServiceType),
		WorkDate:     optional(form.WorkDate),
		Details:      optional(form.Details),
		Duration:     optional(form.Duration),
		Scope:        optional(form.Scope),
		ImageURL:     optional(imageURL),
		DisplayOrder: form.DisplayOrder,
		IsPublished:  form.IsPublished,
	}

	if err := db.DB.Create(&achievement).Error; err != nil {
		utils.LogError(err, "Error creating achievement")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "実績の保存に失敗しました"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "id": achievement.ID})
}

// @Summary Update an achievement
// @Description Update a portfolio entry, optionally replacing its image
// @Tags achievements
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Achievement ID"
// @Success 200 {object} map[string]bool "success: true"
// @Failure 400 {object} map[string]string "error: Validation message"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /api/admin/achievements/{id} [patch]
func UpdateAchievement(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return
	}

	form := parseAchievementForm(c)

	if form.Title == "" || form.Description == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "タイトルと説明は必須です"})
		return
	}

	imageURL := uploadAchievementImage(c, form.ImageURL)

	updates := map[string]interface{}{
		"title":         form.Title,
		"description":   form.Description,
		"location":      optional(form.Location),
		"service_type":  optional(form.ServiceType),
		"work_date":     optional(form.WorkDate),
		"details":       optional(form.Details),
		"duration":      optional(form.Duration),
		"scope":         optional(form.Scope),
		"image_url":     optional(imageURL),
		"display_order": form.DisplayOrder,
		"is_published":  form.IsPublished,
	}

	if err := db.DB.Model(&models.Achievement{}).Where("id = ?", id).
		Updates(updates).Error; err != nil {
		utils.LogError(err, "Error updating achievement")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "実績の更新に失敗しました"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// @Summary Delete an achievement
// @Description Delete a portfolio entry by its ID
// @Tags achievements
// @Produce json
// @Param id path int true "Achievement ID"
// @Success 200 {object} map[string]bool "success: true"
// @Failure 400 {object} map[string]string "error: Invalid id"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 404 {object} map[string]string "error: Not found"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /api/admin/achievements/{id} [delete]
func DeleteAchievement(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return
	}

	var achievement models.Achievement
	if err := db.DB.First(&achievement, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "実績が見つかりません"})
		return
	}

	if err := db.DB.Delete(&achievement).Error; err != nil {
		utils.LogError(err, "Error deleting achievement")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "実績の削除に失敗しました"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

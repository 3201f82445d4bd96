package achievements

import (
	"io"
	"strconv"
	"strings"

	"github.com/fura-1993/totono/utils"

	"github.com/gin-gonic/gin"
)

type achievementForm struct {
	Title        string
	Description  string
	Location     string
	ServiceType  string
	WorkDate     string
	Details      string
	Duration     string
	Scope        string
	ImageURL     string
	DisplayOrder int
	IsPublished  bool
}

func parseAchievementForm(c *gin.Context) achievementForm {
	field := func(name string) string {
		return strings.TrimSpace(c.PostForm(name))
	}

	displayOrder, err := strconv.Atoi(field("displayOrder"))
	if err != nil {
		displayOrder = 0
	}

	return achievementForm{
		Title:        field("title"),
		Description:  field("description"),
		Location:     field("location"),
		ServiceType:  field("serviceType"),
		WorkDate:     field("workDate"),
		Details:      field("details"),
		Duration:     field("duration"),
		Scope:        field("scope"),
		ImageURL:     field("imageUrl"),
		DisplayOrder: displayOrder,
		IsPublished:  field("isPublished") == "true",
	}
}

// uploadAchievementImage stocke l'image jointe si elle est présente. Un échec
// d'upload est journalisé et l'URL de repli du formulaire est conservée.
func uploadAchievementImage(c *gin.Context, fallbackURL string) string {
	fh, err := c.FormFile("image")
	if err != nil || fh == nil || fh.Size == 0 {
		return fallbackURL
	}

	src, err := fh.Open()
	if err != nil {
		utils.LogError(err, "Achievement image upload skipped: unreadable file")
		return fallbackURL
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		utils.LogError(err, "Achievement image upload skipped: read error")
		return fallbackURL
	}

	up, err := uploadFile(data, fh.Filename, fh.Header.Get("Content-Type"), "achievements")
	if err != nil {
		utils.LogError(err, "Achievement image upload skipped")
		return fallbackURL
	}
	return up.URL
}

func optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

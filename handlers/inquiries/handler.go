package inquiries

import (
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"github.com/fura-1993/totono/db"
	"github.com/fura-1993/totono/models"
	"github.com/fura-1993/totono/utils"
	mailsmodels "github.com/fura-1993/totono/utils/mails-models"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Effets de bord best-effort du pipeline, remplaçables dans les tests
var (
	uploadFile     = utils.UploadFile
	notifyAdmin    = mailsmodels.AdminNotification
	notifyCustomer = mailsmodels.CustomerAutoReply
)

// @Summary Submit a new inquiry
// @Description Accept a multipart contact form submission with optional photos
// @Tags inquiries
// @Accept multipart/form-data
// @Produce json
// @Param name formData string true "Customer name"
// @Param email formData string false "Email address"
// @Param phone formData string false "Phone number"
// @Param address formData string false "Address"
// @Param serviceType formData string false "Service type label"
// @Param services formData string false "Selected services (JSON array or comma list)"
// @Param details formData string false "Free-text details"
// @Param timing formData string false "Preferred timing"
// @Param contactMethod formData string false "Preferred contact method"
// @Param message formData string false "Free-text message"
// @Param photos formData file false "Attached photos"
// @Success 200 {object} map[string]interface{} "success: true, id, photoUrls"
// @Failure 400 {object} map[string]string "error: Validation message"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /api/inquiries [post]
func CreateInquiry(c *gin.Context) {
	sub := parseSubmission(c)

	if sub.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "お名前は必須です"})
		return
	}
	if sub.RawMessage == "" && sub.Details == "" && len(sub.Services) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "お問い合わせ内容は必須です"})
		return
	}

	inquiry := models.Inquiry{
		Name:                   sub.Name,
		Email:                  optional(sub.Email),
		Phone:                  optional(sub.Phone),
		Address:                optional(sub.Address),
		ServiceType:            optional(sub.ServiceType),
		Services:               encodeServices(sub.Services),
		Details:                optional(sub.Details),
		PreferredTiming:        optional(sub.PreferredTiming),
		PreferredContactMethod: optional(sub.PreferredContactMethod),
		PhotoCount:             0,
		Message:                sub.Message,
		UtmParams:              sub.UtmParams,
		TrafficSource:          optional(sub.TrafficSource),
		LandingPage:            optional(sub.LandingPage),
		Referrer:               optional(sub.Referrer),
		Status:                 models.InquiryStatusNew,
	}

	legacy := db.UsingLegacySchema()
	var err error
	if legacy {
		err = db.DB.Select(models.InquiryLegacyColumns).Create(&inquiry).Error
	} else {
		err = db.DB.Create(&inquiry).Error
		if err != nil && db.IsMissingColumnError(err) {
			db.MarkLegacySchema()
			legacy = true
			utils.LogWarn("inquiries table is legacy schema; saving without extended columns")
			err = db.DB.Select(models.InquiryLegacyColumns).Create(&inquiry).Error
		}
	}
	if err != nil {
		utils.LogError(err, "Error saving inquiry")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "お問い合わせの保存に失敗しました"})
		return
	}

	// À partir d'ici la demande existe: plus rien ne peut faire échouer la
	// requête, chaque étape restante est best-effort.
	report := submissionReport{InquiryID: inquiry.ID, LegacySchema: legacy}

	uploaded := uploadPhotos(c, inquiry.ID, &report)
	report.Uploaded = len(uploaded)

	if len(uploaded) > 0 {
		photos := make([]models.InquiryPhoto, 0, len(uploaded))
		for _, up := range uploaded {
			photos = append(photos, models.InquiryPhoto{
				InquiryID: inquiry.ID,
				FileKey:   up.FileKey,
				URL:       up.URL,
				Filename:  optional(up.Filename),
				MimeType:  optional(up.MimeType),
				FileSize:  up.FileSize,
			})
		}
		if err := db.DB.Create(&photos).Error; err != nil {
			utils.LogError(err, "Error saving inquiry photo records")
		}
	}

	if !legacy {
		if err := db.DB.Model(&models.Inquiry{}).Where("id = ?", inquiry.ID).
			Update("photo_count", len(uploaded)).Error; err != nil {
			utils.LogError(err, "Error updating inquiry photo count")
		}
	}

	photoURLs := make([]string, 0, len(uploaded))
	for _, up := range uploaded {
		photoURLs = append(photoURLs, up.URL)
	}

	mailData := mailsmodels.InquiryMailData{
		InquiryID:              inquiry.ID,
		Name:                   sub.Name,
		Email:                  sub.Email,
		Phone:                  sub.Phone,
		Address:                sub.Address,
		ServiceType:            sub.ServiceType,
		Services:               sub.Services,
		Details:                sub.Details,
		PreferredTiming:        sub.PreferredTiming,
		PreferredContactMethod: sub.PreferredContactMethod,
		Message:                sub.Message,
		PhotoURLs:              photoURLs,
	}

	var adminSentAt, replySentAt *time.Time
	if err := notifyAdmin(mailData); err != nil {
		utils.LogError(err, "Failed to send admin notification")
		report.AdminNotifyErr = err
	} else {
		now := time.Now()
		adminSentAt = &now
	}

	if sub.Email == "" {
		report.AutoReplySkipped = true
	} else if err := notifyCustomer(mailData); err != nil {
		utils.LogError(err, "Failed to send customer auto-reply")
		report.AutoReplyErr = err
	} else {
		now := time.Now()
		replySentAt = &now
	}

	if !legacy && (adminSentAt != nil || replySentAt != nil) {
		if err := db.DB.Model(&models.Inquiry{}).Where("id = ?", inquiry.ID).
			Updates(map[string]interface{}{
				"admin_notification_sent_at": adminSentAt,
				"auto_reply_sent_at":         replySentAt,
			}).Error; err != nil {
			utils.LogError(err, "Error updating notification timestamps")
		}
	}

	utils.LogInquiry(inquiry.ID, report.summary())

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "お問い合わせを受け付けました",
		"id":        inquiry.ID,
		"photoUrls": photoURLs,
	})
}

// uploadPhotos stocke chaque pièce jointe sous inquiries/<id>/. Un fichier qui
// échoue est journalisé et ignoré; le pipeline continue avec le sous-ensemble
// qui a réussi.
func uploadPhotos(c *gin.Context, inquiryID uint, report *submissionReport) []utils.UploadedFile {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return nil
	}

	files := form.File["photos"]
	if len(files) == 0 {
		return nil
	}

	folder := "inquiries/" + strconv.FormatUint(uint64(inquiryID), 10)

	uploaded := make([]utils.UploadedFile, 0, len(files))
	for _, fh := range files {
		data, err := readFormFile(fh)
		if err != nil {
			utils.LogError(err, "Photo upload skipped: unreadable file "+fh.Filename)
			report.addUploadFailure(fh.Filename, err)
			continue
		}

		mimeType := fh.Header.Get("Content-Type")
		up, err := uploadFile(data, fh.Filename, mimeType, folder)
		if err != nil {
			utils.LogError(err, "Photo upload skipped: "+fh.Filename)
			report.addUploadFailure(fh.Filename, err)
			continue
		}
		uploaded = append(uploaded, up)
	}

	return uploaded
}

func readFormFile(fh *multipart.FileHeader) ([]byte, error) {
	src, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()
	return io.ReadAll(src)
}

// @Summary List all inquiries
// @Description Retrieve all inquiries with their attached photos, newest first
// @Tags inquiries
// @Produce json
// @Success 200 {array} models.Inquiry
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /api/inquiries [get]
func GetAllInquiries(c *gin.Context) {
	var inquiries []models.Inquiry

	legacy := db.UsingLegacySchema()
	var err error
	if legacy {
		err = legacyListQuery().Find(&inquiries).Error
	} else {
		err = db.DB.Order("created_at DESC").Find(&inquiries).Error
		if err != nil && db.IsMissingColumnError(err) {
			db.MarkLegacySchema()
			legacy = true
			utils.LogWarn("inquiries table is legacy schema; reading without extended columns")
			err = legacyListQuery().Find(&inquiries).Error
		}
	}
	if err != nil {
		utils.LogError(err, "Error fetching inquiries")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "お問い合わせの取得に失敗しました"})
		return
	}

	var photos []models.InquiryPhoto
	if err := db.DB.Order("created_at DESC").Find(&photos).Error; err != nil {
		utils.LogError(err, "Error fetching inquiry photos")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "お問い合わせの取得に失敗しました"})
		return
	}

	photoMap := make(map[uint][]models.InquiryPhoto)
	for _, photo := range photos {
		photoMap[photo.InquiryID] = append(photoMap[photo.InquiryID], photo)
	}

	for i := range inquiries {
		attached := photoMap[inquiries[i].ID]
		if attached == nil {
			attached = []models.InquiryPhoto{}
		}
		inquiries[i].Photos = attached
		if legacy {
			// la projection legacy ne porte pas photo_count: on le
			// synthétise pour garder un contrat de réponse uniforme
			inquiries[i].PhotoCount = len(attached)
		}
	}

	c.JSON(http.StatusOK, inquiries)
}

func legacyListQuery() *gorm.DB {
	return db.DB.Select(models.InquiryLegacyProjection).Order("created_at DESC")
}

type statusUpdate struct {
	Status string `json:"status"`
}

// @Summary Update inquiry status
// @Description Update the status of an inquiry (new, contacted, quoted, completed, cancelled)
// @Tags inquiries
// @Accept json
// @Produce json
// @Param id path int true "Inquiry ID"
// @Param status body statusUpdate true "New status"
// @Success 200 {object} map[string]bool "success: true"
// @Failure 400 {object} map[string]string "error: Validation message"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /api/inquiries/{id} [patch]
func UpdateInquiryStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return
	}

	var body statusUpdate
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	if !models.IsValidInquiryStatus(body.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}

	if err := db.DB.Model(&models.Inquiry{}).Where("id = ?", id).
		Update("status", body.Status).Error; err != nil {
		utils.LogError(err, "Error updating inquiry status")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "更新に失敗しました"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func encodeServices(services []string) datatypes.JSON {
	if len(services) == 0 {
		return nil
	}
	raw, err := json.Marshal(services)
	if err != nil {
		return nil
	}
	return datatypes.JSON(raw)
}

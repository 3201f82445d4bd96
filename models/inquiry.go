package models

import (
	"time"

	"gorm.io/datatypes"
)

// Statuts possibles d'une demande
const (
	InquiryStatusNew       = "new"
	InquiryStatusContacted = "contacted"
	InquiryStatusQuoted    = "quoted"
	InquiryStatusCompleted = "completed"
	InquiryStatusCancelled = "cancelled"
)

var inquiryStatuses = []string{
	InquiryStatusNew,
	InquiryStatusContacted,
	InquiryStatusQuoted,
	InquiryStatusCompleted,
	InquiryStatusCancelled,
}

func IsValidInquiryStatus(status string) bool {
	for _, s := range inquiryStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// Inquiry représente une demande de contact dans la base de données
// @Description Modèle complet d'une demande de contact
// @Scheme Inquiry
type Inquiry struct {
	ID                      uint            `json:"id" gorm:"primaryKey"`
	Name                    string          `json:"name" gorm:"size:100;not null"`
	Email                   *string         `json:"email" gorm:"size:320"`
	Phone                   *string         `json:"phone" gorm:"size:20"`
	Address                 *string         `json:"address" gorm:"type:text"`
	ServiceType             *string         `json:"serviceType" gorm:"column:service_type;size:50"`
	Services                datatypes.JSON  `json:"services" gorm:"column:services"`
	Details                 *string         `json:"details" gorm:"type:text"`
	PreferredTiming         *string         `json:"preferredTiming" gorm:"column:preferred_timing;size:100"`
	PreferredContactMethod  *string         `json:"preferredContactMethod" gorm:"column:preferred_contact_method;size:50"`
	PhotoCount              int             `json:"photoCount" gorm:"column:photo_count;default:0"`
	Message                 string          `json:"message" gorm:"type:text;not null"`
	UtmParams               datatypes.JSON  `json:"utmParams" gorm:"column:utm_params"`
	TrafficSource           *string         `json:"trafficSource" gorm:"column:traffic_source;type:text"`
	LandingPage             *string         `json:"landingPage" gorm:"column:landing_page;type:text"`
	Referrer                *string         `json:"referrer" gorm:"type:text"`
	AdminNotificationSentAt *time.Time      `json:"adminNotificationSentAt" gorm:"column:admin_notification_sent_at"`
	AutoReplySentAt         *time.Time      `json:"autoReplySentAt" gorm:"column:auto_reply_sent_at"`
	Status                  string          `json:"status" gorm:"size:20;not null;default:new"`
	CreatedAt               time.Time       `json:"createdAt"`
	UpdatedAt               time.Time       `json:"updatedAt"`
	Photos                  []InquiryPhoto  `json:"photos" gorm:"-"`
}

func (Inquiry) TableName() string {
	return "inquiries"
}

// InquiryLegacyColumns est le jeu de colonnes de la table inquiries avant la
// migration qui a ajouté services/details/photo_count et les horodatages de
// notification. Utilisé pour écrire et lire contre l'ancien schéma.
var InquiryLegacyColumns = []string{
	"name",
	"email",
	"phone",
	"address",
	"service_type",
	"message",
	"utm_params",
	"traffic_source",
	"landing_page",
	"referrer",
	"status",
	"created_at",
	"updated_at",
}

// InquiryLegacyProjection ajoute l'id pour les lectures.
var InquiryLegacyProjection = append([]string{"id"}, InquiryLegacyColumns...)

// InquiryPhoto représente une photo jointe à une demande
type InquiryPhoto struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	InquiryID uint      `json:"inquiryId" gorm:"column:inquiry_id;not null;index"`
	FileKey   string    `json:"fileKey" gorm:"column:file_key;size:500;not null"`
	URL       string    `json:"url" gorm:"type:text;not null"`
	Filename  *string   `json:"filename" gorm:"size:255"`
	MimeType  *string   `json:"mimeType" gorm:"column:mime_type;size:100"`
	FileSize  int64     `json:"fileSize" gorm:"column:file_size"`
	CreatedAt time.Time `json:"createdAt"`
}

func (InquiryPhoto) TableName() string {
	return "inquiry_photos"
}

package models

import (
	"time"
)

// Achievement représente une réalisation publiée sur la page vitrine
type Achievement struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Title        string    `json:"title" gorm:"size:200;not null"`
	Description  string    `json:"description" gorm:"type:text;not null"`
	Location     *string   `json:"location" gorm:"size:200"`
	ServiceType  *string   `json:"serviceType" gorm:"column:service_type;size:50"`
	WorkDate     *string   `json:"workDate" gorm:"column:work_date;size:20"`
	Details      *string   `json:"details" gorm:"type:text"`
	Duration     *string   `json:"duration" gorm:"size:100"`
	Scope        *string   `json:"scope" gorm:"size:200"`
	ImageURL     *string   `json:"imageUrl" gorm:"column:image_url;type:text"`
	DisplayOrder int       `json:"displayOrder" gorm:"column:display_order;default:0"`
	IsPublished  bool      `json:"isPublished" gorm:"column:is_published;default:false"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (Achievement) TableName() string {
	return "achievements"
}

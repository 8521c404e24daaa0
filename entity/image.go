package entity

import "time"

// Image is one standalone photo memory. FilePath keeps the conventional
// bucket prefix (photos/<key>) exactly as stored by the uploader.
type Image struct {
	ID         uint       `json:"id" gorm:"primaryKey;autoIncrement"`
	FilePath   string     `json:"file_path" gorm:"type:varchar(1024);not null"`
	CapturedAt *time.Time `json:"captured_at" gorm:"type:date"`
	CreatedAt  time.Time  `json:"created_at" gorm:"not null;autoCreateTime"`
}

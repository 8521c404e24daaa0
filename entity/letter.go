package entity

import (
	"time"

	"gorm.io/datatypes"
)

// Writer direction of a letter.
const (
	WriterAToB = "a_to_b"
	WriterBToA = "b_to_a"
)

// Letter is a multi-page memory: one canonical scan (FileMain) plus an
// ordered list of secondary page scans. FilePages order is display order
// and must survive every operation untouched.
type Letter struct {
	ID        uint                        `json:"id" gorm:"primaryKey;autoIncrement"`
	FileMain  string                      `json:"file_main" gorm:"type:varchar(1024);not null"`
	FilePages datatypes.JSONSlice[string] `json:"file_pages" gorm:"type:jsonb"`
	WrittenAt *time.Time                  `json:"written_at" gorm:"type:date"`
	Writer    *string                     `json:"writer" gorm:"type:varchar(16)"`
	CreatedAt time.Time                   `json:"created_at" gorm:"not null;autoCreateTime"`
}

func ValidWriter(w string) bool {
	return w == WriterAToB || w == WriterBToA
}

package models

import (
	"time"

	"gorm.io/datatypes"
)

// AnalyzeRequest is the inbound analysis payload. The image travels as a
// base64 string; an empty barcode means "no barcode detected", not an error.
type AnalyzeRequest struct {
	User        string      `json:"user" binding:"required"`
	Filename    string      `json:"filename" binding:"required"`
	ImageBase64 string      `json:"image" binding:"required"`
	Barcode     string      `json:"barcode"`
	UserContext UserProfile `json:"user_context" binding:"required"`
}

// AnalysisResult is what a completed pipeline run returns and what the
// history store keeps. ProductName and ImageURL are present only when the
// barcode path won; Facts always carries whatever the winning source found.
type AnalysisResult struct {
	User        string             `json:"user"`
	Response    string             `json:"response"`
	ProductName string             `json:"product_name,omitempty"`
	ImageURL    string             `json:"image_url,omitempty"`
	Facts       map[string]float64 `json:"facts"`
}

// HasData reports whether the run produced anything worth keeping.
func (r *AnalysisResult) HasData() bool {
	return r.ProductName != "" || len(r.Facts) > 0
}

// AnalysisRecord is the append-only history row. Created once per completed
// run, immutable afterwards.
type AnalysisRecord struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	User      string         `json:"user" gorm:"index;not null"`
	Filename  string         `json:"filename" gorm:"not null"`
	Timestamp time.Time      `json:"timestamp" gorm:"index;not null"`
	Result    datatypes.JSON `json:"result" gorm:"type:jsonb"`
}

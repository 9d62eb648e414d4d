package model

type Material struct {
	ID          uint   `gorm:"primarykey" json:"id"`
	CourseID    uint   `json:"course_id" gorm:"not null;index;uniqueIndex:idx_materials_course_order"`
	Title       string `json:"title" gorm:"type:text;not null"`
	ContentURL  string `json:"content_url" gorm:"type:text;not null"`
	ContentType string `json:"content_type" gorm:"type:text;not null"` // "video", "pdf", "article", ...
	OrderIndex  int    `json:"order_index" gorm:"uniqueIndex:idx_materials_course_order"`
}

package model

// swagger:model AssignmentSubmission
type AssignmentSubmission struct {
	BaseModel
	UserID       uint   `gorm:"uniqueIndex:idx_user_assignment;not null" json:"userId"`
	AssignmentID string `gorm:"size:120;uniqueIndex:idx_user_assignment;not null" json:"assignmentId"`
	CourseID     string `gorm:"size:120;index" json:"courseId"`
	Content      string `gorm:"type:text;not null" json:"content"`
}

func (AssignmentSubmission) TableName() string {
	return "assignment_submissions"
}

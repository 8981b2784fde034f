package repository

import (
	"curso_backend/internal/model"

	"gorm.io/gorm"
)

type AssignmentSubmissionRepository struct {
	DB *gorm.DB
}

func NewAssignmentSubmissionRepository(db *gorm.DB) *AssignmentSubmissionRepository {
	return &AssignmentSubmissionRepository{DB: db}
}

func (r *AssignmentSubmissionRepository) FindByUserAndAssignment(userID uint, assignmentID string) (*model.AssignmentSubmission, error) {
	var submission model.AssignmentSubmission
	err := r.DB.Where("user_id = ? AND assignment_id = ?", userID, assignmentID).First(&submission).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &submission, nil
}

func (r *AssignmentSubmissionRepository) Create(submission *model.AssignmentSubmission) error {
	return r.DB.Create(submission).Error
}

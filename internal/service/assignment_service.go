package service

import (
	"strings"

	"curso_backend/internal/model"
	"curso_backend/internal/util"
	"curso_backend/pkg/logger"

	"go.uber.org/zap"
)

// SubmissionStore persiste entregas de tareas. Create debe fallar si ya
// existe una entrega del mismo (usuario, tarea).
type SubmissionStore interface {
	FindByUserAndAssignment(userID uint, assignmentID string) (*model.AssignmentSubmission, error)
	Create(submission *model.AssignmentSubmission) error
}

type AssignmentService struct {
	Curriculum  *CurriculumService
	Submissions SubmissionStore
}

func NewAssignmentService(curriculumSvc *CurriculumService, submissions SubmissionStore) *AssignmentService {
	return &AssignmentService{
		Curriculum:  curriculumSvc,
		Submissions: submissions,
	}
}

// Get devuelve la entrega del alumno para la tarea, o nil si aún no entregó.
func (s *AssignmentService) Get(userID uint, lang, assignmentID string) (*model.AssignmentSubmission, error) {
	cur, err := s.Curriculum.Get(lang)
	if err != nil {
		return nil, err
	}
	if _, _, ok := cur.FindAssignment(assignmentID); !ok {
		return nil, util.ErrAssignmentNotFound
	}
	return s.Submissions.FindByUserAndAssignment(userID, assignmentID)
}

// Submit registra la entrega. Una tarea entregada no se vuelve a entregar:
// si ya existe una entrega (previa o de una sesión concurrente), esa es la
// que se devuelve.
func (s *AssignmentService) Submit(userID uint, lang, assignmentID, text string) (*model.AssignmentSubmission, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, util.ErrEmptySubmission
	}

	cur, err := s.Curriculum.Get(lang)
	if err != nil {
		return nil, err
	}
	topic, _, ok := cur.FindAssignment(assignmentID)
	if !ok {
		return nil, util.ErrAssignmentNotFound
	}

	existing, err := s.Submissions.FindByUserAndAssignment(userID, assignmentID)
	if err != nil {
		logger.Log.Error("fallo consultando la entrega de tarea",
			zap.Uint("userID", userID), zap.String("assignmentID", assignmentID), zap.Error(err))
	} else if existing != nil {
		return existing, util.ErrAlreadySubmitted
	}

	submission := &model.AssignmentSubmission{
		UserID:       userID,
		AssignmentID: assignmentID,
		CourseID:     s.Curriculum.CourseIDForTopic(cur, topic.ID),
		Content:      text,
	}
	if err := s.Submissions.Create(submission); err != nil {
		// El índice único resuelve la carrera entre dos pestañas: releer
		// decide si fue carrera o fallo real.
		if winner, findErr := s.Submissions.FindByUserAndAssignment(userID, assignmentID); findErr == nil && winner != nil {
			return winner, util.ErrAlreadySubmitted
		}
		logger.Log.Error("fallo guardando la entrega de tarea",
			zap.Uint("userID", userID), zap.String("assignmentID", assignmentID), zap.Error(err))
		return nil, err
	}
	return submission, nil
}

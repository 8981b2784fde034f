package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"curso_backend/internal/content"
	"curso_backend/internal/curriculum"
	"curso_backend/internal/model"
	"curso_backend/internal/util"
	"curso_backend/pkg/logger"
	"curso_backend/pkg/monitoring"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// QuizDraft es el progreso de un intento sin terminar: pregunta actual y
// respuestas marcadas. Vive en redis hasta que el alumno termina el quiz.
type QuizDraft struct {
	CurrentQuestionIndex int             `json:"currentQuestionIndex"`
	SelectedAnswers      model.AnswerMap `json:"selectedAnswers"`
	Finished             bool            `json:"finished"`
}

// AttemptStore persiste intentos terminados. Create debe fallar si ya
// existe un intento del mismo (usuario, quiz).
type AttemptStore interface {
	FindByUserAndQuiz(userID uint, quizID string) (*model.QuizAttempt, error)
	Create(attempt *model.QuizAttempt) error
}

// QuizDraftStore guarda borradores de intento. Load devuelve (nil, nil)
// cuando no hay borrador.
type QuizDraftStore interface {
	Load(ctx context.Context, userID uint, quizID string) (*QuizDraft, error)
	Save(ctx context.Context, userID uint, quizID string, draft *QuizDraft) error
	Delete(ctx context.Context, userID uint, quizID string) error
	AcquireSaveLock(ctx context.Context, userID uint, quizID string) (bool, error)
	ReleaseSaveLock(ctx context.Context, userID uint, quizID string)
}

const (
	quizDraftTTL    = 14 * 24 * time.Hour
	quizSaveLockTTL = 30 * time.Second
)

// RedisQuizDraftStore implementa QuizDraftStore sobre redis, con TTL para
// que los borradores abandonados expiren solos.
type RedisQuizDraftStore struct {
	Client *redis.Client
}

func NewRedisQuizDraftStore(client *redis.Client) *RedisQuizDraftStore {
	return &RedisQuizDraftStore{Client: client}
}

func draftKey(userID uint, quizID string) string {
	return fmt.Sprintf("quiz:draft:%d:%s", userID, quizID)
}

func saveLockKey(userID uint, quizID string) string {
	return fmt.Sprintf("quiz:savelock:%d:%s", userID, quizID)
}

func (s *RedisQuizDraftStore) Load(ctx context.Context, userID uint, quizID string) (*QuizDraft, error) {
	raw, err := s.Client.Get(ctx, draftKey(userID, quizID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var draft QuizDraft
	if err := json.Unmarshal(raw, &draft); err != nil {
		return nil, err
	}
	if draft.SelectedAnswers == nil {
		draft.SelectedAnswers = model.AnswerMap{}
	}
	return &draft, nil
}

func (s *RedisQuizDraftStore) Save(ctx context.Context, userID uint, quizID string, draft *QuizDraft) error {
	raw, err := json.Marshal(draft)
	if err != nil {
		return err
	}
	return s.Client.Set(ctx, draftKey(userID, quizID), raw, quizDraftTTL).Err()
}

func (s *RedisQuizDraftStore) Delete(ctx context.Context, userID uint, quizID string) error {
	return s.Client.Del(ctx, draftKey(userID, quizID)).Err()
}

// AcquireSaveLock usa SETNX para que solo una petición de cierre por
// (usuario, quiz) llegue a la base de datos a la vez.
func (s *RedisQuizDraftStore) AcquireSaveLock(ctx context.Context, userID uint, quizID string) (bool, error) {
	return s.Client.SetNX(ctx, saveLockKey(userID, quizID), 1, quizSaveLockTTL).Result()
}

func (s *RedisQuizDraftStore) ReleaseSaveLock(ctx context.Context, userID uint, quizID string) {
	if err := s.Client.Del(ctx, saveLockKey(userID, quizID)).Err(); err != nil {
		logger.Log.Warn("no se pudo liberar el lock de guardado del quiz",
			zap.Uint("userID", userID), zap.String("quizID", quizID), zap.Error(err))
	}
}

// QuizStatus describe en qué fase del quiz está el alumno.
type QuizStatus string

const (
	StatusInProgress         QuizStatus = "in_progress"
	StatusHasExistingAttempt QuizStatus = "has_existing_attempt"
)

// QuizState es la vista del quiz que recibe el cliente: nunca incluye las
// respuestas correctas.
type QuizState struct {
	QuizID               string          `json:"quizId"`
	Status               QuizStatus      `json:"status"`
	QuestionCount        int             `json:"questionCount"`
	CurrentQuestionIndex int             `json:"currentQuestionIndex"`
	SelectedAnswers      model.AnswerMap `json:"selectedAnswers"`
	Score                *int            `json:"score,omitempty"`
}

type QuizService struct {
	Curriculum *CurriculumService
	Attempts   AttemptStore
	Drafts     QuizDraftStore
}

func NewQuizService(curriculumSvc *CurriculumService, attempts AttemptStore, drafts QuizDraftStore) *QuizService {
	return &QuizService{
		Curriculum: curriculumSvc,
		Attempts:   attempts,
		Drafts:     drafts,
	}
}

// ScoreQuiz calcula la nota 0..100 redondeada al entero más cercano. Las
// preguntas sin responder cuentan como incorrectas.
func ScoreQuiz(questions []content.QuizQuestion, answers model.AnswerMap) int {
	if len(questions) == 0 {
		return 0
	}
	correct := 0
	for i, q := range questions {
		sel, ok := answers[i]
		if ok && sel != nil && *sel == q.CorrectAnswer {
			correct++
		}
	}
	return int(math.Round(100 * float64(correct) / float64(len(questions))))
}

func (s *QuizService) findQuiz(lang, quizID string) (*curriculum.Curriculum, *content.Topic, content.QuizPart, error) {
	cur, err := curriculum.Get(lang)
	if err != nil {
		return nil, nil, content.QuizPart{}, err
	}
	topic, quiz, ok := cur.FindQuiz(quizID)
	if !ok {
		return nil, nil, content.QuizPart{}, util.ErrQuizNotFound
	}
	return cur, topic, quiz, nil
}

// existingAttempt consulta si el alumno ya terminó este quiz. Un fallo de
// lectura se registra y se trata como ausencia: el peor caso es un intento
// duplicado que el índice único rechaza al guardar.
func (s *QuizService) existingAttempt(userID uint, quizID string) *model.QuizAttempt {
	attempt, err := s.Attempts.FindByUserAndQuiz(userID, quizID)
	if err != nil {
		logger.Log.Error("fallo consultando el intento de quiz",
			zap.Uint("userID", userID), zap.String("quizID", quizID), zap.Error(err))
		return nil
	}
	return attempt
}

func (s *QuizService) loadDraft(ctx context.Context, userID uint, quizID string) *QuizDraft {
	draft, err := s.Drafts.Load(ctx, userID, quizID)
	if err != nil {
		logger.Log.Warn("fallo leyendo el borrador del quiz, se empieza de cero",
			zap.Uint("userID", userID), zap.String("quizID", quizID), zap.Error(err))
		return nil
	}
	return draft
}

func (s *QuizService) saveDraft(ctx context.Context, userID uint, quizID string, draft *QuizDraft) {
	if err := s.Drafts.Save(ctx, userID, quizID, draft); err != nil {
		// El estado en memoria de la respuesta sigue siendo válido; solo se
		// pierde la persistencia entre recargas.
		logger.Log.Warn("fallo guardando el borrador del quiz",
			zap.Uint("userID", userID), zap.String("quizID", quizID), zap.Error(err))
	}
}

func attemptState(quizID string, questionCount int, attempt *model.QuizAttempt) *QuizState {
	score := attempt.Score
	return &QuizState{
		QuizID:          quizID,
		Status:          StatusHasExistingAttempt,
		QuestionCount:   questionCount,
		SelectedAnswers: attempt.Answers,
		Score:           &score,
	}
}

func draftState(quizID string, questionCount int, draft *QuizDraft) *QuizState {
	return &QuizState{
		QuizID:               quizID,
		Status:               StatusInProgress,
		QuestionCount:        questionCount,
		CurrentQuestionIndex: draft.CurrentQuestionIndex,
		SelectedAnswers:      draft.SelectedAnswers,
	}
}

// State devuelve la fase actual del quiz: intento existente con nota, o el
// borrador en curso (vacío si nunca se tocó).
func (s *QuizService) State(ctx context.Context, userID uint, lang, quizID string) (*QuizState, error) {
	_, _, quiz, err := s.findQuiz(lang, quizID)
	if err != nil {
		return nil, err
	}

	if attempt := s.existingAttempt(userID, quizID); attempt != nil {
		return attemptState(quizID, len(quiz.Questions), attempt), nil
	}

	draft := s.loadDraft(ctx, userID, quizID)
	if draft == nil {
		draft = &QuizDraft{SelectedAnswers: model.AnswerMap{}}
	}
	return draftState(quizID, len(quiz.Questions), draft), nil
}

// Answer marca la opción elegida para la pregunta actual. Solo admite la
// pregunta visible: responder fuera de orden no tiene efecto.
func (s *QuizService) Answer(ctx context.Context, userID uint, lang, quizID string, questionIndex, optionIndex int) (*QuizState, error) {
	_, _, quiz, err := s.findQuiz(lang, quizID)
	if err != nil {
		return nil, err
	}

	if attempt := s.existingAttempt(userID, quizID); attempt != nil {
		return nil, util.ErrQuizFinished
	}

	draft := s.loadDraft(ctx, userID, quizID)
	if draft == nil {
		draft = &QuizDraft{SelectedAnswers: model.AnswerMap{}}
	}

	if questionIndex != draft.CurrentQuestionIndex {
		return draftState(quizID, len(quiz.Questions), draft), nil
	}
	if optionIndex < 0 || optionIndex >= len(quiz.Questions[questionIndex].Options) {
		return nil, util.ErrAnswerRequired
	}

	sel := optionIndex
	draft.SelectedAnswers[questionIndex] = &sel
	s.saveDraft(ctx, userID, quizID, draft)
	return draftState(quizID, len(quiz.Questions), draft), nil
}

// Advance pasa a la siguiente pregunta. Sin respuesta marcada en la actual
// no avanza, y nunca pasa de la última pregunta: la última se cierra con
// Finish.
func (s *QuizService) Advance(ctx context.Context, userID uint, lang, quizID string) (*QuizState, error) {
	_, _, quiz, err := s.findQuiz(lang, quizID)
	if err != nil {
		return nil, err
	}

	if attempt := s.existingAttempt(userID, quizID); attempt != nil {
		return nil, util.ErrQuizFinished
	}

	draft := s.loadDraft(ctx, userID, quizID)
	if draft == nil {
		draft = &QuizDraft{SelectedAnswers: model.AnswerMap{}}
	}

	sel := draft.SelectedAnswers[draft.CurrentQuestionIndex]
	if sel == nil {
		return nil, util.ErrAnswerRequired
	}
	if draft.CurrentQuestionIndex < len(quiz.Questions)-1 {
		draft.CurrentQuestionIndex++
		s.saveDraft(ctx, userID, quizID, draft)
	}
	return draftState(quizID, len(quiz.Questions), draft), nil
}

// Finish cierra el intento: calcula la nota y la persiste una sola vez.
// Relee antes de escribir y deja que el índice único resuelva la carrera
// entre dos pestañas; en ambos casos el resultado visible es el intento ya
// guardado.
func (s *QuizService) Finish(ctx context.Context, userID uint, lang, quizID string) (*QuizState, error) {
	cur, topic, quiz, err := s.findQuiz(lang, quizID)
	if err != nil {
		return nil, err
	}

	if attempt := s.existingAttempt(userID, quizID); attempt != nil {
		return attemptState(quizID, len(quiz.Questions), attempt), nil
	}

	draft := s.loadDraft(ctx, userID, quizID)
	if draft == nil {
		draft = &QuizDraft{SelectedAnswers: model.AnswerMap{}}
	}
	if draft.SelectedAnswers[len(quiz.Questions)-1] == nil {
		return nil, util.ErrAnswerRequired
	}

	locked, err := s.Drafts.AcquireSaveLock(ctx, userID, quizID)
	if err != nil {
		logger.Log.Warn("fallo adquiriendo el lock de guardado, se continúa",
			zap.Uint("userID", userID), zap.String("quizID", quizID), zap.Error(err))
		locked = true
	} else if !locked {
		return nil, util.ErrSaveInFlight
	} else {
		defer s.Drafts.ReleaseSaveLock(ctx, userID, quizID)
	}

	attempt := &model.QuizAttempt{
		UserID:   userID,
		QuizID:   quizID,
		CourseID: s.Curriculum.CourseIDForTopic(cur, topic.ID),
		Score:    ScoreQuiz(quiz.Questions, draft.SelectedAnswers),
		Answers:  draft.SelectedAnswers,
	}
	if err := s.Attempts.Create(attempt); err != nil {
		// Carrera perdida o fallo real: releer decide. Si hay intento
		// guardado por la otra sesión, ese es el resultado canónico.
		if existing := s.existingAttempt(userID, quizID); existing != nil {
			_ = s.Drafts.Delete(ctx, userID, quizID)
			return attemptState(quizID, len(quiz.Questions), existing), nil
		}
		logger.Log.Error("fallo guardando el intento de quiz",
			zap.Uint("userID", userID), zap.String("quizID", quizID), zap.Error(err))
		return nil, err
	}

	monitoring.QuizAttemptCounter.WithLabelValues(attempt.CourseID).Inc()
	if err := s.Drafts.Delete(ctx, userID, quizID); err != nil {
		logger.Log.Warn("no se pudo borrar el borrador tras guardar el intento",
			zap.Uint("userID", userID), zap.String("quizID", quizID), zap.Error(err))
	}
	return attemptState(quizID, len(quiz.Questions), attempt), nil
}

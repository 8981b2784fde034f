package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"curso_backend/internal/content"
	"curso_backend/internal/curriculum"
	"curso_backend/internal/model"
	"curso_backend/internal/util"
)

type fakeAttemptStore struct {
	attempts map[string]*model.QuizAttempt
	creates  int
	failNext error
	// hidden simula una escritura concurrente: el intento no es visible
	// hasta que el Create propio pierde contra el índice único.
	hidden bool
}

func newFakeAttemptStore() *fakeAttemptStore {
	return &fakeAttemptStore{attempts: map[string]*model.QuizAttempt{}}
}

func attemptKeyFor(userID uint, quizID string) string {
	return fmt.Sprintf("%d:%s", userID, quizID)
}

func (f *fakeAttemptStore) FindByUserAndQuiz(userID uint, quizID string) (*model.QuizAttempt, error) {
	if f.hidden {
		return nil, nil
	}
	return f.attempts[attemptKeyFor(userID, quizID)], nil
}

func (f *fakeAttemptStore) Create(attempt *model.QuizAttempt) error {
	f.creates++
	if f.failNext != nil {
		err := f.failNext
		f.failNext = nil
		f.hidden = false
		return err
	}
	key := attemptKeyFor(attempt.UserID, attempt.QuizID)
	if _, ok := f.attempts[key]; ok {
		return errors.New("Error 1062: Duplicate entry")
	}
	f.attempts[key] = attempt
	return nil
}

type fakeDraftStore struct {
	drafts map[string]*QuizDraft
	locks  map[string]bool
}

func newFakeDraftStore() *fakeDraftStore {
	return &fakeDraftStore{drafts: map[string]*QuizDraft{}, locks: map[string]bool{}}
}

func (f *fakeDraftStore) Load(_ context.Context, userID uint, quizID string) (*QuizDraft, error) {
	d, ok := f.drafts[attemptKeyFor(userID, quizID)]
	if !ok {
		return nil, nil
	}
	copied := *d
	copied.SelectedAnswers = model.AnswerMap{}
	for k, v := range d.SelectedAnswers {
		copied.SelectedAnswers[k] = v
	}
	return &copied, nil
}

func (f *fakeDraftStore) Save(_ context.Context, userID uint, quizID string, draft *QuizDraft) error {
	f.drafts[attemptKeyFor(userID, quizID)] = draft
	return nil
}

func (f *fakeDraftStore) Delete(_ context.Context, userID uint, quizID string) error {
	delete(f.drafts, attemptKeyFor(userID, quizID))
	return nil
}

func (f *fakeDraftStore) AcquireSaveLock(_ context.Context, userID uint, quizID string) (bool, error) {
	key := attemptKeyFor(userID, quizID)
	if f.locks[key] {
		return false, nil
	}
	f.locks[key] = true
	return true, nil
}

func (f *fakeDraftStore) ReleaseSaveLock(_ context.Context, userID uint, quizID string) {
	delete(f.locks, attemptKeyFor(userID, quizID))
}

func newQuizFixture() (*QuizService, *fakeAttemptStore, *fakeDraftStore) {
	attempts := newFakeAttemptStore()
	drafts := newFakeDraftStore()
	return NewQuizService(NewCurriculumService(), attempts, drafts), attempts, drafts
}

// firstQuiz localiza el primer quiz del temario y devuelve su clave y
// bloque.
func firstQuiz(t *testing.T) (string, content.QuizPart) {
	t.Helper()
	cur, err := curriculum.Get("es")
	if err != nil {
		t.Fatalf("cargando temario: %v", err)
	}
	for _, topic := range cur.Topics() {
		for i, p := range topic.Content {
			if quiz, ok := p.(content.QuizPart); ok && len(quiz.Questions) > 0 {
				return content.WidgetKey(topic.ID, i), quiz
			}
		}
	}
	t.Fatal("el temario no tiene ningún quiz")
	return "", content.QuizPart{}
}

func TestScoreQuiz(t *testing.T) {
	questions := []content.QuizQuestion{
		{CorrectAnswer: 0},
		{CorrectAnswer: 1},
		{CorrectAnswer: 2},
		{CorrectAnswer: 3},
	}
	answer := func(v int) *int { return &v }

	cases := []struct {
		name    string
		answers model.AnswerMap
		want    int
	}{
		{"todas correctas", model.AnswerMap{0: answer(0), 1: answer(1), 2: answer(2), 3: answer(3)}, 100},
		{"tres de cuatro", model.AnswerMap{0: answer(0), 1: answer(1), 2: answer(9), 3: answer(3)}, 75},
		{"sin responder cuenta como fallo", model.AnswerMap{0: answer(0)}, 25},
		{"nada respondido", model.AnswerMap{}, 0},
	}
	for _, tc := range cases {
		if got := ScoreQuiz(questions, tc.answers); got != tc.want {
			t.Errorf("%s: nota %d, se esperaba %d", tc.name, got, tc.want)
		}
	}

	if got := ScoreQuiz([]content.QuizQuestion{{CorrectAnswer: 0}, {}, {}}, model.AnswerMap{0: answer(0)}); got != 33 {
		t.Errorf("redondeo de 1/3: nota %d, se esperaba 33", got)
	}
	if got := ScoreQuiz(nil, model.AnswerMap{}); got != 0 {
		t.Errorf("quiz sin preguntas: nota %d, se esperaba 0", got)
	}
}

func TestQuizStateStartsEmpty(t *testing.T) {
	svc, _, _ := newQuizFixture()
	quizID, quiz := firstQuiz(t)

	state, err := svc.State(context.Background(), 1, "es", quizID)
	if err != nil {
		t.Fatalf("State: %v", err)
	}
	if state.Status != StatusInProgress {
		t.Fatalf("estado %q, se esperaba %q", state.Status, StatusInProgress)
	}
	if state.CurrentQuestionIndex != 0 || len(state.SelectedAnswers) != 0 {
		t.Fatalf("el borrador inicial no está vacío: %+v", state)
	}
	if state.QuestionCount != len(quiz.Questions) {
		t.Fatalf("questionCount %d, se esperaba %d", state.QuestionCount, len(quiz.Questions))
	}
}

func TestQuizFullFlow(t *testing.T) {
	svc, attempts, drafts := newQuizFixture()
	quizID, quiz := firstQuiz(t)
	ctx := context.Background()

	for i, q := range quiz.Questions {
		state, err := svc.Answer(ctx, 1, "es", quizID, i, q.CorrectAnswer)
		if err != nil {
			t.Fatalf("Answer(%d): %v", i, err)
		}
		if got := state.SelectedAnswers[i]; got == nil || *got != q.CorrectAnswer {
			t.Fatalf("la respuesta %d no quedó marcada", i)
		}
		if i < len(quiz.Questions)-1 {
			state, err = svc.Advance(ctx, 1, "es", quizID)
			if err != nil {
				t.Fatalf("Advance(%d): %v", i, err)
			}
			if state.CurrentQuestionIndex != i+1 {
				t.Fatalf("tras avanzar, índice %d, se esperaba %d", state.CurrentQuestionIndex, i+1)
			}
		}
	}

	state, err := svc.Finish(ctx, 1, "es", quizID)
	if err != nil {
		t.Fatalf("Finish: %v", err)
	}
	if state.Status != StatusHasExistingAttempt {
		t.Fatalf("estado %q tras terminar", state.Status)
	}
	if state.Score == nil || *state.Score != 100 {
		t.Fatalf("nota %v, se esperaba 100", state.Score)
	}
	if attempts.creates != 1 {
		t.Fatalf("se guardaron %d intentos, se esperaba 1", attempts.creates)
	}
	if len(drafts.drafts) != 0 {
		t.Fatal("el borrador no se borró tras guardar el intento")
	}

	// Con intento guardado, el quiz queda bloqueado.
	if _, err := svc.Answer(ctx, 1, "es", quizID, 0, 0); !errors.Is(err, util.ErrQuizFinished) {
		t.Fatalf("Answer tras terminar devolvió %v", err)
	}
}

func TestAdvanceRequiresAnswer(t *testing.T) {
	svc, _, _ := newQuizFixture()
	quizID, _ := firstQuiz(t)

	if _, err := svc.Advance(context.Background(), 1, "es", quizID); err == nil {
		t.Fatal("Advance sin respuesta marcada debería fallar")
	}
}

func TestAdvanceStopsAtLastQuestion(t *testing.T) {
	svc, _, _ := newQuizFixture()
	quizID, quiz := firstQuiz(t)
	ctx := context.Background()
	last := len(quiz.Questions) - 1

	for i, q := range quiz.Questions {
		if _, err := svc.Answer(ctx, 1, "es", quizID, i, q.CorrectAnswer); err != nil {
			t.Fatalf("Answer(%d): %v", i, err)
		}
		if i < last {
			if _, err := svc.Advance(ctx, 1, "es", quizID); err != nil {
				t.Fatalf("Advance(%d): %v", i, err)
			}
		}
	}

	state, err := svc.Advance(ctx, 1, "es", quizID)
	if err != nil {
		t.Fatalf("Advance en la última pregunta: %v", err)
	}
	if state.CurrentQuestionIndex != last {
		t.Fatalf("el índice pasó de la última pregunta: %d", state.CurrentQuestionIndex)
	}
	if state.Status != StatusInProgress {
		t.Fatal("Advance en la última pregunta no debe cerrar el intento")
	}
}

func TestAnswerIgnoresOutOfOrderQuestion(t *testing.T) {
	svc, _, _ := newQuizFixture()
	quizID, _ := firstQuiz(t)

	state, err := svc.Answer(context.Background(), 1, "es", quizID, 2, 0)
	if err != nil {
		t.Fatalf("Answer fuera de orden: %v", err)
	}
	if len(state.SelectedAnswers) != 0 {
		t.Fatal("responder una pregunta no visible no debe marcar nada")
	}
}

func TestFinishTwiceKeepsFirstAttempt(t *testing.T) {
	svc, attempts, _ := newQuizFixture()
	quizID, quiz := firstQuiz(t)
	ctx := context.Background()

	answerAll(t, svc, quizID, quiz)

	first, err := svc.Finish(ctx, 1, "es", quizID)
	if err != nil {
		t.Fatalf("primer Finish: %v", err)
	}
	second, err := svc.Finish(ctx, 1, "es", quizID)
	if err != nil {
		t.Fatalf("segundo Finish: %v", err)
	}
	if attempts.creates != 1 {
		t.Fatalf("se guardaron %d intentos, se esperaba 1", attempts.creates)
	}
	if *first.Score != *second.Score {
		t.Fatalf("el segundo Finish cambió la nota: %d != %d", *first.Score, *second.Score)
	}
}

// El índice único decide la carrera: si el Create pierde contra otra
// sesión, la relectura devuelve el intento ganador sin error.
func TestFinishLosesRaceToConcurrentSession(t *testing.T) {
	svc, attempts, _ := newQuizFixture()
	quizID, quiz := firstQuiz(t)
	ctx := context.Background()

	answerAll(t, svc, quizID, quiz)

	winner := &model.QuizAttempt{UserID: 1, QuizID: quizID, Score: 50}
	attempts.attempts[attemptKeyFor(1, quizID)] = winner
	attempts.hidden = true
	attempts.failNext = errors.New("Error 1062: Duplicate entry")

	state, err := svc.Finish(ctx, 1, "es", quizID)
	if err != nil {
		t.Fatalf("Finish tras perder la carrera: %v", err)
	}
	if state.Score == nil || *state.Score != 50 {
		t.Fatalf("nota %v, se esperaba la del intento ganador (50)", state.Score)
	}
	if attempts.creates != 1 {
		t.Fatalf("Create se llamó %d veces, se esperaba 1", attempts.creates)
	}
}

func TestFinishRequiresLastAnswer(t *testing.T) {
	svc, attempts, _ := newQuizFixture()
	quizID, quiz := firstQuiz(t)
	ctx := context.Background()

	// Solo la primera pregunta respondida.
	if _, err := svc.Answer(ctx, 1, "es", quizID, 0, quiz.Questions[0].CorrectAnswer); err != nil {
		t.Fatalf("Answer: %v", err)
	}
	if _, err := svc.Finish(ctx, 1, "es", quizID); err == nil {
		t.Fatal("Finish sin responder la última pregunta debería fallar")
	}
	if attempts.creates != 0 {
		t.Fatal("no debería haberse guardado ningún intento")
	}
}

func TestQuizUnknownIDAndLanguage(t *testing.T) {
	svc, _, _ := newQuizFixture()

	if _, err := svc.State(context.Background(), 1, "es", "no-existe-0"); err == nil {
		t.Fatal("un quiz inexistente debería fallar")
	}
	quizID, _ := firstQuiz(t)
	if _, err := svc.State(context.Background(), 1, "fr", quizID); err == nil {
		t.Fatal("un idioma no soportado debería fallar")
	}
}

func answerAll(t *testing.T, svc *QuizService, quizID string, quiz content.QuizPart) {
	t.Helper()
	ctx := context.Background()
	for i, q := range quiz.Questions {
		if _, err := svc.Answer(ctx, 1, "es", quizID, i, q.CorrectAnswer); err != nil {
			t.Fatalf("Answer(%d): %v", i, err)
		}
		if i < len(quiz.Questions)-1 {
			if _, err := svc.Advance(ctx, 1, "es", quizID); err != nil {
				t.Fatalf("Advance(%d): %v", i, err)
			}
		}
	}
}

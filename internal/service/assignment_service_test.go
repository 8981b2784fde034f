package service

import (
	"errors"
	"testing"

	"curso_backend/internal/content"
	"curso_backend/internal/curriculum"
	"curso_backend/internal/model"
	"curso_backend/internal/util"
)

type fakeSubmissionStore struct {
	submissions map[string]*model.AssignmentSubmission
	creates     int
	failNext    error
	hidden      bool
}

func newFakeSubmissionStore() *fakeSubmissionStore {
	return &fakeSubmissionStore{submissions: map[string]*model.AssignmentSubmission{}}
}

func (f *fakeSubmissionStore) FindByUserAndAssignment(userID uint, assignmentID string) (*model.AssignmentSubmission, error) {
	if f.hidden {
		return nil, nil
	}
	return f.submissions[attemptKeyFor(userID, assignmentID)], nil
}

func (f *fakeSubmissionStore) Create(submission *model.AssignmentSubmission) error {
	f.creates++
	if f.failNext != nil {
		err := f.failNext
		f.failNext = nil
		f.hidden = false
		return err
	}
	key := attemptKeyFor(submission.UserID, submission.AssignmentID)
	if _, ok := f.submissions[key]; ok {
		return errors.New("Error 1062: Duplicate entry")
	}
	f.submissions[key] = submission
	return nil
}

func firstAssignmentID(t *testing.T) string {
	t.Helper()
	cur, err := curriculum.Get("es")
	if err != nil {
		t.Fatalf("cargando temario: %v", err)
	}
	for _, topic := range cur.Topics() {
		for i, p := range topic.Content {
			if a, ok := p.(content.AssignmentPart); ok {
				if a.AssignmentID != "" {
					return a.AssignmentID
				}
				return content.WidgetKey(topic.ID, i)
			}
		}
	}
	t.Fatal("el temario no tiene ninguna tarea")
	return ""
}

func newAssignmentFixture() (*AssignmentService, *fakeSubmissionStore) {
	store := newFakeSubmissionStore()
	return NewAssignmentService(NewCurriculumService(), store), store
}

func TestSubmitAndGet(t *testing.T) {
	svc, store := newAssignmentFixture()
	assignmentID := firstAssignmentID(t)

	got, err := svc.Get(7, "es", assignmentID)
	if err != nil {
		t.Fatalf("Get antes de entregar: %v", err)
	}
	if got != nil {
		t.Fatal("no debería haber entrega todavía")
	}

	sub, err := svc.Submit(7, "es", assignmentID, "  mi solución  ")
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if sub.Content != "mi solución" {
		t.Fatalf("el texto no se recortó: %q", sub.Content)
	}
	if store.creates != 1 {
		t.Fatalf("se guardaron %d entregas, se esperaba 1", store.creates)
	}

	got, err = svc.Get(7, "es", assignmentID)
	if err != nil {
		t.Fatalf("Get tras entregar: %v", err)
	}
	if got == nil || got.Content != "mi solución" {
		t.Fatalf("Get no devolvió la entrega: %+v", got)
	}
}

func TestSubmitRejectsEmptyText(t *testing.T) {
	svc, store := newAssignmentFixture()
	assignmentID := firstAssignmentID(t)

	for _, text := range []string{"", "   ", "\n\t"} {
		if _, err := svc.Submit(7, "es", assignmentID, text); !errors.Is(err, util.ErrEmptySubmission) {
			t.Fatalf("Submit(%q) devolvió %v", text, err)
		}
	}
	if store.creates != 0 {
		t.Fatal("una entrega vacía no debe llegar al almacén")
	}
}

func TestSubmitTwiceKeepsFirst(t *testing.T) {
	svc, store := newAssignmentFixture()
	assignmentID := firstAssignmentID(t)

	first, err := svc.Submit(7, "es", assignmentID, "primera")
	if err != nil {
		t.Fatalf("primera entrega: %v", err)
	}
	second, err := svc.Submit(7, "es", assignmentID, "segunda")
	if !errors.Is(err, util.ErrAlreadySubmitted) {
		t.Fatalf("segunda entrega devolvió %v", err)
	}
	if second == nil || second.Content != first.Content {
		t.Fatalf("la segunda entrega no devolvió la original: %+v", second)
	}
	if store.creates != 1 {
		t.Fatalf("Create se llamó %d veces, se esperaba 1", store.creates)
	}
}

// Dos pestañas entregan a la vez: el índice único deja pasar una, la otra
// recibe la entrega ganadora.
func TestSubmitLosesRaceToConcurrentSession(t *testing.T) {
	svc, store := newAssignmentFixture()
	assignmentID := firstAssignmentID(t)

	winner := &model.AssignmentSubmission{UserID: 7, AssignmentID: assignmentID, Content: "ganadora"}
	store.submissions[attemptKeyFor(7, assignmentID)] = winner
	store.hidden = true
	store.failNext = errors.New("Error 1062: Duplicate entry")

	sub, err := svc.Submit(7, "es", assignmentID, "perdedora")
	if !errors.Is(err, util.ErrAlreadySubmitted) {
		t.Fatalf("Submit tras perder la carrera devolvió %v", err)
	}
	if sub == nil || sub.Content != "ganadora" {
		t.Fatalf("no se devolvió la entrega ganadora: %+v", sub)
	}
}

func TestSubmitUnknownAssignment(t *testing.T) {
	svc, _ := newAssignmentFixture()

	if _, err := svc.Submit(7, "es", "no-existe-0", "texto"); !errors.Is(err, util.ErrAssignmentNotFound) {
		t.Fatalf("tarea inexistente devolvió %v", err)
	}
	if _, err := svc.Get(7, "es", "no-existe-0"); !errors.Is(err, util.ErrAssignmentNotFound) {
		t.Fatalf("Get de tarea inexistente devolvió %v", err)
	}
}

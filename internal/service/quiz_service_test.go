package service

import (
	"errors"
	"testing"
	"time"

	"github.com/edumobile/edu-api/internal/apperrors"
	"github.com/edumobile/edu-api/internal/model"
	"github.com/edumobile/edu-api/internal/repository"
)

// fakeAttemptRepo keeps attempts in memory and mimics the partial unique
// index: a second open attempt for the same (user, test) pair fails with
// ErrAlreadyExists.
type fakeAttemptRepo struct {
	attempts map[uint]*model.QuizAttempt
	nextID   uint
}

func newFakeAttemptRepo() *fakeAttemptRepo {
	return &fakeAttemptRepo{attempts: make(map[uint]*model.QuizAttempt), nextID: 1}
}

func (r *fakeAttemptRepo) Create(attempt *model.QuizAttempt) error {
	for _, a := range r.attempts {
		if a.UserID == attempt.UserID && a.TestID == attempt.TestID && !a.Finished() {
			return apperrors.ErrAlreadyExists
		}
	}
	attempt.ID = r.nextID
	r.nextID++
	copy := *attempt
	r.attempts[attempt.ID] = &copy
	return nil
}

func (r *fakeAttemptRepo) FindByID(id uint) (*model.QuizAttempt, error) {
	a, ok := r.attempts[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	copy := *a
	return &copy, nil
}

func (r *fakeAttemptRepo) GetActiveAttempt(userID, testID uint) (*model.QuizAttempt, error) {
	for _, a := range r.attempts {
		if a.UserID == userID && a.TestID == testID && !a.Finished() {
			copy := *a
			return &copy, nil
		}
	}
	return nil, nil
}

func (r *fakeAttemptRepo) Finish(id uint, score int, finishedAt time.Time) (*model.QuizAttempt, error) {
	a, ok := r.attempts[id]
	if !ok || a.Finished() {
		return nil, apperrors.ErrNotFound
	}
	a.Score = &score
	a.FinishedAt = &finishedAt
	copy := *a
	return &copy, nil
}

func (r *fakeAttemptRepo) FindByUserAndTest(userID, testID uint) ([]model.QuizAttempt, error) {
	var out []model.QuizAttempt
	for _, a := range r.attempts {
		if a.UserID == userID && a.TestID == testID {
			out = append(out, *a)
		}
	}
	// newest first
	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); j++ {
			if out[j].StartedAt.After(out[i].StartedAt) {
				out[i], out[j] = out[j], out[i]
			}
		}
	}
	return out, nil
}

func (r *fakeAttemptRepo) FindWithAnswers(id uint) (*model.QuizAttempt, error) {
	return r.FindByID(id)
}

// fakeAnswerRepo scores the way the SQL join does: an answer is correct when
// its selected option is in the correct set, and unanswered or free-text rows
// count only toward the total.
type fakeAnswerRepo struct {
	answers        []model.UserAnswer
	correctOptions map[uint]bool
	nextID         uint
}

func newFakeAnswerRepo(correctOptions ...uint) *fakeAnswerRepo {
	set := make(map[uint]bool, len(correctOptions))
	for _, id := range correctOptions {
		set[id] = true
	}
	return &fakeAnswerRepo{correctOptions: set, nextID: 1}
}

func (r *fakeAnswerRepo) Create(answer *model.UserAnswer) error {
	answer.ID = r.nextID
	r.nextID++
	r.answers = append(r.answers, *answer)
	return nil
}

func (r *fakeAnswerRepo) GetAttemptScore(attemptID uint) (*repository.AttemptScore, error) {
	score := &repository.AttemptScore{}
	for _, a := range r.answers {
		if a.AttemptID != attemptID {
			continue
		}
		score.TotalAnswers++
		if a.SelectedOptionID != nil && r.correctOptions[*a.SelectedOptionID] {
			score.CorrectAnswers++
		}
	}
	return score, nil
}

type fakeTestRepo struct {
	tests map[uint]*model.Test
}

func newFakeTestRepo(ids ...uint) *fakeTestRepo {
	r := &fakeTestRepo{tests: make(map[uint]*model.Test)}
	for _, id := range ids {
		r.tests[id] = &model.Test{ID: id, Title: "test"}
	}
	return r
}

func (r *fakeTestRepo) Create(test *model.Test) error { r.tests[test.ID] = test; return nil }

func (r *fakeTestRepo) FindByID(id uint) (*model.Test, error) {
	t, ok := r.tests[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return t, nil
}

func (r *fakeTestRepo) FindByCourseID(courseID uint) ([]model.Test, error) { return nil, nil }
func (r *fakeTestRepo) Update(test *model.Test) error                      { return nil }
func (r *fakeTestRepo) Delete(id uint) error                               { return nil }
func (r *fakeTestRepo) FindWithQuestions(id uint) (*model.Test, error)     { return r.FindByID(id) }

func newQuizServiceForTest(attempts *fakeAttemptRepo, answers *fakeAnswerRepo, tests *fakeTestRepo) *quizService {
	return &quizService{
		attemptRepo: attempts,
		answerRepo:  answers,
		testRepo:    tests,
		now:         time.Now,
	}
}

func uintPtr(v uint) *uint { return &v }

func TestStartTestCreatesOpenAttempt(t *testing.T) {
	svc := newQuizServiceForTest(newFakeAttemptRepo(), newFakeAnswerRepo(), newFakeTestRepo(1))

	attempt, err := svc.StartTest(7, 1)
	if err != nil {
		t.Fatalf("StartTest: %v", err)
	}
	if attempt.ID == 0 {
		t.Error("expected a persisted attempt with an id")
	}
	if attempt.Finished() {
		t.Error("new attempt must be open")
	}
	if attempt.Score != nil {
		t.Error("new attempt must have no score")
	}
}

func TestStartTestIsIdempotentWhileOpen(t *testing.T) {
	svc := newQuizServiceForTest(newFakeAttemptRepo(), newFakeAnswerRepo(), newFakeTestRepo(1))

	first, err := svc.StartTest(7, 1)
	if err != nil {
		t.Fatalf("first StartTest: %v", err)
	}
	second, err := svc.StartTest(7, 1)
	if err != nil {
		t.Fatalf("second StartTest: %v", err)
	}
	if first.ID != second.ID {
		t.Errorf("expected same attempt, got %d then %d", first.ID, second.ID)
	}
}

func TestStartTestUnknownTest(t *testing.T) {
	attempts := newFakeAttemptRepo()
	svc := newQuizServiceForTest(attempts, newFakeAnswerRepo(), newFakeTestRepo())

	_, err := svc.StartTest(7, 99)
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if len(attempts.attempts) != 0 {
		t.Error("no attempt row may be created for an unknown test")
	}
}

func TestStartTestAfterFinishOpensNewAttempt(t *testing.T) {
	svc := newQuizServiceForTest(newFakeAttemptRepo(), newFakeAnswerRepo(), newFakeTestRepo(1))

	first, _ := svc.StartTest(7, 1)
	if _, err := svc.FinishAttempt(first.ID); err != nil {
		t.Fatalf("FinishAttempt: %v", err)
	}
	second, err := svc.StartTest(7, 1)
	if err != nil {
		t.Fatalf("StartTest after finish: %v", err)
	}
	if second.ID == first.ID {
		t.Error("finishing must allow a fresh attempt with a new id")
	}
}

func TestStartTestResolvesConcurrentInsert(t *testing.T) {
	attempts := newFakeAttemptRepo()
	svc := newQuizServiceForTest(attempts, newFakeAnswerRepo(), newFakeTestRepo(1))

	// Simulate losing the insert race: the winner's row appears between the
	// active-attempt check and our Create call.
	winner := &model.QuizAttempt{UserID: 7, TestID: 1, StartedAt: time.Now()}
	if err := attempts.Create(winner); err != nil {
		t.Fatalf("seeding winner: %v", err)
	}
	svcImpl := svc
	svcImpl.attemptRepo = &racingAttemptRepo{fakeAttemptRepo: attempts, hideActiveOnce: true}

	attempt, err := svcImpl.StartTest(7, 1)
	if err != nil {
		t.Fatalf("StartTest during race: %v", err)
	}
	if attempt.ID != winner.ID {
		t.Errorf("expected winner's attempt %d, got %d", winner.ID, attempt.ID)
	}
}

// racingAttemptRepo reports no active attempt on the first lookup so the
// service proceeds to Create and hits the duplicate-key path.
type racingAttemptRepo struct {
	*fakeAttemptRepo
	hideActiveOnce bool
}

func (r *racingAttemptRepo) GetActiveAttempt(userID, testID uint) (*model.QuizAttempt, error) {
	if r.hideActiveOnce {
		r.hideActiveOnce = false
		return nil, nil
	}
	return r.fakeAttemptRepo.GetActiveAttempt(userID, testID)
}

func TestSubmitAnswerUnknownAttempt(t *testing.T) {
	svc := newQuizServiceForTest(newFakeAttemptRepo(), newFakeAnswerRepo(), newFakeTestRepo(1))

	_, err := svc.SubmitAnswer(42, 1, uintPtr(1), nil)
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSubmitAnswerAfterFinishRejected(t *testing.T) {
	answers := newFakeAnswerRepo()
	svc := newQuizServiceForTest(newFakeAttemptRepo(), answers, newFakeTestRepo(1))

	attempt, _ := svc.StartTest(7, 1)
	if _, err := svc.FinishAttempt(attempt.ID); err != nil {
		t.Fatalf("FinishAttempt: %v", err)
	}

	_, err := svc.SubmitAnswer(attempt.ID, 1, uintPtr(1), nil)
	if !errors.Is(err, apperrors.ErrInvalidState) {
		t.Fatalf("expected ErrInvalidState, got %v", err)
	}
	if len(answers.answers) != 0 {
		t.Error("no answer row may be written after finish")
	}
}

func TestSubmitAnswerAccumulatesRows(t *testing.T) {
	answers := newFakeAnswerRepo()
	svc := newQuizServiceForTest(newFakeAttemptRepo(), answers, newFakeTestRepo(1))

	attempt, _ := svc.StartTest(7, 1)
	// Same question answered twice: both rows stay.
	if _, err := svc.SubmitAnswer(attempt.ID, 1, uintPtr(10), nil); err != nil {
		t.Fatalf("first answer: %v", err)
	}
	if _, err := svc.SubmitAnswer(attempt.ID, 1, uintPtr(11), nil); err != nil {
		t.Fatalf("second answer: %v", err)
	}
	if len(answers.answers) != 2 {
		t.Errorf("expected 2 answer rows, got %d", len(answers.answers))
	}
}

func TestFinishEmptyAttemptScoresZero(t *testing.T) {
	svc := newQuizServiceForTest(newFakeAttemptRepo(), newFakeAnswerRepo(), newFakeTestRepo(1))

	attempt, _ := svc.StartTest(7, 1)
	finished, err := svc.FinishAttempt(attempt.ID)
	if err != nil {
		t.Fatalf("FinishAttempt: %v", err)
	}
	if finished.Score == nil || *finished.Score != 0 {
		t.Fatalf("expected score 0 for empty attempt, got %v", finished.Score)
	}
	if finished.FinishedAt == nil {
		t.Fatal("finished attempt must carry finished_at")
	}
}

func TestFinishScoresTwoOfThree(t *testing.T) {
	answers := newFakeAnswerRepo(10, 11)
	svc := newQuizServiceForTest(newFakeAttemptRepo(), answers, newFakeTestRepo(1))

	attempt, _ := svc.StartTest(7, 1)
	svc.SubmitAnswer(attempt.ID, 1, uintPtr(10), nil) // correct
	svc.SubmitAnswer(attempt.ID, 2, uintPtr(11), nil) // correct
	svc.SubmitAnswer(attempt.ID, 3, uintPtr(20), nil) // wrong

	finished, err := svc.FinishAttempt(attempt.ID)
	if err != nil {
		t.Fatalf("FinishAttempt: %v", err)
	}
	if finished.Score == nil || *finished.Score != 67 {
		t.Fatalf("expected score 67, got %v", finished.Score)
	}
}

func TestFinishTwiceRejected(t *testing.T) {
	svc := newQuizServiceForTest(newFakeAttemptRepo(), newFakeAnswerRepo(), newFakeTestRepo(1))

	attempt, _ := svc.StartTest(7, 1)
	first, err := svc.FinishAttempt(attempt.ID)
	if err != nil {
		t.Fatalf("first FinishAttempt: %v", err)
	}
	_, err = svc.FinishAttempt(attempt.ID)
	if !errors.Is(err, apperrors.ErrInvalidState) {
		t.Fatalf("expected ErrInvalidState on re-finish, got %v", err)
	}

	// The recorded score must be untouched.
	reread, _ := svc.attemptRepo.FindByID(attempt.ID)
	if *reread.Score != *first.Score || !reread.FinishedAt.Equal(*first.FinishedAt) {
		t.Error("re-finish must not modify the recorded score or timestamp")
	}
}

func TestFinishUnknownAttempt(t *testing.T) {
	svc := newQuizServiceForTest(newFakeAttemptRepo(), newFakeAnswerRepo(), newFakeTestRepo(1))

	_, err := svc.FinishAttempt(42)
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFinishedAtNotBeforeStartedAt(t *testing.T) {
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	clock := base
	svc := newQuizServiceForTest(newFakeAttemptRepo(), newFakeAnswerRepo(), newFakeTestRepo(1))
	svc.now = func() time.Time { return clock }

	attempt, _ := svc.StartTest(7, 1)
	clock = base.Add(5 * time.Minute)
	finished, err := svc.FinishAttempt(attempt.ID)
	if err != nil {
		t.Fatalf("FinishAttempt: %v", err)
	}
	if finished.FinishedAt.Before(finished.StartedAt) {
		t.Errorf("finished_at %v precedes started_at %v", finished.FinishedAt, finished.StartedAt)
	}
}

func TestFullQuizScenario(t *testing.T) {
	// Option 10 is correct, option 20 is not. One right and one wrong answer
	// lands exactly at 50.
	answers := newFakeAnswerRepo(10)
	svc := newQuizServiceForTest(newFakeAttemptRepo(), answers, newFakeTestRepo(1))

	attempt, err := svc.StartTest(1, 1)
	if err != nil {
		t.Fatalf("StartTest: %v", err)
	}
	if _, err := svc.SubmitAnswer(attempt.ID, 1, uintPtr(10), nil); err != nil {
		t.Fatalf("correct answer: %v", err)
	}
	if _, err := svc.SubmitAnswer(attempt.ID, 2, uintPtr(20), nil); err != nil {
		t.Fatalf("wrong answer: %v", err)
	}

	finished, err := svc.FinishAttempt(attempt.ID)
	if err != nil {
		t.Fatalf("FinishAttempt: %v", err)
	}
	if finished.Score == nil || *finished.Score != 50 {
		t.Fatalf("expected score 50, got %v", finished.Score)
	}

	history, err := svc.GetUserAttempts(1, 1)
	if err != nil {
		t.Fatalf("GetUserAttempts: %v", err)
	}
	if len(history) != 1 || !history[0].Finished() {
		t.Fatalf("expected one finished attempt in history, got %+v", history)
	}
}

func TestGetUserAttemptsNewestFirst(t *testing.T) {
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	clock := base
	svc := newQuizServiceForTest(newFakeAttemptRepo(), newFakeAnswerRepo(), newFakeTestRepo(1))
	svc.now = func() time.Time { return clock }

	first, _ := svc.StartTest(7, 1)
	svc.FinishAttempt(first.ID)
	clock = base.Add(time.Hour)
	second, _ := svc.StartTest(7, 1)

	attempts, err := svc.GetUserAttempts(7, 1)
	if err != nil {
		t.Fatalf("GetUserAttempts: %v", err)
	}
	if len(attempts) != 2 {
		t.Fatalf("expected 2 attempts, got %d", len(attempts))
	}
	if attempts[0].ID != second.ID {
		t.Errorf("expected newest attempt first, got %d", attempts[0].ID)
	}
}

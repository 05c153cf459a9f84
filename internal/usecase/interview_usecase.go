package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"sync"
	"time"

	"ai-interviewer/internal/apperr"
	"ai-interviewer/internal/config"
	"ai-interviewer/internal/logger"
	"ai-interviewer/internal/model"
	"ai-interviewer/internal/repository"
	"ai-interviewer/internal/service"
	"ai-interviewer/internal/util"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type InterviewUsecase struct {
	interviewRepo *repository.InterviewRepository
	userRepo      *repository.UserRepository
	cvRepo        *repository.CVRepository
	reportRepo    *repository.ReportRepository
	topics        *TopicResolver
	ai            service.AIServiceInterface
	email         service.EmailServiceInterface

	// sessionLocks serializes submit/finish per interview id; different
	// interviews never contend.
	sessionLocks sync.Map

	// EmailTimeout bounds the fire-and-forget dispatch after finish commits.
	EmailTimeout time.Duration
}

func NewInterviewUsecase(
	interviewRepo *repository.InterviewRepository,
	userRepo *repository.UserRepository,
	cvRepo *repository.CVRepository,
	reportRepo *repository.ReportRepository,
	topics *TopicResolver,
	ai service.AIServiceInterface,
	email service.EmailServiceInterface,
) *InterviewUsecase {
	return &InterviewUsecase{
		interviewRepo: interviewRepo,
		userRepo:      userRepo,
		cvRepo:        cvRepo,
		reportRepo:    reportRepo,
		topics:        topics,
		ai:            ai,
		email:         email,
		EmailTimeout:  30 * time.Second,
	}
}

type StartInterviewInput struct {
	UserID         uint
	CVID           uint
	JobTitle       string
	JobDescription string
	TopicsToFocus  []string
	Mode           model.InterviewMode
}

// questionCountFor draws the target question count once from the mode's band.
func questionCountFor(mode model.InterviewMode) int {
	switch mode {
	case model.ModeHard:
		return 11 + rand.Intn(5)
	case model.ModeMedium:
		return 6 + rand.Intn(5)
	default:
		return 3 + rand.Intn(3)
	}
}

func (uc *InterviewUsecase) lockSession(id uint) func() {
	v, _ := uc.sessionLocks.LoadOrStore(id, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

// StartInterview validates the referenced user and CV, generates questions,
// resolves their topics against the catalog, and persists the session with
// its questions in one transaction. Nothing is persisted when generation
// fails or returns no questions.
func (uc *InterviewUsecase) StartInterview(ctx context.Context, in StartInterviewInput) (*model.Interview, error) {
	if _, err := uc.userRepo.FindByID(in.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("user not found")
		}
		return nil, apperr.Storage("failed to load user", err)
	}
	cv, err := uc.cvRepo.FindByIDAndUser(in.CVID, in.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("CV not found for this user")
		}
		return nil, apperr.Storage("failed to load CV", err)
	}

	mode := in.Mode
	switch mode {
	case model.ModeEasy, model.ModeMedium, model.ModeHard:
	default:
		mode = model.ModeEasy
	}

	generated, err := uc.ai.GenerateQuestions(ctx, service.QuestionRequest{
		CVText:         cv.RawText,
		JobTitle:       in.JobTitle,
		JobDescription: in.JobDescription,
		TopicsToFocus:  in.TopicsToFocus,
		Count:          questionCountFor(mode),
	})
	if err != nil {
		return nil, apperr.Upstream("question generation failed", err)
	}
	if len(generated) == 0 {
		return nil, apperr.Precondition("question generation returned no questions")
	}

	// One cache for the whole batch so repeated labels across questions
	// resolve to the same topic without extra lookups. Catalog writes are
	// idempotent, so they can safely happen outside the session transaction.
	cache := NewTopicCache()
	questions := make([]model.Question, 0, len(generated))
	for i, g := range generated {
		topics, err := uc.topics.Resolve(g.Topics, cache)
		if err != nil {
			return nil, apperr.Storage("failed to resolve topics", err)
		}
		questions = append(questions, model.Question{
			Content:  g.Content,
			Type:     g.Type,
			MaxScore: g.MaxScore,
			Order:    i + 1,
			Topics:   topics,
		})
	}

	interview := &model.Interview{
		UserID:         in.UserID,
		CVID:           in.CVID,
		JobTitle:       in.JobTitle,
		JobDescription: in.JobDescription,
		Mode:           mode,
		Status:         model.InterviewInProgress,
		Questions:      questions,
	}
	if len(in.TopicsToFocus) > 0 {
		if raw, err := json.Marshal(in.TopicsToFocus); err == nil {
			interview.TopicsToFocus = datatypes.JSON(raw)
		}
	}

	err = uc.interviewRepo.DB().Transaction(func(tx *gorm.DB) error {
		return uc.interviewRepo.Create(tx, interview)
	})
	if err != nil {
		return nil, apperr.Storage("failed to persist interview", err)
	}

	return uc.reload(interview.ID)
}

func (uc *InterviewUsecase) GetInterview(id uint) (*model.Interview, error) {
	return uc.reload(id)
}

// NextQuestion returns the lowest-order unanswered question. The boolean is
// the "all answered" sentinel.
func (uc *InterviewUsecase) NextQuestion(id uint) (*model.Question, bool, error) {
	interview, err := uc.reload(id)
	if err != nil {
		return nil, false, err
	}
	if interview.Status == model.InterviewCompleted {
		return nil, false, apperr.InvalidState("this interview has already been completed")
	}

	question, err := uc.interviewRepo.NextUnanswered(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, true, nil
		}
		return nil, false, apperr.Storage("failed to load next question", err)
	}
	return question, false, nil
}

// SubmitAnswer records the transcript entry for one question. Evaluation is
// deferred to finish. The per-session lock plus the unique index on
// answers.question_id guarantee at most one answer ever persists.
func (uc *InterviewUsecase) SubmitAnswer(ctx context.Context, interviewID, questionID uint, text string) (*model.Answer, error) {
	unlock := uc.lockSession(interviewID)
	defer unlock()

	interview, err := uc.reload(interviewID)
	if err != nil {
		return nil, err
	}
	if interview.Status == model.InterviewCompleted {
		return nil, apperr.InvalidState("this interview has already been completed")
	}

	question, err := uc.interviewRepo.QuestionByID(interviewID, questionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("question not found")
		}
		return nil, apperr.Storage("failed to load question", err)
	}
	if question.Answer != nil {
		return nil, apperr.Conflict("this question has already been answered")
	}

	answer := &model.Answer{
		QuestionID: question.ID,
		UserAnswer: text,
	}
	if err := uc.interviewRepo.CreateAnswer(answer); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict("this question has already been answered")
		}
		return nil, apperr.Storage("failed to save answer", err)
	}
	return answer, nil
}

// FinishInterview runs the whole finish pipeline: guard, batch evaluation,
// scoring, report generation, atomic persist, then best-effort email after
// the transaction commits. A second call returns the already-persisted result.
func (uc *InterviewUsecase) FinishInterview(ctx context.Context, id uint) (*model.Interview, error) {
	unlock := uc.lockSession(id)
	defer unlock()

	interview, err := uc.reload(id)
	if err != nil {
		return nil, err
	}
	// Report presence is the marker that finish already ran.
	if interview.Report != nil {
		return interview, nil
	}

	questionCount, err := uc.interviewRepo.CountQuestions(id)
	if err != nil {
		return nil, apperr.Storage("failed to count questions", err)
	}
	answerCount, err := uc.interviewRepo.CountAnswers(id)
	if err != nil {
		return nil, apperr.Storage("failed to count answers", err)
	}
	if questionCount == 0 || answerCount < questionCount {
		return nil, apperr.Precondition("interview isn't finished yet")
	}

	evaluated, err := uc.evaluateAnswers(ctx, interview)
	if err != nil {
		return nil, err
	}

	finalScore := ComputeFinalScore(evaluated)
	decision := DecisionFor(finalScore)

	user, err := uc.userRepo.FindByID(interview.UserID)
	if err != nil {
		return nil, apperr.Storage("failed to load user", err)
	}

	generated, err := uc.ai.GenerateReport(ctx, service.ReportRequest{
		UserName:     user.Name,
		JobTitle:     interview.JobTitle,
		AverageScore: finalScore,
		Transcript:   transcriptOf(interview, evaluated),
	})
	if err != nil {
		return nil, apperr.Upstream("report generation failed", err)
	}

	filePath, err := uc.writeReportArtifact(interview, generated.Content)
	if err != nil {
		return nil, apperr.Storage("failed to write report artifact", err)
	}

	now := time.Now()
	interview.Status = model.InterviewCompleted
	interview.FinalScore = &finalScore
	interview.Decision = decision
	interview.FinishedAt = &now

	report := &model.Report{
		InterviewID: interview.ID,
		Content:     generated.Content,
		FilePath:    filePath,
	}
	if raw, err := json.Marshal(generated.Strengths); err == nil {
		report.Strengths = datatypes.JSON(raw)
	}
	if raw, err := json.Marshal(generated.Improvements); err == nil {
		report.Improvements = datatypes.JSON(raw)
	}

	err = uc.interviewRepo.DB().Transaction(func(tx *gorm.DB) error {
		for i := range evaluated {
			if err := uc.interviewRepo.UpdateAnswer(tx, &evaluated[i]); err != nil {
				return err
			}
		}
		if err := uc.interviewRepo.MarkCompleted(tx, interview); err != nil {
			return err
		}
		return uc.reportRepo.Create(tx, report)
	})
	if err != nil {
		// The artifact must not outlive a failed transaction.
		if rmErr := util.RemoveFileIfExists(filePath); rmErr != nil {
			logger.L().Warnf("failed to clean up report artifact %s: %v", filePath, rmErr)
		}
		return nil, apperr.Storage("failed to persist interview result", err)
	}

	uc.dispatchEmail(user.Email, report.ID, generated)

	return uc.reload(id)
}

// evaluateAnswers batch-evaluates every unscored answer in one upstream call
// and matches results back by question id. Unknown ids are logged and
// skipped. Returns the full answer set with scores applied in memory; nothing
// is persisted here.
func (uc *InterviewUsecase) evaluateAnswers(ctx context.Context, interview *model.Interview) ([]model.Answer, error) {
	answers := make([]model.Answer, 0, len(interview.Questions))
	byQuestion := make(map[uint]int, len(interview.Questions))
	var pending []service.AnswerToEvaluate

	for _, q := range interview.Questions {
		if q.Answer == nil {
			continue
		}
		byQuestion[q.ID] = len(answers)
		answers = append(answers, *q.Answer)
		if q.Answer.Score == nil {
			pending = append(pending, service.AnswerToEvaluate{
				QuestionID: q.ID,
				Question:   q.Content,
				UserAnswer: q.Answer.UserAnswer,
				MaxScore:   q.MaxScore,
				Type:       q.Type,
			})
		}
	}
	if len(pending) == 0 {
		return answers, nil
	}

	evaluations, err := uc.ai.EvaluateAnswers(ctx, pending)
	if err != nil {
		return nil, apperr.Upstream("answer evaluation failed", err)
	}

	maxScores := make(map[uint]float64, len(interview.Questions))
	for _, q := range interview.Questions {
		maxScores[q.ID] = q.MaxScore
	}
	for _, ev := range evaluations {
		idx, ok := byQuestion[ev.QuestionID]
		if !ok {
			logger.L().Warnf("evaluation returned unknown question id %d, ignoring", ev.QuestionID)
			continue
		}
		score := ev.Score
		if score < 0 {
			score = 0
		}
		if max := maxScores[ev.QuestionID]; score > max {
			score = max
		}
		feedback := ev.Feedback
		answers[idx].Score = &score
		answers[idx].Feedback = &feedback
	}
	return answers, nil
}

func transcriptOf(interview *model.Interview, answers []model.Answer) []service.TranscriptEntry {
	byQuestion := make(map[uint]model.Answer, len(answers))
	for _, a := range answers {
		byQuestion[a.QuestionID] = a
	}
	entries := make([]service.TranscriptEntry, 0, len(interview.Questions))
	for _, q := range interview.Questions {
		entry := service.TranscriptEntry{Question: q.Content}
		if a, ok := byQuestion[q.ID]; ok {
			entry.UserAnswer = a.UserAnswer
			entry.Score = a.Score
			if a.Feedback != nil {
				entry.Feedback = *a.Feedback
			}
		}
		entries = append(entries, entry)
	}
	return entries
}

func (uc *InterviewUsecase) writeReportArtifact(interview *model.Interview, content string) (string, error) {
	dir := util.UserReportDir(config.LoadStorageConfig().BaseDir, interview.UserID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	filePath := filepath.Join(dir, fmt.Sprintf("interview_%d_report.txt", interview.ID))
	if err := os.WriteFile(filePath, []byte(content), 0o644); err != nil {
		return "", err
	}
	return filePath, nil
}

// dispatchEmail sends the candidate email in the background. Failures are
// logged and never surface to the caller; the finish result is already
// committed by the time this runs.
func (uc *InterviewUsecase) dispatchEmail(to string, reportID uint, generated *service.GeneratedReport) {
	if uc.email == nil || to == "" || generated.EmailSubject == "" {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), uc.EmailTimeout)
		defer cancel()

		if err := uc.email.Send(ctx, to, generated.EmailSubject, generated.EmailBody); err != nil {
			logger.L().Warnf("failed to send report email to %s: %v", to, err)
			return
		}
		if err := uc.reportRepo.MarkSent(reportID); err != nil {
			logger.L().Warnf("failed to mark report %d as sent: %v", reportID, err)
		}
	}()
}

// DeleteInterview cascades the delete explicitly and removes the report
// artifact from disk.
func (uc *InterviewUsecase) DeleteInterview(id uint) error {
	interview, err := uc.reload(id)
	if err != nil {
		return err
	}
	if err := uc.interviewRepo.Delete(interview); err != nil {
		return apperr.Storage("failed to delete interview", err)
	}
	if interview.Report != nil {
		if err := util.RemoveFileIfExists(interview.Report.FilePath); err != nil {
			logger.L().Warnf("failed to remove report artifact %s: %v", interview.Report.FilePath, err)
		}
	}
	return nil
}

func (uc *InterviewUsecase) reload(id uint) (*model.Interview, error) {
	interview, err := uc.interviewRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("interview not found")
		}
		return nil, apperr.Storage("failed to load interview", err)
	}
	return interview, nil
}

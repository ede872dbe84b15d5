package usecase

import (
	"context"
	"math"
	"strings"

	"github.com/SYEDZUHAIR786-GITH/ATS-checker/internal/domain"
	"github.com/SYEDZUHAIR786-GITH/ATS-checker/internal/scoring"
	"github.com/SYEDZUHAIR786-GITH/ATS-checker/internal/vocabulary"
	"github.com/SYEDZUHAIR786-GITH/ATS-checker/pkg/apperror"
	"github.com/SYEDZUHAIR786-GITH/ATS-checker/pkg/email"
	"github.com/SYEDZUHAIR786-GITH/ATS-checker/pkg/extract"
	"github.com/SYEDZUHAIR786-GITH/ATS-checker/pkg/logger"

	"github.com/go-playground/validator/v10"
)

// Score composition weights: skill overlap carries 60 points, text
// similarity the remaining 40.
const (
	skillRatioWeight = 60.0
	similarityWeight = 0.4
)

const missingInputsMessage = "Both resume and job description are required"

type analyzerUsecase struct {
	vocab        *vocabulary.Vocabulary
	emailService *email.EmailService
	validate     *validator.Validate
}

// NewAnalyzerUsecase creates the analyzer with its read-only vocabulary.
// The vocabulary is shared across requests; everything else is request-scoped.
func NewAnalyzerUsecase(vocab *vocabulary.Vocabulary, emailService *email.EmailService, validate *validator.Validate) domain.AnalyzerUsecase {
	return &analyzerUsecase{
		vocab:        vocab,
		emailService: emailService,
		validate:     validate,
	}
}

// Analyze runs the full scoring pipeline for one resume / job description pair.
func (u *analyzerUsecase) Analyze(ctx context.Context, req *domain.AnalyzeRequest) (*domain.AnalysisResult, error) {
	if err := u.validate.Struct(req); err != nil {
		return nil, apperror.BadRequest(missingInputsMessage)
	}

	resumeText := strings.TrimSpace(req.ResumeText)
	jobText := strings.TrimSpace(req.JobDescription)
	if resumeText == "" || jobText == "" {
		// Whitespace-only input: degrade to a neutral result instead of
		// failing, so the caller still gets a well-formed payload.
		return neutralResult(), nil
	}

	resumeSkills := u.vocab.Extract(resumeText)
	jobSkills := u.vocab.Extract(jobText)
	matched, missing := intersectAndDiff(resumeSkills, jobSkills)

	similarity := scoring.Similarity(resumeText, jobText)

	skillRatio := 0.0
	if len(jobSkills) > 0 {
		skillRatio = float64(len(matched)) / float64(len(jobSkills))
	}

	atsScore := skillRatio*skillRatioWeight + math.Min(similarity*100, 100)*similarityWeight
	atsScore = math.Min(atsScore, 100)

	result := &domain.AnalysisResult{
		ATSScore:        round2(atsScore),
		MatchPercentage: round2(skillRatio * 100),
		MatchedSkills:   capSlice(matched, domain.MaxMatchedSkills),
		MissingSkills:   capSlice(missing, domain.MaxMissingSkills),
		Suggestions:     scoring.Suggestions(matched, missing),
		Keywords:        scoring.Keywords(jobText),
	}

	logger.Log.Debug("analysis completed",
		"ats_score", result.ATSScore,
		"matched", len(matched),
		"missing", len(missing),
	)
	return result, nil
}

// AnalyzeUpload extracts text from an uploaded resume file and scores it
// against the job description.
func (u *analyzerUsecase) AnalyzeUpload(ctx context.Context, filename, contentType string, data []byte, jobDescription string) (*domain.AnalysisResult, error) {
	resumeText, err := extract.Text(contentType, filename, data)
	if err != nil {
		return nil, apperror.BadRequest(err.Error())
	}

	return u.Analyze(ctx, &domain.AnalyzeRequest{
		ResumeText:     resumeText,
		JobDescription: jobDescription,
	})
}

// EmailReport analyzes the pair and mails the result to the requester.
func (u *analyzerUsecase) EmailReport(ctx context.Context, req *domain.EmailReportRequest) (*domain.AnalysisResult, error) {
	if err := u.validate.Struct(req); err != nil {
		return nil, apperror.BadRequest("A valid email, resume text and job description are required")
	}

	if !u.emailService.IsConfigured() {
		return nil, apperror.ServiceUnavailable("Email reports are temporarily unavailable", nil)
	}

	result, err := u.Analyze(ctx, &domain.AnalyzeRequest{
		ResumeText:     req.ResumeText,
		JobDescription: req.JobDescription,
	})
	if err != nil {
		return nil, err
	}

	reportData := email.ReportEmailData{
		ATSScore:        result.ATSScore,
		MatchPercentage: result.MatchPercentage,
		MatchedSkills:   result.MatchedSkills,
		MissingSkills:   result.MissingSkills,
		Suggestions:     result.Suggestions,
	}
	if err := u.emailService.SendAnalysisReport(req.Email, reportData); err != nil {
		return nil, apperror.Internal(err)
	}

	logger.Log.Info("analysis report emailed", "ats_score", result.ATSScore)
	return result, nil
}

// neutralResult is the zero-score payload for empty inputs.
func neutralResult() *domain.AnalysisResult {
	return &domain.AnalysisResult{
		ATSScore:        0,
		MatchPercentage: 0,
		MatchedSkills:   []string{},
		MissingSkills:   []string{},
		Suggestions:     []string{missingInputsMessage},
		Keywords:        []string{},
	}
}

// intersectAndDiff splits the job skills into those present in the resume
// (matched) and those absent (missing). Inputs are sorted, so outputs are too.
func intersectAndDiff(resumeSkills, jobSkills []string) (matched, missing []string) {
	matched = []string{}
	missing = []string{}

	inResume := make(map[string]struct{}, len(resumeSkills))
	for _, s := range resumeSkills {
		inResume[s] = struct{}{}
	}

	for _, s := range jobSkills {
		if _, ok := inResume[s]; ok {
			matched = append(matched, s)
		} else {
			missing = append(missing, s)
		}
	}
	return matched, missing
}

func capSlice(s []string, limit int) []string {
	if len(s) > limit {
		return s[:limit]
	}
	return s
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

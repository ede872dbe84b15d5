package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/SYEDZUHAIR786-GITH/ATS-checker/config"
	"github.com/SYEDZUHAIR786-GITH/ATS-checker/internal/domain"
	"github.com/SYEDZUHAIR786-GITH/ATS-checker/internal/usecase"
	"github.com/SYEDZUHAIR786-GITH/ATS-checker/internal/vocabulary"
	"github.com/SYEDZUHAIR786-GITH/ATS-checker/pkg/apperror"
	"github.com/SYEDZUHAIR786-GITH/ATS-checker/pkg/email"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAnalyzer(t *testing.T) domain.AnalyzerUsecase {
	t.Helper()
	vocab, err := vocabulary.Default()
	require.NoError(t, err)

	// Unconfigured email service: EmailReport should degrade to 503.
	emailService := email.NewEmailService(&config.Config{})
	return usecase.NewAnalyzerUsecase(vocab, emailService, validator.New())
}

func TestAnalyzeSkillMatching(t *testing.T) {
	uc := newAnalyzer(t)

	result, err := uc.Analyze(context.Background(), &domain.AnalyzeRequest{
		ResumeText:     "I have 5 years of Python and React experience",
		JobDescription: "Looking for Python, Django, and AWS expertise",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"python"}, result.MatchedSkills)
	assert.Contains(t, result.MissingSkills, "django")
	assert.Contains(t, result.MissingSkills, "aws")
	assert.InDelta(t, 33.33, result.MatchPercentage, 0.01, "1 of 3 job skills matched")
}

func TestAnalyzeScoreBounds(t *testing.T) {
	uc := newAnalyzer(t)

	cases := []domain.AnalyzeRequest{
		{ResumeText: "python", JobDescription: "python"},
		{ResumeText: "unrelated plumbing work", JobDescription: "python django aws kubernetes"},
		{ResumeText: "short", JobDescription: "word"},
		{
			ResumeText:     "python javascript java c++ c# golang rust typescript php swift kotlin scala",
			JobDescription: "python javascript java c++ c# golang rust typescript php swift kotlin scala",
		},
	}
	for _, req := range cases {
		result, err := uc.Analyze(context.Background(), &req)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, result.ATSScore, 0.0)
		assert.LessOrEqual(t, result.ATSScore, 100.0)
		assert.GreaterOrEqual(t, result.MatchPercentage, 0.0)
		assert.LessOrEqual(t, result.MatchPercentage, 100.0)
	}
}

func TestAnalyzeMatchedAndMissingAreDisjoint(t *testing.T) {
	uc := newAnalyzer(t)

	result, err := uc.Analyze(context.Background(), &domain.AnalyzeRequest{
		ResumeText:     "Python and Docker, some SQL and React work",
		JobDescription: "Python, Docker, Kubernetes, AWS, SQL, Terraform and React required",
	})
	require.NoError(t, err)

	matched := make(map[string]bool)
	for _, s := range result.MatchedSkills {
		matched[s] = true
	}
	for _, s := range result.MissingSkills {
		assert.False(t, matched[s], "skill %q appears in both matched and missing", s)
	}
}

func TestAnalyzeCapsResultLists(t *testing.T) {
	uc := newAnalyzer(t)

	// Job description packed with vocabulary terms, none in the resume.
	result, err := uc.Analyze(context.Background(), &domain.AnalyzeRequest{
		ResumeText: "career summary with no technology mentioned",
		JobDescription: "python javascript java golang rust typescript php swift kotlin scala " +
			"react angular vue django flask docker kubernetes aws azure gcp",
	})
	require.NoError(t, err)

	assert.Len(t, result.MissingSkills, domain.MaxMissingSkills)
	assert.Empty(t, result.MatchedSkills)
	assert.Equal(t, 0.0, result.MatchPercentage)
}

func TestAnalyzeEmptyInputs(t *testing.T) {
	uc := newAnalyzer(t)

	t.Run("Should return neutral result for whitespace-only input", func(t *testing.T) {
		result, err := uc.Analyze(context.Background(), &domain.AnalyzeRequest{
			ResumeText:     "   \n",
			JobDescription: "Looking for Python",
		})
		require.NoError(t, err)

		assert.Equal(t, 0.0, result.ATSScore)
		assert.Equal(t, 0.0, result.MatchPercentage)
		assert.Empty(t, result.MatchedSkills)
		assert.Empty(t, result.MissingSkills)
		assert.Equal(t, []string{"Both resume and job description are required"}, result.Suggestions)
	})

	t.Run("Should reject absent fields with a bad request error", func(t *testing.T) {
		_, err := uc.Analyze(context.Background(), &domain.AnalyzeRequest{})
		require.Error(t, err)

		var appErr *apperror.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, http.StatusBadRequest, appErr.Code)
	})
}

func TestAnalyzeUpload(t *testing.T) {
	uc := newAnalyzer(t)

	t.Run("Should analyze plain text uploads", func(t *testing.T) {
		result, err := uc.AnalyzeUpload(context.Background(),
			"resume.txt", "text/plain",
			[]byte("Python and Docker engineer"),
			"Python, Docker and AWS wanted",
		)
		require.NoError(t, err)
		assert.Equal(t, []string{"docker", "python"}, result.MatchedSkills)
	})

	t.Run("Should reject unsupported file types", func(t *testing.T) {
		_, err := uc.AnalyzeUpload(context.Background(),
			"resume.png", "image/png",
			[]byte{0x89, 0x50, 0x4e, 0x47},
			"Python wanted",
		)
		require.Error(t, err)

		var appErr *apperror.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, http.StatusBadRequest, appErr.Code)
	})
}

func TestEmailReportUnconfigured(t *testing.T) {
	uc := newAnalyzer(t)

	_, err := uc.EmailReport(context.Background(), &domain.EmailReportRequest{
		ResumeText:     "Python developer",
		JobDescription: "Python wanted",
		Email:          "user@example.com",
	})
	require.Error(t, err)

	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusServiceUnavailable, appErr.Code)
}

func TestEmailReportValidation(t *testing.T) {
	uc := newAnalyzer(t)

	_, err := uc.EmailReport(context.Background(), &domain.EmailReportRequest{
		ResumeText:     "Python developer",
		JobDescription: "Python wanted",
		Email:          "not-an-email",
	})
	require.Error(t, err)

	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusBadRequest, appErr.Code)
}

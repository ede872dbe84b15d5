package domain

import "context"

// Result caps. Matched and missing skills are truncated so a keyword-stuffed
// job description cannot blow up the response payload.
const (
	MaxMatchedSkills = 20
	MaxMissingSkills = 10
)

// AnalyzeRequest carries the two texts the scoring pipeline compares.
type AnalyzeRequest struct {
	ResumeText     string `json:"resume_text" validate:"required"`
	JobDescription string `json:"job_description" validate:"required"`
}

// EmailReportRequest runs an analysis and mails the result to the given address.
// Nothing is stored server-side; the request carries everything needed.
type EmailReportRequest struct {
	ResumeText     string `json:"resume_text" validate:"required"`
	JobDescription string `json:"job_description" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
}

// AnalysisResult is the scored outcome of one resume / job description pair.
// It is created fresh per request and never mutated after being returned.
type AnalysisResult struct {
	ATSScore        float64  `json:"ats_score"`
	MatchPercentage float64  `json:"match_percentage"`
	MatchedSkills   []string `json:"matched_skills"`
	MissingSkills   []string `json:"missing_skills"`
	Suggestions     []string `json:"suggestions"`
	Keywords        []string `json:"keywords"`
}

// SkillCategory is one group of the skill vocabulary, exposed as reference data.
type SkillCategory struct {
	Name  string   `json:"name"`
	Terms []string `json:"terms"`
}

// AnalyzerUsecase defines the scoring pipeline entry points.
type AnalyzerUsecase interface {
	// Analyze scores a resume against a job description
	Analyze(ctx context.Context, req *AnalyzeRequest) (*AnalysisResult, error)

	// AnalyzeUpload extracts text from an uploaded resume file first
	AnalyzeUpload(ctx context.Context, filename, contentType string, data []byte, jobDescription string) (*AnalysisResult, error)

	// EmailReport analyzes and sends the result as an HTML email
	EmailReport(ctx context.Context, req *EmailReportRequest) (*AnalysisResult, error)
}

// VocabularyUsecase exposes the skill vocabulary for UI dropdowns and tooling.
type VocabularyUsecase interface {
	Categories(ctx context.Context) []SkillCategory
}

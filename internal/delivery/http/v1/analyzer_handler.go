package v1

import (
	"io"
	"net/http"

	"github.com/SYEDZUHAIR786-GITH/ATS-checker/config"
	"github.com/SYEDZUHAIR786-GITH/ATS-checker/internal/delivery/http/middleware"
	"github.com/SYEDZUHAIR786-GITH/ATS-checker/internal/delivery/http/response"
	"github.com/SYEDZUHAIR786-GITH/ATS-checker/internal/domain"
	"github.com/SYEDZUHAIR786-GITH/ATS-checker/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type AnalyzerHandler struct {
	analyzerUC     domain.AnalyzerUsecase
	maxUploadBytes int64
}

// NewAnalyzerHandler registers the analysis routes (public, rate limited)
func NewAnalyzerHandler(public *gin.RouterGroup, analyzerUC domain.AnalyzerUsecase, cfg *config.Config) {
	handler := &AnalyzerHandler{
		analyzerUC:     analyzerUC,
		maxUploadBytes: int64(cfg.MaxUploadMB) << 20,
	}

	analyze := public.Group("/analyze")
	analyze.Use(middleware.RateLimitMiddleware(middleware.AnalyzeRateLimitConfig(cfg)))
	{
		analyze.POST("", handler.Analyze)
		analyze.POST("/upload", handler.AnalyzeUpload)
		analyze.POST("/email", handler.EmailReport)
	}
}

// Analyze godoc
// @Summary      Analyze resume text against a job description
// @Description  Scores how well the resume matches the job description and returns matched/missing skills, suggestions and keywords. Nothing is stored.
// @Tags         analyze
// @Accept       json
// @Produce      json
// @Param        request  body      domain.AnalyzeRequest  true  "Resume text and job description"
// @Success      200      {object}  response.Response{data=domain.AnalysisResult}
// @Failure      400      {object}  response.Response
// @Failure      429      {object}  response.Response
// @Router       /analyze [post]
func (h *AnalyzerHandler) Analyze(c *gin.Context) {
	var req domain.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	result, err := h.analyzerUC.Analyze(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Analysis completed", result)
}

// AnalyzeUpload godoc
// @Summary      Analyze an uploaded resume file
// @Description  Accepts a PDF, DOCX or TXT resume plus a job_description form field, extracts the text and runs the same analysis.
// @Tags         analyze
// @Accept       multipart/form-data
// @Produce      json
// @Param        resume           formData  file    true  "Resume file (PDF, DOCX or TXT)"
// @Param        job_description  formData  string  true  "Job description text"
// @Success      200  {object}  response.Response{data=domain.AnalysisResult}
// @Failure      400  {object}  response.Response
// @Failure      413  {object}  response.Response
// @Router       /analyze/upload [post]
func (h *AnalyzerHandler) AnalyzeUpload(c *gin.Context) {
	if c.Request.ContentLength > h.maxUploadBytes {
		c.Error(apperror.TooLarge("Uploaded file exceeds the size limit"))
		return
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes)

	fileHeader, err := c.FormFile("resume")
	if err != nil {
		c.Error(apperror.BadRequest("A resume file is required"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.Error(apperror.BadRequest("Unable to read the uploaded file"))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.Error(apperror.TooLarge("Uploaded file exceeds the size limit"))
		return
	}

	result, err := h.analyzerUC.AnalyzeUpload(
		c.Request.Context(),
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		data,
		c.PostForm("job_description"),
	)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Analysis completed", result)
}

// EmailReport godoc
// @Summary      Analyze and email the report
// @Description  Runs the analysis and sends the result to the given email address as an HTML report. The request carries all inputs; no data is persisted.
// @Tags         analyze
// @Accept       json
// @Produce      json
// @Param        request  body      domain.EmailReportRequest  true  "Resume text, job description and recipient email"
// @Success      200      {object}  response.Response{data=domain.AnalysisResult}
// @Failure      400      {object}  response.Response
// @Failure      503      {object}  response.Response
// @Router       /analyze/email [post]
func (h *AnalyzerHandler) EmailReport(c *gin.Context) {
	var req domain.EmailReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	result, err := h.analyzerUC.EmailReport(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Analysis report sent", result)
}

package v1_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SYEDZUHAIR786-GITH/ATS-checker/config"
	v1 "github.com/SYEDZUHAIR786-GITH/ATS-checker/internal/delivery/http/v1"
	"github.com/SYEDZUHAIR786-GITH/ATS-checker/internal/usecase"
	"github.com/SYEDZUHAIR786-GITH/ATS-checker/internal/vocabulary"
	"github.com/SYEDZUHAIR786-GITH/ATS-checker/pkg/email"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Port:                      "8080",
		FrontendURL:               "http://localhost:3000",
		MaxUploadMB:               5,
		RateLimitWindowSeconds:    60,
		RateLimitAnalyzeThreshold: 1000,
		RateLimitGlobalThreshold:  1000,
	}

	vocab, err := vocabulary.Default()
	require.NoError(t, err)

	validate := validator.New()
	emailService := email.NewEmailService(cfg)

	return v1.NewRouter(v1.RouterDeps{
		AnalyzerUC:   usecase.NewAnalyzerUsecase(vocab, emailService, validate),
		VocabularyUC: usecase.NewVocabularyUsecase(vocab),
		Config:       cfg,
	})
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/health", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAnalyzeEndpoint(t *testing.T) {
	router := newTestRouter(t)

	t.Run("Should score a valid pair", func(t *testing.T) {
		body, _ := json.Marshal(map[string]string{
			"resume_text":     "I have 5 years of Python and React experience",
			"job_description": "Looking for Python, Django, and AWS expertise",
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/analyze", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var envelope struct {
			Success bool `json:"success"`
			Data    struct {
				ATSScore        float64  `json:"ats_score"`
				MatchPercentage float64  `json:"match_percentage"`
				MatchedSkills   []string `json:"matched_skills"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
		assert.True(t, envelope.Success)
		assert.Equal(t, []string{"python"}, envelope.Data.MatchedSkills)
		assert.InDelta(t, 33.33, envelope.Data.MatchPercentage, 0.01)
	})

	t.Run("Should reject missing fields", func(t *testing.T) {
		body, _ := json.Marshal(map[string]string{
			"resume_text": "only one field",
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/analyze", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestSkillsEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/skills", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Data []struct {
			Name  string   `json:"name"`
			Terms []string `json:"terms"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.NotEmpty(t, envelope.Data)
}

func TestRequestIDHeader(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/health", nil)
	req.Header.Set("X-Request-ID", "test-id-123")
	router.ServeHTTP(w, req)

	assert.Equal(t, "test-id-123", w.Header().Get("X-Request-ID"))
}

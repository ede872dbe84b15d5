package v1

import (
	"net/http"

	"github.com/SYEDZUHAIR786-GITH/ATS-checker/internal/delivery/http/response"
	"github.com/SYEDZUHAIR786-GITH/ATS-checker/internal/domain"

	"github.com/gin-gonic/gin"
)

type SkillHandler struct {
	vocabularyUC domain.VocabularyUsecase
}

// NewSkillHandler registers the vocabulary reference-data route
func NewSkillHandler(public *gin.RouterGroup, vocabularyUC domain.VocabularyUsecase) {
	handler := &SkillHandler{vocabularyUC: vocabularyUC}

	public.GET("/skills", handler.ListSkills)
}

// ListSkills godoc
// @Summary      List the skill vocabulary
// @Description  Returns every skill term the extractor knows about, grouped by category.
// @Tags         skills
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.SkillCategory}
// @Router       /skills [get]
func (h *SkillHandler) ListSkills(c *gin.Context) {
	categories := h.vocabularyUC.Categories(c.Request.Context())
	response.Success(c, http.StatusOK, "Skill vocabulary", categories)
}

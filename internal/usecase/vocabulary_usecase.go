package usecase

import (
	"context"

	"github.com/SYEDZUHAIR786-GITH/ATS-checker/internal/domain"
	"github.com/SYEDZUHAIR786-GITH/ATS-checker/internal/vocabulary"
)

type vocabularyUsecase struct {
	vocab *vocabulary.Vocabulary
}

// NewVocabularyUsecase exposes the skill vocabulary as reference data.
func NewVocabularyUsecase(vocab *vocabulary.Vocabulary) domain.VocabularyUsecase {
	return &vocabularyUsecase{vocab: vocab}
}

func (u *vocabularyUsecase) Categories(ctx context.Context) []domain.SkillCategory {
	cats := u.vocab.Categories()
	out := make([]domain.SkillCategory, 0, len(cats))
	for _, c := range cats {
		out = append(out, domain.SkillCategory{Name: c.Name, Terms: c.Terms})
	}
	return out
}

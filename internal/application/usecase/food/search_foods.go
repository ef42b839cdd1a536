package food

import (
	"context"
	"fmt"
	"strings"

	"github.com/macro-tracker/backend/internal/application/adapter"
	"github.com/macro-tracker/backend/internal/domain/entity"
)

// SearchFoodsInput represents the input for searching the catalog.
type SearchFoodsInput struct {
	Term string
}

// SearchFoodsOutput represents the output of a catalog search.
type SearchFoodsOutput struct {
	Foods []*entity.Food
}

// SearchFoodsUseCase handles catalog lookups by name.
type SearchFoodsUseCase struct {
	foodRepo adapter.FoodRepository
}

// NewSearchFoodsUseCase creates a new SearchFoodsUseCase instance.
func NewSearchFoodsUseCase(foodRepo adapter.FoodRepository) *SearchFoodsUseCase {
	return &SearchFoodsUseCase{
		foodRepo: foodRepo,
	}
}

// Execute returns the foods whose name contains the term, ignoring case.
// An empty term returns the whole catalog in insertion order.
func (uc *SearchFoodsUseCase) Execute(ctx context.Context, input SearchFoodsInput) (*SearchFoodsOutput, error) {
	foods, err := uc.foodRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list foods: %w", err)
	}

	term := strings.TrimSpace(input.Term)
	if term == "" {
		return &SearchFoodsOutput{Foods: foods}, nil
	}

	matches := make([]*entity.Food, 0, len(foods))
	for _, f := range foods {
		if f.MatchesName(term) {
			matches = append(matches, f)
		}
	}

	return &SearchFoodsOutput{
		Foods: matches,
	}, nil
}

package food

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/macro-tracker/backend/internal/domain/entity"
	domainerror "github.com/macro-tracker/backend/internal/domain/error"
)

// Columns required in a food import file.
var importColumns = []string{"name", "protein", "carbs", "fats"}

// ImportFoodsInput represents the input for a CSV catalog import.
type ImportFoodsInput struct {
	Source string
	Reader io.Reader
	// SkipExisting leaves rows whose name is already in the catalog untouched,
	// so importing the same file again adds only its new rows.
	SkipExisting bool
}

// ImportRowError describes a row that could not be imported.
type ImportRowError struct {
	Line    int
	Message string
}

// ImportFoodsOutput represents the output of a CSV catalog import.
type ImportFoodsOutput struct {
	Imported []*entity.Food
	Skipped  []ImportRowError
	Failed   []ImportRowError
}

// ImportFoodsUseCase adds every row of a CSV file to the catalog.
type ImportFoodsUseCase struct {
	addFood *AddFoodUseCase
}

// NewImportFoodsUseCase creates a new ImportFoodsUseCase instance.
func NewImportFoodsUseCase(addFood *AddFoodUseCase) *ImportFoodsUseCase {
	return &ImportFoodsUseCase{
		addFood: addFood,
	}
}

// Execute parses the CSV and adds each row through AddFoodUseCase. The header
// must name the columns name, protein, carbs and fats in any order. Rows that
// fail are reported and do not stop the import.
func (uc *ImportFoodsUseCase) Execute(ctx context.Context, input ImportFoodsInput) (*ImportFoodsOutput, error) {
	r := csv.NewReader(input.Reader)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		return nil, domainerror.NewFoodError(
			domainerror.ErrCodeInvalidImportFile,
			"could not read CSV header",
			domainerror.ErrInvalidImportFile,
		)
	}

	columns, err := indexColumns(header)
	if err != nil {
		return nil, domainerror.NewFoodError(
			domainerror.ErrCodeInvalidImportFile,
			err.Error(),
			domainerror.ErrInvalidImportFile,
		)
	}

	var known []*entity.Food
	if input.SkipExisting {
		known, err = uc.addFood.foodRepo.List(ctx)
		if err != nil {
			return nil, domainerror.NewFoodError(
				domainerror.ErrCodeFoodPersistence,
				"could not read the catalog",
				err,
			)
		}
	}

	output := &ImportFoodsOutput{
		Imported: []*entity.Food{},
		Skipped:  []ImportRowError{},
		Failed:   []ImportRowError{},
	}

	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				output.Failed = append(output.Failed, ImportRowError{Line: parseErr.Line, Message: parseErr.Err.Error()})
				continue
			}
			return nil, fmt.Errorf("failed to read CSV: %w", err)
		}

		line, _ := r.FieldPos(0)

		addInput, err := rowToInput(record, columns)
		if err != nil {
			output.Failed = append(output.Failed, ImportRowError{Line: line, Message: err.Error()})
			continue
		}

		if input.SkipExisting && containsName(known, addInput.Name) {
			output.Skipped = append(output.Skipped, ImportRowError{Line: line, Message: "already in catalog"})
			continue
		}

		added, err := uc.addFood.Execute(ctx, addInput)
		if err != nil {
			var foodErr *domainerror.FoodError
			message := err.Error()
			if errors.As(err, &foodErr) {
				message = foodErr.Message
			}
			output.Failed = append(output.Failed, ImportRowError{Line: line, Message: message})
			continue
		}

		output.Imported = append(output.Imported, added.Food)
		known = append(known, added.Food)
	}

	slog.Info("Food import finished",
		"source", input.Source,
		"imported", len(output.Imported),
		"skipped", len(output.Skipped),
		"failed", len(output.Failed),
	)

	return output, nil
}

func containsName(foods []*entity.Food, name string) bool {
	for _, f := range foods {
		if f.SameName(name) {
			return true
		}
	}
	return false
}

func indexColumns(header []string) (map[string]int, error) {
	columns := make(map[string]int, len(header))
	for i, h := range header {
		columns[strings.ToLower(strings.TrimSpace(h))] = i
	}

	var missing []string
	for _, name := range importColumns {
		if _, ok := columns[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing columns: %s", strings.Join(missing, ", "))
	}
	return columns, nil
}

func rowToInput(record []string, columns map[string]int) (AddFoodInput, error) {
	cell := func(name string) string {
		i := columns[name]
		if i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	grams := func(name string) (float64, error) {
		value := cell(name)
		if value == "" {
			return 0, nil
		}
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid %s value %q", name, value)
		}
		return v, nil
	}

	protein, err := grams("protein")
	if err != nil {
		return AddFoodInput{}, err
	}
	carbs, err := grams("carbs")
	if err != nil {
		return AddFoodInput{}, err
	}
	fats, err := grams("fats")
	if err != nil {
		return AddFoodInput{}, err
	}

	return AddFoodInput{
		Name:    cell("name"),
		Protein: protein,
		Carbs:   carbs,
		Fats:    fats,
	}, nil
}

package ledger

import (
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/Veraticus/fintrack/internal/common"
	"github.com/Veraticus/fintrack/internal/model"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// GoalInput holds the fields needed to create a savings goal.
type GoalInput struct {
	Deadline time.Time       `json:"deadline" validate:"required"`
	Name     string          `json:"name" validate:"required"`
	Target   decimal.Decimal `json:"target" validate:"positive"`
}

// IncomeInput holds the fields needed to record income.
type IncomeInput struct {
	Date   time.Time       `json:"date" validate:"required"`
	Source string          `json:"source" validate:"required"`
	Amount decimal.Decimal `json:"amount" validate:"positive"`
}

// ExpenseInput holds the fields needed to record an expense.
type ExpenseInput struct {
	Date        time.Time       `json:"date" validate:"required"`
	Description string          `json:"description" validate:"required"`
	Category    model.Category  `json:"category" validate:"required,expense_category"`
	Amount      decimal.Decimal `json:"amount" validate:"positive"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Checked on the exact value; a float conversion underflows tiny amounts to zero.
	_ = v.RegisterValidation("positive", func(fl validator.FieldLevel) bool {
		d, ok := fl.Field().Interface().(decimal.Decimal)
		return ok && d.IsPositive()
	})

	_ = v.RegisterValidation("expense_category", func(fl validator.FieldLevel) bool {
		return model.Category(fl.Field().String()).IsExpense()
	})

	return v
}

// validateInput runs struct validation and converts the first failure into a ValidationError.
func validateInput(input any) error {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return common.NewValidationError("", err.Error())
	}

	fe := fieldErrs[0]
	switch fe.Tag() {
	case "required":
		return common.NewValidationError(fe.Field(), "is required")
	case "positive":
		return common.NewValidationError(fe.Field(), "must be a positive number")
	case "expense_category":
		return common.NewValidationError(fe.Field(), "must be one of "+categoryList())
	default:
		return common.NewValidationError(fe.Field(), "is invalid")
	}
}

func categoryList() string {
	names := make([]string, 0, len(model.ExpenseCategories()))
	for _, c := range model.ExpenseCategories() {
		names = append(names, c.String())
	}
	return strings.Join(names, ", ")
}

// requirePositive validates a standalone amount such as a contribution.
func requirePositive(field string, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return common.NewValidationError(field, "must be a positive number")
	}
	return nil
}

package domain

import "fmt"

type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// Это позволяет использовать errors.Is()
func (e *DomainError) Is(target error) bool {
	if t, ok := target.(*DomainError); ok {
		return e.Code == t.Code
	}
	return false
}

var (
	// ErrPlanExists - план с таким именем уже существует
	ErrPlanExists = &DomainError{
		Code:    "PLAN_EXISTS",
		Message: "plan name already exists",
	}

	// ErrInvalidDuration - длительность проекта должна быть >= 1 месяца
	ErrInvalidDuration = &DomainError{
		Code:    "INVALID_DURATION",
		Message: "duration_months must be at least 1",
	}

	// ErrInvalidWorkType - неизвестный тип позиции каталога
	ErrInvalidWorkType = &DomainError{
		Code:    "INVALID_WORK_TYPE",
		Message: "work item type must be one of task, corpo, canone, consumo",
	}

	// ErrInvalidFTE - FTE не может быть отрицательным
	ErrInvalidFTE = &DomainError{
		Code:    "INVALID_FTE",
		Message: "member fte must be non-negative",
	}

	// ErrInvalidFactorKind - kind должен быть profile или tow
	ErrInvalidFactorKind = &DomainError{
		Code:    "INVALID_FACTOR_KIND",
		Message: "factor kind must be profile or tow",
	}

	// ErrPeriodIndex - индекс периода вне диапазона
	ErrPeriodIndex = &DomainError{
		Code:    "PERIOD_INDEX",
		Message: "period index is out of range",
	}

	// ErrNotAdjustable - для consumo корректировки не определены
	ErrNotAdjustable = &DomainError{
		Code:    "NOT_ADJUSTABLE",
		Message: "consumo items cannot be adjusted",
	}

	// ErrNotFound - ресурс не найден
	ErrNotFound = &DomainError{
		Code:    "NOT_FOUND",
		Message: "resource not found",
	}
)

// NewNotFoundError создает ошибку NOT_FOUND с дополнительным контекстом
func NewNotFoundError(resource string) *DomainError {
	return &DomainError{
		Code:    "NOT_FOUND",
		Message: fmt.Sprintf("%s not found", resource),
	}
}

package errors

import "fmt"

// Error codes
const (
	CodeChartError = "CHART_ERROR"
	CodeProvider   = "PROVIDER_ERROR"
	CodeValidation = "VALIDATION_ERROR"
	CodeCache      = "CACHE_ERROR"
	CodeService    = "SERVICE_ERROR"
	CodeExport     = "EXPORT_ERROR"
)

type ChartError struct {
	Message    string
	Code       string
	StatusCode int
	Context    map[string]any
	Cause      error
}

func (e *ChartError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *ChartError) Unwrap() error {
	return e.Cause
}

func NewChartError(message, code string, statusCode int, context map[string]any) *ChartError {
	return &ChartError{
		Message:    message,
		Code:       code,
		StatusCode: statusCode,
		Context:    context,
	}
}

func (e *ChartError) WithCause(cause error) *ChartError {
	e.Cause = cause
	return e
}

// ProviderError signals a failure in the upstream genealogy data source.
type ProviderError struct {
	*ChartError
	Operation  string
	Identifier string
}

func NewProviderError(message, operation, identifier string, cause error) *ProviderError {
	return &ProviderError{
		ChartError: &ChartError{
			Message:    message,
			Code:       CodeProvider,
			StatusCode: 502,
			Context: map[string]any{
				"operation":  operation,
				"identifier": identifier,
			},
			Cause: cause,
		},
		Operation:  operation,
		Identifier: identifier,
	}
}

type ValidationError struct {
	*ChartError
	Field string
	Value interface{}
}

func NewValidationError(message, field string, value interface{}) *ValidationError {
	return &ValidationError{
		ChartError: &ChartError{
			Message:    message,
			Code:       CodeValidation,
			StatusCode: 400,
			Context: map[string]any{
				"field": field,
				"value": value,
			},
		},
		Field: field,
		Value: value,
	}
}

type CacheError struct {
	*ChartError
	Operation string
	Key       string
}

func NewCacheError(message, operation, key string, cause error) *CacheError {
	return &CacheError{
		ChartError: &ChartError{
			Message:    message,
			Code:       CodeCache,
			StatusCode: 500,
			Context: map[string]any{
				"operation": operation,
				"key":       key,
			},
			Cause: cause,
		},
		Operation: operation,
		Key:       key,
	}
}

type ServiceError struct {
	*ChartError
	Service   string
	Operation string
}

func NewServiceError(message, service, operation string, cause error) *ServiceError {
	return &ServiceError{
		ChartError: &ChartError{
			Message:    message,
			Code:       CodeService,
			StatusCode: 500,
			Context: map[string]any{
				"service":   service,
				"operation": operation,
			},
			Cause: cause,
		},
		Service:   service,
		Operation: operation,
	}
}

// ExportError wraps an exporter failure with the requested format attached.
type ExportError struct {
	*ChartError
	Format string
}

func NewExportError(message, format string, cause error) *ExportError {
	return &ExportError{
		ChartError: &ChartError{
			Message:    message,
			Code:       CodeExport,
			StatusCode: 500,
			Context: map[string]any{
				"format": format,
			},
			Cause: cause,
		},
		Format: format,
	}
}

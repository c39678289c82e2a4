// errors.go: structured errors for flyweight
//
// Lookups and listings never fail. Errors come from the edges of the
// library: seed catalogs, hot reload and metrics adapters.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package flyweight

import (
	goerrors "errors"
	"fmt"

	"github.com/agilira/go-errors"
)

// Error codes for flyweight operations
const (
	// Configuration errors
	ErrCodeEmptyConfigPath    errors.ErrorCode = "FLYWEIGHT_EMPTY_CONFIG_PATH"
	ErrCodeNilMeterProvider   errors.ErrorCode = "FLYWEIGHT_NIL_METER_PROVIDER"
	ErrCodeInvalidSeed        errors.ErrorCode = "FLYWEIGHT_INVALID_SEED"
	ErrCodeInvalidSeedCatalog errors.ErrorCode = "FLYWEIGHT_INVALID_SEED_CATALOG"

	// Runtime errors
	ErrCodeReloadFailed   errors.ErrorCode = "FLYWEIGHT_RELOAD_FAILED"
	ErrCodeFactoryClosed  errors.ErrorCode = "FLYWEIGHT_FACTORY_CLOSED"
	ErrCodeInternalError  errors.ErrorCode = "FLYWEIGHT_INTERNAL_ERROR"
	ErrCodePanicRecovered errors.ErrorCode = "FLYWEIGHT_PANIC_RECOVERED"
)

const (
	msgEmptyConfigPath    = "config path is required"
	msgNilMeterProvider   = "meter provider cannot be nil"
	msgInvalidSeed        = "invalid seed entry"
	msgInvalidSeedCatalog = "invalid seed catalog"
	msgReloadFailed       = "failed to reload seed catalog"
	msgFactoryClosed      = "factory is closed"
	msgInternalError      = "internal factory error"
	msgPanicRecovered     = "panic recovered in factory callback"
)

// =============================================================================
// CONFIGURATION ERRORS
// =============================================================================

// NewErrEmptyConfigPath creates an error for a missing catalog path
func NewErrEmptyConfigPath(component string) error {
	return errors.NewWithField(ErrCodeEmptyConfigPath, msgEmptyConfigPath, "component", component)
}

// NewErrNilMeterProvider creates an error for a nil OpenTelemetry meter provider
func NewErrNilMeterProvider(meterName string) error {
	return errors.NewWithField(ErrCodeNilMeterProvider, msgNilMeterProvider, "meter_name", meterName)
}

// NewErrInvalidSeed creates an error for a catalog entry that cannot become a SharedState
func NewErrInvalidSeed(index int, reason string) error {
	return errors.NewWithContext(ErrCodeInvalidSeed, msgInvalidSeed, map[string]interface{}{
		"index":  index,
		"reason": reason,
	})
}

// NewErrInvalidSeedCatalog creates an error for a catalog without a usable hull list
func NewErrInvalidSeedCatalog(reason string) error {
	return errors.NewWithField(ErrCodeInvalidSeedCatalog, msgInvalidSeedCatalog, "reason", reason)
}

// =============================================================================
// RUNTIME ERRORS
// =============================================================================

// NewErrReloadFailed creates an error when a catalog reload cannot be applied
func NewErrReloadFailed(path string, cause error) error {
	return errors.Wrap(cause, ErrCodeReloadFailed, msgReloadFailed).
		WithContext("path", path).
		AsRetryable()
}

// NewErrFactoryClosed creates an error for operations rejected after Close
func NewErrFactoryClosed(operation string) error {
	return errors.NewWithField(ErrCodeFactoryClosed, msgFactoryClosed, "operation", operation)
}

// NewErrInternal creates a generic internal error
func NewErrInternal(operation string, cause error) error {
	if cause != nil {
		return errors.Wrap(cause, ErrCodeInternalError, msgInternalError).
			WithContext("operation", operation).
			WithSeverity("warning")
	}
	return errors.NewWithField(ErrCodeInternalError, msgInternalError, "operation", operation).
		WithSeverity("warning")
}

// NewErrPanicRecovered creates an error when a callback panics
func NewErrPanicRecovered(operation string, panicValue interface{}) error {
	return errors.NewWithContext(ErrCodePanicRecovered, msgPanicRecovered, map[string]interface{}{
		"operation":   operation,
		"panic_value": fmt.Sprintf("%v", panicValue),
	}).WithSeverity("critical")
}

// =============================================================================
// ERROR CHECKING HELPERS
// =============================================================================

// IsInvalidSeed checks if err is an invalid seed error
func IsInvalidSeed(err error) bool {
	return errors.HasCode(err, ErrCodeInvalidSeed)
}

// IsFactoryClosed checks if err reports a closed factory
func IsFactoryClosed(err error) bool {
	return errors.HasCode(err, ErrCodeFactoryClosed)
}

// IsConfigError checks if err is a configuration error
func IsConfigError(err error) bool {
	switch GetErrorCode(err) {
	case ErrCodeEmptyConfigPath, ErrCodeNilMeterProvider, ErrCodeInvalidSeed, ErrCodeInvalidSeedCatalog:
		return true
	}
	return false
}

// IsRetryable checks if the error can be retried
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	var retryable errors.Retryable
	if goerrors.As(err, &retryable) {
		return retryable.IsRetryable()
	}
	return false
}

// GetErrorCode extracts the error code from an error
func GetErrorCode(err error) errors.ErrorCode {
	if err == nil {
		return ""
	}
	var coder errors.ErrorCoder
	if goerrors.As(err, &coder) {
		return coder.ErrorCode()
	}
	return ""
}

// GetErrorContext extracts context from an error
func GetErrorContext(err error) map[string]interface{} {
	if err == nil {
		return nil
	}
	var flyErr *errors.Error
	if goerrors.As(err, &flyErr) {
		return flyErr.Context
	}
	return nil
}

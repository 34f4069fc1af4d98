// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package resilience wraps the external generative judgment call with retry,
// error classification, and circuit breaking. The screening core never
// retries; it only needs to know whether the judgment call failed so it can
// take the deterministic fallback path.
package resilience

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
)

// ErrorType buckets errors by the handling they deserve.
type ErrorType int

const (
	ErrorTypeUnknown ErrorType = iota
	ErrorTypeTransient
	ErrorTypePermanent
	ErrorTypeTimeout
	ErrorTypeRateLimit
	ErrorTypeServiceUnavailable
	ErrorTypeInvalidInput
)

func (et ErrorType) String() string {
	switch et {
	case ErrorTypeTransient:
		return "Transient"
	case ErrorTypePermanent:
		return "Permanent"
	case ErrorTypeTimeout:
		return "Timeout"
	case ErrorTypeRateLimit:
		return "RateLimit"
	case ErrorTypeServiceUnavailable:
		return "ServiceUnavailable"
	case ErrorTypeInvalidInput:
		return "InvalidInput"
	default:
		return "Unknown"
	}
}

// ClassifiedError wraps an error with its type and retry disposition.
type ClassifiedError struct {
	Original  error
	Type      ErrorType
	Message   string
	Retryable bool
}

func (e *ClassifiedError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Original.Error()
}

func (e *ClassifiedError) Unwrap() error { return e.Original }

// IsRetryable reports whether this error should be retried.
func (e *ClassifiedError) IsRetryable() bool { return e.Retryable }

// ClassifyError categorizes an error from the model API or the network layer.
func ClassifyError(err error) *ClassifiedError {
	if err == nil {
		return nil
	}

	var classified *ClassifiedError
	if errors.As(err, &classified) {
		return classified
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return &ClassifiedError{
			Original:  err,
			Type:      ErrorTypeTimeout,
			Message:   fmt.Sprintf("request timed out: %v", err),
			Retryable: errors.Is(err, context.DeadlineExceeded),
		}
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		errType := ErrorTypeTransient
		if netErr.Timeout() {
			errType = ErrorTypeTimeout
		}
		return &ClassifiedError{
			Original:  err,
			Type:      errType,
			Message:   fmt.Sprintf("network error: %v", err),
			Retryable: true,
		}
	}

	errStr := strings.ToLower(err.Error())
	switch {
	case strings.Contains(errStr, "rate limit") || strings.Contains(errStr, "429"):
		return &ClassifiedError{
			Original:  err,
			Type:      ErrorTypeRateLimit,
			Message:   fmt.Sprintf("rate limited: %v", err),
			Retryable: true,
		}

	case strings.Contains(errStr, "service unavailable") ||
		strings.Contains(errStr, "internal server error") ||
		strings.Contains(errStr, "502") || strings.Contains(errStr, "503"):
		return &ClassifiedError{
			Original:  err,
			Type:      ErrorTypeServiceUnavailable,
			Message:   fmt.Sprintf("service unavailable: %v", err),
			Retryable: true,
		}

	case strings.Contains(errStr, "unauthorized") ||
		strings.Contains(errStr, "invalid api key") ||
		strings.Contains(errStr, "forbidden") ||
		strings.Contains(errStr, "401") || strings.Contains(errStr, "403"):
		return &ClassifiedError{
			Original:  err,
			Type:      ErrorTypePermanent,
			Message:   fmt.Sprintf("authentication error: %v", err),
			Retryable: false,
		}

	case strings.Contains(errStr, "invalid request") ||
		strings.Contains(errStr, "context length") ||
		strings.Contains(errStr, "400"):
		return &ClassifiedError{
			Original:  err,
			Type:      ErrorTypeInvalidInput,
			Message:   fmt.Sprintf("invalid request: %v", err),
			Retryable: false,
		}

	case strings.Contains(errStr, "connection refused") ||
		strings.Contains(errStr, "connection reset") ||
		strings.Contains(errStr, "no such host"):
		return &ClassifiedError{
			Original:  err,
			Type:      ErrorTypeTransient,
			Message:   fmt.Sprintf("connection error: %v", err),
			Retryable: true,
		}
	}

	// Unknown errors are retried once by the default config rather than
	// failing the judgment call outright.
	return &ClassifiedError{
		Original:  err,
		Type:      ErrorTypeUnknown,
		Retryable: true,
	}
}

// IsRetryable reports whether an error should be retried.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	return ClassifyError(err).IsRetryable()
}

package llm

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ybai789/moviegraph/internal/types"
)

// Generative model error codes
const (
	ErrProviderNotFound     types.ErrorCode = "LLM_PROVIDER_NOT_FOUND"
	ErrProviderUnavailable  types.ErrorCode = "LLM_PROVIDER_UNAVAILABLE"
	ErrProviderUnauthorized types.ErrorCode = "LLM_PROVIDER_UNAUTHORIZED"
	ErrProviderRateLimited  types.ErrorCode = "LLM_PROVIDER_RATE_LIMITED"

	ErrInvalidRequest      types.ErrorCode = "LLM_INVALID_REQUEST"
	ErrCompletionFailed    types.ErrorCode = "LLM_COMPLETION_FAILED"
	ErrResponseParseFailed types.ErrorCode = "LLM_RESPONSE_PARSE_FAILED"
	ErrTimeoutExceeded     types.ErrorCode = "LLM_TIMEOUT_EXCEEDED"
	ErrNetworkFailed       types.ErrorCode = "LLM_NETWORK_FAILED"
)

// NewAuthError creates an authentication error for a provider.
func NewAuthError(provider string, cause error) *types.Error {
	return &types.Error{
		Code:    ErrProviderUnauthorized,
		Message: fmt.Sprintf("provider '%s' authentication failed", provider),
		Cause:   cause,
	}
}

// NewMissingKeyError reports an absent API key. Surfaced at startup so a
// generative entry point never boots without credentials.
func NewMissingKeyError(provider string) *types.Error {
	return types.NewError(ErrProviderUnauthorized,
		fmt.Sprintf("API key for provider '%s' is missing; set it in the config or environment", provider))
}

// TranslateError maps raw provider/transport errors onto the moviegraph
// error taxonomy based on message content.
func TranslateError(provider string, err error) error {
	if err == nil {
		return nil
	}

	var appErr *types.Error
	if errors.As(err, &appErr) {
		return err
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "unauthorized"), strings.Contains(msg, "authentication"), strings.Contains(msg, "api key"):
		return NewAuthError(provider, err)
	case strings.Contains(msg, "rate limit"), strings.Contains(msg, "too many requests"):
		return types.WrapRetryableError(ErrProviderRateLimited,
			"rate limit exceeded for provider: "+provider, err)
	case strings.Contains(msg, "timeout"), strings.Contains(msg, "deadline"):
		return types.WrapRetryableError(ErrTimeoutExceeded, "completion timed out", err)
	case strings.Contains(msg, "network"), strings.Contains(msg, "connection"):
		return types.WrapRetryableError(ErrNetworkFailed, "network failure calling provider", err)
	default:
		return types.WrapError(ErrCompletionFailed,
			"completion failed for provider: "+provider, err)
	}
}

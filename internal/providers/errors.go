package providers

import (
	"errors"
	"fmt"

	"github.com/dataTrevor/automatic-create-dashboard/internal/domain"

	"github.com/aws/smithy-go"
)

var (
	notFoundCodes = map[string]bool{
		"DBClusterNotFoundFault":    true,
		"DBInstanceNotFound":        true,
		"ResourceNotFound":          true,
		"ResourceNotFoundException": true,
	}
	unauthorizedCodes = map[string]bool{
		"AccessDenied":                true,
		"AccessDeniedException":       true,
		"AuthFailure":                 true,
		"ExpiredToken":                true,
		"ExpiredTokenException":       true,
		"InvalidClientTokenId":        true,
		"UnrecognizedClientException": true,
	}
	rateLimitCodes = map[string]bool{
		"RequestLimitExceeded":     true,
		"Throttling":               true,
		"ThrottlingException":      true,
		"TooManyRequestsException": true,
	}
	conflictCodes = map[string]bool{
		"InvalidParameterInput": true,
	}
)

// mapAWSError classifies an SDK error into the domain sentinels so callers
// can branch with errors.Is. Unrecognised errors are wrapped unchanged.
func mapAWSError(op string, err error) error {
	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		return fmt.Errorf("failed to %s: %w", op, err)
	}

	code := apiErr.ErrorCode()
	switch {
	case notFoundCodes[code]:
		return fmt.Errorf("failed to %s: %w: %s", op, domain.ErrNotFound, apiErr.ErrorMessage())
	case unauthorizedCodes[code]:
		return fmt.Errorf("failed to %s: %w: %s", op, domain.ErrUnauthorized, apiErr.ErrorMessage())
	case rateLimitCodes[code]:
		return fmt.Errorf("failed to %s: %w: %s", op, domain.ErrRateLimited, apiErr.ErrorMessage())
	case conflictCodes[code]:
		return fmt.Errorf("failed to %s: %w: %s", op, domain.ErrConflict, apiErr.ErrorMessage())
	default:
		return fmt.Errorf("failed to %s: %w", op, err)
	}
}

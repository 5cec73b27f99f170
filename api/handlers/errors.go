// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts domain errors to appropriate HTTP responses

package handlers

import (
	"context"
	stderrors "errors"

	"inkwell-api/api/middleware"
	"inkwell-api/core/errors"

	"github.com/danielgtaylor/huma/v2"
)

// toHumaError converts domain errors to appropriate Huma HTTP errors
func toHumaError(err error) error {
	if err == nil {
		return nil
	}

	if errors.IsNotFound(err) {
		return huma.Error404NotFound(err.Error())
	}

	if errors.IsValidation(err) || errors.IsInvalidQuery(err) {
		return huma.Error400BadRequest(err.Error())
	}

	if stderrors.Is(err, errors.ErrUnauthorized) {
		return huma.Error401Unauthorized("Invalid credentials")
	}

	if stderrors.Is(err, errors.ErrForbidden) {
		return huma.Error403Forbidden("Not allowed")
	}

	if errors.IsStoreUnavailable(err) {
		return huma.Error503ServiceUnavailable("Storage unavailable", err)
	}

	return huma.Error500InternalServerError("Internal server error", err)
}

// requireIdentity returns the authenticated caller or a 401 error
func requireIdentity(ctx context.Context) (*middleware.Identity, error) {
	identity, ok := middleware.IdentityFromContext(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Authentication required")
	}
	return identity, nil
}

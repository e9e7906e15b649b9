package domain

import "errors"

var (
	// Auth failures.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrIdentityExists     = errors.New("identity already exists")
	ErrIdentityNotFound   = errors.New("identity not found")

	// Authorization.
	ErrForbidden = errors.New("access forbidden")

	// Tenant data.
	ErrLeadNotFound       = errors.New("lead not found")
	ErrContentNotFound    = errors.New("content not found")
	ErrBusinessNotFound   = errors.New("business not found")
	ErrBusinessExists     = errors.New("business profile already exists")
	ErrInvalidStatus      = errors.New("invalid status")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrOnboardingRequired = errors.New("onboarding not completed")

	// Generation. All provider failures wrap this sentinel so the transport
	// layer can map them uniformly.
	ErrGenerationFailed = errors.New("generation failed")
)

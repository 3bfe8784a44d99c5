package services

import (
	"errors"

	"github.com/7pessoal-source/menu-noir-premium/internal/repositories"
)

// Service-level failures. Handlers map these onto the HTTP error taxonomy;
// anything that is not one of these is an internal error and must surface
// as an opaque 500.
var (
	// ErrValidation marks missing or malformed input detected below the
	// handler layer, e.g. a restaurant name that strips to an empty slug.
	ErrValidation = errors.New("validation failed")

	// ErrDuplicateEmail is returned when registering an email that
	// already has an account.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrInvalidCredentials covers both unknown email and wrong password
	// with one message, so login cannot be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrUnauthenticated means no bearer token was presented.
	ErrUnauthenticated = errors.New("authentication token not provided")

	// ErrInvalidToken means the presented token is malformed or its
	// signature does not verify.
	ErrInvalidToken = errors.New("invalid token")

	// ErrTokenExpired means the token verified but its validity window
	// has passed.
	ErrTokenExpired = errors.New("token expired")

	// ErrInvalidOrExpiredToken is the single failure the passwordless
	// confirmation reports, whatever actually went wrong with the token.
	ErrInvalidOrExpiredToken = errors.New("invalid or expired login token")

	// ErrInvalidCategory is returned when a product references a
	// category that does not exist under the caller's restaurant.
	ErrInvalidCategory = errors.New("invalid category")

	// ErrCategoryInUse blocks deleting a category that products still
	// reference.
	ErrCategoryInUse = errors.New("category still has products")

	// ErrNotFound re-exports the repository sentinel: the resource is
	// absent or owned by another restaurant.
	ErrNotFound = repositories.ErrNotFound
)

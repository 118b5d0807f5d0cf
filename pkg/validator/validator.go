package validator

import (
	"errors"
	"strconv"
	"strings"
)

// Validation failures carry the exact message shown inline to the user, so
// handlers render err.Error() directly.
var (
	ErrEmptyQuery            = errors.New("Veuillez entrer une requête de recherche")
	ErrMissingFields         = errors.New("Veuillez remplir tous les champs")
	ErrMissingRequiredFields = errors.New("Veuillez remplir tous les champs obligatoires")
	ErrUsernameTooShort      = errors.New("Le nom d'utilisateur doit contenir au moins 3 caractères")
	ErrPasswordTooShort      = errors.New("Le mot de passe doit contenir au moins 6 caractères")
	ErrInvalidID             = errors.New("invalid id")
)

// ValidateSearchQuery rejects empty queries before any request is issued.
func ValidateSearchQuery(query string) error {
	if strings.TrimSpace(query) == "" {
		return ErrEmptyQuery
	}
	return nil
}

func ValidateLogin(username, password string) error {
	if username == "" || password == "" {
		return ErrMissingFields
	}
	return nil
}

func ValidateRegistration(username, email, password string) error {
	if username == "" || email == "" || password == "" {
		return ErrMissingRequiredFields
	}
	if len([]rune(username)) < 3 {
		return ErrUsernameTooShort
	}
	if len([]rune(password)) < 6 {
		return ErrPasswordTooShort
	}
	return nil
}

// ParseID parses a positive integer path parameter.
func ParseID(raw string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}

// ParseResultCount parses the k query parameter, falling back to def and
// clamping to [1, max].
func ParseResultCount(raw string, def, max int) int {
	k, err := strconv.Atoi(raw)
	if err != nil || k <= 0 {
		return def
	}
	if k > max {
		return max
	}
	return k
}

// ParseOptionalYear parses a year filter; empty or malformed values mean
// "not set".
func ParseOptionalYear(raw string) int {
	year, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || year <= 0 {
		return 0
	}
	return year
}

package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateSearchQuery(t *testing.T) {
	assert.NoError(t, ValidateSearchQuery("blade runner"))
	assert.ErrorIs(t, ValidateSearchQuery(""), ErrEmptyQuery)
	assert.ErrorIs(t, ValidateSearchQuery("   "), ErrEmptyQuery)
}

func TestValidateSearchQuery_Message(t *testing.T) {
	assert.Equal(t, "Veuillez entrer une requête de recherche", ValidateSearchQuery("").Error())
}

func TestValidateLogin(t *testing.T) {
	assert.NoError(t, ValidateLogin("alice", "secret"))
	assert.ErrorIs(t, ValidateLogin("", "secret"), ErrMissingFields)
	assert.ErrorIs(t, ValidateLogin("alice", ""), ErrMissingFields)
}

func TestValidateRegistration(t *testing.T) {
	assert.NoError(t, ValidateRegistration("alice", "a@example.com", "secret"))
	assert.ErrorIs(t, ValidateRegistration("", "a@example.com", "secret"), ErrMissingRequiredFields)
	assert.ErrorIs(t, ValidateRegistration("al", "a@example.com", "secret"), ErrUsernameTooShort)
	assert.ErrorIs(t, ValidateRegistration("alice", "a@example.com", "12345"), ErrPasswordTooShort)
}

func TestValidateRegistration_CountsRunes(t *testing.T) {
	assert.NoError(t, ValidateRegistration("ééé", "a@example.com", "éééééé"))
}

func TestParseID(t *testing.T) {
	id, err := ParseID("42")
	assert.NoError(t, err)
	assert.Equal(t, 42, id)

	_, err = ParseID("0")
	assert.Error(t, err)
	_, err = ParseID("-3")
	assert.Error(t, err)
	_, err = ParseID("abc")
	assert.Error(t, err)
}

func TestParseResultCount(t *testing.T) {
	assert.Equal(t, 10, ParseResultCount("", 10, 100))
	assert.Equal(t, 10, ParseResultCount("junk", 10, 100))
	assert.Equal(t, 10, ParseResultCount("-1", 10, 100))
	assert.Equal(t, 25, ParseResultCount("25", 10, 100))
	assert.Equal(t, 100, ParseResultCount("500", 10, 100))
}

func TestParseOptionalYear(t *testing.T) {
	assert.Equal(t, 0, ParseOptionalYear(""))
	assert.Equal(t, 0, ParseOptionalYear("junk"))
	assert.Equal(t, 1982, ParseOptionalYear(" 1982 "))
}

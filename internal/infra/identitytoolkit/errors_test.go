//go:build unit

package identitytoolkit_test

import (
	"testing"

	"gymbook/internal/infra/identitytoolkit"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCode(t *testing.T) {
	cases := []struct {
		name string
		wire string
		want string
	}{
		{"wrong password", "INVALID_PASSWORD", identitytoolkit.CodeWrongPassword},
		{"merged credential rejection", "INVALID_LOGIN_CREDENTIALS", identitytoolkit.CodeWrongPassword},
		{"unknown email", "EMAIL_NOT_FOUND", identitytoolkit.CodeUserNotFound},
		{"duplicate email", "EMAIL_EXISTS", identitytoolkit.CodeEmailExists},
		{"weak password with explanation suffix", "WEAK_PASSWORD : Password should be at least 6 characters", identitytoolkit.CodeWeakPassword},
		{"throttled", "TOO_MANY_ATTEMPTS_TRY_LATER", identitytoolkit.CodeTooManyAttempts},
		{"disabled account", "USER_DISABLED", identitytoolkit.CodeUserDisabled},
		{"bad idp response", "INVALID_IDP_RESPONSE", identitytoolkit.CodeInvalidCredential},
		{"unknown identifier", "SOMETHING_NEW", ""},
		{"empty", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, identitytoolkit.NormalizeCode(tc.wire))
		})
	}
}

func TestErrorMessage(t *testing.T) {
	t.Run("wrong password has a specific user-facing message", func(t *testing.T) {
		got := identitytoolkit.ErrorMessage(identitytoolkit.CodeWrongPassword)
		assert.Equal(t, "Incorrect password. Please try again.", got)
	})

	t.Run("every canonical code has a non-generic message", func(t *testing.T) {
		codes := []string{
			identitytoolkit.CodeUserNotFound,
			identitytoolkit.CodeWrongPassword,
			identitytoolkit.CodeEmailExists,
			identitytoolkit.CodeWeakPassword,
			identitytoolkit.CodeInvalidEmail,
			identitytoolkit.CodeUserDisabled,
			identitytoolkit.CodeTooManyAttempts,
			identitytoolkit.CodeInvalidCredential,
		}
		for _, code := range codes {
			assert.NotEqual(t, identitytoolkit.GenericErrorMessage, identitytoolkit.ErrorMessage(code), code)
		}
	})

	t.Run("unmapped and empty codes fall back to the generic message", func(t *testing.T) {
		assert.Equal(t, identitytoolkit.GenericErrorMessage, identitytoolkit.ErrorMessage("auth/unknown"))
		assert.Equal(t, identitytoolkit.GenericErrorMessage, identitytoolkit.ErrorMessage(""))
	})
}

package identitytoolkit

import "strings"

// Canonical provider error codes surfaced by the adapter.
const (
	CodeUserNotFound      = "auth/user-not-found"
	CodeWrongPassword     = "auth/wrong-password"
	CodeEmailExists       = "auth/email-already-in-use"
	CodeWeakPassword      = "auth/weak-password"
	CodeInvalidEmail      = "auth/invalid-email"
	CodeUserDisabled      = "auth/user-disabled"
	CodeTooManyAttempts   = "auth/too-many-requests"
	CodeInvalidCredential = "auth/invalid-credential"
)

// GenericErrorMessage is returned for unmapped provider failures and
// transport-level errors.
const GenericErrorMessage = "An error occurred during authentication."

// wireCodes maps the provider's REST error identifiers to canonical
// codes. The wire value may carry a trailing explanation after " : ".
var wireCodes = map[string]string{
	"EMAIL_NOT_FOUND":             CodeUserNotFound,
	"INVALID_PASSWORD":            CodeWrongPassword,
	"INVALID_LOGIN_CREDENTIALS":   CodeWrongPassword,
	"EMAIL_EXISTS":                CodeEmailExists,
	"WEAK_PASSWORD":               CodeWeakPassword,
	"INVALID_EMAIL":               CodeInvalidEmail,
	"USER_DISABLED":               CodeUserDisabled,
	"TOO_MANY_ATTEMPTS_TRY_LATER": CodeTooManyAttempts,
	"INVALID_IDP_RESPONSE":        CodeInvalidCredential,
}

var messages = map[string]string{
	CodeUserNotFound:      "No account found with this email address.",
	CodeWrongPassword:     "Incorrect password. Please try again.",
	CodeEmailExists:       "An account with this email already exists.",
	CodeWeakPassword:      "Password should be at least 6 characters long.",
	CodeInvalidEmail:      "Please enter a valid email address.",
	CodeUserDisabled:      "This account has been disabled.",
	CodeTooManyAttempts:   "Too many attempts. Please try again later.",
	CodeInvalidCredential: "Sign-in was rejected by the identity provider.",
}

// NormalizeCode converts a wire error identifier to its canonical
// code; unknown identifiers come back empty.
func NormalizeCode(wire string) string {
	if i := strings.Index(wire, " :"); i >= 0 {
		wire = wire[:i]
	}
	return wireCodes[strings.TrimSpace(wire)]
}

// ErrorMessage maps a canonical code to its user-facing message, with
// a generic fallback for unmapped or empty codes.
func ErrorMessage(code string) string {
	if msg, ok := messages[code]; ok {
		return msg
	}
	return GenericErrorMessage
}

package password

import (
	"strings"
	"unicode"

	validation "github.com/jellydator/validation"
)

// Policy checks candidate passwords against minimum security requirements.
// Unlike hashing, policy checks are pure and recoverable: the caller shows
// the violations to the user and asks again.
type Policy struct {
	// MinLength is the minimum password length in runes.
	MinLength int
	// MaxRepeatRun is the longest allowed run of one repeated character.
	MaxRepeatRun int
	// DenyList holds passwords rejected outright (compared case-insensitively).
	DenyList []string
}

// DefaultPolicy returns the policy applied to account passwords.
func DefaultPolicy() Policy {
	return Policy{
		MinLength:    8,
		MaxRepeatRun: 3,
		DenyList: []string{
			"password", "passw0rd", "12345678", "123456789", "qwerty123",
			"iloveyou", "letmein1", "welcome1", "admin123", "abc12345",
		},
	}
}

// Check validates the password and returns every violated rule at once as
// validation.Errors, so the caller can present one coherent message instead
// of one-at-a-time trial and error. A nil return means the password passes.
func (p Policy) Check(password string) error {
	violations := validation.Errors{}

	if len([]rune(password)) < p.MinLength {
		violations["min_length"] = validation.NewError(
			"validation_password_min_length",
			"password is too short",
		)
	}
	if !hasUpperCase(password) {
		violations["uppercase"] = validation.NewError(
			"validation_password_uppercase",
			"password must contain at least one uppercase letter",
		)
	}
	if !hasLowerCase(password) {
		violations["lowercase"] = validation.NewError(
			"validation_password_lowercase",
			"password must contain at least one lowercase letter",
		)
	}
	if !hasNumber(password) {
		violations["number"] = validation.NewError(
			"validation_password_number",
			"password must contain at least one number",
		)
	}
	if !hasSpecialChar(password) {
		violations["special"] = validation.NewError(
			"validation_password_special",
			"password must contain at least one special character",
		)
	}
	if longestRun(password) > p.MaxRepeatRun {
		violations["repeated_run"] = validation.NewError(
			"validation_password_repeated_run",
			"password must not contain long runs of one repeated character",
		)
	}
	if p.denied(password) {
		violations["common_password"] = validation.NewError(
			"validation_password_common",
			"password is too common",
		)
	}

	if len(violations) == 0 {
		return nil
	}
	return violations
}

// denied reports whether the password matches the deny list.
func (p Policy) denied(password string) bool {
	lowered := strings.ToLower(password)
	for _, denied := range p.DenyList {
		if lowered == denied {
			return true
		}
	}
	return false
}

// longestRun returns the length of the longest run of one repeated rune.
func longestRun(s string) int {
	var longest, run int
	var prev rune
	for i, r := range s {
		if i == 0 || r != prev {
			run = 1
		} else {
			run++
		}
		if run > longest {
			longest = run
		}
		prev = r
	}
	return longest
}

// hasUpperCase checks if string contains uppercase letters
func hasUpperCase(s string) bool {
	for _, r := range s {
		if unicode.IsUpper(r) {
			return true
		}
	}
	return false
}

// hasLowerCase checks if string contains lowercase letters
func hasLowerCase(s string) bool {
	for _, r := range s {
		if unicode.IsLower(r) {
			return true
		}
	}
	return false
}

// hasNumber checks if string contains numbers
func hasNumber(s string) bool {
	for _, r := range s {
		if unicode.IsNumber(r) {
			return true
		}
	}
	return false
}

// hasSpecialChar checks if string contains special characters
func hasSpecialChar(s string) bool {
	for _, r := range s {
		if unicode.IsPunct(r) || unicode.IsSymbol(r) {
			return true
		}
	}
	return false
}

package discord

import "dmstrings/internal/domain"

// TranslateDomainError maps a domain error code to a user-facing message.
func TranslateDomainError(code string) string {
	switch code {
	case "missing_key":
		return "No text exists for this key in any locale."
	case "unknown_locale":
		return "This locale is not available."
	case "empty_key":
		return "A key is required."
	case "not_pattern":
		return "This key is not a validation pattern."
	case "not_format":
		return "This key is not a date format."
	default:
		return "Something went wrong."
	}
}

// DomainErrorMessage is a convenience helper that extracts the domain error code
// and immediately resolves it to a user-facing message.
func DomainErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	return TranslateDomainError(domain.Code(err))
}

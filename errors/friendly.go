package errors

import (
	"errors"
	"strings"
)

const genericFailure = "Something went wrong. Please try again."

var duplicateMessages = []struct {
	substring string
	message   string
}{
	{"phone", "A record with this phone number already exists."},
	{"email", "A record with this email address already exists."},
	{"license", "A medical professional with this license number already exists."},
}

// FriendlyMessage turns a backend failure into the text shown in the error toast.
// Conflicts are matched on the backend's wording to name the duplicated field.
func FriendlyMessage(err error) string {
	if err == nil {
		return ""
	}

	if errors.Is(err, Duplicate) {
		lower := strings.ToLower(err.Error())
		for _, d := range duplicateMessages {
			if strings.Contains(lower, d.substring) {
				return d.message
			}
		}
		return "This record already exists."
	}
	if errors.Is(err, Unauthorized) {
		return "Your session has expired. Please log in again."
	}
	if errors.Is(err, Forbidden) {
		return "You are not allowed to perform this action."
	}
	if errors.Is(err, NotFound) {
		return "The requested record could not be found."
	}
	if errors.Is(err, BadGateway) {
		return "The clinic server is unavailable. Please try again later."
	}

	e := HttpError{}
	if errors.As(err, &e) && e.Code < 500 {
		if msg := backendMessage(err); msg != "" {
			return msg
		}
	}
	return genericFailure
}

// backendMessage strips the sentinel prefix added when wrapping backend errors.
func backendMessage(err error) string {
	msg := err.Error()
	if i := strings.Index(msg, ": "); i >= 0 {
		msg = msg[i+2:]
	}
	return strings.TrimSpace(msg)
}

package services

import (
	"fmt"
	"net/mail"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/sbilibin2017/gw-social-content/internal/models"
)

const (
	maxContentLinkLength = 500
	maxUsernameLength    = 50
	maxNameLength        = 100
	minPasswordLength    = 8
)

func requireText(field, value string, maxLen int) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", &ValidationError{Field: field, Message: "must not be blank"}
	}
	if utf8.RuneCountInString(value) > maxLen {
		return "", &ValidationError{Field: field, Message: fmt.Sprintf("must be at most %d characters", maxLen)}
	}
	return value, nil
}

func validateEmail(email string) (string, error) {
	email, err := requireText("email", email, 255)
	if err != nil {
		return "", err
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", &ValidationError{Field: "email", Message: "must be a valid address"}
	}
	return email, nil
}

// validateURL accepts absolute http and https URLs.
func validateURL(field, raw string, maxLen int) (string, error) {
	raw, err := requireText(field, raw, maxLen)
	if err != nil {
		return "", err
	}
	u, err := url.Parse(raw)
	if err != nil || !u.IsAbs() || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return "", &ValidationError{Field: field, Message: "must be an absolute http(s) URL"}
	}
	return raw, nil
}

func validateContentLink(link string) (string, error) {
	return validateURL("content_link", link, maxContentLinkLength)
}

// validateCommentText checks the text without altering what gets stored.
func validateCommentText(text string) error {
	if strings.TrimSpace(text) == "" {
		return &ValidationError{Field: "text", Message: "must not be blank"}
	}
	if utf8.RuneCountInString(text) > models.MaxCommentLength {
		return &ValidationError{Field: "text", Message: fmt.Sprintf("must be at most %d characters", models.MaxCommentLength)}
	}
	return nil
}

// optionalBoundedText is optionalText with a length limit on non-blank values.
func optionalBoundedText(field string, value *string, maxLen int) (*string, error) {
	trimmed := optionalText(value)
	if trimmed != nil && utf8.RuneCountInString(*trimmed) > maxLen {
		return nil, &ValidationError{Field: field, Message: fmt.Sprintf("must be at most %d characters", maxLen)}
	}
	return trimmed, nil
}

// optionalText trims value and maps blank to nil.
func optionalText(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

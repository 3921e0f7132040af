package services

import (
	"strings"
	"testing"

	"github.com/sbilibin2017/gw-social-content/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestValidateContentLink(t *testing.T) {
	tests := []struct {
		name    string
		link    string
		want    string
		wantErr bool
	}{
		{"http", "http://x/1", "http://x/1", false},
		{"https trimmed", "  https://cdn.example.com/a.png ", "https://cdn.example.com/a.png", false},
		{"blank", "   ", "", true},
		{"relative", "/images/a.png", "", true},
		{"ftp", "ftp://example.com/a.png", "", true},
		{"no host", "http:///a.png", "", true},
		{"too long", "https://example.com/" + strings.Repeat("a", 481), "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := validateContentLink(tt.link)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateCommentText(t *testing.T) {
	assert.NoError(t, validateCommentText("hi"))
	assert.NoError(t, validateCommentText(strings.Repeat("é", models.MaxCommentLength)))
	assert.ErrorIs(t, validateCommentText(""), ErrInvalidInput)
	assert.ErrorIs(t, validateCommentText(" \n\t"), ErrInvalidInput)
	assert.ErrorIs(t, validateCommentText(strings.Repeat("a", models.MaxCommentLength+1)), ErrInvalidInput)
}

func TestValidateEmail(t *testing.T) {
	got, err := validateEmail(" a@x.com ")
	assert.NoError(t, err)
	assert.Equal(t, "a@x.com", got)

	for _, bad := range []string{"", "alice", "Alice <a@x.com>", "a@"} {
		_, err := validateEmail(bad)
		assert.ErrorIs(t, err, ErrInvalidInput, bad)
	}
}

func TestOptionalText(t *testing.T) {
	assert.Nil(t, optionalText(nil))
	assert.Nil(t, optionalText(strPtr("  ")))
	assert.Equal(t, "maria", *optionalText(strPtr(" maria ")))
}

func TestOptionalBoundedText(t *testing.T) {
	v, err := optionalBoundedText("middle_name", nil, maxNameLength)
	assert.NoError(t, err)
	assert.Nil(t, v)

	v, err = optionalBoundedText("middle_name", strPtr("   "), maxNameLength)
	assert.NoError(t, err)
	assert.Nil(t, v)

	v, err = optionalBoundedText("middle_name", strPtr(" "+strings.Repeat("ж", maxNameLength)+" "), maxNameLength)
	assert.NoError(t, err)
	assert.Equal(t, strings.Repeat("ж", maxNameLength), *v)

	_, err = optionalBoundedText("middle_name", strPtr(strings.Repeat("ж", maxNameLength+1)), maxNameLength)
	assert.ErrorIs(t, err, ErrInvalidInput)
	var verr *ValidationError
	if assert.ErrorAs(t, err, &verr) {
		assert.Equal(t, "middle_name", verr.Field)
	}
}

func TestNormalizePage(t *testing.T) {
	assert.Equal(t, models.Page{Offset: 0, Limit: models.DefaultPageLimit}, normalizePage(models.Page{}))
	assert.Equal(t, models.Page{Offset: 0, Limit: models.MaxPageLimit}, normalizePage(models.Page{Offset: -5, Limit: 1000}))
	assert.Equal(t, models.Page{Offset: 40, Limit: 10}, normalizePage(models.Page{Offset: 40, Limit: 10}))
}

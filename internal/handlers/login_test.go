package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-social-content/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockLoginer(ctrl)

	tests := []struct {
		name            string
		body            string
		mockSetup       func()
		expectedCode    int
		expectedMessage string
	}{
		{
			name: "success",
			body: `{"username":"john","password":"pass1234"}`,
			mockSetup: func() {
				mockSvc.EXPECT().
					Login(gomock.Any(), "john", "pass1234").
					Return("JWT_TOKEN", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:            "invalid JSON",
			body:            "{invalid json}",
			mockSetup:       func() {},
			expectedCode:    http.StatusBadRequest,
			expectedMessage: "invalid request body",
		},
		{
			name: "wrong credentials",
			body: `{"username":"wronguser","password":"wrongpass"}`,
			mockSetup: func() {
				mockSvc.EXPECT().
					Login(gomock.Any(), "wronguser", "wrongpass").
					Return("", services.ErrInvalidCredentials)
			},
			expectedCode:    http.StatusUnauthorized,
			expectedMessage: services.ErrInvalidCredentials.Error(),
		},
		{
			name: "internal error",
			body: `{"username":"john","password":"pass1234"}`,
			mockSetup: func() {
				mockSvc.EXPECT().
					Login(gomock.Any(), "john", "pass1234").
					Return("", fmt.Errorf("generate token: %w", errors.New("signing failed")))
			},
			expectedCode:    http.StatusInternalServerError,
			expectedMessage: "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := newRequest(http.MethodPost, "/api/auth/login", tt.body, nil, nil)
			rr := httptest.NewRecorder()

			NewLoginHandler(mockSvc).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			env := decodeEnvelope(t, rr)
			if tt.expectedCode != http.StatusOK {
				assert.Equal(t, "failed", env.Status)
				assert.Equal(t, tt.expectedMessage, env.Message)
				return
			}

			var resp LoginResponse
			require.NoError(t, json.Unmarshal(env.Data, &resp))
			assert.Equal(t, LoginResponse{Token: "JWT_TOKEN", Username: "john"}, resp)
		})
	}
}

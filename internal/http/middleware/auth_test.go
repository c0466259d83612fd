package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yungbote/placement-backend/internal/pkg/ctxutil"
	"github.com/yungbote/placement-backend/internal/platform/logger"
)

const testSecret = "test-secret"

func authRouter(t *testing.T) (*gin.Engine, *ctxutil.RequestData) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log, err := logger.New("test")
	require.NoError(t, err)

	var seen ctxutil.RequestData
	r := gin.New()
	r.GET("/protected", NewAuthMiddleware(log, testSecret).RequireAuth(), func(c *gin.Context) {
		if rd := ctxutil.GetRequestData(c.Request.Context()); rd != nil {
			seen = *rd
		}
		c.Status(http.StatusOK)
	})
	return r, &seen
}

func signToken(t *testing.T, secret, subject, email string, expiry time.Duration) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   subject,
		"email": email,
		"exp":   time.Now().Add(expiry).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestRequireAuth(t *testing.T) {
	studentID := uuid.New()

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{
			name:       "valid token",
			header:     "Bearer " + signToken(t, testSecret, studentID.String(), "s@example.com", time.Hour),
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing header",
			header:     "",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "not bearer",
			header:     "Basic abc123",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong secret",
			header:     "Bearer " + signToken(t, "other-secret", studentID.String(), "s@example.com", time.Hour),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "expired",
			header:     "Bearer " + signToken(t, testSecret, studentID.String(), "s@example.com", -time.Hour),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "non-uuid subject",
			header:     "Bearer " + signToken(t, testSecret, "student-42", "s@example.com", time.Hour),
			wantStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, seen := authRouter(t)

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, studentID, seen.StudentID)
				assert.Equal(t, "s@example.com", seen.Email)
			}
		})
	}
}

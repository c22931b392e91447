package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"mtorq-api/models"
)

const testSecret = "test-secret-key"

func setupAuthTest(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))

	r := gin.New()
	r.GET("/protected", AuthMiddleware(db, testSecret), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetString("user_id")})
	})

	return r, db
}

func signToken(t *testing.T, secret, userID string, exp time.Time) string {
	t.Helper()
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     exp.Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func getProtected(r http.Handler, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware_NoCredentials(t *testing.T) {
	r, _ := setupAuthTest(t)

	// Missing header entirely is a 403, not a 401
	w := getProtected(r, "")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	r, _ := setupAuthTest(t)

	w := getProtected(r, "Basic abc123")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = getProtected(r, "Bearer ")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = getProtected(r, "Bearer not.a.token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_WrongSignature(t *testing.T) {
	r, db := setupAuthTest(t)
	user := models.User{ID: "u1", Email: "u1@example.com", Password: "x", Name: "U"}
	require.NoError(t, db.Create(&user).Error)

	token := signToken(t, "some-other-secret", user.ID, time.Now().Add(time.Hour))
	w := getProtected(r, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	r, db := setupAuthTest(t)
	user := models.User{ID: "u1", Email: "u1@example.com", Password: "x", Name: "U"}
	require.NoError(t, db.Create(&user).Error)

	token := signToken(t, testSecret, user.ID, time.Now().Add(-time.Hour))
	w := getProtected(r, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Token expired")
}

func TestAuthMiddleware_UserMissing(t *testing.T) {
	r, _ := setupAuthTest(t)

	token := signToken(t, testSecret, "ghost-user", time.Now().Add(time.Hour))
	w := getProtected(r, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "User not found")
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	r, db := setupAuthTest(t)
	user := models.User{ID: "u1", Email: "u1@example.com", Password: "x", Name: "U"}
	require.NoError(t, db.Create(&user).Error)

	token := signToken(t, testSecret, user.ID, time.Now().Add(time.Hour))
	w := getProtected(r, "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), user.ID)
}

func TestRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/limited", RateLimit(60, 2), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	// Burst of 2 passes, the third is throttled
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodGet, "/limited", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/limited", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

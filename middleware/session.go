package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// sessionTTL bounds a cart session token's lifetime. The Redis cart
// outlives the token; a fresh token just mints a fresh cart.
const sessionTTL = 30 * 24 * time.Hour

// CartSessionClaim carries the cart id inside the session token.
type CartSessionClaim struct {
	CartID string `json:"cart_id"`
	jwt.StandardClaims
}

// SessionManager mints and validates cart-session tokens.
type SessionManager struct {
	secret []byte
}

// NewSessionManager creates a manager signing with the given secret.
func NewSessionManager(secret string) *SessionManager {
	return &SessionManager{secret: []byte(secret)}
}

// GenerateToken mints a signed token for a new cart id.
func (m *SessionManager) GenerateToken() (token string, cartID string, err error) {
	cartID = uuid.NewString()

	claims := &CartSessionClaim{
		CartID: cartID,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(sessionTTL).Unix(),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	token, err = t.SignedString(m.secret)
	return token, cartID, err
}

// ValidateToken parses the token and returns its cart id.
func (m *SessionManager) ValidateToken(signedToken string) (string, error) {
	token, err := jwt.ParseWithClaims(
		signedToken,
		&CartSessionClaim{},
		func(token *jwt.Token) (interface{}, error) {
			return m.secret, nil
		},
	)
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(*CartSessionClaim)
	if !ok || !token.Valid {
		return "", errors.New("invalid session token")
	}
	if claims.ExpiresAt < time.Now().Unix() {
		return "", errors.New("session token expired")
	}
	return claims.CartID, nil
}

// CartSession resolves the caller's cart session. A valid token in the
// Authorization header or the cart_session cookie keeps its cart id; an
// absent or broken token gets a fresh session, returned in both the
// X-Cart-Session header and the cookie so either kind of client can
// carry it forward.
func CartSession(m *SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cartID, ok := resolveToken(c, m); ok {
			c.Set("cartID", cartID)
			c.Next()
			return
		}

		token, cartID, err := m.GenerateToken()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create cart session"})
			c.Abort()
			return
		}
		c.Header("X-Cart-Session", token)
		c.SetCookie("cart_session", token, int(sessionTTL.Seconds()), "/", "", false, true)
		c.Set("cartID", cartID)
		c.Next()
	}
}

func resolveToken(c *gin.Context, m *SessionManager) (string, bool) {
	var tokenString string

	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		splitToken := strings.Split(authHeader, "Bearer ")
		if len(splitToken) == 2 {
			tokenString = splitToken[1]
		}
	}
	if tokenString == "" {
		if cookie, err := c.Cookie("cart_session"); err == nil {
			tokenString = cookie
		}
	}
	if tokenString == "" {
		return "", false
	}

	cartID, err := m.ValidateToken(tokenString)
	if err != nil {
		return "", false
	}
	return cartID, true
}

package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"budgetwise/internal/config"
	"budgetwise/internal/models"
)

// tierContextKey is where the auth middleware stores the caller's tier.
const tierContextKey = "subscriptionTier"

// getJWTKey returns the JWT key from configuration.
func getJWTKey() []byte {
	return []byte(config.Get().JWTSecret)
}

// JWTClaims carries the subscription tier granted at login. BudgetWise is
// single-user per installation, so the token authenticates the device, not
// an account.
type JWTClaims struct {
	Tier models.Tier `json:"tier"`
	jwt.RegisteredClaims
}

// GenerateToken issues a session token carrying the given tier.
func GenerateToken(tier models.Tier) (string, error) {
	claims := &JWTClaims{
		Tier: tier,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(config.Get().JWTExpirationDur)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Issuer:    "budgetwise-api",
			Subject:   "device",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(getJWTKey())
}

// ValidateToken parses and validates a session token.
func ValidateToken(tokenString string) (*JWTClaims, error) {
	claims := &JWTClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return getJWTKey(), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}
	if !claims.Tier.Valid() {
		claims.Tier = models.TierFree
	}
	return claims, nil
}

// AuthMiddleware validates the bearer token and stores the subscription
// tier on the context for the feature gate.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{"code": "UNAUTHORIZED", "message": "Authentication required"},
			})
			return
		}

		claims, err := ValidateToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{"code": "UNAUTHORIZED", "message": "Invalid or expired token"},
			})
			return
		}

		c.Set(tierContextKey, claims.Tier)
		c.Next()
	}
}

// TierFromContext returns the tier stored by AuthMiddleware, defaulting to
// free when absent.
func TierFromContext(c *gin.Context) models.Tier {
	if v, ok := c.Get(tierContextKey); ok {
		if tier, ok := v.(models.Tier); ok {
			return tier
		}
	}
	return models.TierFree
}

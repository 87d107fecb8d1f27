package middleware

//go:generate mockgen -source=secret_middleware.go -destination=../../mocks/api/middleware/mock_secret_middleware.go -package=mockmiddleware

import (
	"OhDear_Health_Service/internal/health-endpoint/api/dto/response"
	"OhDear_Health_Service/internal/health-endpoint/metrics"
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

const SecretHeader = "oh-dear-health-check-secret"

type RejectionReason string

const (
	ReasonMissing RejectionReason = "Missing"
	ReasonInvalid RejectionReason = "Invalid"
)

type GuardOutcome struct {
	Admitted bool
	Reason   RejectionReason
}

func Admit() GuardOutcome {
	return GuardOutcome{Admitted: true}
}

func Reject(reason RejectionReason) GuardOutcome {
	return GuardOutcome{Reason: reason}
}

// Authenticate decides whether a request may trigger the checks. An empty configured secret disables
// authentication; otherwise the header must be present and match byte for byte.
func Authenticate(configuredSecret string, header string, headerPresent bool) GuardOutcome {
	if configuredSecret == "" {
		return Admit()
	}
	if !headerPresent {
		return Reject(ReasonMissing)
	}
	if subtle.ConstantTimeCompare([]byte(header), []byte(configuredSecret)) != 1 {
		return Reject(ReasonInvalid)
	}
	return Admit()
}

type AuthMiddleware interface {
	CheckSecret() gin.HandlerFunc
}

type authMiddleware struct {
	secret  string
	metrics metrics.Metrics
}

func (a *authMiddleware) CheckSecret() gin.HandlerFunc {
	return func(c *gin.Context) {
		values, present := c.Request.Header[http.CanonicalHeaderKey(SecretHeader)]
		var header string
		if present && len(values) > 0 {
			header = values[0]
		}
		outcome := Authenticate(a.secret, header, present)
		if !outcome.Admitted {
			a.metrics.ObserveGuard(string(outcome.Reason))
			message := "Secret header is invalid"
			if outcome.Reason == ReasonMissing {
				message = "Secret header is missing"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Response{Message: message})
			return
		}
		a.metrics.ObserveGuard("Admitted")
		c.Next()
	}
}

func NewAuthMiddleware(secret string, metrics metrics.Metrics) AuthMiddleware {
	return &authMiddleware{
		secret:  secret,
		metrics: metrics,
	}
}

package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ShareClaims are the claims of a public share-link token. Scope pins the
// token to PDF access so it cannot be replayed against other endpoints.
type ShareClaims struct {
	jwt.RegisteredClaims
	InvoiceID string `json:"invoice_id"`
	Scope     string `json:"scope"` // always "invoice_pdf"
}

// ScopeInvoicePDF is the only scope share tokens are issued with.
const ScopeInvoicePDF = "invoice_pdf"

// GenerateShareToken signs a token granting public read access to one
// invoice's PDF until expiry.
func GenerateShareToken(secret, invoiceID, issuer string, ttl time.Duration) (string, time.Time, error) {
	if secret == "" {
		return "", time.Time{}, fmt.Errorf("jwt: empty secret")
	}
	now := time.Now()
	expiresAt := now.Add(ttl)
	claims := ShareClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   invoiceID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		InvoiceID: invoiceID,
		Scope:     ScopeInvoicePDF,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// ParseShareToken validates a share token and returns the invoice it grants
// access to. Fails on bad signature, expiry or wrong scope.
func ParseShareToken(secret, tokenString string) (invoiceID string, err error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: empty secret")
	}
	token, err := jwt.ParseWithClaims(tokenString, &ShareClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", err
	}
	claims, ok := token.Claims.(*ShareClaims)
	if !ok || !token.Valid {
		return "", fmt.Errorf("invalid claims")
	}
	if claims.Scope != ScopeInvoicePDF || claims.InvoiceID == "" {
		return "", fmt.Errorf("wrong token scope")
	}
	return claims.InvoiceID, nil
}

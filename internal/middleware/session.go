package middleware

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// jwtSecret est lu à la demande : le .env n'est chargé qu'au démarrage,
// après l'initialisation des packages.
func jwtSecret() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

const (
	// SessionCookie porte le jeton signé de la session invité
	SessionCookie = "audiophile_session"
	sessionMaxAge = 30 * 24 * time.Hour
)

// GuestSession attache un identifiant de session anonyme à chaque visiteur.
// Pas de compte utilisateur dans cette boutique : le panier appartient à la
// session, un seul écrivain par session.
func GuestSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, err := c.Cookie(SessionCookie); err == nil {
			if sid := parseSessionToken(token); sid != "" {
				c.Set("session_id", sid)
				c.Next()
				return
			}
			log.Println("⚠️ Cookie de session invalide, on en émet un nouveau")
		}

		sid := uuid.NewString()
		token, err := newSessionToken(sid)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création session"})
			c.Abort()
			return
		}

		c.SetCookie(SessionCookie, token, int(sessionMaxAge.Seconds()), "/", "", false, true)
		c.Set("session_id", sid)
		c.Next()
	}
}

func newSessionToken(sessionID string) (string, error) {
	claims := jwt.MapClaims{
		"session_id": sessionID,
		"exp":        time.Now().Add(sessionMaxAge).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(jwtSecret())
}

// parseSessionToken retourne le session_id, ou "" si le jeton est invalide
func parseSessionToken(tokenString string) string {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("méthode de signature inattendue: %v", token.Header["alg"])
		}
		return jwtSecret(), nil
	})
	if err != nil || !token.Valid {
		return ""
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ""
	}

	sid, _ := claims["session_id"].(string)
	return sid
}

package web

import (
	"crypto/subtle"
	"encoding/base64"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// DefaultRealm is the HTTP Basic realm
const DefaultRealm = "APEx Policies"

const authRequired = "Authentication required."

// Credentials represents the single shared HTTP Basic account
type Credentials struct {
	Username string
	Password string
	Realm    string
}

// Enabled returns true when both username and password are set
func (c Credentials) Enabled() bool {
	return c.Username != "" && c.Password != ""
}

// BasicAuth gates every non static request behind HTTP Basic auth; it passes all requests when credentials are incomplete
func BasicAuth(credentials Credentials) gin.HandlerFunc {
	realm := credentials.Realm
	if realm == "" {
		realm = DefaultRealm
	}
	challenge := "Basic realm=" + strconv.Quote(realm) + `, charset="UTF-8"`
	return func(c *gin.Context) {
		if !credentials.Enabled() || isStaticPath(c.Request.URL.Path) {
			c.Next()
			return
		}
		username, password, ok := parseBasic(c.GetHeader("Authorization"))
		if ok && equal(username, credentials.Username) && equal(password, credentials.Password) {
			c.Next()
			return
		}
		c.Header("WWW-Authenticate", challenge)
		c.Data(http.StatusUnauthorized, "text/plain; charset=utf-8", []byte(authRequired))
		c.Abort()
	}
}

// parseBasic decodes a Basic authorization header, splitting on the first colon so passwords may contain colons
func parseBasic(header string) (string, string, bool) {
	const prefix = "Basic "
	if len(header) < len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", "", false
	}
	decoded, err := base64.StdEncoding.DecodeString(strings.TrimSpace(header[len(prefix):]))
	if err != nil {
		return "", "", false
	}
	username, password, ok := strings.Cut(string(decoded), ":")
	return username, password, ok
}

func equal(actual, expected string) bool {
	return subtle.ConstantTimeCompare([]byte(actual), []byte(expected)) == 1
}

func isStaticPath(path string) bool {
	return strings.HasPrefix(path, "/static/") || path == "/favicon.ico"
}

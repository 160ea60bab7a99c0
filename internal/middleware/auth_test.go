package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	jwtsvc "docshare/internal/pkg/jwt"
)

func setupGuardedRouter(j *jwtsvc.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin", RequireAuth(j), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"subject": c.GetString("subject")})
	})
	return r
}

func doAuthRequest(r http.Handler, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestRequireAuth_RejectsBadHeaders(t *testing.T) {
	j := jwtsvc.New("test-secret", time.Hour)
	r := setupGuardedRouter(j)

	cases := []struct {
		name          string
		authorization string
	}{
		{"missing header", ""},
		{"not a bearer", "Basic abc"},
		{"empty bearer", "Bearer   "},
		{"garbage token", "Bearer not.a.jwt"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if rr := doAuthRequest(r, tc.authorization); rr.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", rr.Code)
			}
		})
	}
}

func TestRequireAuth_RejectsForeignSecret(t *testing.T) {
	j := jwtsvc.New("test-secret", time.Hour)
	other := jwtsvc.New("other-secret", time.Hour)
	r := setupGuardedRouter(j)

	token, err := other.GenerateToken("alice")
	if err != nil {
		t.Fatal(err)
	}
	if rr := doAuthRequest(r, "Bearer "+token); rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for foreign secret, got %d", rr.Code)
	}
}

func TestRequireAuth_SetsSubject(t *testing.T) {
	j := jwtsvc.New("test-secret", time.Hour)
	r := setupGuardedRouter(j)

	token, err := j.GenerateToken("alice")
	if err != nil {
		t.Fatal(err)
	}

	rr := doAuthRequest(r, "Bearer "+token)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
	if body := rr.Body.String(); body != `{"subject":"alice"}` {
		t.Fatalf("unexpected body: %s", body)
	}
}

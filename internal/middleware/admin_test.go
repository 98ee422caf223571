package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mrseeker53/swaplap-server/internal/domain"
	"github.com/mrseeker53/swaplap-server/internal/utils"

	"github.com/gin-gonic/gin"
)

type mockRoleLookup struct {
	findByEmailFn func(ctx context.Context, email string) (*domain.User, bool, error)
}

func (m *mockRoleLookup) FindByEmail(ctx context.Context, email string) (*domain.User, bool, error) {
	return m.findByEmailFn(ctx, email)
}

// adminRouter wires both gates in front of a probe handler, the way the
// promotion route is registered.
func adminRouter(users RoleLookup, handlerRan *bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.PUT("/admin-only", JWTAuthMiddleware(testSecret), AdminOnlyMiddleware(users), func(c *gin.Context) {
		*handlerRan = true
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func adminRequest(t *testing.T, email string) *http.Request {
	t.Helper()
	token, err := utils.GenerateJWT(email, testSecret)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	req := httptest.NewRequest(http.MethodPut, "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func TestAdminOnlyMiddleware_AdminProceeds(t *testing.T) {
	users := &mockRoleLookup{
		findByEmailFn: func(ctx context.Context, email string) (*domain.User, bool, error) {
			if email != "root@swaplap.test" {
				t.Errorf("looked up %q, want the claim email", email)
			}
			return &domain.User{Email: email, Role: domain.RoleAdmin}, true, nil
		},
	}
	handlerRan := false
	r := adminRouter(users, &handlerRan)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, adminRequest(t, "root@swaplap.test"))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !handlerRan {
		t.Error("handler did not run for an admin requester")
	}
}

func TestAdminOnlyMiddleware_NonAdminIs403(t *testing.T) {
	users := &mockRoleLookup{
		findByEmailFn: func(ctx context.Context, email string) (*domain.User, bool, error) {
			return &domain.User{Email: email, Role: domain.RoleSeller}, true, nil
		},
	}
	handlerRan := false
	r := adminRouter(users, &handlerRan)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, adminRequest(t, "seller@swaplap.test"))

	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", w.Code)
	}
	if !strings.Contains(w.Body.String(), "forbidden access") {
		t.Errorf("body = %q, want forbidden access message", w.Body.String())
	}
	if handlerRan {
		t.Error("handler ran for a non-admin requester")
	}
}

func TestAdminOnlyMiddleware_UnknownRequesterIs403(t *testing.T) {
	users := &mockRoleLookup{
		findByEmailFn: func(ctx context.Context, email string) (*domain.User, bool, error) {
			return nil, false, nil
		},
	}
	handlerRan := false
	r := adminRouter(users, &handlerRan)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, adminRequest(t, "ghost@swaplap.test"))

	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", w.Code)
	}
	if handlerRan {
		t.Error("handler ran for an unknown requester")
	}
}

func TestAdminOnlyMiddleware_LookupFailureIs500(t *testing.T) {
	users := &mockRoleLookup{
		findByEmailFn: func(ctx context.Context, email string) (*domain.User, bool, error) {
			return nil, false, errors.New("connection reset")
		},
	}
	handlerRan := false
	r := adminRouter(users, &handlerRan)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, adminRequest(t, "root@swaplap.test"))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	if handlerRan {
		t.Error("handler ran after a lookup failure")
	}
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"taskvault.com/taskvault/internal/auth"
	"taskvault.com/taskvault/internal/constants"
	apperrors "taskvault.com/taskvault/internal/errors"
)

func invoke(t *testing.T, mw echo.MiddlewareFunc, header string) (echo.Context, error) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	c := e.NewContext(req, httptest.NewRecorder())

	handler := mw(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	return c, handler(c)
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret", time.Hour)

	_, err := invoke(t, Authenticate(tokens), "")
	if err != apperrors.ErrNoToken {
		t.Errorf("expected ErrNoToken, got %v", err)
	}
}

func TestAuthenticate_MalformedHeader(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret", time.Hour)

	for _, header := range []string{"Bearer ", "Token abc", "abc"} {
		_, err := invoke(t, Authenticate(tokens), header)
		if err != apperrors.ErrMalformedToken {
			t.Errorf("header %q: expected ErrMalformedToken, got %v", header, err)
		}
	}
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret", time.Hour)

	_, err := invoke(t, Authenticate(tokens), "Bearer garbage")
	if err != apperrors.ErrInvalidToken {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}

	expired := auth.NewTokenManager("test-secret", -time.Minute)
	token, issueErr := expired.Issue("user-1", constants.RoleUser)
	if issueErr != nil {
		t.Fatalf("failed to issue token: %v", issueErr)
	}

	_, err = invoke(t, Authenticate(tokens), "Bearer "+token)
	if err != apperrors.ErrInvalidToken {
		t.Errorf("expected ErrInvalidToken for an expired token, got %v", err)
	}
}

func TestAuthenticate_AttachesIdentity(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	token, err := tokens.Issue("user-1", constants.RoleAdmin)
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}

	c, err := invoke(t, Authenticate(tokens), "Bearer "+token)
	if err != nil {
		t.Fatalf("expected the request to pass, got %v", err)
	}

	identity, ok := IdentityFrom(c)
	if !ok {
		t.Fatal("expected an identity in the context")
	}
	if identity.UserID != "user-1" || identity.Role != constants.RoleAdmin {
		t.Errorf("unexpected identity %+v", identity)
	}
}

func TestAuthorize(t *testing.T) {
	e := echo.New()
	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }

	newCtx := func() echo.Context {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		return e.NewContext(req, httptest.NewRecorder())
	}

	// No identity at all.
	if err := Authorize(constants.RoleUser)(next)(newCtx()); err != apperrors.ErrAccessDenied {
		t.Errorf("expected ErrAccessDenied without identity, got %v", err)
	}

	// A user token on an admin route.
	c := newCtx()
	c.Set(identityKey, Identity{UserID: "user-1", Role: constants.RoleUser})
	if err := Authorize(constants.RoleAdmin)(next)(c); err != apperrors.ErrAccessDenied {
		t.Errorf("expected ErrAccessDenied for a user on an admin route, got %v", err)
	}

	// Matching role passes.
	c = newCtx()
	c.Set(identityKey, Identity{UserID: "user-1", Role: constants.RoleUser})
	if err := Authorize(constants.RoleUser)(next)(c); err != nil {
		t.Errorf("expected the request to pass, got %v", err)
	}
}

func TestAllowed(t *testing.T) {
	identity := Identity{UserID: "user-1", Role: constants.RoleUser}

	if !Allowed(identity, []constants.Role{constants.RoleUser, constants.RoleAdmin}) {
		t.Error("expected membership to allow")
	}
	if Allowed(identity, []constants.Role{constants.RoleAdmin}) {
		t.Error("expected non-membership to deny")
	}
	if Allowed(identity, nil) {
		t.Error("expected an empty role list to deny")
	}
}

func TestRateLimiter(t *testing.T) {
	e := echo.New()
	mw := RateLimiter(2, time.Minute)
	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		c := e.NewContext(req, httptest.NewRecorder())
		if err := mw(next)(c); err != nil {
			t.Fatalf("request %d should pass: %v", i+1, err)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	if err := mw(next)(c); err != apperrors.ErrRateLimited {
		t.Errorf("expected ErrRateLimited, got %v", err)
	}
}

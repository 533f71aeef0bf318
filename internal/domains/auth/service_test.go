package auth_test

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Fivegen-LLC/wol-agent/internal/domains/auth"
	"github.com/Fivegen-LLC/wol-agent/internal/errs"
)

var (
	testSecret = []byte("test-secret-with-enough-entropy")
	testNow    = time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)
)

func newTestService(now func() time.Time) *auth.Service {
	return auth.NewService("admin", "s3cret", testSecret, time.Hour, now)
}

func fixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

func TestService_VerifyCredentials(t *testing.T) {
	t.Parallel()

	testTable := []struct {
		name     string
		username string
		password string
		expected bool
	}{
		{name: "match", username: "admin", password: "s3cret", expected: true},
		{name: "wrong password", username: "admin", password: "s3cre", expected: false},
		{name: "wrong username", username: "root", password: "s3cret", expected: false},
		{name: "both wrong", username: "root", password: "toor", expected: false},
		{name: "empty", expected: false},
		{name: "case sensitive", username: "Admin", password: "s3cret", expected: false},
	}

	service := newTestService(fixedClock(testNow))
	for _, testCase := range testTable {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.expected, service.VerifyCredentials(testCase.username, testCase.password))
		})
	}
}

func TestService_IssueAndVerifyToken(t *testing.T) {
	t.Parallel()

	service := newTestService(fixedClock(testNow))
	token, err := service.IssueToken("admin", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	username, err := service.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", username)

	username, err = service.Authenticate(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", username)
}

func TestService_VerifyToken_Expired(t *testing.T) {
	t.Parallel()

	issuer := newTestService(fixedClock(testNow))
	token, err := issuer.IssueToken("admin", time.Hour)
	require.NoError(t, err)

	verifier := newTestService(fixedClock(testNow.Add(time.Hour + time.Minute)))
	_, err = verifier.VerifyToken(token)
	require.ErrorIs(t, err, errs.ErrInvalidToken)
}

func TestService_IssueToken_CapsTTL(t *testing.T) {
	t.Parallel()

	issuer := newTestService(fixedClock(testNow))
	token, err := issuer.IssueToken("admin", 72*time.Hour)
	require.NoError(t, err)

	stillValid := newTestService(fixedClock(testNow.Add(23 * time.Hour)))
	_, err = stillValid.VerifyToken(token)
	require.NoError(t, err)

	expired := newTestService(fixedClock(testNow.Add(25 * time.Hour)))
	_, err = expired.VerifyToken(token)
	require.ErrorIs(t, err, errs.ErrInvalidToken)
}

func TestService_VerifyToken_Rejects(t *testing.T) {
	t.Parallel()

	claims := jwt.RegisteredClaims{
		Subject:   "admin",
		ExpiresAt: jwt.NewNumericDate(testNow.Add(time.Hour)),
	}

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	hs512Token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString(testSecret)
	require.NoError(t, err)

	foreignToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("another-secret"))
	require.NoError(t, err)

	noExpToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "admin"}).SignedString(testSecret)
	require.NoError(t, err)

	noSubjectToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(testNow.Add(time.Hour)),
	}).SignedString(testSecret)
	require.NoError(t, err)

	service := newTestService(fixedClock(testNow))
	adminToken, err := service.IssueToken("admin", time.Hour)
	require.NoError(t, err)
	rootToken, err := service.IssueToken("root", time.Hour)
	require.NoError(t, err)

	adminParts := strings.Split(adminToken, ".")
	rootParts := strings.Split(rootToken, ".")
	swappedToken := strings.Join([]string{rootParts[0], rootParts[1], adminParts[2]}, ".")

	testTable := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "garbage", token: "not.a.token"},
		{name: "alg none", token: noneToken},
		{name: "unexpected algorithm", token: hs512Token},
		{name: "foreign secret", token: foreignToken},
		{name: "missing expiry", token: noExpToken},
		{name: "missing subject", token: noSubjectToken},
		{name: "signature from another token", token: swappedToken},
	}

	for _, testCase := range testTable {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			username, err := service.VerifyToken(testCase.token)
			require.ErrorIs(t, err, errs.ErrInvalidToken)
			assert.Empty(t, username)
		})
	}
}

func TestService_IssueCredential(t *testing.T) {
	t.Parallel()

	service := newTestService(fixedClock(testNow))
	credential, err := service.IssueCredential("admin")
	require.NoError(t, err)

	assert.Equal(t, "bearer", credential.Type)
	assert.Equal(t, "access_token", credential.CookieName)
	assert.Equal(t, testNow.Add(time.Hour), credential.ExpiresAt)
	require.NoError(t, service.RevokeCredential(credential.Value))

	_, err = service.IssueCredential("")
	require.ErrorIs(t, err, errs.ErrInvalidParameters)
}

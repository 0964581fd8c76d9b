package tenant_service

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/chatseal/chatseal-server/src/config/env"
	"github.com/chatseal/chatseal-server/src/integration/meta"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type verifyRoute struct {
	status   int
	response string
}

func installVerifyStub(t *testing.T, routes map[string]verifyRoute) {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		for suffix, route := range routes {
			if strings.HasSuffix(r.URL.Path, suffix) {
				w.WriteHeader(route.status)
				fmt.Fprint(w, route.response)
				return
			}
		}
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"error":{"message":"Unknown path","type":"GraphMethodException","code":100}}`)
	}))

	previousURL := meta.BaseURL
	meta.BaseURL = server.URL
	previousID, previousSecret := env.MetaAppID, env.MetaAppSecret
	env.MetaAppID, env.MetaAppSecret = "test-app-id", "test-app-secret"
	t.Cleanup(func() {
		meta.BaseURL = previousURL
		env.MetaAppID, env.MetaAppSecret = previousID, previousSecret
		server.Close()
	})
}

func healthyVerifyRoutes() map[string]verifyRoute {
	return map[string]verifyRoute{
		"/debug_token":             {http.StatusOK, `{"data":{"scopes":["whatsapp_business_management","whatsapp_business_messaging"]}}`},
		"/999888777/phone_numbers": {http.StatusOK, `{"data":[{"id":"111222333","display_phone_number":"+15550001111","status":"CONNECTED","name_status":"APPROVED"}]}`},
		"/999888777":               {http.StatusOK, `{"id":"999888777","name":"Acme Commerce"}`},
		"/111222333":               {http.StatusOK, `{"id":"111222333","display_phone_number":"+15550001111"}`},
	}
}

func TestVerifyHealthyCredentials(t *testing.T) {
	installVerifyStub(t, healthyVerifyRoutes())

	report := Verify(context.Background(), "999888777", "111222333", "tenant-token")

	assert.True(t, report.Success)
	assert.Empty(t, report.Checks.MissingScopes)
	require.NotNil(t, report.Checks.Waba)
	assert.Equal(t, "Acme Commerce", report.Checks.Waba.Name)
	require.NotNil(t, report.Checks.PhoneNumber)
	assert.Empty(t, report.Hints)
}

func TestVerifyMissingScopesFailsWithHint(t *testing.T) {
	routes := healthyVerifyRoutes()
	routes["/debug_token"] = verifyRoute{http.StatusOK, `{"data":{"scopes":["public_profile"]}}`}
	installVerifyStub(t, routes)

	report := Verify(context.Background(), "999888777", "111222333", "tenant-token")

	assert.False(t, report.Success)
	assert.Equal(
		t,
		[]string{"whatsapp_business_management", "whatsapp_business_messaging"},
		report.Checks.MissingScopes,
	)
	assert.NotEmpty(t, report.Hints)
}

func TestVerifyUnregisteredPhoneHints(t *testing.T) {
	routes := healthyVerifyRoutes()
	routes["/999888777/phone_numbers"] = verifyRoute{
		http.StatusOK,
		`{"data":[{"id":"111222333","display_phone_number":"+15550001111","status":"PENDING","name_status":"APPROVED"}]}`,
	}
	installVerifyStub(t, routes)

	report := Verify(context.Background(), "999888777", "111222333", "tenant-token")

	// Registration state does not flip Success; it is advisory.
	assert.True(t, report.Success)
	require.NotEmpty(t, report.Hints)
	assert.Contains(t, report.Hints[0], "PENDING")
}

func TestVerifyExpiredTokenReportsPerCheck(t *testing.T) {
	expired := verifyRoute{
		http.StatusUnauthorized,
		`{"error":{"message":"Error validating access token","type":"OAuthException","code":190}}`,
	}
	routes := map[string]verifyRoute{
		"/debug_token":             expired,
		"/999888777/phone_numbers": expired,
		"/999888777":               expired,
		"/111222333":               expired,
	}
	installVerifyStub(t, routes)

	report := Verify(context.Background(), "999888777", "111222333", "dead-token")

	assert.False(t, report.Success)
	assert.NotEmpty(t, report.Checks.ScopesError)
	assert.NotEmpty(t, report.Checks.WabaError)
	assert.NotEmpty(t, report.Checks.PhoneNumberError)
	assert.NotEmpty(t, report.Checks.WabaPhoneNumbersError)
	assert.NotEmpty(t, report.Hints)
}

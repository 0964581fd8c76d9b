package meta

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGraphError(t *testing.T) {
	t.Run("expired token", func(t *testing.T) {
		err := parseGraphError(401, []byte(`{"error":{"message":"Error validating access token: Session has expired","type":"OAuthException","code":190,"error_subcode":463,"fbtrace_id":"AbCdEf"}}`))

		ge, ok := AsGraphError(err)
		require.True(t, ok)
		assert.True(t, ge.TokenInvalid())
		assert.False(t, ge.MissingPermission())
		assert.Equal(t, 401, ge.HTTPStatus)
		assert.Equal(t, 463, ge.Subcode)
	})

	t.Run("missing permission", func(t *testing.T) {
		err := parseGraphError(403, []byte(`{"error":{"message":"Unsupported get request","type":"GraphMethodException","code":100}}`))

		ge, ok := AsGraphError(err)
		require.True(t, ok)
		assert.True(t, ge.MissingPermission())
		assert.False(t, ge.TokenInvalid())
	})

	t.Run("application lacks capability", func(t *testing.T) {
		err := parseGraphError(403, []byte(`{"error":{"message":"Application does not have permission for this action","type":"OAuthException","code":10}}`))

		ge, ok := AsGraphError(err)
		require.True(t, ok)
		assert.True(t, ge.MissingPermission())
	})

	t.Run("non-envelope body is unclassified", func(t *testing.T) {
		err := parseGraphError(502, []byte(`<html>Bad Gateway</html>`))

		ge, ok := AsGraphError(err)
		require.True(t, ok)
		assert.False(t, ge.TokenInvalid())
		assert.False(t, ge.MissingPermission())
		assert.Equal(t, 502, ge.HTTPStatus)
		assert.Equal(t, "unclassified", ge.Type)
	})
}

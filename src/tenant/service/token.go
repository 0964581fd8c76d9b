package tenant_service

import "strings"

// SanitizeAccessToken reduces a pasted credential to its first
// whitespace-delimited token. Dashboard users routinely paste tokens with
// trailing newlines or "Bearer " fragments glued on.
func SanitizeAccessToken(token string) string {
	fields := strings.Fields(token)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

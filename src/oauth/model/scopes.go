package oauth_model

// OAuthScopes is the full scope list requested when starting the flow.
var OAuthScopes = []string{
	"whatsapp_business_management",
	"whatsapp_business_messaging",
	"business_management",
	"public_profile",
	"email",
}

// RequiredScopes must all be granted for a connection to complete. The rest
// of OAuthScopes is nice-to-have profile data.
var RequiredScopes = []string{
	"whatsapp_business_management",
	"whatsapp_business_messaging",
}

// MissingScopes returns the required scopes absent from granted, in the
// required order.
func MissingScopes(granted []string) []string {
	grantedSet := make(map[string]struct{}, len(granted))
	for _, scope := range granted {
		grantedSet[scope] = struct{}{}
	}

	var missing []string
	for _, scope := range RequiredScopes {
		if _, ok := grantedSet[scope]; !ok {
			missing = append(missing, scope)
		}
	}
	return missing
}

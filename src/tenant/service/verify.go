package tenant_service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/chatseal/chatseal-server/src/integration/meta"
	oauth_model "github.com/chatseal/chatseal-server/src/oauth/model"
	tenant_model "github.com/chatseal/chatseal-server/src/tenant/model"
	"golang.org/x/sync/errgroup"
)

// Verify runs the read-only credential diagnostic: token scopes, WABA
// reachability, phone number reachability, and the WABA phone list with
// registration statuses. The four checks are independent so they run
// concurrently; each failure becomes part of the report, never an error.
func Verify(ctx context.Context, wabaID, phoneNumberID, accessToken string) tenant_model.VerifyReport {
	client := meta.NewClient()

	var report tenant_model.VerifyReport
	var hintsMu sync.Mutex
	hint := func(h string) {
		hintsMu.Lock()
		report.Hints = append(report.Hints, h)
		hintsMu.Unlock()
	}

	var eg errgroup.Group

	eg.Go(func() error {
		scopes, err := client.DebugToken(ctx, meta.AppToken(), accessToken)
		if err != nil {
			report.Checks.ScopesError = err.Error()
			hint("Token debug failed; token may be invalid or app credentials not set.")
			return nil
		}
		report.Checks.Scopes = scopes
		report.Checks.MissingScopes = oauth_model.MissingScopes(scopes)
		if len(report.Checks.MissingScopes) > 0 {
			hint("Grant required scopes during OAuth or use a System User token with these permissions.")
		}
		return nil
	})

	eg.Go(func() error {
		waba, err := client.GetWABA(ctx, wabaID, accessToken, "id,name")
		if err != nil {
			report.Checks.WabaError = err.Error()
			if ge, ok := meta.AsGraphError(err); ok {
				if ge.TokenInvalid() {
					hint("Access token invalid/expired; generate a fresh token.")
				}
				if ge.MissingPermission() {
					hint("Missing permission or not authorized for this WABA. Ensure the app is added to the WABA and the user has access.")
				}
			}
			return nil
		}
		report.Checks.Waba = waba
		return nil
	})

	eg.Go(func() error {
		phone, err := client.GetPhoneNumber(ctx, phoneNumberID, accessToken, "id,display_phone_number")
		if err != nil {
			report.Checks.PhoneNumberError = err.Error()
			if ge, ok := meta.AsGraphError(err); ok {
				if ge.TokenInvalid() {
					hint("Access token invalid/expired; generate a fresh token.")
				}
				if ge.MissingPermission() {
					hint("Phone number not accessible by this token/WABA. Confirm it belongs to the WABA and the app has access.")
				}
			}
			return nil
		}
		report.Checks.PhoneNumber = phone
		return nil
	})

	eg.Go(func() error {
		phones, err := client.PhoneNumbers(ctx, wabaID, accessToken,
			"id,display_phone_number,status,name_status,verified_name,quality_rating")
		if err != nil {
			report.Checks.WabaPhoneNumbersError = err.Error()
			return nil
		}
		report.Checks.WabaPhoneNumbers = phones
		for _, phone := range phones {
			if phone.ID == phoneNumberID && phone.Status != "" && strings.ToUpper(phone.Status) != "CONNECTED" {
				hint(fmt.Sprintf(
					"Phone number status is '%s'. Complete registration in WhatsApp Manager > API Setup.",
					phone.Status,
				))
			}
		}
		return nil
	})

	eg.Wait()

	report.Success = len(report.Checks.MissingScopes) == 0 &&
		report.Checks.ScopesError == "" &&
		report.Checks.Waba != nil &&
		report.Checks.PhoneNumber != nil
	if report.Hints == nil {
		report.Hints = []string{}
	}

	return report
}

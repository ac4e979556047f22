// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// Copyright 2025, the themegate contributors
// SPDX-License-Identifier: AGPL-3.0-only

package routes

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"codeberg.org/themegate/themegate/core/cookie"
	"codeberg.org/themegate/themegate/core/preference"
	"codeberg.org/themegate/themegate/core/untrusted"
	"codeberg.org/themegate/themegate/server/request_context"
	"codeberg.org/themegate/themegate/server/utils"
)

// maxResultsPerPage caps the page size a user can store.
const maxResultsPerPage = 100

// settingsActions maps the {action} path segment to its handler.
var settingsActions = map[string]func(w http.ResponseWriter, r *http.Request) (string, error){
	"theme":          setTheme,
	"resultsPerPage": setResultsPerPage,
	"reset":          resetAll,
}

func setTheme(w http.ResponseWriter, r *http.Request) (string, error) {
	theme := utils.GetFormValue(r, "theme")

	if theme == "" {
		untrusted.ClearCookie(w, r, cookie.ThemeCookie)

		return "Theme cleared.", nil
	}

	if !preference.IsValidTheme(theme) {
		return "", NewBadRequestError(fmt.Sprintf("Invalid theme %q. Choose one of: %s.",
			theme, strings.Join(preference.Themes, ", ")))
	}

	untrusted.SetCookie(w, r, cookie.ThemeCookie, theme)

	return "Theme updated successfully.", nil
}

func setResultsPerPage(w http.ResponseWriter, r *http.Request) (string, error) {
	raw := utils.GetFormValue(r, "resultsPerPage")

	if raw == "" {
		untrusted.ClearCookie(w, r, cookie.ResultsPerPageCookie)

		return "Results per page cleared.", nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 || n > maxResultsPerPage {
		return "", NewBadRequestError(fmt.Sprintf("Results per page must be between 1 and %d.", maxResultsPerPage))
	}

	untrusted.SetCookie(w, r, cookie.ResultsPerPageCookie, strconv.Itoa(n))

	return "Results per page updated successfully.", nil
}

//nolint:unparam
func resetAll(w http.ResponseWriter, r *http.Request) (string, error) {
	untrusted.ClearAllCookies(w, r)

	return "All preferences were reset.", nil
}

// SettingsPOST applies the settings action named by the {action} path segment,
// then redirects to the sanitized returnPath form value or "/".
func SettingsPOST(w http.ResponseWriter, r *http.Request) error {
	action := utils.GetPathVar(r, "action")

	handler, ok := settingsActions[action]
	if !ok {
		return NewBadRequestError(fmt.Sprintf("No such setting: %q.", action))
	}

	message, err := handler(w, r)
	if err != nil {
		return err
	}

	log.Debug().
		Str("request_id", request_context.FromRequest(r).RequestID).
		Str("action", action).
		Msg(message)

	returnPath := utils.SanitizeReturnPath(utils.GetFormValue(r, "returnPath"))
	if returnPath == "" {
		returnPath = "/"
	}

	http.Redirect(w, r, returnPath, http.StatusSeeOther)

	return nil
}

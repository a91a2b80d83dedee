package scrape

import "regexp"

// Zentao answers 200 with a redirect script to the login page when the session expired:
// self.location = '/user-login-XXXXX.html';
var loginRedirectRegexp = regexp.MustCompile(`self\.location\s*=\s*['"](.*user-login.*\.html)['"]`)

// IsSessionExpired returns true if the page is the redirect to the login page.
func IsSessionExpired(html string) bool {
	return loginRedirectRegexp.MatchString(html)
}

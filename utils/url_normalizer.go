package utils

import (
	"net/url"
	"strings"
)

// NormalizeEndpoint canonicalizes a feed endpoint so that duplicate source
// registrations compare equal regardless of tracking parameters, case of the
// host, fragments, or trailing slashes. Source uniqueness per subscriber is
// defined over this normalized form.
func NormalizeEndpoint(rawURL string) (string, error) {
	parsed, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return "", err
	}

	parsed.Scheme = strings.ToLower(parsed.Scheme)
	parsed.Host = strings.ToLower(parsed.Host)

	// Strip common tracking parameters
	query := parsed.Query()
	trackingParams := []string{
		"utm_source", "utm_medium", "utm_campaign",
		"utm_term", "utm_content", "utm_id",
		"fbclid", "gclid", "mc_eid", "msclkid",
	}
	for _, param := range trackingParams {
		query.Del(param)
	}
	parsed.RawQuery = query.Encode()

	parsed.Fragment = ""

	if parsed.Path != "/" && strings.HasSuffix(parsed.Path, "/") {
		parsed.Path = strings.TrimRight(parsed.Path, "/")
	}

	return parsed.String(), nil
}

package urlhandler

import (
	"net/url"
	"strings"
)

// MatchesDomain reports whether the URL's host is the given domain or one of
// its subdomains. An empty domain filter matches everything.
func MatchesDomain(rawURL, domain string) bool {
	if domain == "" {
		return true
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}

	host := strings.ToLower(parsed.Hostname())
	domain = strings.ToLower(strings.TrimSpace(domain))

	return host == domain || strings.HasSuffix(host, "."+domain)
}

// FilterByDomain keeps only the URLs matching the domain filter, preserving
// input order.
func FilterByDomain(urls []string, domain string) []string {
	if domain == "" {
		return urls
	}
	filtered := make([]string, 0, len(urls))
	for _, u := range urls {
		if MatchesDomain(u, domain) {
			filtered = append(filtered, u)
		}
	}
	return filtered
}

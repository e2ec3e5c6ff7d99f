package web

import (
	"net/http"
	"net/url"
	"strings"
)

// ShareBase picks the base for share links: the configured external URL when
// present, otherwise the scheme and host of the incoming request.
func ShareBase(configured string, r *http.Request) string {
	if configured != "" {
		return strings.TrimRight(configured, "/")
	}
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + r.Host
}

// QuizURL builds the partner-facing entry URL for a transport token.
func QuizURL(base, token string) string {
	return base + "/quiz?data=" + url.QueryEscape(token)
}

// ResultURL builds the result-page URL for a transport token.
func ResultURL(base, token string) string {
	return base + "/result?data=" + url.QueryEscape(token)
}

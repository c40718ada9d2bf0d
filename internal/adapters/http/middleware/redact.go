package middleware

import (
	"log/slog"
	"net/http"
	"net/url"
	"regexp"
	"slices"
	"strings"

	"github.com/jsamuelsen11/project-lifecycle-service/internal/platform/logging"
)

const redacted = "[REDACTED]"

// emailPattern finds team member addresses that end up in headers or
// filters, such as a From header or an ?email= search.
var emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)

// RedactHeaders converts headers into log attributes sorted by name.
// Credential headers from logging.SensitiveHeaders are replaced outright;
// email addresses inside any other value are masked. Multi-value headers are
// joined with a comma.
func RedactHeaders(headers http.Header) []slog.Attr {
	return redactPairs(headers, func(key string) bool {
		return logging.SensitiveHeaders[strings.ToLower(key)]
	})
}

// RedactQuery converts list filters into log attributes sorted by name.
// Parameters named like credentials or personal fields are replaced outright;
// email addresses inside any other value are masked.
func RedactQuery(query url.Values) []slog.Attr {
	return redactPairs(query, sensitiveParam)
}

func sensitiveParam(name string) bool {
	name = strings.ToLower(name)
	if slices.Contains(logging.PersonalFields, name) {
		return true
	}
	for _, fragment := range []string{"token", "secret", "password", "api_key"} {
		if strings.Contains(name, fragment) {
			return true
		}
	}
	return false
}

func redactPairs(pairs map[string][]string, sensitive func(string) bool) []slog.Attr {
	keys := make([]string, 0, len(pairs))
	for k := range pairs {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	attrs := make([]slog.Attr, 0, len(keys))
	for _, key := range keys {
		if sensitive(key) {
			attrs = append(attrs, slog.String(key, redacted))
			continue
		}
		value := strings.Join(pairs[key], ",")
		attrs = append(attrs, slog.String(key, maskEmails(value)))
	}
	return attrs
}

// maskEmails keeps the first character of the local part and the domain:
// ada@example.com becomes a***@example.com.
func maskEmails(s string) string {
	return emailPattern.ReplaceAllStringFunc(s, func(addr string) string {
		at := strings.IndexByte(addr, '@')
		return addr[:1] + "***" + addr[at:]
	})
}

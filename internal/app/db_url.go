package app

import (
	"net/url"
	"strings"
)

// normalizeDBURL appends disable_prepared_binary_result=yes when the
// deployment asks for it. Some Postgres proxies reject binary result
// encoding on prepared statements.
func normalizeDBURL(raw string, disablePreparedBinaryResult bool) string {
	if !disablePreparedBinaryResult {
		return raw
	}

	parsed, err := url.Parse(raw)
	if err != nil || parsed == nil {
		return raw
	}

	q := parsed.Query()
	if q.Get("disable_prepared_binary_result") != "" {
		return raw
	}
	q.Set("disable_prepared_binary_result", "yes")
	parsed.RawQuery = q.Encode()

	return parsed.String()
}

// dbNameFromURL pulls the database name out of either a postgres:// URL
// or a key=value DSN, for span attributes only.
func dbNameFromURL(raw string) string {
	raw = strings.TrimSpace(raw)

	if parsed, err := url.Parse(raw); err == nil && parsed != nil && parsed.Scheme != "" {
		if name := strings.Trim(parsed.Path, "/ "); name != "" {
			return name
		}
	}

	for _, kv := range strings.Fields(raw) {
		if name, ok := strings.CutPrefix(kv, "dbname="); ok {
			if name = strings.Trim(name, `"' `); name != "" {
				return name
			}
		}
	}

	return ""
}

package httpapi

import (
	"context"
	"fmt"
	"hash/fnv"
	"net"
	"net/http"
	"strings"
)

// resolveUserID identifies the caller without accounts: an explicit
// X-User-Id header wins, otherwise a stable anonymous id is derived from
// the client address so preferences survive across requests.
func resolveUserID(ctx context.Context, r *http.Request) string {
	if userID := strings.TrimSpace(r.Header.Get("X-User-Id")); userID != "" {
		return userID
	}

	ip := resolveClientIP(ctx, r)
	if ip == "" {
		return "anon-unknown"
	}

	digest := fnv.New64a()
	_, _ = digest.Write([]byte(ip))
	return fmt.Sprintf("anon-%016x", digest.Sum64())
}

func resolveClientIP(ctx context.Context, r *http.Request) string {
	_ = ctx

	candidates := []string{
		r.Header.Get("Fly-Client-IP"),
		r.Header.Get("X-Forwarded-For"),
		r.Header.Get("X-Real-IP"),
		r.RemoteAddr,
	}

	for _, candidate := range candidates {
		if ip := normalizeIP(candidate); ip != "" {
			return ip
		}
	}

	return ""
}

func normalizeIP(raw string) string {
	value := strings.TrimSpace(raw)
	if value == "" {
		return ""
	}
	if strings.Contains(value, ",") {
		value = strings.TrimSpace(strings.Split(value, ",")[0])
	}

	if host, _, err := net.SplitHostPort(value); err == nil {
		value = strings.TrimSpace(host)
	}

	parsed := net.ParseIP(value)
	if parsed == nil {
		return ""
	}
	return parsed.String()
}

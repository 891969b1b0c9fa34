package middleware

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"strings"

	"github.com/mssola/useragent"
)

// ClientMeta captures the disclosing client's device context. The disclosure
// log stamps this into entry metadata so compliance review can see from which
// kind of client a disclosure was made.
type ClientMeta struct {
	UserAgent   string
	Browser     string
	OS          string
	Platform    string
	Fingerprint string
}

type clientMetaKey struct{}

// GetClientMeta retrieves the client metadata from the context.
func GetClientMeta(ctx context.Context) (ClientMeta, bool) {
	meta, ok := ctx.Value(clientMetaKey{}).(ClientMeta)
	return meta, ok
}

// WithClientMeta injects client metadata into the context. Exported for tests.
func WithClientMeta(ctx context.Context, meta ClientMeta) context.Context {
	return context.WithValue(ctx, clientMetaKey{}, meta)
}

// ClientMetadata parses the User-Agent header and pre-computes a stable device
// fingerprint. IP addresses are deliberately excluded: too volatile to be a
// useful compliance signal.
func ClientMetadata(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.UserAgent()
		if raw == "" {
			next.ServeHTTP(w, r)
			return
		}

		ua := useragent.New(raw)
		browser, version := ua.Browser()
		majorVersion := "unknown"
		if version != "" {
			parts := strings.Split(version, ".")
			if len(parts) > 0 && parts[0] != "" {
				majorVersion = parts[0]
			}
		}

		os := strings.ToLower(strings.TrimSpace(ua.OS()))
		if os == "" {
			os = "unknown"
		}
		browser = strings.ToLower(strings.TrimSpace(browser))
		if browser == "" {
			browser = "unknown"
		}
		platform := "desktop"
		if ua.Mobile() {
			platform = "mobile"
		}

		data := fmt.Sprintf("%s|%s|%s|%s", browser, majorVersion, os, platform)
		hash := sha256.Sum256([]byte(data))

		meta := ClientMeta{
			UserAgent:   raw,
			Browser:     browser,
			OS:          os,
			Platform:    platform,
			Fingerprint: hex.EncodeToString(hash[:]),
		}
		next.ServeHTTP(w, r.WithContext(WithClientMeta(r.Context(), meta)))
	})
}

package middleware

import (
	"net/http"
)

// HeaderOptions configures SecurityHeaders.
type HeaderOptions struct {
	// HTTPS enables Strict-Transport-Security. Leave it off behind plain HTTP,
	// browsers would pin the host to a scheme it does not serve.
	HTTPS bool
	// CSP is the Content-Security-Policy value, no header when empty.
	CSP string
	// CrossOriginResources lets pages on other origins embed responses,
	// board images are loaded by a frontend served from elsewhere.
	CrossOriginResources bool
}

// SecurityHeaders sets the response headers every API and media response carries.
func SecurityHeaders(opts HeaderOptions) func(http.Handler) http.Handler {
	resourcePolicy := "same-origin"
	if opts.CrossOriginResources {
		resourcePolicy = "cross-origin"
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			headers := w.Header()

			// Clickjacking protection
			headers.Set("X-Frame-Options", "DENY")

			// Prevent MIME type sniffing, uploaded images are served as-is
			headers.Set("X-Content-Type-Options", "nosniff")

			// JSON responses never need a referrer
			headers.Set("Referrer-Policy", "no-referrer")

			// Disable unnecessary browser features
			headers.Set("Permissions-Policy", "camera=(), microphone=(), geolocation=(), payment=()")

			headers.Set("Cross-Origin-Resource-Policy", resourcePolicy)

			// Add CSP if provided
			if opts.CSP != "" {
				headers.Set("Content-Security-Policy", opts.CSP)
			}

			// HSTS - only when using HTTPS
			if opts.HTTPS {
				headers.Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
			}

			next.ServeHTTP(w, r)
		})
	}
}

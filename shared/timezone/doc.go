// Package timezone keeps all application timestamps in one configured
// location.
//
//	now := timezone.Now()                  // current time in the app timezone
//	s := timezone.Format(now, "2006-01-02")
//	t, err := timezone.Parse("2006-01-02", "2026-09-01")
//
// The location comes from the APP_TIMEZONE environment variable (standard
// IANA names such as "UTC" or "Asia/Jakarta") and is resolved when the
// package is first imported.
package timezone

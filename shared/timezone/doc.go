// Package timezone pins every timestamp the service produces to one configured location.
//
//	now := timezone.Now()                           // current time in the app timezone
//	in, err := timezone.ParseDate("2024-01-01")     // check-in date at local midnight
//	out, err := timezone.ParseDate("2024-01-03T14:00:00Z")
//	s := timezone.Format(in, time.DateOnly)
//
// The location comes from APP_TIMEZONE (IANA names such as "UTC" or "Europe/London")
// and is resolved when the package is imported; unknown names fall back to UTC.
package timezone

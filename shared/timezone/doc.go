// Package timezone resolves all wall-clock input against a single configured
// application timezone (APP_TIMEZONE). Booking date/time fields from intake
// requests are parsed here and stored UTC, so the local-to-UTC conversion is
// a function of configuration rather than of the server's ambient locale.
package timezone

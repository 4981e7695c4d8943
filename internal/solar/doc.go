// Package solar defines the sun-event boundary of daylight: civil dates,
// geographic positions, the Provider interface that yields sunrise and
// sunset instants, and the go-sunrise backed implementation used in
// production.
//
// A provider that cannot produce an event (polar day or night) returns a
// *NoSunEventError; callers treat it as fatal for the invocation.
package solar

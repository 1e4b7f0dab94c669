// Package matcher links a TV-broadcast announcement to one of the fixtures stored for the same day.
//
// There is no shared key between the provider's broadcast records and the stored fixtures, so every
// candidate is scored on team names, kickoff time and league, behind a hard gate on the calendar date.
// Every function here is pure: inputs are never mutated and no state survives a call, so callers may
// evaluate records in any order or in parallel.
package matcher

// Package viewmodel turns fetched detail payloads for classes, departments, subjects and faculty
// into the plain structures the admin show pages render.
//
// Everything here is a pure function of its input: no I/O, no retained state. Fetching,
// navigation, image delivery and markup belong to the callers.
package viewmodel

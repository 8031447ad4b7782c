// Package notification serves the single notification banner shown to users.
//
// The table is seeded out of band. Updates target the first row by id and
// never create one, so an empty table answers 404.
//
// By default every field of an update is required to be truthy, which means
// a banner cannot be hidden by sending "mostrar": false. WithAllowHide relaxes
// the flag to a presence check.
package notification

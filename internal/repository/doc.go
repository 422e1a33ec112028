// Package repository defines the data access interface for conversion
// run history.
//
// Each completed conversion is recorded as a Run so that past
// conversions can be listed and inspected later. The actual
// implementation is in the sqlite subpackage.
//
// # SQLite Implementation
//
// The sqlite implementation stores runs in a single table, serializing
// warning lists as JSON. The schema is created automatically on open.
package repository

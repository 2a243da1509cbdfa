// Package prefs stores small storefront preferences as key/value pairs.
//
// Values live in the 'preferences' table and are written with an upsert so
// a key always holds its latest value. The feature only loads when a
// database connection is configured.
//
// # HTTP Endpoints
//
//   - GET /prefs/:key : Returns the stored preference (404 when absent).
//   - PUT /prefs/:key : Stores {"value": "..."} under the key.
//   - DELETE /prefs/:key : Removes the stored preference.
package prefs

// Package theme stores the page theme preference.
//
// A preference is one of Automatic, DarkMode or LightMode, stored per key. A key that was
// never set, or that holds a value this version does not recognize, reads as Automatic.
//
// # Backends
//
// The store is selected with THEME_BACKEND:
//
//   - memory (default): a process-local map, lost on restart.
//   - database: the theme_preferences table via gorm (mysql or sqlite, see DATABASE_*).
//   - object: one text object per key under the configured prefix (default
//     preferences/) in the configured bucket (see STORAGE_*).
//
// # HTTP Endpoints
//
//   - GET /theme?key= : stored mode.
//   - PUT /theme : {"key", "mode"}.
//   - DELETE /theme?key= : forget the stored mode.
package theme

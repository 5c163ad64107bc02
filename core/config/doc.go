// Package config loads the toolbox service configuration.
//
// Each component owns its section type (server.Config, theme.Config, ...); this package
// only assembles them. A key is resolved from its environment variable first, then from
// an optional toolbox.yaml (or .json/.toml) in the given directory, then from the
// section's `default` struct tag. A .env file in the same directory is loaded into the
// environment beforehand.
//
// # Sections
//
//   - server: port, API key, body limit
//   - log: level and format
//   - hostenv: "my IP" lookup endpoint, timeout and cache TTL
//   - theme: preference backend (memory, database, object)
//   - database: MySQL/SQLite connection for the database backend
//   - storage: MinIO/S3 credentials, bucket and key prefix for the object backend
//
// Environment names are the upper-cased dotted key with dots replaced by underscores,
// so storage.use_ssl is STORAGE_USE_SSL.
package config

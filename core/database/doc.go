// Package database handles database connections.
//
// It provides a wrapper around GORM to configure MySQL or SQLite connections from the
// application's configuration. The theme feature uses it as one of its preference
// backends.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
package database

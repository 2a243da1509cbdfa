// Package database handles the MySQL connection for the preference store.
//
// It provides a wrapper around GORM (Go Object Relational Mapping) to
// properly configure MySQL connections based on the application's
// configuration.
//
// # Connect
//
// The Connect function establishes a connection to the database with sane
// pool limits and verifies it with a ping. The connection is optional: the
// catalog works without it, only the preference store is disabled.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Warn("preference store unavailable", zap.Error(err))
//	}
package database

// Package config provides configuration loading and defaults for projlens.
package config

// DefaultConfigDir is the default location for projlens configuration.
const DefaultConfigDir = "~/.config/projlens"

// DefaultDBName is the filename for the SQLite scan-history database.
const DefaultDBName = "projlens.db"

// DefaultSkipDirs are directory names excluded from project discovery.
var DefaultSkipDirs = []string{".git", "bin", "obj", "node_modules"}

// DefaultWorkers bounds parallel project-file extraction.
const DefaultWorkers = 8

// DefaultOutput holds the default output preferences.
var DefaultOutput = Output{Color: true}

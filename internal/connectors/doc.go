// Package connectors provides implementations of the DirectoryClient
// interface for directory services. Each connector knows how to fetch a
// ranked candidate pool from one specific directory.
package connectors

// Package store implements the read-only persistence layer of the countries
// API.
//
// It owns the database connection ([DB]), the SQL query builders and the
// [CountryRepository] that the service layer queries. PostgreSQL (driver
// "pgx") is the production backend; SQLite (driver "sqlite3") is supported
// for local development and tests.
package store

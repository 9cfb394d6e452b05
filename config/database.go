package config

import (
	"crypto/tls"
	"crypto/x509"
	"database/sql"
	"log"
	"os"
	"strings"

	mysql "github.com/go-sql-driver/mysql"
)

// DB is the shared database connection pool
var DB *sql.DB

// InitDB opens the MySQL connection pool and verifies it.
func InitDB(dsn string) error {
	// If the DSN requests tls=tidb, register a TLS config named "tidb"
	// (TiDB Cloud serverless requires it).
	if strings.Contains(dsn, "tls=tidb") {
		caPath := os.Getenv("TIDB_CA")
		if caPath == "" {
			caPath = "/etc/ssl/certs/ca-certificates.crt"
		}
		pool := x509.NewCertPool()
		if b, err := os.ReadFile(caPath); err == nil {
			if ok := pool.AppendCertsFromPEM(b); ok {
				mysql.RegisterTLSConfig("tidb", &tls.Config{RootCAs: pool})
			} else {
				log.Printf("warning: could not parse CA file %s, falling back to InsecureSkipVerify", caPath)
				mysql.RegisterTLSConfig("tidb", &tls.Config{InsecureSkipVerify: true})
			}
		} else {
			log.Printf("warning: could not read CA file %s: %v, falling back to InsecureSkipVerify", caPath, err)
			mysql.RegisterTLSConfig("tidb", &tls.Config{InsecureSkipVerify: true})
		}
	}

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return err
	}
	if err := db.Ping(); err != nil {
		return err
	}

	DB = db
	return nil
}

// EnsureTables creates the tables this service writes to. Idempotent.
func EnsureTables(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS orders (
			id INT AUTO_INCREMENT PRIMARY KEY,
			order_number VARCHAR(32) NOT NULL UNIQUE,
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) NOT NULL,
			phone VARCHAR(64) NOT NULL,
			transaction_value DOUBLE NOT NULL,
			collection_date VARCHAR(32) NOT NULL,
			collection_location VARCHAR(255) NOT NULL,
			items TEXT,
			payment_status VARCHAR(16) NOT NULL,
			payment_proof_ref VARCHAR(512),
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS community_runs (
			id VARCHAR(64) PRIMARY KEY,
			date DATE NOT NULL,
			location VARCHAR(255) NOT NULL
		)`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

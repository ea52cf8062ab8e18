package config

import (
	"fmt"
	"os"

	"github.com/go-sql-driver/mysql"
	"gopkg.in/yaml.v3"
)

// Database holds connection parameters for one MariaDB endpoint.
type Database struct {
	Host     string `yaml:"host"`
	Port     uint16 `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`

	// Destination-only mutual TLS material (DER encoded files).
	TLS *TLSConfig `yaml:"tls,omitempty"`
}

// TLSConfig points at DER-encoded client credentials and an optional root CA.
type TLSConfig struct {
	ClientCert string `yaml:"client_cert"`
	ClientKey  string `yaml:"client_key"`
	RootCA     string `yaml:"root_ca,omitempty"`
}

// File is the optional YAML configuration resolving database endpoints.
// Flag values override file values.
type File struct {
	Source      Database `yaml:"source"`
	Destination Database `yaml:"destination"`
}

// Load reads a YAML config file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &f, nil
}

// Defaults returns the conventional local development endpoint.
func Defaults() Database {
	return Database{
		Host:     "localhost",
		Port:     3306,
		User:     "root",
		Password: "password",
		Database: "whirlpool",
	}
}

// Merge overlays non-zero flag values onto d.
func (d Database) Merge(host string, port uint16, user, password, database string) Database {
	if host != "" {
		d.Host = host
	}
	if port != 0 {
		d.Port = port
	}
	if user != "" {
		d.User = user
	}
	if password != "" {
		d.Password = password
	}
	if database != "" {
		d.Database = database
	}
	return d
}

// DSN builds the go-sql-driver DSN. interpolateParams avoids a round trip per
// statement preparation; parseTime is off because all times are unixtimes.
func (d Database) DSN() string {
	cfg := mysql.NewConfig()
	cfg.Net = "tcp"
	cfg.Addr = fmt.Sprintf("%s:%d", d.Host, d.Port)
	cfg.User = d.User
	cfg.Passwd = d.Password
	cfg.DBName = d.Database
	cfg.InterpolateParams = true
	if d.TLS != nil {
		cfg.TLSConfig = destTLSName
	}
	return cfg.FormatDSN()
}

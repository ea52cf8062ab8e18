package config

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"

	"github.com/go-sql-driver/mysql"
)

// destTLSName is the driver-side registration key for the destination's
// mutual TLS configuration.
const destTLSName = "distributor-dest"

// RegisterDestTLS loads DER-encoded client credentials (and an optional DER
// root CA) and registers them with the mysql driver under the name DSN()
// references. Must be called before opening the destination connection.
func RegisterDestTLS(c *TLSConfig) error {
	certDER, err := os.ReadFile(c.ClientCert)
	if err != nil {
		return fmt.Errorf("failed to read client cert: %w", err)
	}
	keyDER, err := os.ReadFile(c.ClientKey)
	if err != nil {
		return fmt.Errorf("failed to read client key: %w", err)
	}

	key, err := x509.ParsePKCS8PrivateKey(keyDER)
	if err != nil {
		return fmt.Errorf("failed to parse client key: %w", err)
	}

	cert := tls.Certificate{
		Certificate: [][]byte{certDER},
		PrivateKey:  key,
	}

	tlsCfg := &tls.Config{
		Certificates: []tls.Certificate{cert},
		MinVersion:   tls.VersionTLS12,
	}

	if c.RootCA != "" {
		caDER, err := os.ReadFile(c.RootCA)
		if err != nil {
			return fmt.Errorf("failed to read root CA: %w", err)
		}
		ca, err := x509.ParseCertificate(caDER)
		if err != nil {
			return fmt.Errorf("failed to parse root CA: %w", err)
		}
		pool := x509.NewCertPool()
		pool.AddCert(ca)
		tlsCfg.RootCAs = pool
	}

	return mysql.RegisterTLSConfig(destTLSName, tlsCfg)
}

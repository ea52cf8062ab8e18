package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sedimentology.yaml")
	content := `
source:
  host: db.internal
  port: 3307
  user: sedimentology
  password: secret
  database: whirlpool
destination:
  host: mirror.example.com
  port: 3306
  user: mirror
  password: secret2
  database: whirlpool
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	f, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "db.internal", f.Source.Host)
	assert.Equal(t, uint16(3307), f.Source.Port)
	assert.Equal(t, "mirror.example.com", f.Destination.Host)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/sedimentology.yaml")
	assert.Error(t, err)
}

func TestMerge(t *testing.T) {
	d := Defaults()
	merged := d.Merge("db1", 0, "", "pw", "")
	assert.Equal(t, "db1", merged.Host)
	assert.Equal(t, uint16(3306), merged.Port)
	assert.Equal(t, "root", merged.User)
	assert.Equal(t, "pw", merged.Password)
	assert.Equal(t, "whirlpool", merged.Database)
}

func TestDSN(t *testing.T) {
	d := Database{
		Host:     "localhost",
		Port:     3306,
		User:     "root",
		Password: "password",
		Database: "whirlpool",
	}
	dsn := d.DSN()
	assert.Contains(t, dsn, "root:password@tcp(localhost:3306)/whirlpool")
	assert.Contains(t, dsn, "interpolateParams=true")
	assert.NotContains(t, dsn, "tls=")
}

func TestDSNWithTLS(t *testing.T) {
	d := Database{
		Host:     "mirror.example.com",
		Port:     3306,
		User:     "mirror",
		Password: "pw",
		Database: "whirlpool",
		TLS:      &TLSConfig{ClientCert: "c.der", ClientKey: "k.der"},
	}
	assert.Contains(t, d.DSN(), "tls=distributor-dest")
}

// Package tlsutil builds client TLS configurations for broker connections.
package tlsutil

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"
)

// Options describe the TLS material to load
type Options struct {
	CACertPath         string `json:"ca_cert_path" yaml:"ca_cert_path"`
	ServerName         string `json:"server_name" yaml:"server_name"`
	InsecureSkipVerify bool   `json:"insecure_skip_verify" yaml:"insecure_skip_verify"`
}

// IsZero reports whether no TLS option is set
func (o Options) IsZero() bool {
	return o == Options{}
}

// ClientConfig creates a client TLS configuration from options
func ClientConfig(options Options) (*tls.Config, error) {
	tlsConfig := &tls.Config{
		ServerName:         options.ServerName,
		InsecureSkipVerify: options.InsecureSkipVerify,
		MinVersion:         tls.VersionTLS12,
	}

	if options.CACertPath != "" {
		pool, err := LoadCertPool(options.CACertPath)
		if err != nil {
			return nil, err
		}
		tlsConfig.RootCAs = pool
	}

	return tlsConfig, nil
}

// LoadCertPool returns the system roots extended with the broker CA
// certificates in caPath
func LoadCertPool(caPath string) (*x509.CertPool, error) {
	pem, err := os.ReadFile(caPath)
	if err != nil {
		return nil, fmt.Errorf("reading broker CA file: %w", err)
	}

	pool, err := x509.SystemCertPool()
	if err != nil || pool == nil {
		pool = x509.NewCertPool()
	}
	if !pool.AppendCertsFromPEM(pem) {
		return nil, fmt.Errorf("broker CA file %q holds no PEM certificates", caPath)
	}
	return pool, nil
}

package params

import (
	"crypto/tls"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

const defaultLocale = "en_US"

// URI returns p as an amqp091 URI. The scheme is amqps when secure is set;
// the port is taken from p either way.
//
// amqp091 renders the empty vhost as a URL without a path, which parses
// back as the default vhost "/". Pass Config alongside the URL, or check
// p.Vhost, when the empty vhost matters.
func (p Parameters) URI(secure bool) amqp.URI {
	scheme := SchemeAMQP
	if secure {
		scheme = SchemeAMQPS
	}
	return amqp.URI{
		Scheme:   scheme,
		Host:     p.Hostname,
		Port:     p.Port,
		Username: p.Username,
		Password: p.Password,
		Vhost:    p.Vhost,
	}
}

// Config returns an amqp091 dial configuration for p. tlsConfig is passed
// through as is and may be nil. Heartbeat and FrameSize are left at zero,
// which lets the broker choose, unless p carries them.
//
// amqp091 reads a zero Heartbeat or FrameSize as "use the broker's value",
// so an explicit 0 (heartbeats disabled) cannot be expressed. Such fields
// are reported by IgnoredZeroSettings.
func (p Parameters) Config(tlsConfig *tls.Config, connectionName string) amqp.Config {
	cfg := amqp.Config{
		SASL: []amqp.Authentication{
			&amqp.PlainAuth{Username: p.Username, Password: p.Password},
		},
		Vhost:           p.Vhost,
		TLSClientConfig: tlsConfig,
		Properties:      amqp.Table{},
		Locale:          defaultLocale,
	}
	if p.HeartbeatInterval != nil {
		cfg.Heartbeat = time.Duration(*p.HeartbeatInterval) * time.Second
	}
	if p.FrameMax != nil {
		cfg.FrameSize = *p.FrameMax
	}
	if connectionName != "" {
		cfg.Properties["connection_name"] = connectionName
	}
	return cfg
}

// IgnoredZeroSettings returns the names of fields explicitly set to 0 that
// amqp091 replaces with the broker's suggestion
func (p Parameters) IgnoredZeroSettings() []string {
	var names []string
	if p.HeartbeatInterval != nil && *p.HeartbeatInterval == 0 {
		names = append(names, heartbeatParam)
	}
	if p.FrameMax != nil && *p.FrameMax == 0 {
		names = append(names, frameMaxParam)
	}
	return names
}

// NewConnectionName returns a unique connection name for the broker's
// management UI
func NewConnectionName(prefix string) string {
	if prefix == "" {
		return uuid.NewString()
	}
	return prefix + "-" + uuid.NewString()
}

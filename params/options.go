package params

// LogLevel controls client side frame logging
type LogLevel string

const (
	// LogLevelDebug prints sent and received frames
	LogLevelDebug LogLevel = "debug"
	// LogLevelNone disables client logging
	LogLevelNone LogLevel = "none"
)

// Valid reports whether l is a known log level
func (l LogLevel) Valid() bool {
	return l == LogLevelDebug || l == LogLevelNone
}

// Options for connecting to an AMQP broker. Every field is optional; a nil
// field takes its default during Resolve.
type Options struct {
	// Hostname or literal IP address of the broker
	Hostname *string `json:"hostname,omitempty" yaml:"hostname,omitempty"`
	// Port is the TCP port of the broker
	Port *int `json:"port,omitempty" yaml:"port,omitempty"`
	// Username for authenticating towards the broker
	Username *string `json:"username,omitempty" yaml:"username,omitempty"`
	// Password for authenticating towards the broker
	Password *string `json:"password,omitempty" yaml:"password,omitempty"`
	// Vhost is the AMQP virtual host
	Vhost *string `json:"vhost,omitempty" yaml:"vhost,omitempty"`
	// HeartbeatInterval in seconds. Nil uses the interval suggested by the
	// broker, 0 disables heartbeats.
	HeartbeatInterval *int `json:"heartbeat_interval,omitempty" yaml:"heartbeat_interval,omitempty"`
	// FrameMax is the maximum frame size in bytes, negotiated with the broker
	FrameMax *int `json:"frame_max,omitempty" yaml:"frame_max,omitempty"`
	// LogLevel is unstable; "debug" prints frames at byte level
	LogLevel *LogLevel `json:"loglevel,omitempty" yaml:"loglevel,omitempty"`
}

// IsZero reports whether no field of o is set
func (o Options) IsZero() bool {
	return o == Options{}
}

// Parameters is the fully resolved connection parameter set
type Parameters struct {
	Hostname          string   `json:"hostname"`
	Port              int      `json:"port"`
	Username          string   `json:"username"`
	Password          string   `json:"password"`
	Vhost             string   `json:"vhost"`
	HeartbeatInterval *int     `json:"heartbeat_interval,omitempty"`
	FrameMax          *int     `json:"frame_max,omitempty"`
	LogLevel          LogLevel `json:"loglevel"`
}

// Options returns p as a fully populated Options record. Resolving the
// result yields p again.
func (p Parameters) Options() Options {
	return Options{
		Hostname:          Ptr(p.Hostname),
		Port:              Ptr(p.Port),
		Username:          Ptr(p.Username),
		Password:          Ptr(p.Password),
		Vhost:             Ptr(p.Vhost),
		HeartbeatInterval: clone(p.HeartbeatInterval),
		FrameMax:          clone(p.FrameMax),
		LogLevel:          Ptr(p.LogLevel),
	}
}

// Redacted returns a copy of p with the password masked
func (p Parameters) Redacted() Parameters {
	if p.Password != "" {
		p.Password = redactedPassword
	}
	return p
}

const redactedPassword = "xxxxx"

// Ptr returns a pointer to v, for building Options literals
func Ptr[T any](v T) *T {
	return &v
}

func clone[T any](v *T) *T {
	if v == nil {
		return nil
	}
	return Ptr(*v)
}

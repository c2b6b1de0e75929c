package params

// Input is either a URL or an Options record
type Input interface {
	isInput()
}

// URL is a connection URI to be parsed by ParseURL
type URL string

func (URL) isInput()     {}
func (Options) isInput() {}

// defaults holds the value of every field left unset by the caller.
// HeartbeatInterval and FrameMax have no default: leaving them nil lets the
// broker choose.
var defaults = Parameters{
	Hostname: "localhost",
	Port:     DefaultPort,
	Username: "guest",
	Password: "guest",
	Vhost:    "/",
	LogLevel: LogLevelNone,
}

// Defaults returns the parameters resolved from empty input
func Defaults() Parameters {
	return defaults
}

// Resolve normalizes in into a complete parameter set. A URL is parsed
// first and any parse error is returned as is; Options are taken verbatim
// without validation. A nil Input resolves to Defaults().
func Resolve(in Input) (Parameters, error) {
	var base Options
	switch v := in.(type) {
	case nil:
	case URL:
		opts, err := ParseURL(string(v))
		if err != nil {
			return Parameters{}, err
		}
		base = opts
	case Options:
		base = v
	}
	return merge(base), nil
}

// ResolveURL resolves a connection URI
func ResolveURL(raw string) (Parameters, error) {
	return Resolve(URL(raw))
}

// ResolveOptions resolves a structured record; it cannot fail
func ResolveOptions(opts Options) Parameters {
	return merge(opts)
}

func merge(base Options) Parameters {
	return Parameters{
		Hostname:          valueOr(base.Hostname, defaults.Hostname),
		Port:              valueOr(base.Port, defaults.Port),
		Username:          valueOr(base.Username, defaults.Username),
		Password:          valueOr(base.Password, defaults.Password),
		Vhost:             valueOr(base.Vhost, defaults.Vhost),
		HeartbeatInterval: clone(base.HeartbeatInterval),
		FrameMax:          clone(base.FrameMax),
		LogLevel:          valueOr(base.LogLevel, defaults.LogLevel),
	}
}

func valueOr[T any](v *T, def T) T {
	if v == nil {
		return def
	}
	return *v
}

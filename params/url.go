package params

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/BranchIntl/amqpparams/errors"
)

// Recognized URI schemes
const (
	SchemeAMQP  = "amqp"
	SchemeAMQPS = "amqps"
)

// Default broker ports per scheme
const (
	DefaultPort       = 5672
	DefaultSecurePort = 5671
)

// Query parameter names
const (
	heartbeatParam = "heartbeat"
	frameMaxParam  = "frame_max"
)

var schemePorts = map[string]int{
	SchemeAMQP:  DefaultPort,
	SchemeAMQPS: DefaultSecurePort,
}

// ParseURL parses a connection URI of the form
//
//	amqp[s]://[user[:password]@]host[:port][/vhost][?heartbeat=N&frame_max=M]
//
// into a partial Options record. Credentials default to "guest" and the
// port to the scheme's default; heartbeat and frame_max stay unset unless
// present in the query.
func ParseURL(raw string) (Options, error) {
	uri, err := url.Parse(raw)
	if err != nil {
		// url.Error repeats the raw string, credentials included
		if urlErr, ok := err.(*url.Error); ok {
			err = urlErr.Err
		}
		return Options{}, errors.NewMalformedInputError(raw, err)
	}
	if uri.Scheme == "" {
		return Options{}, errors.NewMalformedInputError(raw, fmt.Errorf("missing scheme"))
	}

	defaultPort, ok := schemePorts[uri.Scheme]
	if !ok {
		return Options{}, errors.NewUnsupportedProtocolError(raw, uri.Scheme)
	}
	if uri.Opaque != "" {
		return Options{}, errors.NewMalformedInputError(raw, fmt.Errorf("missing authority"))
	}

	port, err := resolvePort(uri, defaultPort)
	if err != nil {
		return Options{}, errors.NewMalformedInputError(raw, err)
	}

	opts := Options{
		Port:     Ptr(port),
		Username: Ptr("guest"),
		Password: Ptr("guest"),
		Vhost:    Ptr(resolveVhost(uri)),
	}
	if host := uri.Hostname(); host != "" {
		opts.Hostname = Ptr(host)
	}
	if uri.User != nil {
		if username := uri.User.Username(); username != "" {
			opts.Username = Ptr(username)
		}
		if password, _ := uri.User.Password(); password != "" {
			opts.Password = Ptr(password)
		}
	}

	query := uri.Query()
	if opts.HeartbeatInterval, err = intParam(query, heartbeatParam); err != nil {
		return Options{}, err
	}
	if opts.FrameMax, err = intParam(query, frameMaxParam); err != nil {
		return Options{}, err
	}

	return opts, nil
}

func resolvePort(uri *url.URL, defaultPort int) (int, error) {
	raw := uri.Port()
	if raw == "" {
		return defaultPort, nil
	}
	port, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid port %q: %w", raw, err)
	}
	if port < 1 || port > 65535 {
		return 0, fmt.Errorf("port %d out of range", port)
	}
	return port, nil
}

// resolveVhost strips the leading separator from the already decoded path.
// An empty path means the default vhost, a bare "/" the empty vhost.
func resolveVhost(uri *url.URL) string {
	if len(uri.Path) == 0 {
		return "/"
	}
	return strings.TrimPrefix(uri.Path, "/")
}

func intParam(query url.Values, name string) (*int, error) {
	raw := query.Get(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, errors.NewParameterError(name, raw, err)
	}
	if v < 0 {
		return nil, errors.NewParameterError(name, raw, fmt.Errorf("must not be negative"))
	}
	return &v, nil
}

package encoder

import (
	"fmt"
	"strings"

	"github.com/AnyUserName/imgopt/internal/policy"
)

// Registry holds the available encoder for each output format.
type Registry struct {
	encoders map[policy.Format]Encoder
}

// NewRegistry creates a registry, probing the external encoders for availability.
func NewRegistry() *Registry {
	return NewRegistryWith(&WebPEncoder{}, &AVIFEncoder{})
}

// NewRegistryWith creates a registry from the given encoders. Only available
// ones are registered; a later encoder for the same format wins.
func NewRegistryWith(encs ...Encoder) *Registry {
	r := &Registry{
		encoders: make(map[policy.Format]Encoder),
	}
	for _, enc := range encs {
		if enc.Available() {
			r.encoders[enc.Format()] = enc
		}
	}
	return r
}

// Get returns an encoder for the given format, or nil if unavailable.
func (r *Registry) Get(format policy.Format) Encoder {
	return r.encoders[policy.Format(strings.ToLower(string(format)))]
}

// Available returns all available format names in output order.
func (r *Registry) Available() []string {
	var result []string
	for _, f := range policy.Formats {
		if _, ok := r.encoders[f]; ok {
			result = append(result, string(f))
		}
	}
	return result
}

// Missing returns the output formats that have no encoder.
func (r *Registry) Missing() []string {
	var result []string
	for _, f := range policy.Formats {
		if _, ok := r.encoders[f]; !ok {
			result = append(result, string(f))
		}
	}
	return result
}

// String returns a summary of available encoders.
func (r *Registry) String() string {
	avail := r.Available()
	if len(avail) == 0 {
		return "no encoders available"
	}
	return fmt.Sprintf("encoders: %s", strings.Join(avail, ", "))
}

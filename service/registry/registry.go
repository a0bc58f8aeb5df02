package registry

import (
	"fmt"
	"sort"

	"github.com/viant/pixelterm/model/types"
)

// Group lists the verbs of one service, in registration order
type Group struct {
	Service    string
	Signatures types.Signatures
}

type entry struct {
	service   string
	signature types.Signature
	method    types.Executable
}

// Registry maps verbs to handlers; it is built once and never mutated
type Registry struct {
	entries map[string]*entry
	groups  []*Group
}

// Lookup returns handler and signature for a verb
func (r *Registry) Lookup(verb string) (types.Executable, *types.Signature, error) {
	e, ok := r.entries[verb]
	if !ok {
		return nil, nil, types.NewUnknownCommandError(verb)
	}
	sig := e.signature
	return e.method, &sig, nil
}

// ServiceOf returns the name of the service defining verb
func (r *Registry) ServiceOf(verb string) string {
	if e, ok := r.entries[verb]; ok {
		return e.service
	}
	return ""
}

// Has returns true if verb is registered
func (r *Registry) Has(verb string) bool {
	_, ok := r.entries[verb]
	return ok
}

// Verbs returns sorted registered verbs
func (r *Registry) Verbs() []string {
	var ret = make([]string, 0, len(r.entries))
	for verb := range r.entries {
		ret = append(ret, verb)
	}
	sort.Strings(ret)
	return ret
}

// Groups returns verb signatures grouped by service, in registration order
func (r *Registry) Groups() []*Group {
	var ret = make([]*Group, len(r.groups))
	for i, g := range r.groups {
		ret[i] = &Group{Service: g.Service, Signatures: append(types.Signatures{}, g.Signatures...)}
	}
	return ret
}

// New creates a registry from services; a verb defined twice is an error
func New(services ...types.Service) (*Registry, error) {
	ret := &Registry{entries: make(map[string]*entry)}
	for _, service := range services {
		if service == nil {
			continue
		}
		group := &Group{Service: service.Name()}
		for _, signature := range service.Methods() {
			if prev, ok := ret.entries[signature.Name]; ok {
				return nil, fmt.Errorf("%w (already defined by %v)", types.NewDuplicateVerbError(signature.Name, service.Name()), prev.service)
			}
			method, err := service.Method(signature.Name)
			if err != nil {
				return nil, fmt.Errorf("failed to register %v.%v: %w", service.Name(), signature.Name, err)
			}
			ret.entries[signature.Name] = &entry{service: service.Name(), signature: signature, method: method}
			group.Signatures = append(group.Signatures, signature)
		}
		ret.groups = append(ret.groups, group)
	}
	return ret, nil
}

package wm

import (
	"sort"
	"sync"

	"github.com/srlehn/riv/internal/consts"
	"github.com/srlehn/riv/internal/errors"
)

var (
	backendsMu         sync.RWMutex
	backendsRegistered []Backend
)

// backendsPriorityOrdered is the order of automatic selection. Backends not
// listed follow in registration order.
var backendsPriorityOrdered = []string{
	consts.BackendGLFW,
	consts.BackendX11,
	consts.BackendFramebuffer,
}

// Register makes backends available for selection. A backend with the name
// of an already registered one replaces it.
func Register(backends ...Backend) {
	backendsMu.Lock()
	defer backendsMu.Unlock()
Outer:
	for _, b := range backends {
		if b == nil {
			continue
		}
		for i, reg := range backendsRegistered {
			if reg.Name() == b.Name() {
				backendsRegistered[i] = b
				continue Outer
			}
		}
		backendsRegistered = append(backendsRegistered, b)
	}
}

// ByName returns the registered backend or nil.
func ByName(name string) Backend {
	backendsMu.RLock()
	defer backendsMu.RUnlock()
	for _, b := range backendsRegistered {
		if b.Name() == name {
			return b
		}
	}
	return nil
}

// Names returns the sorted names of the registered backends.
func Names() []string {
	backendsMu.RLock()
	defer backendsMu.RUnlock()
	names := make([]string, 0, len(backendsRegistered))
	for _, b := range backendsRegistered {
		names = append(names, b.Name())
	}
	sort.Strings(names)
	return names
}

// Select returns the named backend, or with an empty name the first
// available one in priority order. lowPower prefers backends presenting
// without a GPU context.
func Select(name string, lowPower bool) (Backend, error) {
	if len(name) > 0 {
		b := ByName(name)
		if b == nil {
			return nil, errors.Kind(consts.ErrPresentationInit, errors.Errorf(`unknown window backend %q`, name))
		}
		if !b.Available() {
			return nil, errors.Kind(consts.ErrPresentationInit, errors.Errorf(`window backend %q not available`, name))
		}
		return b, nil
	}
	var candidates []Backend
	for _, b := range prioritized() {
		if b.Available() {
			candidates = append(candidates, b)
		}
	}
	if len(candidates) == 0 {
		return nil, errors.Kind(consts.ErrPresentationInit, errors.New(`no usable window backend`))
	}
	if lowPower {
		for _, b := range candidates {
			if b.LowPower() {
				return b, nil
			}
		}
	}
	return candidates[0], nil
}

func prioritized() []Backend {
	backendsMu.RLock()
	defer backendsMu.RUnlock()
	rank := func(b Backend) int {
		for i, name := range backendsPriorityOrdered {
			if b.Name() == name {
				return i
			}
		}
		return len(backendsPriorityOrdered)
	}
	ret := make([]Backend, len(backendsRegistered))
	copy(ret, backendsRegistered)
	sort.SliceStable(ret, func(i, j int) bool { return rank(ret[i]) < rank(ret[j]) })
	return ret
}

package internal

import (
	"reflect"
	"sync"

	"github.com/srlehn/riv/internal/errors"
)

// Closer releases registered resources in reverse order of registration.
type Closer interface {
	Close() error
	OnClose(onClose func() error)
	AddClosers(closers ...interface{ Close() error })
}

var _ Closer = (*lifoCloser)(nil)

type lifoCloser struct {
	mu           sync.Mutex
	onCloseFuncs []func() error
	initObjs     map[initObjKey]struct{}
}

type initObjKey struct {
	p uintptr
	t string
}

func NewCloser() Closer { return &lifoCloser{} }

// Close runs the registered functions once, last registered first.
func (c *lifoCloser) Close() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	funcs := c.onCloseFuncs
	c.onCloseFuncs = nil
	c.initObjs = nil
	c.mu.Unlock()

	var errs []error
	for i := len(funcs) - 1; i > -1; i-- {
		if onCloseFunc := funcs[i]; onCloseFunc != nil {
			if err := onCloseFunc(); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}

func (c *lifoCloser) OnClose(onClose func() error) {
	if c == nil || onClose == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onCloseFuncs = append(c.onCloseFuncs, onClose)
}

// AddClosers registers the Close methods of closers. Adding the same object
// twice closes it once.
func (c *lifoCloser) AddClosers(closers ...interface{ Close() error }) {
	if c == nil || len(closers) == 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.initObjs == nil {
		c.initObjs = make(map[initObjKey]struct{})
	}
	for _, cl := range closers {
		if cl == nil {
			continue
		}
		v := reflect.ValueOf(cl)
		if v.Kind() != reflect.Pointer {
			// values can't be deduplicated
			c.onCloseFuncs = append(c.onCloseFuncs, cl.Close)
			continue
		}
		key := initObjKey{p: v.Pointer(), t: v.Type().String()}
		if _, alreadyAdded := c.initObjs[key]; alreadyAdded {
			continue
		}
		c.initObjs[key] = struct{}{}
		c.onCloseFuncs = append(c.onCloseFuncs, func() error {
			if err := cl.Close(); err != nil {
				return errors.New(err)
			}
			return nil
		})
	}
}

////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file                                                               //
////////////////////////////////////////////////////////////////////////////////

package emoji

import (
	"sync"

	"github.com/golang-collections/collections/set"
	jww "github.com/spf13/jwalterweatherman"
)

// Event describes one completed re-resolution: the emoji set it was
// resolved for and the epoch the new emote table published at.
type Event struct {
	Set   string
	Epoch uint64
}

// Listener receives re-resolution events so hosts can invalidate cached
// render state when the emoji set changes. Hear is always called in its
// own goroutine and may be called multiple times simultaneously.
type Listener interface {
	Hear(e Event)
	// Name returns a name, used for debugging.
	Name() string
}

// ListenerFunc is the function signature for listening via RegisterFunc.
type ListenerFunc func(e Event)

// ListenerID is returned on registration and is used to unregister the
// listener later.
type ListenerID struct {
	listener Listener
}

// Name returns the name of the underlying listener.
func (lid ListenerID) Name() string {
	return lid.listener.Name()
}

// funcListener adheres the Listener interface to a bare function.
type funcListener struct {
	listener ListenerFunc
	name     string
}

func newFuncListener(listener ListenerFunc, name string) *funcListener {
	return &funcListener{listener: listener, name: name}
}

func (fl *funcListener) Hear(e Event) {
	fl.listener(e)
}

func (fl *funcListener) Name() string {
	return fl.name
}

// chanListener adheres the Listener interface to a channel. Sends do not
// block: if the channel is full the event is dropped with a warning.
type chanListener struct {
	listener chan Event
	name     string
}

func newChanListener(listener chan Event, name string) *chanListener {
	return &chanListener{listener: listener, name: name}
}

func (cl *chanListener) Hear(e Event) {
	select {
	case cl.listener <- e:
	default:
		jww.WARN.Printf("Listener %s failed, channel full", cl.name)
	}
}

func (cl *chanListener) Name() string {
	return cl.name
}

// listenerGroup is the registry of re-resolution listeners.
type listenerGroup struct {
	listeners *set.Set
	mux       sync.RWMutex
}

func newListenerGroup() *listenerGroup {
	return &listenerGroup{listeners: set.New()}
}

// speak notifies every registered listener of the event, each in its own
// goroutine so a slow listener cannot stall a resolution.
func (lg *listenerGroup) speak(e Event) {
	lg.mux.RLock()
	defer lg.mux.RUnlock()

	lg.listeners.Do(func(i interface{}) {
		go i.(Listener).Hear(e)
	})
}

// RegisterListener registers a listener for re-resolution events. Returns
// the ID of the new listener; keep it around to delete the listener later.
func (m *Manager) RegisterListener(newListener Listener) ListenerID {
	if newListener == nil {
		jww.FATAL.Panicf("cannot register nil listener")
	}

	m.listeners.mux.Lock()
	m.listeners.listeners.Insert(newListener)
	m.listeners.mux.Unlock()

	return ListenerID{listener: newListener}
}

// RegisterFunc registers a function as a re-resolution listener under the
// given debug name. Returns the ID of the new listener.
func (m *Manager) RegisterFunc(name string, newListener ListenerFunc) ListenerID {
	if newListener == nil {
		jww.FATAL.Panicf(
			"cannot register function listener %q with nil func", name)
	}
	return m.RegisterListener(newFuncListener(newListener, name))
}

// RegisterChannel registers a channel as a re-resolution listener under
// the given debug name. Events are dropped if the channel is full. Returns
// the ID of the new listener.
func (m *Manager) RegisterChannel(name string, newListener chan Event) ListenerID {
	if newListener == nil {
		jww.FATAL.Panicf(
			"cannot register channel listener %q with nil channel", name)
	}
	return m.RegisterListener(newChanListener(newListener, name))
}

// Unregister removes the listener from the registry. It no longer receives
// events once this returns. The ListenerID must not be used afterward.
func (m *Manager) Unregister(lid ListenerID) {
	m.listeners.mux.Lock()
	m.listeners.listeners.Remove(lid.listener)
	m.listeners.mux.Unlock()
}

////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file                                                               //
////////////////////////////////////////////////////////////////////////////////

package emoji

import (
	"sync/atomic"

	jww "github.com/spf13/jwalterweatherman"

	"gitlab.com/elixxir/emoji/emote"
)

// resolvedTable is one complete resolution epoch: every record's emote for
// a single emoji set preference, indexed by record position. Tables are
// immutable once published. Readers load the current table once per
// operation and keep a consistent view even while a new preference is
// being resolved.
type resolvedTable struct {
	// set is the preference this table was resolved for, verbatim.
	set string

	// epoch is the resolution counter value this table published at.
	epoch uint64

	emotes []*emote.Emote
}

// SetPreferredSet re-resolves every record against the named emoji set
// ("Apple", "Google", "Twitter", or "Facebook") and atomically publishes
// the new emote table. Names that do not match a vendor are accepted and
// resolve everything to the default vendor. The host's settings layer
// calls this on every preference change; in-flight scans keep the table
// they started with.
func (m *Manager) SetPreferredSet(set string) {
	m.resolveMux.Lock()
	defer m.resolveMux.Unlock()
	m.resolveAll(set)
}

// resolveAll builds and publishes the emote table for the given set and
// notifies listeners. Callers other than the constructor must hold
// resolveMux.
func (m *Manager) resolveAll(set string) {
	preferred, known := emote.ParseVendor(set)
	if !known {
		jww.DEBUG.Printf("Emoji set %q does not name a vendor; resolving "+
			"all records to %s", set, emote.DefaultVendor)
	}

	table := &resolvedTable{
		set:    set,
		epoch:  atomic.AddUint64(&m.epoch, 1),
		emotes: make([]*emote.Emote, len(m.records)),
	}

	for i, rec := range m.records {
		vendor := emote.DefaultVendor
		if known && rec.Capabilities.Has(preferred) {
			vendor = preferred
		}

		table.emotes[i] = &emote.Emote{
			Name:    rec.Glyph,
			URL:     m.prefixes.URL(vendor, rec.Unified),
			Tooltip: ":" + rec.ShortCodes[0] + ":\nEmoji",
			Scale:   emote.DefaultScale,
		}
	}

	m.resolved.Store(table)
	jww.INFO.Printf("Resolved %d emoji records for set %q (epoch %d)",
		len(table.emotes), set, table.epoch)

	m.listeners.speak(Event{Set: set, Epoch: table.epoch})
}

// table returns the current resolved table.
func (m *Manager) table() *resolvedTable {
	return m.resolved.Load().(*resolvedTable)
}

// ResolvedEmote returns the record's emote under the current emoji set.
func (m *Manager) ResolvedEmote(rec *Record) *emote.Emote {
	if rec == nil {
		return nil
	}
	table := m.table()
	if rec.idx >= len(table.emotes) {
		return nil
	}
	return table.emotes[rec.idx]
}

// PreferredSet returns the emoji set name the current emote table was
// resolved for.
func (m *Manager) PreferredSet() string {
	return m.table().set
}

// Epoch returns the resolution counter of the current emote table. It
// starts at 1 for the table built during construction and increments with
// every SetPreferredSet call.
func (m *Manager) Epoch() uint64 {
	return m.table().epoch
}

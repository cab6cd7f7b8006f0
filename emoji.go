////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file                                                               //
////////////////////////////////////////////////////////////////////////////////

// Package emoji recognizes Unicode emoji in chat text and resolves each to
// a vendor image reference. It builds its indexes once from the bundled
// emoji-data table and serves message scanning, :short_code: substitution,
// and autocompletion from memory. The only runtime mutation is switching
// the preferred emoji set, which atomically republishes the resolved emote
// table; everything else is read-only after construction.
package emoji

import (
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"unicode/utf8"

	jww "github.com/spf13/jwalterweatherman"

	"gitlab.com/elixxir/emoji/dataset"
	"gitlab.com/elixxir/emoji/emote"
)

// Manager owns the parsed emoji records and the lookup indexes derived
// from them. All methods are safe for concurrent use.
type Manager struct {
	// records lists every loaded record, tone variants included, in load
	// order. A record's position here is its index into the resolved
	// emote table.
	records []*Record

	// byFirstRune indexes records by the first codepoint of their glyph.
	// Each candidate list is sorted by descending glyph length so the
	// scanner's first hit is the longest match.
	byFirstRune map[rune][]*Record

	// byShortCode maps lowercase short codes to their records.
	byShortCode map[string]*Record

	// byUnified maps unified codes, verbatim from the dataset, to their
	// records. Later entries win on collision.
	byUnified map[string]*Record

	// shortCodes lists every short code in ascending order, for
	// autocompletion.
	shortCodes []string

	// prefixes maps vendors to image URL prefixes. Fixed at construction.
	prefixes emote.PrefixTable

	// resolved holds the current *resolvedTable. Readers load it once per
	// operation; writers build a full replacement and swap it in.
	resolved atomic.Value

	// resolveMux serializes re-resolutions so epochs publish in order.
	resolveMux sync.Mutex

	// epoch counts completed resolutions, starting at 1 for the table
	// built during construction.
	epoch uint64

	listeners *listenerGroup
}

// NewManager builds the engine from the bundled emoji-data table and
// resolves the initial emote table per the given parameters. A failure to
// parse the bundled table is reported and leaves the engine running with
// zero records; no operation on the returned Manager can fail.
func NewManager(params Params) *Manager {
	entries, err := dataset.Load()
	if err != nil {
		jww.ERROR.Printf("Failed to load bundled emoji dataset: %+v", err)
	}
	return NewManagerFromEntries(entries, params)
}

// NewManagerFromEntries builds the engine from an already parsed dataset.
// Most callers want NewManager; this entry point serves tooling and tests
// that bring their own table.
func NewManagerFromEntries(entries []dataset.Entry, params Params) *Manager {
	m := &Manager{
		byFirstRune: make(map[rune][]*Record),
		byShortCode: make(map[string]*Record),
		byUnified:   make(map[string]*Record),
		prefixes:    emote.ParsePrefixTable(params.Prefixes),
		listeners:   newListenerGroup(),
	}

	m.loadAll(entries)
	m.sortIndexes()
	m.resolveAll(params.PreferredSet)

	return m
}

// loadAll parses every dataset entry and its skin tone variants into
// records. Malformed entries are dropped with a diagnostic; a bad entry
// never takes down the load.
func (m *Manager) loadAll(entries []dataset.Entry) {
	for i := range entries {
		entry := &entries[i]

		rec, err := parseEntry(entry, "")
		if err != nil {
			jww.WARN.Printf("Skipping emoji entry %q (%s): %+v",
				entry.ShortName, entry.Unified, err)
			continue
		}
		m.register(rec)

		// Tone keys are iterated in sorted order so variant records load
		// deterministically.
		for _, toneKey := range sortedToneKeys(entry.SkinVariations) {
			label, ok := toneLabel(toneKey)
			if !ok {
				jww.ERROR.Printf("Skipping skin variation %q of %q: no "+
					"part of the key is a known tone modifier",
					toneKey, rec.ShortCodes[0])
				continue
			}

			variation := entry.SkinVariations[toneKey]
			vRec, err := parseEntry(
				&variation, rec.ShortCodes[0]+"_"+label)
			if err != nil {
				jww.WARN.Printf("Skipping skin variation %q of %q: %+v",
					toneKey, rec.ShortCodes[0], err)
				continue
			}
			m.register(vRec)
		}
	}

	jww.INFO.Printf("Loaded %d emoji records with %d short codes",
		len(m.records), len(m.shortCodes))
}

// register adds the record to every index.
func (m *Manager) register(rec *Record) {
	rec.idx = len(m.records)
	m.records = append(m.records, rec)

	for _, code := range rec.ShortCodes {
		m.byShortCode[strings.ToLower(code)] = rec
		m.shortCodes = append(m.shortCodes, code)
	}

	first, _ := utf8.DecodeRuneInString(rec.Glyph)
	m.byFirstRune[first] = append(m.byFirstRune[first], rec)

	m.byUnified[rec.Unified] = rec
}

// sortIndexes orders each first-codepoint candidate list by descending
// glyph length, which the scanner's longest-match guarantee rests on, and
// the short code list ascending for autocompletion.
func (m *Manager) sortIndexes() {
	for _, candidates := range m.byFirstRune {
		sort.SliceStable(candidates, func(i, j int) bool {
			return candidates[i].scalarLen > candidates[j].scalarLen
		})
	}

	sort.Strings(m.shortCodes)
}

// sortedToneKeys returns the skin variation keys in ascending order.
func sortedToneKeys(variations map[string]dataset.Entry) []string {
	if len(variations) == 0 {
		return nil
	}
	keys := make([]string, 0, len(variations))
	for key := range variations {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of loaded records, skin tone variants included.
func (m *Manager) Len() int {
	return len(m.records)
}

// Records returns every loaded record in load order. The returned slice is
// shared; callers must not modify it.
func (m *Manager) Records() []*Record {
	return m.records
}

// AllShortCodes returns every known short code in ascending order, without
// colons, for autocompletion. The returned slice is shared; callers must
// not modify it.
func (m *Manager) AllShortCodes() []string {
	return m.shortCodes
}

// ByShortCode looks up a record by short code, ignoring case. The code is
// given without colons.
func (m *Manager) ByShortCode(code string) (*Record, bool) {
	rec, exists := m.byShortCode[strings.ToLower(code)]
	return rec, exists
}

// ByUnified looks up a record by its unified codepoint sequence, exactly
// as it appears in the dataset.
func (m *Manager) ByUnified(code string) (*Record, bool) {
	rec, exists := m.byUnified[code]
	return rec, exists
}

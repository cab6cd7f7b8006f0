////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file                                                               //
////////////////////////////////////////////////////////////////////////////////

package emoji

import "testing"

// Tests toneLabel against every single tone key and a sample of dual tone
// keys.
func Test_toneLabel(t *testing.T) {
	tests := map[string]string{
		"1F3FB":       "tone1",
		"1F3FC":       "tone2",
		"1F3FD":       "tone3",
		"1F3FE":       "tone4",
		"1F3FF":       "tone5",
		"1F3FB-1F3FF": "tone1-tone5",
		"1F3FC-1F3FB": "tone2-tone1",
		"1F3FF-1F3FF": "tone5-tone5",
	}

	for toneKey, expected := range tests {
		label, ok := toneLabel(toneKey)
		if !ok {
			t.Errorf("Failed to resolve tone key %q.", toneKey)
		} else if label != expected {
			t.Errorf("Unexpected label for tone key %q."+
				"\nexpected: %s\nreceived: %s", toneKey, expected, label)
		}
	}
}

// Tests that unknown parts of a tone key are dropped while known parts
// still compose a label, and that a key with no known parts reports !ok.
func Test_toneLabel_UnknownParts(t *testing.T) {
	label, ok := toneLabel("1F3FB-ABCD")
	if !ok {
		t.Error("Failed to resolve a key with one known part.")
	} else if label != "tone1" {
		t.Errorf("Unexpected label.\nexpected: %s\nreceived: %s",
			"tone1", label)
	}

	label, ok = toneLabel("ABCD-1F3FE")
	if !ok {
		t.Error("Failed to resolve a key with one known part.")
	} else if label != "tone4" {
		t.Errorf("Unexpected label.\nexpected: %s\nreceived: %s",
			"tone4", label)
	}

	for _, toneKey := range []string{"", "ABCD", "ABCD-EF01", "1f3fb"} {
		if label, ok = toneLabel(toneKey); ok {
			t.Errorf("Unexpectedly resolved tone key %q to %q.",
				toneKey, label)
		}
	}
}

// Tests that a variant under an unresolvable tone key is skipped while
// variants under valid keys of the same entry still load.
func TestManager_UnknownToneKey(t *testing.T) {
	m := NewManagerFromEntries(testEntries(), GetDefaultParams())

	before := m.Len()
	entries := testEntries()
	entries[3].SkinVariations["ABCD"] = entries[3].SkinVariations["1F3FB"]
	m = NewManagerFromEntries(entries, GetDefaultParams())

	if m.Len() != before {
		t.Errorf("Unresolvable tone key changed the record count."+
			"\nexpected: %d\nreceived: %d", before, m.Len())
	}
	if _, exists := m.ByShortCode("wave_tone1"); !exists {
		t.Error("Valid variant of the same entry did not load.")
	}
}

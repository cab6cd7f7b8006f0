////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file                                                               //
////////////////////////////////////////////////////////////////////////////////

package emoji

import (
	"encoding/json"

	"gitlab.com/elixxir/emoji/emote"
)

// Params contains the externally configurable state of the engine: which
// vendor's emoji set the user prefers and where each vendor's images are
// served from.
type Params struct {
	// PreferredSet is the vendor name whose images are used when a record
	// has them ("Apple", "Google", "Twitter", or "Facebook"). Records the
	// vendor has no image for, and unrecognized names entirely, fall back
	// to the default vendor.
	PreferredSet string

	// Prefixes maps vendor names to image URL base prefixes. Entries with
	// unknown vendor names are dropped at construction.
	Prefixes map[string]string
}

// GetDefaultParams returns a default set of Params: the Twitter set and
// the bundled CDN prefix for each vendor.
func GetDefaultParams() Params {
	prefixes := make(map[string]string)
	for vendor, prefix := range emote.DefaultPrefixTable() {
		prefixes[vendor.String()] = prefix
	}

	return Params{
		PreferredSet: emote.DefaultVendor.String(),
		Prefixes:     prefixes,
	}
}

// GetParameters returns the default Params, or override with the given
// parameters, if set.
func GetParameters(params string) (Params, error) {
	p := GetDefaultParams()
	if len(params) > 0 {
		err := json.Unmarshal([]byte(params), &p)
		if err != nil {
			return Params{}, err
		}
	}
	return p, nil
}

////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file                                                               //
////////////////////////////////////////////////////////////////////////////////

package emote

import (
	"fmt"
	"strings"

	jww "github.com/spf13/jwalterweatherman"
)

// Vendor identifies one image-asset provider from the closed set published
// by the emoji-data project. Vendors are bit flags so that a record's whole
// capability set packs into a single byte.
type Vendor uint8

const (
	Apple Vendor = 1 << iota
	Google
	Twitter
	Facebook
)

// DefaultVendor is the vendor used when the preferred emoji set has no
// image for a record or the preference does not name a known vendor.
const DefaultVendor = Twitter

// allVendors lists every vendor in declaration order.
var allVendors = []Vendor{Apple, Google, Twitter, Facebook}

// AllVendors returns the closed vendor enumeration in declaration order.
func AllVendors() []Vendor {
	vendors := make([]Vendor, len(allVendors))
	copy(vendors, allVendors)
	return vendors
}

// String returns the human-readable vendor name. This function adheres to
// the fmt.Stringer interface.
func (v Vendor) String() string {
	switch v {
	case Apple:
		return "Apple"
	case Google:
		return "Google"
	case Twitter:
		return "Twitter"
	case Facebook:
		return "Facebook"
	default:
		return fmt.Sprintf("Unknown vendor %d", uint8(v))
	}
}

// ParseVendor resolves a vendor name to its Vendor flag. The match is
// exact; names that differ in case are not recognized, matching how the
// emoji set preference has always been compared upstream.
func ParseVendor(name string) (Vendor, bool) {
	switch name {
	case "Apple":
		return Apple, true
	case "Google":
		return Google, true
	case "Twitter":
		return Twitter, true
	case "Facebook":
		return Facebook, true
	default:
		return 0, false
	}
}

// parseVendorFold resolves a vendor name ignoring case. Prefix tables
// read from configuration files arrive with lowercased keys (viper folds
// them), so table keys accept any casing while the set preference
// comparison stays exact.
func parseVendorFold(name string) (Vendor, bool) {
	for _, v := range allVendors {
		if strings.EqualFold(name, v.String()) {
			return v, true
		}
	}
	return 0, false
}

// Vendors is a set of Vendor bit flags describing which providers have
// image data for a record.
type Vendors uint8

// Add inserts the vendor into the set.
func (vs *Vendors) Add(v Vendor) {
	*vs |= Vendors(v)
}

// Has reports whether the vendor is in the set.
func (vs Vendors) Has(v Vendor) bool {
	return uint8(vs)&uint8(v) != 0
}

// Count returns the number of vendors in the set.
func (vs Vendors) Count() int {
	n := 0
	for _, v := range allVendors {
		if vs.Has(v) {
			n++
		}
	}
	return n
}

// String returns the vendor names in the set joined by "|". This function
// adheres to the fmt.Stringer interface.
func (vs Vendors) String() string {
	if vs == 0 {
		return "none"
	}
	names := make([]string, 0, len(allVendors))
	for _, v := range allVendors {
		if vs.Has(v) {
			names = append(names, v.String())
		}
	}
	return strings.Join(names, "|")
}

// ParseVendors builds a vendor set from a list of vendor names. Unknown
// names are dropped with a diagnostic.
func ParseVendors(names ...string) Vendors {
	var vs Vendors
	for _, name := range names {
		v, ok := ParseVendor(name)
		if !ok {
			jww.WARN.Printf("Dropping unknown vendor name %q", name)
			continue
		}
		vs.Add(v)
	}
	return vs
}

////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file                                                               //
////////////////////////////////////////////////////////////////////////////////

package emoji

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gitlab.com/elixxir/emoji/emote"
)

// Tests that the default Params name the default vendor and carry a prefix
// for all four vendors.
func TestGetDefaultParams(t *testing.T) {
	p := GetDefaultParams()

	require.Equal(t, emote.DefaultVendor.String(), p.PreferredSet)
	require.Len(t, p.Prefixes, 4)
	for _, vendor := range emote.AllVendors() {
		require.Contains(t, p.Prefixes, vendor.String())
	}
}

// Tests that GetParameters returns the defaults for an empty string and
// applies JSON overrides otherwise.
func TestGetParameters(t *testing.T) {
	p, err := GetParameters("")
	require.NoError(t, err)
	require.Equal(t, GetDefaultParams(), p)

	p, err = GetParameters(`{"PreferredSet": "Apple"}`)
	require.NoError(t, err)
	require.Equal(t, "Apple", p.PreferredSet)
	require.Equal(t, GetDefaultParams().Prefixes, p.Prefixes)

	p, err = GetParameters(
		`{"Prefixes": {"Google": "https://example.test/emoji/"}}`)
	require.NoError(t, err)
	require.Equal(t, "https://example.test/emoji/", p.Prefixes["Google"])

	_, err = GetParameters("not json")
	require.Error(t, err)
}

// Tests that prefix overrides flow through to resolved URLs and that
// unknown vendor names in the table are dropped rather than kept.
func TestParams_PrefixOverride(t *testing.T) {
	p := GetDefaultParams()
	p.Prefixes["Twitter"] = "https://example.test/twitter/"
	p.Prefixes["MSN"] = "https://example.test/msn/"

	m := NewManagerFromEntries(testEntries(), p)

	smile, exists := m.ByShortCode("smile")
	require.True(t, exists)
	require.Equal(t, "https://example.test/twitter/1f604.png",
		m.ResolvedEmote(smile).URL)
}

// Tests that prefix keys lowercased by a config layer still override the
// resolved URLs.
func TestParams_PrefixOverride_LowercaseKeys(t *testing.T) {
	p := GetDefaultParams()
	p.Prefixes = map[string]string{
		"twitter": "https://example.test/tw/",
	}

	m := NewManagerFromEntries(testEntries(), p)

	smile, exists := m.ByShortCode("smile")
	require.True(t, exists)
	require.Equal(t, "https://example.test/tw/1f604.png",
		m.ResolvedEmote(smile).URL)
}

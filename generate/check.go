////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

package main

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	jww "github.com/spf13/jwalterweatherman"
	"gitlab.com/xx_network/primitives/netTime"
	"gitlab.com/xx_network/primitives/utils"
	"go.uber.org/ratelimit"

	"gitlab.com/elixxir/emoji"
	"gitlab.com/elixxir/emoji/emote"
)

// Flag variables.
var (
	checkSample  int
	checkRate    int
	checkTimeout time.Duration
	checkReport  string
)

// checkReportFile is the audit result written by the check subcommand.
type checkReportFile struct {
	GeneratedAt time.Time       `json:"generatedAt"`
	Checked     int             `json:"checked"`
	Mismatches  []checkMismatch `json:"mismatches"`
}

// checkMismatch records one record whose has_img flag disagrees with the
// CDN: the flag says an image exists but the CDN does not serve it.
type checkMismatch struct {
	ShortCode string `json:"shortCode"`
	Unified   string `json:"unified"`
	Vendor    string `json:"vendor"`
	URL       string `json:"url"`
	Status    int    `json:"status"`
}

var checkCmd = &cobra.Command{
	Use: "check",
	Short: "Audits the image CDN against the bundled dataset's has_img " +
		"flags and writes a mismatch report.",
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		initLog(jww.Threshold(logLevel), logFile)

		if err := check(); err != nil {
			jww.FATAL.Panic(err)
		}
	},
}

func init() {
	cmd.AddCommand(checkCmd)

	checkCmd.Flags().IntVarP(&checkSample, "sample", "s", 50,
		"Number of records to audit. Set to 0 to audit every record.")
	checkCmd.Flags().IntVarP(&checkRate, "rate", "r", 10,
		"Maximum CDN requests per second.")
	checkCmd.Flags().DurationVarP(&checkTimeout, "timeout", "t",
		10*time.Second, "Timeout for each CDN request.")
	checkCmd.Flags().StringVarP(&checkReport, "report", "o",
		"./cdnReport.json", "Output file path for the audit report.")
}

// check resolves an image URL for every sampled record and capable vendor
// and verifies that the CDN serves it.
func check() error {
	m := emoji.NewManager(emoji.GetDefaultParams())
	if m.Len() == 0 {
		return errors.New("no records loaded from the bundled dataset")
	}

	records := m.Records()
	if checkSample > 0 && checkSample < len(records) {
		records = records[:checkSample]
	}

	prefixes := emote.DefaultPrefixTable()
	client := &http.Client{Timeout: checkTimeout}
	rl := ratelimit.New(checkRate, ratelimit.WithoutSlack)

	report := checkReportFile{
		GeneratedAt: netTime.Now(),
		Mismatches:  []checkMismatch{},
	}

	for _, rec := range records {
		for _, vendor := range emote.AllVendors() {
			if !rec.Capabilities.Has(vendor) {
				continue
			}

			rl.Take()
			report.Checked++

			url := prefixes.URL(vendor, rec.Unified)
			resp, err := client.Head(url)
			if err != nil {
				jww.WARN.Printf("HEAD %s failed: %+v", url, err)
				continue
			}
			if err = resp.Body.Close(); err != nil {
				jww.WARN.Printf("Failed to close body for %s: %+v",
					url, err)
			}

			if resp.StatusCode != http.StatusOK {
				jww.DEBUG.Printf("CDN missing %s image for %q (%d)",
					vendor, rec.ShortCodes[0], resp.StatusCode)
				report.Mismatches = append(report.Mismatches,
					checkMismatch{
						ShortCode: rec.ShortCodes[0],
						Unified:   rec.Unified,
						Vendor:    vendor.String(),
						URL:       url,
						Status:    resp.StatusCode,
					})
			}
		}
	}

	jww.INFO.Printf("Checked %d images, found %d mismatches.",
		report.Checked, len(report.Mismatches))

	data, err := json.MarshalIndent(report, "", "\t")
	if err != nil {
		return errors.Wrap(err, "failed to marshal the audit report")
	}

	return utils.WriteFileDef(checkReport, data)
}

////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

package main

import (
	"strings"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	jww "github.com/spf13/jwalterweatherman"
	"gitlab.com/xx_network/primitives/netTime"
	"gitlab.com/xx_network/primitives/utils"

	"gitlab.com/elixxir/emoji"
)

// Flag variables.
var (
	benchPasses     int
	benchCorpus     string
	benchProfileDir string
)

// benchLines is the default corpus: chat lines mixing plain text, emoji in
// various positions, tone variants, and short code tokens.
var benchLines = []string{
	"morning everyone, hope the deploy went well",
	"it did 😄 zero rollbacks",
	"👏👏👏",
	"love to see it ❤‍🔥",
	"👋🏿 anyone around for a review?",
	"sure, send it over :+1:",
	"that test name though 😂😂😂",
	"🍕 in the kitchen, first come first served",
	"a line with no emoji at all, just filler text for the scanner",
	"mixed ☺ content 🙏 with ☀ several 😊 short glyphs",
}

var benchCmd = &cobra.Command{
	Use: "bench",
	Short: "Benchmarks the scanner over a chat corpus and writes a CPU " +
		"profile.",
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		initLog(jww.Threshold(logLevel), logFile)

		if err := bench(); err != nil {
			jww.FATAL.Panic(err)
		}
	},
}

func init() {
	cmd.AddCommand(benchCmd)

	benchCmd.Flags().IntVarP(&benchPasses, "passes", "n", 10000,
		"Number of passes over the corpus.")
	benchCmd.Flags().StringVarP(&benchCorpus, "corpus", "c", "",
		"Path to a corpus file, one chat line per line. Uses a built-in "+
			"corpus when empty.")
	benchCmd.Flags().StringVarP(&benchProfileDir, "profileDir", "p", ".",
		"Directory the CPU profile is written to.")
}

// bench runs the scanner and the short code substituter over every corpus
// line for the configured number of passes under a CPU profile.
func bench() (err error) {
	lines := benchLines
	if benchCorpus != "" {
		var data []byte
		data, err = utils.ReadFile(benchCorpus)
		if err != nil {
			return err
		}
		lines = strings.Split(strings.TrimSpace(string(data)), "\n")
	}

	m := emoji.NewManager(emoji.GetDefaultParams())
	jww.INFO.Printf("Benchmarking %d passes over %d lines against %d "+
		"records.", benchPasses, len(lines), m.Len())

	defer profile.Start(profile.CPUProfile,
		profile.ProfilePath(benchProfileDir)).Stop()

	var segments int
	start := netTime.Now()
	for i := 0; i < benchPasses; i++ {
		for _, line := range lines {
			segments += len(m.Scan(line))
			m.ReplaceShortCodes(line)
		}
	}
	elapsed := netTime.Since(start)

	scanned := benchPasses * len(lines)
	jww.INFO.Printf("Scanned %d lines in %s (%.0f lines/s, %d segments).",
		scanned, elapsed,
		float64(scanned)/elapsed.Seconds(), segments)

	return nil
}

////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	jww "github.com/spf13/jwalterweatherman"
	"github.com/spf13/viper"

	"gitlab.com/elixxir/emoji"
)

// Flag variables.
var (
	scanConfig string
	scanWatch  bool
)

var scanCmd = &cobra.Command{
	Use: "scan",
	Short: "Reads chat lines from stdin and prints their scanned " +
		"segments and short code substitutions.",
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		initLog(jww.Threshold(logLevel), logFile)

		if err := scan(); err != nil {
			jww.FATAL.Panic(err)
		}
	},
}

func init() {
	cmd.AddCommand(scanCmd)

	scanCmd.Flags().StringVarP(&scanConfig, "config", "c", "",
		"Path to a config file with emojiSet and prefixes keys.")
	scanCmd.Flags().BoolVarP(&scanWatch, "watch", "w", false,
		"Watch the config file and re-resolve when the emoji set changes.")
}

// scan builds the engine from the optional config, then echoes every stdin
// line back as scanner segments and as its short code substitution. With
// --watch, edits to the config switch the emoji set live.
func scan() error {
	p := emoji.GetDefaultParams()

	if scanConfig != "" {
		viper.SetConfigFile(scanConfig)
		if err := viper.ReadInConfig(); err != nil {
			return err
		}
		if set := viper.GetString("emojiSet"); set != "" {
			p.PreferredSet = set
		}
		for vendor, prefix := range viper.GetStringMapString("prefixes") {
			p.Prefixes[vendor] = prefix
		}
	}

	m := emoji.NewManager(p)
	m.RegisterFunc("scanPrinter", func(e emoji.Event) {
		fmt.Printf("-- emoji set is now %q (epoch %d)\n", e.Set, e.Epoch)
	})

	if scanWatch {
		if scanConfig == "" {
			return errors.New("--watch requires --config")
		}
		viper.OnConfigChange(func(in fsnotify.Event) {
			jww.DEBUG.Printf("Config change: %s", in.Name)
			m.SetPreferredSet(viper.GetString("emojiSet"))
		})
		viper.WatchConfig()
	}

	in := bufio.NewScanner(os.Stdin)
	for in.Scan() {
		line := in.Text()

		for i, segment := range m.Scan(line) {
			if segment.IsEmote() {
				fmt.Printf("  [%d] emote %q %s\n",
					i, segment.Emote.Name, segment.Emote.URL)
			} else {
				fmt.Printf("  [%d] text  %q\n", i, segment.Text)
			}
		}
		fmt.Printf("  => %s\n", m.ReplaceShortCodes(line))
	}

	return in.Err()
}

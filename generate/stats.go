////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	jww "github.com/spf13/jwalterweatherman"
	"github.com/thedevsaddam/gojsonq"
)

// Flag variables.
var statsDataset string

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Prints record counts and vendor coverage for a dataset file.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		initLog(jww.Threshold(logLevel), logFile)

		if err := stats(); err != nil {
			jww.FATAL.Panic(err)
		}
	},
}

func init() {
	cmd.AddCommand(statsCmd)

	statsCmd.Flags().StringVarP(&statsDataset, "dataset", "d",
		"./dataset/emojiData.json", "Path to the dataset file to query.")
}

// stats queries the dataset file directly rather than loading it through
// the engine, so it reports on exactly what is on disk, dropped records
// included.
func stats() error {
	total := gojsonq.New().File(statsDataset).Count()
	fmt.Printf("%d records in %s\n", total, statsDataset)

	vendors := []string{"apple", "google", "twitter", "facebook"}
	for _, vendor := range vendors {
		missing := gojsonq.New().File(statsDataset).
			Where("has_img_"+vendor, "=", false).Count()
		fmt.Printf("%8s: %d records without an image\n", vendor, missing)
	}

	grouped := gojsonq.New().File(statsDataset).GroupBy("category").Get()
	if categories, ok := grouped.(map[string]interface{}); ok {
		names := make([]string, 0, len(categories))
		for name := range categories {
			names = append(names, name)
		}
		fmt.Printf("%d categories: %s\n",
			len(names), strings.Join(names, ", "))
	}

	return nil
}

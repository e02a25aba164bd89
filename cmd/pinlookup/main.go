// Command pinlookup answers location queries against a pincode dataset file.
//
// Usage:
//
//	pinlookup -data pincodes.tsv.gz                       # list states
//	pinlookup -data pincodes.tsv.gz -state Karnataka      # list districts
//	pinlookup -data pincodes.tsv.gz -state Karnataka -district "Bengaluru Urban"
//	pinlookup -data pincodes.tsv.gz -pin 5600             # pincode search
//
// The dataset is tab-separated: state, district, city, pincode, locality.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gharfinder/gazetteer"
)

func main() {
	data := flag.String("data", "", "path to the pincode dataset (.tsv or .tsv.gz)")
	state := flag.String("state", "", "list districts of this state")
	district := flag.String("district", "", "list cities of -state plus this district")
	pin := flag.String("pin", "", "full or partial pincode to search")
	flag.Parse()

	if *data == "" {
		flag.Usage()
		os.Exit(2)
	}

	ix := gazetteer.New(gazetteer.FileSource{Path: *data})
	if err := ix.Init(context.Background()); err != nil {
		log.Fatalf("loading dataset: %v", err)
	}

	switch {
	case *pin != "":
		recs, err := ix.Search(*pin)
		if err != nil {
			log.Fatalf("search: %v", err)
		}
		for _, r := range recs {
			line := fmt.Sprintf("%s\t%s, %s, %s", r.Pincode, r.City, r.District, r.State)
			if r.Locality != "" {
				line += fmt.Sprintf(" (%s)", r.Locality)
			}
			fmt.Println(line)
		}
	case *state != "" && *district != "":
		for _, c := range ix.Cities(*state, *district) {
			fmt.Println(c)
		}
	case *state != "":
		for _, d := range ix.Districts(*state) {
			fmt.Println(d)
		}
	default:
		for _, s := range ix.States() {
			fmt.Println(s)
		}
	}
}

// Command inspect profiles a spreadsheet or CSV file from the command line:
// every column is classified and described, without starting the web server.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"sheetlens/adapters/sheet"
	"sheetlens/domain/describe"
	"sheetlens/domain/profile"
)

func main() {
	fullScan := flag.Bool("full-scan", false, "classify columns by scanning every row")
	sampleSize := flag.Int("sample", profile.DefaultSampleSize, "rows sampled by the quick classifier")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: inspect [flags] <file.xlsx|file.csv>\n")
		flag.PrintDefaults()
		os.Exit(2)
	}
	path := flag.Arg(0)

	ds, err := sheet.ReadFile(path)
	if err != nil {
		log.Fatalf("[Inspect] failed to read %s: %v", path, err)
	}

	var classifier profile.Classifier
	if *fullScan {
		classifier = profile.NewFullScanClassifier()
	} else {
		classifier = profile.NewQuickClassifier(*sampleSize)
	}

	profiles, err := profile.ProfileDataset(context.Background(), ds, classifier)
	if err != nil {
		log.Fatalf("[Inspect] profiling failed: %v", err)
	}

	fmt.Printf("%s: %d columns, %d rows\n\n", sheet.DisplayName(path), len(ds.Columns), ds.RowCount())
	for _, p := range profiles {
		fmt.Printf("column %q (%s, %.1f%% missing)\n", p.Name, p.Kind, p.MissingRate*100)
		printSummary(describe.Describe(ds, p.Name, p.Kind))
		fmt.Println()
	}
}

func printSummary(summary *describe.ColumnSummary) {
	if summary == nil {
		fmt.Println("  no statistics available")
		return
	}
	if summary.Numeric != nil {
		n := summary.Numeric
		fmt.Printf("  count=%d empty=%d\n", n.Count, n.EmptyCount)
		fmt.Printf("  min=%g q1=%g median=%g q3=%g max=%g\n", n.Min, n.Q1, n.Median, n.Q3, n.Max)
		fmt.Printf("  sum=%g mean=%g stddev=%g\n", n.Sum, n.Mean, n.StdDev)
		return
	}
	cat := summary.Categorical
	fmt.Printf("  count=%d empty=%d unique=%d\n", cat.Count, cat.EmptyCount, cat.UniqueCount)
	fmt.Printf("  mode=%q (%d)\n", cat.Mode, cat.ModeFrequency)
	for _, vc := range cat.Frequencies {
		fmt.Printf("    %-24q %d\n", vc.Value, vc.Count)
	}
}

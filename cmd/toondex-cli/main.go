package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/hojoonlee/toondex/internal/catalog"
	"github.com/hojoonlee/toondex/internal/config"
	"github.com/hojoonlee/toondex/internal/export"
	"github.com/hojoonlee/toondex/internal/library"
)

func main() {
	libraryPath := flag.String("library", "", "library directory (overrides config)")
	exportPath := flag.String("export-dir", "", "export directory (overrides config)")
	writeExport := flag.Bool("export", false, "write the catalog to a new spreadsheet file")
	flag.Parse()

	// Load configuration from config.yml
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if *libraryPath != "" {
		cfg.Library.Path = *libraryPath
	}
	if *exportPath != "" {
		cfg.Export.Path = *exportPath
	}

	log.Printf("Building catalog from library at: %s", cfg.Library.Path)

	entries, err := library.ListEntries(cfg.Library.Path)
	if err != nil {
		log.Fatalf("Failed to read library directory: %v", err)
	}

	opts := catalog.Options{OnInvalid: catalog.PolicyFromString(cfg.Library.OnInvalid)}
	result, err := catalog.Build(entries, library.IsArchiveEntry, opts)
	if err != nil {
		log.Fatalf("Failed to build catalog: %v", err)
	}

	for _, skipped := range result.Skipped {
		log.Printf("Skipping %s: %s", skipped.Name, skipped.Reason)
	}
	for _, w := range result.Webtoons {
		fmt.Println(w)
	}
	fmt.Println(result.Summary)

	// Point at the previous export, if one exists.
	if name, ok, err := export.LatestIn(cfg.Export.Path); err != nil {
		log.Printf("Warning: could not read export directory: %v", err)
	} else if ok {
		fmt.Printf("Latest export: %s\n", name)
	} else {
		fmt.Println("No export file found.")
	}

	if *writeExport {
		name, err := export.Write(cfg.Export.Path, result.Webtoons, time.Now())
		if err != nil {
			log.Fatalf("Failed to write export file: %v", err)
		}
		fmt.Printf("Wrote export: %s\n", name)
	}
}

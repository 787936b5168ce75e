// This file contains the catalog sync job. It enumerates the library
// directory, rebuilds the webtoon catalog from the archive file names and
// publishes the new snapshot for the API to serve.

package library

import (
	"fmt"
	"log"

	"github.com/hojoonlee/toondex/internal/catalog"
	"github.com/hojoonlee/toondex/internal/jobs"
)

// SyncJobID identifies the catalog sync job in the job manager and in
// progress updates.
const SyncJobID = "catalog-sync"

// SyncCatalog rebuilds the catalog from the library directory. It is
// registered with the job manager under SyncJobID and also runs directly
// at startup.
func SyncCatalog(ctx jobs.JobContext) {
	sendProgress(ctx, SyncJobID, "Reading library directory...", 0, false)

	libraryPath := ctx.Config().Library.Path
	entries, err := ListEntries(libraryPath)
	if err != nil {
		log.Printf("Catalog sync could not read library %s: %v", libraryPath, err)
		sendProgress(ctx, SyncJobID, "Failed to read library directory", 100, true)
		return
	}

	sendProgress(ctx, SyncJobID, fmt.Sprintf("Decoding %d entries...", len(entries)), 30, false)

	opts := catalog.Options{OnInvalid: catalog.PolicyFromString(ctx.Config().Library.OnInvalid)}
	result, err := catalog.Build(entries, IsArchiveEntry, opts)
	if err != nil {
		log.Printf("Catalog sync aborted: %v", err)
		sendProgress(ctx, SyncJobID, "Catalog build aborted on an invalid file name", 100, true)
		return
	}

	for _, skipped := range result.Skipped {
		log.Printf("Skipping %s: %s", skipped.Name, skipped.Reason)
	}

	// Print each record the way the CLI does, so server logs show what
	// the catalog picked up.
	for _, w := range result.Webtoons {
		log.Println(w)
	}

	sendProgress(ctx, SyncJobID, "Publishing catalog...", 90, false)
	ctx.Catalog().Set(result)

	log.Println(result.Summary)
	sendProgress(ctx, SyncJobID, result.Summary, 100, true)
}

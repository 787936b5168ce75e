// This file contains utility functions shared across the library package.

package library

import (
	"github.com/hojoonlee/toondex/internal/jobs"
	"github.com/hojoonlee/toondex/internal/models"
)

// sendProgress sends a progress update via WebSocket to connected clients.
func sendProgress(ctx jobs.JobContext, jobId string, message string, progress float64, done bool) {
	update := models.ProgressUpdate{
		JobID:    jobId,
		Message:  message,
		Progress: progress,
		Done:     done,
	}
	ctx.WsHub().BroadcastJSON(update)
}

package jobs

import (
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/hojoonlee/toondex/internal/config"
	"github.com/hojoonlee/toondex/internal/store"
	"github.com/hojoonlee/toondex/internal/websocket"
)

// JobContext is an interface that provides the necessary dependencies for a job to run.
// The core.App struct will implement this interface.
type JobContext interface {
	Config() *config.Config
	WsHub() *websocket.Hub
	Catalog() *store.Catalog
	JobManager() *JobManager
}

// The task function signature uses the interface.
type jobTask func(ctx JobContext)

type JobStatus struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Status    string    `json:"status"` // "idle", "running", "success", "failed"
	Message   string    `json:"message"`
	StartTime time.Time `json:"start_time,omitempty"`
	EndTime   time.Time `json:"end_time,omitempty"`
}

type JobManager struct {
	mu      sync.Mutex
	jobs    map[string]jobTask
	status  map[string]*JobStatus
	running bool
	appCtx  JobContext // Store the app context for scheduled jobs
}

func NewManager(appCtx JobContext) *JobManager {
	jm := &JobManager{
		jobs:   make(map[string]jobTask),
		status: make(map[string]*JobStatus),
		appCtx: appCtx,
	}
	return jm
}

func (jm *JobManager) Register(id, name string, task jobTask) {
	jm.mu.Lock()
	defer jm.mu.Unlock()
	jm.jobs[id] = task
	jm.status[id] = &JobStatus{ID: id, Name: name, Status: "idle"}
}

// RunJob starts the job with the given id. Only one job may run at a
// time; a second request is rejected while the first is still going.
func (jm *JobManager) RunJob(id string, ctx JobContext) error {
	jm.mu.Lock()
	if jm.running {
		jm.mu.Unlock()
		return fmt.Errorf("a job is already running")
	}

	task, ok := jm.jobs[id]
	if !ok {
		jm.mu.Unlock()
		return fmt.Errorf("job '%s' not found", id)
	}

	jm.running = true
	status := jm.status[id]
	status.Status = "running"
	status.StartTime = time.Now()
	status.Message = "Job started..."
	jm.mu.Unlock()

	log.Printf("Starting job: %s", id)
	// Run the actual task in a new goroutine so it doesn't block.
	go func() {
		defer func() {
			// Ensure we always update the status and unlock the manager
			r := recover()

			jm.mu.Lock()
			if r != nil {
				log.Printf("Job '%s' panicked: %v", id, r)
				status.Status = "failed"
				status.Message = fmt.Sprintf("Job panicked: %v", r)
			}
			status.EndTime = time.Now()
			if status.Status == "running" { // If not already set to "failed"
				status.Status = "success"
				status.Message = "Job completed successfully."
			}
			jm.running = false
			jm.mu.Unlock()
			log.Printf("Finished job: %s", id)
		}()

		task(ctx)
	}()
	return nil
}

// GetStatus returns a snapshot of every registered job's status,
// ordered by id so API responses are stable. The entries are copies:
// callers may hold and marshal them while jobs keep running.
func (jm *JobManager) GetStatus() []JobStatus {
	jm.mu.Lock()
	defer jm.mu.Unlock()

	statuses := make([]JobStatus, 0, len(jm.status))
	for _, s := range jm.status {
		statuses = append(statuses, *s)
	}
	sort.Slice(statuses, func(i, j int) bool { return statuses[i].ID < statuses[j].ID })
	return statuses
}

package worker

import (
	"time"
)

// Job represents one backup cycle request submitted to the worker.
type Job struct {
	Trigger string // "startup", "cron", "watch"
	Time    time.Time
}

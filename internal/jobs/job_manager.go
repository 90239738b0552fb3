package jobs

import (
	"fmt"
)

// JobManager starts and stops every background job of the service.
type JobManager struct {
	statusScheduler *StatusScheduler
	fleetReportJob  *FleetReportJob
}

// NewJobManager takes ownership of the jobs' lifecycles. fleetReportJob may be nil.
func NewJobManager(statusScheduler *StatusScheduler, fleetReportJob *FleetReportJob) *JobManager {
	return &JobManager{
		statusScheduler: statusScheduler,
		fleetReportJob:  fleetReportJob,
	}
}

// StartAll starts all jobs. Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	jm.statusScheduler.Start()

	if jm.fleetReportJob != nil {
		if err := jm.fleetReportJob.Start(); err != nil {
			// Stop already started jobs if this one fails
			jm.statusScheduler.Stop()
			return fmt.Errorf("failed to start fleet report job: %w", err)
		}
	}

	return nil
}

// StopAll stops all jobs and waits for running ones.
func (jm *JobManager) StopAll() {
	if jm.fleetReportJob != nil {
		jm.fleetReportJob.Stop()
	}
	jm.statusScheduler.Stop()
}

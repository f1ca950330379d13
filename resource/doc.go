// Package resource provides the Controller that bounds trial concurrency
// across auto-solver sweeps.
//
// A sweep already limits its own fan-out; a Controller shared by several
// sweeps caps the total number of trials running in the process:
//
//	rc := resource.NewController(resource.Config{MaxWorkers: 4})
//
//	if err := rc.AcquireWorker(ctx); err != nil {
//	    return err
//	}
//	defer rc.ReleaseWorker()
//
// Config.TrialsPerSecond additionally paces trial starts with a token bucket.
//
// # Nil Safety
//
// All methods handle a nil Controller gracefully - they become no-ops.
// This allows optional limiting without nil checks everywhere.
package resource

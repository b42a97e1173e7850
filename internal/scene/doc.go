// Package scene implements the transition orchestrator for the three
// presentation states (Title, Orbit, Detail).
//
// # State machine
//
// The orchestrator starts Uninitialized. Start requires one Module per state
// and then transitions into Title with a no-op exit. Every later change goes
// through ChangeScene:
//
//  1. Requests for the current state, or made while a transition is in
//     flight, are dropped rather than queued.
//  2. The current module's Exit runs to completion.
//  3. The current state flips and subscribers are notified.
//  4. The target module's Enter runs to completion.
//  5. The target becomes the active state.
//
// Exit and Enter never overlap. Modules are free to run parallel animations
// inside either step; the orchestrator only waits for the step as a whole.
//
// # Usage
//
//	sched := anim.NewScheduler()
//	orch := scene.New(sched)
//	orch.SetLogger(logger)
//	_ = orch.Register(title)
//	_ = orch.Register(orbit)
//	_ = orch.Register(detail)
//	if err := orch.Start(); err != nil {
//	    return err
//	}
//	for {
//	    sched.Tick(1.0 / 60)
//	}
package scene

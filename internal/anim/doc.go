// Package anim provides tick-driven transition primitives and the
// cooperative scheduler they run on.
//
// Everything runs on one timeline. The host calls Scheduler.Tick once per
// frame with a fixed dt; each live Task is polled once per tick and reports
// Running or Done. Fade and Move interpolate a single value and snap it to
// the exact end value on the tick their duration is reached. Sequence and
// Parallel compose tasks into choreographies, with Parallel acting as a join
// over its children.
//
//	sched := anim.NewScheduler()
//	sched.Go(anim.Sequence(
//		anim.Fade(panel, 0, 1, 1.5),
//		anim.Parallel(anim.Move(item, anim.Vec{X: -4}, 1.2), anim.Wait(0.5)),
//	))
//	for sched.Len() > 0 {
//		sched.Tick(1.0 / 60)
//	}
package anim

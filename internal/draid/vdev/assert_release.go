//go:build !draiddebug

package vdev

// debugAssertFail is a no-op in release builds, the same way the
// original's ASSERT macros compile away outside a debug build. Callers
// carry on after this call: Xlate goes on to geometry.Xlate, which
// translates against the group containing offset only, so a range that
// spans two groups gets the first group's column layout; GroupDegraded
// returns true right after this call.
func debugAssertFail(msg string) {}

//go:build draiddebug

package vdev

import "github.com/openzfs/draid/weed/glog"

// debugAssertFail mirrors the original's ASSERT macros: compiled in
// only for debug builds, it halts the process the instant an invariant
// the caller has already validated turns out false. Release builds
// (the default) never call this; see assert_release.go.
func debugAssertFail(msg string) {
	glog.Fatalf("draid: invariant violation: %s", msg)
}

//go:build pprof

package profile

import (
	"maps"
	"slices"
	"sync"

	"github.com/pkg/profile"
)

// Modes returns the supported profiling modes in sorted order.
//
//nolint:gochecknoglobals
var Modes = sync.OnceValue(
	func() []string {
		return slices.Sorted(maps.Keys(mode))
	},
)

//nolint:gochecknoglobals
var mode = map[string]func(*profile.Profile){
	"allocs":    profile.MemProfileAllocs,
	"block":     profile.BlockProfile,
	"clock":     profile.ClockProfile,
	"cpu":       profile.CPUProfile,
	"goroutine": profile.GoroutineProfile,
	"heap":      profile.MemProfileHeap,
	"mem":       profile.MemProfile,
	"mutex":     profile.MutexProfile,
	"thread":    profile.ThreadcreationProfile,
	"trace":     profile.TraceProfile,
}

// option appends a pkg/profile option derived from a Profiler field.
type option func(Profiler, []func(*profile.Profile)) []func(*profile.Profile)

func start(p Profiler) Stopper {
	var opts []func(*profile.Profile)

	for _, opt := range []option{withMode, withPath, withQuiet} {
		opts = opt(p, opts)
	}

	// pkg/profile installs its own SIGINT handler unless told not to.
	opts = append(opts, profile.NoShutdownHook)

	return profile.Start(opts...)
}

func withMode(p Profiler, opts []func(*profile.Profile)) []func(*profile.Profile) {
	return append(opts, mode[p.Mode])
}

func withPath(p Profiler, opts []func(*profile.Profile)) []func(*profile.Profile) {
	if p.Path == "" {
		return opts
	}

	return append(opts, profile.ProfilePath(p.Path))
}

func withQuiet(p Profiler, opts []func(*profile.Profile)) []func(*profile.Profile) {
	if !p.Quiet {
		return opts
	}

	return append(opts, profile.Quiet)
}

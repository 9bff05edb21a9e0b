// internal/runutil/runutil.go
package runutil

import (
	"fmt"
	"runtime"

	"github.com/klauspost/cpuid"
	"github.com/pbnjay/memory"
)

// EffectiveThreads returns the worker count for a --threads value.
// threads > 0 is used as-is (capped at the logical CPU count); otherwise
// one worker per physical core, falling back to runtime.NumCPU when the
// topology is unknown.
func EffectiveThreads(threads int) int {
	nCPU := runtime.NumCPU()
	if nCPU < 1 {
		nCPU = 1
	}
	if threads > 0 {
		return min(threads, nCPU)
	}
	if cpuid.CPU.ThreadsPerCore > 1 {
		if cores := nCPU / cpuid.CPU.ThreadsPerCore; cores > 0 {
			return cores
		}
	}
	return nCPU
}

// Footprint estimates the bytes held during a run: the loaded input plus
// the pre-sized output.
func Footprint(inputLen, outputLen int) uint64 {
	return uint64(inputLen) + uint64(outputLen)
}

// CheckMemory returns a warning when need exceeds physical memory.
// It returns "" when memory is sufficient or cannot be determined.
func CheckMemory(need uint64) string {
	return checkMemory(need, memory.TotalMemory())
}

func checkMemory(need, total uint64) string {
	if total == 0 || need <= total {
		return ""
	}
	return fmt.Sprintf("run needs ~%d MiB but only %d MiB of memory is installed", need>>20, total>>20)
}

package surf

import (
	"strings"

	"golang.org/x/sys/cpu"
)

// CPUExts is a set of CPU instruction set extensions a LowerBlit requires.
type CPUExts uint32

const (
	// ExtSSE2 is x86 SSE2.
	ExtSSE2 CPUExts = 1 << iota

	// ExtSSE41 is x86 SSE4.1.
	ExtSSE41

	// ExtAVX2 is x86 AVX2.
	ExtAVX2

	// ExtNEON is ARM Advanced SIMD.
	ExtNEON
)

// String lists the extensions, e.g. "SSE2|AVX2".
func (e CPUExts) String() string {
	if e == 0 {
		return "none"
	}
	var names []string
	for _, n := range []struct {
		ext  CPUExts
		name string
	}{
		{ExtSSE2, "SSE2"},
		{ExtSSE41, "SSE4.1"},
		{ExtAVX2, "AVX2"},
		{ExtNEON, "NEON"},
	} {
		if e&n.ext != 0 {
			names = append(names, n.name)
		}
	}
	return strings.Join(names, "|")
}

// cpuExts holds the detected extensions. Tests override it.
var cpuExts = detectCPU()

func detectCPU() CPUExts {
	var e CPUExts
	if cpu.X86.HasSSE2 {
		e |= ExtSSE2
	}
	if cpu.X86.HasSSE41 {
		e |= ExtSSE41
	}
	if cpu.X86.HasAVX2 {
		e |= ExtAVX2
	}
	if cpu.ARM64.HasASIMD {
		e |= ExtNEON
	}
	return e
}

// CPUFeatures returns the instruction set extensions of the running CPU.
func CPUFeatures() CPUExts {
	return cpuExts
}

package biquad

import (
	"sync"

	archregistry "github.com/cwbudde/algo-iir/dsp/filter/biquad/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

var (
	kernelEntry    *archregistry.OpEntry
	kernelInitOnce sync.Once
)

func initBlockKernels() {
	entry := archregistry.Global.Lookup(cpu.DetectFeatures())
	if entry == nil {
		panic("biquad: no block kernel registered (missing generic fallback?)")
	}

	kernelEntry = entry
}

func blockKernel(s Structure) archregistry.ProcessBlockFn {
	kernelInitOnce.Do(initBlockKernels)

	switch s {
	case DirectFormI:
		return kernelEntry.DirectFormI
	case DirectFormII:
		return kernelEntry.DirectFormII
	default:
		return kernelEntry.TransposedDirectFormII
	}
}

// KernelName returns the name of the block kernel set selected for this CPU.
func KernelName() string {
	kernelInitOnce.Do(initBlockKernels)

	return kernelEntry.Name
}

func toArch(c Coefficients) archregistry.Coefficients {
	return archregistry.Coefficients{
		B0: c.B0,
		B1: c.B1,
		B2: c.B2,
		A1: c.A1,
		A2: c.A2,
	}
}

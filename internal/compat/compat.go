package compat

import "github.com/you-humble/pc-builder/internal/model"

// Compatible reports whether item can join sel. It evaluates the one rule
// that applies to the item's category against the snapshot sel; categories
// without a rule are always compatible. An item of an unknown type is never
// compatible.
func Compatible(sel model.Selection, item model.Item) bool {
	switch v := item.(type) {
	case *model.Processor:
		return CPUMatchesBoard(v, sel.Motherboard)
	case *model.MemoryModule:
		return RAMMatchesBoard(v, sel.Motherboard)
	case *model.GraphicsCard:
		return GPUMatchesBoard(v, sel.Motherboard)
	case *model.PowerSupply:
		return PSUMatchesCPUGPU(v, sel.CPU, sel.GPU)
	case *model.Case:
		return CaseMatchesBoardGPUPSU(v, sel.Motherboard, sel.GPU, sel.PSU)
	case *model.Cooler:
		return CoolerMatchesCPUCase(v, sel.CPU, sel.Case)
	case *model.StorageDevice:
		return StorageMatchesBoard(v, sel.Motherboard)
	case *model.Motherboard, *model.Monitor, *model.Keyboard, *model.Mouse:
		return true
	default:
		return false
	}
}

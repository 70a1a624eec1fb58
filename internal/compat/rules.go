package compat

import (
	"strings"

	"github.com/you-humble/pc-builder/internal/model"
)

// PSUHeadroomW is added to CPU TDP and GPU TGP when sizing a power supply.
const PSUHeadroomW = 150

const (
	connector12VHPWR = "12vhpwr"
	connector8Pin    = "8-pin"
)

// CPUMatchesBoard requires the board's vendor and socket (case-insensitive)
// and lists the CPU generation among the supported ones.
func CPUMatchesBoard(cpu *model.Processor, board *model.Motherboard) bool {
	if cpu == nil || board == nil {
		return true
	}
	support := board.CPUSupport
	return equalFold(support.Vendor, cpu.Vendor) &&
		equalFold(support.Socket, cpu.Socket) &&
		contains(support.Generations, cpu.Generation)
}

// RAMMatchesBoard requires the same memory type and at least one board speed
// not lower than the module speed.
func RAMMatchesBoard(ram *model.MemoryModule, board *model.Motherboard) bool {
	if ram == nil || board == nil {
		return true
	}
	if ram.Type != board.Memory.Type {
		return false
	}
	for _, mhz := range board.Memory.SpeedsMHz {
		if mhz >= ram.SpeedMHz {
			return true
		}
	}
	return false
}

// GPUMatchesBoard only requires a PCIe x16 slot on the board.
func GPUMatchesBoard(gpu *model.GraphicsCard, board *model.Motherboard) bool {
	if gpu == nil || board == nil {
		return true
	}
	return board.Expansion.PCIeX16Slots > 0
}

// RequiredPSUWattage is CPU TDP plus GPU TGP plus PSUHeadroomW; absent parts count as zero.
func RequiredPSUWattage(cpu *model.Processor, gpu *model.GraphicsCard) float64 {
	var need float64 = PSUHeadroomW
	if cpu != nil {
		need += cpu.TDPW
	}
	if gpu != nil {
		need += gpu.Power.TGPW
	}
	return need
}

// PSUMatchesCPUGPU checks wattage and the GPU's auxiliary power connectors.
func PSUMatchesCPUGPU(psu *model.PowerSupply, cpu *model.Processor, gpu *model.GraphicsCard) bool {
	if psu == nil {
		return true
	}
	if psu.WattageW < RequiredPSUWattage(cpu, gpu) {
		return false
	}
	if gpu == nil {
		return true
	}
	connectors := gpu.Power.AuxConnectors
	if anyContainsFold(connectors, connector12VHPWR) && psu.Connectors.PCIe12VHPWR <= 0 {
		return false
	}
	return countSubstring(connectors, connector8Pin) <= psu.Connectors.PCIe8Pin
}

// CaseMatchesBoardGPUPSU checks board form factor, GPU clearance and PSU form factor.
// A board the case cannot mount always fails; GPU and PSU checks are skipped
// when the relevant dimension or form-factor list is unknown.
func CaseMatchesBoardGPUPSU(c *model.Case, board *model.Motherboard, gpu *model.GraphicsCard, psu *model.PowerSupply) bool {
	if c == nil {
		return true
	}
	if board != nil && !containsFold(c.MotherboardFormFactors, board.FormFactor) {
		return false
	}
	if gpu != nil && gpu.Size.LengthMM != nil && c.MaxGPULengthMM != nil &&
		*gpu.Size.LengthMM > *c.MaxGPULengthMM {
		return false
	}
	if psu != nil && c.PSUFormFactors != nil && psu.FormFactor != "" &&
		!contains(c.PSUFormFactors, psu.FormFactor) {
		return false
	}
	return true
}

// CoolerMatchesCPUCase checks socket and TDP against the CPU and height against the case.
func CoolerMatchesCPUCase(cooler *model.Cooler, cpu *model.Processor, c *model.Case) bool {
	if cooler == nil {
		return true
	}
	if cpu != nil {
		if !containsFold(cooler.Sockets, cpu.Socket) {
			return false
		}
		if cooler.MaxTDPW < cpu.TDPW {
			return false
		}
	}
	if c != nil && known(cooler.HeightMM) && known(c.MaxCoolerHeightMM) &&
		*cooler.HeightMM > *c.MaxCoolerHeightMM {
		return false
	}
	return true
}

// StorageMatchesBoard requires an M.2 slot for NVMe or M.2 form-factor drives
// and a SATA port for SATA drives.
func StorageMatchesBoard(d *model.StorageDevice, board *model.Motherboard) bool {
	if d == nil || board == nil {
		return true
	}
	if strings.Contains(strings.ToLower(d.FormFactor), "m.2") {
		return board.Storage.M2Slots > 0
	}
	switch d.Interface.Type {
	case model.InterfaceM2NVMe:
		return board.Storage.M2Slots > 0
	case model.InterfaceSATA, model.InterfaceM2SATA:
		return board.Storage.SATAPorts > 0
	case model.InterfaceOther:
		return true
	default:
		return true
	}
}

func known(v *float64) bool {
	return v != nil && *v != 0
}

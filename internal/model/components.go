package model

type Motherboard struct {
	Part
	FormFactor string
	Chipset    string
	Socket     string
	CPUSupport CPUSupport
	Memory     BoardMemory
	Storage    BoardStorage
	Expansion  BoardExpansion
}

type CPUSupport struct {
	Vendor      string
	Socket      string
	Generations []string
}

type BoardMemory struct {
	Type          string
	Slots         int
	MaxCapacityGB int
	SpeedsMHz     []int
}

type BoardStorage struct {
	SATAPorts int
	M2Slots   int
	M2PCIeGen string
}

type BoardExpansion struct {
	PCIeX16Slots int
	PCIeX1Slots  int
	PCIeGen      string
}

type Processor struct {
	Part
	Vendor        string
	Socket        string
	Generation    string
	Cores         int
	Threads       int
	BaseClockGHz  float64
	TurboClockGHz float64
	// Thermal design power; zero when the catalog omits it.
	TDPW          float64
	MemorySupport CPUMemorySupport
	// Nil when the catalog does not say.
	IntegratedGPU *bool
}

type CPUMemorySupport struct {
	Type   string
	MaxMHz int
}

type MemoryModule struct {
	Part
	Type             string
	KitCapacityGB    int
	Modules          int
	ModuleCapacityGB int
	SpeedMHz         int
	SpeedProfilesMHz []int
}

type GraphicsCard struct {
	Part
	Chip    string
	VRAM    VRAM
	PCIe    PCIeInterface
	Outputs DisplayOutputs
	Size    GPUSize
	Power   GPUPower
}

type VRAM struct {
	SizeGB int
	Type   string
}

type PCIeInterface struct {
	Version  string
	Lanes    int
	Physical string
}

type DisplayOutputs struct {
	HDMI int
	DP   int
	DVI  int
}

type GPUSize struct {
	// Nil when unknown.
	LengthMM      *float64
	SlotThickness float64
}

type GPUPower struct {
	// Total graphics power; zero when unknown.
	TGPW float64
	// Required auxiliary connectors, e.g. "8-pin", "12VHPWR".
	AuxConnectors   []string
	RecommendedPSUW float64
}

type PowerSupply struct {
	Part
	WattageW   float64
	Efficiency string
	FormFactor string
	Modularity string
	// Nil when unknown.
	LengthMM   *float64
	Connectors PSUConnectors
}

type PSUConnectors struct {
	PCIe8Pin    int
	PCIe12VHPWR int
	EPS8Pin     int
	SATA        int
}

type Case struct {
	Part
	FormFactor             string
	MotherboardFormFactors []string
	// Nil when unknown.
	MaxGPULengthMM *float64
	// Nil when unknown.
	MaxCoolerHeightMM *float64
	// Nil means the case does not declare supported PSU form factors.
	PSUFormFactors []string
	PSUIncluded    bool
	IncludedPSU    *IncludedPSU
	Radiators      *RadiatorSupport
}

type IncludedPSU struct {
	WattageW   float64
	Efficiency string
	FormFactor string
	Modularity string
	Connectors PSUConnectors
}

type RadiatorSupport struct {
	FrontMM []int
	TopMM   []int
	RearMM  []int
}

type StorageDevice struct {
	Part
	// e.g. "2.5in", "3.5in", "M.2 2280".
	FormFactor string
	M2Size     string
	Interface  StorageInterface
	CapacityGB int
}

type StorageInterface struct {
	Type     InterfaceType
	Protocol string
	Port     string
	PCIeGen  string
	Lanes    int
}

type CoolerType string

const (
	CoolerAir    CoolerType = "Air"
	CoolerLiquid CoolerType = "Liquid"
)

type Cooler struct {
	Part
	Type       CoolerType
	FanCount   int
	FanSizeMM  int
	RadiatorMM []int
	Sockets    []string
	MaxTDPW    float64
	// Nil when unknown (typical for liquid coolers).
	HeightMM *float64
}

type Monitor struct {
	Part
	SizeInch   float64
	Resolution string
	RefreshHz  int
}

type Keyboard struct {
	Part
	Mechanical bool
	Connection string
}

type Mouse struct {
	Part
	DPI      int
	Wireless bool
}

func (*Motherboard) Category() Category   { return CategoryMotherboard }
func (*Processor) Category() Category     { return CategoryCPU }
func (*MemoryModule) Category() Category  { return CategoryRAM }
func (*GraphicsCard) Category() Category  { return CategoryGPU }
func (*PowerSupply) Category() Category   { return CategoryPSU }
func (*Case) Category() Category          { return CategoryCase }
func (*StorageDevice) Category() Category { return CategoryStorage }
func (*Monitor) Category() Category       { return CategoryMonitor }
func (*Keyboard) Category() Category      { return CategoryKeyboard }
func (*Mouse) Category() Category         { return CategoryMouse }
func (*Cooler) Category() Category        { return CategoryCooler }

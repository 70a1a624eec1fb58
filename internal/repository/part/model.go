package repository

import "time"

// BaseEntity holds the fields every document of the parts collection carries.
type BaseEntity struct {
	ID        string      `bson:"_id" json:"id"`
	Category  string      `bson:"kategori" json:"kategori,omitempty"`
	Brand     string      `bson:"marka" json:"marka"`
	Model     string      `bson:"model,omitempty" json:"model,omitempty"`
	Name      string      `bson:"ad,omitempty" json:"ad,omitempty"`
	PriceTRY  float64     `bson:"fiyat_try" json:"fiyat_try"`
	Stock     StockEntity `bson:"stok" json:"stok"`
	Tags      []string    `bson:"etiketler,omitempty" json:"etiketler,omitempty"`
	CreatedAt *time.Time  `bson:"created_at,omitempty" json:"-"`
}

type StockEntity struct {
	Status   string `bson:"durum" json:"durum"`
	Quantity int64  `bson:"adet" json:"adet"`
}

type MotherboardEntity struct {
	BaseEntity `bson:",inline"`
	FormFactor string               `bson:"form_factor" json:"form_factor"`
	Chipset    string               `bson:"yonga_seti" json:"yonga_seti"`
	Socket     string               `bson:"soket" json:"soket"`
	CPUSupport CPUSupportEntity     `bson:"cpu_uyumluluk" json:"cpu_uyumluluk"`
	Memory     BoardMemoryEntity    `bson:"bellek" json:"bellek"`
	Storage    BoardStorageEntity   `bson:"depolama" json:"depolama"`
	Expansion  BoardExpansionEntity `bson:"genisleme" json:"genisleme"`
}

type CPUSupportEntity struct {
	Vendor      string   `bson:"vendor" json:"vendor"`
	Socket      string   `bson:"socket" json:"socket"`
	Generations []string `bson:"nesiller" json:"nesiller"`
}

type BoardMemoryEntity struct {
	Type          string `bson:"tip" json:"tip"`
	Slots         int    `bson:"yuva_sayisi" json:"yuva_sayisi"`
	MaxCapacityGB int    `bson:"max_kapasite_gb" json:"max_kapasite_gb"`
	SpeedsMHz     []int  `bson:"hiz_mhz" json:"hiz_mhz"`
}

type BoardStorageEntity struct {
	SATA      int    `bson:"sata" json:"sata"`
	M2        int    `bson:"m2" json:"m2"`
	M2PCIeGen string `bson:"m2_pci_gen,omitempty" json:"m2_pci_gen,omitempty"`
}

type BoardExpansionEntity struct {
	PCIeX16 int    `bson:"pcie_x16" json:"pcie_x16"`
	PCIeX1  int    `bson:"pcie_x1,omitempty" json:"pcie_x1,omitempty"`
	PCIeGen string `bson:"pcie_gen,omitempty" json:"pcie_gen,omitempty"`
}

type ProcessorEntity struct {
	BaseEntity    `bson:",inline"`
	Vendor        string                 `bson:"vendor" json:"vendor"`
	Socket        string                 `bson:"soket" json:"soket"`
	Generation    string                 `bson:"nesil" json:"nesil"`
	Cores         int                    `bson:"cekirdek_sayi" json:"cekirdek_sayi"`
	Threads       int                    `bson:"izlek_sayi" json:"izlek_sayi"`
	BaseClockGHz  float64                `bson:"temel_hiz_ghz" json:"temel_hiz_ghz"`
	TurboClockGHz float64                `bson:"turbo_hiz_ghz" json:"turbo_hiz_ghz"`
	TDPW          float64                `bson:"tdp_w,omitempty" json:"tdp_w,omitempty"`
	MemorySupport CPUMemorySupportEntity `bson:"bellek_destek" json:"bellek_destek"`
	IntegratedGPU *bool                  `bson:"igpu,omitempty" json:"igpu,omitempty"`
}

type CPUMemorySupportEntity struct {
	Type   string `bson:"tip" json:"tip"`
	MaxMHz int    `bson:"max_mhz" json:"max_mhz"`
}

type MemoryEntity struct {
	BaseEntity       `bson:",inline"`
	Type             string `bson:"tip" json:"tip"`
	KitCapacityGB    int    `bson:"kapasite_kit_gb" json:"kapasite_kit_gb"`
	Modules          int    `bson:"modul_sayisi" json:"modul_sayisi"`
	ModuleCapacityGB int    `bson:"kapasite_modul_gb" json:"kapasite_modul_gb"`
	SpeedMHz         int    `bson:"hiz_mhz" json:"hiz_mhz"`
	SpeedProfilesMHz []int  `bson:"hiz_profilleri_mhz,omitempty" json:"hiz_profilleri_mhz,omitempty"`
}

type GPUEntity struct {
	BaseEntity `bson:",inline"`
	Chip       string               `bson:"gpu_cipi" json:"gpu_cipi"`
	VRAM       VRAMEntity           `bson:"vram" json:"vram"`
	PCIe       PCIeInterfaceEntity  `bson:"pcie_arayuz" json:"pcie_arayuz"`
	Outputs    DisplayOutputsEntity `bson:"ekran_cikislari" json:"ekran_cikislari"`
	Size       GPUSizeEntity        `bson:"boyut" json:"boyut"`
	Power      GPUPowerEntity       `bson:"guc" json:"guc"`
}

type VRAMEntity struct {
	SizeGB int    `bson:"boyut_gb" json:"boyut_gb"`
	Type   string `bson:"tip" json:"tip"`
}

type PCIeInterfaceEntity struct {
	Version  string `bson:"surum" json:"surum"`
	Lanes    int    `bson:"hat_sayisi" json:"hat_sayisi"`
	Physical string `bson:"fiziksel" json:"fiziksel"`
}

type DisplayOutputsEntity struct {
	HDMI int `bson:"hdmi" json:"hdmi"`
	DP   int `bson:"dp" json:"dp"`
	DVI  int `bson:"dvi" json:"dvi"`
}

type GPUSizeEntity struct {
	LengthMM      *float64 `bson:"uzunluk_mm,omitempty" json:"uzunluk_mm,omitempty"`
	SlotThickness float64  `bson:"kalinlik_slot" json:"kalinlik_slot"`
}

type GPUPowerEntity struct {
	TGPW            float64  `bson:"tgp_w,omitempty" json:"tgp_w,omitempty"`
	AuxConnectors   []string `bson:"ek_guc_konnektoru" json:"ek_guc_konnektoru"`
	RecommendedPSUW float64  `bson:"onerilen_psu_w" json:"onerilen_psu_w"`
}

type PSUEntity struct {
	BaseEntity `bson:",inline"`
	WattageW   float64             `bson:"guc_w" json:"guc_w"`
	Efficiency string              `bson:"efficiency" json:"efficiency"`
	FormFactor string              `bson:"form_factor" json:"form_factor"`
	Modularity string              `bson:"moduler" json:"moduler"`
	Size       PSUSizeEntity       `bson:"boyut" json:"boyut"`
	Connectors PSUConnectorsEntity `bson:"baglantilar" json:"baglantilar"`
}

type PSUSizeEntity struct {
	LengthMM *float64 `bson:"uzunluk_mm,omitempty" json:"uzunluk_mm,omitempty"`
}

type PSUConnectorsEntity struct {
	PCIe8Pin    int `bson:"pcie_8pin_adet" json:"pcie_8pin_adet"`
	PCIe12VHPWR int `bson:"pcie_12vhpwr_adet" json:"pcie_12vhpwr_adet"`
	EPS8Pin     int `bson:"eps_8pin_adet" json:"eps_8pin_adet"`
	SATA        int `bson:"sata_adet" json:"sata_adet"`
}

type CaseEntity struct {
	BaseEntity             `bson:",inline"`
	FormFactor             string                 `bson:"form_factor" json:"form_factor"`
	MotherboardFormFactors []string               `bson:"mobo_destek" json:"mobo_destek"`
	MaxGPULengthMM         *float64               `bson:"gpu_uzunluk_max_mm,omitempty" json:"gpu_uzunluk_max_mm,omitempty"`
	MaxCoolerHeightMM      *float64               `bson:"cpu_sogutucu_yukseklik_max_mm,omitempty" json:"cpu_sogutucu_yukseklik_max_mm,omitempty"`
	PSUFormFactors         []string               `bson:"psu_destek" json:"psu_destek"`
	PSUIncluded            bool                   `bson:"psu_tumlesik" json:"psu_tumlesik"`
	IncludedPSU            *IncludedPSUEntity     `bson:"psu_dahili,omitempty" json:"psu_dahili,omitempty"`
	Radiators              *RadiatorSupportEntity `bson:"radyator_destek,omitempty" json:"radyator_destek,omitempty"`
}

type IncludedPSUEntity struct {
	WattageW   float64             `bson:"guc_w" json:"guc_w"`
	Efficiency string              `bson:"efficiency" json:"efficiency"`
	FormFactor string              `bson:"form_factor" json:"form_factor"`
	Modularity string              `bson:"moduler" json:"moduler"`
	Connectors PSUConnectorsEntity `bson:"baglantilar" json:"baglantilar"`
}

type RadiatorSupportEntity struct {
	Front []int `bson:"front,omitempty" json:"front,omitempty"`
	Top   []int `bson:"top,omitempty" json:"top,omitempty"`
	Rear  []int `bson:"rear,omitempty" json:"rear,omitempty"`
}

type StorageEntity struct {
	BaseEntity `bson:",inline"`
	FormFactor string                 `bson:"form_factor" json:"form_factor"`
	M2Size     string                 `bson:"m2_boy,omitempty" json:"m2_boy,omitempty"`
	Interface  StorageInterfaceEntity `bson:"arayuz" json:"arayuz"`
	CapacityGB int                    `bson:"kapasite_gb" json:"kapasite_gb"`
}

type StorageInterfaceEntity struct {
	Type     string `bson:"tip" json:"tip"`
	Protocol string `bson:"protokol,omitempty" json:"protokol,omitempty"`
	Port     string `bson:"port,omitempty" json:"port,omitempty"`
	PCIeGen  string `bson:"pcie_gen,omitempty" json:"pcie_gen,omitempty"`
	Lanes    int    `bson:"lanes,omitempty" json:"lanes,omitempty"`
}

type MonitorEntity struct {
	BaseEntity `bson:",inline"`
	SizeInch   float64 `bson:"boyut_inch" json:"boyut_inch"`
	Resolution string  `bson:"cozunurluk" json:"cozunurluk"`
	RefreshHz  int     `bson:"yenileme_hizi_hz" json:"yenileme_hizi_hz"`
}

type KeyboardEntity struct {
	BaseEntity `bson:",inline"`
	Mechanical bool   `bson:"mekanik" json:"mekanik"`
	Connection string `bson:"baglanti" json:"baglanti"`
}

type MouseEntity struct {
	BaseEntity `bson:",inline"`
	DPI        int  `bson:"dpi" json:"dpi"`
	Wireless   bool `bson:"kablosuz" json:"kablosuz"`
}

type CoolerEntity struct {
	BaseEntity `bson:",inline"`
	Type       string   `bson:"tip" json:"tip"`
	FanCount   int      `bson:"fan_sayisi,omitempty" json:"fan_sayisi,omitempty"`
	FanSizeMM  int      `bson:"fan_boyutu_mm,omitempty" json:"fan_boyutu_mm,omitempty"`
	RadiatorMM []int    `bson:"radyator_mm,omitempty" json:"radyator_mm,omitempty"`
	Sockets    []string `bson:"desteklenen_soketler" json:"desteklenen_soketler"`
	MaxTDPW    float64  `bson:"max_tdp_w" json:"max_tdp_w"`
	HeightMM   *float64 `bson:"yukseklik_mm,omitempty" json:"yukseklik_mm,omitempty"`
}

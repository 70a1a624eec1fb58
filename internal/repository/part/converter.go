package repository

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/you-humble/pc-builder/internal/model"
)

// entity is a document of the parts collection that converts into a catalog item.
type entity interface {
	ToModel() model.Item
}

func (e BaseEntity) toPart() model.Part {
	return model.Part{
		ID:    e.ID,
		Brand: e.Brand,
		Model: e.Model,
		Name:  e.Name,
		Price: e.PriceTRY,
		Stock: model.Stock{
			Status:   model.StockStatus(e.Stock.Status),
			Quantity: e.Stock.Quantity,
		},
		Tags: e.Tags,
	}
}

func baseFromPart(p model.Part, c model.Category, now time.Time) BaseEntity {
	return BaseEntity{
		ID:       p.ID,
		Category: c.String(),
		Brand:    p.Brand,
		Model:    p.Model,
		Name:     p.Name,
		PriceTRY: p.Price,
		Stock: StockEntity{
			Status:   string(p.Stock.Status),
			Quantity: p.Stock.Quantity,
		},
		Tags:      p.Tags,
		CreatedAt: &now,
	}
}

func (e MotherboardEntity) ToModel() model.Item {
	return &model.Motherboard{
		Part:       e.toPart(),
		FormFactor: e.FormFactor,
		Chipset:    e.Chipset,
		Socket:     e.Socket,
		CPUSupport: model.CPUSupport{
			Vendor:      e.CPUSupport.Vendor,
			Socket:      e.CPUSupport.Socket,
			Generations: e.CPUSupport.Generations,
		},
		Memory: model.BoardMemory{
			Type:          e.Memory.Type,
			Slots:         e.Memory.Slots,
			MaxCapacityGB: e.Memory.MaxCapacityGB,
			SpeedsMHz:     e.Memory.SpeedsMHz,
		},
		Storage: model.BoardStorage{
			SATAPorts: e.Storage.SATA,
			M2Slots:   e.Storage.M2,
			M2PCIeGen: e.Storage.M2PCIeGen,
		},
		Expansion: model.BoardExpansion{
			PCIeX16Slots: e.Expansion.PCIeX16,
			PCIeX1Slots:  e.Expansion.PCIeX1,
			PCIeGen:      e.Expansion.PCIeGen,
		},
	}
}

func (e ProcessorEntity) ToModel() model.Item {
	return &model.Processor{
		Part:          e.toPart(),
		Vendor:        e.Vendor,
		Socket:        e.Socket,
		Generation:    e.Generation,
		Cores:         e.Cores,
		Threads:       e.Threads,
		BaseClockGHz:  e.BaseClockGHz,
		TurboClockGHz: e.TurboClockGHz,
		TDPW:          e.TDPW,
		MemorySupport: model.CPUMemorySupport{
			Type:   e.MemorySupport.Type,
			MaxMHz: e.MemorySupport.MaxMHz,
		},
		IntegratedGPU: e.IntegratedGPU,
	}
}

func (e MemoryEntity) ToModel() model.Item {
	return &model.MemoryModule{
		Part:             e.toPart(),
		Type:             e.Type,
		KitCapacityGB:    e.KitCapacityGB,
		Modules:          e.Modules,
		ModuleCapacityGB: e.ModuleCapacityGB,
		SpeedMHz:         e.SpeedMHz,
		SpeedProfilesMHz: e.SpeedProfilesMHz,
	}
}

func (e GPUEntity) ToModel() model.Item {
	return &model.GraphicsCard{
		Part: e.toPart(),
		Chip: e.Chip,
		VRAM: model.VRAM{SizeGB: e.VRAM.SizeGB, Type: e.VRAM.Type},
		PCIe: model.PCIeInterface{
			Version:  e.PCIe.Version,
			Lanes:    e.PCIe.Lanes,
			Physical: e.PCIe.Physical,
		},
		Outputs: model.DisplayOutputs{HDMI: e.Outputs.HDMI, DP: e.Outputs.DP, DVI: e.Outputs.DVI},
		Size:    model.GPUSize{LengthMM: e.Size.LengthMM, SlotThickness: e.Size.SlotThickness},
		Power: model.GPUPower{
			TGPW:            e.Power.TGPW,
			AuxConnectors:   e.Power.AuxConnectors,
			RecommendedPSUW: e.Power.RecommendedPSUW,
		},
	}
}

func (e PSUEntity) ToModel() model.Item {
	return &model.PowerSupply{
		Part:       e.toPart(),
		WattageW:   e.WattageW,
		Efficiency: e.Efficiency,
		FormFactor: e.FormFactor,
		Modularity: e.Modularity,
		LengthMM:   e.Size.LengthMM,
		Connectors: connectorsToModel(e.Connectors),
	}
}

func (e CaseEntity) ToModel() model.Item {
	out := &model.Case{
		Part:                   e.toPart(),
		FormFactor:             e.FormFactor,
		MotherboardFormFactors: e.MotherboardFormFactors,
		MaxGPULengthMM:         e.MaxGPULengthMM,
		MaxCoolerHeightMM:      e.MaxCoolerHeightMM,
		PSUFormFactors:         e.PSUFormFactors,
		PSUIncluded:            e.PSUIncluded,
	}
	if e.IncludedPSU != nil {
		out.IncludedPSU = &model.IncludedPSU{
			WattageW:   e.IncludedPSU.WattageW,
			Efficiency: e.IncludedPSU.Efficiency,
			FormFactor: e.IncludedPSU.FormFactor,
			Modularity: e.IncludedPSU.Modularity,
			Connectors: connectorsToModel(e.IncludedPSU.Connectors),
		}
	}
	if e.Radiators != nil {
		out.Radiators = &model.RadiatorSupport{
			FrontMM: e.Radiators.Front,
			TopMM:   e.Radiators.Top,
			RearMM:  e.Radiators.Rear,
		}
	}
	return out
}

func (e StorageEntity) ToModel() model.Item {
	return &model.StorageDevice{
		Part:       e.toPart(),
		FormFactor: e.FormFactor,
		M2Size:     e.M2Size,
		Interface: model.StorageInterface{
			Type:     model.ParseInterfaceType(e.Interface.Type),
			Protocol: e.Interface.Protocol,
			Port:     e.Interface.Port,
			PCIeGen:  e.Interface.PCIeGen,
			Lanes:    e.Interface.Lanes,
		},
		CapacityGB: e.CapacityGB,
	}
}

func (e MonitorEntity) ToModel() model.Item {
	return &model.Monitor{
		Part:       e.toPart(),
		SizeInch:   e.SizeInch,
		Resolution: e.Resolution,
		RefreshHz:  e.RefreshHz,
	}
}

func (e KeyboardEntity) ToModel() model.Item {
	return &model.Keyboard{Part: e.toPart(), Mechanical: e.Mechanical, Connection: e.Connection}
}

func (e MouseEntity) ToModel() model.Item {
	return &model.Mouse{Part: e.toPart(), DPI: e.DPI, Wireless: e.Wireless}
}

func (e CoolerEntity) ToModel() model.Item {
	return &model.Cooler{
		Part:       e.toPart(),
		Type:       model.CoolerType(e.Type),
		FanCount:   e.FanCount,
		FanSizeMM:  e.FanSizeMM,
		RadiatorMM: e.RadiatorMM,
		Sockets:    e.Sockets,
		MaxTDPW:    e.MaxTDPW,
		HeightMM:   e.HeightMM,
	}
}

func connectorsToModel(c PSUConnectorsEntity) model.PSUConnectors {
	return model.PSUConnectors{
		PCIe8Pin:    c.PCIe8Pin,
		PCIe12VHPWR: c.PCIe12VHPWR,
		EPS8Pin:     c.EPS8Pin,
		SATA:        c.SATA,
	}
}

func connectorsFromModel(c model.PSUConnectors) PSUConnectorsEntity {
	return PSUConnectorsEntity{
		PCIe8Pin:    c.PCIe8Pin,
		PCIe12VHPWR: c.PCIe12VHPWR,
		EPS8Pin:     c.EPS8Pin,
		SATA:        c.SATA,
	}
}

// EntityFromModel converts a catalog item into its document.
func EntityFromModel(item model.Item, now time.Time) (any, error) {
	switch v := item.(type) {
	case *model.Motherboard:
		return MotherboardEntity{
			BaseEntity: baseFromPart(v.Part, v.Category(), now),
			FormFactor: v.FormFactor,
			Chipset:    v.Chipset,
			Socket:     v.Socket,
			CPUSupport: CPUSupportEntity{
				Vendor:      v.CPUSupport.Vendor,
				Socket:      v.CPUSupport.Socket,
				Generations: v.CPUSupport.Generations,
			},
			Memory: BoardMemoryEntity{
				Type:          v.Memory.Type,
				Slots:         v.Memory.Slots,
				MaxCapacityGB: v.Memory.MaxCapacityGB,
				SpeedsMHz:     v.Memory.SpeedsMHz,
			},
			Storage: BoardStorageEntity{
				SATA:      v.Storage.SATAPorts,
				M2:        v.Storage.M2Slots,
				M2PCIeGen: v.Storage.M2PCIeGen,
			},
			Expansion: BoardExpansionEntity{
				PCIeX16: v.Expansion.PCIeX16Slots,
				PCIeX1:  v.Expansion.PCIeX1Slots,
				PCIeGen: v.Expansion.PCIeGen,
			},
		}, nil
	case *model.Processor:
		return ProcessorEntity{
			BaseEntity:    baseFromPart(v.Part, v.Category(), now),
			Vendor:        v.Vendor,
			Socket:        v.Socket,
			Generation:    v.Generation,
			Cores:         v.Cores,
			Threads:       v.Threads,
			BaseClockGHz:  v.BaseClockGHz,
			TurboClockGHz: v.TurboClockGHz,
			TDPW:          v.TDPW,
			MemorySupport: CPUMemorySupportEntity{Type: v.MemorySupport.Type, MaxMHz: v.MemorySupport.MaxMHz},
			IntegratedGPU: v.IntegratedGPU,
		}, nil
	case *model.MemoryModule:
		return MemoryEntity{
			BaseEntity:       baseFromPart(v.Part, v.Category(), now),
			Type:             v.Type,
			KitCapacityGB:    v.KitCapacityGB,
			Modules:          v.Modules,
			ModuleCapacityGB: v.ModuleCapacityGB,
			SpeedMHz:         v.SpeedMHz,
			SpeedProfilesMHz: v.SpeedProfilesMHz,
		}, nil
	case *model.GraphicsCard:
		return GPUEntity{
			BaseEntity: baseFromPart(v.Part, v.Category(), now),
			Chip:       v.Chip,
			VRAM:       VRAMEntity{SizeGB: v.VRAM.SizeGB, Type: v.VRAM.Type},
			PCIe:       PCIeInterfaceEntity{Version: v.PCIe.Version, Lanes: v.PCIe.Lanes, Physical: v.PCIe.Physical},
			Outputs:    DisplayOutputsEntity{HDMI: v.Outputs.HDMI, DP: v.Outputs.DP, DVI: v.Outputs.DVI},
			Size:       GPUSizeEntity{LengthMM: v.Size.LengthMM, SlotThickness: v.Size.SlotThickness},
			Power: GPUPowerEntity{
				TGPW:            v.Power.TGPW,
				AuxConnectors:   v.Power.AuxConnectors,
				RecommendedPSUW: v.Power.RecommendedPSUW,
			},
		}, nil
	case *model.PowerSupply:
		return PSUEntity{
			BaseEntity: baseFromPart(v.Part, v.Category(), now),
			WattageW:   v.WattageW,
			Efficiency: v.Efficiency,
			FormFactor: v.FormFactor,
			Modularity: v.Modularity,
			Size:       PSUSizeEntity{LengthMM: v.LengthMM},
			Connectors: connectorsFromModel(v.Connectors),
		}, nil
	case *model.Case:
		out := CaseEntity{
			BaseEntity:             baseFromPart(v.Part, v.Category(), now),
			FormFactor:             v.FormFactor,
			MotherboardFormFactors: v.MotherboardFormFactors,
			MaxGPULengthMM:         v.MaxGPULengthMM,
			MaxCoolerHeightMM:      v.MaxCoolerHeightMM,
			PSUFormFactors:         v.PSUFormFactors,
			PSUIncluded:            v.PSUIncluded,
		}
		if v.IncludedPSU != nil {
			out.IncludedPSU = &IncludedPSUEntity{
				WattageW:   v.IncludedPSU.WattageW,
				Efficiency: v.IncludedPSU.Efficiency,
				FormFactor: v.IncludedPSU.FormFactor,
				Modularity: v.IncludedPSU.Modularity,
				Connectors: connectorsFromModel(v.IncludedPSU.Connectors),
			}
		}
		if v.Radiators != nil {
			out.Radiators = &RadiatorSupportEntity{
				Front: v.Radiators.FrontMM,
				Top:   v.Radiators.TopMM,
				Rear:  v.Radiators.RearMM,
			}
		}
		return out, nil
	case *model.StorageDevice:
		return StorageEntity{
			BaseEntity: baseFromPart(v.Part, v.Category(), now),
			FormFactor: v.FormFactor,
			M2Size:     v.M2Size,
			Interface: StorageInterfaceEntity{
				Type:     v.Interface.Type.String(),
				Protocol: v.Interface.Protocol,
				Port:     v.Interface.Port,
				PCIeGen:  v.Interface.PCIeGen,
				Lanes:    v.Interface.Lanes,
			},
			CapacityGB: v.CapacityGB,
		}, nil
	case *model.Monitor:
		return MonitorEntity{
			BaseEntity: baseFromPart(v.Part, v.Category(), now),
			SizeInch:   v.SizeInch,
			Resolution: v.Resolution,
			RefreshHz:  v.RefreshHz,
		}, nil
	case *model.Keyboard:
		return KeyboardEntity{
			BaseEntity: baseFromPart(v.Part, v.Category(), now),
			Mechanical: v.Mechanical,
			Connection: v.Connection,
		}, nil
	case *model.Mouse:
		return MouseEntity{
			BaseEntity: baseFromPart(v.Part, v.Category(), now),
			DPI:        v.DPI,
			Wireless:   v.Wireless,
		}, nil
	case *model.Cooler:
		return CoolerEntity{
			BaseEntity: baseFromPart(v.Part, v.Category(), now),
			Type:       string(v.Type),
			FanCount:   v.FanCount,
			FanSizeMM:  v.FanSizeMM,
			RadiatorMM: v.RadiatorMM,
			Sockets:    v.Sockets,
			MaxTDPW:    v.MaxTDPW,
			HeightMM:   v.HeightMM,
		}, nil
	default:
		return nil, fmt.Errorf("%w: %T", model.ErrUnknownCategory, item)
	}
}

// BuildMongoFilter translates the stored part of a picker filter into a query
// over one category.
func BuildMongoFilter(c model.Category, f model.PartsFilter) bson.M {
	q := bson.M{"kategori": c.String()}

	if f.Brand != "" {
		q["marka"] = f.Brand
	}

	price := bson.M{}
	if f.MinPrice != nil {
		price["$gte"] = *f.MinPrice
	}
	if f.MaxPrice != nil {
		price["$lte"] = *f.MaxPrice
	}
	if len(price) > 0 {
		q["fiyat_try"] = price
	}

	if !f.IncludeOutOfStock {
		q["stok.durum"] = string(model.StockInStock)
	}

	return q
}

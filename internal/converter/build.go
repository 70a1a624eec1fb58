package converter

import (
	"fmt"

	"github.com/samber/lo"

	buildv1 "github.com/you-humble/pc-builder/internal/api/build/v1"
	"github.com/you-humble/pc-builder/internal/model"
)

func PartToAPI(it model.Item) buildv1.Part {
	p := it.Base()
	return buildv1.Part{
		ID:       p.ID,
		Category: it.Category().String(),
		Brand:    p.Brand,
		Model:    p.Model,
		Name:     p.Name,
		Price:    p.Price,
		Stock:    buildv1.Stock{Status: string(p.Stock.Status), Quantity: p.Stock.Quantity},
		Tags:     p.Tags,
		Specs:    specs(it),
	}
}

func PartsToAPI(items []model.Item) []buildv1.Part {
	return lo.Map(items, func(it model.Item, _ int) buildv1.Part { return PartToAPI(it) })
}

func CandidatesToAPI(cs []model.Candidate) []buildv1.Candidate {
	return lo.Map(cs, func(c model.Candidate, _ int) buildv1.Candidate {
		return buildv1.Candidate{Part: PartToAPI(c.Item), Compatible: c.Compatible, Disabled: c.Disabled}
	})
}

func CartToAPI(cart model.Cart) []buildv1.CartItem {
	return lo.Map(cart, func(ci model.CartItem, i int) buildv1.CartItem {
		return buildv1.CartItem{Index: i, Category: ci.Category.String(), Part: PartToAPI(ci.Item)}
	})
}

func BuildToAPI(b model.Build) buildv1.Build {
	sel := make(map[string]buildv1.Part, b.Selection.Count())
	for _, it := range b.Selection.Items() {
		sel[it.Category().String()] = PartToAPI(it)
	}
	return buildv1.Build{
		ID:        b.ID.String(),
		Selection: sel,
		Cart:      CartToAPI(b.Cart),
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func SummaryToAPI(s model.BuildSummary) buildv1.Summary {
	// Extras keep their position in the cart so they can be removed by index.
	extras := make([]buildv1.CartItem, 0, len(s.Extras))
	extraIDs := lo.SliceToMap(s.Extras, func(ci model.CartItem) (string, struct{}) {
		return ci.Item.Base().ID, struct{}{}
	})
	for _, ci := range CartToAPI(s.Cart) {
		if _, ok := extraIDs[ci.Part.ID]; ok {
			extras = append(extras, ci)
		}
	}

	return buildv1.Summary{
		ID:            s.ID.String(),
		Selected:      PartsToAPI(s.Selected),
		SelectedCount: s.SelectedCount,
		CategoryCount: s.CategoryCount,
		Progress:      fmt.Sprintf("%d/%d", s.SelectedCount, s.CategoryCount),
		Total:         s.Total,
		TotalText:     s.TotalText,
		Cart:          CartToAPI(s.Cart),
		CartCount:     s.CartCount,
		CartTotal:     s.CartTotal,
		CartTotalText: s.CartTotalText,
		Extras:        extras,
	}
}

func CheckoutToAPI(ev model.CartCheckedOut) buildv1.Checkout {
	return buildv1.Checkout{
		EventID: ev.EventID.String(),
		BuildID: ev.BuildID.String(),
		Items: lo.Map(ev.Items, func(it model.CheckedOutItem, _ int) buildv1.CheckoutItem {
			return buildv1.CheckoutItem{
				Category: it.Category.String(),
				PartID:   it.PartID,
				Name:     it.Name,
				Price:    it.Price,
			}
		}),
		Total:      ev.Total,
		TotalText:  model.PriceText(ev.Total),
		OccurredAt: ev.OccurredAt,
	}
}

// specs exposes the attributes the compatibility rules read, keyed like the catalog documents.
func specs(it model.Item) map[string]any {
	switch v := it.(type) {
	case *model.Motherboard:
		return map[string]any{
			"form_factor": v.FormFactor,
			"yonga_seti":  v.Chipset,
			"cpu_uyumluluk": map[string]any{
				"vendor":   v.CPUSupport.Vendor,
				"socket":   v.CPUSupport.Socket,
				"nesiller": v.CPUSupport.Generations,
			},
			"bellek":    map[string]any{"tip": v.Memory.Type, "hiz_mhz": v.Memory.SpeedsMHz},
			"depolama":  map[string]any{"sata": v.Storage.SATAPorts, "m2": v.Storage.M2Slots},
			"genisleme": map[string]any{"pcie_x16": v.Expansion.PCIeX16Slots},
		}
	case *model.Processor:
		return map[string]any{
			"vendor":        v.Vendor,
			"soket":         v.Socket,
			"nesil":         v.Generation,
			"cekirdek_sayi": v.Cores,
			"izlek_sayi":    v.Threads,
			"tdp_w":         v.TDPW,
		}
	case *model.MemoryModule:
		return map[string]any{"tip": v.Type, "kapasite_kit_gb": v.KitCapacityGB, "hiz_mhz": v.SpeedMHz}
	case *model.GraphicsCard:
		return map[string]any{
			"gpu_cipi":          v.Chip,
			"vram_gb":           v.VRAM.SizeGB,
			"uzunluk_mm":        v.Size.LengthMM,
			"tgp_w":             v.Power.TGPW,
			"ek_guc_konnektoru": v.Power.AuxConnectors,
			"onerilen_psu_w":    v.Power.RecommendedPSUW,
		}
	case *model.PowerSupply:
		return map[string]any{
			"guc_w":             v.WattageW,
			"efficiency":        v.Efficiency,
			"form_factor":       v.FormFactor,
			"pcie_8pin_adet":    v.Connectors.PCIe8Pin,
			"pcie_12vhpwr_adet": v.Connectors.PCIe12VHPWR,
		}
	case *model.Case:
		return map[string]any{
			"form_factor":                   v.FormFactor,
			"mobo_destek":                   v.MotherboardFormFactors,
			"gpu_uzunluk_max_mm":            v.MaxGPULengthMM,
			"cpu_sogutucu_yukseklik_max_mm": v.MaxCoolerHeightMM,
			"psu_destek":                    v.PSUFormFactors,
			"psu_tumlesik":                  v.PSUIncluded,
		}
	case *model.StorageDevice:
		return map[string]any{
			"form_factor": v.FormFactor,
			"arayuz":      v.Interface.Type.String(),
			"kapasite_gb": v.CapacityGB,
		}
	case *model.Cooler:
		return map[string]any{
			"tip":                  string(v.Type),
			"desteklenen_soketler": v.Sockets,
			"max_tdp_w":            v.MaxTDPW,
			"yukseklik_mm":         v.HeightMM,
		}
	case *model.Monitor:
		return map[string]any{"boyut_inch": v.SizeInch, "cozunurluk": v.Resolution, "yenileme_hizi_hz": v.RefreshHz}
	case *model.Keyboard:
		return map[string]any{"mekanik": v.Mechanical, "baglanti": v.Connection}
	case *model.Mouse:
		return map[string]any{"dpi": v.DPI, "kablosuz": v.Wireless}
	default:
		return nil
	}
}

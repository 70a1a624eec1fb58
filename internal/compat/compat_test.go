package compat

import (
	"reflect"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/pc-builder/internal/model"
)

func hostileSelection() model.Selection {
	return model.Selection{
		Motherboard: &model.Motherboard{FormFactor: "Mini-ITX"},
		CPU:         &model.Processor{Socket: "LGA1700", TDPW: 250},
		GPU:         &model.GraphicsCard{Power: model.GPUPower{TGPW: 450, AuxConnectors: []string{"12VHPWR"}}},
		Case:        &model.Case{},
	}
}

func TestCompatible_RuleFreeCategoriesAlwaysPass(t *testing.T) {
	t.Parallel()

	sel := hostileSelection()
	items := []model.Item{
		&model.Monitor{Part: model.Part{ID: gofakeit.UUID(), Price: gofakeit.Price(1000, 20000)}},
		&model.Keyboard{Part: model.Part{ID: gofakeit.UUID(), Stock: model.Stock{Status: model.StockOutOfStock}}},
		&model.Mouse{Part: model.Part{ID: gofakeit.UUID()}},
		&model.Motherboard{Part: model.Part{ID: gofakeit.UUID()}},
	}
	for _, it := range items {
		assert.True(t, Compatible(sel, it), it.Category().String())
		assert.True(t, Compatible(model.Selection{}, it), it.Category().String())
	}
}

func TestCompatible_EmptySelectionNeverFails(t *testing.T) {
	t.Parallel()

	items := []model.Item{
		&model.Processor{Vendor: "AMD", Socket: "AM5", Generation: "Zen4"},
		&model.MemoryModule{Type: "DDR5", SpeedMHz: 6000},
		&model.GraphicsCard{},
		&model.PowerSupply{WattageW: 150},
		&model.Case{},
		&model.Cooler{},
		&model.StorageDevice{Interface: model.StorageInterface{Type: model.InterfaceM2NVMe}},
	}
	for _, it := range items {
		assert.True(t, Compatible(model.Selection{}, it), it.Category().String())
	}
}

func TestCompatible_Dispatch(t *testing.T) {
	t.Parallel()

	board := amdBoard()
	sel, err := model.Selection{}.With(board)
	require.NoError(t, err)

	zen4 := &model.Processor{Vendor: "AMD", Socket: "AM5", Generation: "Zen4"}
	zen3 := &model.Processor{Vendor: "AMD", Socket: "AM5", Generation: "Zen3"}
	assert.True(t, Compatible(sel, zen4))
	assert.False(t, Compatible(sel, zen3))

	nvme := &model.StorageDevice{Interface: model.StorageInterface{Type: model.InterfaceM2NVMe}}
	assert.True(t, Compatible(sel, nvme))

	noM2 := *board
	noM2.Storage.M2Slots = 0
	sel, err = sel.With(&noM2)
	require.NoError(t, err)
	assert.False(t, Compatible(sel, nvme))

	sel, err = model.Selection{}.With(&model.Processor{TDPW: 105})
	require.NoError(t, err)
	sel, err = sel.With(&model.GraphicsCard{Power: model.GPUPower{TGPW: 320}})
	require.NoError(t, err)
	assert.True(t, Compatible(sel, &model.PowerSupply{WattageW: 650}))
	assert.False(t, Compatible(sel, &model.PowerSupply{WattageW: 500}))
}

func TestCompatible_Pure(t *testing.T) {
	t.Parallel()

	sel := hostileSelection()
	items := []model.Item{
		&model.PowerSupply{WattageW: 1200, Connectors: model.PSUConnectors{PCIe12VHPWR: 1}},
		&model.PowerSupply{WattageW: 1200},
		&model.Cooler{Sockets: []string{"LGA1700"}, MaxTDPW: 300},
		&model.Case{MotherboardFormFactors: []string{"ATX"}},
		&model.MemoryModule{Type: "DDR5"},
	}

	first := make([]bool, len(items))
	for i, it := range items {
		first[i] = Compatible(sel, it)
	}
	// reverse order, twice
	for range 2 {
		for i := len(items) - 1; i >= 0; i-- {
			assert.Equal(t, first[i], Compatible(sel, items[i]))
		}
	}
	assert.Equal(t, []bool{true, false, true, false, false}, first)
}

type unknownItem struct{ model.Part }

func (unknownItem) Category() model.Category { return model.CategoryCPU }

func TestCompatible_UnknownItemTypeFails(t *testing.T) {
	t.Parallel()

	assert.False(t, Compatible(model.Selection{}, unknownItem{}))
	assert.False(t, Compatible(hostileSelection(), unknownItem{}))
}

func TestComponents_OnlyPointersAreItems(t *testing.T) {
	t.Parallel()

	itemType := reflect.TypeFor[model.Item]()
	values := []any{
		model.Motherboard{}, model.Processor{}, model.MemoryModule{}, model.GraphicsCard{},
		model.PowerSupply{}, model.Case{}, model.StorageDevice{}, model.Monitor{},
		model.Keyboard{}, model.Mouse{}, model.Cooler{},
	}
	for _, v := range values {
		typ := reflect.TypeOf(v)
		assert.False(t, typ.Implements(itemType), typ.String())
		assert.True(t, reflect.PointerTo(typ).Implements(itemType), typ.String())
	}
}

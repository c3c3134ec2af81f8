package domain

import "sort"

type MaterialCategory string

const (
	MaterialConcrete MaterialCategory = "concrete"
	MaterialSteel    MaterialCategory = "steel"
	MaterialTimber   MaterialCategory = "timber"
	MaterialOther    MaterialCategory = "other"
)

// Material describes a concrete class or a steel grade.
type Material struct {
	ID           uint64           `json:"id" yaml:"id"`
	Name         string           `json:"name" yaml:"name"`
	Category     MaterialCategory `json:"category" yaml:"category"`
	Class        string           `json:"class,omitempty" yaml:"class,omitempty"` // concrete class, e.g. C25
	Grade        string           `json:"grade,omitempty" yaml:"grade,omitempty"` // steel grade, e.g. S420
	DiameterMM   float32          `json:"diameter_mm,omitempty" yaml:"diameter_mm,omitempty"`
	HatchPattern string           `json:"hatch_pattern" yaml:"hatch_pattern"`
	Color        [4]uint8         `json:"color" yaml:"color"`
}

func NewConcrete(id uint64, name, class string) *Material {
	return &Material{
		ID: id, Name: name, Category: MaterialConcrete, Class: class,
		HatchPattern: "ANSI37",
		Color:        [4]uint8{128, 128, 128, 255},
	}
}

func NewSteel(id uint64, name, grade string, diameterMM float32) *Material {
	return &Material{
		ID: id, Name: name, Category: MaterialSteel, Grade: grade, DiameterMM: diameterMM,
		HatchPattern: "ANSI31",
		Color:        [4]uint8{70, 130, 180, 255},
	}
}

// ColumnType is a reusable column section. Width and Depth are in drawing
// units; bar diameters in mm; stirrup spacings in cm.
type ColumnType struct {
	ID                 uint64    `json:"id" yaml:"id"`
	Name               string    `json:"name" yaml:"name"`
	Width              float32   `json:"width" yaml:"width"`
	Depth              float32   `json:"depth" yaml:"depth"`
	ConcreteMaterialID uint64    `json:"concrete_material_id" yaml:"concrete_material_id"`
	RebarMaterialID    uint64    `json:"rebar_material_id" yaml:"rebar_material_id"`
	LongBarDiameter    float32   `json:"long_bar_diameter" yaml:"long_bar_diameter"`
	LongBarsX          uint32    `json:"long_bars_x" yaml:"long_bars_x"`
	LongBarsY          uint32    `json:"long_bars_y" yaml:"long_bars_y"`
	StirrupDiameter    float32   `json:"stirrup_diameter" yaml:"stirrup_diameter"`
	StirrupSpacingSupp float32   `json:"stirrup_spacing_supp" yaml:"stirrup_spacing_supp"`
	StirrupSpacingMid  float32   `json:"stirrup_spacing_mid" yaml:"stirrup_spacing_mid"`
	HasTies            bool      `json:"has_ties" yaml:"has_ties"`
	ColorOverride      *[4]uint8 `json:"color_override,omitempty" yaml:"color_override,omitempty"`
}

func NewColumnType(id uint64, name string, width, depth float32, concreteID, rebarID uint64) *ColumnType {
	return &ColumnType{
		ID: id, Name: name, Width: width, Depth: depth,
		ConcreteMaterialID: concreteID,
		RebarMaterialID:    rebarID,
		LongBarDiameter:    14,
		LongBarsX:          3,
		LongBarsY:          3,
		StirrupDiameter:    8,
		StirrupSpacingSupp: 10,
		StirrupSpacingMid:  20,
		HasTies:            true,
	}
}

type BeamRebarZone struct {
	TieDiameter float32 `json:"tie_diameter" yaml:"tie_diameter"`
	TieSpacing  float32 `json:"tie_spacing" yaml:"tie_spacing"`
}

type BeamType struct {
	ID                 uint64        `json:"id" yaml:"id"`
	Name               string        `json:"name" yaml:"name"`
	Width              float32       `json:"width" yaml:"width"`
	Height             float32       `json:"height" yaml:"height"`
	ConcreteMaterialID uint64        `json:"concrete_material_id" yaml:"concrete_material_id"`
	SteelMaterialID    uint64        `json:"steel_material_id" yaml:"steel_material_id"`
	TopBarDiameter     float32       `json:"top_bar_diameter" yaml:"top_bar_diameter"`
	TopBarCount        uint32        `json:"top_bar_count" yaml:"top_bar_count"`
	BottomBarDiameter  float32       `json:"bottom_bar_diameter" yaml:"bottom_bar_diameter"`
	BottomBarCount     uint32        `json:"bottom_bar_count" yaml:"bottom_bar_count"`
	SideBarDiameter    float32       `json:"side_bar_diameter" yaml:"side_bar_diameter"`
	SideBarCount       uint32        `json:"side_bar_count" yaml:"side_bar_count"`
	ZoneLeft           BeamRebarZone `json:"zone_left" yaml:"zone_left"`
	ZoneMid            BeamRebarZone `json:"zone_mid" yaml:"zone_mid"`
	ZoneRight          BeamRebarZone `json:"zone_right" yaml:"zone_right"`
	SupportZoneRatio   float32       `json:"support_zone_ratio" yaml:"support_zone_ratio"`
	ColorOverride      *[4]uint8     `json:"color_override,omitempty" yaml:"color_override,omitempty"`
}

func NewBeamType(id uint64, name string, width, height float32, concreteID, steelID uint64) *BeamType {
	return &BeamType{
		ID: id, Name: name, Width: width, Height: height,
		ConcreteMaterialID: concreteID,
		SteelMaterialID:    steelID,
		TopBarDiameter:     14,
		TopBarCount:        3,
		BottomBarDiameter:  14,
		BottomBarCount:     3,
		SideBarDiameter:    10,
		ZoneLeft:           BeamRebarZone{TieDiameter: 8, TieSpacing: 10},
		ZoneMid:            BeamRebarZone{TieDiameter: 8, TieSpacing: 20},
		ZoneRight:          BeamRebarZone{TieDiameter: 8, TieSpacing: 10},
		SupportZoneRatio:   0.25,
	}
}

// Definitions is the structural type library of a drawing. All three maps
// share one id sequence starting at 1.
type Definitions struct {
	Materials   map[uint64]*Material   `json:"materials" yaml:"materials"`
	ColumnTypes map[uint64]*ColumnType `json:"column_types" yaml:"column_types"`
	BeamTypes   map[uint64]*BeamType   `json:"beam_types" yaml:"beam_types"`
	NextID      uint64                 `json:"next_id" yaml:"next_id"`
}

func NewDefinitions() *Definitions {
	return &Definitions{
		Materials:   map[uint64]*Material{},
		ColumnTypes: map[uint64]*ColumnType{},
		BeamTypes:   map[uint64]*BeamType{},
		NextID:      1,
	}
}

func (d *Definitions) nextID() uint64 {
	id := d.NextID
	d.NextID++
	return id
}

// claim assigns an id when id is zero and keeps NextID ahead of explicit ids.
func (d *Definitions) claim(id uint64) uint64 {
	if id == 0 {
		return d.nextID()
	}
	if id >= d.NextID {
		d.NextID = id + 1
	}
	return id
}

func (d *Definitions) AddMaterial(m *Material) uint64 {
	m.ID = d.claim(m.ID)
	d.Materials[m.ID] = m
	return m.ID
}

func (d *Definitions) AddColumnType(t *ColumnType) uint64 {
	t.ID = d.claim(t.ID)
	d.ColumnTypes[t.ID] = t
	return t.ID
}

func (d *Definitions) AddBeamType(t *BeamType) uint64 {
	t.ID = d.claim(t.ID)
	d.BeamTypes[t.ID] = t
	return t.ID
}

func (d *Definitions) Material(id uint64) (*Material, bool) {
	m, ok := d.Materials[id]
	return m, ok
}

func (d *Definitions) ColumnType(id uint64) (*ColumnType, bool) {
	t, ok := d.ColumnTypes[id]
	return t, ok
}

func (d *Definitions) BeamType(id uint64) (*BeamType, bool) {
	t, ok := d.BeamTypes[id]
	return t, ok
}

func (d *Definitions) RemoveMaterial(id uint64)   { delete(d.Materials, id) }
func (d *Definitions) RemoveColumnType(id uint64) { delete(d.ColumnTypes, id) }
func (d *Definitions) RemoveBeamType(id uint64)   { delete(d.BeamTypes, id) }

// ResolveColumnType returns the type with id, or the lowest-id type when id
// is zero or unknown.
func (d *Definitions) ResolveColumnType(id uint64) (*ColumnType, bool) {
	if t, ok := d.ColumnTypes[id]; ok {
		return t, true
	}
	ids := sortedKeys(d.ColumnTypes)
	if len(ids) == 0 {
		return nil, false
	}
	return d.ColumnTypes[ids[0]], true
}

// ResolveBeamType behaves like ResolveColumnType.
func (d *Definitions) ResolveBeamType(id uint64) (*BeamType, bool) {
	if t, ok := d.BeamTypes[id]; ok {
		return t, true
	}
	ids := sortedKeys(d.BeamTypes)
	if len(ids) == 0 {
		return nil, false
	}
	return d.BeamTypes[ids[0]], true
}

// SortedColumnTypes lists column types by id.
func (d *Definitions) SortedColumnTypes() []*ColumnType {
	out := make([]*ColumnType, 0, len(d.ColumnTypes))
	for _, id := range sortedKeys(d.ColumnTypes) {
		out = append(out, d.ColumnTypes[id])
	}
	return out
}

func (d *Definitions) SortedBeamTypes() []*BeamType {
	out := make([]*BeamType, 0, len(d.BeamTypes))
	for _, id := range sortedKeys(d.BeamTypes) {
		out = append(out, d.BeamTypes[id])
	}
	return out
}

func (d *Definitions) Clone() *Definitions {
	cp := NewDefinitions()
	cp.NextID = d.NextID
	for id, m := range d.Materials {
		c := *m
		cp.Materials[id] = &c
	}
	for id, t := range d.ColumnTypes {
		c := *t
		cp.ColumnTypes[id] = &c
	}
	for id, t := range d.BeamTypes {
		c := *t
		cp.BeamTypes[id] = &c
	}
	return cp
}

// SeedDefaults adds a C25 concrete, an S420 steel, a 40x40 column type and a
// 25x50 beam type when the library is empty.
func (d *Definitions) SeedDefaults() {
	if len(d.Materials)+len(d.ColumnTypes)+len(d.BeamTypes) > 0 {
		return
	}
	conc := d.AddMaterial(NewConcrete(0, "Concrete C25", "C25"))
	steel := d.AddMaterial(NewSteel(0, "Steel S420", "S420", 12))
	d.AddColumnType(NewColumnType(0, "S40x40", 40, 40, conc, steel))
	d.AddBeamType(NewBeamType(0, "K25x50", 25, 50, conc, steel))
}

func sortedKeys[V any](m map[uint64]V) []uint64 {
	ids := make([]uint64, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

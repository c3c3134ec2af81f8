package domain

// ProjectVersion is written into every saved project.
const ProjectVersion = "1.0.0"

// SnapConfig is carried with a project; the engine itself does not snap.
type SnapConfig struct {
	Enabled      bool    `json:"enabled" yaml:"enabled" mapstructure:"enabled"`
	Tolerance    float32 `json:"tolerance" yaml:"tolerance" mapstructure:"tolerance"`
	Grid         bool    `json:"grid" yaml:"grid" mapstructure:"grid"`
	GridSize     float32 `json:"grid_size" yaml:"grid_size" mapstructure:"grid_size"`
	Endpoint     bool    `json:"endpoint" yaml:"endpoint" mapstructure:"endpoint"`
	Midpoint     bool    `json:"midpoint" yaml:"midpoint" mapstructure:"midpoint"`
	Center       bool    `json:"center" yaml:"center" mapstructure:"center"`
	Intersection bool    `json:"intersection" yaml:"intersection" mapstructure:"intersection"`
	Axis         bool    `json:"axis" yaml:"axis" mapstructure:"axis"`
}

func DefaultSnapConfig() SnapConfig {
	return SnapConfig{
		Enabled:      true,
		Tolerance:    15,
		GridSize:     10,
		Endpoint:     true,
		Midpoint:     true,
		Center:       true,
		Intersection: true,
		Axis:         true,
	}
}

// Project is the persisted form of a drawing.
type Project struct {
	Version      string        `json:"version"`
	Name         string        `json:"name,omitempty"`
	Entities     []*Entity     `json:"entities"`
	Axes         *AxisManager  `json:"axes"`
	Layers       *LayerManager `json:"layers"`
	Definitions  *Definitions  `json:"definitions"`
	ExportRegion *Box          `json:"export_region,omitempty"`
	Snap         SnapConfig    `json:"snap"`
	NextID       uint64        `json:"next_id"`

	// Sealed is the encrypted form of a whole project, written by an
	// encrypting store. When set, the other sections are empty.
	Sealed []byte `json:"sealed,omitempty"`
}

// Project captures the model as an independent copy.
func (m *Model) Project(snap SnapConfig) *Project {
	p := &Project{
		Version:     ProjectVersion,
		Entities:    m.Snapshot(),
		Axes:        m.Axes.Clone(),
		Layers:      m.Layers.Clone(),
		Definitions: m.Definitions.Clone(),
		Snap:        snap,
		NextID:      m.nextID,
	}
	if m.ExportRegion != nil {
		r := *m.ExportRegion
		p.ExportRegion = &r
	}
	return p
}

// ModelFromProject rebuilds a model. Missing sections fall back to
// defaults.
func ModelFromProject(p *Project) *Model {
	m := NewModel()
	if p == nil {
		return m
	}
	if p.Axes != nil {
		m.Axes = p.Axes.Clone()
	}
	if p.Layers != nil && len(p.Layers.Layers) > 0 {
		m.Layers = p.Layers.Clone()
	}
	if p.Definitions != nil {
		m.Definitions = p.Definitions.Clone()
		if m.Definitions.Materials == nil {
			m.Definitions.Materials = map[uint64]*Material{}
		}
		if m.Definitions.ColumnTypes == nil {
			m.Definitions.ColumnTypes = map[uint64]*ColumnType{}
		}
		if m.Definitions.BeamTypes == nil {
			m.Definitions.BeamTypes = map[uint64]*BeamType{}
		}
		if m.Definitions.NextID == 0 {
			m.Definitions.NextID = 1
		}
	}
	if p.ExportRegion != nil {
		r := *p.ExportRegion
		m.ExportRegion = &r
	}
	m.nextID = p.NextID
	m.SetEntities(CloneEntities(p.Entities))
	return m
}

// Clone returns an independent copy of p.
func (p *Project) Clone() *Project {
	cp := ModelFromProject(p).Project(p.Snap)
	cp.Version, cp.Name = p.Version, p.Name
	cp.Sealed = append([]byte(nil), p.Sealed...)
	return cp
}

package loam

// Document kinds understood by the catalog.
const (
	KindColumn = "column"
	KindBeam   = "beam"
)

// TypeMetadata is the front matter of a catalog document. Zero fields fall
// back to the defaults of domain.NewColumnType and domain.NewBeamType.
// It uses "mapstructure" tags to match the YAML keys.
type TypeMetadata struct {
	Kind     string  `json:"kind" yaml:"kind" mapstructure:"kind"`
	Name     string  `json:"name" yaml:"name" mapstructure:"name"`
	Width    float32 `json:"width" yaml:"width" mapstructure:"width"`
	Depth    float32 `json:"depth,omitempty" yaml:"depth,omitempty" mapstructure:"depth"`
	Height   float32 `json:"height,omitempty" yaml:"height,omitempty" mapstructure:"height"`
	Concrete string  `json:"concrete" yaml:"concrete" mapstructure:"concrete"` // class, e.g. C25
	Steel    string  `json:"steel" yaml:"steel" mapstructure:"steel"`          // grade, e.g. S420

	// Columns
	LongBarDiameter    float32 `json:"long_bar_diameter,omitempty" yaml:"long_bar_diameter,omitempty" mapstructure:"long_bar_diameter"`
	LongBarsX          uint32  `json:"long_bars_x,omitempty" yaml:"long_bars_x,omitempty" mapstructure:"long_bars_x"`
	LongBarsY          uint32  `json:"long_bars_y,omitempty" yaml:"long_bars_y,omitempty" mapstructure:"long_bars_y"`
	StirrupDiameter    float32 `json:"stirrup_diameter,omitempty" yaml:"stirrup_diameter,omitempty" mapstructure:"stirrup_diameter"`
	StirrupSpacingSupp float32 `json:"stirrup_spacing_supp,omitempty" yaml:"stirrup_spacing_supp,omitempty" mapstructure:"stirrup_spacing_supp"`
	StirrupSpacingMid  float32 `json:"stirrup_spacing_mid,omitempty" yaml:"stirrup_spacing_mid,omitempty" mapstructure:"stirrup_spacing_mid"`
	HasTies            *bool   `json:"has_ties,omitempty" yaml:"has_ties,omitempty" mapstructure:"has_ties"`

	// Beams
	TopBarDiameter    float32 `json:"top_bar_diameter,omitempty" yaml:"top_bar_diameter,omitempty" mapstructure:"top_bar_diameter"`
	TopBarCount       uint32  `json:"top_bar_count,omitempty" yaml:"top_bar_count,omitempty" mapstructure:"top_bar_count"`
	BottomBarDiameter float32 `json:"bottom_bar_diameter,omitempty" yaml:"bottom_bar_diameter,omitempty" mapstructure:"bottom_bar_diameter"`
	BottomBarCount    uint32  `json:"bottom_bar_count,omitempty" yaml:"bottom_bar_count,omitempty" mapstructure:"bottom_bar_count"`
	SideBarDiameter   float32 `json:"side_bar_diameter,omitempty" yaml:"side_bar_diameter,omitempty" mapstructure:"side_bar_diameter"`
	SideBarCount      uint32  `json:"side_bar_count,omitempty" yaml:"side_bar_count,omitempty" mapstructure:"side_bar_count"`
	TieDiameter       float32 `json:"tie_diameter,omitempty" yaml:"tie_diameter,omitempty" mapstructure:"tie_diameter"`
	TieSpacingSupport float32 `json:"tie_spacing_support,omitempty" yaml:"tie_spacing_support,omitempty" mapstructure:"tie_spacing_support"`
	TieSpacingMid     float32 `json:"tie_spacing_mid,omitempty" yaml:"tie_spacing_mid,omitempty" mapstructure:"tie_spacing_mid"`
	SupportZoneRatio  float32 `json:"support_zone_ratio,omitempty" yaml:"support_zone_ratio,omitempty" mapstructure:"support_zone_ratio"`
}

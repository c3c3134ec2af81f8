package loam

import (
	"fmt"

	"github.com/Hakkology/MuginCAD-sub000/pkg/domain"
)

const defaultRebarDiameter = 12

func materialNames(defs *domain.Definitions, concreteID, steelID uint64) (string, string) {
	var concrete, steel string
	if m, ok := defs.Material(concreteID); ok {
		concrete = m.Class
	}
	if m, ok := defs.Material(steelID); ok {
		steel = m.Grade
	}
	return concrete, steel
}

func columnMetadata(defs *domain.Definitions, t *domain.ColumnType) TypeMetadata {
	concrete, steel := materialNames(defs, t.ConcreteMaterialID, t.RebarMaterialID)
	ties := t.HasTies
	return TypeMetadata{
		Kind:               KindColumn,
		Name:               t.Name,
		Width:              t.Width,
		Depth:              t.Depth,
		Concrete:           concrete,
		Steel:              steel,
		LongBarDiameter:    t.LongBarDiameter,
		LongBarsX:          t.LongBarsX,
		LongBarsY:          t.LongBarsY,
		StirrupDiameter:    t.StirrupDiameter,
		StirrupSpacingSupp: t.StirrupSpacingSupp,
		StirrupSpacingMid:  t.StirrupSpacingMid,
		HasTies:            &ties,
	}
}

func beamMetadata(defs *domain.Definitions, t *domain.BeamType) TypeMetadata {
	concrete, steel := materialNames(defs, t.ConcreteMaterialID, t.SteelMaterialID)
	return TypeMetadata{
		Kind:              KindBeam,
		Name:              t.Name,
		Width:             t.Width,
		Height:            t.Height,
		Concrete:          concrete,
		Steel:             steel,
		TopBarDiameter:    t.TopBarDiameter,
		TopBarCount:       t.TopBarCount,
		BottomBarDiameter: t.BottomBarDiameter,
		BottomBarCount:    t.BottomBarCount,
		SideBarDiameter:   t.SideBarDiameter,
		SideBarCount:      t.SideBarCount,
		TieDiameter:       t.ZoneMid.TieDiameter,
		TieSpacingSupport: t.ZoneLeft.TieSpacing,
		TieSpacingMid:     t.ZoneMid.TieSpacing,
		SupportZoneRatio:  t.SupportZoneRatio,
	}
}

// concreteID finds the concrete material of class, adding it when missing.
func concreteID(defs *domain.Definitions, class string) uint64 {
	if class == "" {
		return 0
	}
	for _, m := range defs.Materials {
		if m.Category == domain.MaterialConcrete && m.Class == class {
			return m.ID
		}
	}
	return defs.AddMaterial(domain.NewConcrete(0, "Concrete "+class, class))
}

// steelID finds the steel material of grade, adding it when missing.
func steelID(defs *domain.Definitions, grade string) uint64 {
	if grade == "" {
		return 0
	}
	for _, m := range defs.Materials {
		if m.Category == domain.MaterialSteel && m.Grade == grade {
			return m.ID
		}
	}
	return defs.AddMaterial(domain.NewSteel(0, "Steel "+grade, grade, defaultRebarDiameter))
}

func setF(dst *float32, v float32) {
	if v > 0 {
		*dst = v
	}
}

func setU(dst *uint32, v uint32) {
	if v > 0 {
		*dst = v
	}
}

// apply adds or updates the type described by m.
func apply(defs *domain.Definitions, m TypeMetadata) error {
	if m.Width <= 0 {
		return fmt.Errorf("%w: %s %q needs a positive width", ErrInvalidEntry, m.Kind, m.Name)
	}
	switch m.Kind {
	case KindColumn:
		if m.Depth <= 0 {
			return fmt.Errorf("%w: column %q needs a positive depth", ErrInvalidEntry, m.Name)
		}
		conc, steel := concreteID(defs, m.Concrete), steelID(defs, m.Steel)
		t := domain.NewColumnType(0, m.Name, m.Width, m.Depth, conc, steel)
		for _, old := range defs.ColumnTypes {
			if old.Name == m.Name {
				t.ID = old.ID
				t.ColorOverride = old.ColorOverride
				break
			}
		}
		setF(&t.LongBarDiameter, m.LongBarDiameter)
		setU(&t.LongBarsX, m.LongBarsX)
		setU(&t.LongBarsY, m.LongBarsY)
		setF(&t.StirrupDiameter, m.StirrupDiameter)
		setF(&t.StirrupSpacingSupp, m.StirrupSpacingSupp)
		setF(&t.StirrupSpacingMid, m.StirrupSpacingMid)
		if m.HasTies != nil {
			t.HasTies = *m.HasTies
		}
		defs.AddColumnType(t)

	case KindBeam:
		if m.Height <= 0 {
			return fmt.Errorf("%w: beam %q needs a positive height", ErrInvalidEntry, m.Name)
		}
		conc, steel := concreteID(defs, m.Concrete), steelID(defs, m.Steel)
		t := domain.NewBeamType(0, m.Name, m.Width, m.Height, conc, steel)
		for _, old := range defs.BeamTypes {
			if old.Name == m.Name {
				t.ID = old.ID
				t.ColorOverride = old.ColorOverride
				break
			}
		}
		setF(&t.TopBarDiameter, m.TopBarDiameter)
		setU(&t.TopBarCount, m.TopBarCount)
		setF(&t.BottomBarDiameter, m.BottomBarDiameter)
		setU(&t.BottomBarCount, m.BottomBarCount)
		setF(&t.SideBarDiameter, m.SideBarDiameter)
		setU(&t.SideBarCount, m.SideBarCount)
		setF(&t.SupportZoneRatio, m.SupportZoneRatio)
		for _, z := range []*domain.BeamRebarZone{&t.ZoneLeft, &t.ZoneMid, &t.ZoneRight} {
			setF(&z.TieDiameter, m.TieDiameter)
		}
		setF(&t.ZoneLeft.TieSpacing, m.TieSpacingSupport)
		setF(&t.ZoneRight.TieSpacing, m.TieSpacingSupport)
		setF(&t.ZoneMid.TieSpacing, m.TieSpacingMid)
		defs.AddBeamType(t)

	default:
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidEntry, m.Kind)
	}
	return nil
}

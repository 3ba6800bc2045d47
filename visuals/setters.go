// Copyright (c) 2026, Colour Developers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package visuals

import (
	"github.com/colour-science/colour-visuals/colour"
	"github.com/colour-science/colour-visuals/geom"
)

// Setters store the value and update the visual, logging any error.
// Use [Base.BlockUpdate] to set several values with a single update.

// SetModel sets the [Axes.Model].
func (v *Axes) SetModel(value colour.Models) *Axes {
	v.Model = value
	v.changed()
	return v
}

// SetSize sets the [Axes.Size].
func (v *Axes) SetSize(value float64) *Axes {
	v.Size = value
	v.changed()
	return v
}

// SetSize sets the [Grid.Size].
func (v *Grid) SetSize(value float64) *Grid {
	v.Size = value
	v.changed()
	return v
}

// SetMajorGridColour sets the [Grid.MajorGridColour].
func (v *Grid) SetMajorGridColour(value colour.Vec3) *Grid {
	v.MajorGridColour = value
	v.changed()
	return v
}

// SetMinorGridColour sets the [Grid.MinorGridColour].
func (v *Grid) SetMinorGridColour(value colour.Vec3) *Grid {
	v.MinorGridColour = value
	v.changed()
	return v
}

// SetMajorTickLabels sets the [Grid.MajorTickLabels].
func (v *Grid) SetMajorTickLabels(value bool) *Grid {
	v.MajorTickLabels = value
	v.changed()
	return v
}

// SetMajorTickLabelColour sets the [Grid.MajorTickLabelColour].
func (v *Grid) SetMajorTickLabelColour(value colour.Vec3) *Grid {
	v.MajorTickLabelColour = value
	v.changed()
	return v
}

// SetMinorTickLabels sets the [Grid.MinorTickLabels].
func (v *Grid) SetMinorTickLabels(value bool) *Grid {
	v.MinorTickLabels = value
	v.changed()
	return v
}

// SetMinorTickLabelColour sets the [Grid.MinorTickLabelColour].
func (v *Grid) SetMinorTickLabelColour(value colour.Vec3) *Grid {
	v.MinorTickLabelColour = value
	v.changed()
	return v
}

// SetCMFS sets the [SpectralLocus2D.CMFS].
func (v *SpectralLocus2D) SetCMFS(value *colour.MultiSpectralDistributions) *SpectralLocus2D {
	v.CMFS = value
	v.changed()
	return v
}

// SetMethod sets the [SpectralLocus2D.Method].
func (v *SpectralLocus2D) SetMethod(value colour.Methods) *SpectralLocus2D {
	v.Method = value
	v.changed()
	return v
}

// SetColour sets the [SpectralLocus2D.Colour].
func (v *SpectralLocus2D) SetColour(value *colour.Vec3) *SpectralLocus2D {
	v.Colour = value
	v.changed()
	return v
}

// SetOpacity sets the [SpectralLocus2D.Opacity].
func (v *SpectralLocus2D) SetOpacity(value float64) *SpectralLocus2D {
	v.Opacity = value
	v.changed()
	return v
}

// SetThickness sets the [SpectralLocus2D.Thickness].
func (v *SpectralLocus2D) SetThickness(value float64) *SpectralLocus2D {
	v.Thickness = value
	v.changed()
	return v
}

// SetLabels sets the [SpectralLocus2D.Labels].
func (v *SpectralLocus2D) SetLabels(value []float64) *SpectralLocus2D {
	v.Labels = value
	v.changed()
	return v
}

// SetCMFS sets the [SpectralLocus3D.CMFS].
func (v *SpectralLocus3D) SetCMFS(value *colour.MultiSpectralDistributions) *SpectralLocus3D {
	v.CMFS = value
	v.changed()
	return v
}

// SetModel sets the [SpectralLocus3D.Model].
func (v *SpectralLocus3D) SetModel(value colour.Models) *SpectralLocus3D {
	v.Model = value
	v.changed()
	return v
}

// SetColour sets the [SpectralLocus3D.Colour].
func (v *SpectralLocus3D) SetColour(value *colour.Vec3) *SpectralLocus3D {
	v.Colour = value
	v.changed()
	return v
}

// SetOpacity sets the [SpectralLocus3D.Opacity].
func (v *SpectralLocus3D) SetOpacity(value float64) *SpectralLocus3D {
	v.Opacity = value
	v.changed()
	return v
}

// SetThickness sets the [SpectralLocus3D.Thickness].
func (v *SpectralLocus3D) SetThickness(value float64) *SpectralLocus3D {
	v.Thickness = value
	v.changed()
	return v
}

// SetCMFS sets the [ChromaticityDiagram.CMFS].
func (v *ChromaticityDiagram) SetCMFS(value *colour.MultiSpectralDistributions) *ChromaticityDiagram {
	v.CMFS = value
	v.changed()
	return v
}

// SetMethod sets the [ChromaticityDiagram.Method].
func (v *ChromaticityDiagram) SetMethod(value colour.Methods) *ChromaticityDiagram {
	v.Method = value
	v.changed()
	return v
}

// SetColour sets the [ChromaticityDiagram.Colour].
func (v *ChromaticityDiagram) SetColour(value *colour.Vec3) *ChromaticityDiagram {
	v.Colour = value
	v.changed()
	return v
}

// SetOpacity sets the [ChromaticityDiagram.Opacity].
func (v *ChromaticityDiagram) SetOpacity(value float64) *ChromaticityDiagram {
	v.Opacity = value
	v.changed()
	return v
}

// SetMaterial sets the [ChromaticityDiagram.Material].
func (v *ChromaticityDiagram) SetMaterial(value geom.MaterialTypes) *ChromaticityDiagram {
	v.Material = value
	v.changed()
	return v
}

// SetWireframe sets the [ChromaticityDiagram.Wireframe].
func (v *ChromaticityDiagram) SetWireframe(value bool) *ChromaticityDiagram {
	v.Wireframe = value
	v.changed()
	return v
}

// SetSamples sets the [ChromaticityDiagram.Samples].
func (v *ChromaticityDiagram) SetSamples(value int) *ChromaticityDiagram {
	v.Samples = value
	v.changed()
	return v
}

// SetMethod sets the [ChromaticityDiagramGroup.Method].
func (v *ChromaticityDiagramGroup) SetMethod(value colour.Methods) *ChromaticityDiagramGroup {
	v.Method = value
	v.changed()
	return v
}

// SetCMFS sets the [PlanckianLocus.CMFS].
func (v *PlanckianLocus) SetCMFS(value *colour.MultiSpectralDistributions) *PlanckianLocus {
	v.CMFS = value
	v.changed()
	return v
}

// SetMethod sets the [PlanckianLocus.Method].
func (v *PlanckianLocus) SetMethod(value colour.Methods) *PlanckianLocus {
	v.Method = value
	v.changed()
	return v
}

// SetColour sets the [PlanckianLocus.Colour].
func (v *PlanckianLocus) SetColour(value *colour.Vec3) *PlanckianLocus {
	v.Colour = value
	v.changed()
	return v
}

// SetOpacity sets the [PlanckianLocus.Opacity].
func (v *PlanckianLocus) SetOpacity(value float64) *PlanckianLocus {
	v.Opacity = value
	v.changed()
	return v
}

// SetThickness sets the [PlanckianLocus.Thickness].
func (v *PlanckianLocus) SetThickness(value float64) *PlanckianLocus {
	v.Thickness = value
	v.changed()
	return v
}

// SetSamples sets the [PlanckianLocus.Samples].
func (v *PlanckianLocus) SetSamples(value int) *PlanckianLocus {
	v.Samples = value
	v.changed()
	return v
}

// SetLabels sets the [PlanckianLocus.Labels].
func (v *PlanckianLocus) SetLabels(value []float64) *PlanckianLocus {
	v.Labels = value
	v.changed()
	return v
}

// SetMireds sets the [PlanckianLocus.Mireds].
func (v *PlanckianLocus) SetMireds(value bool) *PlanckianLocus {
	v.Mireds = value
	v.changed()
	return v
}

// SetMethod sets the [DaylightLocus.Method].
func (v *DaylightLocus) SetMethod(value colour.Methods) *DaylightLocus {
	v.Method = value
	v.changed()
	return v
}

// SetColour sets the [DaylightLocus.Colour].
func (v *DaylightLocus) SetColour(value *colour.Vec3) *DaylightLocus {
	v.Colour = value
	v.changed()
	return v
}

// SetOpacity sets the [DaylightLocus.Opacity].
func (v *DaylightLocus) SetOpacity(value float64) *DaylightLocus {
	v.Opacity = value
	v.changed()
	return v
}

// SetThickness sets the [DaylightLocus.Thickness].
func (v *DaylightLocus) SetThickness(value float64) *DaylightLocus {
	v.Thickness = value
	v.changed()
	return v
}

// SetSamples sets the [DaylightLocus.Samples].
func (v *DaylightLocus) SetSamples(value int) *DaylightLocus {
	v.Samples = value
	v.changed()
	return v
}

// SetMireds sets the [DaylightLocus.Mireds].
func (v *DaylightLocus) SetMireds(value bool) *DaylightLocus {
	v.Mireds = value
	v.changed()
	return v
}

// SetDataset sets the [PointerGamut2D.Dataset].
func (v *PointerGamut2D) SetDataset(value *colour.PointerGamut) *PointerGamut2D {
	v.Dataset = value
	v.changed()
	return v
}

// SetMethod sets the [PointerGamut2D.Method].
func (v *PointerGamut2D) SetMethod(value colour.Methods) *PointerGamut2D {
	v.Method = value
	v.changed()
	return v
}

// SetColour sets the [PointerGamut2D.Colour].
func (v *PointerGamut2D) SetColour(value *colour.Vec3) *PointerGamut2D {
	v.Colour = value
	v.changed()
	return v
}

// SetOpacity sets the [PointerGamut2D.Opacity].
func (v *PointerGamut2D) SetOpacity(value float64) *PointerGamut2D {
	v.Opacity = value
	v.changed()
	return v
}

// SetThickness sets the [PointerGamut2D.Thickness].
func (v *PointerGamut2D) SetThickness(value float64) *PointerGamut2D {
	v.Thickness = value
	v.changed()
	return v
}

// SetDataset sets the [PointerGamut3D.Dataset].
func (v *PointerGamut3D) SetDataset(value *colour.PointerGamut) *PointerGamut3D {
	v.Dataset = value
	v.changed()
	return v
}

// SetModel sets the [PointerGamut3D.Model].
func (v *PointerGamut3D) SetModel(value colour.Models) *PointerGamut3D {
	v.Model = value
	v.changed()
	return v
}

// SetColour sets the [PointerGamut3D.Colour].
func (v *PointerGamut3D) SetColour(value *colour.Vec3) *PointerGamut3D {
	v.Colour = value
	v.changed()
	return v
}

// SetOpacity sets the [PointerGamut3D.Opacity].
func (v *PointerGamut3D) SetOpacity(value float64) *PointerGamut3D {
	v.Opacity = value
	v.changed()
	return v
}

// SetThickness sets the [PointerGamut3D.Thickness].
func (v *PointerGamut3D) SetThickness(value float64) *PointerGamut3D {
	v.Thickness = value
	v.changed()
	return v
}

// SetColourspace sets the [RGBColourspace2D.Colourspace].
func (v *RGBColourspace2D) SetColourspace(value *colour.RGBColourspace) *RGBColourspace2D {
	v.Colourspace = value
	v.changed()
	return v
}

// SetMethod sets the [RGBColourspace2D.Method].
func (v *RGBColourspace2D) SetMethod(value colour.Methods) *RGBColourspace2D {
	v.Method = value
	v.changed()
	return v
}

// SetColour sets the [RGBColourspace2D.Colour].
func (v *RGBColourspace2D) SetColour(value *colour.Vec3) *RGBColourspace2D {
	v.Colour = value
	v.changed()
	return v
}

// SetOpacity sets the [RGBColourspace2D.Opacity].
func (v *RGBColourspace2D) SetOpacity(value float64) *RGBColourspace2D {
	v.Opacity = value
	v.changed()
	return v
}

// SetThickness sets the [RGBColourspace2D.Thickness].
func (v *RGBColourspace2D) SetThickness(value float64) *RGBColourspace2D {
	v.Thickness = value
	v.changed()
	return v
}

// SetColourspace sets the [RGBColourspace3D.Colourspace].
func (v *RGBColourspace3D) SetColourspace(value *colour.RGBColourspace) *RGBColourspace3D {
	v.Colourspace = value
	v.changed()
	return v
}

// SetModel sets the [RGBColourspace3D.Model].
func (v *RGBColourspace3D) SetModel(value colour.Models) *RGBColourspace3D {
	v.Model = value
	v.changed()
	return v
}

// SetColour sets the [RGBColourspace3D.Colour].
func (v *RGBColourspace3D) SetColour(value *colour.Vec3) *RGBColourspace3D {
	v.Colour = value
	v.changed()
	return v
}

// SetOpacity sets the [RGBColourspace3D.Opacity].
func (v *RGBColourspace3D) SetOpacity(value float64) *RGBColourspace3D {
	v.Opacity = value
	v.changed()
	return v
}

// SetMaterial sets the [RGBColourspace3D.Material].
func (v *RGBColourspace3D) SetMaterial(value geom.MaterialTypes) *RGBColourspace3D {
	v.Material = value
	v.changed()
	return v
}

// SetWireframe sets the [RGBColourspace3D.Wireframe].
func (v *RGBColourspace3D) SetWireframe(value bool) *RGBColourspace3D {
	v.Wireframe = value
	v.changed()
	return v
}

// SetSegments sets the [RGBColourspace3D.Segments].
func (v *RGBColourspace3D) SetSegments(value int) *RGBColourspace3D {
	v.Segments = value
	v.changed()
	return v
}

// SetColourspace sets the [RGBScatter3D.Colourspace].
func (v *RGBScatter3D) SetColourspace(value *colour.RGBColourspace) *RGBScatter3D {
	v.Colourspace = value
	v.changed()
	return v
}

// SetModel sets the [RGBScatter3D.Model].
func (v *RGBScatter3D) SetModel(value colour.Models) *RGBScatter3D {
	v.Model = value
	v.changed()
	return v
}

// SetColour sets the [RGBScatter3D.Colour].
func (v *RGBScatter3D) SetColour(value *colour.Vec3) *RGBScatter3D {
	v.Colour = value
	v.changed()
	return v
}

// SetOpacity sets the [RGBScatter3D.Opacity].
func (v *RGBScatter3D) SetOpacity(value float64) *RGBScatter3D {
	v.Opacity = value
	v.changed()
	return v
}

// SetSize sets the [RGBScatter3D.Size].
func (v *RGBScatter3D) SetSize(value float64) *RGBScatter3D {
	v.Size = value
	v.changed()
	return v
}

// SetRGB sets the [RGBScatter3D.RGB].
func (v *RGBScatter3D) SetRGB(value []colour.Vec3) *RGBScatter3D {
	v.RGB = value
	v.changed()
	return v
}

// SetCMFS sets the [RoschMacAdam.CMFS].
func (v *RoschMacAdam) SetCMFS(value *colour.MultiSpectralDistributions) *RoschMacAdam {
	v.CMFS = value
	v.changed()
	return v
}

// SetIlluminant sets the [RoschMacAdam.Illuminant].
func (v *RoschMacAdam) SetIlluminant(value *colour.SpectralDistribution) *RoschMacAdam {
	v.Illuminant = value
	v.changed()
	return v
}

// SetModel sets the [RoschMacAdam.Model].
func (v *RoschMacAdam) SetModel(value colour.Models) *RoschMacAdam {
	v.Model = value
	v.changed()
	return v
}

// SetColour sets the [RoschMacAdam.Colour].
func (v *RoschMacAdam) SetColour(value *colour.Vec3) *RoschMacAdam {
	v.Colour = value
	v.changed()
	return v
}

// SetOpacity sets the [RoschMacAdam.Opacity].
func (v *RoschMacAdam) SetOpacity(value float64) *RoschMacAdam {
	v.Opacity = value
	v.changed()
	return v
}

// SetThickness sets the [RoschMacAdam.Thickness].
func (v *RoschMacAdam) SetThickness(value float64) *RoschMacAdam {
	v.Thickness = value
	v.changed()
	return v
}

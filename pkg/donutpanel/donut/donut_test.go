package donut

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStyle() Style {
	return Style{
		WedgeWidth:      0.5,
		LabelMinPercent: 2.5,
		LabelFontDomain: Range{Min: 0, Max: 30},
		LabelFontRange:  Range{Min: 7.5, Max: 11.5},
		NameFontSize:    11,
		Colors:          []string{"#1F6F1F", "#F2F21C", "#FB8C00", "#F4511E", "#E53935"},
		ContrastColor:   "#F2F21C",
		DarkLabelColor:  "#666666",
		LightLabelColor: "#FFFFFF",
	}
}

func TestComputeAllZero(t *testing.T) {
	c := Compute([]float64{0, 0, 0, 0, 0}, "Polk", testStyle())

	assert.True(t, c.Empty())
	assert.Empty(t, c.Labels)
	require.Len(t, c.Wedges, 5)
	for _, w := range c.Wedges {
		assert.Zero(t, w.Span())
		assert.Zero(t, w.Share)
		assert.False(t, math.IsNaN(w.Share))
	}
	assert.Equal(t, "Polk", c.Name)
	assert.Equal(t, 0.5, c.Inner)
}

func TestComputeSpansSumTo360(t *testing.T) {
	cases := [][]float64{
		{20, 20, 20, 20, 20},
		{1, 2, 3, 4, 5},
		{0.1, 0, 0, 0, 0},
		{12.5, 40.25, 0, 33.3, 14},
		{1e6, 1, 1, 1, 1},
	}

	for _, vals := range cases {
		c := Compute(vals, "x", testStyle())
		var sum, total float64
		for _, v := range vals {
			total += v
		}
		for i, w := range c.Wedges {
			sum += w.Span()
			assert.InDelta(t, 360*vals[i]/total, w.Span(), 1e-9, "values %v band %d", vals, i)
		}
		assert.InDelta(t, 360.0, sum, 1e-9, "values %v", vals)
	}
}

func TestComputeWedgesRunClockwiseFromTop(t *testing.T) {
	c := Compute([]float64{25, 25, 25, 25, 0}, "x", testStyle())

	assert.InDelta(t, 90.0, c.Wedges[0].Theta2, 1e-9)
	assert.InDelta(t, 0.0, c.Wedges[0].Theta1, 1e-9)
	assert.InDelta(t, 0.0, c.Wedges[1].Theta2, 1e-9)
	assert.InDelta(t, -90.0, c.Wedges[1].Theta1, 1e-9)
	assert.InDelta(t, -270.0, c.Wedges[3].Theta1, 1e-9)
	for i := 1; i < len(c.Wedges); i++ {
		assert.InDelta(t, c.Wedges[i-1].Theta1, c.Wedges[i].Theta2, 1e-9, "wedges must be contiguous")
	}
}

func TestComputeLabelThresholdBoundary(t *testing.T) {
	c := Compute([]float64{2.5, 97.5, 0, 0, 0}, "x", testStyle())
	require.Len(t, c.Labels, 2)
	assert.Equal(t, 0, c.Labels[0].Band)
	assert.Equal(t, "2.5%", c.Labels[0].Text)

	c = Compute([]float64{2.4, 97.6, 0, 0, 0}, "x", testStyle())
	require.Len(t, c.Labels, 1)
	assert.Equal(t, 1, c.Labels[0].Band)
}

func TestComputeSharesIgnoreScale(t *testing.T) {
	a := Compute([]float64{0.1, 0.3, 0.6, 0, 0}, "x", testStyle())
	b := Compute([]float64{10, 30, 60, 0, 0}, "x", testStyle())

	for i := range a.Wedges {
		assert.InDelta(t, b.Wedges[i].Share, a.Wedges[i].Share, 1e-9)
		assert.InDelta(t, b.Wedges[i].Span(), a.Wedges[i].Span(), 1e-9)
	}
	assert.Equal(t, "60.0%", b.Labels[2].Text)
}

func TestComputeSanitizesValues(t *testing.T) {
	c := Compute([]float64{math.NaN(), 50, math.Inf(1), -5, 50}, "x", testStyle())
	assert.Equal(t, 100.0, c.Total)
	assert.Zero(t, c.Wedges[0].Span())
	assert.InDelta(t, 180.0, c.Wedges[1].Span(), 1e-9)
}

func TestComputeLabelPlacement(t *testing.T) {
	c := Compute([]float64{50, 50, 0, 0, 0}, "x", testStyle())
	require.Len(t, c.Labels, 2)

	// First wedge is the right half; its midpoint is 3 o'clock.
	l := c.Labels[0]
	assert.InDelta(t, 0.75, l.X, 1e-9)
	assert.InDelta(t, 0.0, l.Y, 1e-9)
	assert.InDelta(t, -90.0, l.Rotation, 1e-9)
	assert.Equal(t, "#FFFFFF", l.Color)
	assert.Equal(t, 11.5, l.FontSize)

	// Second wedge is the left half, midpoint 9 o'clock.
	l = c.Labels[1]
	assert.InDelta(t, -0.75, l.X, 1e-9)
	assert.InDelta(t, 0.0, l.Y, 1e-9)
	assert.InDelta(t, 270.0, l.Rotation, 1e-9)
	assert.Equal(t, "#666666", l.Color)
}

func TestLabelRotation(t *testing.T) {
	tests := []struct {
		mid      float64
		expected float64
	}{
		{90, 0},
		{45, -45},
		{0, -90},
		{-45, 225},
		{135, 225},
		{180, 270},
		{270, 180},
		{-90, 180},
		{-135, 315},
		{450, 0},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.expected, LabelRotation(tt.mid), 1e-9, "mid %v", tt.mid)
	}
}

func TestFontSize(t *testing.T) {
	domain := Range{Min: 0, Max: 30}
	size := Range{Min: 7.5, Max: 11.5}

	assert.Equal(t, 7.5, FontSize(0, domain, size))
	assert.Equal(t, 7.5, FontSize(-4, domain, size))
	assert.Equal(t, 11.5, FontSize(30, domain, size))
	assert.Equal(t, 11.5, FontSize(87, domain, size))
	assert.InDelta(t, 9.5, FontSize(15, domain, size), 1e-12)
	assert.InDelta(t, 7.5+4*(7.5/30), FontSize(7.5, domain, size), 1e-12)

	// Degenerate domain steps between the ends.
	flat := Range{Min: 10, Max: 10}
	assert.Equal(t, 7.5, FontSize(10, flat, size))
	assert.Equal(t, 11.5, FontSize(10.1, flat, size))
}

func TestLabelColor(t *testing.T) {
	style := testStyle()
	assert.Equal(t, "#666666", LabelColor("#F2F21C", style))
	assert.Equal(t, "#666666", LabelColor("#f2f21c", style))
	assert.Equal(t, "#FFFFFF", LabelColor("#1F6F1F", style))
	assert.Equal(t, "#FFFFFF", LabelColor("not a color", style))
}

func TestNormalizeAngle(t *testing.T) {
	assert.Equal(t, 0.0, NormalizeAngle(360))
	assert.Equal(t, 270.0, NormalizeAngle(-90))
	assert.Equal(t, 90.0, NormalizeAngle(450))
	assert.Equal(t, 0.0, NormalizeAngle(-720))
}

package testing

import (
	"github.com/aristath/sentinel-analysis/internal/modules/charts"
	"github.com/stretchr/testify/mock"
)

// MockChartRenderer records chart requests instead of drawing them
type MockChartRenderer struct {
	mock.Mock
}

// NewMockChartRenderer returns a renderer that accepts every chart
func NewMockChartRenderer() *MockChartRenderer {
	m := &MockChartRenderer{}
	m.On("RenderBarChart", mock.Anything, mock.Anything).Return(nil).Maybe()
	m.On("RenderBoxPlot", mock.Anything, mock.Anything).Return(nil).Maybe()
	return m
}

// RenderBarChart records the bar chart request
func (m *MockChartRenderer) RenderBarChart(spec charts.BarSpec, path string) error {
	return m.Called(spec, path).Error(0)
}

// RenderBoxPlot records the box plot request
func (m *MockChartRenderer) RenderBoxPlot(spec charts.BoxSpec, path string) error {
	return m.Called(spec, path).Error(0)
}

// BarCharts returns the specs of every bar chart requested so far
func (m *MockChartRenderer) BarCharts() []charts.BarSpec {
	var specs []charts.BarSpec
	for _, c := range m.Calls {
		if c.Method == "RenderBarChart" {
			specs = append(specs, c.Arguments.Get(0).(charts.BarSpec))
		}
	}
	return specs
}

// BoxPlots returns the specs of every box plot requested so far
func (m *MockChartRenderer) BoxPlots() []charts.BoxSpec {
	var specs []charts.BoxSpec
	for _, c := range m.Calls {
		if c.Method == "RenderBoxPlot" {
			specs = append(specs, c.Arguments.Get(0).(charts.BoxSpec))
		}
	}
	return specs
}

package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"trendscope/schema"
)

func TestClassifyOpportunity(t *testing.T) {
	e := NewDefaultEngine()

	tests := []struct {
		name      string
		trend     int
		potential int
		want      schema.OpportunityLabel
	}{
		{"both high", 80, 90, schema.StarOpportunity},
		{"both at threshold", 50, 50, schema.StarOpportunity},
		{"potential only", 30, 70, schema.EmergingOpportunity},
		{"trend only", 70, 30, schema.EstablishedOpportunity},
		{"both low", 20, 20, schema.NicheOpportunity},
		{"just below threshold", 49, 49, schema.NicheOpportunity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.classifyOpportunity(tt.trend, tt.potential))
		})
	}
}

func TestClassifyLifecycle(t *testing.T) {
	e := NewDefaultEngine()

	tests := []struct {
		name   string
		values []float64
		want   schema.LifecycleStage
	}{
		{"empty", nil, schema.IntroductionStage},
		{"rising from low level", []float64{50, 50, 50, 50, 50, 50, 5, 10, 15}, schema.IntroductionStage},
		{"rising at high level", []float64{20, 25, 80, 95}, schema.GrowthStage},
		{"flat at high level", []float64{10, 20, 80, 80, 80}, schema.MaturityStage},
		{"falling", []float64{90, 80, 70, 60, 50}, schema.DeclineStage},
		{"flat above historical median", []float64{40, 40, 40, 40, 40, 40, 50, 50, 50}, schema.MaturityStage},
		{"flat before any run", []float64{40, 40, 40, 40, 20, 20, 20}, schema.IntroductionStage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := monthlySeries(2025, time.January, tt.values...)
			assert.Equal(t, tt.want, e.classifyLifecycle(s))
		})
	}
}

package services

import (
	"testing"

	"github.com/maxeffectus/route-planner-sub001/internal/models/route_models"
)

func TestRecommendedPOICount(t *testing.T) {
	tests := []struct {
		name   string
		window route_models.TimeWindow
		pace   route_models.TravelPace
		want   int
	}{
		{"nine hours low", route_models.TimeWindow{StartHour: 9, EndHour: 18}, route_models.PaceLow, 2},
		{"nine hours medium", route_models.TimeWindow{StartHour: 10, EndHour: 19}, route_models.PaceMedium, 3},
		{"twelve hours high", route_models.TimeWindow{StartHour: 8, EndHour: 20}, route_models.PaceHigh, 4},
		{"two hours high", route_models.TimeWindow{StartHour: 14, EndHour: 16}, route_models.PaceHigh, 0},
		{"zero window", route_models.TimeWindow{StartHour: 12, EndHour: 12}, route_models.PaceMedium, 0},
		{"inverted window", route_models.TimeWindow{StartHour: 18, EndHour: 9}, route_models.PaceLow, 0},
		{"unknown pace budgets as medium", route_models.TimeWindow{StartHour: 10, EndHour: 19}, route_models.TravelPace("BRISK"), 3},
		{"empty pace budgets as medium", route_models.TimeWindow{StartHour: 10, EndHour: 19}, "", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RecommendedPOICount(tt.window, tt.pace)
			if got != tt.want {
				t.Errorf("RecommendedPOICount(%+v, %q) = %d, want %d", tt.window, tt.pace, got, tt.want)
			}
		})
	}
}

func TestEstimatedVisitHours(t *testing.T) {
	if got := EstimatedVisitHours(3, route_models.PaceMedium); got != 6.0 {
		t.Errorf("3 stops at medium pace = %f, want 6.0", got)
	}
	if got := EstimatedVisitHours(2, route_models.PaceLow); got != 5.0 {
		t.Errorf("2 stops at low pace = %f, want 5.0", got)
	}
	if got := EstimatedVisitHours(4, route_models.PaceHigh); got != 6.0 {
		t.Errorf("4 stops at high pace = %f, want 6.0", got)
	}
	if got := EstimatedVisitHours(0, route_models.PaceMedium); got != 0 {
		t.Errorf("0 stops = %f, want 0", got)
	}
	if got := EstimatedVisitHours(2, route_models.TravelPace("BRISK")); got != 4.0 {
		t.Errorf("unknown pace should use the medium table, got %f", got)
	}
}

package service

import "testing"

func TestCompletionPercent(t *testing.T) {
	tests := []struct {
		name      string
		completed int64
		total     int64
		want      float64
	}{
		{name: "belum ada yang selesai", completed: 0, total: 10, want: 0},
		{name: "setengah jalan", completed: 5, total: 10, want: 50},
		{name: "semua selesai", completed: 10, total: 10, want: 100},
		{name: "N-1 dari N", completed: 3, total: 4, want: 75},
		{name: "course tanpa section tetap 0", completed: 0, total: 0, want: 0},
		{name: "total negatif dianggap 0", completed: 1, total: -1, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CompletionPercent(tt.completed, tt.total); got != tt.want {
				t.Errorf("CompletionPercent(%d, %d) = %v, want %v", tt.completed, tt.total, got, tt.want)
			}
		})
	}
}

// Course tanpa section tidak boleh dilaporkan selesai.
func TestCompletionPercentZeroSectionsNeverComplete(t *testing.T) {
	if CompletionPercent(0, 0) >= 100 {
		t.Fatal("course tanpa section tidak boleh mencapai 100%")
	}
}

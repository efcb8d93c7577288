package utils

import "testing"

func TestBuildMapsLink(t *testing.T) {
	lat := 1.3521
	lng := 103.8198

	tests := []struct {
		name string
		lat  *float64
		lng  *float64
		want string
	}{
		{
			name: "With coordinates",
			lat:  &lat,
			lng:  &lng,
			want: "https://www.google.com/maps/search/e-waste+recycling+centre/@1.3521,103.8198,14z",
		},
		{
			name: "Without coordinates",
			want: "https://www.google.com/maps/search/e-waste+recycling+centre+near+me",
		},
		{
			name: "Latitude only falls back to near-me search",
			lat:  &lat,
			want: "https://www.google.com/maps/search/e-waste+recycling+centre+near+me",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BuildMapsLink(tt.lat, tt.lng); got != tt.want {
				t.Errorf("BuildMapsLink() = %q, want %q", got, tt.want)
			}
		})
	}
}

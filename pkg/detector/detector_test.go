package detector

import "testing"

func TestDetect(t *testing.T) {
	d := New()

	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "english",
			text: "The weather report for tomorrow promises sunshine across the " +
				"whole country, with light winds and clear skies in the evening.",
			want: "English",
		},
		{
			name: "german",
			text: "Der Wetterbericht für morgen verspricht Sonnenschein im ganzen " +
				"Land, mit leichtem Wind und klarem Himmel am Abend.",
			want: "German",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := d.Detect(tt.text)
			if result.Language != tt.want {
				t.Errorf("Detect() language = %q (confidence %.2f), want %q",
					result.Language, result.Confidence, tt.want)
			}
			if !result.Reliable {
				t.Errorf("expected reliable detection, confidence = %.2f", result.Confidence)
			}
		})
	}
}

func TestDetect_Empty(t *testing.T) {
	d := New()

	result := d.Detect("   ")
	if result.Language != "" || result.Reliable {
		t.Errorf("empty input should not detect, got %+v", result)
	}
}

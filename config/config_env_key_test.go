package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"routing": map[string]any{
			"defaultAlgorithm": "dijkstra",
			"averageSpeedKmh":  30,
		},
		"osrm": map[string]any{
			"baseUrl":           "",
			"requestsPerSecond": 1,
		},
		"http": map[string]any{
			"timeouts": map[string]any{
				"readTimeout": "10s",
			},
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "ROUTING_DEFAULTALGORITHM", want: "routing.defaultAlgorithm"},
		{envKey: "ROUTING_AVERAGESPEEDKMH", want: "routing.averageSpeedKmh"},
		{envKey: "OSRM_BASEURL", want: "osrm.baseUrl"},
		{envKey: "OSRM_REQUESTSPERSECOND", want: "osrm.requestsPerSecond"},
		{envKey: "HTTP_TIMEOUTS_READTIMEOUT", want: "http.timeouts.readTimeout"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

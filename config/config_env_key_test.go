package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"dbName":  "estatex",
		},
		"alerts": map[string]any{
			"dispatchCap": 5,
			"cronSecret":  "",
		},
		"channels": map[string]any{
			"whatsapp": map[string]any{
				"apiKey": "",
			},
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_DBNAME", want: "postgres.dbName"},
		{envKey: "ALERTS_DISPATCHCAP", want: "alerts.dispatchCap"},
		{envKey: "ALERTS_CRONSECRET", want: "alerts.cronSecret"},
		{envKey: "CHANNELS_WHATSAPP_APIKEY", want: "channels.whatsapp.apiKey"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
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

func TestApplyAlertDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.applyAlertDefaults()

	if cfg.Alerts.DispatchCap != DefaultDispatchCap {
		t.Fatalf("DispatchCap = %d, want %d", cfg.Alerts.DispatchCap, DefaultDispatchCap)
	}
	if cfg.Alerts.CheckSchedule != DefaultCheckSchedule {
		t.Fatalf("CheckSchedule = %q, want %q", cfg.Alerts.CheckSchedule, DefaultCheckSchedule)
	}
	if cfg.Alerts.CandidateWindow != DefaultCandidateWindow {
		t.Fatalf("CandidateWindow = %s, want %s", cfg.Alerts.CandidateWindow, DefaultCandidateWindow)
	}
	if cfg.Alerts.SendTimeout != DefaultSendTimeout {
		t.Fatalf("SendTimeout = %s, want %s", cfg.Alerts.SendTimeout, DefaultSendTimeout)
	}
}

package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"db": map[string]any{
			"sslMode":      "disable",
			"maxOpenConns": 10,
		},
		"jwt": map[string]any{
			"secret": "",
		},
		"auth": map[string]any{
			"bcryptCost": 10,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "DB_SSLMODE", want: "db.sslMode"},
		{envKey: "DB_MAXOPENCONNS", want: "db.maxOpenConns"},
		{envKey: "DB_HOST", want: "db.host"},
		{envKey: "JWT_SECRET", want: "jwt.secret"},
		{envKey: "AUTH_BCRYPTCOST", want: "auth.bcryptCost"},
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

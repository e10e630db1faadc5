package errors

import "testing"

func TestValidateDashboardID(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{"valid modern ID", "abc-def-ghi", false},
		{"valid numeric ID", "123456", false},
		{"valid mixed segment", "a1b-2c3", false},
		{"empty", "", true},
		{"uppercase", "ABC-DEF", true},
		{"path traversal", "../other", true},
		{"slash", "abc/def", true},
		{"query injection", "abc?x=1", true},
		{"leading dash", "-abc", true},
		{"trailing dash", "abc-", true},
		{"too long", string(make([]byte, 65)), true},
		{"control character", "abc\x00def", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDashboardID(tt.id)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDashboardID(%q) error = %v, wantErr %v", tt.id, err, tt.wantErr)
			}
			if err != nil && GetCode(err) != ErrCodeInvalidInput {
				t.Errorf("code = %v, want %v", GetCode(err), ErrCodeInvalidInput)
			}
		})
	}
}

func TestValidateSite(t *testing.T) {
	tests := []struct {
		name    string
		site    string
		wantErr bool
	}{
		{"default site", "datadoghq.com", false},
		{"eu site", "datadoghq.eu", false},
		{"regional site", "us3.datadoghq.com", false},
		{"gov site", "ddog-gov.com", false},
		{"empty", "", true},
		{"with scheme", "https://datadoghq.com", true},
		{"with path", "datadoghq.com/api", true},
		{"with port", "datadoghq.com:443", true},
		{"with userinfo", "evil@datadoghq.com", true},
		{"uppercase", "DATADOGHQ.COM", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSite(tt.site)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateSite(%q) error = %v, wantErr %v", tt.site, err, tt.wantErr)
			}
		})
	}
}

func TestValidateTemplatePath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"simple file", "dashboard.jsonnet", false},
		{"relative path", "examples/basic.jsonnet", false},
		{"absolute path", "/tmp/dash.json", false},
		{"empty", "", true},
		{"null byte", "dash\x00.jsonnet", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTemplatePath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateTemplatePath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
		})
	}
}

package env

import "testing"

func TestEnvironment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		env      Environment
		wantDev  bool
		wantProd bool
	}{
		{env: Development, wantDev: true},
		{env: Production, wantProd: true},
		{env: "staging"},
	}

	for _, tt := range tests {
		t.Run(string(tt.env), func(t *testing.T) {
			t.Parallel()
			if got := tt.env.IsDevelopment(); got != tt.wantDev {
				t.Errorf("IsDevelopment() = %v, want %v", got, tt.wantDev)
			}
			if got := tt.env.IsProduction(); got != tt.wantProd {
				t.Errorf("IsProduction() = %v, want %v", got, tt.wantProd)
			}
		})
	}
}

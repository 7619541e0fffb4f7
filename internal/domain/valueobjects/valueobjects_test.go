package valueobjects

import "testing"

func TestNewEmail(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{name: "normaliza caixa e espaços", input: "  Ana@Clinic.COM ", expected: "ana@clinic.com"},
		{name: "aceita subdomínio", input: "dr.silva@mail.clinic.com.br", expected: "dr.silva@mail.clinic.com.br"},
		{name: "rejeita sem arroba", input: "ana.clinic.com", wantErr: true},
		{name: "rejeita vazio", input: "", wantErr: true},
		{name: "rejeita sem domínio", input: "ana@", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			email, err := NewEmail(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("esperava erro para '%s'", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("erro inesperado: %v", err)
			}
			if email.String() != tt.expected {
				t.Errorf("esperava '%s', obteve '%s'", tt.expected, email.String())
			}
		})
	}
}

func TestNormalizeUsername(t *testing.T) {
	got, err := NormalizeUsername("  dr.ana_01 ")
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if got != "dr.ana_01" {
		t.Errorf("esperava 'dr.ana_01', obteve '%s'", got)
	}

	for _, invalid := range []string{"", "ab", "com espaço", "nome@invalido"} {
		if _, err := NormalizeUsername(invalid); err == nil {
			t.Errorf("esperava erro para '%s'", invalid)
		}
	}
}

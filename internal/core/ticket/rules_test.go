package ticket

import (
	"errors"
	"testing"
)

func TestValidateDate(t *testing.T) {
	tests := []struct {
		date    string
		wantErr error
	}{
		{"29/02/2024", nil},
		{"10/05/2024", nil},
		{"31/12/1999", nil},
		{"29/02/2023", ErrDateInvalid},
		{"31/02/2024", ErrDateInvalid},
		{"00/01/2024", ErrDateInvalid},
		{"15/13/2024", ErrDateInvalid},
		{"31/12/0000", ErrDateInvalid},
		{"01/01/0001", nil},
		{"1/05/2024", ErrDateFormat},
		{"2024-05-10", ErrDateFormat},
		{"10/05/24", ErrDateFormat},
		{"10/05/2024 ", ErrDateFormat},
		{"dd/mm/aaaa", ErrDateFormat},
	}

	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			err := ValidateDate(tt.date)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateDate(%q) = %v, want %v", tt.date, err, tt.wantErr)
			}
		})
	}
}

func TestFormatDateInput(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"", ""},
		{"1", "1"},
		{"10", "10"},
		{"100", "10/0"},
		{"1005", "10/05"},
		{"10052", "10/05/2"},
		{"10052024", "10/05/2024"},
		{"100520249", "10/05/2024"},
		{"10/05/2024", "10/05/2024"},
		{"10/05/20245", "10/05/2024"},
		{"1a0-0b5", "10/05"},
		{"dd/mm/aaaa", ""},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			if got := FormatDateInput(tt.raw); got != tt.want {
				t.Errorf("FormatDateInput(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestParseID(t *testing.T) {
	if id, err := ParseID(" 42 "); err != nil || id != 42 {
		t.Errorf("ParseID(\" 42 \") = %d, %v", id, err)
	}
	for _, bad := range []string{"", "abc", "1.5", "Para Atualizar/Deletar"} {
		if _, err := ParseID(bad); !errors.Is(err, ErrInvalidID) {
			t.Errorf("ParseID(%q) error = %v, want ErrInvalidID", bad, err)
		}
	}
}

func TestEnumerations(t *testing.T) {
	if len(Types) != 13 {
		t.Errorf("expected 13 ticket types, got %d", len(Types))
	}
	if !IsValidType("Instalação/Configuração") {
		t.Error("expected Instalação/Configuração to be a valid type")
	}
	if IsValidType("erros") {
		t.Error("type matching must be exact")
	}
	if !IsValidStatus(StatusInProgress) {
		t.Error("expected Em atendimento to be a valid status")
	}
	if IsValidStatus("") {
		t.Error("empty status must be invalid")
	}
}

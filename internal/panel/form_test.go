package panel

import "testing"

func TestField_PlaceholderLifecycle(t *testing.T) {
	f := NewField(PlaceholderName)

	if f.State() != FieldPlaceholder || !f.Muted() {
		t.Fatalf("new field should show its placeholder, state %s", f.State())
	}
	if f.Text() != PlaceholderName {
		t.Errorf("Text() = %q, want placeholder", f.Text())
	}
	if f.Effective() != "" {
		t.Errorf("placeholder must not count as a value, got %q", f.Effective())
	}

	f.Focus()
	if f.State() != FieldUnset || f.Text() != "" || f.Muted() {
		t.Errorf("focus should hide the placeholder, state %s text %q", f.State(), f.Text())
	}

	f.Blur()
	if f.State() != FieldPlaceholder {
		t.Errorf("blur on empty field should restore the placeholder, state %s", f.State())
	}

	f.Focus()
	f.Set("  INC1 ")
	f.Blur()
	if f.State() != FieldValue {
		t.Errorf("blur must keep user text, state %s", f.State())
	}
	if f.Value() != "  INC1 " || f.Effective() != "INC1" {
		t.Errorf("Value() = %q, Effective() = %q", f.Value(), f.Effective())
	}

	f.Set("")
	if f.State() != FieldUnset {
		t.Errorf("erasing text keeps the field in edit mode, state %s", f.State())
	}
	f.Blur()
	if f.State() != FieldPlaceholder {
		t.Errorf("state %s after blur, want placeholder", f.State())
	}
}

func TestField_PlaceholderTextIsNotSpecial(t *testing.T) {
	f := NewField(PlaceholderName)
	f.Set(PlaceholderName)

	if f.Effective() != PlaceholderName {
		t.Errorf("typed text equal to the placeholder must be kept, got %q", f.Effective())
	}
	if f.Muted() {
		t.Error("typed text must not be muted")
	}
}

func TestField_SetDateInput(t *testing.T) {
	f := NewField(PlaceholderDate)
	f.Focus()

	f.SetDateInput("1005")
	if f.Value() != "10/05" {
		t.Errorf("Value() = %q, want 10/05", f.Value())
	}

	f.SetDateInput("10/05/20241")
	if f.Value() != "10/05/2024" {
		t.Errorf("Value() = %q, want 10/05/2024", f.Value())
	}

	f.SetDateInput("ab")
	if f.State() != FieldPlaceholder || f.Text() != PlaceholderDate {
		t.Errorf("empty result should restore the placeholder, state %s", f.State())
	}
}

func TestChoice(t *testing.T) {
	c := NewChoice([]string{"Pendente", "Em atendimento", "Resolvido"})

	if c.Value() != "Pendente" {
		t.Fatalf("new choice should hold the first option, got %q", c.Value())
	}

	c.Prev()
	if c.Value() != "Resolvido" {
		t.Errorf("Prev() should wrap to the last option, got %q", c.Value())
	}
	c.Next()
	if c.Value() != "Pendente" {
		t.Errorf("Next() should wrap to the first option, got %q", c.Value())
	}

	c.Set("Arquivado")
	if c.Value() != "Arquivado" {
		t.Errorf("stored values outside the list must be shown, got %q", c.Value())
	}
	c.Next()
	if c.Value() != "Pendente" {
		t.Errorf("Next() from an unknown value should select the first option, got %q", c.Value())
	}

	c.Unset()
	if c.Value() != "" {
		t.Errorf("Unset() should clear the value, got %q", c.Value())
	}
	c.Clear()
	if c.Value() != "Pendente" {
		t.Errorf("Clear() should select the first option, got %q", c.Value())
	}
}

func TestForm_Reset(t *testing.T) {
	form := NewForm()
	form.Name.Set("INC1")
	form.Date.Set("10/05/2024")
	form.ID.Set("3")
	form.Type.Set("CFTV")
	form.Status.Unset()

	form.Reset()

	for name, f := range map[string]*Field{"name": form.Name, "date": form.Date, "id": form.ID} {
		if f.State() != FieldPlaceholder {
			t.Errorf("%s field state %s after reset", name, f.State())
		}
	}
	if form.Type.Value() != "Acessos" || form.Status.Value() != "Pendente" {
		t.Errorf("choices after reset: %q, %q", form.Type.Value(), form.Status.Value())
	}
}

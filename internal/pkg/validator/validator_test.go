package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2023-01-01", "2000-12-31", "2024-02-29"}
	invalid := []string{"2023-13-01", "2023-02-30", "01-01-2023", "2023/01/01", ""}
	for _, s := range valid {
		if _, ok := IsValidDate(s); !ok {
			t.Errorf("IsValidDate(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsInSlice(t *testing.T) {
	slice := []string{"P", "A", "W"}
	if !IsInSlice("A", slice) {
		t.Errorf("IsInSlice(%q) = false, want true", "A")
	}
	if IsInSlice("PH", slice) {
		t.Errorf("IsInSlice(%q) = true, want false", "PH")
	}
}

type sample struct {
	Name   string  `json:"name" validate:"required"`
	Amount float64 `json:"amount" validate:"gt=0"`
	Kind   string  `json:"kind" validate:"omitempty,oneof=a b"`
}

func TestStruct(t *testing.T) {
	if errs := Struct(sample{Name: "x", Amount: 1, Kind: "a"}); errs != nil {
		t.Fatalf("Struct(valid) = %v, want nil", errs)
	}

	errs := Struct(sample{Kind: "c"})
	got := errs.ToMap()
	want := map[string]string{
		"name":   "is required",
		"amount": "must be greater than 0",
		"kind":   "must be one of: a b",
	}
	if len(got) != len(want) {
		t.Fatalf("Struct(invalid) = %v, want %v", got, want)
	}
	for field, msg := range want {
		if got[field] != msg {
			t.Errorf("field %q: got %q, want %q", field, got[field], msg)
		}
	}
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{
		{Field: "a", Message: "bad"},
		{Field: "b", Message: "worse"},
	}
	if got, want := errs.Error(), "a: bad; b: worse"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

package core

import "testing"

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{"2500", 2500, false},
		{" 2500 ", 2500, false},
		{"2,500", 2500, false},
		{"2500.00", 2500, false},
		{"2500.0", 2500, false},
		{"0", 0, true},
		{"", 0, true},
		{"-100", 0, true},
		{"+100", 0, true},
		{"12.34", 0, true}, // no sub-unit handling
		{"abc", 0, true},
		{"12a", 0, true},
		{"12.", 0, true},
	}
	for _, tc := range cases {
		got, err := ParseAmount(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseAmount(%q) expected error, got %d", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseAmount(%q) unexpected error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseAmount(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestMoneyArithmetic(t *testing.T) {
	a := Money{Units: 700}
	b := Money{Units: 1000}
	if got := a.Add(b); got.Units != 1700 {
		t.Errorf("Add = %d, want 1700", got.Units)
	}
	if got := a.Sub(b); got.Units != -300 {
		t.Errorf("Sub = %d, want -300", got.Units)
	}
}

func TestMoneyJSON(t *testing.T) {
	m := Money{Units: 1234}
	data, err := m.MarshalJSON()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != "1234" {
		t.Errorf("marshal = %s, want bare number", data)
	}
	var back Money
	if err := back.UnmarshalJSON(data); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back != m {
		t.Errorf("round trip = %+v, want %+v", back, m)
	}
}

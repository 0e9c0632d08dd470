package dice

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"
)

func TestTypesAscending(t *testing.T) {
	got := Types()
	want := []DieType{D4, D6, D8, D10, D12, D20}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Types: got %v, want %v", got, want)
	}

	got[0] = D20
	if Types()[0] != D4 {
		t.Error("Types must return a copy")
	}
}

func TestParseDieType(t *testing.T) {
	tests := []struct {
		in   string
		want DieType
	}{
		{"D6", D6},
		{"d20", D20},
		{"12", D12},
		{" d4 ", D4},
	}
	for _, tt := range tests {
		got, err := ParseDieType(tt.in)
		if err != nil {
			t.Errorf("ParseDieType(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDieType(%q): got %s, want %s", tt.in, got, tt.want)
		}
	}

	for _, bad := range []string{"", "d7", "d100", "six", "d"} {
		if _, err := ParseDieType(bad); !errors.Is(err, ErrUnknownDieType) {
			t.Errorf("ParseDieType(%q) error = %v, want ErrUnknownDieType", bad, err)
		}
	}
}

func TestDieTypeJSON(t *testing.T) {
	data, err := json.Marshal(struct {
		Die DieType `json:"die"`
	}{D12})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `{"die":"D12"}` {
		t.Errorf("marshal: got %s", data)
	}

	var out struct {
		Die DieType `json:"die"`
	}
	if err := json.Unmarshal([]byte(`{"die":"d8"}`), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.Die != D8 {
		t.Errorf("unmarshal: got %s, want D8", out.Die)
	}
}

func TestRollWithinBounds(t *testing.T) {
	src := NewSeededSource(42)
	for _, dt := range Types() {
		for i := 0; i < 200; i++ {
			r := Roll(src, dt, 3)
			if len(r) != 3 {
				t.Fatalf("%s: expected 3 values, got %v", dt, r)
			}
			for _, v := range r {
				if v < 1 || v > dt.Sides() {
					t.Fatalf("%s: value %d out of [1, %d]", dt, v, dt.Sides())
				}
			}
		}
	}
}

func TestRollSeededIsReproducible(t *testing.T) {
	a := Roll(NewSeededSource(7), D20, 10)
	b := Roll(NewSeededSource(7), D20, 10)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("same seed gave %v and %v", a, b)
	}
}

func TestOnes(t *testing.T) {
	for n := 1; n <= 10; n++ {
		r := Ones(n)
		if len(r) != n || r.Total() != n {
			t.Errorf("Ones(%d) = %v", n, r)
		}
	}
	if r := Ones(-3); len(r) != 0 {
		t.Errorf("Ones(-3) = %v, want empty", r)
	}
}

func TestRollResultString(t *testing.T) {
	r := RollResult{3, 1, 6}
	if got := r.String(); got != "3, 1, 6" {
		t.Errorf("String: got %q", got)
	}
	if got := r.Total(); got != 10 {
		t.Errorf("Total: got %d, want 10", got)
	}
}

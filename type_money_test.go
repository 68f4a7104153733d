package backoffice

import (
	"encoding/json"
	"testing"
)

func TestMoney_Arithmetic(t *testing.T) {
	a := M(100.50, "USD")
	b := M(49.50, "USD")

	if got := a.Add(b); !got.Equal(M(150, "USD")) {
		t.Errorf("Add = %s, want $150.00", got)
	}
	if got := a.Sub(b); !got.Equal(M(51, "USD")) {
		t.Errorf("Sub = %s, want $51.00", got)
	}
	if got := b.Sub(a); !got.IsNegative() {
		t.Errorf("Sub = %s, want a negative value", got)
	}
	if got := b.Sub(a).Abs(); !got.Equal(M(51, "USD")) {
		t.Errorf("Abs = %s, want $51.00", got)
	}
}

func TestMoney_ZeroValueIsWeak(t *testing.T) {
	// Accumulators start from the zero Money and adopt the currency of
	// whatever they first meet.
	var total Money
	total = total.Add(M(10, "EUR"))
	if total.Currency() != "EUR" {
		t.Errorf("Currency = %q, want EUR", total.Currency())
	}
	if !total.Equal(M(10, "EUR")) {
		t.Errorf("total = %s, want €10.00", total)
	}
}

func TestMoney_MismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("adding USD to EUR did not panic")
		}
	}()
	M(1, "USD").Add(M(1, "EUR"))
}

func TestMoney_String(t *testing.T) {
	testCases := []struct {
		money Money
		want  string
	}{
		{M(1234.5, "USD"), "$1,234.50"},
		{M(-250, "USD"), "-$250.00"},
		{M(0, "USD"), "$0.00"},
	}
	for _, tc := range testCases {
		if got := tc.money.String(); got != tc.want {
			t.Errorf("String() = %q, want %q", got, tc.want)
		}
	}
}

func TestMoney_SignedString(t *testing.T) {
	if got := M(100, "USD").SignedString(); got != "+$100.00" {
		t.Errorf("SignedString() = %q, want +$100.00", got)
	}
	if got := M(0, "USD").SignedString(); got != "-" {
		t.Errorf("SignedString() = %q, want -", got)
	}
}

func TestMoney_JSONRoundTrip(t *testing.T) {
	data, err := json.Marshal(M(1234.56, "USD"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"currency":"USD","amount":1234.56}` {
		t.Errorf("marshaled money = %s", data)
	}

	var back Money
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if !back.Equal(M(1234.56, "USD")) || back.Currency() != "USD" {
		t.Errorf("round trip changed the value: %s", back)
	}
}

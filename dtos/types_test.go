package dtos

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestFlexibleID(t *testing.T) {
	tests := []struct {
		in      string
		want    FlexibleID
		wantErr bool
	}{
		{`1`, 1, false},
		{`"1"`, 1, false},
		{`" 42 "`, 42, false},
		{`""`, 0, false},
		{`null`, 0, false},
		{`7.0`, 7, false},
		{`"abc"`, 0, true},
		{`-3`, 0, true},
		{`1.5`, 0, true},
	}
	for _, tt := range tests {
		var id FlexibleID
		err := json.Unmarshal([]byte(tt.in), &id)
		if (err != nil) != tt.wantErr {
			t.Errorf("%s: err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && id != tt.want {
			t.Errorf("%s: got %d, want %d", tt.in, id, tt.want)
		}
	}
}

func TestSaleInputStoreRef(t *testing.T) {
	var in SaleInput
	if err := json.Unmarshal([]byte(`{"customer":"Bob","store":"3","amount":100}`), &in); err != nil {
		t.Fatal(err)
	}
	if in.StoreRef() != 3 {
		t.Fatalf("store ref = %d, want 3", in.StoreRef())
	}

	in = SaleInput{}
	if err := json.Unmarshal([]byte(`{"store_id":5}`), &in); err != nil {
		t.Fatal(err)
	}
	if in.StoreRef() != 5 {
		t.Fatalf("store ref = %d, want 5", in.StoreRef())
	}
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2024-03-09")
	if err != nil || got == nil || !got.Equal(time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("ParseDate date-only = %v, %v", got, err)
	}

	got, err = ParseDate("2024-03-09T10:30:00+05:30")
	if err != nil || got == nil || !got.Equal(time.Date(2024, 3, 9, 5, 0, 0, 0, time.UTC)) {
		t.Fatalf("ParseDate RFC3339 = %v, %v", got, err)
	}

	if got, err := ParseDate(""); got != nil || err != nil {
		t.Fatalf("empty date = %v, %v", got, err)
	}
	if _, err := ParseDate("09/03/2024"); err == nil {
		t.Fatal("unsupported layout should fail")
	}
}

func TestExpenseTitleValue(t *testing.T) {
	if got := (ExpenseInput{Name: " Rent ", Title: "ignored"}).TitleValue(); got != "Rent" {
		t.Fatalf("TitleValue = %q", got)
	}
	if got := (ExpenseInput{Title: "Power"}).TitleValue(); got != "Power" {
		t.Fatalf("TitleValue = %q", got)
	}
}

func TestExpenseUpdateStoreID(t *testing.T) {
	tests := []struct {
		body    string
		set     bool
		storeID *uint
	}{
		{`{"amount":5}`, false, nil},
		{`{"store_id":null}`, true, nil},
		{`{"store_id":""}`, true, nil},
		{`{"store_id":"4"}`, true, func() *uint { v := uint(4); return &v }()},
	}
	for _, tt := range tests {
		var in ExpenseUpdateInput
		if err := json.Unmarshal([]byte(tt.body), &in); err != nil {
			t.Fatalf("%s: %v", tt.body, err)
		}
		if in.StoreID.Set != tt.set {
			t.Errorf("%s: Set = %v, want %v", tt.body, in.StoreID.Set, tt.set)
		}
		got := in.StoreID.Ptr()
		if (got == nil) != (tt.storeID == nil) || (got != nil && *got != *tt.storeID) {
			t.Errorf("%s: Ptr = %v, want %v", tt.body, got, tt.storeID)
		}
	}

	out, err := json.Marshal(ExpenseUpdateInput{})
	if err != nil || string(out) != `{"name":null,"title":null,"amount":null,"category":null,"expense_date":null,"receipt_url":null,"notes":null}` {
		t.Fatalf("unset store_id marshals as %s, %v", out, err)
	}
	if out, _ := json.Marshal(ExpenseUpdateInput{StoreID: NullableID{Set: true}}); !strings.Contains(string(out), `"store_id":null`) {
		t.Fatalf("cleared store_id marshals as %s", out)
	}
}

package pages

import (
	"testing"
	"time"
)

func TestColumnIndex(t *testing.T) {
	headers := []string{"Item", "Price", "Quantity", "Subtotal", "Actions"}

	tests := []struct {
		column  string
		want    int
		wantErr bool
	}{
		{column: "Item", want: 0},
		{column: "Subtotal", want: 3},
		{column: "quantity", want: 2},
		{column: "Total", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.column, func(t *testing.T) {
			got, err := columnIndex(headers, tt.column)
			if (err != nil) != tt.wantErr {
				t.Fatalf("columnIndex(%q) error = %v, wantErr %v", tt.column, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("columnIndex(%q) = %d, want %d", tt.column, got, tt.want)
			}
		})
	}
}

func TestColumnIndex_TrimsHeaders(t *testing.T) {
	got, err := columnIndex([]string{" Item ", "\tPrice\n"}, "Price")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 1 {
		t.Errorf("got %d, want 1", got)
	}
}

func TestMs(t *testing.T) {
	if got := *ms(1500 * time.Millisecond); got != 1500 {
		t.Errorf("ms(1.5s) = %v, want 1500", got)
	}
}

package models

import (
	"errors"
	"testing"
)

func TestNewCart(t *testing.T) {
	cart, err := NewCart("session-1")
	if err != nil {
		t.Fatalf("NewCart() unexpected error = %v", err)
	}
	if !cart.IsEmpty() {
		t.Error("New cart should be empty")
	}
	if cart.UpdatedAt.IsZero() {
		t.Error("UpdatedAt should be set")
	}

	if _, err := NewCart(""); err != ErrInvalidSessionID {
		t.Errorf("NewCart(\"\") error = %v, want %v", err, ErrInvalidSessionID)
	}
}

func TestCart_Add(t *testing.T) {
	catalog := DefaultCatalog()
	frog, _ := catalog.FindByName("Stuffed Frog")
	bunny, _ := catalog.FindByName("Fluffy Bunny")
	bear, _ := catalog.FindByName("Valentine Bear")

	cart, _ := NewCart("session-1")

	for i := 0; i < 2; i++ {
		if err := cart.Add(frog, 1); err != nil {
			t.Fatalf("Add() unexpected error = %v", err)
		}
	}
	for i := 0; i < 5; i++ {
		if err := cart.Add(bunny, 1); err != nil {
			t.Fatalf("Add() unexpected error = %v", err)
		}
	}
	if err := cart.Add(bear, 3); err != nil {
		t.Fatalf("Add() unexpected error = %v", err)
	}

	if len(cart.Items) != 3 {
		t.Fatalf("Expected 3 lines, got %d", len(cart.Items))
	}
	if cart.Items[0].Product.Name != "Stuffed Frog" || cart.Items[2].Product.Name != "Valentine Bear" {
		t.Error("Lines should keep the order products were first added in")
	}
	if cart.Count() != 10 {
		t.Errorf("Count() = %d, want 10", cart.Count())
	}

	wantSubtotals := []Money{2198, 4995, 4497}
	for i, want := range wantSubtotals {
		if got := cart.Items[i].Subtotal(); got != want {
			t.Errorf("line %d subtotal = %s, want %s", i, got, want)
		}
	}
	if cart.Total() != 11690 {
		t.Errorf("Total() = %s, want $116.90", cart.Total())
	}
}

func TestCart_AddInvalidQuantity(t *testing.T) {
	cart, _ := NewCart("session-1")
	frog, _ := DefaultCatalog().FindByName("Stuffed Frog")

	for _, quantity := range []int{0, -1} {
		if err := cart.Add(frog, quantity); err != ErrInvalidQuantity {
			t.Errorf("Add(%d) error = %v, want %v", quantity, err, ErrInvalidQuantity)
		}
	}
	if !cart.IsEmpty() {
		t.Error("Cart should stay empty after rejected adds")
	}
}

func TestCart_SetQuantity(t *testing.T) {
	catalog := DefaultCatalog()
	frog, _ := catalog.FindByName("Stuffed Frog")
	cow, _ := catalog.FindByName("Funny Cow")

	tests := []struct {
		name      string
		productID int
		quantity  int
		wantErr   error
		wantCount int
		wantLines int
	}{
		{name: "change quantity", productID: frog.ID, quantity: 4, wantCount: 5, wantLines: 2},
		{name: "zero removes line", productID: frog.ID, quantity: 0, wantCount: 1, wantLines: 1},
		{name: "negative", productID: frog.ID, quantity: -2, wantErr: ErrInvalidQuantity, wantCount: 3, wantLines: 2},
		{name: "not in cart", productID: 99, quantity: 1, wantErr: ErrItemNotInCart, wantCount: 3, wantLines: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cart, _ := NewCart("session-1")
			_ = cart.Add(frog, 2)
			_ = cart.Add(cow, 1)

			err := cart.SetQuantity(tt.productID, tt.quantity)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("SetQuantity() error = %v, want %v", err, tt.wantErr)
				}
			} else if err != nil {
				t.Fatalf("SetQuantity() unexpected error = %v", err)
			}

			if cart.Count() != tt.wantCount {
				t.Errorf("Count() = %d, want %d", cart.Count(), tt.wantCount)
			}
			if len(cart.Items) != tt.wantLines {
				t.Errorf("lines = %d, want %d", len(cart.Items), tt.wantLines)
			}
		})
	}
}

func TestCart_Empty(t *testing.T) {
	cart, _ := NewCart("session-1")
	frog, _ := DefaultCatalog().FindByName("Stuffed Frog")
	_ = cart.Add(frog, 3)

	cart.Empty()

	if !cart.IsEmpty() || cart.Count() != 0 || cart.Total() != 0 {
		t.Error("Empty() should clear every line")
	}
}

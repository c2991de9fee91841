package controllers

import (
	"testing"

	"shop/models"
)

func TestNormalizeInput(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  Áo Thun  ", "ao thun"},
		{"ĐIỆN THOẠI", "dien thoai"},
		{"laptop", "laptop"},
	}
	for _, tt := range tests {
		if got := normalizeInput(tt.in); got != tt.want {
			t.Errorf("normalizeInput(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCalculateSimilarity(t *testing.T) {
	if sim := calculateSimilarity("ao thun", "ao thun"); sim != 1.0 {
		t.Errorf("chuỗi giống nhau: similarity = %v, want 1.0", sim)
	}
	if sim := calculateSimilarity("", ""); sim != 1.0 {
		t.Errorf("hai chuỗi rỗng: similarity = %v, want 1.0", sim)
	}
	if sim := calculateSimilarity("ao thun", "quan jean"); sim > 0.5 {
		t.Errorf("chuỗi khác hẳn nhau: similarity = %v, muốn nhỏ", sim)
	}
}

func TestFilterAndScoreProductsRanksNameMatchFirst(t *testing.T) {
	products := []models.Product{
		{ID: 1, Name: "Quần jean nam"},
		{ID: 2, Name: "Áo thun nam"},
		{ID: 3, Name: "Giày thể thao"},
	}

	cm := createMatcher([]string{"thoi trang"})
	scored := filterAndScoreProducts("ao thun", products, cm)

	if len(scored) == 0 {
		t.Fatal("không tìm thấy sản phẩm nào")
	}
	if scored[0].Product.ID != 2 {
		t.Errorf("sản phẩm đứng đầu là %d, want 2", scored[0].Product.ID)
	}
}

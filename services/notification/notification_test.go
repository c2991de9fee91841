package notification

import "testing"

func TestOrderMessageBuilder(t *testing.T) {
	message := NewOrderMessageBuilder(12, 249.5).Build()
	want := "🔔 Đơn hàng mới #12, tổng 249.50."
	if message != want {
		t.Errorf("message = %q, want %q", message, want)
	}
}

func TestMelodyServiceNilInstance(t *testing.T) {
	s := &MelodyService{}
	if err := s.SendMessage("x"); err == nil {
		t.Error("melody nil phải trả về lỗi")
	}
}

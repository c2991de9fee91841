package services

import "testing"

func TestTokenRoundtrip(t *testing.T) {
	userInfo := UserInfo{UserId: 42, Role: 2}

	token, err := GenerateToken(userInfo, 15, true)
	if err != nil {
		t.Fatalf("GenerateToken lỗi: %v", err)
	}

	userID, role, err := GetUserIDFromToken(token)
	if err != nil {
		t.Fatalf("GetUserIDFromToken lỗi: %v", err)
	}
	if userID != 42 {
		t.Errorf("userID = %d, want 42", userID)
	}
	if role != 2 {
		t.Errorf("role = %d, want 2", role)
	}
}

func TestTokenRoundtripRefreshToken(t *testing.T) {
	token, err := GenerateToken(UserInfo{UserId: 7, Role: 0}, 60, false)
	if err != nil {
		t.Fatalf("GenerateToken lỗi: %v", err)
	}

	userID, err := GetIDFromToken(token)
	if err != nil {
		t.Fatalf("GetIDFromToken lỗi: %v", err)
	}
	if userID != 7 {
		t.Errorf("userID = %d, want 7", userID)
	}
}

func TestGetUserIDFromTokenRejectsGarbage(t *testing.T) {
	if _, _, err := GetUserIDFromToken("not-a-token"); err == nil {
		t.Error("token rác phải bị từ chối")
	}
	if _, _, err := GetUserIDFromToken("a.b"); err == nil {
		t.Error("token thiếu phần phải bị từ chối")
	}
}

package auth

import (
	"testing"
	"time"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("rahasia-123")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if err := CheckPassword(hash, "rahasia-123"); err != nil {
		t.Fatalf("expected password to match: %v", err)
	}
	if err := CheckPassword(hash, "salah"); err == nil {
		t.Fatal("expected mismatch for wrong password")
	}
}

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("secret", Claims{UserID: "u-1", RoleName: RoleHR}, time.Hour)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	claims, err := ParseToken("secret", token)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if claims.UserID != "u-1" || claims.RoleName != RoleHR {
		t.Fatalf("unexpected claims: %+v", claims)
	}

	if _, err := ParseToken("other-secret", token); err == nil {
		t.Fatal("expected parse to fail with the wrong secret")
	}
}

func TestTokenExpiry(t *testing.T) {
	token, err := GenerateToken("secret", Claims{UserID: "u-1"}, -time.Minute)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if _, err := ParseToken("secret", token); err == nil {
		t.Fatal("expected expired token to be rejected")
	}
}

func TestRolePermissions(t *testing.T) {
	if !HasPermission(RoleAdmin, PermPayrollDelete) {
		t.Fatal("admin must be able to delete payroll records")
	}
	if HasPermission(RoleViewer, PermPayrollImport) {
		t.Fatal("viewer must not import payroll")
	}
	if !HasPermission(RoleHR, PermPayrollImport) {
		t.Fatal("hr must import payroll")
	}
	if HasPermission(RoleHR, PermPayrollApprove) {
		t.Fatal("hr must not approve payroll")
	}
	if HasPermission("unknown", PermPayrollRead) {
		t.Fatal("unknown roles have no permissions")
	}
}

package db

import (
	"testing"

	"github.com/shandysiswandi/unifydesk/internal/verification/entity"
)

func TestOtpLockKeysDeterministic(t *testing.T) {
	id1, ty1 := otpLockKeys("user@example.com", entity.OtpTypeEmail)
	id2, ty2 := otpLockKeys("user@example.com", entity.OtpTypeEmail)

	if id1 != id2 || ty1 != ty2 {
		t.Fatalf("same pair produced different keys: (%d,%d) vs (%d,%d)", id1, ty1, id2, ty2)
	}
}

func TestOtpLockKeysDistinguishPairs(t *testing.T) {
	emailID, emailType := otpLockKeys("user@example.com", entity.OtpTypeEmail)

	otherID, _ := otpLockKeys("other@example.com", entity.OtpTypeEmail)
	if emailID == otherID {
		t.Fatalf("distinct identifiers share lock key %d", emailID)
	}

	sameID, phoneType := otpLockKeys("user@example.com", entity.OtpTypePhone)
	if sameID != emailID {
		t.Fatalf("identifier key changed with type: %d vs %d", sameID, emailID)
	}
	if emailType == phoneType {
		t.Fatalf("distinct types share lock key %d", emailType)
	}
}

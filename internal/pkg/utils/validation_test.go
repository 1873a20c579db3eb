package utils

import (
	"arogya-service/internal/pkg/dto/requests"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateStruct_CreateBulkSlots(t *testing.T) {
	valid := func() *requests.CreateBulkSlots {
		return &requests.CreateBulkSlots{
			DoctorID:            "doc-1",
			StartDate:           "2024-01-15",
			EndDate:             "2024-01-19",
			DailyStartTime:      "09:00",
			DailyEndTime:        "17:00",
			SlotDurationMinutes: 30,
		}
	}

	t.Run("Valid Request Passes", func(t *testing.T) {
		assert.NoError(t, ValidateStruct(valid()))
	})

	t.Run("Malformed Date Fails", func(t *testing.T) {
		request := valid()
		request.StartDate = "15-01-2024"
		assert.Error(t, ValidateStruct(request))
	})

	t.Run("Malformed Clock Fails", func(t *testing.T) {
		request := valid()
		request.DailyStartTime = "9am"
		assert.Error(t, ValidateStruct(request))
	})

	t.Run("Zero Duration Fails", func(t *testing.T) {
		request := valid()
		request.SlotDurationMinutes = 0
		assert.Error(t, ValidateStruct(request))
	})

	t.Run("Break Start Without End Fails", func(t *testing.T) {
		request := valid()
		request.BreakStartTime = "13:00"
		assert.Error(t, ValidateStruct(request))
	})

	t.Run("Break End Without Start Fails", func(t *testing.T) {
		request := valid()
		request.BreakEndTime = "14:00"
		assert.Error(t, ValidateStruct(request))
	})

	t.Run("Break Pair Passes", func(t *testing.T) {
		request := valid()
		request.BreakStartTime = "13:00"
		request.BreakEndTime = "14:00"
		assert.NoError(t, ValidateStruct(request))
	})
}

func TestValidateStruct_CreatePatient(t *testing.T) {
	valid := func() *requests.CreatePatient {
		return &requests.CreatePatient{
			FullName:    "Asha Verma",
			PhoneNumber: "+919876543210",
			DateOfBirth: "1990-05-20",
			Gender:      "female",
		}
	}

	t.Run("Valid Request Passes", func(t *testing.T) {
		assert.NoError(t, ValidateStruct(valid()))
	})

	t.Run("Phone Without Country Code Fails", func(t *testing.T) {
		request := valid()
		request.PhoneNumber = "9876543210"
		assert.Error(t, ValidateStruct(request))
	})

	t.Run("Unknown Gender Fails", func(t *testing.T) {
		request := valid()
		request.Gender = "unknown"
		assert.Error(t, ValidateStruct(request))
	})
}

func TestSanitizeCreateBulkSlotsRequest(t *testing.T) {
	request := &requests.CreateBulkSlots{
		DoctorID:       " doc-1 ",
		StartDate:      " 2024-01-15",
		EndDate:        "2024-01-19 ",
		DailyStartTime: " 09:00 ",
		DailyEndTime:   "17:00",
	}
	SanitizeCreateBulkSlotsRequest(request)
	assert.Equal(t, "doc-1", request.DoctorID)
	assert.Equal(t, "2024-01-15", request.StartDate)
	assert.Equal(t, "2024-01-19", request.EndDate)
	assert.Equal(t, "09:00", request.DailyStartTime)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("Str0ng!pass")
	require.NoError(t, err)
	assert.NotEqual(t, "Str0ng!pass", hash)
	assert.True(t, CheckPasswordHash("Str0ng!pass", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}

func TestJWTRoundTrip(t *testing.T) {
	token, err := GenerateJWT("sess-123", "test-secret", time.Hour)
	require.NoError(t, err)

	sessionID, err := ParseJWT(token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, "sess-123", sessionID)

	_, err = ParseJWT(token, "other-secret")
	assert.Error(t, err)
}

package phone

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name        string
		phone       string
		countryCode string
		want        string
		wantErr     bool
	}{
		{
			name:        "US number with formatting",
			phone:       "(202) 555-0142",
			countryCode: "US",
			want:        "+12025550142",
		},
		{
			name:        "defaults to US region",
			phone:       "202-555-0142",
			countryCode: "",
			want:        "+12025550142",
		},
		{
			name:        "already E.164",
			phone:       "+442071838750",
			countryCode: "GB",
			want:        "+442071838750",
		},
		{
			name:        "too short",
			phone:       "12345",
			countryCode: "US",
			wantErr:     true,
		},
		{
			name:    "empty",
			phone:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizePhone(tt.phone, tt.countryCode)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid("+12025550142", ""))
	assert.False(t, IsValid("not a phone", "US"))
	assert.False(t, IsValid("", "US"))
}

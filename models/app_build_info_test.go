package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAppBuildInfo_KeepsValues(t *testing.T) {
	info := NewAppBuildInfo("1.2.3", "2026-01-01", "abc123")

	assert.Equal(t, "1.2.3", info.BuildVersion())
	assert.Equal(t, "2026-01-01", info.BuildDate())
	assert.Equal(t, "abc123", info.BuildCommit())
}

func TestNewAppBuildInfo_EmptyValuesAreNotAvailable(t *testing.T) {
	info := NewAppBuildInfo("", "", "")

	assert.Equal(t, "N/A", info.BuildVersion())
	assert.Equal(t, "N/A", info.BuildDate())
	assert.Equal(t, "N/A", info.BuildCommit())
}

func TestUser_Summary_DropsLog(t *testing.T) {
	u := User{
		ID:       "42",
		Username: "fcc_test",
		Log:      []Exercise{{Description: "run", Duration: 30, Date: "Mon Jan 01 2024"}},
	}

	assert.Equal(t, UserSummary{Username: "fcc_test", ID: "42"}, u.Summary())
}

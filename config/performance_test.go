package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlowThresholdFor(t *testing.T) {
	assert.Equal(t, slowReportThreshold, slowThresholdFor("/api/reports"))
	assert.Equal(t, slowReportThreshold, slowThresholdFor("/api/dashboard"))

	assert.Equal(t, slowRequestThreshold, slowThresholdFor("/api/visits"))
	assert.Equal(t, slowRequestThreshold, slowThresholdFor("/auth/login"))
}

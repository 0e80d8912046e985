package app

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-grocery-sync/models"
)

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, ExitCode(models.OutcomeSuccess))
	assert.Equal(t, 1, ExitCode(models.OutcomeRetryable))
	assert.Equal(t, 2, ExitCode(models.OutcomeFatal))
	assert.Equal(t, 1, ExitCode(models.SyncOutcome(42)))
}

package metrics

import (
	"context"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProviderRecordsAndExposes(t *testing.T) {
	provider, err := NewProvider()
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, provider.Shutdown(context.Background()))
	}()

	operationMetrics, err := NewOperationMetrics(provider.MeterProvider(), "fieldshield")
	require.NoError(t, err)

	ctx := context.Background()
	operationMetrics.RecordOperation(ctx, "protect", "email", "success")
	operationMetrics.RecordOperation(ctx, "unprotect", "sealed", "error")
	operationMetrics.RecordDuration(ctx, "protect", "email", 5*time.Millisecond, "success")

	server := httptest.NewServer(provider.Handler())
	defer server.Close()

	resp, err := server.Client().Get(server.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	exposition := string(body)
	assert.Contains(t, exposition, "fieldshield_operations_total")
	assert.Contains(t, exposition, "fieldshield_operation_duration_seconds")
	assert.Contains(t, exposition, `operation="protect"`)
	assert.Contains(t, exposition, `tier="email"`)
	assert.Contains(t, exposition, `status="error"`)
}

func TestNoOpOperationMetrics(t *testing.T) {
	m := NewNoOpOperationMetrics()

	// Must be callable without a configured provider.
	m.RecordOperation(context.Background(), "verify", "password", "success")
	m.RecordDuration(context.Background(), "verify", "password", time.Second, "success")
}

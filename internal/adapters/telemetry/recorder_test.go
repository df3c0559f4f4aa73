package telemetry_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vito/progrock"
	"go.trai.ch/shipit/internal/adapters/telemetry"
	"go.trai.ch/shipit/internal/core/domain"
	"go.trai.ch/shipit/internal/core/ports"
	"go.trai.ch/zerr"
)

func TestRecorder_VertexLifecycle(t *testing.T) {
	t.Parallel()

	rec := telemetry.NewRecorder(progrock.NewTape())
	ctx, v := rec.Record(context.Background(), "app/index.js")
	require.NotNil(t, v)

	assert.Same(t, v, ports.VertexFromContext(ctx))

	v.Log(domain.LogLevelInfo, "deploying version 3")
	_, err := v.Stdout().Write([]byte("gsutil output\n"))
	require.NoError(t, err)
	v.Complete(nil)

	_, cached := rec.Record(context.Background(), "app/util.js")
	cached.Cached()
	cached.Complete(nil)

	require.NoError(t, rec.Close())
}

func TestRecorder_CompleteWithError(t *testing.T) {
	t.Parallel()

	rec := telemetry.NewRecorder(progrock.NewTape())
	_, v := rec.Record(context.Background(), "app/broken.js")
	v.Complete(zerr.New("upload failed"))
	require.NoError(t, rec.Close())
}

func TestNoop(t *testing.T) {
	t.Parallel()

	n := telemetry.NewNoop()
	ctx, v := n.Record(context.Background(), "anything")
	assert.Same(t, v, ports.VertexFromContext(ctx))

	_, err := v.Stdout().Write([]byte("discarded"))
	require.NoError(t, err)
	v.Log(domain.LogLevelWarn, "discarded")
	v.Cached()
	v.Complete(nil)
	require.NoError(t, n.Close())
}

func TestVertexFromContext_Missing(t *testing.T) {
	t.Parallel()

	assert.Nil(t, ports.VertexFromContext(context.Background()))
}

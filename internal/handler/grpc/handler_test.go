package grpc

import (
	"bytes"
	"context"
	"encoding/json"
	"net"
	"strings"
	"testing"

	"github.com/MKhiriev/pulse-auth/internal/logger"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

// startHealthServer serves h over an in-memory listener and returns a client.
func startHealthServer(t *testing.T, h *Handler) healthpb.HealthClient {
	t.Helper()

	listener := bufconn.Listen(1 << 20)
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(h.UnaryLoggingInterceptor))
	h.Register(srv)

	go func() { _ = srv.Serve(listener) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return listener.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return healthpb.NewHealthClient(conn)
}

// lastEntry decodes the final JSON line written to buf.
func lastEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.NotEmpty(t, lines)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[len(lines)-1]), &entry))
	return entry
}

func TestNewHandler(t *testing.T) {
	h := NewHandler(logger.Nop())

	require.NotNil(t, h)
	assert.NotNil(t, h.health)
	assert.NotNil(t, h.traceIDs)
}

func TestHealth_ServingThenNotServing(t *testing.T) {
	h := NewHandler(logger.Nop())
	client := startHealthServer(t, h)
	ctx := context.Background()

	for _, name := range []string{"", AuthServiceName} {
		resp, err := client.Check(ctx, &healthpb.HealthCheckRequest{Service: name})
		require.NoError(t, err)
		assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus(), "service %q", name)
	}

	h.Shutdown()

	resp, err := client.Check(ctx, &healthpb.HealthCheckRequest{Service: AuthServiceName})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, resp.GetStatus())
}

func TestHealth_UnknownService(t *testing.T) {
	client := startHealthServer(t, NewHandler(logger.Nop()))

	_, err := client.Check(context.Background(), &healthpb.HealthCheckRequest{Service: "nope"})
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestUnaryLoggingInterceptor(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(&logger.Logger{Logger: zerolog.New(&buf)})

	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs("x-trace-id", "trace-1"))
	info := &grpc.UnaryServerInfo{FullMethod: "/grpc.health.v1.Health/Check"}

	var handlerTraceID string
	_, err := h.UnaryLoggingInterceptor(ctx, nil, info, func(ctx context.Context, _ any) (any, error) {
		var inner bytes.Buffer
		innerLogger := logger.FromContext(ctx).Output(&inner)
		innerLogger.Info().Send()
		var entry map[string]any
		_ = json.Unmarshal(inner.Bytes(), &entry)
		handlerTraceID, _ = entry["trace_id"].(string)
		return nil, status.Error(codes.Unavailable, "down")
	})

	require.Error(t, err)
	assert.Equal(t, "trace-1", handlerTraceID)

	entry := lastEntry(t, &buf)
	assert.Equal(t, "trace-1", entry["trace_id"])
	assert.Equal(t, "/grpc.health.v1.Health/Check", entry["method"])
	assert.Equal(t, codes.Unavailable.String(), entry["code"])
}

func TestUnaryLoggingInterceptor_GeneratesTraceID(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(&logger.Logger{Logger: zerolog.New(&buf)})

	resp, err := h.UnaryLoggingInterceptor(context.Background(), "req", &grpc.UnaryServerInfo{FullMethod: "/m"},
		func(context.Context, any) (any, error) { return "ok", nil })

	require.NoError(t, err)
	assert.Equal(t, "ok", resp)

	entry := lastEntry(t, &buf)
	assert.NotEmpty(t, entry["trace_id"])
	assert.Equal(t, codes.OK.String(), entry["code"])
}

func TestUnaryLoggingInterceptor_OneEntryPerCall(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(&logger.Logger{Logger: zerolog.New(&buf)})
	buf.Reset()

	info := &grpc.UnaryServerInfo{FullMethod: "/m"}
	next := func(context.Context, any) (any, error) { return nil, nil }
	for range 2 {
		_, err := h.UnaryLoggingInterceptor(context.Background(), nil, info, next)
		require.NoError(t, err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	for _, line := range lines {
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		assert.Equal(t, "gRPC call handled", entry["message"])
	}
}

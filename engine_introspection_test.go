package partialpass

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func TestReportExposesPosture(t *testing.T) {
	engine := newTestEngine(t, func(c *Config) {
		withChallengeTokens(c)
		c.Metrics.Enabled = true
	})

	report := engine.Report()
	if report.BitsRange != 8 {
		t.Fatalf("expected bits range 8, got %d", report.BitsRange)
	}
	if report.CharactersMin != 2 || report.CharactersMax != 4 {
		t.Fatalf("unexpected character bounds: %+v", report)
	}
	if report.DropRate != DropModerate {
		t.Fatalf("expected moderate drop rate, got %d", report.DropRate)
	}
	if report.Argon2.Memory != 8*1024 {
		t.Fatalf("expected argon2 memory 8192, got %d", report.Argon2.Memory)
	}
	if !report.ChallengeTokensEnabled {
		t.Fatal("expected challenge tokens enabled")
	}
	if report.ChallengeTTL != time.Minute {
		t.Fatalf("expected TTL 1m, got %v", report.ChallengeTTL)
	}
	if report.SigningAlgorithm != "hs256" {
		t.Fatalf("expected hs256, got %q", report.SigningAlgorithm)
	}
	if !report.MetricsEnabled {
		t.Fatal("expected metrics enabled")
	}
	if report.AuditEnabled {
		t.Fatal("expected audit disabled")
	}
}

func TestNilEngineReport(t *testing.T) {
	var engine *Engine
	report := engine.Report()
	if report.BitsRange != 0 {
		t.Fatalf("expected zero report, got %+v", report)
	}
}

func TestEngineMetricsFlow(t *testing.T) {
	engine := newTestEngine(t, func(c *Config) {
		c.Metrics.Enabled = true
	})
	ctx := context.Background()

	const password = "hunter2w"

	if _, err := engine.Enroll(ctx, "user-1", password); err != nil {
		t.Fatalf("Enroll failed: %v", err)
	}

	ch, err := engine.Challenge(ctx, "user-1")
	if err != nil {
		t.Fatalf("Challenge failed: %v", err)
	}

	if _, err := engine.Verify(ctx, "user-1", ch.Pattern, answerFor(password, ch.Pattern, 8)); err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if _, err := engine.Verify(ctx, "user-1", ch.Pattern, "wrong"); err != nil {
		t.Fatalf("Verify failed: %v", err)
	}

	snapshot := engine.MetricsSnapshot()
	if snapshot.Counters[MetricEnrollSuccess] != 1 {
		t.Fatalf("expected 1 enroll success, got %d", snapshot.Counters[MetricEnrollSuccess])
	}
	if snapshot.Counters[MetricChallengeIssued] != 1 {
		t.Fatalf("expected 1 challenge, got %d", snapshot.Counters[MetricChallengeIssued])
	}
	if snapshot.Counters[MetricVerifySuccess] != 1 {
		t.Fatalf("expected 1 verify success, got %d", snapshot.Counters[MetricVerifySuccess])
	}
	if snapshot.Counters[MetricVerifyFailure] != 1 {
		t.Fatalf("expected 1 verify failure, got %d", snapshot.Counters[MetricVerifyFailure])
	}
}

func TestEngineAuditFlow(t *testing.T) {
	sink := NewChannelSink(64)

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis failed: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	cfg := defaultConfig()
	cfg.Password = fastPasswordConfig()
	cfg.Audit.Enabled = true
	cfg.Audit.BufferSize = 64

	engine, err := New().
		WithConfig(cfg).
		WithRedis(client).
		WithAuditSink(sink).
		Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	t.Cleanup(func() { _ = engine.Close() })

	ctx := context.Background()

	if _, err := engine.Enroll(ctx, "user-1", "hunter2w"); err != nil {
		t.Fatalf("Enroll failed: %v", err)
	}

	select {
	case event := <-sink.Events():
		if event.EventType != auditEventEnroll {
			t.Fatalf("expected enroll event, got %q", event.EventType)
		}
		if !event.Success {
			t.Fatal("expected success event")
		}
	case <-time.After(time.Second):
		t.Fatal("no audit event delivered")
	}
}

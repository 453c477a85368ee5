package storage

import (
	"context"
	"os"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dkaya/relief-ledger/internal/core/domain"
)

func getRedisClient(t *testing.T) *redis.Client {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(context.Background()).Err(); err != nil {
		t.Skipf("Redis not available: %v", err)
	}
	return client
}

func TestResolveGuard(t *testing.T) {
	client := getRedisClient(t)
	defer client.Close()

	ctx := context.Background()
	adapter := NewRedisAdapter(client)
	requestID := time.Now().UnixNano()

	ok, err := adapter.AcquireResolveGuard(ctx, requestID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Error("expected first acquire to succeed")
	}

	ok, err = adapter.AcquireResolveGuard(ctx, requestID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("expected second acquire to fail")
	}

	if err := adapter.ReleaseResolveGuard(ctx, requestID); err != nil {
		t.Fatalf("release failed: %v", err)
	}

	ok, err = adapter.AcquireResolveGuard(ctx, requestID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Error("expected acquire after release to succeed")
	}

	adapter.ReleaseResolveGuard(ctx, requestID)
}

func TestResolveGuard_Concurrent(t *testing.T) {
	client := getRedisClient(t)
	defer client.Close()

	ctx := context.Background()
	adapter := NewRedisAdapter(client)
	requestID := time.Now().UnixNano()
	defer adapter.ReleaseResolveGuard(ctx, requestID)

	var successCount atomic.Int32
	var wg sync.WaitGroup
	concurrency := 100

	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := adapter.AcquireResolveGuard(ctx, requestID)
			if err != nil {
				t.Errorf("unexpected error: %v", err)
				return
			}
			if ok {
				successCount.Add(1)
			}
		}()
	}

	wg.Wait()

	if successCount.Load() != 1 {
		t.Errorf("expected exactly 1 success, got %d", successCount.Load())
	}
}

func TestInventorySnapshot(t *testing.T) {
	client := getRedisClient(t)
	defer client.Close()

	ctx := context.Background()
	adapter := NewRedisAdapter(client)
	districtID := time.Now().UnixNano()
	defer client.Del(ctx, snapshotKey(districtID))

	// Cold read is a miss.
	_, ok, err := adapter.GetInventorySnapshot(ctx, districtID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("expected miss on cold read")
	}

	inv := domain.Inventory{"Water - Water": 7, "Coat M": 2}
	if err := adapter.SetInventorySnapshot(ctx, districtID, inv); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	got, ok, err := adapter.GetInventorySnapshot(ctx, districtID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("expected hit after set")
	}
	if got.Get("Water - Water") != 7 || got.Get("Coat M") != 2 {
		t.Errorf("unexpected snapshot: %v", got)
	}
}

func TestInventorySnapshot_OverwriteDropsStaleFields(t *testing.T) {
	client := getRedisClient(t)
	defer client.Close()

	ctx := context.Background()
	adapter := NewRedisAdapter(client)
	districtID := time.Now().UnixNano()
	defer client.Del(ctx, snapshotKey(districtID))

	if err := adapter.SetInventorySnapshot(ctx, districtID, domain.Inventory{"Water - Water": 7}); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if err := adapter.SetInventorySnapshot(ctx, districtID, domain.Inventory{"Coat M": 3}); err != nil {
		t.Fatalf("overwrite failed: %v", err)
	}

	got, ok, err := adapter.GetInventorySnapshot(ctx, districtID)
	if err != nil || !ok {
		t.Fatalf("read failed: ok=%v err=%v", ok, err)
	}
	if _, stale := got["Water - Water"]; stale {
		t.Error("stale field survived overwrite")
	}
	if got.Get("Coat M") != 3 {
		t.Errorf("stock = %d, want 3", got.Get("Coat M"))
	}
}

func TestInventorySnapshot_EmptyIsMiss(t *testing.T) {
	client := getRedisClient(t)
	defer client.Close()

	ctx := context.Background()
	adapter := NewRedisAdapter(client)
	districtID := time.Now().UnixNano()
	defer client.Del(ctx, snapshotKey(districtID))

	if err := adapter.SetInventorySnapshot(ctx, districtID, domain.Inventory{}); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	_, ok, err := adapter.GetInventorySnapshot(ctx, districtID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("empty snapshot should read as a miss")
	}
}

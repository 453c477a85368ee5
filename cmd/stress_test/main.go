package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"os"
	"sync"
	"sync/atomic"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/redis/go-redis/v9"

	"github.com/dkaya/relief-ledger/internal/adapter/storage"
	"github.com/dkaya/relief-ledger/internal/core/domain"
	"github.com/dkaya/relief-ledger/internal/core/service"
)

const (
	districtName  = "stress-test-district"
	itemKey       = "Water - Water"
	initialStock  = 20
	totalRequests = 50
)

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	ctx := context.Background()

	db, err := sql.Open("mysql", getenv("MYSQL_DSN", "root:root@tcp(localhost:3306)/relief?parseTime=true"))
	if err != nil {
		log.Fatalf("failed to connect mysql: %v", err)
	}
	defer db.Close()
	if err := db.PingContext(ctx); err != nil {
		log.Fatalf("failed to ping mysql: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{Addr: getenv("REDIS_ADDR", "localhost:6379")})
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatalf("failed to connect redis: %v", err)
	}
	defer rdb.Close()

	mysqlAdapter := storage.NewMySQLAdapter(db)
	redisAdapter := storage.NewRedisAdapter(rdb)

	inventoryService := service.NewInventoryService(mysqlAdapter, redisAdapter, totalRequests)
	defer inventoryService.Close()
	requestService := service.NewRequestService(mysqlAdapter, redisAdapter, inventoryService)

	// Drain the audit queue in background
	go func() {
		for range inventoryService.AuditQueue() {
		}
	}()

	admin := domain.Session{Token: "stress", Role: domain.RoleAdministrator}

	// Find or create the scratch district
	if err := mysqlAdapter.SeedDistricts(ctx, []domain.District{
		{Name: districtName, Latitude: 41.0, Longitude: 29.0},
	}); err != nil {
		log.Fatalf("failed to seed district: %v", err)
	}

	var districtID int64
	districts, err := inventoryService.ListDistricts(ctx)
	if err != nil {
		log.Fatalf("failed to list districts: %v", err)
	}
	for _, d := range districts {
		if d.Name == districtName {
			districtID = d.ID
			break
		}
	}
	if districtID == 0 {
		log.Fatal("scratch district not found after seeding")
	}

	// Reset the stock line to exactly initialStock
	district, err := inventoryService.GetDistrict(ctx, districtID)
	if err != nil {
		log.Fatalf("failed to load district: %v", err)
	}
	delta := initialStock - district.Inventory.Get(itemKey)
	if delta != 0 {
		if _, err := inventoryService.UpdateInventory(ctx, admin, districtID, map[string]int{itemKey: delta}); err != nil {
			log.Fatalf("failed to set stock: %v", err)
		}
	}
	log.Printf("district %d stocked with %d x %q", districtID, initialStock, itemKey)

	// Submit one pending request per attempted resolve
	requestIDs := make([]int64, 0, totalRequests)
	for i := 0; i < totalRequests; i++ {
		request, err := requestService.Submit(ctx, service.SubmitInput{
			Type:      "water",
			Subtype:   "Water",
			Latitude:  41.0,
			Longitude: 29.0,
			Quantity:  1,
		})
		if err != nil {
			log.Fatalf("failed to submit request: %v", err)
		}
		requestIDs = append(requestIDs, request.ID)
	}
	log.Printf("submitted %d requests", totalRequests)

	// Resolve all of them concurrently against the same district
	var successCount, shortfallCount, otherCount atomic.Int32
	var wg sync.WaitGroup
	start := time.Now()

	for _, id := range requestIDs {
		wg.Add(1)
		go func(requestID int64) {
			defer wg.Done()
			_, _, err := requestService.Resolve(ctx, admin, requestID, districtID)
			switch {
			case err == nil:
				successCount.Add(1)
			case errors.Is(err, domain.ErrInsufficientStock):
				shortfallCount.Add(1)
			default:
				otherCount.Add(1)
				log.Printf("resolve %d: %v", requestID, err)
			}
		}(id)
	}

	wg.Wait()
	elapsed := time.Since(start)

	district, err = inventoryService.GetDistrict(ctx, districtID)
	if err != nil {
		log.Fatalf("failed to reload district: %v", err)
	}

	fmt.Printf("resolved:   %d\n", successCount.Load())
	fmt.Printf("shortfall:  %d\n", shortfallCount.Load())
	fmt.Printf("other:      %d\n", otherCount.Load())
	fmt.Printf("final stock of %q: %d\n", itemKey, district.Inventory.Get(itemKey))
	fmt.Printf("elapsed:    %s\n", elapsed)

	if int(successCount.Load()) != initialStock {
		log.Fatalf("expected exactly %d successful resolves, got %d", initialStock, successCount.Load())
	}
	if district.Inventory.Get(itemKey) != 0 {
		log.Fatalf("expected final stock 0, got %d", district.Inventory.Get(itemKey))
	}
	log.Println("stress test passed")
}

package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/redis/go-redis/v9"
	"google.golang.org/grpc"

	"github.com/dkaya/relief-ledger/internal/adapter/handler"
	"github.com/dkaya/relief-ledger/internal/adapter/handler/pb"
	"github.com/dkaya/relief-ledger/internal/adapter/storage"
	"github.com/dkaya/relief-ledger/internal/core/catalog"
	"github.com/dkaya/relief-ledger/internal/core/domain"
	"github.com/dkaya/relief-ledger/internal/core/service"
	"github.com/dkaya/relief-ledger/internal/port"
)

const (
	defaultHTTPAddr  = ":8000"
	defaultGRPCAddr  = ":50051"
	defaultMySQLDSN  = "root:root@tcp(localhost:3306)/relief?parseTime=true"
	defaultRedisAddr = "localhost:6379"

	auditWorkerCount  = 4
	auditQueueSize    = 1024
	escalateInterval  = 2 * time.Minute
	districtsSeedPath = "static/districts.json"
	medicinesPath     = "static/medicines.json"
)

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize MySQL
	db, err := sql.Open("mysql", getenv("MYSQL_DSN", defaultMySQLDSN))
	if err != nil {
		log.Fatalf("failed to connect mysql: %v", err)
	}
	db.SetMaxOpenConns(50)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		log.Fatalf("failed to ping mysql: %v", err)
	}
	log.Println("connected to mysql")

	// Initialize Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     getenv("REDIS_ADDR", defaultRedisAddr),
		PoolSize: 100,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatalf("failed to connect redis: %v", err)
	}
	log.Println("connected to redis")

	// Initialize adapters
	mysqlAdapter := storage.NewMySQLAdapter(db)
	redisAdapter := storage.NewRedisAdapter(rdb)

	// Seed districts and load the external medicine list
	if err := seedDistricts(ctx, mysqlAdapter, getenv("DISTRICTS_SEED", districtsSeedPath)); err != nil {
		log.Fatalf("failed to seed districts: %v", err)
	}
	if err := loadMedicines(getenv("MEDICINES_PATH", medicinesPath)); err != nil {
		log.Printf("medicine list not loaded, accepting any medical subtype: %v", err)
	}

	// Initialize services
	inventoryService := service.NewInventoryService(mysqlAdapter, redisAdapter, auditQueueSize)
	requestService := service.NewRequestService(mysqlAdapter, redisAdapter, inventoryService)

	// Start transfer audit workers
	var wg sync.WaitGroup
	for i := 0; i < auditWorkerCount; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			auditWorkerLoop(id, inventoryService.AuditQueue(), mysqlAdapter)
		}(i)
	}
	log.Printf("started %d audit workers", auditWorkerCount)

	// Start the priority escalator
	escalatorDone := make(chan struct{})
	go escalatorLoop(ctx, requestService, escalatorDone)

	// Initialize gRPC server
	grpcServer := grpc.NewServer()
	grpcHandler := handler.NewGRPCHandler(requestService)
	pb.RegisterReliefServiceServer(grpcServer, grpcHandler)

	grpcAddr := getenv("GRPC_ADDR", defaultGRPCAddr)
	lis, err := net.Listen("tcp", grpcAddr)
	if err != nil {
		log.Fatalf("failed to listen: %v", err)
	}

	go func() {
		log.Printf("gRPC server listening on %s", grpcAddr)
		if err := grpcServer.Serve(lis); err != nil {
			log.Printf("gRPC server error: %v", err)
		}
	}()

	// Initialize HTTP server
	httpHandler := handler.NewHTTPHandler(inventoryService, requestService)
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", httpHandler.HealthCheck)
	mux.HandleFunc("GET /districts", httpHandler.ListDistricts)
	mux.HandleFunc("GET /districts/{id}", httpHandler.GetDistrict)
	mux.HandleFunc("GET /districts/{id}/requests", httpHandler.ListDistrictRequests)
	mux.HandleFunc("GET /requests", httpHandler.ListRequests)
	mux.HandleFunc("POST /submit-request", httpHandler.SubmitRequest)
	mux.HandleFunc("POST /districts/{id}/inventory", httpHandler.UpdateInventory)
	mux.HandleFunc("POST /districts/{from}/transfer/{to}", httpHandler.TransferInventory)
	mux.HandleFunc("POST /districts/{id}/requests/{requestID}/resolve", httpHandler.ResolveRequest)

	httpAddr := getenv("HTTP_ADDR", defaultHTTPAddr)
	httpServer := &http.Server{
		Addr:    httpAddr,
		Handler: mux,
	}

	go func() {
		log.Printf("HTTP server listening on %s", httpAddr)
		if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
			log.Printf("HTTP server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	httpServer.Shutdown(shutdownCtx)
	log.Println("HTTP server stopped")

	grpcServer.GracefulStop()
	log.Println("gRPC server stopped")

	cancel()
	<-escalatorDone
	log.Println("priority escalator stopped")

	inventoryService.Close()
	wg.Wait()
	log.Println("audit workers stopped")

	rdb.Close()
	db.Close()
	log.Println("connections closed")
}

func seedDistricts(ctx context.Context, db port.DatabaseRepository, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var seed struct {
		Districts []struct {
			Name      string  `json:"name"`
			Latitude  float64 `json:"latitude"`
			Longitude float64 `json:"longitude"`
		} `json:"districts"`
	}
	if err := json.Unmarshal(data, &seed); err != nil {
		return err
	}

	districts := make([]domain.District, 0, len(seed.Districts))
	for _, d := range seed.Districts {
		districts = append(districts, domain.District{
			Name:      d.Name,
			Latitude:  d.Latitude,
			Longitude: d.Longitude,
		})
	}
	if err := db.SeedDistricts(ctx, districts); err != nil {
		return err
	}
	log.Printf("seeded %d districts", len(districts))
	return nil
}

func loadMedicines(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var list struct {
		Medicines []string `json:"medicines"`
	}
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}

	catalog.SetMedicines(list.Medicines)
	log.Printf("loaded %d medicines", len(list.Medicines))
	return nil
}

func auditWorkerLoop(id int, queue <-chan domain.Transfer, db port.DatabaseRepository) {
	for transfer := range queue {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)

		if err := db.CreateTransfer(ctx, transfer); err != nil {
			log.Printf("worker %d: failed to record transfer %s: %v", id, transfer.ID, err)
		} else {
			log.Printf("worker %d: recorded transfer %s (%d x %q, district %d -> %d)",
				id, transfer.ID, transfer.Quantity, transfer.ItemKey,
				transfer.SourceDistrictID, transfer.TargetDistrictID)
		}

		cancel()
	}
}

func escalatorLoop(ctx context.Context, requests *service.RequestService, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(escalateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			updated, err := requests.EscalatePriorities(context.Background(), now)
			if err != nil {
				log.Printf("priority escalation failed: %v", err)
			} else if updated > 0 {
				log.Printf("escalated priority of %d pending requests", updated)
			}
		}
	}
}

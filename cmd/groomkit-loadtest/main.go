package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	groomkit "github.com/pawdesk/groomkit"
)

func main() {
	var (
		ops         = flag.Int("ops", 200000, "record operations to issue")
		concurrency = flag.Int("concurrency", 128, "number of concurrent workers")
		redisAddr   = flag.String("redis-addr", "", "redis address; if empty, REDIS_ADDR env or miniredis is used")
		stream      = flag.String("stream", "groomkit:loadtest", "redis stream for the delivery sink")
		dropIfFull  = flag.Bool("drop-if-full", true, "drop deliveries when the dispatch queue is full")
	)
	flag.Parse()

	if *ops <= 0 || *concurrency <= 0 {
		fmt.Fprintln(os.Stderr, "ops and concurrency must be > 0")
		os.Exit(2)
	}

	ctx := context.Background()

	addr := *redisAddr
	if addr == "" {
		addr = os.Getenv("REDIS_ADDR")
	}

	var cleanup func()
	if addr == "" {
		mr, err := miniredis.Run()
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to start miniredis: %v\n", err)
			os.Exit(1)
		}
		addr = mr.Addr()
		cleanup = mr.Close
		fmt.Printf("using embedded miniredis at %s\n", addr)
	}
	if cleanup != nil {
		defer cleanup()
	}

	client := redis.NewUniversalClient(&redis.UniversalOptions{Addrs: []string{addr}})
	defer func() { _ = client.Close() }()

	cfg := groomkit.PresetProduction()
	cfg.Telemetry.DropIfFull = *dropIfFull

	engine, err := groomkit.New().
		WithConfig(cfg).
		WithRedis(client).
		WithDelivery(groomkit.NewRedisStreamDelivery(client, *stream, 10000)).
		Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "build failed: %v\n", err)
		os.Exit(1)
	}
	defer engine.Close()

	engine.AuditContext().Set("groomer", "loadtest-staff")

	type opFunc func(context.Context, int)
	operations := []opFunc{
		func(ctx context.Context, i int) {
			_, _ = engine.PredictChurn(ctx, fmt.Sprintf("cust-%d", i%1000))
		},
		func(ctx context.Context, i int) {
			severity := groomkit.SeverityInfo
			if i%100 == 0 {
				severity = groomkit.SeverityCritical
			}
			_ = engine.RaiseAlert(ctx, severity, fmt.Sprintf("load alert %d", i))
		},
		func(ctx context.Context, i int) {
			_, _ = engine.TagRetention(ctx, fmt.Sprintf("cust-%d", i%1000))
		},
		func(ctx context.Context, i int) {
			_ = engine.QueueNotification(ctx, fmt.Sprintf("cust-%d", i%1000), "sms", "your appointment is tomorrow")
		},
		func(ctx context.Context, i int) {
			_, _ = engine.SyncNow(ctx)
		},
	}

	var (
		wg        sync.WaitGroup
		latencies = make([][]time.Duration, *concurrency)
	)
	perWorker := *ops / *concurrency

	start := time.Now()
	for w := 0; w < *concurrency; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(int64(w)))
			local := make([]time.Duration, 0, perWorker)
			for i := 0; i < perWorker; i++ {
				op := operations[rng.Intn(len(operations))]
				t0 := time.Now()
				op(ctx, i)
				local = append(local, time.Since(t0))
			}
			latencies[w] = local
		}(w)
	}
	wg.Wait()
	elapsed := time.Since(start)

	var all []time.Duration
	for _, l := range latencies {
		all = append(all, l...)
	}
	sort.Slice(all, func(i, j int) bool { return all[i] < all[j] })

	total := len(all)
	fmt.Printf("completed %d ops in %v (%.0f ops/sec)\n", total, elapsed, float64(total)/elapsed.Seconds())
	if total > 0 {
		fmt.Printf("latency p50=%v p95=%v p99=%v max=%v\n",
			all[total/2], all[total*95/100], all[total*99/100], all[total-1])
	}
	fmt.Printf("deliveries dropped: %d\n", engine.TelemetryDropped())

	snapshot := engine.MetricsSnapshot()
	fmt.Printf("recorded=%d escalated=%d\n",
		snapshot.Counters[groomkit.MetricEventRecorded],
		snapshot.Counters[groomkit.MetricEventEscalated])
}

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"sort"
	"sync"
	"sync/atomic"
	"time"
)

type sendReq struct {
	PhoneNumber string `json:"phoneNumber"`
	Message     string `json:"message"`
}

type bulkReq struct {
	PhoneNumbers []string `json:"phoneNumbers"`
	Message      string   `json:"message"`
}

type result struct {
	d    time.Duration
	err  error
	code int
}

func main() {
	var (
		baseURL     = flag.String("base-url", "http://localhost:8080", "API base URL")
		rps         = flag.Int("rps", 50, "requests per second")
		duration    = flag.Duration("duration", 30*time.Second, "test duration")
		concurrency = flag.Int("concurrency", 20, "number of worker goroutines")
		recipients  = flag.Int("recipients", 5, "recipients per bulk request")
		bulkRatio   = flag.Float64("bulk-ratio", 0.2, "fraction of requests sent to /send-bulk-sms (0..1)")
		timeout     = flag.Duration("timeout", 15*time.Second, "HTTP client timeout")
	)
	flag.Parse()

	if *duration <= 0 || *rps <= 0 || *concurrency <= 0 || *recipients <= 0 {
		panic("invalid args")
	}

	sendEndpoint := *baseURL + "/send-sms"
	bulkEndpoint := *baseURL + "/send-bulk-sms"
	client := &http.Client{Timeout: *timeout}

	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	// token bucket by ticker
	tokens := make(chan struct{}, *rps)
	ticker := time.NewTicker(time.Second / time.Duration(*rps))
	defer ticker.Stop()
	go func() {
		for {
			select {
			case <-ctx.Done():
				close(tokens)
				return
			case <-ticker.C:
				select {
				case tokens <- struct{}{}:
				default:
					// if channel is full, drop token (backpressure)
				}
			}
		}
	}()

	results := make(chan result, *rps)
	var sent uint64
	var ok uint64
	var httpErr uint64
	var bad uint64

	var wg sync.WaitGroup
	wg.Add(*concurrency)
	for i := 0; i < *concurrency; i++ {
		go func(workerID int) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(time.Now().UnixNano() + int64(workerID)))
			for range tokens {
				endpoint := sendEndpoint
				var b []byte
				if rng.Float64() < *bulkRatio {
					endpoint = bulkEndpoint
					b, _ = json.Marshal(bulkReq{PhoneNumbers: makeRecipients(rng, *recipients), Message: "load test"})
				} else {
					b, _ = json.Marshal(sendReq{PhoneNumber: makeRecipients(rng, 1)[0], Message: "load test"})
				}

				start := time.Now()
				req, _ := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(b))
				req.Header.Set("Content-Type", "application/json")

				resp, err := client.Do(req)
				d := time.Since(start)
				atomic.AddUint64(&sent, 1)
				if err != nil {
					atomic.AddUint64(&httpErr, 1)
					results <- result{d: d, err: err}
					continue
				}
				_, _ = io.ReadAll(resp.Body)
				_ = resp.Body.Close()

				if resp.StatusCode >= 200 && resp.StatusCode < 300 {
					atomic.AddUint64(&ok, 1)
				} else {
					atomic.AddUint64(&bad, 1)
				}
				results <- result{d: d, code: resp.StatusCode}
			}
		}(i)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	latencies := make([]time.Duration, 0, *rps*int(duration.Seconds()))
	startAll := time.Now()
	for r := range results {
		latencies = append(latencies, r.d)
	}
	elapsed := time.Since(startAll)

	sort.Slice(latencies, func(i, j int) bool { return latencies[i] < latencies[j] })

	p := func(q float64) time.Duration {
		if len(latencies) == 0 {
			return 0
		}
		idx := int(float64(len(latencies)-1) * q)
		return latencies[idx]
	}

	total := atomic.LoadUint64(&sent)
	fmt.Printf("base=%s bulk-ratio=%.2f\n", *baseURL, *bulkRatio)
	fmt.Printf("sent=%d ok=%d non2xx=%d http_err=%d elapsed=%s achieved_rps=%.1f\n",
		total,
		atomic.LoadUint64(&ok),
		atomic.LoadUint64(&bad),
		atomic.LoadUint64(&httpErr),
		elapsed,
		float64(total)/elapsed.Seconds(),
	)
	fmt.Printf("latency p50=%s p90=%s p95=%s p99=%s max=%s\n",
		p(0.50), p(0.90), p(0.95), p(0.99),
		func() time.Duration {
			if len(latencies) == 0 {
				return 0
			}
			return latencies[len(latencies)-1]
		}(),
	)
}

// makeRecipients returns n Croatian mobile numbers in E.164 form.
func makeRecipients(rng *rand.Rand, n int) []string {
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, fmt.Sprintf("+38599%07d", rng.Intn(10_000_000)))
	}
	return out
}

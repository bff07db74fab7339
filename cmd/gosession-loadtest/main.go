// Command gosession-loadtest measures seal/open throughput and latency for
// the sealed-cookie codec under concurrency. It needs no external services;
// the entire workload is CPU plus the process CSPRNG.
//
// Example:
//
//	go run ./cmd/gosession-loadtest --ops 200000 --concurrency 256
package main

import (
	"fmt"
	"net/http"
	"os"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	goSession "github.com/MrEthical07/goSession"
	"github.com/MrEthical07/goSession/cookie"
	"github.com/MrEthical07/goSession/session"

	flags "github.com/jessevdk/go-flags"
)

type options struct {
	Ops         int    `long:"ops" default:"200000" description:"operations per phase (seal + open)"`
	Concurrency int    `long:"concurrency" default:"256" description:"number of concurrent workers"`
	Secret      string `long:"secret" default:"loadtest-shared-secret" description:"shared secret to derive the key from"`
}

func main() {
	var opts options
	if _, err := flags.Parse(&opts); err != nil {
		os.Exit(2)
	}
	if opts.Ops <= 0 || opts.Concurrency <= 0 {
		fmt.Fprintln(os.Stderr, "ops and concurrency must be > 0")
		os.Exit(2)
	}

	codec, err := goSession.New().Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "codec build failed: %v\n", err)
		os.Exit(1)
	}
	defer codec.Close()

	record := session.Record{
		IdentityID:    "load-test-identity",
		IdentityEmail: "load@example.com",
		Role:          session.RoleSuperadmin,
	}

	sealLat := runPhase("seal", opts, func() error {
		_, err := codec.BuildSessionHeader(record, opts.Secret)
		return err
	})

	header, err := codec.BuildSessionHeader(record, opts.Secret)
	if err != nil {
		fmt.Fprintf(os.Stderr, "seal failed: %v\n", err)
		os.Exit(1)
	}
	token, _ := cookie.SessionToken(cookie.ParseHeader(header))
	request, err := http.NewRequest(http.MethodGet, "http://localhost/", nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "request build failed: %v\n", err)
		os.Exit(1)
	}
	request.Header.Set("Cookie", cookie.Name+"="+token)

	openLat := runPhase("open", opts, func() error {
		if got := codec.GetSession(request, opts.Secret); !got.IsAuthenticated() {
			return fmt.Errorf("open rejected a valid token")
		}
		return nil
	})

	report("seal", opts, sealLat)
	report("open", opts, openLat)
}

func runPhase(name string, opts options, op func() error) []time.Duration {
	latencies := make([]time.Duration, opts.Ops)
	var next atomic.Int64
	var failures atomic.Int64

	var wg sync.WaitGroup
	for w := 0; w < opts.Concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				i := next.Add(1) - 1
				if i >= int64(opts.Ops) {
					return
				}
				start := time.Now()
				if err := op(); err != nil {
					failures.Add(1)
				}
				latencies[i] = time.Since(start)
			}
		}()
	}
	wg.Wait()

	if n := failures.Load(); n > 0 {
		fmt.Fprintf(os.Stderr, "%s phase: %d failures\n", name, n)
		os.Exit(1)
	}
	return latencies
}

func report(name string, opts options, latencies []time.Duration) {
	sorted := make([]time.Duration, len(latencies))
	copy(sorted, latencies)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	var total time.Duration
	for _, d := range sorted {
		total += d
	}

	percentile := func(p float64) time.Duration {
		idx := int(p * float64(len(sorted)-1))
		return sorted[idx]
	}

	fmt.Printf("%s: ops=%d concurrency=%d\n", name, opts.Ops, opts.Concurrency)
	fmt.Printf("  mean=%v p50=%v p90=%v p99=%v max=%v\n",
		total/time.Duration(len(sorted)),
		percentile(0.50), percentile(0.90), percentile(0.99),
		sorted[len(sorted)-1])
}

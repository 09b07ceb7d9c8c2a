package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/akashipov/brcode/internal/client"
	"github.com/akashipov/brcode/internal/storage/charge"
	"github.com/shopspring/decimal"
)

var prices = []string{"250.00", "300.00", "630.00", "800.00", "1200.00", "2500.00", "5000.00"}

func main() {
	url := flag.String("u", "http://localhost:8000", "Base url of the server")
	n := flag.Int("n", 10000, "Number of requests")
	workers := flag.Int("w", 64, "Number of concurrent workers")
	flag.Parse()

	cl := client.New(*url)
	jobs := make(chan int)
	var failed atomic.Int64
	var w sync.WaitGroup
	start := time.Now()
	for i := 0; i < *workers; i++ {
		w.Add(1)
		go func() {
			defer w.Done()
			for j := range jobs {
				req := charge.ChargeRequest{
					Amount:        decimal.RequireFromString(prices[rand.Intn(len(prices))]),
					TransactionID: fmt.Sprintf("BENCH%d", j),
				}
				ch, err := cl.CreateCharge(context.Background(), req)
				if err == nil {
					_, err = cl.GetCharge(context.Background(), ch.ID)
				}
				if err != nil {
					failed.Add(1)
					fmt.Printf("Number of request is %d. Error is: %s\n", j, err.Error())
				}
			}
		}()
	}
	for i := 0; i < *n; i++ {
		jobs <- i
	}
	close(jobs)
	w.Wait()
	fmt.Printf("%d requests in %s, %d failed\n", *n, time.Since(start), failed.Load())
}

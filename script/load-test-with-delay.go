package main

import (
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"sort"
	"strings"
	"sync"
	"time"
)

// TradeScenario is one kind of request a simulated user sends
type TradeScenario struct {
	Name   string // For stats tracking
	Path   string
	Symbol string
	Shares int
}

// TestResult contains metrics for a single request
type TestResult struct {
	Success      bool
	ResponseTime time.Duration
	StatusCode   int
	Error        error
}

// TestStats contains aggregated test statistics
type TestStats struct {
	TotalRequests      int
	SuccessfulRequests int
	FailedRequests     int
	TotalTime          time.Duration
	MinResponseTime    time.Duration
	MaxResponseTime    time.Duration
	TotalResponseTime  time.Duration
	ResponseTimes      []time.Duration
	StatusCounts       map[int]int
	ErrorCounts        map[string]int
	ScenarioStats      map[string]int
	Lock               sync.Mutex
}

// trader is a registered user with its own cookie jar
type trader struct {
	username string
	client   *http.Client
}

func main() {
	concurrency := flag.Int("c", 5, "Number of concurrent goroutines")
	totalRequests := flag.Int("n", 100, "Total number of requests to make")
	users := flag.Int("u", 3, "Number of users to register and trade as")
	baseURL := flag.String("url", "http://localhost:8080", "Base URL of the site")
	symbols := flag.String("symbols", "AAPL,MSFT,NFLX", "Comma-separated symbols to trade")
	delayMs := flag.Int("delay", 100, "Delay between requests in milliseconds")
	flag.Parse()

	var tickers []string
	for _, s := range strings.Split(*symbols, ",") {
		if s = strings.TrimSpace(s); s != "" {
			tickers = append(tickers, s)
		}
	}
	if len(tickers) == 0 {
		tickers = []string{"AAPL"}
	}

	var scenarios []TradeScenario
	for _, s := range tickers {
		scenarios = append(scenarios,
			TradeScenario{Name: "Buy 1 " + s, Path: "/buy", Symbol: s, Shares: 1},
			TradeScenario{Name: "Buy 5 " + s, Path: "/buy", Symbol: s, Shares: 5},
			TradeScenario{Name: "Sell 1 " + s, Path: "/sell", Symbol: s, Shares: 1},
			TradeScenario{Name: "Quote " + s, Path: "/quote", Symbol: s},
		)
	}

	fmt.Printf("Registering %d users at %s\n", *users, *baseURL)
	traders := make([]*trader, 0, *users)
	runID := rand.Intn(1_000_000)
	for i := 0; i < *users; i++ {
		t, err := register(*baseURL, fmt.Sprintf("load-%d-%d", runID, i))
		if err != nil {
			fmt.Printf("Failed to register user %d: %v\n", i, err)
			continue
		}
		traders = append(traders, t)
	}
	if len(traders) == 0 {
		fmt.Println("No users could be registered, aborting")
		return
	}

	fmt.Printf("Trade scenarios: %d\n", len(scenarios))
	fmt.Printf("Concurrency: %d goroutines\n", *concurrency)
	fmt.Printf("Total requests: %d\n", *totalRequests)
	fmt.Printf("Delay between requests: %d ms\n", *delayMs)

	stats := &TestStats{
		TotalRequests:   *totalRequests,
		MinResponseTime: time.Hour,
		ResponseTimes:   make([]time.Duration, 0, *totalRequests),
		StatusCounts:    make(map[int]int),
		ErrorCounts:     make(map[string]int),
		ScenarioStats:   make(map[string]int),
	}

	results := make(chan TestResult, *totalRequests)
	jobs := make(chan int, *totalRequests)

	var wg sync.WaitGroup
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker(*baseURL, *delayMs, traders, scenarios, jobs, results, stats)
		}()
	}

	for i := 0; i < *totalRequests; i++ {
		jobs <- i
	}
	close(jobs)

	collected := make(chan struct{})
	go func() {
		defer close(collected)
		for result := range results {
			record(stats, result)
		}
	}()

	startTime := time.Now()
	fmt.Println("Test running...")

	ticker := time.NewTicker(time.Second)
	go func() {
		for range ticker.C {
			stats.Lock.Lock()
			completed := stats.SuccessfulRequests + stats.FailedRequests
			fmt.Printf("Progress: %d/%d requests completed\n", completed, stats.TotalRequests)
			stats.Lock.Unlock()
		}
	}()

	wg.Wait()
	close(results)
	<-collected
	ticker.Stop()

	stats.TotalTime = time.Since(startTime)
	printResults(stats)
}

func newClient() *http.Client {
	jar, _ := cookiejar.New(nil)
	return &http.Client{
		Jar:     jar,
		Timeout: 10 * time.Second,
		// Trades answer with a redirect; the redirect itself is the success signal
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

func register(baseURL, username string) (*trader, error) {
	client := newClient()
	resp, err := client.PostForm(baseURL+"/register", url.Values{
		"username":     {username},
		"password":     {username},
		"confirmation": {username},
	})
	if err != nil {
		return nil, err
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusFound {
		return nil, fmt.Errorf("HTTP status code %d", resp.StatusCode)
	}
	return &trader{username: username, client: client}, nil
}

func worker(baseURL string, delayMs int, traders []*trader, scenarios []TradeScenario,
	jobs <-chan int, results chan<- TestResult, stats *TestStats) {

	for range jobs {
		if delayMs > 0 {
			time.Sleep(time.Duration(delayMs) * time.Millisecond)
		}

		t := traders[rand.Intn(len(traders))]
		scenario := scenarios[rand.Intn(len(scenarios))]

		stats.Lock.Lock()
		stats.ScenarioStats[scenario.Name]++
		stats.Lock.Unlock()

		form := url.Values{"symbol": {scenario.Symbol}}
		if scenario.Shares > 0 {
			form.Set("num_shares", fmt.Sprint(scenario.Shares))
		}

		start := time.Now()
		resp, err := t.client.PostForm(baseURL+scenario.Path, form)
		result := TestResult{ResponseTime: time.Since(start)}

		if err != nil {
			result.Error = err
			results <- result
			continue
		}
		resp.Body.Close()

		result.StatusCode = resp.StatusCode
		switch {
		case resp.StatusCode == http.StatusFound && resp.Header.Get("Location") == "/":
			result.Success = true
		case resp.StatusCode == http.StatusOK && scenario.Path == "/quote":
			result.Success = true
		default:
			result.Error = fmt.Errorf("HTTP status code %d", resp.StatusCode)
		}
		results <- result
	}
}

func record(stats *TestStats, result TestResult) {
	stats.Lock.Lock()
	defer stats.Lock.Unlock()

	if result.Success {
		stats.SuccessfulRequests++
	} else {
		stats.FailedRequests++
		errMsg := "unknown"
		if result.Error != nil {
			errMsg = result.Error.Error()
		}
		stats.ErrorCounts[errMsg]++
	}
	stats.StatusCounts[result.StatusCode]++

	stats.ResponseTimes = append(stats.ResponseTimes, result.ResponseTime)
	stats.TotalResponseTime += result.ResponseTime
	if result.ResponseTime < stats.MinResponseTime {
		stats.MinResponseTime = result.ResponseTime
	}
	if result.ResponseTime > stats.MaxResponseTime {
		stats.MaxResponseTime = result.ResponseTime
	}
}

func percentile(sorted []time.Duration, p int) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	return sorted[len(sorted)*p/100]
}

func printResults(stats *TestStats) {
	rps := float64(stats.SuccessfulRequests) / stats.TotalTime.Seconds()

	var avgResponseTime time.Duration
	if len(stats.ResponseTimes) > 0 {
		avgResponseTime = stats.TotalResponseTime / time.Duration(len(stats.ResponseTimes))
	}

	sorted := make([]time.Duration, len(stats.ResponseTimes))
	copy(sorted, stats.ResponseTimes)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	fmt.Println("\n================= TEST RESULTS =================")
	fmt.Printf("Total Requests:      %d\n", stats.TotalRequests)
	fmt.Printf("Successful Requests: %d (%.1f%%)\n", stats.SuccessfulRequests,
		float64(stats.SuccessfulRequests)/float64(stats.TotalRequests)*100)
	fmt.Printf("Failed Requests:     %d (%.1f%%)\n", stats.FailedRequests,
		float64(stats.FailedRequests)/float64(stats.TotalRequests)*100)
	fmt.Printf("Total Test Time:     %.2f seconds\n", stats.TotalTime.Seconds())
	fmt.Printf("Successful RPS:      %.2f\n", rps)

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("Average Response:    %v\n", avgResponseTime)
	fmt.Printf("Minimum Response:    %v\n", stats.MinResponseTime)
	fmt.Printf("Maximum Response:    %v\n", stats.MaxResponseTime)
	fmt.Printf("P50 Response:        %v\n", percentile(sorted, 50))
	fmt.Printf("P90 Response:        %v\n", percentile(sorted, 90))
	fmt.Printf("P99 Response:        %v\n", percentile(sorted, 99))

	fmt.Println("\n----------------- STATUS CODES -----------------")
	for code, count := range stats.StatusCounts {
		fmt.Printf("%-6d: %d\n", code, count)
	}

	fmt.Println("\n----------------- SCENARIO DISTRIBUTION -----------------")
	for scenario, count := range stats.ScenarioStats {
		fmt.Printf("%-15s: %d requests\n", scenario, count)
	}

	if stats.FailedRequests > 0 {
		fmt.Println("\n----------------- ERROR DISTRIBUTION -----------------")
		for errMsg, count := range stats.ErrorCounts {
			fmt.Printf("%-40s: %d\n", errMsg, count)
		}
		fmt.Println("400 responses are expected when a sell exceeds holdings or a buy exceeds cash.")
	}
	fmt.Println("================================================")
}

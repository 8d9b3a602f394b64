package main

import (
	"bytes"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Метрики
var (
	requestsCounter = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "traffic_generator_requests_total",
		Help: "Количество отправленных запросов по статусам ответа",
	}, []string{"code"})

	requestDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "traffic_generator_request_duration_seconds",
		Help:    "Длительность запроса в секундах",
		Buckets: []float64{0.1, 0.3, 0.5, 1, 2},
	})
)

var donationBodies = []string{
	`{"requester_ID": 1, "item": "теплые вещи", "quantity": "2 пакета", "pickup": {"lat": 55.75, "lng": 37.61}}`,
	`{"requester_ID": 1, "item": "продукты", "quantity": "1 коробка", "pickup": {"lat": 59.93, "lng": 30.33}}`,
	`{"requester_ID": 1, "item": "книги", "quantity": "10 штук"}`,
}

func sendDonation(baseURL string) {
	start := time.Now()
	defer func() {
		requestDuration.Observe(time.Since(start).Seconds())
	}()

	body := donationBodies[rand.Intn(len(donationBodies))]
	resp, err := http.Post(baseURL+"/donation", "application/json", bytes.NewBufferString(body))
	if err != nil {
		requestsCounter.WithLabelValues("error").Inc()
		return
	}
	defer resp.Body.Close()

	requestsCounter.WithLabelValues(fmt.Sprintf("%d", resp.StatusCode)).Inc()
}

func main() {
	rand.Seed(time.Now().UnixNano())

	baseURL := os.Getenv("TARGET_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	http.Handle("/metrics", promhttp.Handler())
	go http.ListenAndServe(":2112", nil)

	for {
		sendDonation(baseURL)
		time.Sleep(5 * time.Second)
	}
}

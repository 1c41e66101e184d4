package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

const (
	baseURL = "http://localhost:8080"
)

func main() {
	// Wait for server to start
	time.Sleep(2 * time.Second)

	fmt.Println("Starting Integration Test...")

	jobs := []map[string]interface{}{
		{"job_id": "J1", "title": "Data Analyst", "skills_detected": []string{"Python", "SQL"}},
		{"job_id": "J2", "title": "Data Engineer", "skills_detected": []string{"Python", "Spark"}},
		{"job_id": "J3", "title": "BI Analyst", "skills_detected": []string{"SQL", "Excel"}},
	}

	// 1. Full analysis
	fmt.Println("1. Analyzing snapshot...")
	payload := map[string]interface{}{
		"jobs":        jobs,
		"user_skills": []string{"Python"},
	}
	if !sendRequest("POST", "/analyze", payload) {
		fmt.Println("FAILED: Analyze")
		os.Exit(1)
	}
	fmt.Println("PASSED: Analyze")

	// 2. Gap against one job
	fmt.Println("2. Scoring gap against J2...")
	gapPayload := map[string]interface{}{
		"jobs":          jobs,
		"user_skills":   []string{"Python"},
		"target_job_id": "J2",
	}
	if !sendRequest("POST", "/gap", gapPayload) {
		fmt.Println("FAILED: Gap")
		os.Exit(1)
	}
	fmt.Println("PASSED: Gap")

	// 3. Extraction
	fmt.Println("3. Extracting skills from raw text...")
	extractPayload := map[string]string{
		"text": "We need strong Python and power bi experience, plus SQL.",
	}
	if !sendRequest("POST", "/extract", extractPayload) {
		fmt.Println("FAILED: Extract")
		os.Exit(1)
	}
	fmt.Println("PASSED: Extract")
}

func sendRequest(method, endpoint string, payload interface{}) bool {
	var body io.Reader
	if payload != nil {
		jsonBytes, _ := json.Marshal(payload)
		body = bytes.NewBuffer(jsonBytes)
	}

	req, err := http.NewRequest(method, baseURL+endpoint, body)
	if err != nil {
		fmt.Printf("Error creating request: %v\n", err)
		return false
	}
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		fmt.Printf("Error sending request: %v\n", err)
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		fmt.Printf("Request failed with status %d: %s\n", resp.StatusCode, string(respBody))
		return false
	}

	respBody, _ := io.ReadAll(resp.Body)
	fmt.Printf("Response: %s\n", string(respBody))

	return true
}

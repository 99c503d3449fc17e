package test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

const (
	Password        = "secret"
	TokenSigningKey = "stub-signing-key"
	AdminLoginPath  = "/api/admin-login"
	VcmLoginPath    = "/api/vcm-login"
	StatisticsPath  = "/api/statistics"
)

var (
	uniqueFields = []struct {
		field   string
		message string
	}{
		{"phone_number", "Phone number already exists"},
		{"email", "Email already exists"},
		{"license_number", "License number already exists"},
	}
	numericFields = map[string]struct{}{
		"age":      {},
		"quantity": {},
		"amount":   {},
	}
)

type failure struct {
	status  int
	message string
}

// Backend is a stateful in-memory stand-in for the clinic REST api.
type Backend struct {
	*httptest.Server

	// Envelope wraps list responses in {"data": [...]} when set.
	Envelope bool

	AdminToken string
	VcmToken   string

	mu       sync.Mutex
	records  map[string][]map[string]any
	failures map[string]failure
	requests []string
	nextId   int
}

func ServerStub() *Backend {
	b := &Backend{
		records:  make(map[string][]map[string]any),
		failures: make(map[string]failure),
	}
	b.AdminToken = NewToken("admin", time.Hour)
	b.VcmToken = NewToken("vcm", time.Hour)
	b.Server = httptest.NewServer(http.HandlerFunc(b.serveHTTP))
	return b
}

// NewToken signs a token for subject expiring after ttl. Negative ttls produce
// expired tokens.
func NewToken(subject string, ttl time.Duration) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	})
	signed, err := token.SignedString([]byte(TokenSigningKey))
	if err != nil {
		panic(err)
	}
	return signed
}

// Seed stores records in resource and returns their assigned ids.
func (b *Backend) Seed(resource string, records ...any) []string {
	b.mu.Lock()
	defer b.mu.Unlock()

	ids := make([]string, 0, len(records))
	for _, r := range records {
		body, err := json.Marshal(r)
		if err != nil {
			panic(err)
		}
		record := map[string]any{}
		if err := json.Unmarshal(body, &record); err != nil {
			panic(err)
		}
		record["id"] = b.newId()
		b.records[resource] = append(b.records[resource], record)
		ids = append(ids, record["id"].(string))
	}
	return ids
}

func (b *Backend) Records(resource string) []map[string]any {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]map[string]any{}, b.records[resource]...)
}

// Fail makes every following request for method and path respond with status.
func (b *Backend) Fail(method, path string, status int, message string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failures[method+" "+path] = failure{status: status, message: message}
}

func (b *Backend) Requests() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string{}, b.requests...)
}

func (b *Backend) newId() string {
	b.nextId++
	return fmt.Sprintf("%024x", b.nextId)
}

func (b *Backend) serveHTTP(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.requests = append(b.requests, r.Method+" "+r.URL.Path)
	if f, ok := b.failures[r.Method+" "+r.URL.Path]; ok {
		writeError(w, f.status, f.message)
		return
	}

	if r.Method == http.MethodPost && (r.URL.Path == AdminLoginPath || r.URL.Path == VcmLoginPath) {
		b.login(w, r)
		return
	}
	if !b.authorized(r) && !publicRegistration(r) {
		writeJSON(w, http.StatusUnauthorized, map[string]any{"message": "Invalid or expired token"})
		return
	}
	if r.Method == http.MethodGet && r.URL.Path == StatisticsPath {
		b.statistics(w)
		return
	}

	parts := strings.Split(strings.TrimPrefix(r.URL.Path, "/api/"), "/")
	resource := parts[0]
	switch {
	case len(parts) == 1 && r.Method == http.MethodPost:
		b.create(w, r, resource)
	case len(parts) == 2 && parts[1] == "view" && r.Method == http.MethodGet:
		b.list(w, resource)
	case len(parts) == 2 && r.Method == http.MethodGet:
		b.get(w, resource, parts[1])
	case len(parts) == 2 && r.Method == http.MethodPut:
		b.update(w, r, resource, parts[1])
	case len(parts) == 2 && r.Method == http.MethodDelete:
		b.delete(w, resource, parts[1])
	default:
		writeError(w, http.StatusNotFound, "Route not found")
	}
}

func (b *Backend) authorized(r *http.Request) bool {
	token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	return ok && (token == b.AdminToken || token == b.VcmToken)
}

// publicRegistration lets anyone sign up to one of the team registries.
func publicRegistration(r *http.Request) bool {
	if r.Method != http.MethodPost {
		return false
	}
	switch r.URL.Path {
	case "/api/volunteers", "/api/caregivers", "/api/medical-professionals":
		return true
	}
	return false
}

func (b *Backend) login(w http.ResponseWriter, r *http.Request) {
	credentials := map[string]string{}
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil || credentials["password"] != Password {
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	token := b.AdminToken
	if r.URL.Path == VcmLoginPath {
		token = b.VcmToken
	}
	writeJSON(w, http.StatusOK, map[string]any{"token": token})
}

func (b *Backend) statistics(w http.ResponseWriter) {
	available := 0
	for _, e := range b.records["equipment"] {
		if e["status"] == "available" {
			available++
		}
	}
	pending := 0
	for _, t := range b.records["tasks"] {
		if t["status"] == "pending" {
			pending++
		}
	}
	total := 0.0
	for _, f := range b.records["emergency-fund"] {
		if amount, ok := f["amount"].(float64); ok {
			total += amount
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"total_patients":              len(b.records["patients"]),
		"total_patients_in_need":      strconv.Itoa(len(b.records["patients-in-need"])),
		"total_volunteers":            len(b.records["volunteers"]),
		"total_caregivers":            len(b.records["caregivers"]),
		"total_medical_professionals": len(b.records["medical-professionals"]),
		"total_equipment":             len(b.records["equipment"]),
		"available_equipment":         available,
		"pending_tasks":               pending,
		"emergency_fund_total":        strconv.FormatFloat(total, 'f', 2, 64),
	})
}

func (b *Backend) list(w http.ResponseWriter, resource string) {
	records := b.records[resource]
	if records == nil {
		records = []map[string]any{}
	}
	if b.Envelope {
		writeJSON(w, http.StatusOK, map[string]any{"data": records})
		return
	}
	writeJSON(w, http.StatusOK, records)
}

func (b *Backend) find(resource, id string) int {
	for i, r := range b.records[resource] {
		if r["id"] == id {
			return i
		}
	}
	return -1
}

func (b *Backend) get(w http.ResponseWriter, resource, id string) {
	i := b.find(resource, id)
	if i < 0 {
		writeError(w, http.StatusNotFound, "Record not found")
		return
	}
	writeJSON(w, http.StatusOK, b.records[resource][i])
}

func (b *Backend) create(w http.ResponseWriter, r *http.Request, resource string) {
	record, err := decodeRecord(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if message := b.conflict(resource, "", record); message != "" {
		writeError(w, http.StatusConflict, message)
		return
	}
	record["id"] = b.newId()
	b.records[resource] = append(b.records[resource], record)
	writeJSON(w, http.StatusCreated, record)
}

func (b *Backend) update(w http.ResponseWriter, r *http.Request, resource, id string) {
	i := b.find(resource, id)
	if i < 0 {
		writeError(w, http.StatusNotFound, "Record not found")
		return
	}
	record, err := decodeRecord(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if message := b.conflict(resource, id, record); message != "" {
		writeError(w, http.StatusConflict, message)
		return
	}
	if _, ok := record["image_url"]; !ok {
		if url, ok := b.records[resource][i]["image_url"]; ok {
			record["image_url"] = url
		}
	}
	record["id"] = id
	b.records[resource][i] = record
	writeJSON(w, http.StatusOK, record)
}

func (b *Backend) delete(w http.ResponseWriter, resource, id string) {
	i := b.find(resource, id)
	if i < 0 {
		writeError(w, http.StatusNotFound, "Record not found")
		return
	}
	b.records[resource] = append(b.records[resource][:i], b.records[resource][i+1:]...)
	writeJSON(w, http.StatusOK, map[string]any{"message": "Deleted successfully"})
}

func (b *Backend) conflict(resource, id string, record map[string]any) string {
	for _, existing := range b.records[resource] {
		if existing["id"] == id {
			continue
		}
		for _, u := range uniqueFields {
			value, _ := record[u.field].(string)
			if value != "" && existing[u.field] == value {
				return u.message
			}
		}
	}
	return ""
}

func decodeRecord(r *http.Request) (map[string]any, error) {
	record := map[string]any{}
	if !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		err := json.NewDecoder(r.Body).Decode(&record)
		delete(record, "id")
		return record, err
	}

	if err := r.ParseMultipartForm(1 << 20); err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(r.MultipartForm.Value))
	for key := range r.MultipartForm.Value {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		value := r.MultipartForm.Value[key][0]
		if _, ok := numericFields[key]; ok {
			if n, err := strconv.ParseFloat(value, 64); err == nil {
				record[key] = n
				continue
			}
		}
		record[key] = value
	}
	if files := r.MultipartForm.File["image"]; len(files) > 0 {
		record["image_url"] = "/uploads/" + files[0].Filename
	}
	delete(record, "id")
	return record, nil
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{"error": message})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	data, err := json.Marshal(body)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Add("content-type", "application/json")
	w.WriteHeader(status)
	w.Write(data)
}

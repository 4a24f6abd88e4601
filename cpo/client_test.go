package cpo

import (
	"context"
	"emipcpo/emip"
	"emipcpo/soap"
	"emipcpo/types"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func soapReply(t *testing.T, body string) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		document, err := soap.Wrap([]byte(body))
		if err != nil {
			t.Errorf("wrapping reply: %v", err)
		}
		w.Header().Set("Content-Type", "application/soap+xml")
		_, _ = w.Write(document)
	}
}

func testClient(endpoint string) *Client {
	return New(Options{
		Endpoint:       endpoint,
		PartnerId:      "DE*GDF",
		OperatorId:     "DE*GEF",
		RequestTimeout: time.Second,
		MaxRetries:     1,
	})
}

const heartbeatReply = `<eMIP_ToIOP_HeartBeatResponse xmlns="https://api-iop.gireve.com/schemas/PlatformV1/"><heartBeatPeriod>120</heartBeatPeriod><currentTime>2024-03-15T10:30:45.000Z</currentTime><transactionId>TX-1</transactionId><requestStatus>1</requestStatus></eMIP_ToIOP_HeartBeatResponse>`

func TestSendHeartbeatSuccess(t *testing.T) {
	var gotAction string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAction = r.Header.Get("SOAPAction")
		soapReply(t, heartbeatReply)(w, r)
	}))
	defer server.Close()

	client := testClient(server.URL)
	resp, err := client.SendHeartbeat(context.Background(), &emip.HeartbeatRequest{})
	if err != nil {
		t.Fatalf("SendHeartbeat: %v", err)
	}
	if !resp.RequestStatus.IsOk() {
		t.Fatalf("status = %v", resp.RequestStatus)
	}
	if resp.HeartbeatPeriod != 2*time.Minute {
		t.Fatalf("period = %v", resp.HeartbeatPeriod)
	}
	if resp.TransactionId != "TX-1" {
		t.Fatalf("transaction id = %s", resp.TransactionId)
	}
	if gotAction != emip.HeartbeatAction {
		t.Fatalf("SOAPAction = %s", gotAction)
	}
}

func TestSendHeartbeatFillsDefaults(t *testing.T) {
	server := httptest.NewServer(soapReply(t, heartbeatReply))
	defer server.Close()

	client := testClient(server.URL)
	req := &emip.HeartbeatRequest{}
	if _, err := client.SendHeartbeat(context.Background(), req); err != nil {
		t.Fatalf("SendHeartbeat: %v", err)
	}
	if req.PartnerId != "DE*GDF" || req.OperatorId != "DE*GEF" {
		t.Errorf("identity not filled: %s %s", req.PartnerId, req.OperatorId)
	}
	if req.Timestamp == nil {
		t.Error("timestamp not filled")
	}
	if req.EventTrackingId == "" {
		t.Error("tracking id not filled")
	}
	if req.RequestTimeout != time.Second {
		t.Errorf("timeout = %v", req.RequestTimeout)
	}
}

func TestSendHeartbeatNilRequest(t *testing.T) {
	client := testClient("http://127.0.0.1:1")
	if _, err := client.SendHeartbeat(context.Background(), nil); err == nil {
		t.Fatal("nil request must error")
	}
}

func TestTimeoutRetriesThenSystemError(t *testing.T) {
	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		time.Sleep(300 * time.Millisecond)
	}))
	defer server.Close()

	client := New(Options{
		Endpoint:       server.URL,
		PartnerId:      "DE*GDF",
		OperatorId:     "DE*GEF",
		RequestTimeout: 30 * time.Millisecond,
		MaxRetries:     2,
	})
	resp, err := client.SendHeartbeat(context.Background(), &emip.HeartbeatRequest{})
	if resp == nil {
		t.Fatal("a classified response is always returned")
	}
	if resp.RequestStatus != types.RequestStatusSystemError {
		t.Fatalf("status = %v", resp.RequestStatus)
	}
	if err == nil {
		t.Fatal("exhausted retries must surface the transport error")
	}
	if got := atomic.LoadInt32(&hits); got != 3 {
		t.Fatalf("attempts = %d, want max retries + 1", got)
	}
}

func TestNonTimeoutFailureIsNotRetried(t *testing.T) {
	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := testClient(server.URL)
	resp, _ := client.SendHeartbeat(context.Background(), &emip.HeartbeatRequest{})
	if resp.RequestStatus != types.RequestStatusSystemError {
		t.Fatalf("status = %v", resp.RequestStatus)
	}
	if got := atomic.LoadInt32(&hits); got != 1 {
		t.Fatalf("attempts = %d, want exactly one", got)
	}
}

func TestHTTPErrorClassification(t *testing.T) {
	cases := []struct {
		code int
		want types.RequestStatus
	}{
		{http.StatusServiceUnavailable, types.RequestStatusHTTPError},
		{http.StatusUnauthorized, types.RequestStatusHTTPError},
		{http.StatusForbidden, types.RequestStatusHTTPError},
		{http.StatusNotFound, types.RequestStatusHTTPError},
		{http.StatusInternalServerError, types.RequestStatusSystemError},
		{http.StatusBadGateway, types.RequestStatusSystemError},
	}
	for _, c := range cases {
		code := c.code
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(code)
		}))
		client := testClient(server.URL)
		resp, _ := client.SendHeartbeat(context.Background(), &emip.HeartbeatRequest{})
		if resp.RequestStatus != c.want {
			t.Errorf("http %d: status = %v, want %v", c.code, resp.RequestStatus, c.want)
		}
		if resp.TransactionId == "" {
			t.Errorf("http %d: transaction id must never be empty", c.code)
		}
		server.Close()
	}
}

func TestSOAPFaultBecomesDataError(t *testing.T) {
	fault := `<Fault xmlns="` + soap.EnvelopeNS + `"><Code><Value>Sender</Value></Code><Reason><Text>schema violation</Text></Reason></Fault>`
	server := httptest.NewServer(soapReply(t, fault))
	defer server.Close()

	client := testClient(server.URL)
	resp, err := client.SendHeartbeat(context.Background(), &emip.HeartbeatRequest{})
	if err != nil {
		t.Fatalf("fault is a classified outcome, not a call error: %v", err)
	}
	if resp.RequestStatus != types.RequestStatusDataError {
		t.Fatalf("status = %v", resp.RequestStatus)
	}
}

func TestUnparsableSuccessBodyBecomesDataError(t *testing.T) {
	server := httptest.NewServer(soapReply(t, `<eMIP_ToIOP_HeartBeatResponse><requestStatus>1</requestStatus></eMIP_ToIOP_HeartBeatResponse>`))
	defer server.Close()

	var seen error
	client := testClient(server.URL)
	client.OnException = func(operation string, err error) { seen = err }
	resp, _ := client.SendHeartbeat(context.Background(), &emip.HeartbeatRequest{})
	if resp.RequestStatus != types.RequestStatusDataError {
		t.Fatalf("status = %v", resp.RequestStatus)
	}
	if seen == nil || !strings.Contains(seen.Error(), "heartBeatPeriod") {
		t.Fatalf("exception hook saw %v", seen)
	}
}

func TestConnectionFailureBecomesServiceNotAvailable(t *testing.T) {
	client := testClient("http://127.0.0.1:1")
	resp, err := client.SendHeartbeat(context.Background(), &emip.HeartbeatRequest{})
	if resp.RequestStatus != types.RequestStatusServiceNotAvailable && resp.RequestStatus != types.RequestStatusSystemError {
		t.Fatalf("status = %v", resp.RequestStatus)
	}
	if err == nil {
		t.Fatal("connection failure must surface an error")
	}
}

func TestGateDenialSkipsNetwork(t *testing.T) {
	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
	}))
	defer server.Close()

	client := New(Options{
		Endpoint:        server.URL,
		PartnerId:       "DE*GDF",
		OperatorId:      "DE*GEF",
		AllowedPrefixes: []string{"DE*GEF*E12"},
	})
	req := &emip.SetEVSEAvailabilityStatusRequest{
		EVSEId:             "FR*OTH*E999*1",
		StatusEventDate:    types.Now(),
		AvailabilityStatus: types.EVSEAvailabilityInService,
	}
	resp, err := client.SetEVSEAvailabilityStatus(context.Background(), req)
	if err != nil {
		t.Fatalf("gate denial is a classified outcome: %v", err)
	}
	if resp.RequestStatus != types.RequestStatusServiceNotAvailable {
		t.Fatalf("status = %v", resp.RequestStatus)
	}
	if atomic.LoadInt32(&hits) != 0 {
		t.Fatal("gated request must not reach the network")
	}
}

func TestGateAllowsMatchingPrefix(t *testing.T) {
	ack := `<eMIP_ToIOP_SetEVSEAvailabilityStatusResponse><transactionId>TX-2</transactionId><requestStatus>1</requestStatus></eMIP_ToIOP_SetEVSEAvailabilityStatusResponse>`
	server := httptest.NewServer(soapReply(t, ack))
	defer server.Close()

	client := New(Options{
		Endpoint:        server.URL,
		PartnerId:       "DE*GDF",
		OperatorId:      "DE*GEF",
		AllowedPrefixes: []string{"DE*GEF"},
	})
	req := &emip.SetEVSEAvailabilityStatusRequest{
		EVSEId:             "DE*GEF*E1234*1",
		StatusEventDate:    types.Now(),
		AvailabilityStatus: types.EVSEAvailabilityInService,
	}
	resp, err := client.SetEVSEAvailabilityStatus(context.Background(), req)
	if err != nil {
		t.Fatalf("SetEVSEAvailabilityStatus: %v", err)
	}
	if !resp.RequestStatus.IsOk() || resp.TransactionId != "TX-2" {
		t.Fatalf("resp = %+v", resp)
	}
}

func TestHeartbeatBypassesGate(t *testing.T) {
	server := httptest.NewServer(soapReply(t, heartbeatReply))
	defer server.Close()

	client := New(Options{
		Endpoint:        server.URL,
		PartnerId:       "DE*GDF",
		OperatorId:      "DE*GEF",
		AllowedPrefixes: []string{"nothing-matches-this"},
	})
	resp, err := client.SendHeartbeat(context.Background(), &emip.HeartbeatRequest{})
	if err != nil {
		t.Fatalf("SendHeartbeat: %v", err)
	}
	if !resp.RequestStatus.IsOk() {
		t.Fatalf("heartbeat must not be gated, status = %v", resp.RequestStatus)
	}
}

func TestRequestMapperApplied(t *testing.T) {
	server := httptest.NewServer(soapReply(t, heartbeatReply))
	defer server.Close()

	client := testClient(server.URL)
	client.Custom.HeartbeatRequestMapper = func(req *emip.HeartbeatRequest) *emip.HeartbeatRequest {
		mapped := *req
		mapped.TransactionId = "TX-MAPPED"
		return &mapped
	}
	req := &emip.HeartbeatRequest{}
	resp, err := client.SendHeartbeat(context.Background(), req)
	if err != nil {
		t.Fatalf("SendHeartbeat: %v", err)
	}
	if resp.Request.TransactionId != "TX-MAPPED" {
		t.Fatalf("mapper not applied, id = %s", resp.Request.TransactionId)
	}
	if req.TransactionId != "" {
		t.Error("original request must stay untouched")
	}
}

func TestRequestMapperReturningNil(t *testing.T) {
	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
	}))
	defer server.Close()

	client := testClient(server.URL)
	client.Custom.HeartbeatRequestMapper = func(*emip.HeartbeatRequest) *emip.HeartbeatRequest { return nil }
	if _, err := client.SendHeartbeat(context.Background(), &emip.HeartbeatRequest{}); err == nil {
		t.Fatal("nil-mapped request must error")
	}
	if atomic.LoadInt32(&hits) != 0 {
		t.Fatal("nil-mapped request must not reach the network")
	}
}

func TestCustomResponseParserApplied(t *testing.T) {
	server := httptest.NewServer(soapReply(t, heartbeatReply))
	defer server.Close()

	client := testClient(server.URL)
	client.Custom.HeartbeatResponseParser = func(r *emip.HeartbeatResponse) (*emip.HeartbeatResponse, error) {
		b := r.ToBuilder()
		b.HeartbeatPeriod = time.Hour
		return b.Build(), nil
	}
	resp, err := client.SendHeartbeat(context.Background(), &emip.HeartbeatRequest{})
	if err != nil {
		t.Fatalf("SendHeartbeat: %v", err)
	}
	if resp.HeartbeatPeriod != time.Hour {
		t.Fatalf("period = %v", resp.HeartbeatPeriod)
	}
}

func TestEventsFireAroundCall(t *testing.T) {
	server := httptest.NewServer(soapReply(t, heartbeatReply))
	defer server.Close()

	client := testClient(server.URL)
	var mu sync.Mutex
	var stages []Stage
	client.Subscribe(func(event Event) {
		mu.Lock()
		defer mu.Unlock()
		stages = append(stages, event.Stage)
		if event.Stage == StageResponse {
			if event.Status != types.RequestStatusOk {
				t.Errorf("event status = %v", event.Status)
			}
			if event.Duration <= 0 {
				t.Error("event duration not measured")
			}
			if event.TransactionId != "TX-1" {
				t.Errorf("event transaction id = %s", event.TransactionId)
			}
		}
	})
	if _, err := client.SendHeartbeat(context.Background(), &emip.HeartbeatRequest{}); err != nil {
		t.Fatalf("SendHeartbeat: %v", err)
	}
	mu.Lock()
	defer mu.Unlock()
	if len(stages) != 2 || stages[0] != StageRequest || stages[1] != StageResponse {
		t.Fatalf("stages = %v", stages)
	}
}

func TestEventFilteringByOperation(t *testing.T) {
	server := httptest.NewServer(soapReply(t, heartbeatReply))
	defer server.Close()

	client := testClient(server.URL)
	var matched, all, other int32
	client.Subscribe(func(Event) { atomic.AddInt32(&matched, 1) }, emip.HeartbeatFeatureName)
	client.Subscribe(func(Event) { atomic.AddInt32(&all, 1) }, "All")
	client.Subscribe(func(Event) { atomic.AddInt32(&other, 1) }, emip.SetChargeDetailRecordFeatureName)

	if _, err := client.SendHeartbeat(context.Background(), &emip.HeartbeatRequest{}); err != nil {
		t.Fatalf("SendHeartbeat: %v", err)
	}
	if atomic.LoadInt32(&matched) != 2 {
		t.Errorf("matched observer fired %d times", matched)
	}
	if atomic.LoadInt32(&all) != 2 {
		t.Errorf("All observer fired %d times", all)
	}
	if atomic.LoadInt32(&other) != 0 {
		t.Errorf("unrelated observer fired %d times", other)
	}
}

func TestPanickingObserverDoesNotBreakCall(t *testing.T) {
	server := httptest.NewServer(soapReply(t, heartbeatReply))
	defer server.Close()

	client := testClient(server.URL)
	client.Subscribe(func(Event) { panic("observer gone wrong") })
	resp, err := client.SendHeartbeat(context.Background(), &emip.HeartbeatRequest{})
	if err != nil || !resp.RequestStatus.IsOk() {
		t.Fatalf("call must survive a panicking observer: %v %v", err, resp.RequestStatus)
	}
}

func TestAllowPrefixesCopiesInput(t *testing.T) {
	prefixes := []string{"DE*GEF"}
	gate := AllowPrefixes(prefixes...)
	prefixes[0] = "XX"
	if !gate("DE*GEF*E1*1") {
		t.Fatal("gate must not observe later mutation of the input slice")
	}
}

func TestEndpointAssembly(t *testing.T) {
	client := New(Options{Host: "api-iop.example.org"})
	if client.Endpoint() != "https://api-iop.example.org:443/api/emip" {
		t.Fatalf("endpoint = %s", client.Endpoint())
	}
	client = New(Options{Endpoint: "http://localhost:8080/soap"})
	if client.Endpoint() != "http://localhost:8080/soap" {
		t.Fatalf("endpoint = %s", client.Endpoint())
	}
}

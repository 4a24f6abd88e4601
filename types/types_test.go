package types

import (
	"testing"
	"time"
)

func TestDateTimeWireFormat(t *testing.T) {
	dt := NewDateTime(time.Date(2024, 3, 15, 10, 30, 45, 123000000, time.UTC))
	want := "2024-03-15T10:30:45.123Z"
	if got := dt.FormatWire(); got != want {
		t.Fatalf("FormatWire() = %s, want %s", got, want)
	}
	parsed, err := ParseDateTime(want)
	if err != nil {
		t.Fatalf("ParseDateTime(%s): %v", want, err)
	}
	if !parsed.Equals(dt) {
		t.Fatalf("round trip mismatch: %v != %v", parsed, dt)
	}
}

func TestDateTimeAcceptsRFC3339(t *testing.T) {
	parsed, err := ParseDateTime("2024-03-15T11:30:45+01:00")
	if err != nil {
		t.Fatalf("ParseDateTime: %v", err)
	}
	want := NewDateTime(time.Date(2024, 3, 15, 10, 30, 45, 0, time.UTC))
	if !parsed.Equals(want) {
		t.Fatalf("parsed %v, want %v", parsed, want)
	}
}

func TestDateTimeRejectsGarbage(t *testing.T) {
	if _, err := ParseDateTime("not a time"); err == nil {
		t.Fatal("expected error for garbage timestamp")
	}
}

func TestDateTimeEqualsNil(t *testing.T) {
	var a *DateTime
	if !a.Equals(nil) {
		t.Fatal("nil must equal nil")
	}
	if a.Equals(Now()) {
		t.Fatal("nil must not equal a value")
	}
}

func TestTransactionIdOrZero(t *testing.T) {
	var id TransactionId
	if id.OrZero() != TransactionIdZero {
		t.Fatalf("empty id OrZero() = %s, want %s", id.OrZero(), TransactionIdZero)
	}
	id = "TX-42"
	if id.OrZero() != id {
		t.Fatalf("set id must survive OrZero, got %s", id.OrZero())
	}
	if !TransactionId("").IsEmpty() || TransactionIdZero.IsEmpty() {
		t.Fatal("IsEmpty is wrong")
	}
}

func TestNewTransactionIdUnique(t *testing.T) {
	if NewTransactionId() == NewTransactionId() {
		t.Fatal("two generated transaction ids collided")
	}
}

func TestAvailabilityStatusTokens(t *testing.T) {
	cases := []struct {
		token string
		want  EVSEAvailabilityStatus
	}{
		{"1", EVSEAvailabilityOutOfOrder},
		{"2", EVSEAvailabilityInService},
		{"3", EVSEAvailabilityFuture},
		{"4", EVSEAvailabilityDeleted},
		{"OutOfOrder", EVSEAvailabilityOutOfOrder},
		{"InService", EVSEAvailabilityInService},
		{"Future", EVSEAvailabilityFuture},
		{"Deleted", EVSEAvailabilityDeleted},
		{"0", EVSEAvailabilityUnspecified},
		{"99", EVSEAvailabilityUnspecified},
		{"nonsense", EVSEAvailabilityUnspecified},
		{"", EVSEAvailabilityUnspecified},
	}
	for _, c := range cases {
		if got := EVSEAvailabilityStatusFrom(c.token); got != c.want {
			t.Errorf("EVSEAvailabilityStatusFrom(%q) = %v, want %v", c.token, got, c.want)
		}
	}
}

func TestAvailabilityStatusRoundTrip(t *testing.T) {
	for s := EVSEAvailabilityUnspecified; s <= EVSEAvailabilityDeleted; s++ {
		if got := EVSEAvailabilityStatusFrom(s.Text()); got != s {
			t.Errorf("text round trip for %v via %q = %v", s, s.Text(), got)
		}
	}
	if got := ChargingPoolAvailabilityStatusFrom(ChargingPoolAvailabilityInService.Text()); got != ChargingPoolAvailabilityInService {
		t.Errorf("pool round trip = %v", got)
	}
	if got := ChargingStationAvailabilityStatusFrom("4"); got != ChargingStationAvailabilityDeleted {
		t.Errorf("station numeric = %v", got)
	}
	if got := ChargingConnectorAvailabilityStatusFrom("Future"); got != ChargingConnectorAvailabilityFuture {
		t.Errorf("connector text = %v", got)
	}
}

func TestBusyStatusTokens(t *testing.T) {
	cases := []struct {
		token string
		want  EVSEBusyStatus
	}{
		{"1", EVSEBusyFree},
		{"2", EVSEBusyBusy},
		{"3", EVSEBusyReserved},
		{"Reserved", EVSEBusyReserved},
		{"7", EVSEBusyUnspecified},
		{"gibberish", EVSEBusyUnspecified},
	}
	for _, c := range cases {
		if got := EVSEBusyStatusFrom(c.token); got != c.want {
			t.Errorf("EVSEBusyStatusFrom(%q) = %v, want %v", c.token, got, c.want)
		}
	}
}

func TestStatusEnumsNeverFail(t *testing.T) {
	if AuthorisationValueFrom("junk") != AuthorisationUnspecified {
		t.Error("authorisation junk must map to unspecified")
	}
	if RemoteStartStopFrom("Stop") != RemoteStop {
		t.Error("Stop text not recognised")
	}
	if RemoteStartStopFrom("RemoteStop") != RemoteStop {
		t.Error("RemoteStop alias not recognised")
	}
	if RemoteStartStopFrom("RemoteStart") != RemoteStart {
		t.Error("RemoteStart alias not recognised")
	}
	if CDRNatureFrom("Intermediate") != CDRNatureIntermediate {
		t.Error("Intermediate text not recognised")
	}
	if MeterTypeFrom("5") != MeterTypeUnspecified {
		t.Error("out of range meter type must map to unspecified")
	}
	if SessionEventNatureFrom("Ended") != SessionEventEnded {
		t.Error("Ended text not recognised")
	}
}

func TestRequestStatusBands(t *testing.T) {
	if !RequestStatusOk.IsOk() || RequestStatusOk.IsWarning() || RequestStatusOk.IsError() {
		t.Error("Ok classified wrong")
	}
	if !RequestStatusAcceptedPartly.IsWarning() {
		t.Error("205 must be a warning")
	}
	if !RequestStatusAcceptedQueued.IsWarning() {
		t.Error("206 must be a warning")
	}
	for _, s := range []RequestStatus{RequestStatusDataError, RequestStatusHTTPError, RequestStatusSystemError, RequestStatusServiceNotAvailable} {
		if !s.IsError() {
			t.Errorf("%v must be an error", s)
		}
	}
}

func TestRequestStatusFromKeepsUnknownCodes(t *testing.T) {
	if got := RequestStatusFrom("10777"); got.Code() != 10777 {
		t.Fatalf("unknown numeric code lost: %v", got)
	}
	if got := RequestStatusFrom("rubbish"); got != RequestStatusUnknown {
		t.Fatalf("garbage token = %v, want unknown", got)
	}
}

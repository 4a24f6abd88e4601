package emip

import (
	"emipcpo/types"
	"strings"
	"testing"
)

func eventDate(t *testing.T, s string) *types.DateTime {
	t.Helper()
	dt, err := types.ParseDateTime(s)
	if err != nil {
		t.Fatalf("ParseDateTime(%s): %v", s, err)
	}
	return dt
}

func TestActionURIs(t *testing.T) {
	cases := map[string]string{
		SetChargingPoolAvailabilityStatusAction:      "eMIP_ToIOP_SetChargingPoolAvailabilityStatusV1/",
		SetChargingStationAvailabilityStatusAction:   "eMIP_ToIOP_SetChargingStationAvailabilityStatusV1/",
		SetEVSEAvailabilityStatusAction:              "eMIP_ToIOP_SetEVSEAvailabilityStatusV1/",
		SetChargingConnectorAvailabilityStatusAction: "eMIP_ToIOP_SetChargingConnectorAvailabilityStatusV1/",
		SetEVSEBusyStatusAction:                      "eMIP_ToIOP_SetEVSEBusyStatusV1/",
		SetEVSESyntheticStatusAction:                 "eMIP_ToIOP_SetEVSESyntheticStatusV1/",
		GetServiceAuthorisationAction:                "eMIP_ToIOP_GetServiceAuthorisationV1/",
		SetSessionEventReportAction:                  "eMIP_ToIOP_SetSessionEventReportV1/",
		SetChargeDetailRecordAction:                  "eMIP_ToIOP_SetChargeDetailRecordV1/",
	}
	for action, suffix := range cases {
		if !strings.HasPrefix(action, ActionPrefix) || !strings.HasSuffix(action, suffix) {
			t.Errorf("action %s does not end in %s", action, suffix)
		}
	}
}

func TestSetEVSEAvailabilityStatusRequestRoundTrip(t *testing.T) {
	req := &SetEVSEAvailabilityStatusRequest{
		Request:                 testHeader(),
		EVSEId:                  "DE*GEF*E1234*1",
		StatusEventDate:         eventDate(t, "2024-03-15T10:30:45.000Z"),
		AvailabilityStatus:      types.EVSEAvailabilityInService,
		AvailabilityStatusUntil: eventDate(t, "2024-03-16T00:00:00.000Z"),
		Comment:                 "back in service",
	}
	data, err := req.ToXML()
	if err != nil {
		t.Fatalf("ToXML: %v", err)
	}
	if !strings.Contains(string(data), "<availabilityStatus>2</availabilityStatus>") {
		t.Errorf("status must be numeric: %s", data)
	}
	parsed, ok := TryParseSetEVSEAvailabilityStatusRequest(data, nil)
	if !ok || !parsed.Equals(req) {
		t.Fatalf("round trip mismatch, ok=%v", ok)
	}
}

func TestSetEVSEAvailabilityStatusRequestOptionalFieldsAbsent(t *testing.T) {
	req := &SetEVSEAvailabilityStatusRequest{
		Request:            testHeader(),
		EVSEId:             "DE*GEF*E1234*1",
		StatusEventDate:    eventDate(t, "2024-03-15T10:30:45.000Z"),
		AvailabilityStatus: types.EVSEAvailabilityOutOfOrder,
	}
	data, err := req.ToXML()
	if err != nil {
		t.Fatalf("ToXML: %v", err)
	}
	if strings.Contains(string(data), "availabilityStatusUntil") || strings.Contains(string(data), "comment") {
		t.Errorf("absent optionals must be omitted: %s", data)
	}
	parsed, ok := TryParseSetEVSEAvailabilityStatusRequest(data, nil)
	if !ok || !parsed.Equals(req) {
		t.Fatal("round trip mismatch")
	}
}

func TestSetEVSEAvailabilityStatusRequestMissingEVSEId(t *testing.T) {
	req := &SetEVSEAvailabilityStatusRequest{
		Request:            testHeader(),
		StatusEventDate:    eventDate(t, "2024-03-15T10:30:45.000Z"),
		AvailabilityStatus: types.EVSEAvailabilityInService,
	}
	data, _ := req.ToXML()
	var seen error
	if _, ok := TryParseSetEVSEAvailabilityStatusRequest(data, func(err error) { seen = err }); ok {
		t.Fatal("missing EVSEId must not parse")
	}
	if seen == nil || !strings.Contains(seen.Error(), "EVSEId") {
		t.Fatalf("error = %v", seen)
	}
}

func TestPoolStationConnectorRoundTrips(t *testing.T) {
	when := eventDate(t, "2024-03-15T10:30:45.000Z")

	pool := &SetChargingPoolAvailabilityStatusRequest{
		Request:            testHeader(),
		ChargingPoolId:     "DE*GEF*P42",
		StatusEventDate:    when,
		AvailabilityStatus: types.ChargingPoolAvailabilityFuture,
	}
	data, err := pool.ToXML()
	if err != nil {
		t.Fatalf("pool ToXML: %v", err)
	}
	if parsed, ok := TryParseSetChargingPoolAvailabilityStatusRequest(data, nil); !ok || !parsed.Equals(pool) {
		t.Error("pool round trip mismatch")
	}

	station := &SetChargingStationAvailabilityStatusRequest{
		Request:            testHeader(),
		ChargingStationId:  "DE*GEF*S42",
		StatusEventDate:    when,
		AvailabilityStatus: types.ChargingStationAvailabilityDeleted,
	}
	data, err = station.ToXML()
	if err != nil {
		t.Fatalf("station ToXML: %v", err)
	}
	if parsed, ok := TryParseSetChargingStationAvailabilityStatusRequest(data, nil); !ok || !parsed.Equals(station) {
		t.Error("station round trip mismatch")
	}

	connector := &SetChargingConnectorAvailabilityStatusRequest{
		Request:             testHeader(),
		ChargingConnectorId: "DE*GEF*C42",
		StatusEventDate:     when,
		AvailabilityStatus:  types.ChargingConnectorAvailabilityOutOfOrder,
	}
	data, err = connector.ToXML()
	if err != nil {
		t.Fatalf("connector ToXML: %v", err)
	}
	if parsed, ok := TryParseSetChargingConnectorAvailabilityStatusRequest(data, nil); !ok || !parsed.Equals(connector) {
		t.Error("connector round trip mismatch")
	}
}

func TestSetEVSEBusyStatusRequestRoundTrip(t *testing.T) {
	req := &SetEVSEBusyStatusRequest{
		Request:         testHeader(),
		EVSEId:          "DE*GEF*E1234*1",
		StatusEventDate: eventDate(t, "2024-03-15T10:30:45.000Z"),
		BusyStatus:      types.EVSEBusyReserved,
		Comment:         "reservation placed",
	}
	data, err := req.ToXML()
	if err != nil {
		t.Fatalf("ToXML: %v", err)
	}
	if !strings.Contains(string(data), "<busyStatus>3</busyStatus>") {
		t.Errorf("busy status must be numeric: %s", data)
	}
	parsed, ok := TryParseSetEVSEBusyStatusRequest(data, nil)
	if !ok || !parsed.Equals(req) {
		t.Fatal("round trip mismatch")
	}
}

func TestSetEVSESyntheticStatusRequestBothPartsOptional(t *testing.T) {
	bare := &SetEVSESyntheticStatusRequest{
		Request: testHeader(),
		EVSEId:  "DE*GEF*E1234*1",
	}
	data, err := bare.ToXML()
	if err != nil {
		t.Fatalf("ToXML: %v", err)
	}
	if strings.Contains(string(data), "availabilityStatus") || strings.Contains(string(data), "busyStatus") {
		t.Errorf("absent parts must be omitted: %s", data)
	}
	parsed, ok := TryParseSetEVSESyntheticStatusRequest(data, nil)
	if !ok || !parsed.Equals(bare) {
		t.Fatal("bare round trip mismatch")
	}

	availability := types.EVSEAvailabilityInService
	busy := types.EVSEBusyBusy
	full := &SetEVSESyntheticStatusRequest{
		Request:                     testHeader(),
		EVSEId:                      "DE*GEF*E1234*1",
		AvailabilityStatusEventDate: eventDate(t, "2024-03-15T10:30:45.000Z"),
		AvailabilityStatus:          &availability,
		BusyStatusEventDate:         eventDate(t, "2024-03-15T10:31:45.000Z"),
		BusyStatus:                  &busy,
	}
	data, err = full.ToXML()
	if err != nil {
		t.Fatalf("ToXML: %v", err)
	}
	parsed, ok = TryParseSetEVSESyntheticStatusRequest(data, nil)
	if !ok || !parsed.Equals(full) {
		t.Fatal("full round trip mismatch")
	}
}

func TestGetServiceAuthorisationRequestRoundTrip(t *testing.T) {
	req := &GetServiceAuthorisationRequest{
		Request:                 testHeader(),
		EVSEId:                  "DE*GEF*E1234*1",
		UserId:                  "04AABBCCDD2280",
		RequestedServiceId:      "1",
		ActionType:              types.RemoteStart,
		PartnerServiceSessionId: "PS-77",
	}
	data, err := req.ToXML()
	if err != nil {
		t.Fatalf("ToXML: %v", err)
	}
	if !strings.Contains(string(data), "<userIdType>RFID-UID</userIdType>") {
		t.Errorf("user id format must default to RFID-UID: %s", data)
	}
	if !strings.Contains(string(data), "<actionType>1</actionType>") {
		t.Errorf("action type must be numeric: %s", data)
	}
	parsed, ok := TryParseGetServiceAuthorisationRequest(data, nil)
	if !ok || !parsed.Equals(req) {
		t.Fatal("round trip mismatch")
	}
}

func TestGetServiceAuthorisationResponseRoundTrip(t *testing.T) {
	resp := &GetServiceAuthorisationResponse{
		TransactionId:            "TX-300",
		RequestStatus:            types.RequestStatusOk,
		AuthorisationValue:       types.AuthorisationAuthorised,
		ServiceSessionId:         "IOP-SESSION-1",
		IntermediateCDRRequested: true,
		UserContractIdAlias:      "DE-GDF-C12345678-X",
		MeterLimits: []MeterReport{
			{Value: "7200", Unit: "s", Type: types.MeterTypeTotalDuration},
			{Value: "22000", Unit: "Wh", Type: types.MeterTypeTotalEnergy},
		},
		Parameter: "maxPower=11",
	}
	data, err := resp.ToXML()
	if err != nil {
		t.Fatalf("ToXML: %v", err)
	}
	parsed, ok := TryParseGetServiceAuthorisationResponse(nil, data, func(err error) { t.Errorf("onError: %v", err) })
	if !ok {
		t.Fatal("TryParse failed")
	}
	if !parsed.Equals(resp) {
		t.Fatalf("round trip mismatch:\n%+v\n%+v", parsed, resp)
	}
}

func TestGetServiceAuthorisationResponseRejected(t *testing.T) {
	body := []byte(`<eMIP_ToIOP_GetServiceAuthorisationResponse><transactionId>TX-1</transactionId><authorisationValue>2</authorisationValue><requestStatus>1</requestStatus></eMIP_ToIOP_GetServiceAuthorisationResponse>`)
	parsed, ok := TryParseGetServiceAuthorisationResponse(nil, body, nil)
	if !ok {
		t.Fatal("TryParse failed")
	}
	if parsed.AuthorisationValue != types.AuthorisationNotAuthorised {
		t.Fatalf("value = %v", parsed.AuthorisationValue)
	}
	if len(parsed.MeterLimits) != 0 {
		t.Fatal("no limits expected")
	}
}

func TestSetSessionEventReportRequestRoundTrip(t *testing.T) {
	req := &SetSessionEventReportRequest{
		Request:              testHeader(),
		ServiceSessionId:     "IOP-SESSION-1",
		ExecPartnerSessionId: "PS-77",
		Event: SessionEvent{
			Nature:    types.SessionEventSuspended,
			EventDate: eventDate(t, "2024-03-15T10:45:00.000Z"),
			Parameter: "cable unplugged",
		},
	}
	data, err := req.ToXML()
	if err != nil {
		t.Fatalf("ToXML: %v", err)
	}
	if !strings.Contains(string(data), "<sessionEventNature>2</sessionEventNature>") {
		t.Errorf("event nature must be numeric: %s", data)
	}
	parsed, ok := TryParseSetSessionEventReportRequest(data, nil)
	if !ok || !parsed.Equals(req) {
		t.Fatal("round trip mismatch")
	}
}

func TestSetSessionEventReportResponseCarriesEventId(t *testing.T) {
	body := []byte(`<eMIP_ToIOP_SetSessionEventReportResponse><transactionId>TX-5</transactionId><sessionEventId>EV-9</sessionEventId><requestStatus>1</requestStatus></eMIP_ToIOP_SetSessionEventReportResponse>`)
	parsed, ok := TryParseSetSessionEventReportResponse(nil, body, nil)
	if !ok {
		t.Fatal("TryParse failed")
	}
	if parsed.SessionEventId != "EV-9" {
		t.Fatalf("event id = %s", parsed.SessionEventId)
	}
}

func TestSetChargeDetailRecordRequestRoundTrip(t *testing.T) {
	req := &SetChargeDetailRecordRequest{
		Request: testHeader(),
		ChargeDetailRecord: ChargeDetailRecord{
			Nature:             types.CDRNatureFinal,
			ServiceSessionId:   "IOP-SESSION-1",
			RequestedServiceId: "1",
			EVSEId:             "DE*GEF*E1234*1",
			UserId:             "04AABBCCDD2280",
			StartTime:          eventDate(t, "2024-03-15T10:30:45.000Z"),
			EndTime:            eventDate(t, "2024-03-15T11:30:45.000Z"),
			MeterReports: []MeterReport{
				{Value: "3600", Unit: "s", Type: types.MeterTypeTotalDuration},
				{Value: "11000", Unit: "Wh", Type: types.MeterTypeTotalEnergy},
			},
		},
	}
	data, err := req.ToXML()
	if err != nil {
		t.Fatalf("ToXML: %v", err)
	}
	if !strings.Contains(string(data), "<cdrNature>1</cdrNature>") {
		t.Errorf("nature must be numeric: %s", data)
	}
	if !strings.Contains(string(data), "<meterReportList><meterReport>") {
		t.Errorf("meter reports must be nested in a list: %s", data)
	}
	parsed, ok := TryParseSetChargeDetailRecordRequest(data, nil)
	if !ok || !parsed.Equals(req) {
		t.Fatal("round trip mismatch")
	}
}

func TestSetChargeDetailRecordRequestMissingTimes(t *testing.T) {
	req := &SetChargeDetailRecordRequest{
		Request: testHeader(),
		ChargeDetailRecord: ChargeDetailRecord{
			Nature:           types.CDRNatureFinal,
			ServiceSessionId: "IOP-SESSION-1",
			EVSEId:           "DE*GEF*E1234*1",
			UserId:           "04AABBCCDD2280",
		},
	}
	data, _ := req.ToXML()
	var seen error
	if _, ok := TryParseSetChargeDetailRecordRequest(data, func(err error) { seen = err }); ok {
		t.Fatal("record without start time must not parse")
	}
	if seen == nil || !strings.Contains(seen.Error(), "startTime") {
		t.Fatalf("error = %v", seen)
	}
}

func TestAckResponseRejectsWrongElement(t *testing.T) {
	body := []byte(`<eMIP_ToIOP_SetEVSEBusyStatusResponse><transactionId>TX-1</transactionId><requestStatus>1</requestStatus></eMIP_ToIOP_SetEVSEBusyStatusResponse>`)
	var seen error
	if _, ok := TryParseSetEVSEAvailabilityStatusResponse(nil, body, func(err error) { seen = err }); ok {
		t.Fatal("wrong element must not parse")
	}
	if seen == nil || !strings.Contains(seen.Error(), "unexpected element") {
		t.Fatalf("error = %v", seen)
	}
}

func TestAckResponseDefaultsTransactionId(t *testing.T) {
	body := []byte(`<eMIP_ToIOP_SetEVSEAvailabilityStatusResponse><requestStatus>1</requestStatus></eMIP_ToIOP_SetEVSEAvailabilityStatusResponse>`)
	parsed, ok := TryParseSetEVSEAvailabilityStatusResponse(nil, body, nil)
	if !ok {
		t.Fatal("TryParse failed")
	}
	if parsed.TransactionId != types.TransactionIdZero {
		t.Fatalf("transaction id = %q, want zero sentinel", parsed.TransactionId)
	}
}

func TestAckResponseWarningStatusSurvives(t *testing.T) {
	body := []byte(`<eMIP_ToIOP_SetChargeDetailRecordResponse><transactionId>TX-8</transactionId><requestStatus>206</requestStatus></eMIP_ToIOP_SetChargeDetailRecordResponse>`)
	parsed, ok := TryParseSetChargeDetailRecordResponse(nil, body, nil)
	if !ok {
		t.Fatal("TryParse failed")
	}
	if parsed.RequestStatus != types.RequestStatusAcceptedQueued || !parsed.RequestStatus.IsWarning() {
		t.Fatalf("status = %v", parsed.RequestStatus)
	}
}

package cpo

import (
	"context"
	"emipcpo/emip"
	"emipcpo/soap"
	"emipcpo/types"
	"emipcpo/utility"
	"fmt"
	"log"
	"net/http"
	"time"
)

const Version = "0.9.1"

const (
	DefaultPort           = 443
	DefaultPath           = "/api/emip"
	DefaultRequestTimeout = 45 * time.Second
	DefaultMaxRetries     = 3
)

var DefaultUserAgent = "emipcpo/" + Version

type Options struct {
	// Endpoint is the full URL of the platform; when empty it is assembled
	// from Host, Port and Path.
	Endpoint string
	Host     string
	Port     int
	Path     string

	UserAgent  string
	PartnerId  types.PartnerId
	OperatorId types.OperatorId

	RequestTimeout time.Duration
	MaxRetries     int

	// AllowedPrefixes feeds the operation gate; empty allows everything.
	AllowedPrefixes []string
}

// Client issues one eMIP operation per method call. Hooks (Custom, gate,
// subscriptions) are startup configuration and are read without locking
// during calls.
//
// Send methods fill unset header fields (identity, timestamp, tracking id,
// timeout) on the caller's request in place, so the caller can read back the
// generated values after the call.
type Client struct {
	endpoint       string
	userAgent      string
	partnerId      types.PartnerId
	operatorId     types.OperatorId
	requestTimeout time.Duration
	maxRetries     int

	gate          GateFunc
	subscriptions []subscription

	Custom Customizer

	// OnException receives parse and serialization diagnostics. Defaults to
	// a console line.
	OnException func(operation string, err error)
}

func New(opts Options) *Client {
	endpoint := opts.Endpoint
	if endpoint == "" {
		port := opts.Port
		if port == 0 {
			port = DefaultPort
		}
		path := opts.Path
		if path == "" {
			path = DefaultPath
		}
		endpoint = fmt.Sprintf("https://%s:%d%s", opts.Host, port, path)
	}
	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	requestTimeout := opts.RequestTimeout
	if requestTimeout == 0 {
		requestTimeout = DefaultRequestTimeout
	}
	maxRetries := opts.MaxRetries
	if maxRetries < 0 {
		maxRetries = DefaultMaxRetries
	}
	return &Client{
		endpoint:       endpoint,
		userAgent:      userAgent,
		partnerId:      opts.PartnerId,
		operatorId:     opts.OperatorId,
		requestTimeout: requestTimeout,
		maxRetries:     maxRetries,
		gate:           AllowPrefixes(opts.AllowedPrefixes...),
	}
}

func (c *Client) Endpoint() string { return c.endpoint }

func (c *Client) MaxRetries() int { return c.maxRetries }

// prepare fills the cross-cutting request fields the caller left unset.
func (c *Client) prepare(r *emip.Request) {
	if r.PartnerId == "" {
		r.PartnerId = c.partnerId
	}
	if r.OperatorId == "" {
		r.OperatorId = c.operatorId
	}
	if r.Timestamp == nil {
		r.Timestamp = types.Now()
	}
	if r.EventTrackingId == "" {
		r.EventTrackingId = types.NewEventTrackingId()
	}
	if r.RequestTimeout == 0 {
		r.RequestTimeout = c.requestTimeout
	}
}

func (c *Client) exception(operation string, err error) {
	if c.OnException != nil {
		c.OnException(operation, err)
		return
	}
	log.Printf("%s: %v", operation, err)
}

// query runs the transport loop for one call: a fresh transport instance,
// retried only on the timeout classification, bounded by the retry maximum.
// Any other outcome ends the loop at once.
func (c *Client) query(ctx context.Context, body []byte, action string, timeout time.Duration) *soap.Result {
	transport := soap.New(c.endpoint, c.userAgent, timeout)
	var result *soap.Result
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		result = transport.Query(ctx, body, action)
		if result.Kind != soap.OutcomeTimeout {
			return result
		}
	}
	return result
}

// transportStatus maps every non-success transport outcome onto the uniform
// status taxonomy.
func (c *Client) transportStatus(result *soap.Result) types.RequestStatus {
	switch result.Kind {
	case soap.OutcomeSOAPFault:
		return types.RequestStatusDataError
	case soap.OutcomeHTTPError:
		switch result.HTTPStatus {
		case http.StatusServiceUnavailable, http.StatusUnauthorized, http.StatusForbidden, http.StatusNotFound:
			return types.RequestStatusHTTPError
		}
		return types.RequestStatusSystemError
	case soap.OutcomeException:
		return types.RequestStatusServiceNotAvailable
	}
	// timeout after exhausted retries, empty reply, anything else
	return types.RequestStatusSystemError
}

func (c *Client) requestEvent(operation string, request interface{}, header *emip.Request, entityId string) Event {
	return Event{
		Operation:       operation,
		Stage:           StageRequest,
		Timestamp:       time.Now().UTC(),
		EventTrackingId: header.EventTrackingId,
		PartnerId:       header.PartnerId,
		OperatorId:      header.OperatorId,
		EntityId:        entityId,
		TransactionId:   header.TransactionId,
		RequestTimeout:  header.RequestTimeout,
		Request:         request,
	}
}

func (e Event) toResponse(response interface{}, transactionId types.TransactionId, status types.RequestStatus, duration time.Duration, err error) Event {
	e.Stage = StageResponse
	e.Timestamp = time.Now().UTC()
	e.TransactionId = transactionId
	e.Response = response
	e.Status = status
	e.Duration = duration
	e.Err = err
	return e
}

// SendHeartbeat tells the platform this partner is alive and learns the
// period it should report with.
func (c *Client) SendHeartbeat(ctx context.Context, req *emip.HeartbeatRequest) (*emip.HeartbeatResponse, error) {
	const operation = emip.HeartbeatFeatureName
	if req == nil {
		return nil, utility.Err(operation + ": nil request")
	}
	if mapper := c.Custom.HeartbeatRequestMapper; mapper != nil {
		if req = mapper(req); req == nil {
			return nil, utility.Err(operation + ": request mapper returned nil")
		}
	}
	c.prepare(&req.Request)
	started := time.Now()
	event := c.requestEvent(operation, req, &req.Request, "")
	c.publish(event)

	failed := func(status types.RequestStatus) *emip.HeartbeatResponse {
		return (&emip.HeartbeatResponseBuilder{
			Request:       req,
			TransactionId: req.TransactionId,
			RequestStatus: status,
		}).Build()
	}

	var resp *emip.HeartbeatResponse
	var callErr error
	body, err := req.ToXML(c.Custom.HeartbeatSerializer)
	if err != nil {
		c.exception(operation, err)
		resp = failed(types.RequestStatusSystemError)
		callErr = err
	} else {
		result := c.query(ctx, body, emip.HeartbeatAction, req.RequestTimeout)
		if result.Kind == soap.OutcomeSuccess {
			parsed, ok := emip.TryParseHeartbeatResponse(req, result.Body, func(err error) {
				c.exception(operation, err)
			}, c.Custom.HeartbeatResponseParser)
			if ok {
				resp = parsed
			} else {
				resp = failed(types.RequestStatusDataError)
			}
		} else {
			resp = failed(c.transportStatus(result))
			callErr = result.Err
		}
	}
	c.publish(event.toResponse(resp, resp.TransactionId, resp.RequestStatus, time.Since(started), callErr))
	return resp, callErr
}

func (c *Client) SetChargingPoolAvailabilityStatus(ctx context.Context, req *emip.SetChargingPoolAvailabilityStatusRequest) (*emip.SetChargingPoolAvailabilityStatusResponse, error) {
	const operation = emip.SetChargingPoolAvailabilityStatusFeatureName
	if req == nil {
		return nil, utility.Err(operation + ": nil request")
	}
	if mapper := c.Custom.SetChargingPoolAvailabilityStatusRequestMapper; mapper != nil {
		if req = mapper(req); req == nil {
			return nil, utility.Err(operation + ": request mapper returned nil")
		}
	}
	c.prepare(&req.Request)
	started := time.Now()
	event := c.requestEvent(operation, req, &req.Request, req.ChargingPoolId.String())
	c.publish(event)

	failed := func(status types.RequestStatus) *emip.SetChargingPoolAvailabilityStatusResponse {
		return (&emip.SetChargingPoolAvailabilityStatusResponseBuilder{
			Request:       req,
			TransactionId: req.TransactionId,
			RequestStatus: status,
		}).Build()
	}

	var resp *emip.SetChargingPoolAvailabilityStatusResponse
	var callErr error
	if !c.gate(req.ChargingPoolId.String()) {
		resp = failed(types.RequestStatusServiceNotAvailable)
	} else if body, err := req.ToXML(c.Custom.SetChargingPoolAvailabilityStatusSerializer); err != nil {
		c.exception(operation, err)
		resp = failed(types.RequestStatusSystemError)
		callErr = err
	} else {
		result := c.query(ctx, body, emip.SetChargingPoolAvailabilityStatusAction, req.RequestTimeout)
		if result.Kind == soap.OutcomeSuccess {
			parsed, ok := emip.TryParseSetChargingPoolAvailabilityStatusResponse(req, result.Body, func(err error) {
				c.exception(operation, err)
			}, c.Custom.SetChargingPoolAvailabilityStatusResponseParser)
			if ok {
				resp = parsed
			} else {
				resp = failed(types.RequestStatusDataError)
			}
		} else {
			resp = failed(c.transportStatus(result))
			callErr = result.Err
		}
	}
	c.publish(event.toResponse(resp, resp.TransactionId, resp.RequestStatus, time.Since(started), callErr))
	return resp, callErr
}

func (c *Client) SetChargingStationAvailabilityStatus(ctx context.Context, req *emip.SetChargingStationAvailabilityStatusRequest) (*emip.SetChargingStationAvailabilityStatusResponse, error) {
	const operation = emip.SetChargingStationAvailabilityStatusFeatureName
	if req == nil {
		return nil, utility.Err(operation + ": nil request")
	}
	if mapper := c.Custom.SetChargingStationAvailabilityStatusRequestMapper; mapper != nil {
		if req = mapper(req); req == nil {
			return nil, utility.Err(operation + ": request mapper returned nil")
		}
	}
	c.prepare(&req.Request)
	started := time.Now()
	event := c.requestEvent(operation, req, &req.Request, req.ChargingStationId.String())
	c.publish(event)

	failed := func(status types.RequestStatus) *emip.SetChargingStationAvailabilityStatusResponse {
		return (&emip.SetChargingStationAvailabilityStatusResponseBuilder{
			Request:       req,
			TransactionId: req.TransactionId,
			RequestStatus: status,
		}).Build()
	}

	var resp *emip.SetChargingStationAvailabilityStatusResponse
	var callErr error
	if !c.gate(req.ChargingStationId.String()) {
		resp = failed(types.RequestStatusServiceNotAvailable)
	} else if body, err := req.ToXML(c.Custom.SetChargingStationAvailabilityStatusSerializer); err != nil {
		c.exception(operation, err)
		resp = failed(types.RequestStatusSystemError)
		callErr = err
	} else {
		result := c.query(ctx, body, emip.SetChargingStationAvailabilityStatusAction, req.RequestTimeout)
		if result.Kind == soap.OutcomeSuccess {
			parsed, ok := emip.TryParseSetChargingStationAvailabilityStatusResponse(req, result.Body, func(err error) {
				c.exception(operation, err)
			}, c.Custom.SetChargingStationAvailabilityStatusResponseParser)
			if ok {
				resp = parsed
			} else {
				resp = failed(types.RequestStatusDataError)
			}
		} else {
			resp = failed(c.transportStatus(result))
			callErr = result.Err
		}
	}
	c.publish(event.toResponse(resp, resp.TransactionId, resp.RequestStatus, time.Since(started), callErr))
	return resp, callErr
}

func (c *Client) SetEVSEAvailabilityStatus(ctx context.Context, req *emip.SetEVSEAvailabilityStatusRequest) (*emip.SetEVSEAvailabilityStatusResponse, error) {
	const operation = emip.SetEVSEAvailabilityStatusFeatureName
	if req == nil {
		return nil, utility.Err(operation + ": nil request")
	}
	if mapper := c.Custom.SetEVSEAvailabilityStatusRequestMapper; mapper != nil {
		if req = mapper(req); req == nil {
			return nil, utility.Err(operation + ": request mapper returned nil")
		}
	}
	c.prepare(&req.Request)
	started := time.Now()
	event := c.requestEvent(operation, req, &req.Request, req.EVSEId.String())
	c.publish(event)

	failed := func(status types.RequestStatus) *emip.SetEVSEAvailabilityStatusResponse {
		return (&emip.SetEVSEAvailabilityStatusResponseBuilder{
			Request:       req,
			TransactionId: req.TransactionId,
			RequestStatus: status,
		}).Build()
	}

	var resp *emip.SetEVSEAvailabilityStatusResponse
	var callErr error
	if !c.gate(req.EVSEId.String()) {
		resp = failed(types.RequestStatusServiceNotAvailable)
	} else if body, err := req.ToXML(c.Custom.SetEVSEAvailabilityStatusSerializer); err != nil {
		c.exception(operation, err)
		resp = failed(types.RequestStatusSystemError)
		callErr = err
	} else {
		result := c.query(ctx, body, emip.SetEVSEAvailabilityStatusAction, req.RequestTimeout)
		if result.Kind == soap.OutcomeSuccess {
			parsed, ok := emip.TryParseSetEVSEAvailabilityStatusResponse(req, result.Body, func(err error) {
				c.exception(operation, err)
			}, c.Custom.SetEVSEAvailabilityStatusResponseParser)
			if ok {
				resp = parsed
			} else {
				resp = failed(types.RequestStatusDataError)
			}
		} else {
			resp = failed(c.transportStatus(result))
			callErr = result.Err
		}
	}
	c.publish(event.toResponse(resp, resp.TransactionId, resp.RequestStatus, time.Since(started), callErr))
	return resp, callErr
}

func (c *Client) SetChargingConnectorAvailabilityStatus(ctx context.Context, req *emip.SetChargingConnectorAvailabilityStatusRequest) (*emip.SetChargingConnectorAvailabilityStatusResponse, error) {
	const operation = emip.SetChargingConnectorAvailabilityStatusFeatureName
	if req == nil {
		return nil, utility.Err(operation + ": nil request")
	}
	if mapper := c.Custom.SetChargingConnectorAvailabilityStatusRequestMapper; mapper != nil {
		if req = mapper(req); req == nil {
			return nil, utility.Err(operation + ": request mapper returned nil")
		}
	}
	c.prepare(&req.Request)
	started := time.Now()
	event := c.requestEvent(operation, req, &req.Request, req.ChargingConnectorId.String())
	c.publish(event)

	failed := func(status types.RequestStatus) *emip.SetChargingConnectorAvailabilityStatusResponse {
		return (&emip.SetChargingConnectorAvailabilityStatusResponseBuilder{
			Request:       req,
			TransactionId: req.TransactionId,
			RequestStatus: status,
		}).Build()
	}

	var resp *emip.SetChargingConnectorAvailabilityStatusResponse
	var callErr error
	if !c.gate(req.ChargingConnectorId.String()) {
		resp = failed(types.RequestStatusServiceNotAvailable)
	} else if body, err := req.ToXML(c.Custom.SetChargingConnectorAvailabilityStatusSerializer); err != nil {
		c.exception(operation, err)
		resp = failed(types.RequestStatusSystemError)
		callErr = err
	} else {
		result := c.query(ctx, body, emip.SetChargingConnectorAvailabilityStatusAction, req.RequestTimeout)
		if result.Kind == soap.OutcomeSuccess {
			parsed, ok := emip.TryParseSetChargingConnectorAvailabilityStatusResponse(req, result.Body, func(err error) {
				c.exception(operation, err)
			}, c.Custom.SetChargingConnectorAvailabilityStatusResponseParser)
			if ok {
				resp = parsed
			} else {
				resp = failed(types.RequestStatusDataError)
			}
		} else {
			resp = failed(c.transportStatus(result))
			callErr = result.Err
		}
	}
	c.publish(event.toResponse(resp, resp.TransactionId, resp.RequestStatus, time.Since(started), callErr))
	return resp, callErr
}

func (c *Client) SetEVSEBusyStatus(ctx context.Context, req *emip.SetEVSEBusyStatusRequest) (*emip.SetEVSEBusyStatusResponse, error) {
	const operation = emip.SetEVSEBusyStatusFeatureName
	if req == nil {
		return nil, utility.Err(operation + ": nil request")
	}
	if mapper := c.Custom.SetEVSEBusyStatusRequestMapper; mapper != nil {
		if req = mapper(req); req == nil {
			return nil, utility.Err(operation + ": request mapper returned nil")
		}
	}
	c.prepare(&req.Request)
	started := time.Now()
	event := c.requestEvent(operation, req, &req.Request, req.EVSEId.String())
	c.publish(event)

	failed := func(status types.RequestStatus) *emip.SetEVSEBusyStatusResponse {
		return (&emip.SetEVSEBusyStatusResponseBuilder{
			Request:       req,
			TransactionId: req.TransactionId,
			RequestStatus: status,
		}).Build()
	}

	var resp *emip.SetEVSEBusyStatusResponse
	var callErr error
	if !c.gate(req.EVSEId.String()) {
		resp = failed(types.RequestStatusServiceNotAvailable)
	} else if body, err := req.ToXML(c.Custom.SetEVSEBusyStatusSerializer); err != nil {
		c.exception(operation, err)
		resp = failed(types.RequestStatusSystemError)
		callErr = err
	} else {
		result := c.query(ctx, body, emip.SetEVSEBusyStatusAction, req.RequestTimeout)
		if result.Kind == soap.OutcomeSuccess {
			parsed, ok := emip.TryParseSetEVSEBusyStatusResponse(req, result.Body, func(err error) {
				c.exception(operation, err)
			}, c.Custom.SetEVSEBusyStatusResponseParser)
			if ok {
				resp = parsed
			} else {
				resp = failed(types.RequestStatusDataError)
			}
		} else {
			resp = failed(c.transportStatus(result))
			callErr = result.Err
		}
	}
	c.publish(event.toResponse(resp, resp.TransactionId, resp.RequestStatus, time.Since(started), callErr))
	return resp, callErr
}

func (c *Client) SetEVSESyntheticStatus(ctx context.Context, req *emip.SetEVSESyntheticStatusRequest) (*emip.SetEVSESyntheticStatusResponse, error) {
	const operation = emip.SetEVSESyntheticStatusFeatureName
	if req == nil {
		return nil, utility.Err(operation + ": nil request")
	}
	if mapper := c.Custom.SetEVSESyntheticStatusRequestMapper; mapper != nil {
		if req = mapper(req); req == nil {
			return nil, utility.Err(operation + ": request mapper returned nil")
		}
	}
	c.prepare(&req.Request)
	started := time.Now()
	event := c.requestEvent(operation, req, &req.Request, req.EVSEId.String())
	c.publish(event)

	failed := func(status types.RequestStatus) *emip.SetEVSESyntheticStatusResponse {
		return (&emip.SetEVSESyntheticStatusResponseBuilder{
			Request:       req,
			TransactionId: req.TransactionId,
			RequestStatus: status,
		}).Build()
	}

	var resp *emip.SetEVSESyntheticStatusResponse
	var callErr error
	if !c.gate(req.EVSEId.String()) {
		resp = failed(types.RequestStatusServiceNotAvailable)
	} else if body, err := req.ToXML(c.Custom.SetEVSESyntheticStatusSerializer); err != nil {
		c.exception(operation, err)
		resp = failed(types.RequestStatusSystemError)
		callErr = err
	} else {
		result := c.query(ctx, body, emip.SetEVSESyntheticStatusAction, req.RequestTimeout)
		if result.Kind == soap.OutcomeSuccess {
			parsed, ok := emip.TryParseSetEVSESyntheticStatusResponse(req, result.Body, func(err error) {
				c.exception(operation, err)
			}, c.Custom.SetEVSESyntheticStatusResponseParser)
			if ok {
				resp = parsed
			} else {
				resp = failed(types.RequestStatusDataError)
			}
		} else {
			resp = failed(c.transportStatus(result))
			callErr = result.Err
		}
	}
	c.publish(event.toResponse(resp, resp.TransactionId, resp.RequestStatus, time.Since(started), callErr))
	return resp, callErr
}

func (c *Client) GetServiceAuthorisation(ctx context.Context, req *emip.GetServiceAuthorisationRequest) (*emip.GetServiceAuthorisationResponse, error) {
	const operation = emip.GetServiceAuthorisationFeatureName
	if req == nil {
		return nil, utility.Err(operation + ": nil request")
	}
	if mapper := c.Custom.GetServiceAuthorisationRequestMapper; mapper != nil {
		if req = mapper(req); req == nil {
			return nil, utility.Err(operation + ": request mapper returned nil")
		}
	}
	c.prepare(&req.Request)
	started := time.Now()
	event := c.requestEvent(operation, req, &req.Request, req.EVSEId.String())
	c.publish(event)

	failed := func(status types.RequestStatus) *emip.GetServiceAuthorisationResponse {
		return (&emip.GetServiceAuthorisationResponseBuilder{
			Request:       req,
			TransactionId: req.TransactionId,
			RequestStatus: status,
		}).Build()
	}

	var resp *emip.GetServiceAuthorisationResponse
	var callErr error
	if !c.gate(req.EVSEId.String()) {
		resp = failed(types.RequestStatusServiceNotAvailable)
	} else if body, err := req.ToXML(c.Custom.GetServiceAuthorisationSerializer); err != nil {
		c.exception(operation, err)
		resp = failed(types.RequestStatusSystemError)
		callErr = err
	} else {
		result := c.query(ctx, body, emip.GetServiceAuthorisationAction, req.RequestTimeout)
		if result.Kind == soap.OutcomeSuccess {
			parsed, ok := emip.TryParseGetServiceAuthorisationResponse(req, result.Body, func(err error) {
				c.exception(operation, err)
			}, c.Custom.GetServiceAuthorisationResponseParser)
			if ok {
				resp = parsed
			} else {
				resp = failed(types.RequestStatusDataError)
			}
		} else {
			resp = failed(c.transportStatus(result))
			callErr = result.Err
		}
	}
	c.publish(event.toResponse(resp, resp.TransactionId, resp.RequestStatus, time.Since(started), callErr))
	return resp, callErr
}

func (c *Client) SetSessionEventReport(ctx context.Context, req *emip.SetSessionEventReportRequest) (*emip.SetSessionEventReportResponse, error) {
	const operation = emip.SetSessionEventReportFeatureName
	if req == nil {
		return nil, utility.Err(operation + ": nil request")
	}
	if mapper := c.Custom.SetSessionEventReportRequestMapper; mapper != nil {
		if req = mapper(req); req == nil {
			return nil, utility.Err(operation + ": request mapper returned nil")
		}
	}
	c.prepare(&req.Request)
	started := time.Now()
	event := c.requestEvent(operation, req, &req.Request, req.ServiceSessionId.String())
	c.publish(event)

	failed := func(status types.RequestStatus) *emip.SetSessionEventReportResponse {
		return (&emip.SetSessionEventReportResponseBuilder{
			Request:       req,
			TransactionId: req.TransactionId,
			RequestStatus: status,
		}).Build()
	}

	var resp *emip.SetSessionEventReportResponse
	var callErr error
	if body, err := req.ToXML(c.Custom.SetSessionEventReportSerializer); err != nil {
		c.exception(operation, err)
		resp = failed(types.RequestStatusSystemError)
		callErr = err
	} else {
		result := c.query(ctx, body, emip.SetSessionEventReportAction, req.RequestTimeout)
		if result.Kind == soap.OutcomeSuccess {
			parsed, ok := emip.TryParseSetSessionEventReportResponse(req, result.Body, func(err error) {
				c.exception(operation, err)
			}, c.Custom.SetSessionEventReportResponseParser)
			if ok {
				resp = parsed
			} else {
				resp = failed(types.RequestStatusDataError)
			}
		} else {
			resp = failed(c.transportStatus(result))
			callErr = result.Err
		}
	}
	c.publish(event.toResponse(resp, resp.TransactionId, resp.RequestStatus, time.Since(started), callErr))
	return resp, callErr
}

func (c *Client) SetChargeDetailRecord(ctx context.Context, req *emip.SetChargeDetailRecordRequest) (*emip.SetChargeDetailRecordResponse, error) {
	const operation = emip.SetChargeDetailRecordFeatureName
	if req == nil {
		return nil, utility.Err(operation + ": nil request")
	}
	if mapper := c.Custom.SetChargeDetailRecordRequestMapper; mapper != nil {
		if req = mapper(req); req == nil {
			return nil, utility.Err(operation + ": request mapper returned nil")
		}
	}
	c.prepare(&req.Request)
	started := time.Now()
	event := c.requestEvent(operation, req, &req.Request, req.ChargeDetailRecord.EVSEId.String())
	c.publish(event)

	failed := func(status types.RequestStatus) *emip.SetChargeDetailRecordResponse {
		return (&emip.SetChargeDetailRecordResponseBuilder{
			Request:       req,
			TransactionId: req.TransactionId,
			RequestStatus: status,
		}).Build()
	}

	var resp *emip.SetChargeDetailRecordResponse
	var callErr error
	if !c.gate(req.ChargeDetailRecord.EVSEId.String()) {
		resp = failed(types.RequestStatusServiceNotAvailable)
	} else if body, err := req.ToXML(c.Custom.SetChargeDetailRecordSerializer); err != nil {
		c.exception(operation, err)
		resp = failed(types.RequestStatusSystemError)
		callErr = err
	} else {
		result := c.query(ctx, body, emip.SetChargeDetailRecordAction, req.RequestTimeout)
		if result.Kind == soap.OutcomeSuccess {
			parsed, ok := emip.TryParseSetChargeDetailRecordResponse(req, result.Body, func(err error) {
				c.exception(operation, err)
			}, c.Custom.SetChargeDetailRecordResponseParser)
			if ok {
				resp = parsed
			} else {
				resp = failed(types.RequestStatusDataError)
			}
		} else {
			resp = failed(c.transportStatus(result))
			callErr = result.Err
		}
	}
	c.publish(event.toResponse(resp, resp.TransactionId, resp.RequestStatus, time.Since(started), callErr))
	return resp, callErr
}

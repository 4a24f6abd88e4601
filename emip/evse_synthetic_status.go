package emip

import (
	"emipcpo/types"
	"encoding/xml"
	"strconv"
)

const SetEVSESyntheticStatusFeatureName = "SetEVSESyntheticStatus"

var SetEVSESyntheticStatusAction = SOAPAction("SetEVSESyntheticStatus")

// SetEVSESyntheticStatusRequest combines availability and busy state in a
// single report. Both parts are optional; an absent part leaves the platform
// state untouched.
type SetEVSESyntheticStatusRequest struct {
	Request
	EVSEId                      types.EVSEId
	AvailabilityStatusEventDate *types.DateTime
	AvailabilityStatus          *types.EVSEAvailabilityStatus
	BusyStatusEventDate         *types.DateTime
	BusyStatus                  *types.EVSEBusyStatus
}

func (r *SetEVSESyntheticStatusRequest) GetFeatureName() string {
	return SetEVSESyntheticStatusFeatureName
}

type setEVSESyntheticStatusRequestXML struct {
	XMLName xml.Name `xml:"eMIP_ToIOP_SetEVSESyntheticStatusRequest"`
	NS      string   `xml:"xmlns,attr"`
	requestHeaderXML
	EVSEId                      string          `xml:"EVSEId"`
	AvailabilityStatusEventDate *types.DateTime `xml:"availabilityStatusEventDate,omitempty"`
	AvailabilityStatus          *string         `xml:"availabilityStatus,omitempty"`
	BusyStatusEventDate         *types.DateTime `xml:"busyStatusEventDate,omitempty"`
	BusyStatus                  *string         `xml:"busyStatus,omitempty"`
}

func (r *SetEVSESyntheticStatusRequest) ToXML(custom ...Serializer) ([]byte, error) {
	wire := setEVSESyntheticStatusRequestXML{
		NS:                          EVCIDynamicNS,
		requestHeaderXML:            r.headerXML(),
		EVSEId:                      r.EVSEId.String(),
		AvailabilityStatusEventDate: r.AvailabilityStatusEventDate,
		BusyStatusEventDate:         r.BusyStatusEventDate,
	}
	if r.AvailabilityStatus != nil {
		status := strconv.Itoa(r.AvailabilityStatus.Number())
		wire.AvailabilityStatus = &status
	}
	if r.BusyStatus != nil {
		status := strconv.Itoa(r.BusyStatus.Number())
		wire.BusyStatus = &status
	}
	data, err := xml.Marshal(wire)
	if err != nil {
		return nil, err
	}
	return applySerializers(data, custom)
}

func ParseSetEVSESyntheticStatusRequest(data []byte) (*SetEVSESyntheticStatusRequest, error) {
	var wire setEVSESyntheticStatusRequestXML
	if err := xml.Unmarshal(data, &wire); err != nil {
		return nil, err
	}
	if err := wire.validate(SetEVSESyntheticStatusFeatureName); err != nil {
		return nil, err
	}
	if wire.EVSEId == "" {
		return nil, missingElement(SetEVSESyntheticStatusFeatureName, "EVSEId")
	}
	req := &SetEVSESyntheticStatusRequest{
		Request:                     wire.toRequest(),
		EVSEId:                      types.EVSEId(wire.EVSEId),
		AvailabilityStatusEventDate: wire.AvailabilityStatusEventDate,
		BusyStatusEventDate:         wire.BusyStatusEventDate,
	}
	if wire.AvailabilityStatus != nil {
		status := types.EVSEAvailabilityStatusFrom(*wire.AvailabilityStatus)
		req.AvailabilityStatus = &status
	}
	if wire.BusyStatus != nil {
		status := types.EVSEBusyStatusFrom(*wire.BusyStatus)
		req.BusyStatus = &status
	}
	return req, nil
}

func TryParseSetEVSESyntheticStatusRequest(data []byte, onError func(error)) (*SetEVSESyntheticStatusRequest, bool) {
	return tryParse(onError, func() (*SetEVSESyntheticStatusRequest, error) {
		return ParseSetEVSESyntheticStatusRequest(data)
	})
}

func (r *SetEVSESyntheticStatusRequest) Equals(other *SetEVSESyntheticStatusRequest) bool {
	if r == nil || other == nil {
		return r == other
	}
	availabilityEqual := (r.AvailabilityStatus == nil) == (other.AvailabilityStatus == nil) &&
		(r.AvailabilityStatus == nil || *r.AvailabilityStatus == *other.AvailabilityStatus)
	busyEqual := (r.BusyStatus == nil) == (other.BusyStatus == nil) &&
		(r.BusyStatus == nil || *r.BusyStatus == *other.BusyStatus)
	return r.headerEquals(&other.Request) &&
		r.EVSEId == other.EVSEId &&
		r.AvailabilityStatusEventDate.Equals(other.AvailabilityStatusEventDate) &&
		availabilityEqual &&
		r.BusyStatusEventDate.Equals(other.BusyStatusEventDate) &&
		busyEqual
}

type SetEVSESyntheticStatusResponse struct {
	Request       *SetEVSESyntheticStatusRequest
	TransactionId types.TransactionId
	RequestStatus types.RequestStatus
}

func (r *SetEVSESyntheticStatusResponse) GetFeatureName() string {
	return SetEVSESyntheticStatusFeatureName
}

const setEVSESyntheticStatusResponseElement = "eMIP_ToIOP_SetEVSESyntheticStatusResponse"

type SetEVSESyntheticStatusResponseParser func(*SetEVSESyntheticStatusResponse) (*SetEVSESyntheticStatusResponse, error)

func ParseSetEVSESyntheticStatusResponse(req *SetEVSESyntheticStatusRequest, data []byte, custom ...SetEVSESyntheticStatusResponseParser) (*SetEVSESyntheticStatusResponse, error) {
	transactionId, status, err := parseAckResponse(SetEVSESyntheticStatusFeatureName, setEVSESyntheticStatusResponseElement, data)
	if err != nil {
		return nil, err
	}
	resp := &SetEVSESyntheticStatusResponse{
		Request:       req,
		TransactionId: transactionId,
		RequestStatus: status,
	}
	for _, parse := range custom {
		if parse == nil {
			continue
		}
		next, err := parse(resp)
		if err != nil {
			return nil, err
		}
		if next != nil {
			resp = next
		}
	}
	return resp, nil
}

func TryParseSetEVSESyntheticStatusResponse(req *SetEVSESyntheticStatusRequest, data []byte, onError func(error), custom ...SetEVSESyntheticStatusResponseParser) (*SetEVSESyntheticStatusResponse, bool) {
	return tryParse(onError, func() (*SetEVSESyntheticStatusResponse, error) {
		return ParseSetEVSESyntheticStatusResponse(req, data, custom...)
	})
}

func (r *SetEVSESyntheticStatusResponse) ToXML(custom ...Serializer) ([]byte, error) {
	data, err := marshalAckResponse(setEVSESyntheticStatusResponseElement, EVCIDynamicNS, r.TransactionId, r.RequestStatus)
	if err != nil {
		return nil, err
	}
	return applySerializers(data, custom)
}

func (r *SetEVSESyntheticStatusResponse) Equals(other *SetEVSESyntheticStatusResponse) bool {
	if r == nil || other == nil {
		return r == other
	}
	return r.TransactionId == other.TransactionId && r.RequestStatus == other.RequestStatus
}

type SetEVSESyntheticStatusResponseBuilder struct {
	Request       *SetEVSESyntheticStatusRequest
	TransactionId types.TransactionId
	RequestStatus types.RequestStatus
}

func (r *SetEVSESyntheticStatusResponse) ToBuilder() *SetEVSESyntheticStatusResponseBuilder {
	return &SetEVSESyntheticStatusResponseBuilder{
		Request:       r.Request,
		TransactionId: r.TransactionId,
		RequestStatus: r.RequestStatus,
	}
}

func (b *SetEVSESyntheticStatusResponseBuilder) Build() *SetEVSESyntheticStatusResponse {
	return &SetEVSESyntheticStatusResponse{
		Request:       b.Request,
		TransactionId: b.TransactionId.OrZero(),
		RequestStatus: b.RequestStatus,
	}
}

func (b *SetEVSESyntheticStatusResponseBuilder) Equals(other *SetEVSESyntheticStatusResponseBuilder) bool {
	if b == nil || other == nil {
		return b == other
	}
	return b.Build().Equals(other.Build())
}

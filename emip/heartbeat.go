package emip

import (
	"emipcpo/types"
	"encoding/xml"
	"fmt"
	"strconv"
	"time"
)

const HeartbeatFeatureName = "Heartbeat"

// The platform spells the wire name HeartBeat.
var HeartbeatAction = SOAPAction("HeartBeat")

// HeartbeatRequest keeps the connection between partner and platform alive
// and carries no payload beyond the shared header.
type HeartbeatRequest struct {
	Request
}

func (r *HeartbeatRequest) GetFeatureName() string { return HeartbeatFeatureName }

type heartbeatRequestXML struct {
	XMLName xml.Name `xml:"eMIP_ToIOP_HeartBeatRequest"`
	NS      string   `xml:"xmlns,attr"`
	requestHeaderXML
}

func (r *HeartbeatRequest) ToXML(custom ...Serializer) ([]byte, error) {
	data, err := xml.Marshal(heartbeatRequestXML{
		NS:               PlatformNS,
		requestHeaderXML: r.headerXML(),
	})
	if err != nil {
		return nil, err
	}
	return applySerializers(data, custom)
}

func ParseHeartbeatRequest(data []byte) (*HeartbeatRequest, error) {
	var wire heartbeatRequestXML
	if err := xml.Unmarshal(data, &wire); err != nil {
		return nil, err
	}
	if err := wire.validate(HeartbeatFeatureName); err != nil {
		return nil, err
	}
	return &HeartbeatRequest{Request: wire.toRequest()}, nil
}

func TryParseHeartbeatRequest(data []byte, onError func(error)) (*HeartbeatRequest, bool) {
	return tryParse(onError, func() (*HeartbeatRequest, error) {
		return ParseHeartbeatRequest(data)
	})
}

func (r *HeartbeatRequest) Equals(other *HeartbeatRequest) bool {
	if r == nil || other == nil {
		return r == other
	}
	return r.headerEquals(&other.Request)
}

type HeartbeatResponse struct {
	Request         *HeartbeatRequest
	TransactionId   types.TransactionId
	RequestStatus   types.RequestStatus
	HeartbeatPeriod time.Duration
	CurrentTime     *types.DateTime
}

func (r *HeartbeatResponse) GetFeatureName() string { return HeartbeatFeatureName }

type heartbeatResponseXML struct {
	XMLName         xml.Name `xml:"eMIP_ToIOP_HeartBeatResponse"`
	HeartbeatPeriod *int     `xml:"heartBeatPeriod"`
	CurrentTime     *string  `xml:"currentTime"`
	TransactionId   *string  `xml:"transactionId"`
	RequestStatus   *string  `xml:"requestStatus"`
}

// HeartbeatResponseParser may override the structurally parsed response.
type HeartbeatResponseParser func(*HeartbeatResponse) (*HeartbeatResponse, error)

func ParseHeartbeatResponse(req *HeartbeatRequest, data []byte, custom ...HeartbeatResponseParser) (*HeartbeatResponse, error) {
	var wire heartbeatResponseXML
	if err := xml.Unmarshal(data, &wire); err != nil {
		return nil, err
	}
	if wire.HeartbeatPeriod == nil {
		return nil, missingElement(HeartbeatFeatureName, "heartBeatPeriod")
	}
	if wire.CurrentTime == nil {
		return nil, missingElement(HeartbeatFeatureName, "currentTime")
	}
	if wire.RequestStatus == nil {
		return nil, missingElement(HeartbeatFeatureName, "requestStatus")
	}
	currentTime, err := types.ParseDateTime(*wire.CurrentTime)
	if err != nil {
		return nil, fmt.Errorf("%s: parsing currentTime: %w", HeartbeatFeatureName, err)
	}
	resp := &HeartbeatResponse{
		Request:         req,
		TransactionId:   transactionIdOrZero(wire.TransactionId),
		RequestStatus:   types.RequestStatusFrom(*wire.RequestStatus),
		HeartbeatPeriod: time.Duration(*wire.HeartbeatPeriod) * time.Second,
		CurrentTime:     currentTime,
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

func TryParseHeartbeatResponse(req *HeartbeatRequest, data []byte, onError func(error), custom ...HeartbeatResponseParser) (*HeartbeatResponse, bool) {
	return tryParse(onError, func() (*HeartbeatResponse, error) {
		return ParseHeartbeatResponse(req, data, custom...)
	})
}

type heartbeatResponseOutXML struct {
	XMLName         xml.Name `xml:"eMIP_ToIOP_HeartBeatResponse"`
	NS              string   `xml:"xmlns,attr"`
	HeartbeatPeriod int      `xml:"heartBeatPeriod"`
	CurrentTime     string   `xml:"currentTime"`
	TransactionId   string   `xml:"transactionId"`
	RequestStatus   string   `xml:"requestStatus"`
}

func (r *HeartbeatResponse) ToXML(custom ...Serializer) ([]byte, error) {
	currentTime := ""
	if r.CurrentTime != nil {
		currentTime = r.CurrentTime.FormatWire()
	}
	data, err := xml.Marshal(heartbeatResponseOutXML{
		NS:              PlatformNS,
		HeartbeatPeriod: int(r.HeartbeatPeriod / time.Second),
		CurrentTime:     currentTime,
		TransactionId:   r.TransactionId.OrZero().String(),
		RequestStatus:   strconv.Itoa(r.RequestStatus.Code()),
	})
	if err != nil {
		return nil, err
	}
	return applySerializers(data, custom)
}

func (r *HeartbeatResponse) Equals(other *HeartbeatResponse) bool {
	if r == nil || other == nil {
		return r == other
	}
	return r.TransactionId == other.TransactionId &&
		r.RequestStatus == other.RequestStatus &&
		r.HeartbeatPeriod == other.HeartbeatPeriod &&
		r.CurrentTime.Equals(other.CurrentTime)
}

// HeartbeatResponseBuilder stages a response for incremental construction.
type HeartbeatResponseBuilder struct {
	Request         *HeartbeatRequest
	TransactionId   types.TransactionId
	RequestStatus   types.RequestStatus
	HeartbeatPeriod time.Duration
	CurrentTime     *types.DateTime
}

func (r *HeartbeatResponse) ToBuilder() *HeartbeatResponseBuilder {
	return &HeartbeatResponseBuilder{
		Request:         r.Request,
		TransactionId:   r.TransactionId,
		RequestStatus:   r.RequestStatus,
		HeartbeatPeriod: r.HeartbeatPeriod,
		CurrentTime:     r.CurrentTime,
	}
}

func (b *HeartbeatResponseBuilder) Build() *HeartbeatResponse {
	return &HeartbeatResponse{
		Request:         b.Request,
		TransactionId:   b.TransactionId.OrZero(),
		RequestStatus:   b.RequestStatus,
		HeartbeatPeriod: b.HeartbeatPeriod,
		CurrentTime:     b.CurrentTime,
	}
}

func (b *HeartbeatResponseBuilder) Equals(other *HeartbeatResponseBuilder) bool {
	if b == nil || other == nil {
		return b == other
	}
	return b.Build().Equals(other.Build())
}

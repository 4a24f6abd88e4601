package emip

import (
	"emipcpo/types"
	"encoding/xml"
	"strconv"
)

const SetChargingPoolAvailabilityStatusFeatureName = "SetChargingPoolAvailabilityStatus"

var SetChargingPoolAvailabilityStatusAction = SOAPAction("SetChargingPoolAvailabilityStatus")

// SetChargingPoolAvailabilityStatusRequest reports availability for a whole
// charging pool.
type SetChargingPoolAvailabilityStatusRequest struct {
	Request
	ChargingPoolId          types.ChargingPoolId
	StatusEventDate         *types.DateTime
	AvailabilityStatus      types.ChargingPoolAvailabilityStatus
	AvailabilityStatusUntil *types.DateTime
	Comment                 string
}

func (r *SetChargingPoolAvailabilityStatusRequest) GetFeatureName() string {
	return SetChargingPoolAvailabilityStatusFeatureName
}

type setChargingPoolAvailabilityStatusRequestXML struct {
	XMLName xml.Name `xml:"eMIP_ToIOP_SetChargingPoolAvailabilityStatusRequest"`
	NS      string   `xml:"xmlns,attr"`
	requestHeaderXML
	ChargingPoolId          string          `xml:"ChargingPoolId"`
	StatusEventDate         *types.DateTime `xml:"statusEventDate"`
	AvailabilityStatus      *string         `xml:"availabilityStatus"`
	AvailabilityStatusUntil *types.DateTime `xml:"availabilityStatusUntil,omitempty"`
	Comment                 string          `xml:"comment,omitempty"`
}

func (r *SetChargingPoolAvailabilityStatusRequest) ToXML(custom ...Serializer) ([]byte, error) {
	status := strconv.Itoa(r.AvailabilityStatus.Number())
	data, err := xml.Marshal(setChargingPoolAvailabilityStatusRequestXML{
		NS:                      EVCIDynamicNS,
		requestHeaderXML:        r.headerXML(),
		ChargingPoolId:          r.ChargingPoolId.String(),
		StatusEventDate:         r.StatusEventDate,
		AvailabilityStatus:      &status,
		AvailabilityStatusUntil: r.AvailabilityStatusUntil,
		Comment:                 r.Comment,
	})
	if err != nil {
		return nil, err
	}
	return applySerializers(data, custom)
}

func ParseSetChargingPoolAvailabilityStatusRequest(data []byte) (*SetChargingPoolAvailabilityStatusRequest, error) {
	var wire setChargingPoolAvailabilityStatusRequestXML
	if err := xml.Unmarshal(data, &wire); err != nil {
		return nil, err
	}
	if err := wire.validate(SetChargingPoolAvailabilityStatusFeatureName); err != nil {
		return nil, err
	}
	if wire.ChargingPoolId == "" {
		return nil, missingElement(SetChargingPoolAvailabilityStatusFeatureName, "ChargingPoolId")
	}
	if wire.StatusEventDate == nil {
		return nil, missingElement(SetChargingPoolAvailabilityStatusFeatureName, "statusEventDate")
	}
	if wire.AvailabilityStatus == nil {
		return nil, missingElement(SetChargingPoolAvailabilityStatusFeatureName, "availabilityStatus")
	}
	return &SetChargingPoolAvailabilityStatusRequest{
		Request:                 wire.toRequest(),
		ChargingPoolId:          types.ChargingPoolId(wire.ChargingPoolId),
		StatusEventDate:         wire.StatusEventDate,
		AvailabilityStatus:      types.ChargingPoolAvailabilityStatusFrom(*wire.AvailabilityStatus),
		AvailabilityStatusUntil: wire.AvailabilityStatusUntil,
		Comment:                 wire.Comment,
	}, nil
}

func TryParseSetChargingPoolAvailabilityStatusRequest(data []byte, onError func(error)) (*SetChargingPoolAvailabilityStatusRequest, bool) {
	return tryParse(onError, func() (*SetChargingPoolAvailabilityStatusRequest, error) {
		return ParseSetChargingPoolAvailabilityStatusRequest(data)
	})
}

func (r *SetChargingPoolAvailabilityStatusRequest) Equals(other *SetChargingPoolAvailabilityStatusRequest) bool {
	if r == nil || other == nil {
		return r == other
	}
	return r.headerEquals(&other.Request) &&
		r.ChargingPoolId == other.ChargingPoolId &&
		r.StatusEventDate.Equals(other.StatusEventDate) &&
		r.AvailabilityStatus == other.AvailabilityStatus &&
		r.AvailabilityStatusUntil.Equals(other.AvailabilityStatusUntil) &&
		r.Comment == other.Comment
}

type SetChargingPoolAvailabilityStatusResponse struct {
	Request       *SetChargingPoolAvailabilityStatusRequest
	TransactionId types.TransactionId
	RequestStatus types.RequestStatus
}

func (r *SetChargingPoolAvailabilityStatusResponse) GetFeatureName() string {
	return SetChargingPoolAvailabilityStatusFeatureName
}

const setChargingPoolAvailabilityStatusResponseElement = "eMIP_ToIOP_SetChargingPoolAvailabilityStatusResponse"

type SetChargingPoolAvailabilityStatusResponseParser func(*SetChargingPoolAvailabilityStatusResponse) (*SetChargingPoolAvailabilityStatusResponse, error)

func ParseSetChargingPoolAvailabilityStatusResponse(req *SetChargingPoolAvailabilityStatusRequest, data []byte, custom ...SetChargingPoolAvailabilityStatusResponseParser) (*SetChargingPoolAvailabilityStatusResponse, error) {
	transactionId, status, err := parseAckResponse(SetChargingPoolAvailabilityStatusFeatureName, setChargingPoolAvailabilityStatusResponseElement, data)
	if err != nil {
		return nil, err
	}
	resp := &SetChargingPoolAvailabilityStatusResponse{
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

func TryParseSetChargingPoolAvailabilityStatusResponse(req *SetChargingPoolAvailabilityStatusRequest, data []byte, onError func(error), custom ...SetChargingPoolAvailabilityStatusResponseParser) (*SetChargingPoolAvailabilityStatusResponse, bool) {
	return tryParse(onError, func() (*SetChargingPoolAvailabilityStatusResponse, error) {
		return ParseSetChargingPoolAvailabilityStatusResponse(req, data, custom...)
	})
}

func (r *SetChargingPoolAvailabilityStatusResponse) ToXML(custom ...Serializer) ([]byte, error) {
	data, err := marshalAckResponse(setChargingPoolAvailabilityStatusResponseElement, EVCIDynamicNS, r.TransactionId, r.RequestStatus)
	if err != nil {
		return nil, err
	}
	return applySerializers(data, custom)
}

func (r *SetChargingPoolAvailabilityStatusResponse) Equals(other *SetChargingPoolAvailabilityStatusResponse) bool {
	if r == nil || other == nil {
		return r == other
	}
	return r.TransactionId == other.TransactionId && r.RequestStatus == other.RequestStatus
}

type SetChargingPoolAvailabilityStatusResponseBuilder struct {
	Request       *SetChargingPoolAvailabilityStatusRequest
	TransactionId types.TransactionId
	RequestStatus types.RequestStatus
}

func (r *SetChargingPoolAvailabilityStatusResponse) ToBuilder() *SetChargingPoolAvailabilityStatusResponseBuilder {
	return &SetChargingPoolAvailabilityStatusResponseBuilder{
		Request:       r.Request,
		TransactionId: r.TransactionId,
		RequestStatus: r.RequestStatus,
	}
}

func (b *SetChargingPoolAvailabilityStatusResponseBuilder) Build() *SetChargingPoolAvailabilityStatusResponse {
	return &SetChargingPoolAvailabilityStatusResponse{
		Request:       b.Request,
		TransactionId: b.TransactionId.OrZero(),
		RequestStatus: b.RequestStatus,
	}
}

func (b *SetChargingPoolAvailabilityStatusResponseBuilder) Equals(other *SetChargingPoolAvailabilityStatusResponseBuilder) bool {
	if b == nil || other == nil {
		return b == other
	}
	return b.Build().Equals(other.Build())
}

package emip

import (
	"emipcpo/types"
	"encoding/xml"
	"strconv"
)

const SetChargingConnectorAvailabilityStatusFeatureName = "SetChargingConnectorAvailabilityStatus"

var SetChargingConnectorAvailabilityStatusAction = SOAPAction("SetChargingConnectorAvailabilityStatus")

// SetChargingConnectorAvailabilityStatusRequest reports availability for an
// individual connector.
type SetChargingConnectorAvailabilityStatusRequest struct {
	Request
	ChargingConnectorId     types.ChargingConnectorId
	StatusEventDate         *types.DateTime
	AvailabilityStatus      types.ChargingConnectorAvailabilityStatus
	AvailabilityStatusUntil *types.DateTime
	Comment                 string
}

func (r *SetChargingConnectorAvailabilityStatusRequest) GetFeatureName() string {
	return SetChargingConnectorAvailabilityStatusFeatureName
}

type setChargingConnectorAvailabilityStatusRequestXML struct {
	XMLName xml.Name `xml:"eMIP_ToIOP_SetChargingConnectorAvailabilityStatusRequest"`
	NS      string   `xml:"xmlns,attr"`
	requestHeaderXML
	ChargingConnectorId     string          `xml:"ChargingConnectorId"`
	StatusEventDate         *types.DateTime `xml:"statusEventDate"`
	AvailabilityStatus      *string         `xml:"availabilityStatus"`
	AvailabilityStatusUntil *types.DateTime `xml:"availabilityStatusUntil,omitempty"`
	Comment                 string          `xml:"comment,omitempty"`
}

func (r *SetChargingConnectorAvailabilityStatusRequest) ToXML(custom ...Serializer) ([]byte, error) {
	status := strconv.Itoa(r.AvailabilityStatus.Number())
	data, err := xml.Marshal(setChargingConnectorAvailabilityStatusRequestXML{
		NS:                      EVCIDynamicNS,
		requestHeaderXML:        r.headerXML(),
		ChargingConnectorId:     r.ChargingConnectorId.String(),
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

func ParseSetChargingConnectorAvailabilityStatusRequest(data []byte) (*SetChargingConnectorAvailabilityStatusRequest, error) {
	var wire setChargingConnectorAvailabilityStatusRequestXML
	if err := xml.Unmarshal(data, &wire); err != nil {
		return nil, err
	}
	if err := wire.validate(SetChargingConnectorAvailabilityStatusFeatureName); err != nil {
		return nil, err
	}
	if wire.ChargingConnectorId == "" {
		return nil, missingElement(SetChargingConnectorAvailabilityStatusFeatureName, "ChargingConnectorId")
	}
	if wire.StatusEventDate == nil {
		return nil, missingElement(SetChargingConnectorAvailabilityStatusFeatureName, "statusEventDate")
	}
	if wire.AvailabilityStatus == nil {
		return nil, missingElement(SetChargingConnectorAvailabilityStatusFeatureName, "availabilityStatus")
	}
	return &SetChargingConnectorAvailabilityStatusRequest{
		Request:                 wire.toRequest(),
		ChargingConnectorId:     types.ChargingConnectorId(wire.ChargingConnectorId),
		StatusEventDate:         wire.StatusEventDate,
		AvailabilityStatus:      types.ChargingConnectorAvailabilityStatusFrom(*wire.AvailabilityStatus),
		AvailabilityStatusUntil: wire.AvailabilityStatusUntil,
		Comment:                 wire.Comment,
	}, nil
}

func TryParseSetChargingConnectorAvailabilityStatusRequest(data []byte, onError func(error)) (*SetChargingConnectorAvailabilityStatusRequest, bool) {
	return tryParse(onError, func() (*SetChargingConnectorAvailabilityStatusRequest, error) {
		return ParseSetChargingConnectorAvailabilityStatusRequest(data)
	})
}

func (r *SetChargingConnectorAvailabilityStatusRequest) Equals(other *SetChargingConnectorAvailabilityStatusRequest) bool {
	if r == nil || other == nil {
		return r == other
	}
	return r.headerEquals(&other.Request) &&
		r.ChargingConnectorId == other.ChargingConnectorId &&
		r.StatusEventDate.Equals(other.StatusEventDate) &&
		r.AvailabilityStatus == other.AvailabilityStatus &&
		r.AvailabilityStatusUntil.Equals(other.AvailabilityStatusUntil) &&
		r.Comment == other.Comment
}

type SetChargingConnectorAvailabilityStatusResponse struct {
	Request       *SetChargingConnectorAvailabilityStatusRequest
	TransactionId types.TransactionId
	RequestStatus types.RequestStatus
}

func (r *SetChargingConnectorAvailabilityStatusResponse) GetFeatureName() string {
	return SetChargingConnectorAvailabilityStatusFeatureName
}

const setChargingConnectorAvailabilityStatusResponseElement = "eMIP_ToIOP_SetChargingConnectorAvailabilityStatusResponse"

type SetChargingConnectorAvailabilityStatusResponseParser func(*SetChargingConnectorAvailabilityStatusResponse) (*SetChargingConnectorAvailabilityStatusResponse, error)

func ParseSetChargingConnectorAvailabilityStatusResponse(req *SetChargingConnectorAvailabilityStatusRequest, data []byte, custom ...SetChargingConnectorAvailabilityStatusResponseParser) (*SetChargingConnectorAvailabilityStatusResponse, error) {
	transactionId, status, err := parseAckResponse(SetChargingConnectorAvailabilityStatusFeatureName, setChargingConnectorAvailabilityStatusResponseElement, data)
	if err != nil {
		return nil, err
	}
	resp := &SetChargingConnectorAvailabilityStatusResponse{
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

func TryParseSetChargingConnectorAvailabilityStatusResponse(req *SetChargingConnectorAvailabilityStatusRequest, data []byte, onError func(error), custom ...SetChargingConnectorAvailabilityStatusResponseParser) (*SetChargingConnectorAvailabilityStatusResponse, bool) {
	return tryParse(onError, func() (*SetChargingConnectorAvailabilityStatusResponse, error) {
		return ParseSetChargingConnectorAvailabilityStatusResponse(req, data, custom...)
	})
}

func (r *SetChargingConnectorAvailabilityStatusResponse) ToXML(custom ...Serializer) ([]byte, error) {
	data, err := marshalAckResponse(setChargingConnectorAvailabilityStatusResponseElement, EVCIDynamicNS, r.TransactionId, r.RequestStatus)
	if err != nil {
		return nil, err
	}
	return applySerializers(data, custom)
}

func (r *SetChargingConnectorAvailabilityStatusResponse) Equals(other *SetChargingConnectorAvailabilityStatusResponse) bool {
	if r == nil || other == nil {
		return r == other
	}
	return r.TransactionId == other.TransactionId && r.RequestStatus == other.RequestStatus
}

type SetChargingConnectorAvailabilityStatusResponseBuilder struct {
	Request       *SetChargingConnectorAvailabilityStatusRequest
	TransactionId types.TransactionId
	RequestStatus types.RequestStatus
}

func (r *SetChargingConnectorAvailabilityStatusResponse) ToBuilder() *SetChargingConnectorAvailabilityStatusResponseBuilder {
	return &SetChargingConnectorAvailabilityStatusResponseBuilder{
		Request:       r.Request,
		TransactionId: r.TransactionId,
		RequestStatus: r.RequestStatus,
	}
}

func (b *SetChargingConnectorAvailabilityStatusResponseBuilder) Build() *SetChargingConnectorAvailabilityStatusResponse {
	return &SetChargingConnectorAvailabilityStatusResponse{
		Request:       b.Request,
		TransactionId: b.TransactionId.OrZero(),
		RequestStatus: b.RequestStatus,
	}
}

func (b *SetChargingConnectorAvailabilityStatusResponseBuilder) Equals(other *SetChargingConnectorAvailabilityStatusResponseBuilder) bool {
	if b == nil || other == nil {
		return b == other
	}
	return b.Build().Equals(other.Build())
}

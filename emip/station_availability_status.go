package emip

import (
	"emipcpo/types"
	"encoding/xml"
	"strconv"
)

const SetChargingStationAvailabilityStatusFeatureName = "SetChargingStationAvailabilityStatus"

var SetChargingStationAvailabilityStatusAction = SOAPAction("SetChargingStationAvailabilityStatus")

// SetChargingStationAvailabilityStatusRequest reports availability for one
// charging station.
type SetChargingStationAvailabilityStatusRequest struct {
	Request
	ChargingStationId       types.ChargingStationId
	StatusEventDate         *types.DateTime
	AvailabilityStatus      types.ChargingStationAvailabilityStatus
	AvailabilityStatusUntil *types.DateTime
	Comment                 string
}

func (r *SetChargingStationAvailabilityStatusRequest) GetFeatureName() string {
	return SetChargingStationAvailabilityStatusFeatureName
}

type setChargingStationAvailabilityStatusRequestXML struct {
	XMLName xml.Name `xml:"eMIP_ToIOP_SetChargingStationAvailabilityStatusRequest"`
	NS      string   `xml:"xmlns,attr"`
	requestHeaderXML
	ChargingStationId       string          `xml:"ChargingStationId"`
	StatusEventDate         *types.DateTime `xml:"statusEventDate"`
	AvailabilityStatus      *string         `xml:"availabilityStatus"`
	AvailabilityStatusUntil *types.DateTime `xml:"availabilityStatusUntil,omitempty"`
	Comment                 string          `xml:"comment,omitempty"`
}

func (r *SetChargingStationAvailabilityStatusRequest) ToXML(custom ...Serializer) ([]byte, error) {
	status := strconv.Itoa(r.AvailabilityStatus.Number())
	data, err := xml.Marshal(setChargingStationAvailabilityStatusRequestXML{
		NS:                      EVCIDynamicNS,
		requestHeaderXML:        r.headerXML(),
		ChargingStationId:       r.ChargingStationId.String(),
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

func ParseSetChargingStationAvailabilityStatusRequest(data []byte) (*SetChargingStationAvailabilityStatusRequest, error) {
	var wire setChargingStationAvailabilityStatusRequestXML
	if err := xml.Unmarshal(data, &wire); err != nil {
		return nil, err
	}
	if err := wire.validate(SetChargingStationAvailabilityStatusFeatureName); err != nil {
		return nil, err
	}
	if wire.ChargingStationId == "" {
		return nil, missingElement(SetChargingStationAvailabilityStatusFeatureName, "ChargingStationId")
	}
	if wire.StatusEventDate == nil {
		return nil, missingElement(SetChargingStationAvailabilityStatusFeatureName, "statusEventDate")
	}
	if wire.AvailabilityStatus == nil {
		return nil, missingElement(SetChargingStationAvailabilityStatusFeatureName, "availabilityStatus")
	}
	return &SetChargingStationAvailabilityStatusRequest{
		Request:                 wire.toRequest(),
		ChargingStationId:       types.ChargingStationId(wire.ChargingStationId),
		StatusEventDate:         wire.StatusEventDate,
		AvailabilityStatus:      types.ChargingStationAvailabilityStatusFrom(*wire.AvailabilityStatus),
		AvailabilityStatusUntil: wire.AvailabilityStatusUntil,
		Comment:                 wire.Comment,
	}, nil
}

func TryParseSetChargingStationAvailabilityStatusRequest(data []byte, onError func(error)) (*SetChargingStationAvailabilityStatusRequest, bool) {
	return tryParse(onError, func() (*SetChargingStationAvailabilityStatusRequest, error) {
		return ParseSetChargingStationAvailabilityStatusRequest(data)
	})
}

func (r *SetChargingStationAvailabilityStatusRequest) Equals(other *SetChargingStationAvailabilityStatusRequest) bool {
	if r == nil || other == nil {
		return r == other
	}
	return r.headerEquals(&other.Request) &&
		r.ChargingStationId == other.ChargingStationId &&
		r.StatusEventDate.Equals(other.StatusEventDate) &&
		r.AvailabilityStatus == other.AvailabilityStatus &&
		r.AvailabilityStatusUntil.Equals(other.AvailabilityStatusUntil) &&
		r.Comment == other.Comment
}

type SetChargingStationAvailabilityStatusResponse struct {
	Request       *SetChargingStationAvailabilityStatusRequest
	TransactionId types.TransactionId
	RequestStatus types.RequestStatus
}

func (r *SetChargingStationAvailabilityStatusResponse) GetFeatureName() string {
	return SetChargingStationAvailabilityStatusFeatureName
}

const setChargingStationAvailabilityStatusResponseElement = "eMIP_ToIOP_SetChargingStationAvailabilityStatusResponse"

type SetChargingStationAvailabilityStatusResponseParser func(*SetChargingStationAvailabilityStatusResponse) (*SetChargingStationAvailabilityStatusResponse, error)

func ParseSetChargingStationAvailabilityStatusResponse(req *SetChargingStationAvailabilityStatusRequest, data []byte, custom ...SetChargingStationAvailabilityStatusResponseParser) (*SetChargingStationAvailabilityStatusResponse, error) {
	transactionId, status, err := parseAckResponse(SetChargingStationAvailabilityStatusFeatureName, setChargingStationAvailabilityStatusResponseElement, data)
	if err != nil {
		return nil, err
	}
	resp := &SetChargingStationAvailabilityStatusResponse{
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

func TryParseSetChargingStationAvailabilityStatusResponse(req *SetChargingStationAvailabilityStatusRequest, data []byte, onError func(error), custom ...SetChargingStationAvailabilityStatusResponseParser) (*SetChargingStationAvailabilityStatusResponse, bool) {
	return tryParse(onError, func() (*SetChargingStationAvailabilityStatusResponse, error) {
		return ParseSetChargingStationAvailabilityStatusResponse(req, data, custom...)
	})
}

func (r *SetChargingStationAvailabilityStatusResponse) ToXML(custom ...Serializer) ([]byte, error) {
	data, err := marshalAckResponse(setChargingStationAvailabilityStatusResponseElement, EVCIDynamicNS, r.TransactionId, r.RequestStatus)
	if err != nil {
		return nil, err
	}
	return applySerializers(data, custom)
}

func (r *SetChargingStationAvailabilityStatusResponse) Equals(other *SetChargingStationAvailabilityStatusResponse) bool {
	if r == nil || other == nil {
		return r == other
	}
	return r.TransactionId == other.TransactionId && r.RequestStatus == other.RequestStatus
}

type SetChargingStationAvailabilityStatusResponseBuilder struct {
	Request       *SetChargingStationAvailabilityStatusRequest
	TransactionId types.TransactionId
	RequestStatus types.RequestStatus
}

func (r *SetChargingStationAvailabilityStatusResponse) ToBuilder() *SetChargingStationAvailabilityStatusResponseBuilder {
	return &SetChargingStationAvailabilityStatusResponseBuilder{
		Request:       r.Request,
		TransactionId: r.TransactionId,
		RequestStatus: r.RequestStatus,
	}
}

func (b *SetChargingStationAvailabilityStatusResponseBuilder) Build() *SetChargingStationAvailabilityStatusResponse {
	return &SetChargingStationAvailabilityStatusResponse{
		Request:       b.Request,
		TransactionId: b.TransactionId.OrZero(),
		RequestStatus: b.RequestStatus,
	}
}

func (b *SetChargingStationAvailabilityStatusResponseBuilder) Equals(other *SetChargingStationAvailabilityStatusResponseBuilder) bool {
	if b == nil || other == nil {
		return b == other
	}
	return b.Build().Equals(other.Build())
}

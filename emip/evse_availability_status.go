package emip

import (
	"emipcpo/types"
	"encoding/xml"
	"strconv"
)

const SetEVSEAvailabilityStatusFeatureName = "SetEVSEAvailabilityStatus"

var SetEVSEAvailabilityStatusAction = SOAPAction("SetEVSEAvailabilityStatus")

// SetEVSEAvailabilityStatusRequest reports a changed availability state of a
// single EVSE, optionally bounded by a validity window end and a comment.
type SetEVSEAvailabilityStatusRequest struct {
	Request
	EVSEId                  types.EVSEId
	StatusEventDate         *types.DateTime
	AvailabilityStatus      types.EVSEAvailabilityStatus
	AvailabilityStatusUntil *types.DateTime
	Comment                 string
}

func (r *SetEVSEAvailabilityStatusRequest) GetFeatureName() string {
	return SetEVSEAvailabilityStatusFeatureName
}

type setEVSEAvailabilityStatusRequestXML struct {
	XMLName xml.Name `xml:"eMIP_ToIOP_SetEVSEAvailabilityStatusRequest"`
	NS      string   `xml:"xmlns,attr"`
	requestHeaderXML
	EVSEId                  string          `xml:"EVSEId"`
	StatusEventDate         *types.DateTime `xml:"statusEventDate"`
	AvailabilityStatus      *string         `xml:"availabilityStatus"`
	AvailabilityStatusUntil *types.DateTime `xml:"availabilityStatusUntil,omitempty"`
	Comment                 string          `xml:"comment,omitempty"`
}

func (r *SetEVSEAvailabilityStatusRequest) ToXML(custom ...Serializer) ([]byte, error) {
	status := strconv.Itoa(r.AvailabilityStatus.Number())
	data, err := xml.Marshal(setEVSEAvailabilityStatusRequestXML{
		NS:                      EVCIDynamicNS,
		requestHeaderXML:        r.headerXML(),
		EVSEId:                  r.EVSEId.String(),
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

func ParseSetEVSEAvailabilityStatusRequest(data []byte) (*SetEVSEAvailabilityStatusRequest, error) {
	var wire setEVSEAvailabilityStatusRequestXML
	if err := xml.Unmarshal(data, &wire); err != nil {
		return nil, err
	}
	if err := wire.validate(SetEVSEAvailabilityStatusFeatureName); err != nil {
		return nil, err
	}
	if wire.EVSEId == "" {
		return nil, missingElement(SetEVSEAvailabilityStatusFeatureName, "EVSEId")
	}
	if wire.StatusEventDate == nil {
		return nil, missingElement(SetEVSEAvailabilityStatusFeatureName, "statusEventDate")
	}
	if wire.AvailabilityStatus == nil {
		return nil, missingElement(SetEVSEAvailabilityStatusFeatureName, "availabilityStatus")
	}
	return &SetEVSEAvailabilityStatusRequest{
		Request:                 wire.toRequest(),
		EVSEId:                  types.EVSEId(wire.EVSEId),
		StatusEventDate:         wire.StatusEventDate,
		AvailabilityStatus:      types.EVSEAvailabilityStatusFrom(*wire.AvailabilityStatus),
		AvailabilityStatusUntil: wire.AvailabilityStatusUntil,
		Comment:                 wire.Comment,
	}, nil
}

func TryParseSetEVSEAvailabilityStatusRequest(data []byte, onError func(error)) (*SetEVSEAvailabilityStatusRequest, bool) {
	return tryParse(onError, func() (*SetEVSEAvailabilityStatusRequest, error) {
		return ParseSetEVSEAvailabilityStatusRequest(data)
	})
}

func (r *SetEVSEAvailabilityStatusRequest) Equals(other *SetEVSEAvailabilityStatusRequest) bool {
	if r == nil || other == nil {
		return r == other
	}
	return r.headerEquals(&other.Request) &&
		r.EVSEId == other.EVSEId &&
		r.StatusEventDate.Equals(other.StatusEventDate) &&
		r.AvailabilityStatus == other.AvailabilityStatus &&
		r.AvailabilityStatusUntil.Equals(other.AvailabilityStatusUntil) &&
		r.Comment == other.Comment
}

type SetEVSEAvailabilityStatusResponse struct {
	Request       *SetEVSEAvailabilityStatusRequest
	TransactionId types.TransactionId
	RequestStatus types.RequestStatus
}

func (r *SetEVSEAvailabilityStatusResponse) GetFeatureName() string {
	return SetEVSEAvailabilityStatusFeatureName
}

const setEVSEAvailabilityStatusResponseElement = "eMIP_ToIOP_SetEVSEAvailabilityStatusResponse"

type SetEVSEAvailabilityStatusResponseParser func(*SetEVSEAvailabilityStatusResponse) (*SetEVSEAvailabilityStatusResponse, error)

func ParseSetEVSEAvailabilityStatusResponse(req *SetEVSEAvailabilityStatusRequest, data []byte, custom ...SetEVSEAvailabilityStatusResponseParser) (*SetEVSEAvailabilityStatusResponse, error) {
	transactionId, status, err := parseAckResponse(SetEVSEAvailabilityStatusFeatureName, setEVSEAvailabilityStatusResponseElement, data)
	if err != nil {
		return nil, err
	}
	resp := &SetEVSEAvailabilityStatusResponse{
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

func TryParseSetEVSEAvailabilityStatusResponse(req *SetEVSEAvailabilityStatusRequest, data []byte, onError func(error), custom ...SetEVSEAvailabilityStatusResponseParser) (*SetEVSEAvailabilityStatusResponse, bool) {
	return tryParse(onError, func() (*SetEVSEAvailabilityStatusResponse, error) {
		return ParseSetEVSEAvailabilityStatusResponse(req, data, custom...)
	})
}

func (r *SetEVSEAvailabilityStatusResponse) ToXML(custom ...Serializer) ([]byte, error) {
	data, err := marshalAckResponse(setEVSEAvailabilityStatusResponseElement, EVCIDynamicNS, r.TransactionId, r.RequestStatus)
	if err != nil {
		return nil, err
	}
	return applySerializers(data, custom)
}

func (r *SetEVSEAvailabilityStatusResponse) Equals(other *SetEVSEAvailabilityStatusResponse) bool {
	if r == nil || other == nil {
		return r == other
	}
	return r.TransactionId == other.TransactionId && r.RequestStatus == other.RequestStatus
}

type SetEVSEAvailabilityStatusResponseBuilder struct {
	Request       *SetEVSEAvailabilityStatusRequest
	TransactionId types.TransactionId
	RequestStatus types.RequestStatus
}

func (r *SetEVSEAvailabilityStatusResponse) ToBuilder() *SetEVSEAvailabilityStatusResponseBuilder {
	return &SetEVSEAvailabilityStatusResponseBuilder{
		Request:       r.Request,
		TransactionId: r.TransactionId,
		RequestStatus: r.RequestStatus,
	}
}

func (b *SetEVSEAvailabilityStatusResponseBuilder) Build() *SetEVSEAvailabilityStatusResponse {
	return &SetEVSEAvailabilityStatusResponse{
		Request:       b.Request,
		TransactionId: b.TransactionId.OrZero(),
		RequestStatus: b.RequestStatus,
	}
}

func (b *SetEVSEAvailabilityStatusResponseBuilder) Equals(other *SetEVSEAvailabilityStatusResponseBuilder) bool {
	if b == nil || other == nil {
		return b == other
	}
	return b.Build().Equals(other.Build())
}

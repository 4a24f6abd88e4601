package emip

import (
	"emipcpo/types"
	"encoding/xml"
	"strconv"
)

const SetEVSEBusyStatusFeatureName = "SetEVSEBusyStatus"

var SetEVSEBusyStatusAction = SOAPAction("SetEVSEBusyStatus")

type SetEVSEBusyStatusRequest struct {
	Request
	EVSEId          types.EVSEId
	StatusEventDate *types.DateTime
	BusyStatus      types.EVSEBusyStatus
	BusyStatusUntil *types.DateTime
	Comment         string
}

func (r *SetEVSEBusyStatusRequest) GetFeatureName() string { return SetEVSEBusyStatusFeatureName }

type setEVSEBusyStatusRequestXML struct {
	XMLName xml.Name `xml:"eMIP_ToIOP_SetEVSEBusyStatusRequest"`
	NS      string   `xml:"xmlns,attr"`
	requestHeaderXML
	EVSEId          string          `xml:"EVSEId"`
	StatusEventDate *types.DateTime `xml:"statusEventDate"`
	BusyStatus      *string         `xml:"busyStatus"`
	BusyStatusUntil *types.DateTime `xml:"busyStatusUntil,omitempty"`
	Comment         string          `xml:"comment,omitempty"`
}

func (r *SetEVSEBusyStatusRequest) ToXML(custom ...Serializer) ([]byte, error) {
	status := strconv.Itoa(r.BusyStatus.Number())
	data, err := xml.Marshal(setEVSEBusyStatusRequestXML{
		NS:               EVCIDynamicNS,
		requestHeaderXML: r.headerXML(),
		EVSEId:           r.EVSEId.String(),
		StatusEventDate:  r.StatusEventDate,
		BusyStatus:       &status,
		BusyStatusUntil:  r.BusyStatusUntil,
		Comment:          r.Comment,
	})
	if err != nil {
		return nil, err
	}
	return applySerializers(data, custom)
}

func ParseSetEVSEBusyStatusRequest(data []byte) (*SetEVSEBusyStatusRequest, error) {
	var wire setEVSEBusyStatusRequestXML
	if err := xml.Unmarshal(data, &wire); err != nil {
		return nil, err
	}
	if err := wire.validate(SetEVSEBusyStatusFeatureName); err != nil {
		return nil, err
	}
	if wire.EVSEId == "" {
		return nil, missingElement(SetEVSEBusyStatusFeatureName, "EVSEId")
	}
	if wire.StatusEventDate == nil {
		return nil, missingElement(SetEVSEBusyStatusFeatureName, "statusEventDate")
	}
	if wire.BusyStatus == nil {
		return nil, missingElement(SetEVSEBusyStatusFeatureName, "busyStatus")
	}
	return &SetEVSEBusyStatusRequest{
		Request:         wire.toRequest(),
		EVSEId:          types.EVSEId(wire.EVSEId),
		StatusEventDate: wire.StatusEventDate,
		BusyStatus:      types.EVSEBusyStatusFrom(*wire.BusyStatus),
		BusyStatusUntil: wire.BusyStatusUntil,
		Comment:         wire.Comment,
	}, nil
}

func TryParseSetEVSEBusyStatusRequest(data []byte, onError func(error)) (*SetEVSEBusyStatusRequest, bool) {
	return tryParse(onError, func() (*SetEVSEBusyStatusRequest, error) {
		return ParseSetEVSEBusyStatusRequest(data)
	})
}

func (r *SetEVSEBusyStatusRequest) Equals(other *SetEVSEBusyStatusRequest) bool {
	if r == nil || other == nil {
		return r == other
	}
	return r.headerEquals(&other.Request) &&
		r.EVSEId == other.EVSEId &&
		r.StatusEventDate.Equals(other.StatusEventDate) &&
		r.BusyStatus == other.BusyStatus &&
		r.BusyStatusUntil.Equals(other.BusyStatusUntil) &&
		r.Comment == other.Comment
}

type SetEVSEBusyStatusResponse struct {
	Request       *SetEVSEBusyStatusRequest
	TransactionId types.TransactionId
	RequestStatus types.RequestStatus
}

func (r *SetEVSEBusyStatusResponse) GetFeatureName() string { return SetEVSEBusyStatusFeatureName }

const setEVSEBusyStatusResponseElement = "eMIP_ToIOP_SetEVSEBusyStatusResponse"

type SetEVSEBusyStatusResponseParser func(*SetEVSEBusyStatusResponse) (*SetEVSEBusyStatusResponse, error)

func ParseSetEVSEBusyStatusResponse(req *SetEVSEBusyStatusRequest, data []byte, custom ...SetEVSEBusyStatusResponseParser) (*SetEVSEBusyStatusResponse, error) {
	transactionId, status, err := parseAckResponse(SetEVSEBusyStatusFeatureName, setEVSEBusyStatusResponseElement, data)
	if err != nil {
		return nil, err
	}
	resp := &SetEVSEBusyStatusResponse{
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

func TryParseSetEVSEBusyStatusResponse(req *SetEVSEBusyStatusRequest, data []byte, onError func(error), custom ...SetEVSEBusyStatusResponseParser) (*SetEVSEBusyStatusResponse, bool) {
	return tryParse(onError, func() (*SetEVSEBusyStatusResponse, error) {
		return ParseSetEVSEBusyStatusResponse(req, data, custom...)
	})
}

func (r *SetEVSEBusyStatusResponse) ToXML(custom ...Serializer) ([]byte, error) {
	data, err := marshalAckResponse(setEVSEBusyStatusResponseElement, EVCIDynamicNS, r.TransactionId, r.RequestStatus)
	if err != nil {
		return nil, err
	}
	return applySerializers(data, custom)
}

func (r *SetEVSEBusyStatusResponse) Equals(other *SetEVSEBusyStatusResponse) bool {
	if r == nil || other == nil {
		return r == other
	}
	return r.TransactionId == other.TransactionId && r.RequestStatus == other.RequestStatus
}

type SetEVSEBusyStatusResponseBuilder struct {
	Request       *SetEVSEBusyStatusRequest
	TransactionId types.TransactionId
	RequestStatus types.RequestStatus
}

func (r *SetEVSEBusyStatusResponse) ToBuilder() *SetEVSEBusyStatusResponseBuilder {
	return &SetEVSEBusyStatusResponseBuilder{
		Request:       r.Request,
		TransactionId: r.TransactionId,
		RequestStatus: r.RequestStatus,
	}
}

func (b *SetEVSEBusyStatusResponseBuilder) Build() *SetEVSEBusyStatusResponse {
	return &SetEVSEBusyStatusResponse{
		Request:       b.Request,
		TransactionId: b.TransactionId.OrZero(),
		RequestStatus: b.RequestStatus,
	}
}

func (b *SetEVSEBusyStatusResponseBuilder) Equals(other *SetEVSEBusyStatusResponseBuilder) bool {
	if b == nil || other == nil {
		return b == other
	}
	return b.Build().Equals(other.Build())
}
